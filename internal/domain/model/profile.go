//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"net/mail"
	"strings"
)

const maxSkills = 50

// ApplicantProfile is the candidate's self-maintained profile.
type ApplicantProfile struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Location        string   `json:"location,omitempty"`
	Headline        string   `json:"headline,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experienceYears,omitempty"`
	Education       string   `json:"education,omitempty"`
	ResumeURL       string   `json:"resumeUrl,omitempty"`
	LinkedInURL     string   `json:"linkedinUrl,omitempty"`
}

// FullName joins the first and last names.
func (p ApplicantProfile) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

// Validate normalizes and validates the profile before it is saved.
func (p *ApplicantProfile) Validate() error {
	if err := validatePerson(&p.FirstName, &p.LastName, &p.Email); err != nil {
		return err
	}
	p.Phone = strings.TrimSpace(p.Phone)
	p.Location = strings.TrimSpace(p.Location)
	p.Headline = strings.TrimSpace(p.Headline)
	p.Education = strings.TrimSpace(p.Education)
	if p.ExperienceYears < 0 || p.ExperienceYears > 70 {
		return errors.New("experience years must be between 0 and 70")
	}
	p.Skills = NormalizeSkills(p.Skills)
	if len(p.Skills) > maxSkills {
		return errors.New("too many skills (max 50)")
	}
	p.ResumeURL = strings.TrimSpace(p.ResumeURL)
	if p.ResumeURL != "" && !isHTTPURL(p.ResumeURL) {
		return errors.New("resume URL must start with http:// or https://")
	}
	p.LinkedInURL = strings.TrimSpace(p.LinkedInURL)
	if p.LinkedInURL != "" && !isHTTPURL(p.LinkedInURL) {
		return errors.New("LinkedIn URL must start with http:// or https://")
	}
	return nil
}

// NormalizeSkills trims entries, drops blanks and removes case-insensitive duplicates
// while preserving the first spelling and order.
func NormalizeSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SplitSkills parses a comma or newline separated skills field.
func SplitSkills(raw string) []string {
	return NormalizeSkills(strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }))
}

// HRProfile is the HR manager's profile.
type HRProfile struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Company    string `json:"company,omitempty"`
	Position   string `json:"position,omitempty"`
}

// FullName joins the first and last names.
func (p HRProfile) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

// Validate normalizes and validates the profile before it is saved.
func (p *HRProfile) Validate() error {
	if err := validatePerson(&p.FirstName, &p.LastName, &p.Email); err != nil {
		return err
	}
	p.Phone = strings.TrimSpace(p.Phone)
	p.Department = strings.TrimSpace(p.Department)
	p.Company = strings.TrimSpace(p.Company)
	p.Position = strings.TrimSpace(p.Position)
	return nil
}

func validatePerson(first, last, email *string) error {
	*first = strings.TrimSpace(*first)
	*last = strings.TrimSpace(*last)
	*email = strings.TrimSpace(*email)
	if *first == "" {
		return errors.New("first name is required")
	}
	if *last == "" {
		return errors.New("last name is required")
	}
	if *email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(*email); err != nil {
		return errors.New("email is not a valid address")
	}
	return nil
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
