//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxCoverLetterLen = 5000

// ApplicationStatus is the position of an application in the hiring workflow.
// Progression: SUBMITTED -> UNDER_REVIEW -> SHORTLISTED -> INTERVIEWED -> {SELECTED | REJECTED | HOLD}.
// The API owns transitions; the portal only sends the requested target.
type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "SUBMITTED"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationInterviewed ApplicationStatus = "INTERVIEWED"
	ApplicationSelected    ApplicationStatus = "SELECTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationHold        ApplicationStatus = "HOLD"
)

var applicationStatusOrder = map[ApplicationStatus]int{
	ApplicationSubmitted:   0,
	ApplicationUnderReview: 1,
	ApplicationShortlisted: 2,
	ApplicationInterviewed: 3,
	ApplicationSelected:    4,
	ApplicationRejected:    4,
	ApplicationHold:        4,
}

// ApplicationStatuses returns every status in workflow order.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationSubmitted,
		ApplicationUnderReview,
		ApplicationShortlisted,
		ApplicationInterviewed,
		ApplicationSelected,
		ApplicationRejected,
		ApplicationHold,
	}
}

// Valid reports whether the status is one of the workflow states.
func (s ApplicationStatus) Valid() bool {
	_, ok := applicationStatusOrder[s]
	return ok
}

// Ordinal returns the workflow stage (0 for SUBMITTED, 4 for the outcomes)
// or -1 for unknown values.
func (s ApplicationStatus) Ordinal() int {
	if o, ok := applicationStatusOrder[s]; ok {
		return o
	}
	return -1
}

// IsTerminal reports whether the status is a final outcome.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationSelected || s == ApplicationRejected || s == ApplicationHold
}

// ParseApplicationStatus normalizes a status string ("under review",
// "under-review", "Under_Review") and reports whether it is supported.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	s := ApplicationStatus(normalizeEnum(value))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Application links an applicant to a vacancy.
type Application struct {
	ID             ID                `json:"id"`
	VacancyID      ID                `json:"vacancyId"`
	VacancyTitle   string            `json:"vacancyTitle,omitempty"`
	Department     string            `json:"department,omitempty"`
	ApplicantID    ID                `json:"applicantId,omitempty"`
	ApplicantName  string            `json:"applicantName,omitempty"`
	ApplicantEmail string            `json:"applicantEmail,omitempty"`
	CoverLetter    string            `json:"coverLetter,omitempty"`
	ResumeURL      string            `json:"resumeUrl,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      time.Time         `json:"appliedAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ApplyRequest submits an application to a vacancy.
type ApplyRequest struct {
	VacancyID   ID     `json:"vacancyId"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
}

// Validate validates ApplyRequest.
func (r *ApplyRequest) Validate() error {
	if r.VacancyID.IsZero() {
		return errors.New("vacancy_id is required")
	}
	r.CoverLetter = strings.TrimSpace(r.CoverLetter)
	if utf8.RuneCountInString(r.CoverLetter) > maxCoverLetterLen {
		return fmt.Errorf("cover letter cannot exceed %d characters", maxCoverLetterLen)
	}
	r.ResumeURL = strings.TrimSpace(r.ResumeURL)
	if r.ResumeURL != "" && !isHTTPURL(r.ResumeURL) {
		return errors.New("resume URL must start with http:// or https://")
	}
	return nil
}

// UpdateApplicationStatusRequest asks the API to move an application to Status.
type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
	Notes  string            `json:"notes,omitempty"`
}

// Validate only checks that Status is a workflow value; transition legality is
// decided by the API.
func (r *UpdateApplicationStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", string(r.Status))
	}
	r.Notes = strings.TrimSpace(r.Notes)
	return nil
}

// ApplicationListOptions controls client-side filtering and sorting of applications.
// Notes:
// - Sort supports: "applied_at" (default, newest first), "status", "applicant", "vacancy".
// - Q matches applicant name/email and vacancy title, case-insensitive.
type ApplicationListOptions struct {
	Q         string
	Status    *ApplicationStatus
	VacancyID ID
	Sort      string
	Dir       string
}

// FindApplicationForVacancy returns the application for vacancyID, if any.
func FindApplicationForVacancy(apps []Application, vacancyID ID) (Application, bool) {
	want := strings.TrimSpace(vacancyID.String())
	for _, a := range apps {
		if strings.TrimSpace(a.VacancyID.String()) == want {
			return a, true
		}
	}
	return Application{}, false
}

// CountByStatus tallies applications per status.
func CountByStatus(apps []Application) map[string]int {
	out := make(map[string]int, len(applicationStatusOrder))
	for _, a := range apps {
		out[string(a.Status)]++
	}
	return out
}
