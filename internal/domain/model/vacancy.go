//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxVacancyTitleLen = 200
)

// VacancyStatus is the publication state of a job posting.
type VacancyStatus string

const (
	VacancyStatusActive   VacancyStatus = "ACTIVE"
	VacancyStatusInactive VacancyStatus = "INACTIVE"
	VacancyStatusOnHold   VacancyStatus = "ON_HOLD"
)

// VacancyStatuses returns every known vacancy status.
func VacancyStatuses() []VacancyStatus {
	return []VacancyStatus{VacancyStatusActive, VacancyStatusOnHold, VacancyStatusInactive}
}

// Valid reports whether the vacancy status is supported.
func (s VacancyStatus) Valid() bool {
	switch s {
	case VacancyStatusActive, VacancyStatusInactive, VacancyStatusOnHold:
		return true
	default:
		return false
	}
}

// ParseVacancyStatus normalizes a status string and reports whether it is supported.
func ParseVacancyStatus(value string) (VacancyStatus, bool) {
	s := VacancyStatus(normalizeEnum(value))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// EmploymentType describes the contract form of a vacancy.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentInternship EmploymentType = "INTERNSHIP"
)

// EmploymentTypes returns every known employment type.
func EmploymentTypes() []EmploymentType {
	return []EmploymentType{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship}
}

// Valid reports whether the employment type is supported.
func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	default:
		return false
	}
}

// Vacancy is a job posting owned by the recruitment API.
type Vacancy struct {
	ID               ID             `json:"id"`
	Title            string         `json:"title"`
	Department       string         `json:"department"`
	Location         string         `json:"location"`
	EmploymentType   EmploymentType `json:"employmentType,omitempty"`
	Description      string         `json:"description,omitempty"`
	Requirements     string         `json:"requirements,omitempty"`
	SalaryMin        *float64       `json:"salaryMin,omitempty"`
	SalaryMax        *float64       `json:"salaryMax,omitempty"`
	Currency         string         `json:"currency,omitempty"`
	Deadline         Date           `json:"deadline"`
	Status           VacancyStatus  `json:"status"`
	ApplicationCount int            `json:"applicationCount,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// IsOpen reports whether applicants can apply at the given instant.
// A zero deadline never closes the vacancy; the deadline day itself is still open.
func (v Vacancy) IsOpen(now time.Time) bool {
	if v.Status != VacancyStatusActive {
		return false
	}
	if v.Deadline.IsZero() {
		return true
	}
	return !now.After(v.Deadline.Add(24*time.Hour - time.Nanosecond))
}

// SalaryRange renders the salary band for display, or "" when unknown.
func (v Vacancy) SalaryRange() string {
	cur := strings.TrimSpace(v.Currency)
	suffix := ""
	if cur != "" {
		suffix = " " + cur
	}
	switch {
	case v.SalaryMin != nil && v.SalaryMax != nil:
		return fmt.Sprintf("%s - %s%s", formatAmount(*v.SalaryMin), formatAmount(*v.SalaryMax), suffix)
	case v.SalaryMin != nil:
		return fmt.Sprintf("from %s%s", formatAmount(*v.SalaryMin), suffix)
	case v.SalaryMax != nil:
		return fmt.Sprintf("up to %s%s", formatAmount(*v.SalaryMax), suffix)
	default:
		return ""
	}
}

// salaryKey is the value used when sorting by salary: the upper bound when
// present, else the lower bound.
func (v Vacancy) salaryKey() float64 {
	if v.SalaryMax != nil {
		return *v.SalaryMax
	}
	if v.SalaryMin != nil {
		return *v.SalaryMin
	}
	return 0
}

// VacancyRequest carries the editable fields of a vacancy for create and update.
// The API replaces the whole record on update, so both operations share one shape.
type VacancyRequest struct {
	Title          string         `json:"title"`
	Department     string         `json:"department"`
	Location       string         `json:"location"`
	EmploymentType EmploymentType `json:"employmentType"`
	Description    string         `json:"description"`
	Requirements   string         `json:"requirements,omitempty"`
	SalaryMin      *float64       `json:"salaryMin,omitempty"`
	SalaryMax      *float64       `json:"salaryMax,omitempty"`
	Currency       string         `json:"currency,omitempty"`
	Deadline       Date           `json:"deadline"`
	Status         VacancyStatus  `json:"status,omitempty"`
}

// Validate normalizes and validates the request.
func (r *VacancyRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Department = strings.TrimSpace(r.Department)
	r.Location = strings.TrimSpace(r.Location)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))

	if r.Title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxVacancyTitleLen {
		return fmt.Errorf("title cannot exceed %d characters", maxVacancyTitleLen)
	}
	if r.Department == "" {
		return errors.New("department is required")
	}
	if r.Location == "" {
		return errors.New("location is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if r.EmploymentType == "" {
		r.EmploymentType = EmploymentFullTime
	}
	if !r.EmploymentType.Valid() {
		return errors.New("invalid employment type")
	}
	if r.SalaryMin != nil && *r.SalaryMin < 0 {
		return errors.New("salary_min must be >= 0")
	}
	if r.SalaryMax != nil && *r.SalaryMax < 0 {
		return errors.New("salary_max must be >= 0")
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		return errors.New("salary_min cannot exceed salary_max")
	}
	if r.Status == "" {
		r.Status = VacancyStatusActive
	}
	if !r.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}

// RequestFromVacancy seeds an edit form with the current values of v.
func RequestFromVacancy(v Vacancy) VacancyRequest {
	return VacancyRequest{
		Title:          v.Title,
		Department:     v.Department,
		Location:       v.Location,
		EmploymentType: v.EmploymentType,
		Description:    v.Description,
		Requirements:   v.Requirements,
		SalaryMin:      v.SalaryMin,
		SalaryMax:      v.SalaryMax,
		Currency:       v.Currency,
		Deadline:       v.Deadline,
		Status:         v.Status,
	}
}

// VacancyListOptions controls client-side filtering and sorting of vacancies.
// Notes:
// - Sort supports: "deadline", "salary", "title", "created_at" (default).
// - Dir supports: "asc", "desc"; created_at defaults to newest first.
// - Q matches title, department, location and description, case-insensitive.
// - Department and Location match exactly, case-insensitive.
type VacancyListOptions struct {
	Q          string
	Department string
	Location   string
	Status     *VacancyStatus
	Sort       string
	Dir        string
}

// VacancyFacets lists the distinct departments and locations found in a list,
// used to populate filter drop-downs.
type VacancyFacets struct {
	Departments []string
	Locations   []string
}
