//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// DecisionOutcome is the terminal outcome recorded against an application.
type DecisionOutcome string

const (
	DecisionSelected DecisionOutcome = "SELECTED"
	DecisionRejected DecisionOutcome = "REJECTED"
	DecisionHold     DecisionOutcome = "HOLD"
)

// DecisionOutcomes returns every supported outcome.
func DecisionOutcomes() []DecisionOutcome {
	return []DecisionOutcome{DecisionSelected, DecisionRejected, DecisionHold}
}

// Valid reports whether the outcome is supported.
func (d DecisionOutcome) Valid() bool {
	switch d {
	case DecisionSelected, DecisionRejected, DecisionHold:
		return true
	default:
		return false
	}
}

// ParseDecisionOutcome normalizes an outcome string and reports whether it is supported.
func ParseDecisionOutcome(value string) (DecisionOutcome, bool) {
	d := DecisionOutcome(normalizeEnum(value))
	if d.Valid() {
		return d, true
	}
	return "", false
}

// ApplicationStatus returns the application status matching the outcome.
func (d DecisionOutcome) ApplicationStatus() ApplicationStatus {
	return ApplicationStatus(d)
}

// HiringDecision is the final outcome for an application.
type HiringDecision struct {
	ID            ID              `json:"id"`
	ApplicationID ID              `json:"applicationId"`
	ApplicantName string          `json:"applicantName,omitempty"`
	VacancyTitle  string          `json:"vacancyTitle,omitempty"`
	Decision      DecisionOutcome `json:"decision"`
	Notes         string          `json:"notes,omitempty"`
	OfferedSalary *float64        `json:"offeredSalary,omitempty"`
	StartDate     Date            `json:"startDate"`
	DecidedBy     string          `json:"decidedBy,omitempty"`
	DecidedAt     time.Time       `json:"decidedAt"`
}

// RecordDecisionRequest records a hiring decision.
type RecordDecisionRequest struct {
	ApplicationID ID              `json:"applicationId"`
	Decision      DecisionOutcome `json:"decision"`
	Notes         string          `json:"notes,omitempty"`
	OfferedSalary *float64        `json:"offeredSalary,omitempty"`
	StartDate     Date            `json:"startDate"`
}

// Validate validates RecordDecisionRequest. Offer details only apply to SELECTED.
func (r *RecordDecisionRequest) Validate() error {
	if r.ApplicationID.IsZero() {
		return errors.New("application_id is required")
	}
	if !r.Decision.Valid() {
		return errors.New("decision must be one of SELECTED, REJECTED, HOLD")
	}
	r.Notes = strings.TrimSpace(r.Notes)
	if r.Decision != DecisionSelected {
		r.OfferedSalary = nil
		r.StartDate = Date{}
		return nil
	}
	if r.OfferedSalary != nil && *r.OfferedSalary < 0 {
		return errors.New("offered salary must be >= 0")
	}
	return nil
}

// DecisionFor returns the decision recorded for applicationID, if any.
func DecisionFor(list []HiringDecision, applicationID ID) (HiringDecision, bool) {
	for _, d := range list {
		if d.ApplicationID == applicationID {
			return d, true
		}
	}
	return HiringDecision{}, false
}
