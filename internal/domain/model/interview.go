//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const (
	defaultInterviewMinutes = 60
	maxInterviewMinutes     = 8 * 60
)

// InterviewType is the medium of an interview.
type InterviewType string

const (
	InterviewVideo    InterviewType = "VIDEO"
	InterviewPhone    InterviewType = "PHONE"
	InterviewInPerson InterviewType = "IN_PERSON"
)

// InterviewTypes returns every supported interview type.
func InterviewTypes() []InterviewType {
	return []InterviewType{InterviewVideo, InterviewPhone, InterviewInPerson}
}

// Valid reports whether the interview type is supported.
func (t InterviewType) Valid() bool {
	switch t {
	case InterviewVideo, InterviewPhone, InterviewInPerson:
		return true
	default:
		return false
	}
}

// InterviewStatus is the lifecycle state of an interview.
type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "SCHEDULED"
	InterviewCompleted InterviewStatus = "COMPLETED"
	InterviewCancelled InterviewStatus = "CANCELLED"
)

// InterviewStatuses returns every interview status.
func InterviewStatuses() []InterviewStatus {
	return []InterviewStatus{InterviewScheduled, InterviewCompleted, InterviewCancelled}
}

// Valid reports whether the interview status is supported.
func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled:
		return true
	default:
		return false
	}
}

// ParseInterviewStatus normalizes a status string and reports whether it is supported.
// "CANCELED" is accepted as an alias.
func ParseInterviewStatus(value string) (InterviewStatus, bool) {
	v := normalizeEnum(value)
	if v == "CANCELED" {
		v = string(InterviewCancelled)
	}
	s := InterviewStatus(v)
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Interview is a meeting scheduled against an application.
type Interview struct {
	ID              ID              `json:"id"`
	ApplicationID   ID              `json:"applicationId"`
	ApplicantName   string          `json:"applicantName,omitempty"`
	VacancyTitle    string          `json:"vacancyTitle,omitempty"`
	ScheduledAt     time.Time       `json:"scheduledAt"`
	DurationMinutes int             `json:"durationMinutes,omitempty"`
	Type            InterviewType   `json:"type"`
	Location        string          `json:"location,omitempty"`
	MeetingLink     string          `json:"meetingLink,omitempty"`
	Interviewer     string          `json:"interviewer,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Status          InterviewStatus `json:"status"`
}

// Where returns the meeting link for video interviews and the location otherwise.
func (i Interview) Where() string {
	if i.Type == InterviewVideo && i.MeetingLink != "" {
		return i.MeetingLink
	}
	return i.Location
}

// ScheduleInterviewRequest schedules an interview for an application.
type ScheduleInterviewRequest struct {
	ApplicationID   ID            `json:"applicationId"`
	ScheduledAt     time.Time     `json:"scheduledAt"`
	DurationMinutes int           `json:"durationMinutes"`
	Type            InterviewType `json:"type"`
	Location        string        `json:"location,omitempty"`
	MeetingLink     string        `json:"meetingLink,omitempty"`
	Interviewer     string        `json:"interviewer,omitempty"`
	Notes           string        `json:"notes,omitempty"`
}

// Validate normalizes and validates the request. now is used to reject
// interviews scheduled in the past.
func (r *ScheduleInterviewRequest) Validate(now time.Time) error {
	if r.ApplicationID.IsZero() {
		return errors.New("application_id is required")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("scheduled_at is required")
	}
	if r.ScheduledAt.Before(now) {
		return errors.New("scheduled_at must be in the future")
	}
	if r.DurationMinutes == 0 {
		r.DurationMinutes = defaultInterviewMinutes
	}
	if r.DurationMinutes < 0 || r.DurationMinutes > maxInterviewMinutes {
		return errors.New("duration must be between 1 and 480 minutes")
	}
	if !r.Type.Valid() {
		return errors.New("invalid interview type")
	}
	r.Location = strings.TrimSpace(r.Location)
	r.MeetingLink = strings.TrimSpace(r.MeetingLink)
	r.Interviewer = strings.TrimSpace(r.Interviewer)
	switch r.Type {
	case InterviewVideo:
		if r.MeetingLink == "" {
			return errors.New("meeting link is required for video interviews")
		}
		if !isHTTPURL(r.MeetingLink) {
			return errors.New("meeting link must start with http:// or https://")
		}
	case InterviewInPerson:
		if r.Location == "" {
			return errors.New("location is required for in-person interviews")
		}
	case InterviewPhone:
	}
	return nil
}

// UpdateInterviewStatusRequest changes the status of an interview.
type UpdateInterviewStatusRequest struct {
	Status InterviewStatus `json:"status"`
	Notes  string          `json:"notes,omitempty"`
}

// Validate validates UpdateInterviewStatusRequest.
func (r *UpdateInterviewStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return errors.New("invalid interview status")
	}
	r.Notes = strings.TrimSpace(r.Notes)
	return nil
}

// UpcomingInterviews returns scheduled interviews at or after now, soonest
// first, capped at limit (limit <= 0 means no cap).
func UpcomingInterviews(list []Interview, now time.Time, limit int) []Interview {
	out := make([]Interview, 0, len(list))
	for _, iv := range list {
		if iv.Status == InterviewScheduled && !iv.ScheduledAt.Before(now) {
			out = append(out, iv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortInterviews orders interviews by scheduled time; newest first when desc.
func SortInterviews(list []Interview, desc bool) []Interview {
	out := append([]Interview(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].ScheduledAt.After(out[j].ScheduledAt)
		}
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}
