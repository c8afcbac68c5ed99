//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"unicode"
)

// StatusKind selects which status vocabulary a value belongs to.
type StatusKind string

const (
	KindApplication StatusKind = "application"
	KindVacancy     StatusKind = "vacancy"
	KindInterview   StatusKind = "interview"
	KindDecision    StatusKind = "decision"
)

// Tone is the visual intent of a status badge. Templates map tones to CSS classes.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneInfo    Tone = "info"
	ToneAccent  Tone = "accent"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
	ToneDanger  Tone = "danger"
)

// Display is how a status value is shown to users.
type Display struct {
	Label string
	Tone  Tone
}

// UnknownLabel is used for blank status values.
const UnknownLabel = "Unknown"

var statusDisplays = map[StatusKind]map[string]Display{
	KindApplication: {
		string(ApplicationSubmitted):   {"Submitted", ToneInfo},
		string(ApplicationUnderReview): {"Under Review", ToneWarning},
		string(ApplicationShortlisted): {"Shortlisted", ToneAccent},
		string(ApplicationInterviewed): {"Interviewed", ToneAccent},
		string(ApplicationSelected):    {"Selected", ToneSuccess},
		string(ApplicationRejected):    {"Rejected", ToneDanger},
		string(ApplicationHold):        {"On Hold", ToneWarning},
	},
	KindVacancy: {
		string(VacancyStatusActive):   {"Active", ToneSuccess},
		string(VacancyStatusInactive): {"Inactive", ToneNeutral},
		string(VacancyStatusOnHold):   {"On Hold", ToneWarning},
	},
	KindInterview: {
		string(InterviewScheduled): {"Scheduled", ToneInfo},
		string(InterviewCompleted): {"Completed", ToneSuccess},
		string(InterviewCancelled): {"Cancelled", ToneDanger},
		"CANCELED":                 {"Cancelled", ToneDanger},
	},
	KindDecision: {
		string(DecisionSelected): {"Selected", ToneSuccess},
		string(DecisionRejected): {"Rejected", ToneDanger},
		string(DecisionHold):     {"On Hold", ToneWarning},
	},
}

// StatusDisplay maps a status value of the given kind to its label and tone.
// It is total: values it does not know (including values from an unknown
// kind) get a humanised label and the neutral tone, blank values get
// UnknownLabel. The returned Label is never empty.
func StatusDisplay(kind StatusKind, value string) Display {
	key := normalizeEnum(value)
	if d, ok := statusDisplays[kind][key]; ok {
		return d
	}
	label := Humanize(value)
	if label == "" {
		label = UnknownLabel
	}
	return Display{Label: label, Tone: ToneNeutral}
}

// Humanize turns an enum-style value ("UNDER_REVIEW", "in-person") into a
// title-cased label ("Under Review", "In Person").
func Humanize(value string) string {
	words := strings.FieldsFunc(strings.TrimSpace(value), func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// normalizeEnum upper-cases value and folds "-" and spaces to "_".
func normalizeEnum(value string) string {
	v := strings.ToUpper(strings.TrimSpace(value))
	v = strings.Join(strings.FieldsFunc(v, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}), "_")
	return v
}
