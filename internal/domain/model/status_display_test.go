package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDisplay_KnownValues(t *testing.T) {
	cases := map[StatusKind][]string{
		KindApplication: {"SUBMITTED", "UNDER_REVIEW", "SHORTLISTED", "INTERVIEWED", "SELECTED", "REJECTED", "HOLD"},
		KindVacancy:     {"ACTIVE", "INACTIVE", "ON_HOLD"},
		KindInterview:   {"SCHEDULED", "COMPLETED", "CANCELLED"},
		KindDecision:    {"SELECTED", "REJECTED", "HOLD"},
	}
	for kind, values := range cases {
		for _, v := range values {
			d := StatusDisplay(kind, v)
			assert.NotEmpty(t, d.Label, "%s/%s", kind, v)
			assert.NotEmpty(t, d.Tone, "%s/%s", kind, v)
		}
	}

	assert.Equal(t, Display{Label: "Under Review", Tone: ToneWarning}, StatusDisplay(KindApplication, "UNDER_REVIEW"))
	assert.Equal(t, Display{Label: "Selected", Tone: ToneSuccess}, StatusDisplay(KindDecision, "selected"))
	assert.Equal(t, Display{Label: "Cancelled", Tone: ToneDanger}, StatusDisplay(KindInterview, "canceled"))
	assert.Equal(t, Display{Label: "On Hold", Tone: ToneWarning}, StatusDisplay(KindVacancy, "on-hold"))
}

func TestStatusDisplay_EveryWorkflowStatusHasLabel(t *testing.T) {
	for _, s := range ApplicationStatuses() {
		d := StatusDisplay(KindApplication, string(s))
		assert.NotEqual(t, ToneNeutral, d.Tone, "workflow status %s should have a specific tone", s)
		assert.NotEqual(t, string(s), d.Label)
	}
}

func TestStatusDisplay_UnknownValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		kind  StatusKind
		value string
		want  Display
	}{
		{"unknown application status", KindApplication, "OFFER_EXTENDED", Display{"Offer Extended", ToneNeutral}},
		{"lowercase unknown", KindVacancy, "archived", Display{"Archived", ToneNeutral}},
		{"blank", KindApplication, "", Display{UnknownLabel, ToneNeutral}},
		{"whitespace", KindInterview, "   ", Display{UnknownLabel, ToneNeutral}},
		{"separators only", KindDecision, "__", Display{UnknownLabel, ToneNeutral}},
		{"unknown kind", StatusKind("offer"), "PENDING", Display{"Pending", ToneNeutral}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusDisplay(tt.kind, tt.value)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Label)
		})
	}
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "In Person", Humanize("IN_PERSON"))
	assert.Equal(t, "Full Time", Humanize("full-time"))
	assert.Equal(t, "", Humanize(""))
}

func TestApplicationStatus_Workflow(t *testing.T) {
	statuses := ApplicationStatuses()
	assert.Equal(t, ApplicationSubmitted, statuses[0])
	for i := 1; i < 4; i++ {
		assert.Greater(t, statuses[i].Ordinal(), statuses[i-1].Ordinal())
	}
	for _, s := range []ApplicationStatus{ApplicationSelected, ApplicationRejected, ApplicationHold} {
		assert.True(t, s.IsTerminal())
		assert.Greater(t, s.Ordinal(), ApplicationInterviewed.Ordinal())
	}
	assert.False(t, ApplicationShortlisted.IsTerminal())
	assert.Equal(t, -1, ApplicationStatus("BOGUS").Ordinal())

	s, ok := ParseApplicationStatus(" under review ")
	assert.True(t, ok)
	assert.Equal(t, ApplicationUnderReview, s)

	_, ok = ParseApplicationStatus("hired")
	assert.False(t, ok)
}

func TestStatusBreakdown(t *testing.T) {
	rows := StatusBreakdown(map[string]int{
		"REJECTED":  1,
		"SUBMITTED": 4,
		"ARCHIVED":  2,
	})
	if assert.Len(t, rows, 3) {
		assert.Equal(t, ApplicationSubmitted, rows[0].Status)
		assert.Equal(t, ApplicationRejected, rows[1].Status)
		assert.Equal(t, "Archived", rows[2].Display.Label)
		assert.Equal(t, 2, rows[2].Count)
	}
}
