package core

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		kind  string
		value any
		want  []string
	}{
		{"application", model.ApplicationUnderReview, []string{"badge-warning", "Under Review", `data-status="UNDER_REVIEW"`}},
		{"vacancy", "on_hold", []string{"badge-warning", "On Hold"}},
		{"interview", model.InterviewCancelled, []string{"badge-danger", "Cancelled"}},
		{"application", "WITHDRAWN", []string{"badge-neutral", "Withdrawn"}},
		{"application", "", []string{"badge-neutral", model.UnknownLabel}},
		{"mystery", "<script>", []string{"badge-neutral", "&lt;script&gt;"}},
	}
	for _, tt := range tests {
		got := string(StatusBadge(tt.kind, tt.value))
		for _, w := range tt.want {
			assert.Contains(t, got, w, "%s/%v", tt.kind, tt.value)
		}
		assert.NotContains(t, got, "<script>")
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "-1,234,567", FormatNumber(int64(-1234567)))
	assert.Equal(t, "1.5", FormatNumber(1.5))
}

func TestDict(t *testing.T) {
	m, err := dict("Kind", "application", "Value", 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Kind": "application", "Value": 3}, m)

	_, err = dict("odd")
	require.Error(t, err)
	_, err = dict(1, 2)
	require.Error(t, err)
}

func TestFuncs_InTemplate(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var tpl *template.Template
	funcs := Funcs(Deps{
		Template:           &tpl,
		ContentTemplateFor: func(page string) string { return page + "-content" },
		Now:                func() time.Time { return now },
	})
	tpl = template.Must(template.New("root").Funcs(funcs).Parse(
		`{{define "jobs-content"}}<p>{{statusLabel "vacancy" .Status}} {{relativeTime .At}} {{dateLabel .Deadline}} {{fieldError .Errors "title"}}</p>{{end}}` +
			`{{define "page"}}{{renderSection "jobs" .}}{{end}}`,
	))

	var b strings.Builder
	require.NoError(t, tpl.ExecuteTemplate(&b, "page", map[string]any{
		"Status":   model.VacancyStatusActive,
		"At":       now.Add(-2 * time.Hour),
		"Deadline": model.NewDate(time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)),
		"Errors":   map[string]string{"title": "Title is required."},
	}))
	assert.Equal(t, "<p>Active 2 hours ago Apr 30, 2026 Title is required.</p>", b.String())
}

func TestFormValue(t *testing.T) {
	assert.Equal(t, "Berlin", formValue(map[string]string{"location": "Berlin"}, "location"))
	assert.Empty(t, formValue(map[string]string{}, "location"))
	assert.Empty(t, formValue(nil, "location"))
	assert.Empty(t, formValue(map[string]any{"location": "Berlin"}, "location"))
}

func TestAmount(t *testing.T) {
	salary := 85000.0
	assert.Equal(t, "85,000", Amount(&salary))
	assert.Equal(t, "1,234.50", Amount(1234.5))
	assert.Empty(t, Amount((*float64)(nil)))
}
