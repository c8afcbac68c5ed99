package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacancyRequest_Validate(t *testing.T) {
	valid := func() VacancyRequest {
		return VacancyRequest{Title: " Backend Engineer ", Department: "Engineering", Location: "Berlin", Description: "Build APIs"}
	}

	r := valid()
	require.NoError(t, r.Validate())
	assert.Equal(t, "Backend Engineer", r.Title)
	assert.Equal(t, EmploymentFullTime, r.EmploymentType)
	assert.Equal(t, VacancyStatusActive, r.Status)

	tests := []struct {
		name   string
		mutate func(*VacancyRequest)
		errMsg string
	}{
		{"missing title", func(r *VacancyRequest) { r.Title = "  " }, "title is required"},
		{"missing department", func(r *VacancyRequest) { r.Department = "" }, "department is required"},
		{"inverted salary", func(r *VacancyRequest) { r.SalaryMin, r.SalaryMax = fptr(10), fptr(5) }, "salary_min cannot exceed"},
		{"bad status", func(r *VacancyRequest) { r.Status = "OPEN" }, "invalid status"},
		{"bad employment type", func(r *VacancyRequest) { r.EmploymentType = "GIG" }, "invalid employment type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestUpdateApplicationStatusRequest_Validate(t *testing.T) {
	// Any workflow value is accepted, including moving "backwards".
	r := UpdateApplicationStatusRequest{Status: ApplicationSubmitted}
	assert.NoError(t, r.Validate())

	r = UpdateApplicationStatusRequest{Status: "HIRED"}
	assert.Error(t, r.Validate())
}

func TestScheduleInterviewRequest_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r := ScheduleInterviewRequest{ApplicationID: "5", ScheduledAt: now.Add(24 * time.Hour), Type: InterviewPhone}
	require.NoError(t, r.Validate(now))
	assert.Equal(t, 60, r.DurationMinutes)

	r = ScheduleInterviewRequest{ApplicationID: "5", ScheduledAt: now.Add(-time.Hour), Type: InterviewPhone}
	assert.ErrorContains(t, r.Validate(now), "future")

	r = ScheduleInterviewRequest{ApplicationID: "5", ScheduledAt: now.Add(time.Hour), Type: InterviewVideo}
	assert.ErrorContains(t, r.Validate(now), "meeting link")

	r = ScheduleInterviewRequest{ApplicationID: "5", ScheduledAt: now.Add(time.Hour), Type: InterviewInPerson}
	assert.ErrorContains(t, r.Validate(now), "location")
}

func TestUpcomingInterviews(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	list := []Interview{
		{ID: "late", ScheduledAt: now.Add(48 * time.Hour), Status: InterviewScheduled},
		{ID: "past", ScheduledAt: now.Add(-time.Hour), Status: InterviewScheduled},
		{ID: "soon", ScheduledAt: now.Add(time.Hour), Status: InterviewScheduled},
		{ID: "cancelled", ScheduledAt: now.Add(2 * time.Hour), Status: InterviewCancelled},
	}
	got := UpcomingInterviews(list, now, 0)
	require.Len(t, got, 2)
	assert.Equal(t, ID("soon"), got[0].ID)
	assert.Equal(t, ID("late"), got[1].ID)
	assert.Len(t, UpcomingInterviews(list, now, 1), 1)
}

func TestRecordDecisionRequest_Validate(t *testing.T) {
	r := RecordDecisionRequest{ApplicationID: "5", Decision: DecisionRejected, OfferedSalary: fptr(1000)}
	require.NoError(t, r.Validate())
	assert.Nil(t, r.OfferedSalary, "offer details are dropped for non-selected outcomes")

	r = RecordDecisionRequest{ApplicationID: "5", Decision: "MAYBE"}
	assert.Error(t, r.Validate())

	r = RecordDecisionRequest{ApplicationID: "5", Decision: DecisionSelected, OfferedSalary: fptr(-1)}
	assert.Error(t, r.Validate())
}

func TestProfiles_Validate(t *testing.T) {
	p := ApplicantProfile{
		FirstName: " Ana ", LastName: "Ruiz", Email: "ana@example.com",
		Skills: []string{"Go", " go ", "", "SQL"},
	}
	require.NoError(t, p.Validate())
	assert.Equal(t, "Ana", p.FirstName)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
	assert.Equal(t, "Ana Ruiz", p.FullName())

	p.Email = "not-an-email"
	assert.ErrorContains(t, p.Validate(), "email")

	h := HRProfile{FirstName: "Sam", Email: "sam@example.com"}
	assert.ErrorContains(t, h.Validate(), "last name")

	assert.Equal(t, []string{"Go", "Kubernetes"}, SplitSkills("Go, Kubernetes,\n go"))
}
