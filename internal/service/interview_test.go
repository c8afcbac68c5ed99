package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/mocks"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/testutil"
)

func newInterviewFixture(t *testing.T) (*InterviewService, *mocks.MockApplicantAPI, *mocks.MockHRAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	applicant := mocks.NewMockApplicantAPI(ctrl)
	hr := mocks.NewMockHRAPI(ctrl)
	svc := NewInterviewService(InterviewServiceOptions{
		Applicant: applicant,
		HR:        hr,
		Now:       testutil.FixedTimeFunc(testutil.TestTime()),
	})
	return svc, applicant, hr
}

func TestInterviewService_Schedule(t *testing.T) {
	svc, _, hr := newInterviewFixture(t)
	now := testutil.TestTime()
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.ScheduleInterviewRequest
		want string
	}{
		{"past", model.ScheduleInterviewRequest{ApplicationID: "1", ScheduledAt: now.Add(-time.Minute), Type: model.InterviewPhone}, "in the future"},
		{"video without link", model.ScheduleInterviewRequest{ApplicationID: "1", ScheduledAt: now.Add(time.Hour), Type: model.InterviewVideo}, "meeting link is required"},
		{"in person without location", model.ScheduleInterviewRequest{ApplicationID: "1", ScheduledAt: now.Add(time.Hour), Type: model.InterviewInPerson}, "location is required"},
		{"no application", model.ScheduleInterviewRequest{ScheduledAt: now.Add(time.Hour), Type: model.InterviewPhone}, "application_id is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Schedule(ctx, "tok", tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	hr.EXPECT().ScheduleInterview(gomock.Any(), "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req model.ScheduleInterviewRequest) (model.Interview, error) {
			assert.Equal(t, 60, req.DurationMinutes)
			return model.Interview{ID: "i1", ApplicationID: req.ApplicationID, ScheduledAt: req.ScheduledAt, Type: req.Type, Status: model.InterviewScheduled}, nil
		})
	iv, err := svc.Schedule(ctx, "tok", model.ScheduleInterviewRequest{
		ApplicationID: "1", ScheduledAt: now.Add(time.Hour), Type: model.InterviewVideo, MeetingLink: "https://meet.example.com/x",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ID("i1"), iv.ID)
}

func TestInterviewService_ListFiltersAndOrders(t *testing.T) {
	svc, applicant, hr := newInterviewFixture(t)
	now := testutil.TestTime()
	list := []model.Interview{
		{ID: "a", ApplicationID: "1", ScheduledAt: now.Add(2 * time.Hour), Status: model.InterviewScheduled},
		{ID: "b", ApplicationID: "2", ScheduledAt: now.Add(time.Hour), Status: model.InterviewScheduled},
		{ID: "c", ApplicationID: "1", ScheduledAt: now.Add(-time.Hour), Status: model.InterviewCompleted},
	}
	hr.EXPECT().ListInterviews(gomock.Any(), "tok").Return(list, nil)
	applicant.EXPECT().ListMyInterviews(gomock.Any(), "tok").Return(list, nil)

	scheduled := model.InterviewScheduled
	got, err := svc.ListAll(context.Background(), "tok", InterviewListOptions{Status: &scheduled})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.ID("b"), got[0].ID)

	got, err = svc.ListMine(context.Background(), "tok", InterviewListOptions{ApplicationID: "1", Past: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.ID("a"), got[0].ID)
}

func TestInterviewService_UpdateStatus(t *testing.T) {
	svc, _, hr := newInterviewFixture(t)

	hr.EXPECT().UpdateInterviewStatus(gomock.Any(), "tok", model.ID("i1"),
		model.UpdateInterviewStatusRequest{Status: model.InterviewCompleted, Notes: "went well"}).
		Return(model.Interview{ID: "i1", Status: model.InterviewCompleted}, nil)

	iv, err := svc.UpdateStatus(context.Background(), "tok", "i1", "completed", " went well ")
	require.NoError(t, err)
	assert.Equal(t, model.InterviewCompleted, iv.Status)

	_, err = svc.UpdateStatus(context.Background(), "tok", "i1", "postponed", "")
	assert.Equal(t, "status", apperrors.GetField(err))
}
