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

func TestDecisionService_ListNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	hr := mocks.NewMockHRAPI(ctrl)
	svc := NewDecisionService(DecisionServiceOptions{HR: hr})
	now := testutil.TestTime()

	hr.EXPECT().ListDecisions(gomock.Any(), "tok").Return([]model.HiringDecision{
		{ID: "d1", ApplicationID: "1", Decision: model.DecisionRejected, DecidedAt: now},
		{ID: "d2", ApplicationID: "2", Decision: model.DecisionSelected, DecidedAt: now.Add(time.Hour)},
		{ID: "d3", ApplicationID: "3", Decision: model.DecisionSelected, DecidedAt: now.Add(-time.Hour)},
	}, nil).Times(3)

	all, err := svc.List(context.Background(), "tok", nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []model.ID{"d2", "d1", "d3"}, []model.ID{all[0].ID, all[1].ID, all[2].ID})

	selected := model.DecisionSelected
	only, err := svc.List(context.Background(), "tok", &selected)
	require.NoError(t, err)
	assert.Len(t, only, 2)

	d, ok, err := svc.ForApplication(context.Background(), "tok", "3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.ID("d3"), d.ID)
}

func TestDecisionService_RecordDropsOfferForNonSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	hr := mocks.NewMockHRAPI(ctrl)
	svc := NewDecisionService(DecisionServiceOptions{HR: hr})

	hr.EXPECT().RecordDecision(gomock.Any(), "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req model.RecordDecisionRequest) (model.HiringDecision, error) {
			assert.Nil(t, req.OfferedSalary)
			assert.True(t, req.StartDate.IsZero())
			return model.HiringDecision{ID: "d9", ApplicationID: req.ApplicationID, Decision: req.Decision}, nil
		})

	d, err := svc.Record(context.Background(), "tok", model.RecordDecisionRequest{
		ApplicationID: "5",
		Decision:      model.DecisionRejected,
		OfferedSalary: testutil.Float64Ptr(1000),
		StartDate:     model.NewDate(testutil.TestTime()),
	})
	require.NoError(t, err)
	assert.Equal(t, model.DecisionRejected, d.Decision)

	_, err = svc.Record(context.Background(), "tok", model.RecordDecisionRequest{ApplicationID: "5", Decision: "MAYBE"})
	assert.True(t, apperrors.IsValidation(err))
}
