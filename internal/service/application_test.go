package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/apiclient"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/mocks"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/testutil"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/testutil/fakeapi"
)

func newFakeBackedClient(t *testing.T, api *fakeapi.Server) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(apiclient.Options{BaseURL: api.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func TestApplicationService_ApplyTwiceToVacancy42(t *testing.T) {
	api := fakeapi.New(t)
	applicant := api.AddAccount(fakeapi.Account{Email: "ann@example.com", Password: "pw", Name: "Ann Lee", Role: "APPLICANT"})
	api.AddVacancy(testutil.NewVacancy("42").WithTitle("Backend Engineer").Build())

	client := newFakeBackedClient(t, api)
	svc := NewApplicationService(ApplicationServiceOptions{Applicant: client, HR: client})
	ctx := context.Background()

	first, err := svc.Apply(ctx, applicant.Token, model.ApplyRequest{VacancyID: "42", CoverLetter: "Hello"})
	require.NoError(t, err)
	assert.False(t, first.AlreadyApplied)
	assert.Equal(t, model.ApplicationSubmitted, first.Application.Status)

	second, err := svc.Apply(ctx, applicant.Token, model.ApplyRequest{VacancyID: "42"})
	require.NoError(t, err)
	assert.True(t, second.AlreadyApplied)
	assert.Equal(t, first.Application.ID, second.Application.ID)

	assert.Len(t, api.Applications(), 1, "no duplicate is created")
	assert.Equal(t, 1, api.CountRequests(http.MethodPost, "/applicant/applications"))
}

func TestApplicationService_ApplyConflictFromAPIIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	applicant := mocks.NewMockApplicantAPI(ctrl)
	svc := NewApplicationService(ApplicationServiceOptions{Applicant: applicant, HR: mocks.NewMockHRAPI(ctrl)})

	gomock.InOrder(
		applicant.EXPECT().ListMyApplications(gomock.Any(), "tok").Return(nil, nil),
		applicant.EXPECT().
			Apply(gomock.Any(), "tok", model.ApplyRequest{VacancyID: "42"}).
			Return(model.Application{}, &apiclient.Error{Status: http.StatusConflict, Message: "already applied"}),
	)

	res, err := svc.Apply(context.Background(), "tok", model.ApplyRequest{VacancyID: "42"})
	require.NoError(t, err)
	assert.True(t, res.AlreadyApplied)
}

func TestApplicationService_ApplyErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	applicant := mocks.NewMockApplicantAPI(ctrl)
	svc := NewApplicationService(ApplicationServiceOptions{Applicant: applicant, HR: mocks.NewMockHRAPI(ctrl)})
	ctx := context.Background()

	_, err := svc.Apply(ctx, "tok", model.ApplyRequest{})
	assert.True(t, apperrors.IsValidation(err))

	applicant.EXPECT().ListMyApplications(gomock.Any(), "tok").Return(nil, nil)
	applicant.EXPECT().Apply(gomock.Any(), "tok", gomock.Any()).
		Return(model.Application{}, &apiclient.Error{Status: http.StatusNotFound, Message: "Vacancy not found"})

	_, err = svc.Apply(ctx, "tok", model.ApplyRequest{VacancyID: "7"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Vacancy not found", apperrors.UserMessage(err))
}

func TestApplicationService_UpdateStatusSendsTargetAsIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	hr := mocks.NewMockHRAPI(ctrl)
	svc := NewApplicationService(ApplicationServiceOptions{Applicant: mocks.NewMockApplicantAPI(ctrl), HR: hr})
	ctx := context.Background()

	// Skipping stages is allowed client-side; the API decides.
	hr.EXPECT().
		UpdateApplicationStatus(gomock.Any(), "tok", model.ID("9"), model.UpdateApplicationStatusRequest{Status: model.ApplicationInterviewed}).
		Return(model.Application{ID: "9", Status: model.ApplicationInterviewed}, nil)

	app, err := svc.UpdateStatus(ctx, "tok", "9", "interviewed", "")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationInterviewed, app.Status)

	_, err = svc.UpdateStatus(ctx, "tok", "9", "HIRED", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "status", apperrors.GetField(err))
}

func TestApplicationService_ListFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	hr := mocks.NewMockHRAPI(ctrl)
	applicant := mocks.NewMockApplicantAPI(ctrl)
	svc := NewApplicationService(ApplicationServiceOptions{Applicant: applicant, HR: hr})

	base := testutil.TestTime()
	apps := []model.Application{
		testutil.NewApplication("1", "42").WithStatus(model.ApplicationSubmitted).WithApplicant("Ann Lee", "ann@example.com").WithAppliedAt(base).Build(),
		testutil.NewApplication("2", "42").WithStatus(model.ApplicationShortlisted).WithApplicant("Bo Chen", "bo@example.com").WithAppliedAt(base.Add(time.Hour)).Build(),
		testutil.NewApplication("3", "43").WithStatus(model.ApplicationShortlisted).WithApplicant("Cy Diaz", "cy@example.com").WithAppliedAt(base.Add(2 * time.Hour)).Build(),
	}
	hr.EXPECT().ListApplications(gomock.Any(), "tok").Return(apps, nil).Times(2)

	shortlisted := model.ApplicationShortlisted
	got, err := svc.List(context.Background(), "tok", model.ApplicationListOptions{Status: &shortlisted})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.ID("3"), got[0].ID, "newest first")

	got, err = svc.List(context.Background(), "tok", model.ApplicationListOptions{VacancyID: "42", Q: "bo"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.ID("2"), got[0].ID)

	applicant.EXPECT().ListMyApplications(gomock.Any(), "tok").Return(apps[:1], nil)
	mine, found, err := svc.FindMine(context.Background(), "tok", "42")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.ID("1"), mine.ID)
}
