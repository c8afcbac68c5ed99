package ports

import (
	"context"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
)

// Every call below is made on behalf of a signed-in user; token is that
// user's bearer token. Each method maps to exactly one remote request.

// VacancyAPI manages job postings.
type VacancyAPI interface {
	ListVacancies(ctx context.Context, token string) ([]model.Vacancy, error)
	GetVacancy(ctx context.Context, token string, id model.ID) (model.Vacancy, error)
	CreateVacancy(ctx context.Context, token string, req model.VacancyRequest) (model.Vacancy, error)
	UpdateVacancy(ctx context.Context, token string, id model.ID, req model.VacancyRequest) (model.Vacancy, error)
	DeleteVacancy(ctx context.Context, token string, id model.ID) error
	SetVacancyStatus(ctx context.Context, token string, id model.ID, status model.VacancyStatus) (model.Vacancy, error)
}

// ApplicantAPI covers the applicant's own resources.
type ApplicantAPI interface {
	GetApplicantProfile(ctx context.Context, token string) (model.ApplicantProfile, error)
	UpdateApplicantProfile(ctx context.Context, token string, p model.ApplicantProfile) (model.ApplicantProfile, error)
	ListMyApplications(ctx context.Context, token string) ([]model.Application, error)
	Apply(ctx context.Context, token string, req model.ApplyRequest) (model.Application, error)
	ListMyInterviews(ctx context.Context, token string) ([]model.Interview, error)
	ApplicantDashboard(ctx context.Context, token string) (model.ApplicantDashboardStats, error)
}

// HRAPI covers the HR manager's resources.
type HRAPI interface {
	GetHRProfile(ctx context.Context, token string) (model.HRProfile, error)
	UpdateHRProfile(ctx context.Context, token string, p model.HRProfile) (model.HRProfile, error)
	ListApplications(ctx context.Context, token string) ([]model.Application, error)
	GetApplication(ctx context.Context, token string, id model.ID) (model.Application, error)
	UpdateApplicationStatus(
		ctx context.Context,
		token string,
		id model.ID,
		req model.UpdateApplicationStatusRequest,
	) (model.Application, error)
	ListInterviews(ctx context.Context, token string) ([]model.Interview, error)
	ScheduleInterview(ctx context.Context, token string, req model.ScheduleInterviewRequest) (model.Interview, error)
	UpdateInterviewStatus(
		ctx context.Context,
		token string,
		id model.ID,
		req model.UpdateInterviewStatusRequest,
	) (model.Interview, error)
	ListDecisions(ctx context.Context, token string) ([]model.HiringDecision, error)
	RecordDecision(ctx context.Context, token string, req model.RecordDecisionRequest) (model.HiringDecision, error)
	HRDashboard(ctx context.Context, token string) (model.HRDashboardStats, error)
}
