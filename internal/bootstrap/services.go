package bootstrap

import (
	"log/slog"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/apiclient"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

// ServiceContainer holds every service the router needs.
type ServiceContainer struct {
	Auth         *service.AuthService
	Vacancies    *service.VacancyService
	Applications *service.ApplicationService
	Interviews   *service.InterviewService
	Decisions    *service.DecisionService
	Profiles     *service.ProfileService
	Dashboards   *service.DashboardService
}

// ServiceDeps contains dependencies for NewServices.
type ServiceDeps struct {
	API    *apiclient.Client
	Auth   *service.AuthService
	Logger *slog.Logger
}

// NewServices builds the domain services over the API client.
func NewServices(deps ServiceDeps) ServiceContainer {
	api := deps.API
	return ServiceContainer{
		Auth:         deps.Auth,
		Vacancies:    service.NewVacancyService(service.VacancyServiceOptions{API: api}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{Applicant: api, HR: api, Logger: deps.Logger}),
		Interviews:   service.NewInterviewService(service.InterviewServiceOptions{Applicant: api, HR: api}),
		Decisions:    service.NewDecisionService(service.DecisionServiceOptions{HR: api, Logger: deps.Logger}),
		Profiles:     service.NewProfileService(service.ProfileServiceOptions{Applicant: api, HR: api}),
		Dashboards: service.NewDashboardService(service.DashboardServiceOptions{
			Applicant: api,
			HR:        api,
			Config:    service.DashboardConfig{Logger: deps.Logger},
		}),
	}
}
