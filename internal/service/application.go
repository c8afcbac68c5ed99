package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

// AlreadyAppliedMessage is shown when an applicant applies to the same vacancy twice.
const AlreadyAppliedMessage = "You have already applied for this vacancy."

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Applicant ports.ApplicantAPI
	HR        ports.HRAPI
	Logger    *slog.Logger // Optional: structured logger
}

// ApplicationService handles applying (applicants) and reviewing (HR).
type ApplicationService struct {
	applicant ports.ApplicantAPI
	hr        ports.HRAPI
	logger    *slog.Logger
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	if opts.Applicant == nil || opts.HR == nil {
		panic("service: ApplicationService requires Applicant and HR APIs")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{applicant: opts.Applicant, hr: opts.HR, logger: logger}
}

// ApplyResult reports the outcome of Apply. AlreadyApplied means nothing was
// submitted and Application is the existing one, when known.
type ApplyResult struct {
	Application    model.Application
	AlreadyApplied bool
}

// Apply submits an application unless the applicant already has one for the
// vacancy. Duplicates are a no-op, whether caught from the applicant's own
// list or reported by the API as a conflict.
func (s *ApplicationService) Apply(ctx context.Context, token string, req model.ApplyRequest) (*ApplyResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	mine, err := s.applicant.ListMyApplications(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list my applications: %w", err)
	}
	if existing, ok := model.FindApplicationForVacancy(mine, req.VacancyID); ok {
		return &ApplyResult{Application: existing, AlreadyApplied: true}, nil
	}

	app, err := s.applicant.Apply(ctx, token, req)
	if err != nil {
		if apperrors.IsConflict(err) {
			s.logger.InfoContext(ctx, "duplicate application rejected by API", "vacancy_id", req.VacancyID)
			return &ApplyResult{AlreadyApplied: true}, nil
		}
		return nil, fmt.Errorf("apply to vacancy %s: %w", req.VacancyID, err)
	}
	return &ApplyResult{Application: app}, nil
}

// ListMine returns the applicant's applications matching opts.
func (s *ApplicationService) ListMine(ctx context.Context, token string, opts model.ApplicationListOptions) ([]model.Application, error) {
	apps, err := s.applicant.ListMyApplications(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list my applications: %w", err)
	}
	return model.FilterApplications(apps, opts), nil
}

// FindMine returns the applicant's application for a vacancy, if any.
func (s *ApplicationService) FindMine(ctx context.Context, token string, vacancyID model.ID) (model.Application, bool, error) {
	apps, err := s.applicant.ListMyApplications(ctx, token)
	if err != nil {
		return model.Application{}, false, fmt.Errorf("list my applications: %w", err)
	}
	app, ok := model.FindApplicationForVacancy(apps, vacancyID)
	return app, ok, nil
}

// List returns all applications (HR) matching opts.
func (s *ApplicationService) List(ctx context.Context, token string, opts model.ApplicationListOptions) ([]model.Application, error) {
	apps, err := s.hr.ListApplications(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return model.FilterApplications(apps, opts), nil
}

// Get retrieves one application (HR).
func (s *ApplicationService) Get(ctx context.Context, token string, id model.ID) (model.Application, error) {
	if id.IsZero() {
		return model.Application{}, apperrors.NotFound("Application not found")
	}
	app, err := s.hr.GetApplication(ctx, token, id)
	if err != nil {
		return model.Application{}, fmt.Errorf("get application %s: %w", id, err)
	}
	return app, nil
}

// UpdateStatus asks the API to move an application to target. Only values
// that are not statuses at all are rejected here; whether the transition is
// allowed is for the API to decide.
func (s *ApplicationService) UpdateStatus(
	ctx context.Context,
	token string,
	id model.ID,
	target string,
	notes string,
) (model.Application, error) {
	status, ok := model.ParseApplicationStatus(target)
	if !ok {
		return model.Application{}, apperrors.ValidationField("status", fmt.Sprintf("Unknown application status %q", target))
	}
	req := model.UpdateApplicationStatusRequest{Status: status, Notes: notes}
	if err := req.Validate(); err != nil {
		return model.Application{}, apperrors.Validation(err.Error())
	}

	app, err := s.hr.UpdateApplicationStatus(ctx, token, id, req)
	if err != nil {
		return model.Application{}, fmt.Errorf("update application %s status: %w", id, err)
	}
	s.logger.InfoContext(ctx, "application status updated", "application_id", id, "status", status)
	return app, nil
}
