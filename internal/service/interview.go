package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

// InterviewServiceOptions groups dependencies for InterviewService.
type InterviewServiceOptions struct {
	Applicant ports.ApplicantAPI
	HR        ports.HRAPI
	Now       func() time.Time // Optional: defaults to time.Now
}

// InterviewService schedules interviews (HR) and lists them for both roles.
type InterviewService struct {
	applicant ports.ApplicantAPI
	hr        ports.HRAPI
	now       func() time.Time
}

// NewInterviewService constructs a new InterviewService.
func NewInterviewService(opts InterviewServiceOptions) *InterviewService {
	if opts.Applicant == nil || opts.HR == nil {
		panic("service: InterviewService requires Applicant and HR APIs")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &InterviewService{applicant: opts.Applicant, hr: opts.HR, now: now}
}

// InterviewListOptions filters interview lists.
type InterviewListOptions struct {
	Status        *model.InterviewStatus
	ApplicationID model.ID
	// Past orders newest first; otherwise soonest first.
	Past bool
}

func filterInterviews(list []model.Interview, opts InterviewListOptions) []model.Interview {
	out := make([]model.Interview, 0, len(list))
	for _, iv := range list {
		if opts.Status != nil && iv.Status != *opts.Status {
			continue
		}
		if !opts.ApplicationID.IsZero() && iv.ApplicationID != opts.ApplicationID {
			continue
		}
		out = append(out, iv)
	}
	return model.SortInterviews(out, opts.Past)
}

// ListAll returns every interview (HR).
func (s *InterviewService) ListAll(ctx context.Context, token string, opts InterviewListOptions) ([]model.Interview, error) {
	list, err := s.hr.ListInterviews(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return filterInterviews(list, opts), nil
}

// ListMine returns the applicant's interviews.
func (s *InterviewService) ListMine(ctx context.Context, token string, opts InterviewListOptions) ([]model.Interview, error) {
	list, err := s.applicant.ListMyInterviews(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list my interviews: %w", err)
	}
	return filterInterviews(list, opts), nil
}

// Schedule validates and books an interview.
func (s *InterviewService) Schedule(ctx context.Context, token string, req model.ScheduleInterviewRequest) (model.Interview, error) {
	if err := req.Validate(s.now()); err != nil {
		return model.Interview{}, apperrors.Validation(err.Error())
	}
	iv, err := s.hr.ScheduleInterview(ctx, token, req)
	if err != nil {
		return model.Interview{}, fmt.Errorf("schedule interview: %w", err)
	}
	return iv, nil
}

// UpdateStatus marks an interview completed or cancelled.
func (s *InterviewService) UpdateStatus(ctx context.Context, token string, id model.ID, raw, notes string) (model.Interview, error) {
	status, ok := model.ParseInterviewStatus(raw)
	if !ok {
		return model.Interview{}, apperrors.ValidationField("status", fmt.Sprintf("Unknown interview status %q", raw))
	}
	req := model.UpdateInterviewStatusRequest{Status: status, Notes: notes}
	if err := req.Validate(); err != nil {
		return model.Interview{}, apperrors.Validation(err.Error())
	}
	iv, err := s.hr.UpdateInterviewStatus(ctx, token, id, req)
	if err != nil {
		return model.Interview{}, fmt.Errorf("update interview %s status: %w", id, err)
	}
	return iv, nil
}
