package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

// DecisionServiceOptions groups dependencies for DecisionService.
type DecisionServiceOptions struct {
	HR     ports.HRAPI
	Logger *slog.Logger // Optional: structured logger
}

// DecisionService records and lists hiring decisions.
type DecisionService struct {
	hr     ports.HRAPI
	logger *slog.Logger
}

// NewDecisionService constructs a new DecisionService.
func NewDecisionService(opts DecisionServiceOptions) *DecisionService {
	if opts.HR == nil {
		panic("service: DecisionService requires HR API")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DecisionService{hr: opts.HR, logger: logger}
}

// List returns decisions, optionally only one outcome, newest first.
func (s *DecisionService) List(ctx context.Context, token string, outcome *model.DecisionOutcome) ([]model.HiringDecision, error) {
	list, err := s.hr.ListDecisions(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	out := make([]model.HiringDecision, 0, len(list))
	for _, d := range list {
		if outcome == nil || d.Decision == *outcome {
			out = append(out, d)
		}
	}
	sortDecisions(out)
	return out, nil
}

// ForApplication returns the decision recorded for an application, if any.
func (s *DecisionService) ForApplication(ctx context.Context, token string, applicationID model.ID) (model.HiringDecision, bool, error) {
	list, err := s.hr.ListDecisions(ctx, token)
	if err != nil {
		return model.HiringDecision{}, false, fmt.Errorf("list decisions: %w", err)
	}
	d, ok := model.DecisionFor(list, applicationID)
	return d, ok, nil
}

// Record validates and records a decision. The API moves the application to
// the matching terminal status.
func (s *DecisionService) Record(ctx context.Context, token string, req model.RecordDecisionRequest) (model.HiringDecision, error) {
	if err := req.Validate(); err != nil {
		return model.HiringDecision{}, apperrors.Validation(err.Error())
	}
	d, err := s.hr.RecordDecision(ctx, token, req)
	if err != nil {
		return model.HiringDecision{}, fmt.Errorf("record decision: %w", err)
	}
	s.logger.InfoContext(ctx, "hiring decision recorded", "application_id", req.ApplicationID, "decision", req.Decision)
	return d, nil
}

func sortDecisions(list []model.HiringDecision) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].DecidedAt.After(list[j].DecidedAt) })
}
