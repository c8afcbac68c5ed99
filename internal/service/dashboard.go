package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

const dashboardListLimit = 5

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Applicant ports.ApplicantAPI
	HR        ports.HRAPI
	Config    DashboardConfig
}

// DashboardConfig holds optional dashboard settings.
type DashboardConfig struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// DashboardService assembles dashboards from independent API calls made
// concurrently. A failed section carries its own error; siblings are
// neither cancelled nor blanked.
type DashboardService struct {
	applicant ports.ApplicantAPI
	hr        ports.HRAPI
	logger    *slog.Logger
	now       func() time.Time
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Applicant == nil || opts.HR == nil {
		panic("service: DashboardService requires Applicant and HR APIs")
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Config.Now
	if now == nil {
		now = time.Now
	}
	return &DashboardService{applicant: opts.Applicant, hr: opts.HR, logger: logger, now: now}
}

// Section is one independently loaded part of a dashboard.
type Section[T any] struct {
	Data T
	Err  error
}

// Failed reports whether the section could not be loaded.
func (s Section[T]) Failed() bool { return s.Err != nil }

// Message is the user-facing error text for a failed section.
func (s Section[T]) Message() string { return apperrors.UserMessage(s.Err) }

// HRDashboard is the HR manager's landing page data.
type HRDashboard struct {
	Stats    Section[model.HRDashboardStats]
	Recent   Section[[]model.Application]
	Upcoming Section[[]model.Interview]
}

// ApplicantDashboard is the applicant's landing page data.
type ApplicantDashboard struct {
	Stats    Section[model.ApplicantDashboardStats]
	Recent   Section[[]model.Application]
	Upcoming Section[[]model.Interview]
}

// HR loads the HR dashboard sections concurrently.
func (s *DashboardService) HR(ctx context.Context, token string) *HRDashboard {
	d := &HRDashboard{}
	now := s.now()

	// Section errors are kept on each Section and never returned to the
	// group, so one failure does not cancel or blank its siblings.
	var g errgroup.Group
	g.Go(func() error {
		d.Stats.Data, d.Stats.Err = s.hr.HRDashboard(ctx, token)
		return nil
	})
	g.Go(func() error {
		apps, err := s.hr.ListApplications(ctx, token)
		d.Recent = Section[[]model.Application]{Data: model.RecentApplications(apps, dashboardListLimit), Err: err}
		return nil
	})
	g.Go(func() error {
		ivs, err := s.hr.ListInterviews(ctx, token)
		d.Upcoming = Section[[]model.Interview]{Data: model.UpcomingInterviews(ivs, now, dashboardListLimit), Err: err}
		return nil
	})
	_ = g.Wait()

	s.logSectionErrors(ctx, "hr", d.Stats.Err, d.Recent.Err, d.Upcoming.Err)
	return d
}

// Applicant loads the applicant dashboard sections concurrently.
func (s *DashboardService) Applicant(ctx context.Context, token string) *ApplicantDashboard {
	d := &ApplicantDashboard{}
	now := s.now()

	// Section errors are kept on each Section and never returned to the
	// group, so one failure does not cancel or blank its siblings.
	var g errgroup.Group
	g.Go(func() error {
		d.Stats.Data, d.Stats.Err = s.applicant.ApplicantDashboard(ctx, token)
		return nil
	})
	g.Go(func() error {
		apps, err := s.applicant.ListMyApplications(ctx, token)
		d.Recent = Section[[]model.Application]{Data: model.RecentApplications(apps, dashboardListLimit), Err: err}
		return nil
	})
	g.Go(func() error {
		ivs, err := s.applicant.ListMyInterviews(ctx, token)
		d.Upcoming = Section[[]model.Interview]{Data: model.UpcomingInterviews(ivs, now, dashboardListLimit), Err: err}
		return nil
	})
	_ = g.Wait()

	s.logSectionErrors(ctx, "applicant", d.Stats.Err, d.Recent.Err, d.Upcoming.Err)
	return d
}

// Unauthorized reports whether any section failed because the token was rejected.
func (d *HRDashboard) Unauthorized() bool {
	return isUnauthorized(d.Stats.Err, d.Recent.Err, d.Upcoming.Err)
}

// Unauthorized reports whether any section failed because the token was rejected.
func (d *ApplicantDashboard) Unauthorized() bool {
	return isUnauthorized(d.Stats.Err, d.Recent.Err, d.Upcoming.Err)
}

func isUnauthorized(errs ...error) bool {
	for _, err := range errs {
		if apperrors.IsUnauthorized(err) {
			return true
		}
	}
	return false
}

func (s *DashboardService) logSectionErrors(ctx context.Context, dashboard string, errs ...error) {
	names := []string{"stats", "recent_applications", "upcoming_interviews"}
	for i, err := range errs {
		if err != nil {
			s.logger.WarnContext(ctx, "dashboard section failed",
				"dashboard", dashboard,
				"section", names[i],
				"error", err,
			)
		}
	}
}
