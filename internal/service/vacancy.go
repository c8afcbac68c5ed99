package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

// VacancyServiceOptions groups dependencies for VacancyService.
type VacancyServiceOptions struct {
	API ports.VacancyAPI
	Now func() time.Time // Optional: defaults to time.Now
}

// VacancyService lists and manages job postings. Filtering and sorting are
// applied to the full list the API returns.
type VacancyService struct {
	api ports.VacancyAPI
	now func() time.Time
}

// NewVacancyService constructs a new VacancyService.
func NewVacancyService(opts VacancyServiceOptions) *VacancyService {
	if opts.API == nil {
		panic("service: VacancyService requires API")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &VacancyService{api: opts.API, now: now}
}

// VacancyList is a filtered list together with the facets of the unfiltered one.
type VacancyList struct {
	Items  []model.Vacancy
	Total  int
	Facets model.VacancyFacets
}

// List returns every vacancy matching opts.
func (s *VacancyService) List(ctx context.Context, token string, opts model.VacancyListOptions) (*VacancyList, error) {
	all, err := s.api.ListVacancies(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	return &VacancyList{
		Items:  model.FilterVacancies(all, opts),
		Total:  len(all),
		Facets: model.FacetsOf(all),
	}, nil
}

// ListOpen returns active vacancies whose deadline has not passed, for applicants.
func (s *VacancyService) ListOpen(ctx context.Context, token string, opts model.VacancyListOptions) (*VacancyList, error) {
	all, err := s.api.ListVacancies(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	now := s.now()
	open := make([]model.Vacancy, 0, len(all))
	for _, v := range all {
		if v.IsOpen(now) {
			open = append(open, v)
		}
	}
	opts.Status = nil
	return &VacancyList{
		Items:  model.FilterVacancies(open, opts),
		Total:  len(open),
		Facets: model.FacetsOf(open),
	}, nil
}

// Get retrieves a vacancy by ID.
func (s *VacancyService) Get(ctx context.Context, token string, id model.ID) (model.Vacancy, error) {
	if id.IsZero() {
		return model.Vacancy{}, apperrors.NotFound("Vacancy not found")
	}
	v, err := s.api.GetVacancy(ctx, token, id)
	if err != nil {
		return model.Vacancy{}, fmt.Errorf("get vacancy %s: %w", id, err)
	}
	return v, nil
}

// Create validates and creates a vacancy.
func (s *VacancyService) Create(ctx context.Context, token string, req model.VacancyRequest) (model.Vacancy, error) {
	if err := req.Validate(); err != nil {
		return model.Vacancy{}, apperrors.Validation(err.Error())
	}
	v, err := s.api.CreateVacancy(ctx, token, req)
	if err != nil {
		return model.Vacancy{}, fmt.Errorf("create vacancy: %w", err)
	}
	return v, nil
}

// Update validates and replaces a vacancy.
func (s *VacancyService) Update(ctx context.Context, token string, id model.ID, req model.VacancyRequest) (model.Vacancy, error) {
	if err := req.Validate(); err != nil {
		return model.Vacancy{}, apperrors.Validation(err.Error())
	}
	v, err := s.api.UpdateVacancy(ctx, token, id, req)
	if err != nil {
		return model.Vacancy{}, fmt.Errorf("update vacancy %s: %w", id, err)
	}
	return v, nil
}

// Delete removes a vacancy.
func (s *VacancyService) Delete(ctx context.Context, token string, id model.ID) error {
	if err := s.api.DeleteVacancy(ctx, token, id); err != nil {
		return fmt.Errorf("delete vacancy %s: %w", id, err)
	}
	return nil
}

// SetStatus changes a vacancy's status. raw is parsed leniently.
func (s *VacancyService) SetStatus(ctx context.Context, token string, id model.ID, raw string) (model.Vacancy, error) {
	status, ok := model.ParseVacancyStatus(raw)
	if !ok {
		return model.Vacancy{}, apperrors.ValidationField("status", fmt.Sprintf("Unknown vacancy status %q", raw))
	}
	v, err := s.api.SetVacancyStatus(ctx, token, id, status)
	if err != nil {
		return model.Vacancy{}, fmt.Errorf("set vacancy %s status: %w", id, err)
	}
	return v, nil
}
