package service

import (
	"context"
	"fmt"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Applicant ports.ApplicantAPI
	HR        ports.HRAPI
}

// ProfileService reads and saves the signed-in user's profile.
type ProfileService struct {
	applicant ports.ApplicantAPI
	hr        ports.HRAPI
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	if opts.Applicant == nil || opts.HR == nil {
		panic("service: ProfileService requires Applicant and HR APIs")
	}
	return &ProfileService{applicant: opts.Applicant, hr: opts.HR}
}

// Applicant returns the applicant profile.
func (s *ProfileService) Applicant(ctx context.Context, token string) (model.ApplicantProfile, error) {
	p, err := s.applicant.GetApplicantProfile(ctx, token)
	if err != nil {
		return model.ApplicantProfile{}, fmt.Errorf("get applicant profile: %w", err)
	}
	return p, nil
}

// SaveApplicant validates and saves the applicant profile, returning what the
// API stored.
func (s *ProfileService) SaveApplicant(ctx context.Context, token string, p model.ApplicantProfile) (model.ApplicantProfile, error) {
	if err := p.Validate(); err != nil {
		return p, apperrors.Validation(err.Error())
	}
	saved, err := s.applicant.UpdateApplicantProfile(ctx, token, p)
	if err != nil {
		return p, fmt.Errorf("update applicant profile: %w", err)
	}
	return saved, nil
}

// HR returns the HR manager profile.
func (s *ProfileService) HR(ctx context.Context, token string) (model.HRProfile, error) {
	p, err := s.hr.GetHRProfile(ctx, token)
	if err != nil {
		return model.HRProfile{}, fmt.Errorf("get hr profile: %w", err)
	}
	return p, nil
}

// SaveHR validates and saves the HR profile.
func (s *ProfileService) SaveHR(ctx context.Context, token string, p model.HRProfile) (model.HRProfile, error) {
	if err := p.Validate(); err != nil {
		return p, apperrors.Validation(err.Error())
	}
	saved, err := s.hr.UpdateHRProfile(ctx, token, p)
	if err != nil {
		return p, fmt.Errorf("update hr profile: %w", err)
	}
	return saved, nil
}
