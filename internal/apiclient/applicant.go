package apiclient

import (
	"context"
	"net/http"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

var _ ports.ApplicantAPI = (*Client)(nil)

// GetApplicantProfile calls GET /applicant/profile.
func (c *Client) GetApplicantProfile(ctx context.Context, token string) (model.ApplicantProfile, error) {
	var p model.ApplicantProfile
	err := c.do(ctx, call{method: http.MethodGet, path: "/applicant/profile", token: token}, &p)
	return p, err
}

// UpdateApplicantProfile calls PUT /applicant/profile.
func (c *Client) UpdateApplicantProfile(
	ctx context.Context,
	token string,
	p model.ApplicantProfile,
) (model.ApplicantProfile, error) {
	out := p
	err := c.do(ctx, call{method: http.MethodPut, path: "/applicant/profile", token: token, body: p}, &out)
	return out, err
}

// ListMyApplications calls GET /applicant/applications.
func (c *Client) ListMyApplications(ctx context.Context, token string) ([]model.Application, error) {
	return getList[model.Application](ctx, c, token, "/applicant/applications")
}

// Apply calls POST /applicant/applications.
func (c *Client) Apply(ctx context.Context, token string, req model.ApplyRequest) (model.Application, error) {
	var a model.Application
	err := c.do(ctx, call{method: http.MethodPost, path: "/applicant/applications", token: token, body: req}, &a)
	return a, err
}

// ListMyInterviews calls GET /applicant/interviews.
func (c *Client) ListMyInterviews(ctx context.Context, token string) ([]model.Interview, error) {
	return getList[model.Interview](ctx, c, token, "/applicant/interviews")
}

// ApplicantDashboard calls GET /applicant/dashboard.
func (c *Client) ApplicantDashboard(ctx context.Context, token string) (model.ApplicantDashboardStats, error) {
	var s model.ApplicantDashboardStats
	err := c.do(ctx, call{method: http.MethodGet, path: "/applicant/dashboard", token: token}, &s)
	return s, err
}
