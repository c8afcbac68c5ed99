package apiclient

import (
	"context"
	"net/http"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

var _ ports.HRAPI = (*Client)(nil)

// GetHRProfile calls GET /hr/profile.
func (c *Client) GetHRProfile(ctx context.Context, token string) (model.HRProfile, error) {
	var p model.HRProfile
	err := c.do(ctx, call{method: http.MethodGet, path: "/hr/profile", token: token}, &p)
	return p, err
}

// UpdateHRProfile calls PUT /hr/profile.
func (c *Client) UpdateHRProfile(ctx context.Context, token string, p model.HRProfile) (model.HRProfile, error) {
	out := p
	err := c.do(ctx, call{method: http.MethodPut, path: "/hr/profile", token: token, body: p}, &out)
	return out, err
}

// ListApplications calls GET /hr/applications.
func (c *Client) ListApplications(ctx context.Context, token string) ([]model.Application, error) {
	return getList[model.Application](ctx, c, token, "/hr/applications")
}

// GetApplication calls GET /hr/applications/{id}.
func (c *Client) GetApplication(ctx context.Context, token string, id model.ID) (model.Application, error) {
	var a model.Application
	err := c.do(ctx, call{method: http.MethodGet, path: pathf("/hr/applications/%s", id.String()), token: token}, &a)
	return a, err
}

// UpdateApplicationStatus calls PATCH /hr/applications/{id}/status.
func (c *Client) UpdateApplicationStatus(
	ctx context.Context,
	token string,
	id model.ID,
	req model.UpdateApplicationStatusRequest,
) (model.Application, error) {
	var a model.Application
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/hr/applications/%s/status", id.String()),
		token:  token,
		body:   req,
	}, &a)
	return a, err
}

// ListInterviews calls GET /hr/interviews.
func (c *Client) ListInterviews(ctx context.Context, token string) ([]model.Interview, error) {
	return getList[model.Interview](ctx, c, token, "/hr/interviews")
}

// ScheduleInterview calls POST /hr/interviews.
func (c *Client) ScheduleInterview(
	ctx context.Context,
	token string,
	req model.ScheduleInterviewRequest,
) (model.Interview, error) {
	var iv model.Interview
	err := c.do(ctx, call{method: http.MethodPost, path: "/hr/interviews", token: token, body: req}, &iv)
	return iv, err
}

// UpdateInterviewStatus calls PATCH /hr/interviews/{id}/status.
func (c *Client) UpdateInterviewStatus(
	ctx context.Context,
	token string,
	id model.ID,
	req model.UpdateInterviewStatusRequest,
) (model.Interview, error) {
	var iv model.Interview
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/hr/interviews/%s/status", id.String()),
		token:  token,
		body:   req,
	}, &iv)
	return iv, err
}

// ListDecisions calls GET /hr/decisions.
func (c *Client) ListDecisions(ctx context.Context, token string) ([]model.HiringDecision, error) {
	return getList[model.HiringDecision](ctx, c, token, "/hr/decisions")
}

// RecordDecision calls POST /hr/decisions.
func (c *Client) RecordDecision(
	ctx context.Context,
	token string,
	req model.RecordDecisionRequest,
) (model.HiringDecision, error) {
	var d model.HiringDecision
	err := c.do(ctx, call{method: http.MethodPost, path: "/hr/decisions", token: token, body: req}, &d)
	return d, err
}

// HRDashboard calls GET /hr/dashboard.
func (c *Client) HRDashboard(ctx context.Context, token string) (model.HRDashboardStats, error) {
	var s model.HRDashboardStats
	err := c.do(ctx, call{method: http.MethodGet, path: "/hr/dashboard", token: token}, &s)
	return s, err
}
