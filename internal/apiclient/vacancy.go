package apiclient

import (
	"context"
	"net/http"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

var _ ports.VacancyAPI = (*Client)(nil)

// ListVacancies calls GET /vacancies.
func (c *Client) ListVacancies(ctx context.Context, token string) ([]model.Vacancy, error) {
	return getList[model.Vacancy](ctx, c, token, "/vacancies")
}

// GetVacancy calls GET /vacancies/{id}.
func (c *Client) GetVacancy(ctx context.Context, token string, id model.ID) (model.Vacancy, error) {
	var v model.Vacancy
	err := c.do(ctx, call{method: http.MethodGet, path: pathf("/vacancies/%s", id.String()), token: token}, &v)
	return v, err
}

// CreateVacancy calls POST /vacancies.
func (c *Client) CreateVacancy(ctx context.Context, token string, req model.VacancyRequest) (model.Vacancy, error) {
	var v model.Vacancy
	err := c.do(ctx, call{method: http.MethodPost, path: "/vacancies", token: token, body: req}, &v)
	return v, err
}

// UpdateVacancy calls PUT /vacancies/{id}.
func (c *Client) UpdateVacancy(
	ctx context.Context,
	token string,
	id model.ID,
	req model.VacancyRequest,
) (model.Vacancy, error) {
	var v model.Vacancy
	err := c.do(ctx, call{method: http.MethodPut, path: pathf("/vacancies/%s", id.String()), token: token, body: req}, &v)
	return v, err
}

// DeleteVacancy calls DELETE /vacancies/{id}.
func (c *Client) DeleteVacancy(ctx context.Context, token string, id model.ID) error {
	return c.do(ctx, call{method: http.MethodDelete, path: pathf("/vacancies/%s", id.String()), token: token}, nil)
}

type vacancyStatusRequest struct {
	Status model.VacancyStatus `json:"status"`
}

// SetVacancyStatus calls PATCH /vacancies/{id}/status.
func (c *Client) SetVacancyStatus(
	ctx context.Context,
	token string,
	id model.ID,
	status model.VacancyStatus,
) (model.Vacancy, error) {
	var v model.Vacancy
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   pathf("/vacancies/%s/status", id.String()),
		token:  token,
		body:   vacancyStatusRequest{Status: status},
	}, &v)
	return v, err
}
