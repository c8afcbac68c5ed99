package httpx

import (
	"context"
	"net/http"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
)

// ApplicantDashboard renders stats, recent applications and upcoming
// interviews. Each section renders its own error when it fails to load.
// GET /applicant/dashboard.
func (h *UIHandlers) ApplicantDashboard(w http.ResponseWriter, r *http.Request) {
	dash := h.Dashboards.Applicant(r.Context(), tokenOf(r))
	if dash.Unauthorized() {
		h.endSession(w, r)
		return
	}
	data := basePageData(r, PageMeta{Title: "Dashboard", PageTitle: "My dashboard", CurrentPage: PageApplicantDashboard})
	data["Dashboard"] = dash
	if !dash.Stats.Failed() {
		data["Breakdown"] = model.StatusBreakdown(dash.Stats.Data.ByStatus)
	}
	h.renderDashboardPage(w, r, data)
}

// Jobs lists open vacancies with search, filters and sorting.
// GET /applicant/jobs.
func (h *UIHandlers) Jobs(w http.ResponseWriter, r *http.Request) {
	opts, filters := parseVacancyFilters(r.URL.Query())
	// Applicants only ever see open vacancies.
	opts.Status = nil
	filters.Status = ""

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Jobs", PageTitle: "Open positions", CurrentPage: PageJobs},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["Sorts"] = vacancySorts
			list, err := h.Vacancies.ListOpen(ctx, tokenOf(r), opts)
			if err != nil {
				return err
			}
			data["Vacancies"] = list.Items
			data["Total"] = list.Total
			data["Facets"] = list.Facets
			return nil
		},
	})
}

// Job shows one vacancy with the apply form, or the existing application.
// GET /applicant/jobs/{id}.
func (h *UIHandlers) Job(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	h.Page(w, r, PageSpec{
		Meta: jobMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.loadJob(ctx, r, id, data)
		},
	})
}

func jobMeta() PageMeta {
	return PageMeta{Title: "Job", PageTitle: "Job details", CurrentPage: PageJob}
}

// loadJob fills the vacancy and the applicant's application for it, if any.
func (h *UIHandlers) loadJob(ctx context.Context, r *http.Request, id model.ID, data map[string]any) error {
	v, err := h.Vacancies.Get(ctx, tokenOf(r), id)
	if err != nil {
		return err
	}
	data["Vacancy"] = v
	data["Title"] = v.Title
	data["Open"] = v.IsOpen(h.now())

	app, applied, err := h.Applications.FindMine(ctx, tokenOf(r), id)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return err
		}
		// The vacancy is still worth showing; the apply button stays hidden.
		h.logger().WarnContext(ctx, "could not check existing application", "vacancy_id", id, "error", err)
		data["ApplicationCheckFailed"] = true
		return nil
	}
	data["AlreadyApplied"] = applied
	if applied {
		data["Application"] = app
	}
	if _, ok := data["Form"]; !ok {
		data["Form"] = map[string]string{}
	}
	return nil
}

// Apply submits an application. A second attempt for the same vacancy is a
// no-op that sends the applicant back with the "already applied" notice.
// POST /applicant/jobs/{id}/apply.
func (h *UIHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	req, form, fieldErrors := parseApplyForm(r)

	rerender := func(f *ActionFailure) {
		f.Name, f.Form = "apply", form
		h.Page(w, r, PageSpec{
			Meta:   jobMeta(),
			Failed: f,
			Fetch: func(ctx context.Context, data map[string]any) error {
				return h.loadJob(ctx, r, id, data)
			},
		})
	}

	if len(fieldErrors) > 0 {
		rerender(&ActionFailure{FieldErrors: fieldErrors})
		return
	}

	res, err := h.Applications.Apply(r.Context(), tokenOf(r), req)
	if err != nil {
		h.logger().WarnContext(r.Context(), "apply failed", "vacancy_id", id, "error", err)
		rerender(&ActionFailure{Err: err})
		return
	}
	if res.AlreadyApplied {
		redirect(w, r, withNotice("/applicant/jobs/"+id.String(), "already-applied"))
		return
	}
	redirect(w, r, withNotice("/applicant/applications", "applied"))
}

// MyApplications lists the applicant's applications.
// GET /applicant/applications.
func (h *UIHandlers) MyApplications(w http.ResponseWriter, r *http.Request) {
	opts, filters := parseApplicationFilters(r.URL.Query())
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "My applications", PageTitle: "My applications", CurrentPage: PageMyApplications},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["Statuses"] = model.ApplicationStatuses()
			data["Sorts"] = applicationSorts
			apps, err := h.Applications.ListMine(ctx, tokenOf(r), opts)
			if err != nil {
				return err
			}
			data["Applications"] = apps
			return nil
		},
	})
}

// MyInterviews lists the applicant's interviews.
// GET /applicant/interviews.
func (h *UIHandlers) MyInterviews(w http.ResponseWriter, r *http.Request) {
	opts, filters := parseInterviewFilters(r.URL.Query())
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "My interviews", PageTitle: "My interviews", CurrentPage: PageMyInterviews},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["Statuses"] = model.InterviewStatuses()
			list, err := h.Interviews.ListMine(ctx, tokenOf(r), opts)
			if err != nil {
				return err
			}
			data["Interviews"] = list
			return nil
		},
	})
}
