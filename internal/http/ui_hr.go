package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

const hrApplicationsPath = "/hr/applications"

// HRDashboard renders recruitment stats, recent applications and upcoming
// interviews.
// GET /hr/dashboard.
func (h *UIHandlers) HRDashboard(w http.ResponseWriter, r *http.Request) {
	dash := h.Dashboards.HR(r.Context(), tokenOf(r))
	if dash.Unauthorized() {
		h.endSession(w, r)
		return
	}
	data := basePageData(r, PageMeta{Title: "Dashboard", PageTitle: "Recruitment dashboard", CurrentPage: PageHRDashboard})
	data["Dashboard"] = dash
	if !dash.Stats.Failed() {
		data["Breakdown"] = model.StatusBreakdown(dash.Stats.Data.ByStatus)
	}
	h.renderDashboardPage(w, r, data)
}

// HRVacancies lists every vacancy for HR.
// GET /hr/vacancies.
func (h *UIHandlers) HRVacancies(w http.ResponseWriter, r *http.Request) {
	h.vacanciesPage(w, r, nil)
}

func (h *UIHandlers) vacanciesPage(w http.ResponseWriter, r *http.Request, failed *ActionFailure) {
	opts, filters := parseVacancyFilters(r.URL.Query())
	h.Page(w, r, PageSpec{
		Meta:   PageMeta{Title: "Vacancies", PageTitle: "Vacancies", CurrentPage: PageVacancies},
		Failed: failed,
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["Sorts"] = vacancySorts
			data["Statuses"] = model.VacancyStatuses()
			list, err := h.Vacancies.List(ctx, tokenOf(r), opts)
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

func vacancyFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "Edit vacancy", PageTitle: "Edit vacancy", CurrentPage: PageVacancyForm}
	}
	return PageMeta{Title: "New vacancy", PageTitle: "New vacancy", CurrentPage: PageVacancyForm}
}

func vacancyFormOptions(mode FormMode, id model.ID) map[string]any {
	action := "/hr/vacancies"
	if mode == FormModeEdit {
		action += "/" + id.String()
	}
	return map[string]any{
		"Mode":            mode,
		"Action":          action,
		"EmploymentTypes": model.EmploymentTypes(),
		"Statuses":        model.VacancyStatuses(),
	}
}

// NewVacancy renders an empty vacancy form.
// GET /hr/vacancies/new.
func (h *UIHandlers) NewVacancy(w http.ResponseWriter, r *http.Request) {
	b := NewTemplateData(r, vacancyFormMeta(FormModeCreate)).WithForm(map[string]string{
		"employment_type": string(model.EmploymentFullTime),
		"status":          string(model.VacancyStatusActive),
	})
	for k, v := range vacancyFormOptions(FormModeCreate, "") {
		b.With(k, v)
	}
	h.renderDashboardPage(w, r, b.Build())
}

// CreateVacancy handles the new vacancy form.
// POST /hr/vacancies.
func (h *UIHandlers) CreateVacancy(w http.ResponseWriter, r *http.Request) {
	HandleForm(h, FormHandlerOpts[model.VacancyRequest]{
		W: w, R: r, Mode: FormModeCreate,
		Parser: parseVacancyForm,
		Submit: func(ctx context.Context, _ model.ID, req model.VacancyRequest) error {
			_, err := h.Vacancies.Create(ctx, tokenOf(r), req)
			return err
		},
		SuccessURL: withNotice("/hr/vacancies", "vacancy-created"),
		PageMeta:   vacancyFormMeta(FormModeCreate),
		ExtraData:  vacancyFormOptions(FormModeCreate, ""),
	})
}

// EditVacancy renders the form prefilled from the vacancy.
// GET /hr/vacancies/{id}/edit.
func (h *UIHandlers) EditVacancy(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	h.Page(w, r, PageSpec{
		Meta: vacancyFormMeta(FormModeEdit),
		Fetch: func(ctx context.Context, data map[string]any) error {
			for k, v := range vacancyFormOptions(FormModeEdit, id) {
				data[k] = v
			}
			v, err := h.Vacancies.Get(ctx, tokenOf(r), id)
			if err != nil {
				return err
			}
			data["Vacancy"] = v
			data["Form"] = vacancyFormValues(v)
			return nil
		},
	})
}

// UpdateVacancy handles the edit form.
// POST /hr/vacancies/{id}.
func (h *UIHandlers) UpdateVacancy(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	HandleForm(h, FormHandlerOpts[model.VacancyRequest]{
		W: w, R: r, Mode: FormModeEdit,
		Parser: parseVacancyForm,
		Submit: func(ctx context.Context, id model.ID, req model.VacancyRequest) error {
			_, err := h.Vacancies.Update(ctx, tokenOf(r), id, req)
			return err
		},
		SuccessURL: withNotice("/hr/vacancies", "vacancy-updated"),
		PageMeta:   vacancyFormMeta(FormModeEdit),
		ExtraData:  vacancyFormOptions(FormModeEdit, id),
	})
}

// SetVacancyStatus activates, pauses or closes a vacancy.
// POST /hr/vacancies/{id}/status.
func (h *UIHandlers) SetVacancyStatus(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	if _, err := h.Vacancies.SetStatus(r.Context(), tokenOf(r), id, r.PostFormValue("status")); err != nil {
		h.logger().WarnContext(r.Context(), "set vacancy status failed", "vacancy_id", id, "error", err)
		h.vacanciesPage(w, r, &ActionFailure{Name: "status-" + id.String(), Err: err})
		return
	}
	redirect(w, r, withNotice("/hr/vacancies", "vacancy-status"))
}

// DeleteVacancy removes a vacancy.
// POST /hr/vacancies/{id}/delete.
func (h *UIHandlers) DeleteVacancy(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	if err := h.Vacancies.Delete(r.Context(), tokenOf(r), id); err != nil {
		h.logger().WarnContext(r.Context(), "delete vacancy failed", "vacancy_id", id, "error", err)
		h.vacanciesPage(w, r, &ActionFailure{Name: "delete-" + id.String(), Err: err})
		return
	}
	h.logger().InfoContext(r.Context(), "vacancy deleted", "vacancy_id", id)
	redirect(w, r, withNotice("/hr/vacancies", "vacancy-deleted"))
}

// HRApplications lists every application with status, vacancy and text filters.
// GET /hr/applications.
func (h *UIHandlers) HRApplications(w http.ResponseWriter, r *http.Request) {
	opts, filters := parseApplicationFilters(r.URL.Query())
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Applications", PageTitle: "Applications", CurrentPage: PageApplications},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["Statuses"] = model.ApplicationStatuses()
			data["Sorts"] = applicationSorts
			apps, err := h.Applications.List(ctx, tokenOf(r), opts)
			if err != nil {
				return err
			}
			data["Applications"] = apps
			// The vacancy filter menu is optional; the list is still useful without it.
			if list, vErr := h.Vacancies.List(ctx, tokenOf(r), model.VacancyListOptions{Sort: "title"}); vErr == nil {
				data["VacancyOptions"] = list.Items
			}
			return nil
		},
	})
}

// HRApplication shows one application with its interviews, decision and the
// status, interview and decision forms.
// GET /hr/applications/{id}.
func (h *UIHandlers) HRApplication(w http.ResponseWriter, r *http.Request) {
	h.applicationPage(w, r, nil)
}

func (h *UIHandlers) applicationPage(w http.ResponseWriter, r *http.Request, failed *ActionFailure) {
	id := pathID(r)
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	h.Page(w, r, PageSpec{
		Meta:   PageMeta{Title: "Application", PageTitle: "Application", CurrentPage: PageApplication},
		Failed: failed,
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.loadApplication(ctx, r, id, data)
		},
	})
}

func (h *UIHandlers) loadApplication(ctx context.Context, r *http.Request, id model.ID, data map[string]any) error {
	data["Statuses"] = model.ApplicationStatuses()
	data["InterviewTypes"] = model.InterviewTypes()
	data["Outcomes"] = model.DecisionOutcomes()
	data["Form"] = map[string]string{}

	app, err := h.Applications.Get(ctx, tokenOf(r), id)
	if err != nil {
		return err
	}
	data["Application"] = app
	data["Title"] = app.ApplicantName + " - " + app.VacancyTitle

	// Interviews and the decision are secondary panels with their own errors.
	interviews, err := h.Interviews.ListAll(ctx, tokenOf(r), service.InterviewListOptions{ApplicationID: id})
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return err
		}
		data["InterviewsError"] = apperrors.UserMessage(err)
	}
	data["Interviews"] = interviews

	decision, decided, err := h.Decisions.ForApplication(ctx, tokenOf(r), id)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return err
		}
		data["DecisionError"] = apperrors.UserMessage(err)
	}
	data["HasDecision"] = decided
	if decided {
		data["Decision"] = decision
	}
	return nil
}

func applicationURL(id model.ID) string {
	return hrApplicationsPath + "/" + id.String()
}

// UpdateApplicationStatus moves an application to the requested status. The
// API decides whether the transition is allowed.
// POST /hr/applications/{id}/status.
func (h *UIHandlers) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	form := formValues(r, "status", "notes")
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	if _, err := h.Applications.UpdateStatus(r.Context(), tokenOf(r), id, form["status"], form["notes"]); err != nil {
		h.logger().WarnContext(r.Context(), "application status update failed",
			"application_id", id,
			"target", form["status"],
			"error", err,
		)
		h.applicationPage(w, r, &ActionFailure{Name: "status", Err: err, Form: form})
		return
	}
	h.logger().InfoContext(r.Context(), "application status updated", "application_id", id, "status", form["status"])
	redirect(w, r, withNotice(applicationURL(id), "status-updated"))
}

// ScheduleInterview books an interview for the application.
// POST /hr/applications/{id}/interviews.
func (h *UIHandlers) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	req, form, fieldErrors := parseInterviewForm(r, time.Local)
	if req.ApplicationID.IsZero() {
		h.NotFound(w, r)
		return
	}
	if len(fieldErrors) > 0 {
		h.applicationPage(w, r, &ActionFailure{Name: "interview", FieldErrors: fieldErrors, Form: form})
		return
	}
	if _, err := h.Interviews.Schedule(r.Context(), tokenOf(r), req); err != nil {
		h.logger().WarnContext(r.Context(), "schedule interview failed", "application_id", req.ApplicationID, "error", err)
		h.applicationPage(w, r, &ActionFailure{Name: "interview", Err: err, Form: form})
		return
	}
	redirect(w, r, withNotice(applicationURL(req.ApplicationID), "interview-scheduled"))
}

// RecordDecision records the hiring outcome for the application.
// POST /hr/applications/{id}/decision.
func (h *UIHandlers) RecordDecision(w http.ResponseWriter, r *http.Request) {
	req, form, fieldErrors := parseDecisionForm(r)
	if req.ApplicationID.IsZero() {
		h.NotFound(w, r)
		return
	}
	if len(fieldErrors) > 0 {
		h.applicationPage(w, r, &ActionFailure{Name: "decision", FieldErrors: fieldErrors, Form: form})
		return
	}
	if _, err := h.Decisions.Record(r.Context(), tokenOf(r), req); err != nil {
		h.logger().WarnContext(r.Context(), "record decision failed", "application_id", req.ApplicationID, "error", err)
		h.applicationPage(w, r, &ActionFailure{Name: "decision", Err: err, Form: form})
		return
	}
	redirect(w, r, withNotice(applicationURL(req.ApplicationID), "decision-recorded"))
}

// HRInterviews lists all interviews.
// GET /hr/interviews.
func (h *UIHandlers) HRInterviews(w http.ResponseWriter, r *http.Request) {
	h.interviewsPage(w, r, nil)
}

func (h *UIHandlers) interviewsPage(w http.ResponseWriter, r *http.Request, failed *ActionFailure) {
	opts, filters := parseInterviewFilters(r.URL.Query())
	h.Page(w, r, PageSpec{
		Meta:   PageMeta{Title: "Interviews", PageTitle: "Interviews", CurrentPage: PageInterviews},
		Failed: failed,
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["Statuses"] = model.InterviewStatuses()
			list, err := h.Interviews.ListAll(ctx, tokenOf(r), opts)
			if err != nil {
				return err
			}
			data["Interviews"] = list
			return nil
		},
	})
}

// UpdateInterviewStatus completes or cancels an interview. A local
// return_to sends the user back to the page the form was on.
// POST /hr/interviews/{id}/status.
func (h *UIHandlers) UpdateInterviewStatus(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if id.IsZero() {
		h.NotFound(w, r)
		return
	}
	form := formValues(r, "status", "notes", "return_to")
	if _, err := h.Interviews.UpdateStatus(r.Context(), tokenOf(r), id, form["status"], form["notes"]); err != nil {
		h.logger().WarnContext(r.Context(), "interview status update failed", "interview_id", id, "error", err)
		h.interviewsPage(w, r, &ActionFailure{Name: "interview-" + id.String(), Err: err, Form: form})
		return
	}
	back := "/hr/interviews"
	if ret := safeRedirectPath(form["return_to"]); strings.HasPrefix(ret, "/hr/") {
		back = ret
	}
	redirect(w, r, withNotice(back, "interview-updated"))
}

// HRDecisions lists recorded hiring decisions.
// GET /hr/decisions.
func (h *UIHandlers) HRDecisions(w http.ResponseWriter, r *http.Request) {
	outcome, filters := parseDecisionFilter(r.URL.Query())
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Decisions", PageTitle: "Hiring decisions", CurrentPage: PageDecisions},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["Outcomes"] = model.DecisionOutcomes()
			list, err := h.Decisions.List(ctx, tokenOf(r), outcome)
			if err != nil {
				return err
			}
			data["Decisions"] = list
			return nil
		},
	})
}
