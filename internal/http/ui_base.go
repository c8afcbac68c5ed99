package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http/ui/viewmodel"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// VacanciesService is the vacancy surface the UI needs.
type VacanciesService interface {
	List(ctx context.Context, token string, opts model.VacancyListOptions) (*service.VacancyList, error)
	ListOpen(ctx context.Context, token string, opts model.VacancyListOptions) (*service.VacancyList, error)
	Get(ctx context.Context, token string, id model.ID) (model.Vacancy, error)
	Create(ctx context.Context, token string, req model.VacancyRequest) (model.Vacancy, error)
	Update(ctx context.Context, token string, id model.ID, req model.VacancyRequest) (model.Vacancy, error)
	Delete(ctx context.Context, token string, id model.ID) error
	SetStatus(ctx context.Context, token string, id model.ID, raw string) (model.Vacancy, error)
}

// ApplicationsService covers both the applicant's and HR's view of applications.
type ApplicationsService interface {
	Apply(ctx context.Context, token string, req model.ApplyRequest) (*service.ApplyResult, error)
	ListMine(ctx context.Context, token string, opts model.ApplicationListOptions) ([]model.Application, error)
	FindMine(ctx context.Context, token string, vacancyID model.ID) (model.Application, bool, error)
	List(ctx context.Context, token string, opts model.ApplicationListOptions) ([]model.Application, error)
	Get(ctx context.Context, token string, id model.ID) (model.Application, error)
	UpdateStatus(ctx context.Context, token string, id model.ID, target, notes string) (model.Application, error)
}

// InterviewsService schedules and lists interviews.
type InterviewsService interface {
	ListAll(ctx context.Context, token string, opts service.InterviewListOptions) ([]model.Interview, error)
	ListMine(ctx context.Context, token string, opts service.InterviewListOptions) ([]model.Interview, error)
	Schedule(ctx context.Context, token string, req model.ScheduleInterviewRequest) (model.Interview, error)
	UpdateStatus(ctx context.Context, token string, id model.ID, raw, notes string) (model.Interview, error)
}

// DecisionsService records and lists hiring decisions.
type DecisionsService interface {
	List(ctx context.Context, token string, outcome *model.DecisionOutcome) ([]model.HiringDecision, error)
	ForApplication(ctx context.Context, token string, applicationID model.ID) (model.HiringDecision, bool, error)
	Record(ctx context.Context, token string, req model.RecordDecisionRequest) (model.HiringDecision, error)
}

// ProfilesService reads and saves both profile kinds.
type ProfilesService interface {
	Applicant(ctx context.Context, token string) (model.ApplicantProfile, error)
	SaveApplicant(ctx context.Context, token string, p model.ApplicantProfile) (model.ApplicantProfile, error)
	HR(ctx context.Context, token string) (model.HRProfile, error)
	SaveHR(ctx context.Context, token string, p model.HRProfile) (model.HRProfile, error)
}

// DashboardsService assembles the role dashboards.
type DashboardsService interface {
	HR(ctx context.Context, token string) *service.HRDashboard
	Applicant(ctx context.Context, token string) *service.ApplicantDashboard
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ VacanciesService     = (*service.VacancyService)(nil)
	_ ApplicationsService  = (*service.ApplicationService)(nil)
	_ InterviewsService    = (*service.InterviewService)(nil)
	_ DecisionsService     = (*service.DecisionService)(nil)
	_ ProfilesService      = (*service.ProfileService)(nil)
	_ DashboardsService    = (*service.DashboardService)(nil)
	_ AuthServiceInterface = (*service.AuthService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T            *TemplateRenderer
	Auth         AuthServiceInterface
	Vacancies    VacanciesService
	Applications ApplicationsService
	Interviews   InterviewsService
	Decisions    DecisionsService
	Profiles     ProfilesService
	Dashboards   DashboardsService
	Cookies      CookieOptions
	IsDev        bool // Development mode flag for enhanced error reporting
	Logger       *slog.Logger
	Now          func() time.Time
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// Flash notices are passed as ?notice=<key> after a redirect. Only known keys
// are shown so the query string cannot inject text into the page.
//
//nolint:gochecknoglobals // static read-only lookup
var noticeMessages = map[string]string{
	"applied":             "Application submitted.",
	"already-applied":     service.AlreadyAppliedMessage,
	"profile-saved":       "Profile saved.",
	"vacancy-created":     "Vacancy created.",
	"vacancy-updated":     "Vacancy updated.",
	"vacancy-deleted":     "Vacancy deleted.",
	"vacancy-status":      "Vacancy status updated.",
	"status-updated":      "Application status updated.",
	"interview-scheduled": "Interview scheduled.",
	"interview-updated":   "Interview updated.",
	"decision-recorded":   "Hiring decision recorded.",
	"signed-up":           "Account created. Please sign in.",
	"expired":             "Your session has expired. Please sign in again.",
}

func withNotice(path, key string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "notice=" + key
}

//nolint:gochecknoglobals // static navigation per role
var (
	hrNav = []viewmodel.NavItem{
		{Page: PageHRDashboard, Label: "Dashboard", Href: domainauth.HRHomePath},
		{Page: PageVacancies, Label: "Vacancies", Href: "/hr/vacancies"},
		{Page: PageApplications, Label: "Applications", Href: "/hr/applications"},
		{Page: PageInterviews, Label: "Interviews", Href: "/hr/interviews"},
		{Page: PageDecisions, Label: "Decisions", Href: "/hr/decisions"},
		{Page: PageHRProfile, Label: "Profile", Href: "/hr/profile"},
	}
	applicantNav = []viewmodel.NavItem{
		{Page: PageApplicantDashboard, Label: "Dashboard", Href: domainauth.ApplicantHomePath},
		{Page: PageJobs, Label: "Jobs", Href: "/applicant/jobs"},
		{Page: PageMyApplications, Label: "My applications", Href: "/applicant/applications"},
		{Page: PageMyInterviews, Label: "Interviews", Href: "/applicant/interviews"},
		{Page: PageApplicantProfile, Label: "Profile", Href: "/applicant/profile"},
	}
)

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
		Notice:      noticeMessages[r.URL.Query().Get("notice")],
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.IsAuthenticated = true
		layout.IsHR = session.IsHR()
		layout.IsApplicant = session.IsApplicant()
		layout.User = &viewmodel.User{
			Name:     session.DisplayName(),
			Email:    session.Email,
			Role:     string(session.Role),
			HomePath: session.HomePath(),
		}
		switch {
		case layout.IsHR:
			layout.Nav = hrNav
		case layout.IsApplicant:
			layout.Nav = applicantNav
		}
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsHR":            layout.IsHR,
		"IsApplicant":     layout.IsApplicant,
	}
	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.Notice != "" {
		data["Notice"] = layout.Notice
	}
	if layout.User != nil {
		data["User"] = layout.User
		data["Nav"] = layout.Nav
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
	// Failed re-renders the page after a form on it was rejected.
	Failed *ActionFailure
}

// ActionFailure describes a rejected form submission shown on its page.
type ActionFailure struct {
	// Name identifies which form on the page failed.
	Name        string
	Err         error
	FieldErrors map[string]string
	Form        map[string]string
}

// Page builds base data, runs the fetch and renders. A fetch or action
// rejected by the API as unauthorized ends the portal session instead.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	if spec.Failed != nil && apperrors.IsUnauthorized(spec.Failed.Err) {
		h.endSession(w, r)
		return
	}

	data := basePageData(r, spec.Meta)
	var fetchErr error
	if spec.Fetch != nil {
		fetchErr = spec.Fetch(r.Context(), data)
		if apperrors.IsUnauthorized(fetchErr) {
			h.endSession(w, r)
			return
		}
	}

	status := 0
	if spec.Failed != nil {
		status = applyActionFailure(data, spec.Failed)
	}
	if fetchErr != nil {
		h.logger().WarnContext(r.Context(), "page data fetch failed",
			"page", spec.Meta.CurrentPage,
			"error", fetchErr,
		)
		markPageError(data, fetchErr)
		if s := DetermineErrorStatus(fetchErr); s != 0 {
			status = s
		}
	}

	if status != 0 && !IsHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	h.renderDashboardPage(w, r, data)
}

// applyActionFailure copies a rejected submission into data and returns the
// status to respond with.
func applyActionFailure(data map[string]any, f *ActionFailure) int {
	fieldErrors := f.FieldErrors
	msg := processError(f.Err, &fieldErrors)
	if msg == "" && len(fieldErrors) > 0 {
		msg = errMsgFixBelow
	}
	if len(fieldErrors) > 0 {
		data["Errors"] = fieldErrors
	}
	if msg != "" {
		data["Error"] = true
		data["ErrorMessage"] = msg
	}
	if f.Form != nil {
		data["Form"] = f.Form
	}
	data["ActiveForm"] = f.Name

	if s := DetermineErrorStatus(f.Err); s != 0 {
		return s
	}
	if len(fieldErrors) > 0 || apperrors.IsValidation(f.Err) {
		return http.StatusUnprocessableEntity
	}
	return 0
}

// renderDashboardPage renders a full page, or for htmx navigation only the
// content plus out-of-band title updates.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// htmx updates document.title from a <title> in the swapped content.
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(layout.Title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}
	header := `<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + html.EscapeString(layout.PageTitle) + `</h1>`
	if _, err := w.Write([]byte(header)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// renderForm re-renders a form page with errors and the submitted values.
func (h *UIHandlers) renderForm(w http.ResponseWriter, r *http.Request, opts ErrorOpts) {
	opts.W, opts.R = w, r
	if opts.Renderer == nil {
		opts.Renderer = h.renderDashboardPage
	}
	if apperrors.IsUnauthorized(opts.Err) {
		h.endSession(w, r)
		return
	}
	if opts.StatusCode == 0 && !IsHTMX(r) {
		opts.StatusCode = DetermineErrorStatus(opts.Err)
	}
	RenderError(opts)
}

// endSession drops the portal session after the API rejected its token and
// sends the browser to the sign-in page.
func (h *UIHandlers) endSession(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session != nil && h.Auth != nil {
		if err := h.Auth.SignOut(r.Context(), session.ID); err != nil {
			h.logger().WarnContext(r.Context(), "failed to delete rejected session", "error", err)
		}
		h.logger().InfoContext(r.Context(), "api rejected session token, signing out", "user_id", session.UserID)
	}
	clearCookie(w, r, h.Cookies, SessionCookieName)
	redirect(w, r, withNotice(domainauth.PublicEntryPath, "expired"))
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	msg := apperrors.UserMessage(err)
	if msg == "" {
		msg = apperrors.GenericMessage
	}
	data["ErrorMessage"] = msg
}

func layoutFromProvider(data any) *viewmodel.Layout {
	provider, ok := data.(viewmodel.LayoutProvider)
	if !ok {
		return nil
	}
	return provider.LayoutData()
}

func layoutFromMap(data any) viewmodel.Layout {
	m, ok := data.(map[string]any)
	if !ok {
		return viewmodel.Layout{}
	}
	layout := viewmodel.Layout{}
	layout.Title, _ = m["Title"].(string)
	layout.PageTitle, _ = m["PageTitle"].(string)
	layout.CurrentPage, _ = m["CurrentPage"].(string)
	return layout
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if layout := layoutFromProvider(data); layout != nil {
		return *layout
	}
	if layout, ok := data.(viewmodel.Layout); ok {
		return layout
	}
	return layoutFromMap(data)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		body := `<div class="template-error"><h2>Template Rendering Error</h2>` +
			`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
			`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
			`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`
		if _, writeErr := w.Write([]byte(body)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// pathID reads the {id} path segment.
func pathID(r *http.Request) model.ID {
	return model.ID(strings.TrimSpace(r.PathValue("id")))
}

func tokenOf(r *http.Request) string { return AccessToken(r.Context()) }
