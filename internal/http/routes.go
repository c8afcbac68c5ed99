package httpx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	portal "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000"
	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	httpassets "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http/assets"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         AuthServiceInterface
	Vacancies    VacanciesService
	Applications ApplicationsService
	Interviews   InterviewsService
	Decisions    DecisionsService
	Profiles     ProfilesService
	Dashboards   DashboardsService

	Cookies CookieOptions
	// Compression enables gzip when non-nil.
	Compression *CompressionConfig
	// Health backs /healthz when set (session store reachability).
	Health HealthCheck

	// TemplateFS and StaticFS override where templates and static files are
	// read from. When nil, dev mode reads from disk and production from the
	// embedded filesystems.
	TemplateFS fs.FS
	StaticFS   fs.FS

	IsDev  bool         // Development mode flag: disk templates, verbose template errors
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
	Now    func() time.Time
}

// NewRouter creates the portal handler with its middleware chain:
// recovery, request logging, compression, browser detection and CSRF.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Auth == nil {
		return nil, errors.New("router: auth service is required")
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templateFS, staticFS, err := resolveFrontendFS(services)
	if err != nil {
		return nil, err
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Resolver:   httpassets.NewAssetResolver(staticFS, services.IsDev, logger),
		Logger:     logger,
		Now:        services.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	ui := &UIHandlers{
		T:            tr,
		Auth:         services.Auth,
		Vacancies:    services.Vacancies,
		Applications: services.Applications,
		Interviews:   services.Interviews,
		Decisions:    services.Decisions,
		Profiles:     services.Profiles,
		Dashboards:   services.Dashboards,
		Cookies:      services.Cookies,
		IsDev:        services.IsDev,
		Logger:       logger,
		Now:          services.Now,
	}
	authHandlers := &AuthHandlers{Svc: services.Auth, Cookies: services.Cookies, Logger: logger}

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", healthHandler(services.Health, logger))
	mux.Handle("HEAD /healthz", healthHandler(services.Health, logger))
	mux.Handle("GET /static/", staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))))

	registerPublicRoutes(mux, ui, authHandlers)
	registerApplicantRoutes(mux, ui)
	registerHRRoutes(mux, ui)

	var handler http.Handler = mux
	handler = CSRFProtection(CSRFConfig{Cookies: services.Cookies})(handler)
	handler = BrowserDetection()(handler)
	if services.Compression != nil {
		cc := *services.Compression
		if cc.Logger == nil {
			cc.Logger = logger
		}
		handler = Compression(cc)(handler)
	}
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

// resolveFrontendFS picks the template and static filesystems.
// Dev mode reads from disk so edits show up without a rebuild.
func resolveFrontendFS(services RouterServices) (fs.FS, fs.FS, error) {
	templateFS, staticFS := services.TemplateFS, services.StaticFS
	if services.IsDev {
		if templateFS == nil {
			templateFS = os.DirFS(TemplatePathFromRoot)
		}
		if staticFS == nil {
			staticFS = os.DirFS("frontend/static")
		}
		return templateFS, staticFS, nil
	}

	var err error
	if templateFS == nil {
		if templateFS, err = fs.Sub(portal.TemplateFS, "frontend/templates"); err != nil {
			return nil, nil, fmt.Errorf("embedded templates: %w", err)
		}
	}
	if staticFS == nil {
		if staticFS, err = fs.Sub(portal.StaticFS, "frontend/static"); err != nil {
			return nil, nil, fmt.Errorf("embedded static files: %w", err)
		}
	}
	return templateFS, staticFS, nil
}

// staticWithCacheHeaders caches fingerprinted asset URLs for a year and
// makes everything else revalidate.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httpassets.IsVersioned(r.URL.RawQuery) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		handler.ServeHTTP(w, r)
	})
}

// registerPublicRoutes wires the sign-in, sign-up and session endpoints.
// Unmatched paths fall through to the not-found page.
func registerPublicRoutes(mux *http.ServeMux, ui *UIHandlers, auth *AuthHandlers) {
	optional := OptionalAuth(ui.Auth)
	mux.Handle("GET /{$}", optional(http.HandlerFunc(ui.SignInPage)))
	mux.Handle("GET /signup", optional(http.HandlerFunc(ui.SignUpPage)))
	mux.Handle("POST /signup", http.HandlerFunc(ui.SignUp))
	mux.Handle("POST /auth/signin", http.HandlerFunc(ui.SignIn))
	mux.Handle("POST /auth/signout", http.HandlerFunc(auth.SignOut))
	mux.Handle("GET /auth/status", http.HandlerFunc(auth.Status))
	mux.Handle("GET /dashboard", RequireAuthBrowser(ui.Auth)(http.HandlerFunc(ui.Home)))
	mux.Handle("/", optional(http.HandlerFunc(ui.NotFound)))
}

// registerApplicantRoutes wires the applicant subtree; every route requires
// an applicant session.
func registerApplicantRoutes(mux *http.ServeMux, ui *UIHandlers) {
	wrap := RequireRoleBrowser(ui.Auth, domainauth.RoleApplicant)
	handle := func(pattern string, fn http.HandlerFunc) { mux.Handle(pattern, wrap(fn)) }

	handle("GET /applicant/dashboard", ui.ApplicantDashboard)
	handle("GET /applicant/jobs", ui.Jobs)
	handle("GET /applicant/jobs/{id}", ui.Job)
	handle("POST /applicant/jobs/{id}/apply", ui.Apply)
	handle("GET /applicant/applications", ui.MyApplications)
	handle("GET /applicant/interviews", ui.MyInterviews)
	handle("GET /applicant/profile", ui.ApplicantProfile)
	handle("POST /applicant/profile", ui.SaveApplicantProfile)
}

// registerHRRoutes wires the HR subtree; every route requires an HR session.
func registerHRRoutes(mux *http.ServeMux, ui *UIHandlers) {
	wrap := RequireRoleBrowser(ui.Auth, domainauth.RoleHRManager)
	handle := func(pattern string, fn http.HandlerFunc) { mux.Handle(pattern, wrap(fn)) }

	handle("GET /hr/dashboard", ui.HRDashboard)

	handle("GET /hr/vacancies", ui.HRVacancies)
	handle("GET /hr/vacancies/new", ui.NewVacancy)
	handle("POST /hr/vacancies", ui.CreateVacancy)
	handle("GET /hr/vacancies/{id}/edit", ui.EditVacancy)
	handle("POST /hr/vacancies/{id}", ui.UpdateVacancy)
	handle("POST /hr/vacancies/{id}/status", ui.SetVacancyStatus)
	handle("POST /hr/vacancies/{id}/delete", ui.DeleteVacancy)

	handle("GET /hr/applications", ui.HRApplications)
	handle("GET /hr/applications/{id}", ui.HRApplication)
	handle("POST /hr/applications/{id}/status", ui.UpdateApplicationStatus)
	handle("POST /hr/applications/{id}/interviews", ui.ScheduleInterview)
	handle("POST /hr/applications/{id}/decision", ui.RecordDecision)

	handle("GET /hr/interviews", ui.HRInterviews)
	handle("POST /hr/interviews/{id}/status", ui.UpdateInterviewStatus)
	handle("GET /hr/decisions", ui.HRDecisions)

	handle("GET /hr/profile", ui.HRProfile)
	handle("POST /hr/profile", ui.SaveHRProfile)
}
