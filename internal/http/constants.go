package httpx

// CurrentPage identifiers used by handlers, navigation and the template map.
const (
	PageSignIn  = "signin"
	PageSignUp  = "signup"
	PageMissing = "not-found"

	// Applicant subtree.
	PageApplicantDashboard = "applicant-dashboard"
	PageJobs               = "jobs"
	PageJob                = "job"
	PageMyApplications     = "my-applications"
	PageMyInterviews       = "my-interviews"
	PageApplicantProfile   = "applicant-profile"

	// HR subtree.
	PageHRDashboard  = "hr-dashboard"
	PageVacancies    = "vacancies"
	PageVacancyForm  = "vacancy-form"
	PageApplications = "applications"
	PageApplication  = "application"
	PageInterviews   = "interviews"
	PageDecisions    = "decisions"
	PageHRProfile    = "hr-profile"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeEdit   FormMode = "edit"
	FormModeCreate FormMode = "create"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageSignIn:             "signin-content",
	PageSignUp:             "signup-content",
	PageMissing:            "not-found-content",
	PageApplicantDashboard: "applicant-dashboard-content",
	PageJobs:               "jobs-content",
	PageJob:                "job-content",
	PageMyApplications:     "my-applications-content",
	PageMyInterviews:       "my-interviews-content",
	PageApplicantProfile:   "applicant-profile-content",
	PageHRDashboard:        "hr-dashboard-content",
	PageVacancies:          "vacancies-content",
	PageVacancyForm:        "vacancy-form-content",
	PageApplications:       "applications-content",
	PageApplication:        "application-content",
	PageInterviews:         "interviews-content",
	PageDecisions:          "decisions-content",
	PageHRProfile:          "hr-profile-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown pages render the not-found content.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "not-found-content"
}
