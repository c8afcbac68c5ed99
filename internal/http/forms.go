package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http/validation"
)

// Field limits shared by the HR and applicant forms.
const (
	maxNameLen      = 100
	maxTitleLen     = 200
	maxLongTextLen  = 10000
	maxNotesLen     = 2000
	maxURLLen       = 500
	maxCoverLetter  = 5000
	maxInterviewMin = 480
)

func enumStrings[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// parseOptionalFloat reads a validated, possibly comma-grouped number.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseOptionalInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

var vacancyFields = []string{
	"title", "department", "location", "employment_type", "description",
	"requirements", "salary_min", "salary_max", "currency", "deadline", "status",
}

func parseVacancyForm(r *http.Request) (model.VacancyRequest, map[string]string, map[string]string) {
	form := formValues(r, vacancyFields...)
	form["description"] = r.PostFormValue("description")
	form["requirements"] = r.PostFormValue("requirements")

	fv := validation.New().
		Validate("title", form["title"], validation.Required("Title", maxTitleLen)).
		Validate("department", form["department"], validation.Required("Department", maxNameLen)).
		Validate("location", form["location"], validation.Required("Location", maxNameLen)).
		Validate("employment_type", form["employment_type"],
			validation.OneOf("Employment type", enumStrings(model.EmploymentTypes()))).
		Validate("description", form["description"], validation.Required("Description", maxLongTextLen)).
		Validate("requirements", form["requirements"], validation.Optional("Requirements", maxLongTextLen)).
		Validate("salary_min", form["salary_min"], validation.OptionalNumber("Minimum salary")).
		Validate("salary_max", form["salary_max"], validation.OptionalNumber("Maximum salary")).
		Validate("currency", form["currency"], validation.Optional("Currency", 3)).
		Validate("deadline", form["deadline"], validation.Date("Deadline", false))
	if form["status"] != "" {
		fv.Validate("status", form["status"], validation.OneOf("Status", enumStrings(model.VacancyStatuses())))
	}

	minSalary := parseOptionalFloat(form["salary_min"])
	maxSalary := parseOptionalFloat(form["salary_max"])
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		fv.Add("salary_max", "Maximum salary cannot be below the minimum.")
	}

	deadline, _ := model.ParseDate(form["deadline"])
	status, _ := model.ParseVacancyStatus(form["status"])
	req := model.VacancyRequest{
		Title:          form["title"],
		Department:     form["department"],
		Location:       form["location"],
		EmploymentType: model.EmploymentType(strings.ToUpper(form["employment_type"])),
		Description:    strings.TrimSpace(form["description"]),
		Requirements:   strings.TrimSpace(form["requirements"]),
		SalaryMin:      minSalary,
		SalaryMax:      maxSalary,
		Currency:       strings.ToUpper(form["currency"]),
		Deadline:       deadline,
		Status:         status,
	}
	return req, form, fv.Errors()
}

// vacancyFormValues fills the form map from an existing vacancy for editing.
func vacancyFormValues(v model.Vacancy) map[string]string {
	form := map[string]string{
		"title":           v.Title,
		"department":      v.Department,
		"location":        v.Location,
		"employment_type": string(v.EmploymentType),
		"description":     v.Description,
		"requirements":    v.Requirements,
		"currency":        v.Currency,
		"deadline":        v.Deadline.InputValue(),
		"status":          string(v.Status),
	}
	if v.SalaryMin != nil {
		form["salary_min"] = strconv.FormatFloat(*v.SalaryMin, 'f', -1, 64)
	}
	if v.SalaryMax != nil {
		form["salary_max"] = strconv.FormatFloat(*v.SalaryMax, 'f', -1, 64)
	}
	return form
}

func parseApplyForm(r *http.Request) (model.ApplyRequest, map[string]string, map[string]string) {
	form := formValues(r, "cover_letter", "resume_url")
	fv := validation.New().
		Validate("cover_letter", form["cover_letter"], validation.Optional("Cover letter", maxCoverLetter)).
		Validate("resume_url", form["resume_url"], validation.OptionalURL("Resume URL", maxURLLen))
	return model.ApplyRequest{
		VacancyID:   pathID(r),
		CoverLetter: form["cover_letter"],
		ResumeURL:   form["resume_url"],
	}, form, fv.Errors()
}

var interviewFields = []string{
	"scheduled_at", "duration_minutes", "type", "location", "meeting_link", "interviewer", "notes",
}

// parseInterviewForm reads the schedule form. scheduled_at comes from a
// datetime-local input and is interpreted in loc.
func parseInterviewForm(r *http.Request, loc *time.Location) (model.ScheduleInterviewRequest, map[string]string, map[string]string) {
	form := formValues(r, interviewFields...)
	fv := validation.New().
		Validate("scheduled_at", form["scheduled_at"], validation.DateTime("Date and time")).
		Validate("duration_minutes", form["duration_minutes"],
			validation.OptionalIntRange("Duration", 1, maxInterviewMin)).
		Validate("type", form["type"], validation.OneOf("Interview type", enumStrings(model.InterviewTypes()))).
		Validate("location", form["location"], validation.Optional("Location", maxTitleLen)).
		Validate("meeting_link", form["meeting_link"], validation.OptionalURL("Meeting link", maxURLLen)).
		Validate("interviewer", form["interviewer"], validation.Optional("Interviewer", maxNameLen)).
		Validate("notes", form["notes"], validation.Optional("Notes", maxNotesLen))

	typ := model.InterviewType(strings.ToUpper(form["type"]))
	switch typ {
	case model.InterviewVideo:
		if form["meeting_link"] == "" {
			fv.Add("meeting_link", "Meeting link is required for video interviews.")
		}
	case model.InterviewInPerson:
		if form["location"] == "" {
			fv.Add("location", "Location is required for in-person interviews.")
		}
	case model.InterviewPhone:
	}

	if loc == nil {
		loc = time.Local
	}
	at, _ := time.ParseInLocation(validation.DateTimeLayout, form["scheduled_at"], loc)
	return model.ScheduleInterviewRequest{
		ApplicationID:   pathID(r),
		ScheduledAt:     at,
		DurationMinutes: parseOptionalInt(form["duration_minutes"]),
		Type:            typ,
		Location:        form["location"],
		MeetingLink:     form["meeting_link"],
		Interviewer:     form["interviewer"],
		Notes:           form["notes"],
	}, form, fv.Errors()
}

func parseDecisionForm(r *http.Request) (model.RecordDecisionRequest, map[string]string, map[string]string) {
	form := formValues(r, "decision", "notes", "offered_salary", "start_date")
	fv := validation.New().
		Validate("decision", form["decision"], validation.OneOf("Decision", enumStrings(model.DecisionOutcomes()))).
		Validate("notes", form["notes"], validation.Optional("Notes", maxNotesLen)).
		Validate("offered_salary", form["offered_salary"], validation.OptionalNumber("Offered salary")).
		Validate("start_date", form["start_date"], validation.Date("Start date", false))

	outcome, _ := model.ParseDecisionOutcome(form["decision"])
	start, _ := model.ParseDate(form["start_date"])
	return model.RecordDecisionRequest{
		ApplicationID: pathID(r),
		Decision:      outcome,
		Notes:         form["notes"],
		OfferedSalary: parseOptionalFloat(form["offered_salary"]),
		StartDate:     start,
	}, form, fv.Errors()
}

var applicantProfileFields = []string{
	"first_name", "last_name", "email", "phone", "location", "headline",
	"skills", "experience_years", "education", "resume_url", "linkedin_url",
}

func parseApplicantProfileForm(r *http.Request) (model.ApplicantProfile, map[string]string, map[string]string) {
	form := formValues(r, applicantProfileFields...)
	fv := validation.New().
		Validate("first_name", form["first_name"], validation.Required("First name", maxNameLen)).
		Validate("last_name", form["last_name"], validation.Required("Last name", maxNameLen)).
		Validate("email", form["email"], validation.Email("Email")).
		Validate("phone", form["phone"], validation.Optional("Phone", 40)).
		Validate("location", form["location"], validation.Optional("Location", maxNameLen)).
		Validate("headline", form["headline"], validation.Optional("Headline", maxTitleLen)).
		Validate("skills", form["skills"], validation.Optional("Skills", maxNotesLen)).
		Validate("experience_years", form["experience_years"], validation.OptionalIntRange("Years of experience", 0, 70)).
		Validate("education", form["education"], validation.Optional("Education", maxURLLen)).
		Validate("resume_url", form["resume_url"], validation.OptionalURL("Resume URL", maxURLLen)).
		Validate("linkedin_url", form["linkedin_url"], validation.OptionalURL("LinkedIn URL", maxURLLen))

	return model.ApplicantProfile{
		FirstName:       form["first_name"],
		LastName:        form["last_name"],
		Email:           form["email"],
		Phone:           form["phone"],
		Location:        form["location"],
		Headline:        form["headline"],
		Skills:          model.SplitSkills(form["skills"]),
		ExperienceYears: parseOptionalInt(form["experience_years"]),
		Education:       form["education"],
		ResumeURL:       form["resume_url"],
		LinkedInURL:     form["linkedin_url"],
	}, form, fv.Errors()
}

func applicantProfileFormValues(p model.ApplicantProfile) map[string]string {
	form := map[string]string{
		"first_name":   p.FirstName,
		"last_name":    p.LastName,
		"email":        p.Email,
		"phone":        p.Phone,
		"location":     p.Location,
		"headline":     p.Headline,
		"skills":       strings.Join(p.Skills, ", "),
		"education":    p.Education,
		"resume_url":   p.ResumeURL,
		"linkedin_url": p.LinkedInURL,
	}
	if p.ExperienceYears > 0 {
		form["experience_years"] = strconv.Itoa(p.ExperienceYears)
	}
	return form
}

func parseHRProfileForm(r *http.Request) (model.HRProfile, map[string]string, map[string]string) {
	form := formValues(r, "first_name", "last_name", "email", "phone", "department", "company", "position")
	fv := validation.New().
		Validate("first_name", form["first_name"], validation.Required("First name", maxNameLen)).
		Validate("last_name", form["last_name"], validation.Required("Last name", maxNameLen)).
		Validate("email", form["email"], validation.Email("Email")).
		Validate("phone", form["phone"], validation.Optional("Phone", 40)).
		Validate("department", form["department"], validation.Optional("Department", maxNameLen)).
		Validate("company", form["company"], validation.Optional("Company", maxNameLen)).
		Validate("position", form["position"], validation.Optional("Position", maxNameLen))

	return model.HRProfile{
		FirstName:  form["first_name"],
		LastName:   form["last_name"],
		Email:      form["email"],
		Phone:      form["phone"],
		Department: form["department"],
		Company:    form["company"],
		Position:   form["position"],
	}, form, fv.Errors()
}

func hrProfileFormValues(p model.HRProfile) map[string]string {
	return map[string]string{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"email":      p.Email,
		"phone":      p.Phone,
		"department": p.Department,
		"company":    p.Company,
		"position":   p.Position,
	}
}
