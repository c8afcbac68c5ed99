// Package fakeapi is an in-memory stand-in for the remote recruitment API,
// served over httptest. It keeps state between calls so tests can exercise
// round trips (save then reload) through the real HTTP client.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
)

// SigningKey signs the tokens minted by the fake.
var SigningKey = []byte("fakeapi-signing-key")

// Account is a user known to the fake.
type Account struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     string
	// Token is returned on sign-in. When empty a signed JWT is minted.
	Token string
}

// Request is a recorded inbound call.
type Request struct {
	Method        string
	Path          string
	Authorization string
}

type failure struct {
	status  int
	message string
}

// Server is the fake API.
type Server struct {
	*httptest.Server

	mu                sync.Mutex
	envelope          bool
	now               func() time.Time
	nextID            int
	accounts          map[string]*Account // by email
	byToken           map[string]*Account
	vacancies         map[model.ID]model.Vacancy
	applications      []model.Application
	interviews        []model.Interview
	decisions         []model.HiringDecision
	applicantProfiles map[string]model.ApplicantProfile // by account ID
	hrProfiles        map[string]model.HRProfile
	failures          map[string]failure
	requests          []Request
}

// Option configures the fake.
type Option func(*Server)

// WithEnvelope wraps every response in {"success": ..., "data": ...}.
func WithEnvelope() Option { return func(s *Server) { s.envelope = true } }

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// Cleaner is satisfied by *testing.T.
type Cleaner interface {
	Cleanup(func())
}

// New starts the fake. It is closed when the test finishes.
func New(t Cleaner, opts ...Option) *Server {
	s := &Server{
		now:               time.Now,
		nextID:            100,
		accounts:          map[string]*Account{},
		byToken:           map[string]*Account{},
		vacancies:         map[model.ID]model.Vacancy{},
		applicantProfiles: map[string]model.ApplicantProfile{},
		hrProfiles:        map[string]model.HRProfile{},
		failures:          map[string]failure{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// MintToken returns an HS256 JWT carrying the claims the portal reads.
func MintToken(sub, email, name, role string, exp time.Time) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"name":  name,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   time.Now().Unix(),
	})
	signed, err := tok.SignedString(SigningKey)
	if err != nil {
		panic(fmt.Sprintf("fakeapi: sign token: %v", err))
	}
	return signed
}

// AddAccount registers a user and returns it with its token filled in.
func (s *Server) AddAccount(a Account) Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = s.newID()
	}
	if a.Token == "" {
		a.Token = MintToken(a.ID, a.Email, a.Name, a.Role, s.now().Add(time.Hour))
	}
	acc := a
	s.accounts[strings.ToLower(a.Email)] = &acc
	s.byToken[a.Token] = &acc
	return a
}

// AddVacancy stores v, assigning an ID when missing.
func (s *Server) AddVacancy(v model.Vacancy) model.Vacancy {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID.IsZero() {
		v.ID = model.ID(s.newID())
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = s.now()
	}
	s.vacancies[v.ID] = v
	return v
}

// AddApplication stores a.
func (s *Server) AddApplication(a model.Application) model.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = model.ID(s.newID())
	}
	s.applications = append(s.applications, a)
	return a
}

// AddInterview stores iv.
func (s *Server) AddInterview(iv model.Interview) model.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	if iv.ID.IsZero() {
		iv.ID = model.ID(s.newID())
	}
	s.interviews = append(s.interviews, iv)
	return iv
}

// Applications returns a snapshot of stored applications.
func (s *Server) Applications() []model.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Application(nil), s.applications...)
}

// Vacancy returns the stored vacancy.
func (s *Server) Vacancy(id model.ID) (model.Vacancy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vacancies[id]
	return v, ok
}

// FailNext makes the next request matching method and path fail.
func (s *Server) FailNext(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, message: message}
}

// Requests returns the recorded calls.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// CountRequests counts recorded calls matching method and path.
func (s *Server) CountRequests(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) newID() string {
	s.nextID++
	return strconv.Itoa(s.nextID)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/signin", s.signIn)
	mux.HandleFunc("POST /auth/signup", s.signUp)

	mux.HandleFunc("GET /applicant/profile", s.as("APPLICANT", s.getApplicantProfile))
	mux.HandleFunc("PUT /applicant/profile", s.as("APPLICANT", s.putApplicantProfile))
	mux.HandleFunc("GET /applicant/applications", s.as("APPLICANT", s.myApplications))
	mux.HandleFunc("POST /applicant/applications", s.as("APPLICANT", s.apply))
	mux.HandleFunc("GET /applicant/interviews", s.as("APPLICANT", s.myInterviews))
	mux.HandleFunc("GET /applicant/dashboard", s.as("APPLICANT", s.applicantDashboard))

	mux.HandleFunc("GET /hr/profile", s.as("HR_MANAGER", s.getHRProfile))
	mux.HandleFunc("PUT /hr/profile", s.as("HR_MANAGER", s.putHRProfile))
	mux.HandleFunc("GET /hr/applications", s.as("HR_MANAGER", s.allApplications))
	mux.HandleFunc("GET /hr/applications/{id}", s.as("HR_MANAGER", s.getApplication))
	mux.HandleFunc("PATCH /hr/applications/{id}/status", s.as("HR_MANAGER", s.setApplicationStatus))
	mux.HandleFunc("GET /hr/interviews", s.as("HR_MANAGER", s.allInterviews))
	mux.HandleFunc("POST /hr/interviews", s.as("HR_MANAGER", s.scheduleInterview))
	mux.HandleFunc("PATCH /hr/interviews/{id}/status", s.as("HR_MANAGER", s.setInterviewStatus))
	mux.HandleFunc("GET /hr/decisions", s.as("HR_MANAGER", s.allDecisions))
	mux.HandleFunc("POST /hr/decisions", s.as("HR_MANAGER", s.recordDecision))
	mux.HandleFunc("GET /hr/dashboard", s.as("HR_MANAGER", s.hrDashboard))

	mux.HandleFunc("GET /vacancies", s.as("", s.listVacancies))
	mux.HandleFunc("GET /vacancies/{id}", s.as("", s.getVacancy))
	mux.HandleFunc("POST /vacancies", s.as("HR_MANAGER", s.createVacancy))
	mux.HandleFunc("PUT /vacancies/{id}", s.as("HR_MANAGER", s.updateVacancy))
	mux.HandleFunc("DELETE /vacancies/{id}", s.as("HR_MANAGER", s.deleteVacancy))
	mux.HandleFunc("PATCH /vacancies/{id}/status", s.as("HR_MANAGER", s.setVacancyStatus))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
		})
		f, injected := s.failures[r.Method+" "+r.URL.Path]
		delete(s.failures, r.Method+" "+r.URL.Path)
		s.mu.Unlock()

		if injected {
			s.fail(w, f.status, f.message)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

type handler func(w http.ResponseWriter, r *http.Request, acc *Account)

// as authenticates the bearer token and, when role is set, requires it.
func (s *Server) as(role string, h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		acc, ok := s.byToken[token]
		s.mu.Unlock()
		if !ok || token == "" {
			s.fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if role != "" && acc.Role != role {
			s.fail(w, http.StatusForbidden, "Forbidden")
			return
		}
		h(w, r, acc)
	}
}

func (s *Server) ok(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil && status == http.StatusNoContent {
		return
	}
	if s.envelope {
		v = map[string]any{"success": true, "data": v}
	}
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes an error envelope; an empty message sends the status alone.
func (s *Server) fail(w http.ResponseWriter, status int, message string) {
	if message == "" {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}

func decode[T any](w http.ResponseWriter, r *http.Request, s *Server) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid JSON body")
		return v, false
	}
	return v, true
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	in, ok := decode[struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	acc, found := s.accounts[strings.ToLower(in.Email)]
	s.mu.Unlock()
	if !found || acc.Password != in.Password {
		s.fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	s.ok(w, http.StatusOK, map[string]any{
		"token": acc.Token,
		"user":  map[string]any{"id": acc.ID, "email": acc.Email, "name": acc.Name, "role": acc.Role},
	})
}

func (s *Server) signUp(w http.ResponseWriter, r *http.Request) {
	in, ok := decode[struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	}](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	_, exists := s.accounts[strings.ToLower(in.Email)]
	s.mu.Unlock()
	if exists {
		s.fail(w, http.StatusConflict, "An account with this email already exists")
		return
	}
	acc := s.AddAccount(Account{
		Email:    in.Email,
		Password: in.Password,
		Name:     strings.TrimSpace(in.FirstName + " " + in.LastName),
		Role:     in.Role,
	})
	s.ok(w, http.StatusCreated, map[string]any{"id": acc.ID, "email": acc.Email})
}

func (s *Server) getApplicantProfile(w http.ResponseWriter, _ *http.Request, acc *Account) {
	s.mu.Lock()
	p, ok := s.applicantProfiles[acc.ID]
	s.mu.Unlock()
	if !ok {
		p = model.ApplicantProfile{Email: acc.Email}
	}
	s.ok(w, http.StatusOK, p)
}

func (s *Server) putApplicantProfile(w http.ResponseWriter, r *http.Request, acc *Account) {
	p, ok := decode[model.ApplicantProfile](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	s.applicantProfiles[acc.ID] = p
	s.mu.Unlock()
	s.ok(w, http.StatusOK, p)
}

func (s *Server) getHRProfile(w http.ResponseWriter, _ *http.Request, acc *Account) {
	s.mu.Lock()
	p, ok := s.hrProfiles[acc.ID]
	s.mu.Unlock()
	if !ok {
		p = model.HRProfile{Email: acc.Email}
	}
	s.ok(w, http.StatusOK, p)
}

func (s *Server) putHRProfile(w http.ResponseWriter, r *http.Request, acc *Account) {
	p, ok := decode[model.HRProfile](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	s.hrProfiles[acc.ID] = p
	s.mu.Unlock()
	s.ok(w, http.StatusOK, p)
}

func (s *Server) myApplications(w http.ResponseWriter, _ *http.Request, acc *Account) {
	s.mu.Lock()
	out := []model.Application{}
	for _, a := range s.applications {
		if a.ApplicantID.String() == acc.ID {
			out = append(out, a)
		}
	}
	s.mu.Unlock()
	s.ok(w, http.StatusOK, out)
}

func (s *Server) apply(w http.ResponseWriter, r *http.Request, acc *Account) {
	in, ok := decode[model.ApplyRequest](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	v, exists := s.vacancies[in.VacancyID]
	if !exists {
		s.mu.Unlock()
		s.fail(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	for _, a := range s.applications {
		if a.ApplicantID.String() == acc.ID && a.VacancyID == in.VacancyID {
			s.mu.Unlock()
			s.fail(w, http.StatusConflict, "You have already applied for this vacancy")
			return
		}
	}
	app := model.Application{
		ID:             model.ID(s.newID()),
		VacancyID:      v.ID,
		VacancyTitle:   v.Title,
		ApplicantID:    model.ID(acc.ID),
		ApplicantName:  acc.Name,
		ApplicantEmail: acc.Email,
		CoverLetter:    in.CoverLetter,
		ResumeURL:      in.ResumeURL,
		Status:         model.ApplicationSubmitted,
		AppliedAt:      s.now(),
	}
	s.applications = append(s.applications, app)
	s.mu.Unlock()
	s.ok(w, http.StatusCreated, app)
}

func (s *Server) myInterviews(w http.ResponseWriter, _ *http.Request, acc *Account) {
	s.mu.Lock()
	mine := map[model.ID]bool{}
	for _, a := range s.applications {
		if a.ApplicantID.String() == acc.ID {
			mine[a.ID] = true
		}
	}
	out := []model.Interview{}
	for _, iv := range s.interviews {
		if mine[iv.ApplicationID] {
			out = append(out, iv)
		}
	}
	s.mu.Unlock()
	s.ok(w, http.StatusOK, out)
}

func (s *Server) applicantDashboard(w http.ResponseWriter, _ *http.Request, acc *Account) {
	s.mu.Lock()
	stats := model.ApplicantDashboardStats{ByStatus: map[string]int{}}
	mine := map[model.ID]bool{}
	for _, a := range s.applications {
		if a.ApplicantID.String() == acc.ID {
			stats.TotalApplications++
			stats.ByStatus[string(a.Status)]++
			mine[a.ID] = true
		}
	}
	for _, iv := range s.interviews {
		if mine[iv.ApplicationID] && iv.Status == model.InterviewScheduled {
			stats.UpcomingInterviews++
		}
	}
	s.mu.Unlock()
	s.ok(w, http.StatusOK, stats)
}

func (s *Server) allApplications(w http.ResponseWriter, _ *http.Request, _ *Account) {
	s.mu.Lock()
	out := append([]model.Application{}, s.applications...)
	s.mu.Unlock()
	s.ok(w, http.StatusOK, map[string]any{"applications": out})
}

func (s *Server) findApplication(id model.ID) (int, bool) {
	for i, a := range s.applications {
		if a.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Server) getApplication(w http.ResponseWriter, r *http.Request, _ *Account) {
	s.mu.Lock()
	i, ok := s.findApplication(model.ID(r.PathValue("id")))
	var a model.Application
	if ok {
		a = s.applications[i]
	}
	s.mu.Unlock()
	if !ok {
		s.fail(w, http.StatusNotFound, "Application not found")
		return
	}
	s.ok(w, http.StatusOK, a)
}

func (s *Server) setApplicationStatus(w http.ResponseWriter, r *http.Request, _ *Account) {
	in, ok := decode[model.UpdateApplicationStatusRequest](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	i, found := s.findApplication(model.ID(r.PathValue("id")))
	if !found {
		s.mu.Unlock()
		s.fail(w, http.StatusNotFound, "Application not found")
		return
	}
	if s.applications[i].Status.IsTerminal() {
		s.mu.Unlock()
		s.fail(w, http.StatusUnprocessableEntity, "Application already has a final decision")
		return
	}
	s.applications[i].Status = in.Status
	s.applications[i].UpdatedAt = s.now()
	a := s.applications[i]
	s.mu.Unlock()
	s.ok(w, http.StatusOK, a)
}

func (s *Server) allInterviews(w http.ResponseWriter, _ *http.Request, _ *Account) {
	s.mu.Lock()
	out := append([]model.Interview{}, s.interviews...)
	s.mu.Unlock()
	s.ok(w, http.StatusOK, out)
}

func (s *Server) scheduleInterview(w http.ResponseWriter, r *http.Request, _ *Account) {
	in, ok := decode[model.ScheduleInterviewRequest](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	i, found := s.findApplication(in.ApplicationID)
	if !found {
		s.mu.Unlock()
		s.fail(w, http.StatusNotFound, "Application not found")
		return
	}
	iv := model.Interview{
		ID:              model.ID(s.newID()),
		ApplicationID:   in.ApplicationID,
		ApplicantName:   s.applications[i].ApplicantName,
		VacancyTitle:    s.applications[i].VacancyTitle,
		ScheduledAt:     in.ScheduledAt,
		DurationMinutes: in.DurationMinutes,
		Type:            in.Type,
		Location:        in.Location,
		MeetingLink:     in.MeetingLink,
		Interviewer:     in.Interviewer,
		Notes:           in.Notes,
		Status:          model.InterviewScheduled,
	}
	s.interviews = append(s.interviews, iv)
	s.mu.Unlock()
	s.ok(w, http.StatusCreated, iv)
}

func (s *Server) setInterviewStatus(w http.ResponseWriter, r *http.Request, _ *Account) {
	in, ok := decode[model.UpdateInterviewStatusRequest](w, r, s)
	if !ok {
		return
	}
	id := model.ID(r.PathValue("id"))
	s.mu.Lock()
	for i := range s.interviews {
		if s.interviews[i].ID == id {
			s.interviews[i].Status = in.Status
			iv := s.interviews[i]
			s.mu.Unlock()
			s.ok(w, http.StatusOK, iv)
			return
		}
	}
	s.mu.Unlock()
	s.fail(w, http.StatusNotFound, "Interview not found")
}

func (s *Server) allDecisions(w http.ResponseWriter, _ *http.Request, _ *Account) {
	s.mu.Lock()
	out := append([]model.HiringDecision{}, s.decisions...)
	s.mu.Unlock()
	s.ok(w, http.StatusOK, out)
}

func (s *Server) recordDecision(w http.ResponseWriter, r *http.Request, acc *Account) {
	in, ok := decode[model.RecordDecisionRequest](w, r, s)
	if !ok {
		return
	}
	s.mu.Lock()
	i, found := s.findApplication(in.ApplicationID)
	if !found {
		s.mu.Unlock()
		s.fail(w, http.StatusNotFound, "Application not found")
		return
	}
	d := model.HiringDecision{
		ID:            model.ID(s.newID()),
		ApplicationID: in.ApplicationID,
		ApplicantName: s.applications[i].ApplicantName,
		VacancyTitle:  s.applications[i].VacancyTitle,
		Decision:      in.Decision,
		Notes:         in.Notes,
		OfferedSalary: in.OfferedSalary,
		StartDate:     in.StartDate,
		DecidedBy:     acc.Name,
		DecidedAt:     s.now(),
	}
	s.decisions = append(s.decisions, d)
	s.applications[i].Status = in.Decision.ApplicationStatus()
	s.mu.Unlock()
	s.ok(w, http.StatusCreated, d)
}

func (s *Server) hrDashboard(w http.ResponseWriter, _ *http.Request, _ *Account) {
	s.mu.Lock()
	stats := model.HRDashboardStats{ByStatus: map[string]int{}}
	for _, v := range s.vacancies {
		stats.TotalVacancies++
		if v.Status == model.VacancyStatusActive {
			stats.ActiveVacancies++
		}
	}
	for _, a := range s.applications {
		stats.TotalApplications++
		stats.ByStatus[string(a.Status)]++
	}
	for _, iv := range s.interviews {
		if iv.Status == model.InterviewScheduled {
			stats.UpcomingInterviews++
		}
	}
	stats.DecisionsMade = len(s.decisions)
	s.mu.Unlock()
	s.ok(w, http.StatusOK, stats)
}

func (s *Server) listVacancies(w http.ResponseWriter, _ *http.Request, _ *Account) {
	s.mu.Lock()
	out := make([]model.Vacancy, 0, len(s.vacancies))
	for _, v := range s.vacancies {
		out = append(out, v)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	s.ok(w, http.StatusOK, out)
}

func (s *Server) getVacancy(w http.ResponseWriter, r *http.Request, _ *Account) {
	v, ok := s.Vacancy(model.ID(r.PathValue("id")))
	if !ok {
		s.fail(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	s.ok(w, http.StatusOK, v)
}

func vacancyFrom(id model.ID, in model.VacancyRequest, created time.Time) model.Vacancy {
	return model.Vacancy{
		ID:             id,
		Title:          in.Title,
		Department:     in.Department,
		Location:       in.Location,
		EmploymentType: in.EmploymentType,
		Description:    in.Description,
		Requirements:   in.Requirements,
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		Currency:       in.Currency,
		Deadline:       in.Deadline,
		Status:         in.Status,
		CreatedAt:      created,
	}
}

func (s *Server) createVacancy(w http.ResponseWriter, r *http.Request, _ *Account) {
	in, ok := decode[model.VacancyRequest](w, r, s)
	if !ok {
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		s.fail(w, http.StatusBadRequest, "Title is required")
		return
	}
	s.mu.Lock()
	v := vacancyFrom(model.ID(s.newID()), in, s.now())
	s.vacancies[v.ID] = v
	s.mu.Unlock()
	s.ok(w, http.StatusCreated, v)
}

func (s *Server) updateVacancy(w http.ResponseWriter, r *http.Request, _ *Account) {
	in, ok := decode[model.VacancyRequest](w, r, s)
	if !ok {
		return
	}
	id := model.ID(r.PathValue("id"))
	s.mu.Lock()
	cur, found := s.vacancies[id]
	if !found {
		s.mu.Unlock()
		s.fail(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	v := vacancyFrom(id, in, cur.CreatedAt)
	v.UpdatedAt = s.now()
	s.vacancies[id] = v
	s.mu.Unlock()
	s.ok(w, http.StatusOK, v)
}

func (s *Server) deleteVacancy(w http.ResponseWriter, r *http.Request, _ *Account) {
	id := model.ID(r.PathValue("id"))
	s.mu.Lock()
	_, found := s.vacancies[id]
	delete(s.vacancies, id)
	s.mu.Unlock()
	if !found {
		s.fail(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	s.ok(w, http.StatusNoContent, nil)
}

func (s *Server) setVacancyStatus(w http.ResponseWriter, r *http.Request, _ *Account) {
	in, ok := decode[struct {
		Status model.VacancyStatus `json:"status"`
	}](w, r, s)
	if !ok {
		return
	}
	if !in.Status.Valid() {
		s.fail(w, http.StatusBadRequest, "Invalid status")
		return
	}
	id := model.ID(r.PathValue("id"))
	s.mu.Lock()
	v, found := s.vacancies[id]
	if found {
		v.Status = in.Status
		s.vacancies[id] = v
	}
	s.mu.Unlock()
	if !found {
		s.fail(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	s.ok(w, http.StatusOK, v)
}
