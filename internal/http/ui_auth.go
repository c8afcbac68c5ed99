package httpx

import (
	"net/http"
	"strings"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http/validation"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

const errMsgBadCredentials = "Invalid email or password."

var (
	signInMeta = PageMeta{Title: "Sign in", PageTitle: "Sign in", CurrentPage: PageSignIn}
	signUpMeta = PageMeta{Title: "Create account", PageTitle: "Create account", CurrentPage: PageSignUp}
)

// SignInPage is the public entry point. Signed-in users go to their home.
// GET /.
func (h *UIHandlers) SignInPage(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session != nil {
		redirect(w, r, session.HomePath())
		return
	}
	data := NewTemplateData(r, signInMeta).
		WithForm(map[string]string{"redirect_uri": returnPath(r.URL.Query().Get("redirect_uri"))}).
		Build()
	h.renderDashboardPage(w, r, data)
}

// SignIn checks credentials and starts a session.
// POST /auth/signin.
func (h *UIHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, ErrorOpts{Err: apperrors.Validation("Invalid form submission"), PageMeta: signInMeta})
		return
	}
	form := map[string]string{
		"email":        strings.TrimSpace(r.PostFormValue("email")),
		"redirect_uri": returnPath(r.PostFormValue("redirect_uri")),
	}
	password := r.PostFormValue("password")

	fv := validation.New().
		Validate("email", form["email"], validation.Email("Email")).
		Validate("password", password, validation.Required("Password", 256))
	if !fv.Valid() {
		h.renderForm(w, r, ErrorOpts{
			FieldErrors: fv.Errors(),
			PageMeta:    signInMeta,
			Data:        map[string]any{"Form": form},
			StatusCode:  http.StatusUnprocessableEntity,
		})
		return
	}

	res, err := h.Auth.SignIn(r.Context(), service.SignInInput{
		Email:             form["email"],
		Password:          password,
		PreviousSessionID: cookieValue(r, SessionCookieName),
	})
	if err != nil {
		h.logger().InfoContext(r.Context(), "sign in rejected", "error", err)
		msg := apperrors.UserMessage(err)
		status := http.StatusUnprocessableEntity
		if apperrors.IsUnauthorized(err) {
			status = http.StatusUnauthorized
			if msg == apperrors.GenericMessage {
				msg = errMsgBadCredentials
			}
		}
		if apperrors.IsUnavailable(err) {
			status = http.StatusBadGateway
		}
		h.renderSignInError(w, r, form, msg, status)
		return
	}

	setSessionCookie(w, r, h.Cookies, res.Session)
	target := res.HomePath
	if ret := form["redirect_uri"]; ret != "" && pathAllowedFor(res.Session.Role, ret) {
		target = ret
	}
	redirect(w, r, target)
}

func (h *UIHandlers) renderSignInError(w http.ResponseWriter, r *http.Request, form map[string]string, msg string, status int) {
	data := NewTemplateData(r, signInMeta).WithError(msg).WithForm(form).Build()
	if !IsHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	h.renderDashboardPage(w, r, data)
}

// SignUpPage renders the registration form.
// GET /signup.
func (h *UIHandlers) SignUpPage(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session != nil {
		redirect(w, r, session.HomePath())
		return
	}
	data := NewTemplateData(r, signUpMeta).
		WithForm(map[string]string{"role": string(domainauth.RoleApplicant)}).
		With("Roles", signUpRoles()).
		Build()
	h.renderDashboardPage(w, r, data)
}

// SignUp registers an account and sends the user to sign in.
// POST /signup.
func (h *UIHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, ErrorOpts{Err: apperrors.Validation("Invalid form submission"), PageMeta: signUpMeta})
		return
	}
	form := map[string]string{
		"first_name": strings.TrimSpace(r.PostFormValue("first_name")),
		"last_name":  strings.TrimSpace(r.PostFormValue("last_name")),
		"email":      strings.TrimSpace(r.PostFormValue("email")),
		"role":       strings.TrimSpace(r.PostFormValue("role")),
	}
	password := r.PostFormValue("password")
	extra := map[string]any{"Form": form, "Roles": signUpRoles()}

	fv := validation.New().
		Validate("first_name", form["first_name"], validation.Required("First name", 100)).
		Validate("last_name", form["last_name"], validation.Required("Last name", 100)).
		Validate("email", form["email"], validation.Email("Email")).
		Validate("password", password, validation.MinLength("Password", 6)).
		Validate("role", form["role"], validation.OneOf("Account type", roleOptions()))
	if password != r.PostFormValue("confirm_password") {
		fv.Add("confirm_password", "Passwords do not match.")
	}
	if !fv.Valid() {
		h.renderForm(w, r, ErrorOpts{
			FieldErrors: fv.Errors(),
			PageMeta:    signUpMeta,
			Data:        extra,
			StatusCode:  http.StatusUnprocessableEntity,
		})
		return
	}

	role, _ := domainauth.ParseRole(form["role"])
	err := h.Auth.SignUp(r.Context(), ports.SignUpInput{
		FirstName: form["first_name"],
		LastName:  form["last_name"],
		Email:     form["email"],
		Password:  password,
		Role:      role,
	})
	if err != nil {
		h.logger().InfoContext(r.Context(), "sign up rejected", "error", err)
		status := http.StatusUnprocessableEntity
		if apperrors.IsUnavailable(err) {
			status = http.StatusBadGateway
		}
		h.renderForm(w, r, ErrorOpts{Err: err, PageMeta: signUpMeta, Data: extra, StatusCode: status})
		return
	}
	redirect(w, r, withNotice(domainauth.PublicEntryPath, "signed-up"))
}

// Home sends a signed-in user to the dashboard for their role.
// GET /dashboard.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirect(w, r, domainauth.PublicEntryPath)
		return
	}
	redirect(w, r, session.HomePath())
}

type roleOption struct {
	Value string
	Label string
}

func signUpRoles() []roleOption {
	return []roleOption{
		{Value: string(domainauth.RoleApplicant), Label: "Job seeker"},
		{Value: string(domainauth.RoleHRManager), Label: "HR manager"},
	}
}

func roleOptions() []string {
	return []string{string(domainauth.RoleApplicant), string(domainauth.RoleHRManager)}
}

// returnPath keeps a post-sign-in destination only when it is a local path
// other than the entry page.
func returnPath(raw string) string {
	p := safeRedirectPath(strings.TrimSpace(raw))
	if p == "/" {
		return ""
	}
	return p
}

// pathAllowedFor reports whether a return path lies inside the role's area.
func pathAllowedFor(role domainauth.Role, p string) bool {
	switch role {
	case domainauth.RoleHRManager:
		return strings.HasPrefix(p, "/hr/")
	case domainauth.RoleApplicant:
		return strings.HasPrefix(p, "/applicant/")
	default:
		return false
	}
}
