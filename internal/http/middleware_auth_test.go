package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

// mockAuthServiceForMiddleware is a test double for AuthServiceInterface.
// Without getSessionFunc every session ID resolves to an applicant session.
type mockAuthServiceForMiddleware struct {
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	signOutIDs     []string
}

func (m *mockAuthServiceForMiddleware) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return &domainauth.Session{
		ID:        sessionID,
		UserID:    "test-user",
		Email:     "test@example.com",
		Role:      domainauth.RoleApplicant,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (m *mockAuthServiceForMiddleware) SignIn(context.Context, service.SignInInput) (*service.SignInResult, error) {
	return nil, domainauth.ErrSessionNotFound
}

func (m *mockAuthServiceForMiddleware) SignOut(_ context.Context, sessionID string) error {
	m.signOutIDs = append(m.signOutIDs, sessionID)
	return nil
}

func (m *mockAuthServiceForMiddleware) SignUp(context.Context, ports.SignUpInput) error { return nil }

func noSessions() *mockAuthServiceForMiddleware {
	return &mockAuthServiceForMiddleware{
		getSessionFunc: func(context.Context, string) (*domainauth.Session, error) {
			return nil, domainauth.ErrSessionNotFound
		},
	}
}

func sessionWithRole(role domainauth.Role) *mockAuthServiceForMiddleware {
	return &mockAuthServiceForMiddleware{
		getSessionFunc: func(_ context.Context, id string) (*domainauth.Session, error) {
			return &domainauth.Session{ID: id, UserID: "u-1", Role: role, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
}

// guardedHandler wraps mw around a handler that records whether it ran.
func guardedHandler(mw func(http.Handler) http.Handler) (http.Handler, *bool) {
	called := false
	h := BrowserDetection()(mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if s, ok := GetUserSessionFromContext(r.Context()); ok {
			_, _ = w.Write([]byte(s.ID))
		}
	})))
	return h, &called
}

func withSessionCookie(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
	return r
}

func TestRequireAuthBrowser_BrowserWithoutSession(t *testing.T) {
	h, called := guardedHandler(RequireAuthBrowser(noSessions()))

	req := httptest.NewRequest(http.MethodGet, "/applicant/applications?status=SHORTLISTED", nil)
	req.Header.Set("Accept", "text/html")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?redirect_uri=%2Fapplicant%2Fapplications%3Fstatus%3DSHORTLISTED", rr.Header().Get("Location"))
	assert.False(t, *called, "protected handler must not run")
}

func TestRequireAuthBrowser_NoCookieSkipsLookup(t *testing.T) {
	svc := &mockAuthServiceForMiddleware{
		getSessionFunc: func(context.Context, string) (*domainauth.Session, error) {
			t.Fatal("GetSession called without a cookie")
			return nil, nil
		},
	}
	h, called := guardedHandler(RequireAuthBrowser(svc))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hr/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, *called)
}

func TestRequireAuthBrowser_HTMXWithoutSession(t *testing.T) {
	h, called := guardedHandler(RequireAuthBrowser(noSessions()))

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/hr/applications/7/status", nil))
	req.Header.Set("Hx-Request", "true")
	req.Header.Set("Hx-Current-Url", "https://portal.example.com/hr/applications/7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/?redirect_uri=%2Fhr%2Fapplications%2F7", rr.Header().Get("Hx-Redirect"))
	assert.Empty(t, rr.Header().Get("Location"))
	assert.False(t, *called)
}

func TestRequireAuthBrowser_JSONWithoutSession(t *testing.T) {
	h, called := guardedHandler(RequireAuthBrowser(noSessions()))

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rr.Body.String(), `"success":false`)
	assert.False(t, *called)
}

func TestRequireAuthBrowser_WithSession(t *testing.T) {
	h, called := guardedHandler(RequireAuthBrowser(&mockAuthServiceForMiddleware{}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, withSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *called)
	assert.Equal(t, "sess-1", rr.Body.String())
}

func TestRequireRoleBrowser(t *testing.T) {
	tests := []struct {
		name       string
		required   domainauth.Role
		sessionFor *mockAuthServiceForMiddleware
		accept     string
		wantStatus int
		wantLoc    string
		wantCalled bool
	}{
		{
			name:       "matching role",
			required:   domainauth.RoleHRManager,
			sessionFor: sessionWithRole(domainauth.RoleHRManager),
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "applicant on hr subtree goes home",
			required:   domainauth.RoleHRManager,
			sessionFor: sessionWithRole(domainauth.RoleApplicant),
			wantStatus: http.StatusSeeOther,
			wantLoc:    domainauth.ApplicantHomePath,
		},
		{
			name:       "hr on applicant subtree goes home",
			required:   domainauth.RoleApplicant,
			sessionFor: sessionWithRole(domainauth.RoleHRManager),
			wantStatus: http.StatusSeeOther,
			wantLoc:    domainauth.HRHomePath,
		},
		{
			name:       "wrong role json",
			required:   domainauth.RoleHRManager,
			sessionFor: sessionWithRole(domainauth.RoleApplicant),
			accept:     "application/json",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no session",
			required:   domainauth.RoleApplicant,
			sessionFor: noSessions(),
			wantStatus: http.StatusSeeOther,
			wantLoc:    "/?redirect_uri=%2Fsection",
		},
		{
			name:       "no session json",
			required:   domainauth.RoleHRManager,
			sessionFor: noSessions(),
			accept:     "application/json",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, called := guardedHandler(RequireRoleBrowser(tt.sessionFor, tt.required))
			req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/section", nil))
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, *called)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rr.Header().Get("Location"))
			}
		})
	}
}

func TestRequireRoleBrowser_HTMXWrongRole(t *testing.T) {
	h, called := guardedHandler(RequireRoleBrowser(sessionWithRole(domainauth.RoleApplicant), domainauth.RoleHRManager))
	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/hr/vacancies", nil))
	req.Header.Set("Hx-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, domainauth.ApplicantHomePath, rr.Header().Get("Hx-Redirect"))
	assert.False(t, *called)
}

func TestOptionalAuth(t *testing.T) {
	var got *domainauth.Session
	h := OptionalAuth(sessionWithRole(domainauth.RoleHRManager))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = GetUserSessionFromContext(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, got)

	h.ServeHTTP(httptest.NewRecorder(), withSessionCookie(httptest.NewRequest(http.MethodGet, "/", nil)))
	require.NotNil(t, got)
	assert.True(t, got.IsHR())
}

func TestRedirectPathForRequest(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		htmx    bool
		current string
		referer string
		want    string
	}{
		{name: "plain request uri", target: "/hr/vacancies?status=ACTIVE", want: "/hr/vacancies?status=ACTIVE"},
		{name: "htmx prefers current url", target: "/frag", htmx: true, current: "/hr/dashboard", want: "/hr/dashboard"},
		{name: "htmx absolute current url", target: "/frag", htmx: true, current: "https://portal.example.com/applicant/jobs?q=go", want: "/applicant/jobs?q=go"},
		{name: "htmx referer fallback", target: "/frag", htmx: true, referer: "/applicant/profile", want: "/applicant/profile"},
		{name: "scheme-relative rejected", target: "/frag", htmx: true, current: "//evil.example.com/x", want: "/frag"},
		{name: "malformed current url", target: "/frag", htmx: true, current: "%zz", want: "/frag"},
		{name: "non-htmx ignores headers", target: "/hr/interviews", current: "/elsewhere", want: "/hr/interviews"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.htmx {
				req.Header.Set("Hx-Request", "true")
			}
			if tt.current != "" {
				req.Header.Set("Hx-Current-Url", tt.current)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			assert.Equal(t, tt.want, redirectPathForRequest(req))
		})
	}
}

func TestSafeRedirectPath(t *testing.T) {
	tests := map[string]string{
		"":                         "/",
		"/hr/dashboard":            "/hr/dashboard",
		"https://evil.example.com": "/",
		"//evil.example.com":       "/",
		"/\\evil.example.com":      "/",
		"hr/dashboard":             "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeRedirectPath(in), "input %q", in)
	}
	assert.Equal(t, "/", signInURL("/"))
	assert.Equal(t, "/", signInURL("https://evil.example.com"))
}
