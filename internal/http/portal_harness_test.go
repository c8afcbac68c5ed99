package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/authroles"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/memory"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/tokenclaims"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/apiclient"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/testutil/fakeapi"
)

// Test accounts registered by newTestPortal.
const (
	testHREmail        = "hana@example.com"
	testApplicantEmail = "ana@example.com"
	testPassword       = "secret123"
)

// testPortal is the full router wired to real services over the fake API.
type testPortal struct {
	t        *testing.T
	API      *fakeapi.Server
	Sessions *memory.SessionStore
	Server   *httptest.Server
}

func newTestPortal(t *testing.T, opts ...fakeapi.Option) *testPortal {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
	}

	api := fakeapi.New(t, opts...)
	api.AddAccount(fakeapi.Account{ID: "hr-1", Email: testHREmail, Password: testPassword, Name: "Hana Reyes", Role: "HR_MANAGER"})
	api.AddAccount(fakeapi.Account{ID: "ap-1", Email: testApplicantEmail, Password: testPassword, Name: "Ana Ruiz", Role: "APPLICANT"})

	client, err := apiclient.New(apiclient.Options{BaseURL: api.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	sessions := memory.NewSessionStore(nil)
	auth := service.NewAuthService(service.AuthServiceOptions{
		Authenticator: client,
		Sessions:      sessions,
		Identity: service.IdentityConfig{
			Decoder: tokenclaims.Decoder{},
			Roles:   authroles.NewClaimsMapper(nil, nil),
		},
	})

	h, err := NewRouter(RouterServices{
		Auth:         auth,
		Vacancies:    service.NewVacancyService(service.VacancyServiceOptions{API: client}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{Applicant: client, HR: client}),
		Interviews:   service.NewInterviewService(service.InterviewServiceOptions{Applicant: client, HR: client}),
		Decisions:    service.NewDecisionService(service.DecisionServiceOptions{HR: client}),
		Profiles:     service.NewProfileService(service.ProfileServiceOptions{Applicant: client, HR: client}),
		Dashboards:   service.NewDashboardService(service.DashboardServiceOptions{Applicant: client, HR: client}),
		Health:       func(context.Context) error { return nil },
		TemplateFS:   os.DirFS(TemplatePathFromTest),
		StaticFS:     os.DirFS(StaticPathFromTest),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &testPortal{t: t, API: api, Sessions: sessions, Server: srv}
}

// browser is a cookie-keeping client that never follows redirects.
type browser struct {
	t      *testing.T
	base   *url.URL
	client *http.Client
}

func (p *testPortal) browser() *browser {
	p.t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(p.t, err)
	base, err := url.Parse(p.Server.URL)
	require.NoError(p.t, err)
	return &browser{
		t:    p.t,
		base: base,
		client: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// signedIn returns a browser holding a session for email.
func (p *testPortal) signedIn(email string) *browser {
	p.t.Helper()
	b := p.browser()
	res := b.PostForm("/auth/signin", url.Values{"email": {email}, "password": {testPassword}})
	require.Equal(p.t, http.StatusSeeOther, res.Status, res.Body)
	return b
}

// page is a fully read response.
type page struct {
	Status   int
	Header   http.Header
	Body     string
	Location string
}

func (b *browser) do(req *http.Request) page {
	b.t.Helper()
	res, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(b.t, err)
	return page{Status: res.StatusCode, Header: res.Header, Body: string(body), Location: res.Header.Get("Location")}
}

// Get requests path as a browser would.
func (b *browser) Get(path string, headers ...string) page {
	b.t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, b.base.String()+path, nil)
	require.NoError(b.t, err)
	req.Header.Set("Accept", "text/html")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return b.do(req)
}

// PostForm submits form to path with the CSRF token the portal issued.
func (b *browser) PostForm(path string, form url.Values) page {
	b.t.Helper()
	token := b.csrfToken()
	if token == "" {
		b.Get("/healthz")
		token = b.csrfToken()
	}
	require.NotEmpty(b.t, token, "portal did not issue a CSRF cookie")

	vals := url.Values{}
	for k, v := range form {
		vals[k] = v
	}
	vals.Set("csrf_token", token)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, b.base.String()+path, strings.NewReader(vals.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	return b.do(req)
}

func (b *browser) csrfToken() string {
	return b.cookie(DefaultCSRFCookieName)
}

func (b *browser) cookie(name string) string {
	for _, c := range b.client.Jar.Cookies(b.base) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
