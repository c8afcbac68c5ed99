package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler(t *testing.T, cfg CSRFConfig) (http.Handler, *bool) {
	t.Helper()
	called := false
	h := CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
	return h, &called
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCSRFProtection_GetIssuesToken(t *testing.T) {
	h, called := csrfTestHandler(t, CSRFConfig{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, *called)
	resp := rr.Result()
	defer resp.Body.Close()
	c := findCookie(resp, DefaultCSRFCookieName)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Value)
	assert.Equal(t, c.Value, rr.Body.String(), "token exposed to templates")
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.False(t, c.HttpOnly)
	assert.False(t, c.Secure)
}

func TestCSRFProtection_ExistingCookieReused(t *testing.T) {
	h, _ := csrfTestHandler(t, CSRFConfig{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	resp := rr.Result()
	defer resp.Body.Close()
	assert.Nil(t, findCookie(resp, DefaultCSRFCookieName))
	assert.Equal(t, "existing", rr.Body.String())
}

func TestCSRFProtection_Validation(t *testing.T) {
	form := func(token string) (string, string) {
		return url.Values{"csrf_token": {token}, "email": {"a@example.com"}}.Encode(), "application/x-www-form-urlencoded"
	}

	tests := []struct {
		name        string
		method      string
		cookie      string
		header      string
		body        string
		contentType string
		wantStatus  int
	}{
		{name: "post without token", method: http.MethodPost, cookie: "tok", wantStatus: http.StatusForbidden},
		{name: "post without cookie", method: http.MethodPost, header: "tok", wantStatus: http.StatusForbidden},
		{name: "header token", method: http.MethodPost, cookie: "tok", header: "tok", wantStatus: http.StatusOK},
		{name: "mismatched header", method: http.MethodPost, cookie: "tok", header: "other", wantStatus: http.StatusForbidden},
		{name: "delete needs token", method: http.MethodDelete, cookie: "tok", wantStatus: http.StatusForbidden},
		{name: "head exempt", method: http.MethodHead, wantStatus: http.StatusOK},
		{name: "options exempt", method: http.MethodOptions, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, called := csrfTestHandler(t, CSRFConfig{})
			req := httptest.NewRequest(tt.method, "/auth/signin", strings.NewReader(tt.body))
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(DefaultCSRFHeaderName, tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, *called)
		})
	}

	t.Run("form token", func(t *testing.T) {
		body, ct := form("tok")
		h, called := csrfTestHandler(t, CSRFConfig{})
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(body))
		req.Header.Set("Content-Type", ct)
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "tok"})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, *called)
	})

	t.Run("form token ignored for json bodies", func(t *testing.T) {
		body, _ := form("tok")
		h, called := csrfTestHandler(t, CSRFConfig{})
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "tok"})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, *called)
	})
}

func TestCSRFProtection_CookieAttributes(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		proto   string
		opts    CookieOptions
		secure  bool
		domain  string
	}{
		{name: "https request", target: "https://jobs.example.com/", secure: true},
		{name: "forwarded https", target: "/", proto: "https,http", secure: true},
		{name: "configured secure and domain", target: "/", opts: CookieOptions{Secure: true, Domain: "example.com"}, secure: true, domain: "example.com"},
		{name: "plain http", target: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := csrfTestHandler(t, CSRFConfig{Cookies: tt.opts})
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			resp := rr.Result()
			defer resp.Body.Close()
			c := findCookie(resp, DefaultCSRFCookieName)
			require.NotNil(t, c)
			assert.Equal(t, tt.secure, c.Secure)
			assert.Equal(t, tt.domain, c.Domain)
			assert.Equal(t, "/", c.Path)
		})
	}
}

func TestGetCSRFToken_NoToken(t *testing.T) {
	assert.Empty(t, GetCSRFToken(httptest.NewRequest(http.MethodGet, "/", nil)))
}
