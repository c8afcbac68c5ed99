package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowserDetection(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		accept string
		htmx   bool
		want   bool
	}{
		{name: "html accept", path: "/applicant/jobs", accept: "text/html,application/xhtml+xml,*/*;q=0.8", want: true},
		{name: "json accept", path: "/auth/status", accept: "application/json", want: false},
		{name: "no accept header", path: "/hr/dashboard", want: true},
		{name: "htmx with json accept", path: "/hr/dashboard", accept: "application/json", htmx: true, want: true},
		{name: "static asset", path: "/static/css/app.css", accept: "text/html", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			h := BrowserDetection()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = IsBrowserRequest(r)
			}))
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if tt.htmx {
				req.Header.Set("Hx-Request", "true")
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)

			// Direct detection agrees with the middleware.
			assert.Equal(t, tt.want, IsBrowserRequest(req))
		})
	}
}

func TestIsBrowserRequest_ContextWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/applicant/jobs", nil)
	req.Header.Set("Accept", "text/html")
	req = req.WithContext(context.WithValue(req.Context(), browserRequestKey{}, false))
	assert.False(t, IsBrowserRequest(req))
}
