package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_DefinesEveryContentTemplate(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	for _, name := range []string{"layout", "content", "error-layout", "sidebar", "flash", "csrf"} {
		assert.NotNil(t, tr.t.Lookup(name), "missing template %q", name)
	}
	for page, name := range ContentTemplateMap() {
		assert.NotNil(t, tr.t.Lookup(name), "page %q: missing template %q", page, name)
	}
	assert.NotNil(t, tr.t.Lookup(ContentTemplateFor("no-such-page")))
}

func TestTemplateRenderer_PublicPages(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	tests := []struct {
		meta PageMeta
		want []string
	}{
		{signInMeta, []string{"<title>Sign in", `name="email"`, `name="password"`, `href="/signup"`}},
		{signUpMeta, []string{`name="first_name"`, `name="confirm_password"`, "Job seeker"}},
	}
	for _, tt := range tests {
		t.Run(tt.meta.CurrentPage, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			data := NewTemplateData(r, tt.meta).
				WithForm(map[string]string{}).
				With("Roles", signUpRoles()).
				Build()

			w := httptest.NewRecorder()
			require.NoError(t, tr.RenderFull(w, r, data))
			body := w.Body.String()
			assert.True(t, ContainsAll(body, tt.want), "body missing one of %v:\n%s", tt.want, body)
			assert.NotContains(t, body, `class="sidebar"`, "anonymous pages have no sidebar")
		})
	}
}

func TestTemplateRenderer_FieldErrorsAndNotice(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	r := httptest.NewRequest(http.MethodGet, "/?notice=signed-up", nil)
	data := NewTemplateData(r, signInMeta).
		WithForm(map[string]string{"email": "ana@example.com"}).
		WithFieldErrors(map[string]string{"password": "Password is required."}).
		Build()

	w := httptest.NewRecorder()
	require.NoError(t, tr.RenderFull(w, r, data))
	body := w.Body.String()
	assert.Contains(t, body, "Password is required.")
	assert.Contains(t, body, `value="ana@example.com"`)
	assert.Contains(t, body, "Account created. Please sign in.")
}

func TestTemplateRenderer_ErrorLayout(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	r := httptest.NewRequest(http.MethodGet, "/missing", nil)
	data := NewTemplateData(r, PageMeta{Title: "Not found", PageTitle: "Not found", CurrentPage: PageMissing}).
		With("Code", http.StatusNotFound).
		With("Message", "The page you requested does not exist.").
		With("HomePath", "/").
		Build()

	w := httptest.NewRecorder()
	require.NoError(t, tr.RenderError(w, r, data))
	assert.Contains(t, w.Body.String(), "The page you requested does not exist.")
}
