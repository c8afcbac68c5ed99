package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http/ui/viewmodel"
)

func TestNewTemplateData_Anonymous(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	data := NewTemplateData(r, PageMeta{Title: "Sign in", PageTitle: "Sign in", CurrentPage: PageSignIn}).Build()

	if data["Title"] != "Sign in" || data["CurrentPage"] != PageSignIn {
		t.Fatalf("unexpected meta: %v", data)
	}
	if data["IsAuthenticated"] != false {
		t.Errorf("IsAuthenticated = %v, want false", data["IsAuthenticated"])
	}
	if _, ok := data["User"]; ok {
		t.Error("anonymous page should not carry a user")
	}
}

func TestNewTemplateData_HRSession(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/hr/vacancies?notice=vacancy-created", nil)
	sess := &domainauth.Session{ID: "s", Email: "hr@example.com", Name: "Hana Reyes", Role: domainauth.RoleHRManager, ExpiresAt: time.Now().Add(time.Hour)}
	r = r.WithContext(SetSessionInContext(r.Context(), sess))

	data := NewTemplateData(r, PageMeta{Title: "Vacancies", CurrentPage: PageVacancies}).
		WithFieldErrors(nil).
		WithForm(map[string]string{"title": "Go Engineer"}).
		With("Extra", 1).
		Build()

	if data["IsHR"] != true || data["IsApplicant"] != false {
		t.Errorf("role flags wrong: IsHR=%v IsApplicant=%v", data["IsHR"], data["IsApplicant"])
	}
	user, ok := data["User"].(*viewmodel.User)
	if !ok || user.Name != "Hana Reyes" || user.HomePath != domainauth.HRHomePath {
		t.Fatalf("user = %#v", data["User"])
	}
	nav, ok := data["Nav"].([]viewmodel.NavItem)
	if !ok || len(nav) == 0 || nav[0].Href != domainauth.HRHomePath {
		t.Fatalf("nav = %#v", data["Nav"])
	}
	if data["Notice"] != "Vacancy created." {
		t.Errorf("Notice = %v", data["Notice"])
	}
	if _, ok := data["Errors"]; ok {
		t.Error("empty field errors should not be set")
	}
	if data["Form"].(map[string]string)["title"] != "Go Engineer" || data["Extra"] != 1 {
		t.Errorf("custom fields missing: %v", data)
	}
}

func TestTemplateDataBuilder_WithError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	data := NewTemplateData(r, PageMeta{}).WithError("boom").Build()
	if data["Error"] != true || data["ErrorMessage"] != "boom" {
		t.Errorf("error fields = %v / %v", data["Error"], data["ErrorMessage"])
	}
}

func TestNoticeMessage_UnknownKeyIgnored(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?notice=<script>", nil)
	data := NewTemplateData(r, PageMeta{}).Build()
	if _, ok := data["Notice"]; ok {
		t.Errorf("unknown notice keys must not be echoed, got %v", data["Notice"])
	}
}
