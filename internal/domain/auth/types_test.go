package auth

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"APPLICANT", RoleApplicant, true},
		{" applicant ", RoleApplicant, true},
		{"hr-manager", RoleHRManager, true},
		{"hr manager", RoleHRManager, true},
		{"ADMIN", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSession_HomePath(t *testing.T) {
	if got := (Session{Role: RoleHRManager}).HomePath(); got != HRHomePath {
		t.Fatalf("hr home = %q", got)
	}
	if got := (Session{Role: RoleApplicant}).HomePath(); got != ApplicantHomePath {
		t.Fatalf("applicant home = %q", got)
	}
	if got := (Session{}).HomePath(); got != PublicEntryPath {
		t.Fatalf("unknown role home = %q", got)
	}
}

func TestSession_DisplayName(t *testing.T) {
	s := Session{Email: "ana@example.com"}
	if s.DisplayName() != "ana@example.com" {
		t.Fatalf("expected email fallback, got %q", s.DisplayName())
	}
	s.Name = "Ana Ruiz"
	if s.DisplayName() != "Ana Ruiz" {
		t.Fatalf("expected name, got %q", s.DisplayName())
	}
	if !(Session{Role: RoleHRManager}).IsHR() || (Session{Role: RoleHRManager}).IsApplicant() {
		t.Fatal("role predicates wrong")
	}
}
