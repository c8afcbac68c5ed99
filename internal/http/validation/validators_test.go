package validation

import (
	"strings"
	"testing"
)

const errTitleRequired = "Title is required."

func TestRequired(t *testing.T) {
	tests := []struct {
		name   string
		maxLen int
		value  string
		errMsg string
	}{
		{name: "valid input", maxLen: 10, value: "Engineer"},
		{name: "empty string", maxLen: 10, value: "", errMsg: errTitleRequired},
		{name: "whitespace only", maxLen: 10, value: "   ", errMsg: errTitleRequired},
		{name: "exceeds max length", maxLen: 5, value: "toolong", errMsg: "Title cannot exceed 5 characters."},
		{name: "unicode within limit", maxLen: 5, value: "ééééé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Required("Title", tt.maxLen)(tt.value); got != tt.errMsg {
				t.Errorf("Required() = %q, want %q", got, tt.errMsg)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		value  string
		errMsg string
	}{
		{"ana@example.com", ""},
		{"", "Email is required."},
		{"not-an-email", "Enter a valid email address."},
	}
	for _, tt := range tests {
		if got := Email("Email")(tt.value); got != tt.errMsg {
			t.Errorf("Email(%q) = %q, want %q", tt.value, got, tt.errMsg)
		}
	}
}

func TestOptionalNumber(t *testing.T) {
	tests := []struct {
		value  string
		errMsg string
	}{
		{"", ""},
		{"85000", ""},
		{"85,000", ""},
		{"12.5", ""},
		{"abc", "Minimum salary must be a number."},
		{"-1", "Minimum salary cannot be negative."},
	}
	for _, tt := range tests {
		if got := OptionalNumber("Minimum salary")(tt.value); got != tt.errMsg {
			t.Errorf("OptionalNumber(%q) = %q, want %q", tt.value, got, tt.errMsg)
		}
	}
}

func TestOptionalIntRange(t *testing.T) {
	v := OptionalIntRange("Duration", 1, 480)
	tests := []struct {
		value  string
		errMsg string
	}{
		{"", ""},
		{"60", ""},
		{"0", "Duration must be between 1 and 480."},
		{"sixty", "Duration must be a number."},
	}
	for _, tt := range tests {
		if got := v(tt.value); got != tt.errMsg {
			t.Errorf("OptionalIntRange(%q) = %q, want %q", tt.value, got, tt.errMsg)
		}
	}
}

func TestDateAndDateTime(t *testing.T) {
	if got := Date("Deadline", true)(""); got != "Deadline is required." {
		t.Errorf("required blank date = %q", got)
	}
	if got := Date("Deadline", false)(""); got != "" {
		t.Errorf("optional blank date = %q", got)
	}
	if got := Date("Deadline", false)("2026-13-40"); got != "Deadline must be a valid date." {
		t.Errorf("bad date = %q", got)
	}
	if got := Date("Deadline", true)("2026-05-01"); got != "" {
		t.Errorf("good date = %q", got)
	}
	if got := DateTime("When")("2026-05-01T14:30"); got != "" {
		t.Errorf("good datetime = %q", got)
	}
	if got := DateTime("When")("tomorrow"); got != "When must be a valid date and time." {
		t.Errorf("bad datetime = %q", got)
	}
}

func TestOptionalURL(t *testing.T) {
	tests := []struct {
		value  string
		errMsg string
	}{
		{"", ""},
		{"https://cv.example.com/ana.pdf", ""},
		{"ftp://example.com/cv", "Enter a valid http(s) URL."},
		{"example.com", "Enter a valid http(s) URL."},
		{"https://example.com/" + strings.Repeat("a", 30), "Resume URL cannot exceed 30 characters."},
	}
	for _, tt := range tests {
		if got := OptionalURL("Resume URL", 30)(tt.value); got != tt.errMsg {
			t.Errorf("OptionalURL(%q) = %q, want %q", tt.value, got, tt.errMsg)
		}
	}
}

func TestOneOf(t *testing.T) {
	v := OneOf("Role", []string{"APPLICANT", "HR_MANAGER"})
	if got := v("applicant"); got != "" {
		t.Errorf("OneOf lower-case = %q", got)
	}
	if got := v("ADMIN"); got != "Role must be one of: APPLICANT, HR_MANAGER" {
		t.Errorf("OneOf unknown = %q", got)
	}
}

func TestFieldValidator(t *testing.T) {
	fv := New().
		Validate("title", "", Required("Title", 10)).
		Validate("min", "x", OptionalNumber("Minimum"), Required("Minimum", 5)).
		Validate("location", "Berlin", Required("Location", 20))
	fv.Add("min", "ignored because min already failed")
	fv.Add("deadline", "Deadline is required.")

	if fv.Valid() {
		t.Fatal("expected errors")
	}
	errs := fv.Errors()
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	if errs["title"] != errTitleRequired {
		t.Errorf("title = %q", errs["title"])
	}
	if errs["min"] != "Minimum must be a number." {
		t.Errorf("min = %q", errs["min"])
	}
	if _, ok := errs["location"]; ok {
		t.Error("location should be valid")
	}
	if !New().Valid() {
		t.Error("empty validator should be valid")
	}
}
