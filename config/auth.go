package config

import (
	"fmt"
	"strings"
	"time"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeAPI signs users in against the remote recruitment API.
	AuthModeAPI AuthMode = "api"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "api", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: api, mock)", v)
	}
}

// DevAuthConfig controls the built-in accounts used when AUTH_MODE=mock.
type DevAuthConfig struct {
	HREmail           string `env:"HR_EMAIL"           envDefault:"hr@example.com"`
	HRPassword        string `env:"HR_PASSWORD"        envDefault:"hr-password"`
	HRName            string `env:"HR_NAME"            envDefault:"Dev HR Manager"`
	ApplicantEmail    string `env:"APPLICANT_EMAIL"    envDefault:"applicant@example.com"`
	ApplicantPassword string `env:"APPLICANT_PASSWORD" envDefault:"applicant-password"`
	ApplicantName     string `env:"APPLICANT_NAME"     envDefault:"Dev Applicant"`
	// SigningKey signs mock tokens. A random key is generated when empty.
	SigningKey string `env:"SIGNING_KEY"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authenticator to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"api"`

	// DefaultRole is assigned when the token's role cannot be read.
	DefaultRole domainauth.Role `env:"AUTH_DEFAULT_ROLE" envDefault:"APPLICANT"`

	// SessionTTL applies when the token carries no usable expiry.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"8h"`

	// JWKSURL enables signature verification of access tokens. Leave empty
	// to read claims without verification.
	JWKSURL  string `env:"AUTH_JWKS_URL"`
	Issuer   string `env:"AUTH_ISSUER"`
	Audience string `env:"AUTH_AUDIENCE"`

	// Role claim values recognised for each portal role.
	HRRoleNames        []string `env:"AUTH_HR_ROLE_NAMES"        envDefault:"HR_MANAGER,HR,RECRUITER"`
	ApplicantRoleNames []string `env:"AUTH_APPLICANT_ROLE_NAMES" envDefault:"APPLICANT,CANDIDATE,USER"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// Sanitize normalizes the default role and bounds the session TTL to 5m..7d.
func (a *AuthConfig) Sanitize() {
	if r, ok := domainauth.ParseRole(string(a.DefaultRole)); ok {
		a.DefaultRole = r
	} else {
		a.DefaultRole = domainauth.RoleApplicant
	}

	switch {
	case a.SessionTTL <= 0:
		a.SessionTTL = 8 * time.Hour
	case a.SessionTTL < 5*time.Minute:
		a.SessionTTL = 5 * time.Minute
	case a.SessionTTL > 7*24*time.Hour:
		a.SessionTTL = 7 * 24 * time.Hour
	}

	a.JWKSURL = strings.TrimSpace(a.JWKSURL)
	a.Issuer = strings.TrimSpace(a.Issuer)
	a.Audience = strings.TrimSpace(a.Audience)
	if a.Mode == "" {
		a.Mode = AuthModeAPI
	}
}

// VerifyTokens reports whether token signatures should be checked.
func (a AuthConfig) VerifyTokens() bool {
	return a.JWKSURL != "" || a.Issuer != ""
}
