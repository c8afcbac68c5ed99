package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"strings"
	"time"
)

// ErrSessionNotFound is returned by session stores for unknown or expired IDs.
var ErrSessionNotFound = errors.New("session not found")

// Role represents the portal role carried by a session.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleHRManager Role = "HR_MANAGER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleHRManager
}

// ParseRole normalizes a role name (case-insensitive, "-" and " " accepted for "_").
// It returns false for unknown names.
func ParseRole(s string) (Role, bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "_", " ", "_").Replace(v)
	switch Role(v) {
	case RoleApplicant, RoleHRManager:
		return Role(v), true
	default:
		return "", false
	}
}

// Home paths for each role subtree.
const (
	HRHomePath        = "/hr/dashboard"
	ApplicantHomePath = "/applicant/dashboard"
	PublicEntryPath   = "/"
)

// HomePath returns the dashboard path for the role. Unknown roles go to the public entry.
func HomePath(r Role) string {
	switch r {
	case RoleHRManager:
		return HRHomePath
	case RoleApplicant:
		return ApplicantHomePath
	default:
		return PublicEntryPath
	}
}

// Credentials is what the remote API hands back on a successful sign-in.
type Credentials struct {
	AccessToken string
	// UserID, Email and Name are optional hints from the response body, used
	// when the token payload cannot be decoded.
	UserID string
	Email  string
	Name   string
}

// Claims are the identity claims read from an access token payload.
// Nothing here is verified unless Verified is true.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Roles     []string
	ExpiresAt time.Time
	Verified  bool
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier handed to the browser as a cookie.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Role        Role      `json:"role"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	// RoleFallback is set when the role could not be read from the token.
	RoleFallback bool `json:"role_fallback,omitempty"`
}

// IsHR returns true if the session belongs to an HR manager.
func (s Session) IsHR() bool { return s.Role == RoleHRManager }

// IsApplicant returns true if the session belongs to an applicant.
func (s Session) IsApplicant() bool { return s.Role == RoleApplicant }

// HomePath returns the dashboard path for the session's role.
func (s Session) HomePath() string { return HomePath(s.Role) }

// DisplayName returns the name when known, falling back to the email.
func (s Session) DisplayName() string {
	if strings.TrimSpace(s.Name) != "" {
		return s.Name
	}
	return s.Email
}
