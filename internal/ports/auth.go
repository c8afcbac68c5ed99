package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/apiclient; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
)

// SignUpInput carries the registration form.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domainauth.Role
}

// Authenticator exchanges credentials with the remote recruitment API.
type Authenticator interface {
	// SignIn returns the bearer token (and any identity hints) for valid credentials.
	SignIn(ctx context.Context, email, password string) (domainauth.Credentials, error)

	// SignUp registers a new account. It does not sign the user in.
	SignUp(ctx context.Context, in SignUpInput) error
}

// TokenDecoder reads identity claims from an access token.
// Implementations may or may not verify the signature; Claims.Verified tells which.
type TokenDecoder interface {
	Decode(ctx context.Context, token string) (domainauth.Claims, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper maps token role claims to a portal role.
// ok is false when none of the claims name a known role.
type RoleMapper interface {
	Map(roles []string) (role domainauth.Role, ok bool)
}
