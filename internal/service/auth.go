package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

const (
	defaultSessionTTL = 8 * time.Hour
	minPasswordLen    = 6
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.Authenticator
	Sessions      ports.SessionStore
	Identity      IdentityConfig
	Logger        *slog.Logger
}

// IdentityConfig controls how a token becomes a session identity.
type IdentityConfig struct {
	Decoder ports.TokenDecoder
	Roles   ports.RoleMapper
	// DefaultRole is used when the role cannot be read from the token.
	DefaultRole domainauth.Role
	// SessionTTL applies when the token has no usable expiry.
	SessionTTL time.Duration
	// RequireDecodable fails sign-in when the decoder rejects the token
	// (set when signatures are verified) instead of falling back.
	RequireDecodable bool
	Now              func() time.Time
}

// AuthService orchestrates sign-in by coordinating the remote authenticator,
// token decoding, role mapping, and session persistence.
type AuthService struct {
	auth     ports.Authenticator
	sessions ports.SessionStore
	identity IdentityConfig
	logger   *slog.Logger
}

var errSessionExpired = fmt.Errorf("%w: expired", domainauth.ErrSessionNotFound)

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Authenticator == nil || opts.Sessions == nil || opts.Identity.Decoder == nil || opts.Identity.Roles == nil {
		panic("service: AuthService requires Authenticator, Sessions, Decoder and Roles")
	}
	id := opts.Identity
	if !id.DefaultRole.Valid() {
		id.DefaultRole = domainauth.RoleApplicant
	}
	if id.SessionTTL <= 0 {
		id.SessionTTL = defaultSessionTTL
	}
	if id.Now == nil {
		id.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		auth:     opts.Authenticator,
		sessions: opts.Sessions,
		identity: id,
		logger:   logger.With("component", "auth_service"),
	}
}

// SignInInput groups parameters for SignIn.
type SignInInput struct {
	Email    string
	Password string
	// PreviousSessionID is the browser's current session, replaced on success.
	PreviousSessionID string
}

// SignInResult contains the new session and where to send the user.
type SignInResult struct {
	Session  domainauth.Session
	HomePath string
}

// SignIn exchanges credentials for a token, derives the session identity
// from the token claims, and persists a new session.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (*SignInResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperrors.Validation("Email and password are required")
	}

	creds, err := s.auth.SignIn(ctx, email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	sess, err := s.buildSession(ctx, email, creds)
	if err != nil {
		return nil, err
	}

	if in.PreviousSessionID != "" {
		if delErr := s.sessions.Delete(ctx, in.PreviousSessionID); delErr != nil {
			s.logger.WarnContext(ctx, "failed to delete previous session", "error", delErr)
		}
	}
	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger.InfoContext(ctx, "user signed in",
		"user_id", sess.UserID,
		"role", sess.Role,
		"role_fallback", sess.RoleFallback,
	)
	return &SignInResult{Session: sess, HomePath: sess.HomePath()}, nil
}

func (s *AuthService) buildSession(ctx context.Context, email string, creds domainauth.Credentials) (domainauth.Session, error) {
	now := s.identity.Now()

	claims, decodeErr := s.identity.Decoder.Decode(ctx, creds.AccessToken)
	if decodeErr != nil && s.identity.RequireDecodable {
		s.logger.WarnContext(ctx, "rejecting sign-in: token failed verification", "error", decodeErr)
		return domainauth.Session{}, apperrors.Wrap(decodeErr, apperrors.ErrCodeUnauthorized,
			"Your sign-in could not be verified. Please try again.")
	}

	role, ok := domainauth.Role(""), false
	if decodeErr == nil {
		role, ok = s.identity.Roles.Map(claims.Roles)
	}
	fallback := !ok
	if fallback {
		role = s.identity.DefaultRole
		s.logger.WarnContext(ctx, "token role unreadable, using default role",
			"default_role", role,
			"token_roles", claims.Roles,
			"decode_error", errString(decodeErr),
		)
	}

	expiresAt := now.Add(s.identity.SessionTTL)
	if claims.ExpiresAt.After(now) {
		expiresAt = claims.ExpiresAt
	}

	return domainauth.Session{
		ID:           uuid.NewString(),
		UserID:       firstNonEmpty(claims.Subject, creds.UserID, email),
		Email:        firstNonEmpty(claims.Email, creds.Email, email),
		Name:         firstNonEmpty(claims.Name, creds.Name),
		Role:         role,
		AccessToken:  creds.AccessToken,
		ExpiresAt:    expiresAt,
		RoleFallback: fallback,
	}, nil
}

// GetSession retrieves a session by ID. Expired sessions are deleted and
// reported as domainauth.ErrSessionNotFound.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, domainauth.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !s.identity.Now().Before(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// SignOut removes a session.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to sign out
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SignUp registers an account through the authenticator. The user still has
// to sign in afterwards.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	switch {
	case in.FirstName == "" || in.LastName == "":
		return apperrors.Validation("First and last name are required")
	case in.Email == "":
		return apperrors.ValidationField("email", "Email is required")
	case len(in.Password) < minPasswordLen:
		return apperrors.ValidationField("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperrors.ValidationField("email", "Enter a valid email address")
	}
	if in.Role == "" {
		in.Role = domainauth.RoleApplicant
	}
	if !in.Role.Valid() {
		return apperrors.ValidationField("role", "Choose a valid account type")
	}

	if err := s.auth.SignUp(ctx, in); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	s.logger.InfoContext(ctx, "account registered", "role", in.Role)
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
