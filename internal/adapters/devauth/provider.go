// Package devauth provides a config-driven Authenticator for local development.
package devauth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

var _ ports.Authenticator = (*Provider)(nil)

// User is a dev account.
type User struct {
	Email    string
	Password string
	Name     string
	Role     domainauth.Role
}

// Config controls the dev auth provider behavior.
type Config struct {
	Users []User
	// SigningKey signs minted tokens; a random key is generated when empty.
	SigningKey []byte
	TokenTTL   time.Duration // default 8h when zero
	Now        func() time.Time
}

type account struct {
	id       string
	password string
	name     string
	role     domainauth.Role
}

// Provider implements ports.Authenticator without a remote API. SignIn
// mints an HS256 token carrying sub, email, name and role claims, so the
// rest of the sign-in path runs unchanged.
type Provider struct {
	mu       sync.RWMutex
	accounts map[string]account
	key      []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	key := cfg.SigningKey
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate signing key: %w", err)
		}
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	p := &Provider{accounts: make(map[string]account), key: key, ttl: ttl, now: now}
	for _, u := range cfg.Users {
		if err := p.add(u); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Provider) add(u User) error {
	email := normalizeEmail(u.Email)
	if email == "" || u.Password == "" {
		return errors.New("dev auth: email and password are required")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("dev auth: invalid role %q for %s", u.Role, email)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.accounts[email]; exists {
		return apperrors.Conflict("An account with this email already exists")
	}
	p.accounts[email] = account{id: uuid.NewString(), password: u.Password, name: u.Name, role: u.Role}
	return nil
}

// SignIn checks the password and returns a freshly minted token.
func (p *Provider) SignIn(_ context.Context, email, password string) (domainauth.Credentials, error) {
	email = normalizeEmail(email)

	p.mu.RLock()
	acc, ok := p.accounts[email]
	p.mu.RUnlock()
	if !ok || subtle.ConstantTimeCompare([]byte(acc.password), []byte(password)) != 1 {
		return domainauth.Credentials{}, apperrors.Unauthorized("Invalid email or password")
	}

	now := p.now()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   acc.id,
		"email": email,
		"name":  acc.name,
		"role":  string(acc.role),
		"iat":   now.Unix(),
		"exp":   now.Add(p.ttl).Unix(),
	}).SignedString(p.key)
	if err != nil {
		return domainauth.Credentials{}, fmt.Errorf("sign dev token: %w", err)
	}
	return domainauth.Credentials{AccessToken: tok, UserID: acc.id, Email: email, Name: acc.name}, nil
}

// SignUp registers an account in memory. Only applicants may self-register
// unless a role is given explicitly.
func (p *Provider) SignUp(_ context.Context, in ports.SignUpInput) error {
	role := in.Role
	if role == "" {
		role = domainauth.RoleApplicant
	}
	name := strings.TrimSpace(in.FirstName + " " + in.LastName)
	if err := p.add(User{Email: in.Email, Password: in.Password, Name: name, Role: role}); err != nil {
		if apperrors.IsConflict(err) {
			return err
		}
		return apperrors.Validation(err.Error())
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
