package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator = (*StubAuthenticator)(nil)
	_ ports.TokenDecoder  = (*StubDecoder)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
	_ ports.RoleMapper    = StaticRoleMapper{}
)

// StubAuthenticator accepts a fixed set of email/password pairs.
type StubAuthenticator struct {
	SignInFunc func(ctx context.Context, email, password string) (domainauth.Credentials, error)
	SignUpFunc func(ctx context.Context, in ports.SignUpInput) error

	// Accounts maps email to password and returned credentials when the
	// func fields are nil.
	Accounts map[string]StubAccount

	mu      sync.Mutex
	SignUps []ports.SignUpInput
}

// StubAccount is one accepted login.
type StubAccount struct {
	Password    string
	Credentials domainauth.Credentials
}

// NewStubAuthenticator returns a stub with one account per call to Add.
func NewStubAuthenticator() *StubAuthenticator {
	return &StubAuthenticator{Accounts: make(map[string]StubAccount)}
}

// Add registers an account that signs in with the given token.
func (s *StubAuthenticator) Add(email, password, token string) *StubAuthenticator {
	s.Accounts[email] = StubAccount{
		Password:    password,
		Credentials: domainauth.Credentials{AccessToken: token, Email: email},
	}
	return s
}

func (s *StubAuthenticator) SignIn(ctx context.Context, email, password string) (domainauth.Credentials, error) {
	if s.SignInFunc != nil {
		return s.SignInFunc(ctx, email, password)
	}
	acc, ok := s.Accounts[email]
	if !ok || acc.Password != password {
		return domainauth.Credentials{}, apperrors.Unauthorized("Invalid email or password")
	}
	return acc.Credentials, nil
}

func (s *StubAuthenticator) SignUp(ctx context.Context, in ports.SignUpInput) error {
	if s.SignUpFunc != nil {
		return s.SignUpFunc(ctx, in)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SignUps = append(s.SignUps, in)
	return nil
}

// StubDecoder returns fixed claims per token. Unknown tokens fail to decode.
type StubDecoder struct {
	DecodeFunc func(ctx context.Context, token string) (domainauth.Claims, error)
	Tokens     map[string]domainauth.Claims
}

// ErrUndecodable is returned by StubDecoder for unknown tokens.
var ErrUndecodable = errors.New("undecodable token")

func (d *StubDecoder) Decode(ctx context.Context, token string) (domainauth.Claims, error) {
	if d.DecodeFunc != nil {
		return d.DecodeFunc(ctx, token)
	}
	c, ok := d.Tokens[token]
	if !ok {
		return domainauth.Claims{}, ErrUndecodable
	}
	return c, nil
}

// MemorySessionStore is an in-memory session store for unit tests. It
// ignores expiry so tests can assert exactly what was saved.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
	Deleted  []string
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StaticRoleMapper returns the same answer for any claims.
type StaticRoleMapper struct {
	Role domainauth.Role
	OK   bool
}

func (m StaticRoleMapper) Map([]string) (domainauth.Role, bool) {
	return m.Role, m.OK
}
