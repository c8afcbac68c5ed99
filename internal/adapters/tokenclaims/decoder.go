// Package tokenclaims reads identity claims out of JWT access tokens.
//
// Decoder does not verify signatures: the claims it returns are a hint for
// routing and display, never proof of identity. The recruitment API remains
// the authority on every call it receives.
package tokenclaims

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

var _ ports.TokenDecoder = Decoder{}

// ErrEmptyToken is returned for blank input.
var ErrEmptyToken = errors.New("empty token")

// Decoder decodes the JWT payload without checking the signature.
type Decoder struct{}

// Decode parses the token payload. Malformed tokens return an error; callers
// decide how to degrade.
func (Decoder) Decode(_ context.Context, token string) (domainauth.Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return domainauth.Claims{}, ErrEmptyToken
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return domainauth.Claims{}, fmt.Errorf("decode token payload: %w", err)
	}
	return FromMap(mc), nil
}

// Claim names checked, in order of preference.
var (
	subjectKeys = []string{"sub", "userId", "user_id", "id", "uid"}
	emailKeys   = []string{"email", "mail", "upn", "preferred_username"}
	nameKeys    = []string{"name", "fullName", "full_name"}
	roleKeys    = []string{"role", "roles", "userRole", "user_role", "authorities", "groups"}
)

// FromMap extracts Claims from a decoded payload. Nested "user" objects are
// searched too, as some issuers put identity there.
func FromMap(m map[string]any) domainauth.Claims {
	scopes := []map[string]any{m}
	if nested, ok := m["user"].(map[string]any); ok {
		scopes = append(scopes, nested)
	}

	var c domainauth.Claims
	for _, scope := range scopes {
		if c.Subject == "" {
			c.Subject = firstString(scope, subjectKeys)
		}
		if c.Email == "" {
			c.Email = firstString(scope, emailKeys)
		}
		if c.Name == "" {
			c.Name = firstString(scope, nameKeys)
		}
		if c.Name == "" {
			c.Name = strings.TrimSpace(stringValue(scope["given_name"]) + " " + stringValue(scope["family_name"]))
		}
		if len(c.Roles) == 0 {
			c.Roles = roles(scope)
		}
	}
	if c.Email == "" && strings.Contains(c.Subject, "@") {
		c.Email = c.Subject
	}
	if realm, ok := m["realm_access"].(map[string]any); ok && len(c.Roles) == 0 {
		c.Roles = stringList(realm["roles"])
	}

	if exp, err := jwt.MapClaims(m).GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c
}

func firstString(m map[string]any, keys []string) string {
	for _, k := range keys {
		if s := stringValue(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%.0f", t))
	default:
		return ""
	}
}

func roles(m map[string]any) []string {
	for _, k := range roleKeys {
		if list := stringList(m[k]); len(list) > 0 {
			return list
		}
	}
	return nil
}

// stringList accepts a string, a space/comma separated string, or an array
// of strings or {"authority": "..."} objects.
func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		return strings.FieldsFunc(t, func(r rune) bool { return r == ',' || r == ' ' })
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			switch it := item.(type) {
			case string:
				if s := strings.TrimSpace(it); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if s := stringValue(it["authority"]); s != "" {
					out = append(out, s)
				} else if s := stringValue(it["name"]); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	default:
		return nil
	}
}

// ExpiresIn returns the remaining lifetime, or 0 when unknown or past.
func ExpiresIn(c domainauth.Claims, now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() || !c.ExpiresAt.After(now) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
