package tokenclaims

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return tok
}

func TestDecoder_ReadsClaimsWithoutVerifying(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := sign(t, jwt.MapClaims{
		"sub":   "u-1",
		"email": "hr@example.com",
		"name":  "Hana Reyes",
		"role":  "HR_MANAGER",
		"exp":   exp.Unix(),
	})

	c, err := Decoder{}.Decode(context.Background(), "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.Subject)
	assert.Equal(t, "hr@example.com", c.Email)
	assert.Equal(t, "Hana Reyes", c.Name)
	assert.Equal(t, []string{"HR_MANAGER"}, c.Roles)
	assert.True(t, exp.Equal(c.ExpiresAt))
	assert.False(t, c.Verified)
}

func TestDecoder_GarbageTokens(t *testing.T) {
	for _, tok := range []string{"", "   ", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.%%%.sig"} {
		_, err := Decoder{}.Decode(context.Background(), tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestFromMap_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		in    map[string]any
		roles []string
		sub   string
		email string
		full  string
	}{
		{
			name:  "roles array and numeric id",
			in:    map[string]any{"id": float64(42), "roles": []any{"APPLICANT"}, "mail": "a@example.com"},
			roles: []string{"APPLICANT"},
			sub:   "42",
			email: "a@example.com",
		},
		{
			name:  "nested user object",
			in:    map[string]any{"user": map[string]any{"id": "u9", "email": "n@example.com", "role": "hr_manager"}},
			roles: []string{"hr_manager"},
			sub:   "u9",
			email: "n@example.com",
		},
		{
			name:  "spring authorities",
			in:    map[string]any{"sub": "x@example.com", "authorities": []any{map[string]any{"authority": "ROLE_HR"}}},
			roles: []string{"ROLE_HR"},
			sub:   "x@example.com",
			email: "x@example.com",
		},
		{
			name:  "keycloak realm roles and given names",
			in:    map[string]any{"sub": "k1", "given_name": "Ana", "family_name": "Ruiz", "realm_access": map[string]any{"roles": []any{"applicant"}}},
			roles: []string{"applicant"},
			sub:   "k1",
			full:  "Ana Ruiz",
		},
		{
			name:  "space separated role string",
			in:    map[string]any{"sub": "s", "role": "user applicant"},
			roles: []string{"user", "applicant"},
			sub:   "s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromMap(tt.in)
			assert.Equal(t, tt.roles, c.Roles)
			assert.Equal(t, tt.sub, c.Subject)
			assert.Equal(t, tt.email, c.Email)
			assert.Equal(t, tt.full, c.Name)
		})
	}
}

func TestExpiresIn(t *testing.T) {
	now := time.Now()
	c := FromMap(map[string]any{"exp": float64(now.Add(time.Hour).Unix())})
	assert.InDelta(t, time.Hour.Seconds(), ExpiresIn(c, now).Seconds(), 1)

	c = FromMap(map[string]any{"exp": float64(now.Add(-time.Hour).Unix())})
	assert.Zero(t, ExpiresIn(c, now))
	assert.Zero(t, ExpiresIn(FromMap(map[string]any{}), now))
}
