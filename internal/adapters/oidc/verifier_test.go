package oidc

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://auth.example.com"

type keyServer struct {
	key *rsa.PrivateKey
	srv *httptest.Server
}

func newKeyServer(t *testing.T) *keyServer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	ks := &keyServer{key: key}
	ks.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": "k1",
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			}},
		})
	}))
	t.Cleanup(ks.srv.Close)
	return ks
}

func (ks *keyServer) sign(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = "k1"
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestNewVerifier_RequiresSource(t *testing.T) {
	_, err := NewVerifier(context.Background(), VerifierConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWKS URL or issuer is required")
}

func TestVerifier_ValidToken(t *testing.T) {
	ks := newKeyServer(t)
	v, err := NewVerifier(context.Background(), VerifierConfig{JWKSURL: ks.srv.URL, Issuer: testIssuer})
	require.NoError(t, err)

	raw := ks.sign(t, ks.key, jwt.MapClaims{
		"iss":   testIssuer,
		"sub":   "hr-7",
		"email": "hr@example.com",
		"role":  "HR_MANAGER",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	c, err := v.Decode(context.Background(), "Bearer "+raw)
	require.NoError(t, err)
	assert.True(t, c.Verified)
	assert.Equal(t, "hr-7", c.Subject)
	assert.Equal(t, "hr@example.com", c.Email)
	assert.Equal(t, []string{"HR_MANAGER"}, c.Roles)
	assert.False(t, c.ExpiresAt.IsZero())
}

func TestVerifier_Rejects(t *testing.T) {
	ks := newKeyServer(t)
	v, err := NewVerifier(context.Background(), VerifierConfig{JWKSURL: ks.srv.URL, Issuer: testIssuer})
	require.NoError(t, err)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"foreign key", ks.sign(t, other, jwt.MapClaims{"iss": testIssuer, "sub": "x", "exp": time.Now().Add(time.Hour).Unix()})},
		{"wrong issuer", ks.sign(t, ks.key, jwt.MapClaims{"iss": "https://evil.example.com", "sub": "x", "exp": time.Now().Add(time.Hour).Unix()})},
		{"expired", ks.sign(t, ks.key, jwt.MapClaims{"iss": testIssuer, "sub": "x", "exp": time.Now().Add(-time.Hour).Unix()})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Decode(context.Background(), tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestVerifier_Audience(t *testing.T) {
	ks := newKeyServer(t)
	v, err := NewVerifier(context.Background(), VerifierConfig{JWKSURL: ks.srv.URL, Audience: "portal"})
	require.NoError(t, err)

	exp := time.Now().Add(time.Hour).Unix()
	_, err = v.Decode(context.Background(), ks.sign(t, ks.key, jwt.MapClaims{"aud": "portal", "sub": "a", "exp": exp}))
	require.NoError(t, err)

	_, err = v.Decode(context.Background(), ks.sign(t, ks.key, jwt.MapClaims{"aud": "other", "sub": "a", "exp": exp}))
	assert.Error(t, err)
}
