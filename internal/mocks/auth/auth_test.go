package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

func TestStubAuthenticator_Accounts(t *testing.T) {
	a := NewStubAuthenticator().Add("hr@example.com", "pw", "tok-hr")
	ctx := context.Background()

	creds, err := a.SignIn(ctx, "hr@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-hr", creds.AccessToken)

	_, err = a.SignIn(ctx, "hr@example.com", "nope")
	assert.True(t, apperrors.IsUnauthorized(err))

	require.NoError(t, a.SignUp(ctx, ports.SignUpInput{Email: "new@example.com"}))
	assert.Len(t, a.SignUps, 1)
}

func TestStubAuthenticator_CustomFunc(t *testing.T) {
	a := &StubAuthenticator{
		SignInFunc: func(context.Context, string, string) (domainauth.Credentials, error) {
			return domainauth.Credentials{AccessToken: "custom"}, nil
		},
	}
	creds, err := a.SignIn(context.Background(), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "custom", creds.AccessToken)
}

func TestStubDecoder(t *testing.T) {
	d := &StubDecoder{Tokens: map[string]domainauth.Claims{"t1": {Subject: "u1", Roles: []string{"HR"}}}}

	c, err := d.Decode(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.Subject)

	_, err = d.Decode(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUndecodable)
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.Error(t, store.Save(ctx, domainauth.Session{}))
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s1", Role: domainauth.RoleApplicant}))

	sess, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleApplicant, sess.Role)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
	assert.Equal(t, []string{"s1"}, store.Deleted)
	assert.Zero(t, store.Len())
}

func TestStaticRoleMapper(t *testing.T) {
	role, ok := StaticRoleMapper{Role: domainauth.RoleHRManager, OK: true}.Map(nil)
	assert.True(t, ok)
	assert.Equal(t, domainauth.RoleHRManager, role)

	_, ok = StaticRoleMapper{}.Map([]string{"anything"})
	assert.False(t, ok)
}
