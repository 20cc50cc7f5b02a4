package jwt

import (
	"testing"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "30m", "168h", "10m", "10m")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	token, expiresAt, err := svc.GenerateAccessToken("Empaa11bb22", "jane@acme.test", user.RoleHRAdmin)

	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	employeeID, err := svc.VerifyToken(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "Empaa11bb22", employeeID)
}

func TestVerifyToken_TypeMismatch(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	token, _, err := svc.GenerateRefreshToken("Empaa11bb22")
	require.NoError(t, err)

	// A refresh token cannot stand in for an access token, or any other kind.
	_, err = svc.VerifyToken(token, TokenTypeAccess)
	assert.Error(t, err)
	_, err = svc.VerifyToken(token, TokenTypeResetPassword)
	assert.Error(t, err)

	employeeID, err := svc.VerifyToken(token, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "Empaa11bb22", employeeID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := newTestService().GenerateAccessToken("Empaa11bb22", "jane@acme.test", user.RoleEmployee)
	require.NoError(t, err)

	other := NewJWTService("another-secret", "30m", "168h", "10m", "10m")
	_, err = other.VerifyToken(token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.VerifyToken("not-a-jwt", TokenTypeAccess)
	assert.Error(t, err)
}

func TestGenerate_InvalidExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key", "soon", "168h", "10m", "10m")
	_, _, err := svc.GenerateAccessToken("Empaa11bb22", "jane@acme.test", user.RoleEmployee)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	expiresAt := time.Now().Add(time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("token-value", expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, time.Unix(expiresAt, 0), cookie.Expires)

	// Zero expiry produces a session cookie rather than an expired one.
	session := svc.RefreshTokenCookie("token-value", 0)
	assert.True(t, session.Expires.IsZero())
	assert.Zero(t, session.MaxAge)

	// An empty token clears the cookie.
	cleared := svc.RefreshTokenCookie("", 0)
	assert.Equal(t, -1, cleared.MaxAge)
}
