package auth

import (
	"context"
	"testing"
	"time"

	"dare/enterprisehub/internal/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("0123456789abcdef0123456789abcdef", time.Hour)

	raw, exp, err := svc.Issue(7, "amina", constants.RoleManager)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "amina", claims.Username)
	assert.Equal(t, constants.RoleManager, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, _, err := svc.Issue(1, "old", constants.RoleUser)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService("one-secret", time.Hour)
	verifier := NewTokenService("another-secret", time.Hour)

	raw, _, err := issuer.Issue(1, "x", constants.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: constants.RoleAdmin})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequestContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetUserClaims(ctx))
	assert.Nil(t, UserIDPtr(ctx))

	ctx = SetUserClaims(ctx, &Claims{UserID: 3, Role: constants.RoleAdmin})
	require.NotNil(t, GetUserClaims(ctx))
	assert.True(t, GetUserClaims(ctx).IsAdmin())
	assert.Equal(t, uint(3), *UserIDPtr(ctx))
}
