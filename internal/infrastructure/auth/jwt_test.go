package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/shared/authorization"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "ledgerpos", time.Hour)

	token, err := svc.Generate("usr_1", "ses_1", "biz_1", authorization.RoleManager)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "usr_1", claims.UserID())
	assert.Equal(t, "ses_1", claims.SessionID)
	assert.Equal(t, "biz_1", claims.BusinessID)
	assert.Equal(t, authorization.RoleManager, claims.Role)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret", "ledgerpos", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", "ledgerpos", time.Hour)
		token, err := other.Generate("usr_1", "ses_1", "", authorization.RoleOwner)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTService("test-secret", "ledgerpos", -time.Minute)
		token, err := expired.Generate("usr_1", "ses_1", "", authorization.RoleOwner)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService("test-secret", "someone-else", time.Hour)
		token, err := other.Generate("usr_1", "ses_1", "", authorization.RoleOwner)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "usr_1", Issuer: "ledgerpos"},
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc := NewJWTService("", "", time.Hour)

	_, err := svc.Generate("usr_1", "ses_1", "", authorization.RoleOwner)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = svc.Verify("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
