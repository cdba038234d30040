package auth

import (
	"testing"
	"time"

	authuc "shop/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	for _, admin := range []bool{true, false} {
		token, exp, err := svc.Issue("user-uuid", admin, 3, time.Now())
		require.NoError(t, err)
		assert.True(t, exp.After(time.Now()))

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, authuc.Claims{UserID: "user-uuid", IsAdmin: admin, TokenVersion: 3}, claims)
	}
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	valid, _, err := svc.Issue("user-uuid", false, 0, time.Now())
	require.NoError(t, err)

	expired, _, err := svc.Issue("user-uuid", false, 0, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherSecret, _, err := NewJWTService("other", time.Hour).Issue("user-uuid", false, 0, time.Now())
	require.NoError(t, err)

	//HS512は受け付けない
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id":  "user-uuid",
		"tv":  0,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	//期限なし
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "user-uuid",
		"tv": 0,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"tampered":     valid + "x",
		"expired":      expired,
		"other secret": otherSecret,
		"hs512":        hs512,
		"no exp":       noExp,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(tok)
			assert.ErrorIs(t, err, authuc.ErrInvalidToken)
		})
	}
}
