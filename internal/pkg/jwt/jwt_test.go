//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"paintball-booking/internal/domain/user"
	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-that-is-long-enough"

func TestServiceRoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)
	id := uuid.New()

	token, expiresAt, err := svc.GenerateToken(id, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	clk.Add(time.Hour + time.Second)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestServiceRejectsForeignTokens(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)
	id := uuid.New()

	sign := func(method gojwt.SigningMethod, key any, mutate func(*jwt.Claims)) string {
		claims := jwt.Claims{
			UserID: id,
			Role:   "staff",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "paintball-booking",
				Audience:  gojwt.ClaimStrings{"back-office"},
				Subject:   id.String(),
				ExpiresAt: gojwt.NewNumericDate(clk.Now().Add(time.Hour)),
			},
		}
		mutate(&claims)
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{"other secret", sign(gojwt.SigningMethodHS256, []byte("another-secret"), func(*jwt.Claims) {})},
		{"HS512", sign(gojwt.SigningMethodHS512, []byte(secret), func(*jwt.Claims) {})},
		{"unsigned", sign(gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, func(*jwt.Claims) {})},
		{"other issuer", sign(gojwt.SigningMethodHS256, []byte(secret), func(c *jwt.Claims) { c.Issuer = "elsewhere" })},
		{"other audience", sign(gojwt.SigningMethodHS256, []byte(secret), func(c *jwt.Claims) { c.Audience = gojwt.ClaimStrings{"public"} })},
		{"no expiry", sign(gojwt.SigningMethodHS256, []byte(secret), func(c *jwt.Claims) { c.ExpiresAt = nil })},
		{"subject mismatch", sign(gojwt.SigningMethodHS256, []byte(secret), func(c *jwt.Claims) { c.Subject = uuid.NewString() })},
		{"garbage", "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
