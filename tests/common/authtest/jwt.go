//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"paintball-booking/internal/domain/user"
	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/config"
	"paintball-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenMinter signs access tokens directly, bypassing /api/auth/login.
type TokenMinter struct {
	secret string
	ttl    time.Duration
}

func NewTokenMinter(t *testing.T, cfg config.JWTConfig) *TokenMinter {
	t.Helper()
	ttl, err := time.ParseDuration(cfg.AccessTokenDuration)
	require.NoError(t, err, "JWT_ACCESS_TOKEN_DURATION")
	return &TokenMinter{secret: cfg.Secret, ttl: ttl}
}

func (m *TokenMinter) Mint(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return m.sign(t, m.secret, clock.NewRealClock(), userID, role)
}

// MintExpired returns a token that expired one hour ago.
func (m *TokenMinter) MintExpired(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-m.ttl - time.Hour))
	return m.sign(t, m.secret, issued, userID, role)
}

// MintForeign returns a well-formed token signed with an unknown secret.
func (m *TokenMinter) MintForeign(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return m.sign(t, m.secret+"-forged", clock.NewRealClock(), userID, role)
}

func (m *TokenMinter) sign(t *testing.T, secret string, clk clock.Clock, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(secret, m.ttl, clk).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
