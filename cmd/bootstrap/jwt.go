package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/config"
	"paintball-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

// HS256 keys shorter than the hash output weaken the signature.
const minSecretBytes = 32

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_TOKEN_DURATION must be positive, got %s", ttl)
	}
	if len(cfg.JWT.Secret) < minSecretBytes {
		slog.Warn("JWT_SECRET is shorter than recommended", "bytes", len(cfg.JWT.Secret), "min", minSecretBytes)
	}
	return jwt.NewService(cfg.JWT.Secret, ttl, clk), nil
}
