package middleware

import (
	"log/slog"

	"paintball-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// booking clients must be able to send and read the idempotency headers
// whatever the deployment configures.
var (
	requiredAllowHeaders  = []string{"Content-Type", "Idempotency-Key"}
	requiredExposeHeaders = []string{"Idempotent-Replayed", "X-Request-ID"}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     lo.Union(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    lo.Union(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if lo.Contains(cfg.AllowOrigins, "*") {
		// credentials cannot be combined with a wildcard origin
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = !cfg.AllowCredentials
		if cfg.AllowCredentials {
			corsCfg.AllowOriginFunc = func(string) bool { return true }
		}
	}

	slog.Info("CORS configured",
		"allow_origins", cfg.AllowOrigins,
		"allow_headers", corsCfg.AllowHeaders,
		"expose_headers", corsCfg.ExposeHeaders,
	)
	return cors.New(corsCfg)
}
