package middleware

import (
	"log/slog"

	"stay-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows credentialed requests from the configured origins
// so the browser sends the auth cookies.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if err := corsCfg.Validate(); err != nil {
		slog.Warn("invalid CORS config, falling back to defaults", "error", err.Error())
		corsCfg = cors.DefaultConfig()
		corsCfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	slog.Info("CORS middleware initialized", "allow_origins", corsCfg.AllowOrigins, "allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
