package bootstrap

import (
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.JWT.AccessTokenDuration <= 0 || cfg.JWT.RefreshTokenDuration <= 0 {
		panic("JWT token durations must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration, clk)
}
