package bootstrap

import (
	"fmt"

	"stay-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and rejects settings the booking rules
// cannot run with.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Booking.HorizonDays <= 0 {
		return config.Config{}, fmt.Errorf("BOOKING_HORIZON_DAYS must be positive, got %d", cfg.Booking.HorizonDays)
	}
	if cfg.Booking.MaxNights < 0 {
		return config.Config{}, fmt.Errorf("BOOKING_MAX_NIGHTS must not be negative, got %d", cfg.Booking.MaxNights)
	}
	if cfg.Cache.ListingMaxSize <= 0 || cfg.Cache.ListingTTL <= 0 {
		return config.Config{}, fmt.Errorf("listing cache size and TTL must be positive")
	}
	return cfg, nil
}
