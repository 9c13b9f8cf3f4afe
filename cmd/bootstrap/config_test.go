//go:build unit

package bootstrap

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "stay")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, 365, cfg.Booking.HorizonDays)
		assert.Equal(t, 90, cfg.Booking.MaxNights)
	})

	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero horizon", "BOOKING_HORIZON_DAYS", "0"},
		{"negative max nights", "BOOKING_MAX_NIGHTS", "-1"},
		{"zero cache size", "CACHE_LISTING_MAX_SIZE", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}

	t.Run("missing secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := NewConfig()
		assert.Error(t, err)
	})
}
