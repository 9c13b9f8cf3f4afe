//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(clk clock.Clock) *jwt.Service {
	return jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration, clk)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(clock.NewRealClock()).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(clock.NewRealClock()).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token issued far enough in the past to be expired now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.RefreshTokenDuration))
	token, err := h.service(past).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
