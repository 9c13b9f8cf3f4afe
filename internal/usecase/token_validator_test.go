//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/jwt"
	"stay-booking/internal/usecase"
	"stay-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	clk := clock.NewMockClock(testutil.FixedNow)
	svc := jwt.NewService("validator-secret", 10*time.Minute, time.Hour, clk)
	v := usecase.NewTokenValidator(svc)
	id := uuid.New()

	t.Run("access token yields identity", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(id, user.RoleAdmin)
		require.NoError(t, err)

		gotID, role, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("refresh token is not accepted", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(id, user.RoleUser)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, usecase.ErrNotAccessToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwt.NewService("other-secret", 10*time.Minute, time.Hour, clk)
		token, err := other.GenerateAccessToken(id, user.RoleUser)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired access token", func(t *testing.T) {
		local := clock.NewMockClock(testutil.FixedNow)
		svc := jwt.NewService("validator-secret", 10*time.Minute, time.Hour, local)
		token, err := svc.GenerateAccessToken(id, user.RoleUser)
		require.NoError(t, err)
		local.Set(testutil.FixedNow.Add(11 * time.Minute))

		_, _, err = usecase.NewTokenValidator(svc).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
