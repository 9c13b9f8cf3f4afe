//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"stay-booking/internal/domain/user"
	"stay-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "guest@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid email", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "empty email", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("user@") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("email is normalised", func(t *testing.T) {
		email, err := user.NewEmail("  Mixed.Case@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "mixed.case@example.com", email.Value())
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "user", mutate: func(b *builder.UserBuilder) { b.WithRole(user.RoleUser) }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole(user.RoleAdmin) }},
			{name: "unknown role", mutate: func(b *builder.UserBuilder) { b.Role = "owner" }, errIs: user.ErrInvalidRole},
			{name: "empty role", mutate: func(b *builder.UserBuilder) { b.Role = "" }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank first name", mutate: func(b *builder.UserBuilder) { b.FirstName = "  " }, errIs: user.ErrEmptyName},
			{name: "blank last name", mutate: func(b *builder.UserBuilder) { b.LastName = "" }, errIs: user.ErrEmptyName},
			{name: "name at limit", mutate: func(b *builder.UserBuilder) { b.FirstName = strings.Repeat("a", user.MaxNameLength) }},
			{name: "name too long", mutate: func(b *builder.UserBuilder) { b.LastName = strings.Repeat("a", user.MaxNameLength+1) }, errIs: user.ErrNameTooLong},
		})
	})

	t.Run("password strength", func(t *testing.T) {
		_, err := user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		p, err := user.NewPassword("longenough")
		require.NoError(t, err)
		assert.Equal(t, "longenough", p.Value())
	})

	t.Run("role level orders admin above user", func(t *testing.T) {
		assert.Greater(t, user.RoleAdmin.Level(), user.RoleUser.Level())
		assert.Equal(t, 0, user.Role("ghost").Level())
	})
}

func TestUserMutations(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("change role", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.ChangeRole(user.RoleAdmin, now))
		assert.Equal(t, user.RoleAdmin, u.Role())
		assert.Equal(t, now, u.UpdatedAt())
	})

	t.Run("change role rejects unknown role", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, u.ChangeRole(user.Role("root"), now), user.ErrInvalidRole)
		assert.Equal(t, user.RoleUser, u.Role())
	})

	t.Run("deactivate", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		u.Deactivate(now)
		assert.False(t, u.IsActive())
		assert.Equal(t, now, u.UpdatedAt())
	})

	t.Run("reconstruct keeps stored fields", func(t *testing.T) {
		email, _ := user.NewEmail("host@example.com")
		name, _ := user.NewName("Olive", "Owner")
		id := uuid.New()
		last := now.Add(-time.Hour)

		u := user.ReconstructUser(id, email, "hash", name, user.RoleAdmin, &last, false, now, now)

		got := struct {
			ID       uuid.UUID
			Email    string
			Role     user.Role
			Active   bool
			LastSeen *time.Time
		}{u.ID(), u.Email().Value(), u.Role(), u.IsActive(), u.LastLogin()}
		want := struct {
			ID       uuid.UUID
			Email    string
			Role     user.Role
			Active   bool
			LastSeen *time.Time
		}{id, "host@example.com", user.RoleAdmin, false, &last}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("user mismatch (-want +got):\n%s", diff)
		}
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
