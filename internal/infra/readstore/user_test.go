//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	"stay-booking/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userRow(v *queries.UserView, lastLogin pgtype.Timestamptz) []any {
	return []any{v.ID, v.Email, v.FirstName, v.LastName, v.Role, v.IsActive, lastLogin, v.CreatedAt}
}

func TestUserReadStore_FindByID(t *testing.T) {
	want := builder.NewUserBuilder().BuildView()

	tests := []struct {
		name     string
		row      dbtest.StubRow
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: dbtest.StubRow{Values: userRow(want, pgtype.Timestamptz{})}},
		{name: "user not found", row: dbtest.StubRow{Err: pgx.ErrNoRows}, wantKind: infra.KindNotFound},
		{name: "database error", row: dbtest.StubRow{Err: assert.AnError}, wantKind: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(dbtest.MockDBTX)
			db.On("QueryRow", mock.Anything, findUserViewSQL, []any{want.ID}).Return(tt.row)

			got, err := NewUserReadStore(db).FindByID(context.Background(), want.ID)
			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Nil(t, got.LastLogin)
			db.AssertExpectations(t)
		})
	}

	t.Run("last login is carried over", func(t *testing.T) {
		at := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
		db := new(dbtest.MockDBTX)
		db.On("QueryRow", mock.Anything, findUserViewSQL, mock.Anything).
			Return(dbtest.StubRow{Values: userRow(want, pgtype.Timestamptz{Time: at, Valid: true})})

		got, err := NewUserReadStore(db).FindByID(context.Background(), want.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastLogin)
		assert.Equal(t, at, *got.LastLogin)
	})
}

func TestUserReadStore_List(t *testing.T) {
	a := builder.NewUserBuilder().BuildView()
	b := builder.NewUserBuilder().AsAdmin().BuildView()

	t.Run("first page passes null keyset", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listUserViewsSQL, mock.MatchedBy(func(args []any) bool {
			at, ok := args[0].(pgtype.Timestamptz)
			return ok && !at.Valid && args[2] == int32(3)
		})).Return(dbtest.NewStubRows(userRow(a, pgtype.Timestamptz{}), userRow(b, pgtype.Timestamptz{})), nil)

		got, err := NewUserReadStore(db).List(context.Background(), nil, 3)
		require.NoError(t, err)
		assert.Equal(t, []*queries.UserView{a, b}, got)
	})

	t.Run("later page passes the cursor position", func(t *testing.T) {
		after := &queries.PageKey{CreatedAt: a.CreatedAt, ID: uuid.New()}
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listUserViewsSQL, mock.MatchedBy(func(args []any) bool {
			at, ok := args[0].(pgtype.Timestamptz)
			return ok && at.Valid && at.Time.Equal(after.CreatedAt)
		})).Return(dbtest.NewStubRows(), nil)

		got, err := NewUserReadStore(db).List(context.Background(), after, 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query failure", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listUserViewsSQL, mock.Anything).Return(nil, assert.AnError)

		_, err := NewUserReadStore(db).List(context.Background(), nil, 3)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
