package readstore

import (
	"context"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userViewColumns = `id, email, first_name, last_name, role, is_active, last_login, created_at`

	findUserViewSQL = `SELECT ` + userViewColumns + ` FROM users WHERE id = $1`

	listUserViewsSQL = `SELECT ` + userViewColumns + ` FROM users
WHERE ($1::timestamptz IS NULL OR (created_at, id) < ($1, $2::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $3`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	v, err := scanUserView(r.db.QueryRow(ctx, findUserViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return v, nil
}

func (r *UserReadStore) List(ctx context.Context, after *queries.PageKey, limit int32) ([]*queries.UserView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listUserViewsSQL, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	out := make([]*queries.UserView, 0, limit)
	for rows.Next() {
		v, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return out, nil
}

func scanUserView(row pgx.Row) (*queries.UserView, error) {
	var (
		v         queries.UserView
		lastLogin pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.Email, &v.FirstName, &v.LastName, &v.Role, &v.IsActive, &lastLogin, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}
