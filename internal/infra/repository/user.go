package repository

import (
	"context"
	"time"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertUserSQL = `
INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	saveUserSQL = `
UPDATE users SET role = $2, is_active = $3, updated_at = $4 WHERE id = $1`

	updateLastLoginSQL = `UPDATE users SET last_login = $2 WHERE id = $1`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(),
		u.Name().First(), u.Name().Last(),
		u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// Save persists the fields an admin may change.
func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, saveUserSQL, u.ID(), u.Role().String(), u.IsActive(), u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to save user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, updateLastLoginSQL, userID, at); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
