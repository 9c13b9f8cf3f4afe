package queries

import (
	"context"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodePageKey(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.readStore.List(ctx, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, func(v *UserView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return page, next, nil
}
