package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"stay-booking/internal/domain/availability"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidDate = errors.New("invalid date value")

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func DateFromPgtype(d pgtype.Date) (time.Time, error) {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return time.Time{}, ErrInvalidDate
	}
	return d.Time, nil
}

// DateRangeFromPgtype builds a domain range from two date columns.
func DateRangeFromPgtype(start, end pgtype.Date) (availability.DateRange, error) {
	s, err := DateFromPgtype(start)
	if err != nil {
		return availability.DateRange{}, err
	}
	e, err := DateFromPgtype(end)
	if err != nil {
		return availability.DateRange{}, err
	}
	return availability.NewDateRange(s, e)
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func Int8PtrToPgtype(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
