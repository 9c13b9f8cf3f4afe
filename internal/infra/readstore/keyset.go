package readstore

import (
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// keysetArgs yields NULLs for the first page so one statement serves both
// the first page and every page after a cursor.
func keysetArgs(after *queries.PageKey) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgtype.UUID{Bytes: [16]byte(after.ID), Valid: true}
}
