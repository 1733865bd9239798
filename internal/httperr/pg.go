package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsStorageConflict reports whether err is a unique (23505) or exclusion
// (23P01) violation raised by postgres, e.g. the partial unique index
// guarding one live appointment per artist per day.
func IsStorageConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
