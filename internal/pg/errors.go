package pg

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// TranslateError converts storage-level constraint violations into the
// shared error taxonomy so handlers never see raw pg errors. Duplicate
// offers/ratings and the dual-resume check both land here on races.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}
