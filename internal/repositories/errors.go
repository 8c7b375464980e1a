package repositories

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"urban_access/internal/apperr"
)

// Constraint names from the initial migration.
const (
	constraintUserEmail        = "users_email_key"
	constraintUserNationalID   = "users_cpf_key"
	constraintIncidentCategory = "incidents_category_id_fkey"
)

// translatePgError maps constraint violations onto domain errors.
// It returns nil when err is not one it knows about.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUserEmail:
			return apperr.ErrDuplicateEmail
		case constraintUserNationalID:
			return apperr.ErrDuplicateNationalID
		}
	case pgerrcode.ForeignKeyViolation:
		if pgErr.ConstraintName == constraintIncidentCategory {
			return apperr.ErrUnknownCategory
		}
	}
	return nil
}
