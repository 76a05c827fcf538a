// Package pgerrs classifies PostgreSQL driver errors into the application's
// error kinds. Both lib/pq and pgx errors are recognized, since the service
// connects through lib/pq while tests may open GORM with its default pgx
// driver.
package pgerrs

import (
	"errors"

	"pizza/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Translate maps err to errs.ConstraintViolationError for foreign key and check
// violations and to errs.StorageUnavailableError for anything else. Errors that
// already carry an application kind are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if isClassified(err) {
		return err
	}

	code, constraint, ok := pgCode(err)
	if ok && (code == foreignKeyViolation || code == checkViolation) {
		return errs.NewConstraintViolationErrorWithCause(constraint, err)
	}
	return errs.NewStorageUnavailableError(err)
}

func isClassified(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrReferenceNotFound) ||
		errors.Is(err, errs.ErrConstraintViolation) ||
		errors.Is(err, errs.ErrStorageUnavailable) ||
		errs.IsValidation(err)
}

func pgCode(err error) (code, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}
