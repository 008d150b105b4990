package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sercanumit/bootcamp-112/internal/store"
)

// SQLSTATE codes translated by MapError.
const (
	uniqueViolationCode      = "23505"
	foreignKeyViolationCode  = "23503"
	checkViolationCode       = "23514"
	notNullViolationCode     = "23502"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

type errorClass struct {
	target error
	label  string
}

var errorClasses = map[string]errorClass{
	uniqueViolationCode:      {store.ErrDuplicate, "unique violation"},
	foreignKeyViolationCode:  {store.ErrInvalidEntity, "foreign key violation"},
	checkViolationCode:       {store.ErrInvalidEntity, "check violation"},
	notNullViolationCode:     {store.ErrInvalidEntity, "not null violation"},
	serializationFailureCode: {store.ErrConcurrentUpdate, "serialization failure"},
	deadlockDetectedCode:     {store.ErrConcurrentUpdate, "deadlock detected"},
}

// MapError translates driver errors into store sentinels while keeping the
// original text for logs. notFound replaces store.ErrNotFound for
// sql.ErrNoRows when the caller knows the entity. Unknown errors pass through.
func MapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		if notFound == nil {
			notFound = store.ErrNotFound
		}
		return fmt.Errorf("%w: %v", notFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	class, ok := errorClasses[pgErr.Code]
	if !ok {
		return err
	}
	return fmt.Errorf("%w: %s (%s): %v", class.target, class.label, violated(pgErr), err)
}

// violated names the constraint, or the table column for not-null errors.
func violated(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.Code == notNullViolationCode && pgErr.ColumnName != "":
		return pgErr.TableName + "." + pgErr.ColumnName
	case pgErr.ConstraintName != "":
		return pgErr.ConstraintName
	case pgErr.TableName != "":
		return pgErr.TableName
	default:
		return "unknown"
	}
}
