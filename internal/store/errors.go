package store

import (
	"errors"
	"fmt"
)

// Entity names carried by StoreError.
const (
	EntitySpacedRepetition = "spaced_repetition"
	EntityExamAttempt      = "exam_attempt"
	EntityQuestionAttempt  = "question_attempt"
)

var (
	// ErrNotFound is the root of every not-found error; match it with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate means a row with the same key already exists.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity means the row was rejected by domain validation or a
	// table constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed means a transaction could not begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrConcurrentUpdate means the transaction lost a lock race (deadlock or
	// serialization failure) and may be retried by the caller.
	ErrConcurrentUpdate = errors.New("concurrent update conflict")

	ErrSpacedRepetitionNotFound = fmt.Errorf("%w: spaced repetition state", ErrNotFound)
	ErrExamAttemptNotFound      = fmt.Errorf("%w: exam attempt", ErrNotFound)
)

// IsNotFoundError reports whether err is, or wraps, ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError records which store call failed on which entity.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	prefix := fmt.Sprintf("%s %s: %s", e.Operation, e.Entity, e.Message)
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the entity and operation it came from.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
