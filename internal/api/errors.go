package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sercanumit/bootcamp-112/internal/api/shared"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/service"
	"github.com/sercanumit/bootcamp-112/internal/service/auth"
	"github.com/sercanumit/bootcamp-112/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var (
		verr  *domain.ValidationError
		rerr  *domain.RangeError
		verrs validator.ValidationErrors
	)
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrConcurrentUpdate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrInvalidBody),
		errors.As(err, &verr),
		errors.As(err, &rerr),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		verr  *domain.ValidationError
		rerr  *domain.RangeError
		verrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &verr):
		// ValidationError messages are built from field names and fixed text.
		return verr.Error()
	case errors.As(err, &rerr):
		return rerr.Error()
	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this resource"

	case errors.Is(err, store.ErrExamAttemptNotFound):
		return "Exam not found"
	case errors.Is(err, store.ErrSpacedRepetitionNotFound):
		return "Review schedule not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, store.ErrConcurrentUpdate):
		return "Resource was modified concurrently, retry the request"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, shared.ErrInvalidBody):
		return "Invalid request body"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns the first validator failure into a message
// naming the JSON field and the failed rule.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte", "gt":
		return "too small"
	case "max", "lte", "lt":
		return "too large"
	case "oneof":
		return "invalid value"
	case "uuid":
		return "invalid identifier"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message that err maps to.
// A non-empty fallback replaces the generic message of server errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	var opts []shared.ResponseOption
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		opts = append(opts, shared.WithField(verr.Field))
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
