package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
)

var statusByCode = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeEmptyCart:       http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeDuplicateEntry:  http.StatusConflict,
	ErrCodeTooManyRequests: http.StatusTooManyRequests,
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeDatabaseError:   http.StatusInternalServerError,
	ErrCodeThirdPartyError: http.StatusInternalServerError,
}

// AppError is the single error type handlers render. Message and Details are
// client-facing; Err is the underlying cause and stays in logs.
type AppError struct {
	Code       string
	Message    string
	Details    []string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError whose status is derived from code. Unknown codes map
// to 500.
func New(code, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	return &AppError{Code: code, Message: message, StatusCode: status}
}

func (e *AppError) WithDetail(detail string) *AppError {
	return e.WithDetails([]string{detail})
}

func (e *AppError) WithDetails(details []string) *AppError {
	e.Details = append(e.Details, details...)

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func ValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

func BadRequestError(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

func NotFoundError(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

func UnauthorizedError(message string) *AppError {
	return New(ErrCodeUnauthorized, message)
}

func ForbiddenError(message string) *AppError {
	return New(ErrCodeForbidden, message)
}

func InternalError(message string) *AppError {
	return New(ErrCodeInternal, message)
}

func DatabaseError(message string) *AppError {
	return New(ErrCodeDatabaseError, message)
}

func DuplicateEntryError(message string) *AppError {
	return New(ErrCodeDuplicateEntry, message)
}

// EmptyCartError rejects a checkout of a cart with no items.
func EmptyCartError(message string) *AppError {
	return New(ErrCodeEmptyCart, message)
}

func ThirdPartyError(message string) *AppError {
	return New(ErrCodeThirdPartyError, message)
}

func TooManyRequestsError(message string) *AppError {
	return New(ErrCodeTooManyRequests, message)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
