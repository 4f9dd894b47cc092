package errors

import (
	"errors"
	"net/http"
)

// Kind groups domain errors for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalidInput
	KindUnauthorized
	KindUnavailable
)

type domainError struct {
	kind Kind
	code string
	msg  string
}

func (e *domainError) Error() string {
	return e.msg
}

func newError(kind Kind, code, msg string) error {
	return &domainError{kind: kind, code: code, msg: msg}
}

var (
	// ErrUserNotFound is returned when a user is not registered.
	ErrUserNotFound = newError(KindNotFound, "USER_NOT_FOUND", "user not found")
	// ErrReservationNotFound is returned when a reservation does not exist.
	ErrReservationNotFound = newError(KindNotFound, "RESERVATION_NOT_FOUND", "reservation not found")
	// ErrLoanNotFound is returned when a loan does not exist.
	ErrLoanNotFound = newError(KindNotFound, "LOAN_NOT_FOUND", "loan not found")
	// ErrEmployeeNotFound is returned when an employee is not registered.
	ErrEmployeeNotFound = newError(KindNotFound, "EMPLOYEE_NOT_FOUND", "employee not found")
	// ErrNoResults is returned by per-user listings that matched nothing.
	ErrNoResults = newError(KindNotFound, "NO_RESULTS", "no results")

	// ErrNoResourcesOfType is returned when the type has no available resources.
	ErrNoResourcesOfType = newError(KindConflict, "NO_RESOURCES_OF_TYPE", "no available resources of this type")
	// ErrNoSlotAvailable is returned when no resource admits and is free at the requested slot.
	ErrNoSlotAvailable = newError(KindConflict, "NO_SLOT_AVAILABLE", "no resource available at the requested time")
	// ErrReservationNotActive is returned when a loan targets a non vigent reservation.
	ErrReservationNotActive = newError(KindConflict, "RESERVATION_NOT_ACTIVE", "reservation is not active")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = newError(KindConflict, "DUPLICATE_EMAIL", "email already registered")
	// ErrConflict is returned by the store on uniqueness or serialization failures.
	ErrConflict = newError(KindConflict, "CONFLICT", "conflicting write")
	// ErrReferenced is returned when a row is still referenced by another table.
	ErrReferenced = newError(KindConflict, "REFERENCED", "record is referenced by other records")

	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = newError(KindInvalidInput, "NOTHING_TO_UPDATE", "nothing to update")
	// ErrInvalidSort is returned for a sort key outside the allowed set.
	ErrInvalidSort = newError(KindInvalidInput, "INVALID_SORT", "invalid sort column")
	// ErrInvalidDateRange is returned when the start date is after the end date.
	ErrInvalidDateRange = newError(KindInvalidInput, "INVALID_DATE_RANGE", "start date cannot be after end date")
	// ErrInvalidFilter is returned for an unknown reservation filter.
	ErrInvalidFilter = newError(KindInvalidInput, "INVALID_FILTER", "invalid filter")
	// ErrInvalidTime is returned for a time of day that is not HH:MM.
	ErrInvalidTime = newError(KindInvalidInput, "INVALID_TIME", "time must be HH:MM")
	// ErrInvalidStatus is returned for a reservation status outside the enum.
	ErrInvalidStatus = newError(KindInvalidInput, "INVALID_STATUS", "invalid reservation status")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = newError(KindUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	// ErrInvalidToken is returned for missing, malformed or expired tokens.
	ErrInvalidToken = newError(KindUnauthorized, "INVALID_TOKEN", "invalid or expired token")
	// ErrInvalidAPIKey is returned when the API key header does not match.
	ErrInvalidAPIKey = newError(KindUnauthorized, "INVALID_API_KEY", "unauthorized access, invalid api key")

	// ErrUnavailable is returned when the store cannot be reached.
	ErrUnavailable = newError(KindUnavailable, "STORAGE_UNAVAILABLE", "storage unavailable")
)

// KindOf reports the kind of the first domain error in err's chain.
func KindOf(err error) Kind {
	var de *domainError
	if errors.As(err, &de) {
		return de.kind
	}
	return KindInternal
}

// CodeOf reports the machine readable code of err, INTERNAL_ERROR for unknown errors.
func CodeOf(err error) string {
	var de *domainError
	if errors.As(err, &de) {
		return de.code
	}
	return "INTERNAL_ERROR"
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors by kind.
func MapErrorToHTTP(err error) *HTTPError {
	var de *domainError
	if !errors.As(err, &de) {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
	switch de.kind {
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, de.msg, de.code)
	case KindConflict:
		return NewHTTPError(http.StatusConflict, de.msg, de.code)
	case KindInvalidInput:
		return NewHTTPError(http.StatusBadRequest, de.msg, de.code)
	case KindUnauthorized:
		return NewHTTPError(http.StatusForbidden, de.msg, de.code)
	case KindUnavailable:
		return NewHTTPError(http.StatusServiceUnavailable, de.msg, de.code)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// BusinessRuleHTTP maps a failure of a business operation the way the reservation
// and ledger endpoints report it: every rule failure is a 400, storage outages stay 503.
func BusinessRuleHTTP(err error) *HTTPError {
	httpErr := MapErrorToHTTP(err)
	switch KindOf(err) {
	case KindNotFound, KindConflict, KindInvalidInput:
		httpErr.StatusCode = http.StatusBadRequest
	}
	return httpErr
}
