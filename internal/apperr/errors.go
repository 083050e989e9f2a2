package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Machine-readable error codes surfaced to callers.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeInvalidDate          = "INVALID_DATE"
	CodeNotFound             = "NOT_FOUND"
	CodeDuplicateApplication = "DUPLICATE_APPLICATION"
	CodeRequestNotAvailable  = "REQUEST_NOT_AVAILABLE"
	CodeAlreadyAssigned      = "ALREADY_ASSIGNED"
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeForbidden            = "FORBIDDEN"
	CodeRateLimited          = "RATE_LIMITED"
	CodeInternal             = "INTERNAL_ERROR"
)

// Error carries a code and a human-readable message on top of one of the
// sentinel kinds above, so errors.Is(err, ErrConflict) keeps working.
type Error struct {
	Code    string
	Message string
	Kind    error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel kind.
func (e *Error) Unwrap() error { return e.Kind }

// Validation builds a VALIDATION_ERROR.
func Validation(msg string) error {
	return &Error{Code: CodeValidation, Message: msg, Kind: ErrInvalid}
}

// InvalidDate builds an INVALID_DATE validation error.
func InvalidDate(msg string) error {
	return &Error{Code: CodeInvalidDate, Message: msg, Kind: ErrInvalid}
}

// NotFound builds a NOT_FOUND error for the named entity.
func NotFound(entity string) error {
	return &Error{Code: CodeNotFound, Message: entity + " not found", Kind: ErrNotFound}
}

// DuplicateApplication is returned when a deliverer already applied to a request.
var DuplicateApplication error = &Error{
	Code:    CodeDuplicateApplication,
	Message: "deliverer already applied to this request",
	Kind:    ErrConflict,
}

// RequestNotAvailable is returned when a request no longer accepts applications.
var RequestNotAvailable error = &Error{
	Code:    CodeRequestNotAvailable,
	Message: "request is not open",
	Kind:    ErrConflict,
}

// AlreadyAssigned is returned when a request was assigned by another resolution.
var AlreadyAssigned error = &Error{
	Code:    CodeAlreadyAssigned,
	Message: "request is already assigned",
	Kind:    ErrConflict,
}

// CodeOf returns the machine-readable code of err, deriving it from the sentinel
// kind when err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	switch {
	case errors.Is(err, ErrInvalid):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConflict):
		return CodeRequestNotAvailable
	default:
		return CodeInternal
	}
}
