package failure

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnknownZone          = errors.New("unknown zone")
	ErrInvalidCivilDateTime = errors.New("invalid civil date/time")
	ErrFormatting           = errors.New("formatting failure")
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var SessionNotFound = &Failure{Code: http.StatusNotFound, Message: "session not found"}
var EmptyTargetZone = &Failure{Code: http.StatusBadRequest, Message: "target zone is required"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel error the failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// UnknownZone returns a new Failure for a zone missing from the catalog or the rule database.
func UnknownZone(zone string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("unknown time zone %q", zone),
		cause:   ErrUnknownZone,
	}
}

// InvalidCivilDateTime returns a new Failure for date/time input that cannot be parsed.
func InvalidCivilDateTime(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		cause:   ErrInvalidCivilDateTime,
	}
}

// Formatting returns a new Failure for a display value that could not be produced.
func Formatting(zone string, err error) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("formatting %q: %v", zone, err),
		cause:   ErrFormatting,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsUnknownZone(err error) bool {
	return errors.Is(err, ErrUnknownZone)
}

func IsInvalidCivilDateTime(err error) bool {
	return errors.Is(err, ErrInvalidCivilDateTime)
}
