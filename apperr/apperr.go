package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the typed error every service returns for expected failures.
// Status is the HTTP status the controller layer should reply with.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...))
}

func BadRequest(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, fmt.Sprintf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(http.StatusUnauthorized, fmt.Sprintf(format, args...))
}

// InsufficientStock names the offending product so the caller can show
// which line item blocked the purchase.
func InsufficientStock(productName string) *Error {
	return New(http.StatusBadRequest, "insufficient stock for "+productName)
}

// StatusOf maps any error to an HTTP status. Unexpected errors are
// reported as internal, never leaked verbatim.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}
