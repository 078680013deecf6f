package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds of failures that abort an analysis request. Degraded upstreams never
// surface as errors; they are logged and replaced by empty results.
var (
	ErrNotFound      = errors.New("not found")
	ErrConfiguration = errors.New("configuration error")
	ErrInternal      = errors.New("internal error")
)

type kindError struct {
	kind error
	msg  string
	err  error
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.err != nil {
		return []error{e.kind, e.err}
	}
	return []error{e.kind}
}

// NotFound returns an error matching ErrNotFound.
func NotFound(format string, args ...interface{}) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Configuration returns an error matching ErrConfiguration naming the missing setting.
func Configuration(format string, args ...interface{}) error {
	return &kindError{kind: ErrConfiguration, msg: fmt.Sprintf(format, args...)}
}

// Internal wraps err so it matches ErrInternal while keeping its message.
// Errors that already carry a kind are returned unchanged.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if Is(err) {
		return err
	}
	return &kindError{kind: ErrInternal, msg: err.Error(), err: err}
}

// Is reports whether err carries one of the known kinds.
func Is(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrConfiguration) || errors.Is(err, ErrInternal)
}

// HTTPStatus maps an error to the status code returned to API callers.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
