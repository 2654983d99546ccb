package response

import (
	"errors"
)

type Error struct {
	Code    int
	Err     error
	Details string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Is matches on code and message so a detailed copy still matches its sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// WithDetails copies a response error and attaches the underlying cause.
// Errors that are not *Error are returned unchanged.
func WithDetails(err error, details string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	return &Error{Code: e.Code, Err: e.Err, Details: details}
}
