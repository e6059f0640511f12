package errors

import (
	"errors"
	"fmt"
)

// default error for a failed backend call is the transport error itself
// if the backend answered with a non-2xx status use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ErrRequired is matched by every precondition failure raised before a request is built.
var ErrRequired = errors.New("required field missing")

// RequiredFieldError names the identifier or payload field that was empty.
type RequiredFieldError struct {
	Field string
}

func Required(field string) error {
	return &RequiredFieldError{Field: field}
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *RequiredFieldError) Is(target error) bool {
	return target == ErrRequired
}

// ValidationError is a payload rule other than presence (min, max, email...).
type ValidationError struct {
	Field string
	Tag   string
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed %s=%s validation", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s failed %s validation", e.Field, e.Tag)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
