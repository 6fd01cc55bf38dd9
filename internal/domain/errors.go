package domain

import (
	"errors"
	"fmt"
)

// Error codes surfaced in 400 payloads.
const (
	CodeInvalidUser   = "missing_or_invalid_user"
	CodeInvalidFilter = "invalid_filter_value"
)

// ValidationError covers every rejectable input: an absent or
// non-whitelisted analyst identifier, or a malformed filter value.
// These are pure request faults; nothing is retried and nothing
// degrades for later requests.
type ValidationError struct {
	Code  string
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InvalidUser flags a missing or non-whitelisted userId.
func InvalidUser(msg string) error {
	return ValidationError{Code: CodeInvalidUser, Field: "userId", Msg: msg}
}

// InvalidFilter flags a malformed optional filter value.
func InvalidFilter(field, msg string) error {
	return ValidationError{Code: CodeInvalidFilter, Field: field, Msg: msg}
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

// ValidationCode returns the payload code of a validation error, or "".
func ValidationCode(err error) string {
	var target ValidationError
	if errors.As(err, &target) {
		return target.Code
	}
	return ""
}
