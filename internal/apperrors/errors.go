// Package apperrors defines the error taxonomy shared by services and
// controllers. Services wrap one of the sentinels below; controllers translate
// them to HTTP status codes with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks an absent profile, session, question or report.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState marks an operation against a finished session.
	ErrInvalidState = errors.New("invalid state")
	// ErrModelResponse marks generative-model output that failed JSON extraction.
	ErrModelResponse = errors.New("model response error")
	// ErrUpstream marks a failed model call or PDF parse.
	ErrUpstream = errors.New("upstream error")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func ModelResponsef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrModelResponse, fmt.Sprintf(format, args...))
}

func Upstreamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUpstream, fmt.Sprintf(format, args...))
}
