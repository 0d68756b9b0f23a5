// internal/errs/errors.go
package errs

import (
	"context"
	"errors"
	"fmt"
)

// Failure kinds. Every fatal error in the pipeline wraps exactly one of
// these so callers can match with errors.Is and map to an exit code.
var (
	ErrConfiguration      = kind("configuration error")
	ErrServiceUnavailable = kind("service unavailable")
	ErrResponseFormat     = kind("response format error")
	ErrPersistence        = kind("persistence error")
)

type kind string

func (k kind) Error() string { return string(k) }

type kindError struct {
	kind kind
	err  error
}

func (e *kindError) Error() string        { return fmt.Sprintf("%s: %v", e.kind, e.err) }
func (e *kindError) Unwrap() error        { return e.err }
func (e *kindError) Is(target error) bool { return target == e.kind }

// Wrap tags err with a failure kind. A nil err returns nil.
func Wrap(k error, err error) error {
	if err == nil {
		return nil
	}
	kk, ok := k.(kind)
	if !ok {
		return err
	}
	return &kindError{kind: kk, err: err}
}

// Configurationf builds a ConfigurationError from a format string.
func Configurationf(format string, a ...any) error {
	return Wrap(ErrConfiguration, fmt.Errorf(format, a...))
}

// ServiceUnavailablef builds a ServiceUnavailable error from a format string.
func ServiceUnavailablef(format string, a ...any) error {
	return Wrap(ErrServiceUnavailable, fmt.Errorf(format, a...))
}

// ResponseFormatf builds a ResponseFormatError from a format string.
func ResponseFormatf(format string, a ...any) error {
	return Wrap(ErrResponseFormat, fmt.Errorf(format, a...))
}

// Persistencef builds a PersistenceError from a format string.
func Persistencef(format string, a ...any) error {
	return Wrap(ErrPersistence, fmt.Errorf(format, a...))
}

// ExitCode maps an error to the process exit contract:
// 0 ok, 2 configuration/usage, 3 persistence, 4 service unavailable,
// 5 response format, 130 canceled, 1 anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfiguration):
		return 2
	case errors.Is(err, ErrPersistence):
		return 3
	case errors.Is(err, ErrServiceUnavailable):
		return 4
	case errors.Is(err, ErrResponseFormat):
		return 5
	case errors.Is(err, context.Canceled):
		return 130
	}
	return 1
}
