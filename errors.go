package envconfig

import (
	"errors"
	"fmt"
)

// Sentinel targets for [errors.Is] checks against the typed errors below.
var (
	// ErrMissingConfiguration matches every *MissingConfigurationError.
	ErrMissingConfiguration = errors.New("missing required configuration")
	// ErrCoercion matches every *CoercionError.
	ErrCoercion = errors.New("cannot coerce environment value")
)

// MissingConfigurationError is returned by [Spec.Process] when a field has
// no environment variable set (or it is empty), no registered default, and
// absence is configured to be fatal.
type MissingConfigurationError struct {
	// Field is the registered field name.
	Field string
	// Var is the derived environment variable name that was looked up.
	Var string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: no default value provided and no env var set for %s (env var: %s)",
		e.Field, e.Var)
}

// Is reports whether target is [ErrMissingConfiguration].
func (e *MissingConfigurationError) Is(target error) bool {
	return target == ErrMissingConfiguration
}

// CoercionError is returned by [Spec.Process] when a present environment
// value cannot be converted into the field's registered type. It is always
// fatal, regardless of the raise-on-absence setting.
type CoercionError struct {
	// Field is the registered field name.
	Field string
	// Var is the derived environment variable name.
	Var string
	// Value is the raw string found in the environment.
	Value string
	// Type names the registered target type.
	Type string
	// Err is the underlying conversion error.
	Err error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce value %q of env var %s into %s for field %s: %v",
		e.Value, e.Var, e.Type, e.Field, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *CoercionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrCoercion].
func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}
