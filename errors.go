package streamhash

import (
	"errors"
	"fmt"

	"github.com/Giulio2002/streamhash/convert"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrState matches every *StateError.
	ErrState = errors.New("operation not allowed in current state")
	// ErrInvalidInput is returned by Update and SetHMACKey for malformed HEX or
	// B64 input.
	ErrInvalidInput = convert.ErrInvalidInput
)

// ConfigurationError reports an invalid option at construction or digest time.
type ConfigurationError struct {
	Option string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("streamhash: invalid %s: %s", e.Option, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Unwrap returns the underlying cause, if any.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// StateError reports an operation invoked out of protocol order.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("streamhash: %s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrState.
func (e *StateError) Is(target error) bool { return target == ErrState }

func configError(option, reason string) error {
	return &ConfigurationError{Option: option, Reason: reason}
}

func stateError(op, reason string) error {
	return &StateError{Op: op, Reason: reason}
}
