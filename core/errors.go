package core

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ModelError reports physically invalid noise parameters or a fidelity
// that fell outside [0, 1] beyond rounding.
type ModelError struct {
	Op  string
	Err error
}

func NewModelError(op string, err error) *ModelError {
	return &ModelError{Op: op, Err: err}
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model error in %s: %s", e.Op, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an unusable sweep or setting value, raised
// before any point is evaluated.
type ConfigurationError struct {
	Field  string
	Reason string
}

func NewConfigurationError(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}

func IsModelError(err error) bool {
	var me *ModelError
	return errors.As(err, &me)
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
