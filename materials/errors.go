package materials

import (
	"errors"
	"fmt"
)

// ErrConfig matches every *ConfigError through errors.Is
var ErrConfig = errors.New("materials: configuration error")

// ConfigError reports an input deck that is inconsistent with the chosen
// model: missing parameters, unsupported dimension, unsupported kinematics.
// It is not recoverable, the run has to stop.
type ConfigError struct {
	Model  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Model, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

func configErrorf(model, format string, args ...interface{}) error {
	return &ConfigError{Model: model, Reason: fmt.Sprintf(format, args...)}
}

// MissingPropertyError is the panic value raised when a Container is read
// for a name that was never written
type MissingPropertyError struct {
	Kind Kind
	Name string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s property %q has not been written", e.Kind, e.Name)
}
