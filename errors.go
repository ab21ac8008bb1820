package twconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConfiguration is matched by every error caused by a
	// declaration that cannot be parsed into the expected shape.
	ErrMalformedConfiguration = errors.New("malformed configuration")

	// ErrDeclarationNotFound is returned when no declaration file exists
	// at any of the well-known locations.
	ErrDeclarationNotFound = errors.New("declaration not found")
)

// MalformedConfigurationError describes why a declaration was rejected.
type MalformedConfigurationError struct {
	Source string // file path, or "" for in-memory input
	Key    string // dotted key, e.g. "theme.extend.colors"
	Reason string
	Err    error // underlying parser/decoder error, may be nil
}

func (e *MalformedConfigurationError) Error() string {
	msg := ErrMalformedConfiguration.Error()
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": %s", e.Key)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrMalformedConfiguration so callers can use errors.Is.
func (e *MalformedConfigurationError) Is(target error) bool {
	return target == ErrMalformedConfiguration
}

func malformed(source, key, reason string, err error) *MalformedConfigurationError {
	return &MalformedConfigurationError{Source: source, Key: key, Reason: reason, Err: err}
}
