// Package errors defines the error types shared across the QOSST control
// protocol packages. Protocol faults on the wire are reported as codes, not
// errors (see pkg/codes); the errors here cover programmer misuse, I/O
// failures and key handling problems.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for connection lifecycle misuse
var (
	// ErrNotOpened indicates an operation on a socket that was never opened
	ErrNotOpened = errors.New("control: socket is not opened")

	// ErrNotConnected indicates send/recv on a socket that is not connected
	ErrNotConnected = errors.New("control: socket is not connected")

	// ErrAlreadyConnected indicates a second connect on an occupied socket
	ErrAlreadyConnected = errors.New("control: socket is already connected")

	// ErrClosed indicates an operation on a closed connection
	ErrClosed = errors.New("control: connection is closed")
)

// Sentinel errors for frame encoding
var (
	// ErrHeaderTooLarge indicates the serialized variable header exceeds
	// the u16 length field
	ErrHeaderTooLarge = errors.New("frame: variable header too large")

	// ErrSignatureTooLarge indicates the signature exceeds the u16 length field
	ErrSignatureTooLarge = errors.New("frame: signature too large")

	// ErrContentTooLarge indicates the payload exceeds the receiver cap
	ErrContentTooLarge = errors.New("frame: content too large")
)

// Sentinel errors for authentication setup
var (
	// ErrInvalidKey indicates a key could not be parsed
	ErrInvalidKey = errors.New("auth: invalid key")

	// ErrUnknownAuthenticator indicates an unrecognized authenticator name
	ErrUnknownAuthenticator = errors.New("auth: unknown authenticator")

	// ErrKeyExists indicates key generation would overwrite existing files
	ErrKeyExists = errors.New("auth: key file already exists")
)

// ConfigError wraps a configuration loading error with the offending section.
type ConfigError struct {
	Section string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Section, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(section string, err error) *ConfigError {
	return &ConfigError{Section: section, Err: err}
}

// AuthError wraps an authentication error with the failing operation.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError.
func NewAuthError(op string, err error) *AuthError {
	return &AuthError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
