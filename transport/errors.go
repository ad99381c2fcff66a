package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when the session was closed or never established
	ErrNotConnected = errors.New("not connected to remote host")

	// ErrConnectionLost is wrapped by CommandError when the underlying connection is unusable
	ErrConnectionLost = errors.New("connection to remote host lost")

	// ErrMissingCredentials is returned when neither a password nor a private key was provided
	ErrMissingCredentials = errors.New("neither password nor private key provided")
)

// ConnectionError is returned when the remote host can't be reached
type ConnectionError struct {
	Address string
	inner   error
}

func NewConnectionError(address string, err error) *ConnectionError {
	return &ConnectionError{Address: address, inner: err}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Address, e.inner)
}

func (e *ConnectionError) Unwrap() error {
	return e.inner
}

func (e *ConnectionError) Is(err error) bool {
	_, ok := err.(*ConnectionError)
	return ok
}

// AuthenticationError is returned when the credentials were rejected or unusable
type AuthenticationError struct {
	Username string
	inner    error
}

func NewAuthenticationError(username string, err error) *AuthenticationError {
	return &AuthenticationError{Username: username, inner: err}
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authenticating as %q: %v", e.Username, e.inner)
}

func (e *AuthenticationError) Unwrap() error {
	return e.inner
}

func (e *AuthenticationError) Is(err error) bool {
	_, ok := err.(*AuthenticationError)
	return ok
}

// TransferError is returned when a file couldn't be copied to the remote host
type TransferError struct {
	LocalPath  string
	RemotePath string
	inner      error
}

func NewTransferError(localPath string, remotePath string, err error) *TransferError {
	return &TransferError{LocalPath: localPath, RemotePath: remotePath, inner: err}
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transferring %q to %q: %v", e.LocalPath, e.RemotePath, e.inner)
}

func (e *TransferError) Unwrap() error {
	return e.inner
}

func (e *TransferError) Is(err error) bool {
	_, ok := err.(*TransferError)
	return ok
}

// CommandError is returned when a command couldn't be dispatched to the remote host
type CommandError struct {
	Command string
	inner   error
}

func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, inner: err}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("dispatching command %q: %v", e.Command, e.inner)
}

func (e *CommandError) Unwrap() error {
	return e.inner
}

func (e *CommandError) Is(err error) bool {
	_, ok := err.(*CommandError)
	return ok
}

// Unusable reports whether err means the session can't carry further commands
func Unusable(err error) bool {
	return errors.Is(err, ErrConnectionLost) || errors.Is(err, ErrNotConnected)
}
