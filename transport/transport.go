// Package transport provides abstractions for executing commands and
// transferring files on a remote host over one authenticated connection
package transport

import (
	"context"
	"strings"
	"time"
)

const DefaultPort = 22

// Transport is the interface to establish connections with remote hosts
type Transport interface {
	// Connect authenticates against the host and returns a live Session
	Connect(ctx context.Context, settings ConnectionSettings) (Session, error)
}

// Session is one authenticated connection to a remote host. It must not be
// shared between concurrent pipeline runs and is unusable after Close.
type Session interface {
	// Execute runs the command remotely and captures its output. Exit codes
	// are not interpreted; an error means the command could not be dispatched.
	Execute(ctx context.Context, command string) (Output, error)

	// Upload copies a local file to the remote path, calling onProgress after
	// every transferred chunk
	Upload(ctx context.Context, localPath string, remotePath string, onProgress ProgressFunc) error

	// Close releases the connection. It is safe to call more than once.
	Close() error
}

// ProgressFunc receives the bytes transferred so far and the total size
type ProgressFunc func(transferred int64, total int64)

// ConnectionSettings centralizes attributes related to the remote host settings
type ConnectionSettings struct {
	Hostname       string
	Port           int
	Username       string
	Credentials    Credentials
	KnownHostsFile string
	DialTimeout    time.Duration
}

// Credentials holds a password, a private key path or both
type Credentials struct {
	Password      string
	KeyPath       string
	KeyPassphrase string
}

func (c Credentials) Empty() bool {
	return c.Password == "" && c.KeyPath == ""
}

// Output is the captured result of a remote command
type Output struct {
	Stdout string
	Stderr string
}

// Combined returns stdout followed by stderr, skipping empty streams
func (o Output) Combined() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{o.Stdout, o.Stderr} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimRight(s, "\n"))
		}
	}

	return strings.Join(parts, "\n")
}

func (o Output) HasStderr() bool {
	return strings.TrimSpace(o.Stderr) != ""
}
