package ssh

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/crypto/ssh"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport/ssh/internal/client"
)

// errInvalidPrivateKey will be used to wrap a ssh internal error
type errInvalidPrivateKey struct {
	inner error
}

func (e *errInvalidPrivateKey) Error() string {
	return fmt.Sprintf("invalid private key: %v", e.inner)
}

func (e *errInvalidPrivateKey) Unwrap() error {
	return e.inner
}

func (e *errInvalidPrivateKey) Is(err error) bool {
	_, ok := err.(*errInvalidPrivateKey)
	return ok
}

type connectClientFn func(ctx context.Context, network string, addr string, config *ssh.ClientConfig) (client.Client, error)

type sshTransport struct {
	logger logging.Logger
	fs     fs.FS

	// Functions encapsulated to make easier creating unit tests
	connectClient connectClientFn
	expandPath    func(path string) (string, error)
}

// NewTransport is the constructor for the SSH implementation of transport.Transport
func NewTransport(logger logging.Logger) transport.Transport {
	t := new(sshTransport)
	t.logger = logger
	t.fs = fs.NewOS()

	t.connectClient = client.NewConnectClient
	t.expandPath = homedir.Expand

	return t
}

func (t *sshTransport) Connect(ctx context.Context, settings transport.ConnectionSettings) (transport.Session, error) {
	logger := t.logger.WithFields(logging.Fields{
		"host": settings.Hostname,
		"user": settings.Username,
	})
	logger.Debug("[Connect] Will connect to remote host via SSH")

	port := settings.Port
	if port < 1 {
		port = transport.DefaultPort
	}
	addr := net.JoinHostPort(settings.Hostname, strconv.Itoa(port))

	auth, err := t.authMethods(settings.Credentials)
	if err != nil {
		return nil, transport.NewAuthenticationError(settings.Username, err)
	}

	hostKeyCallback, err := t.hostKeyCallback(settings.KnownHostsFile)
	if err != nil {
		return nil, transport.NewConnectionError(addr, err)
	}

	config := &ssh.ClientConfig{
		User:            settings.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         settings.DialTimeout,
	}

	cli, err := t.connectClient(ctx, "tcp", addr, config)
	if err != nil {
		if isAuthenticationFailure(err) {
			return nil, transport.NewAuthenticationError(settings.Username, err)
		}

		return nil, transport.NewConnectionError(addr, err)
	}

	logger.Debug("[Connect] Successfully connected to remote host")

	return newRemoteSession(logger, t.fs, cli), nil
}

func isAuthenticationFailure(err error) bool {
	return strings.Contains(err.Error(), "unable to authenticate")
}
