package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport/ssh/internal/session"
)

type Client interface {
	NewSession(stdout io.Writer, stderr io.Writer) (session.Session, error)
	CreateFile(path string) (io.WriteCloser, error)
	Disconnect() error
}

func NewConnectClient(ctx context.Context, network string, addr string, config *ssh.ClientConfig) (Client, error) {
	dialer := &net.Dialer{Timeout: config.Timeout}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	cli := &defaultClient{
		internal: ssh.NewClient(c, chans, reqs),
	}

	return cli, nil
}

type defaultClient struct {
	internal *ssh.Client

	// the SFTP subsystem is only started on the first upload
	sftpMu sync.Mutex
	sftp   *sftp.Client
}

func (c *defaultClient) NewSession(stdout io.Writer, stderr io.Writer) (session.Session, error) {
	s, err := c.internal.NewSession()
	if err != nil {
		return nil, err
	}

	s.Stdout = stdout
	s.Stderr = stderr

	return session.New(s), nil
}

func (c *defaultClient) CreateFile(path string) (io.WriteCloser, error) {
	c.sftpMu.Lock()
	defer c.sftpMu.Unlock()

	if c.sftp == nil {
		sftpClient, err := sftp.NewClient(c.internal)
		if err != nil {
			return nil, fmt.Errorf("starting sftp subsystem: %w", err)
		}

		c.sftp = sftpClient
	}

	return c.sftp.Create(path)
}

func (c *defaultClient) Disconnect() error {
	c.sftpMu.Lock()
	if c.sftp != nil {
		_ = c.sftp.Close()
		c.sftp = nil
	}
	c.sftpMu.Unlock()

	return c.internal.Close()
}
