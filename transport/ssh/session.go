package ssh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/ssh"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport/ssh/internal/client"
)

const defaultChunkSize = 32 * 1024

type remoteSession struct {
	logger logging.Logger
	fs     fs.FS

	mu     sync.Mutex
	client client.Client

	chunkSize int
}

func newRemoteSession(logger logging.Logger, filesystem fs.FS, cli client.Client) *remoteSession {
	return &remoteSession{
		logger:    logger,
		fs:        filesystem,
		client:    cli,
		chunkSize: defaultChunkSize,
	}
}

func (s *remoteSession) currentClient() client.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.client
}

func (s *remoteSession) Execute(ctx context.Context, command string) (transport.Output, error) {
	logger := s.logger.WithField("command", command)
	logger.Debug("[Execute] Will execute a remote command")

	cli := s.currentClient()
	if cli == nil {
		return transport.Output{}, transport.NewCommandError(command, transport.ErrNotConnected)
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	sess, err := cli.NewSession(stdout, stderr)
	if err != nil {
		return transport.Output{}, transport.NewCommandError(command, channelError(err))
	}
	defer sess.Close()

	err = sess.Run(ctx, command)
	output := transport.Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil && !isRemoteExit(err) {
		return output, transport.NewCommandError(command, runError(err))
	}

	if err != nil {
		logger.WithError(err).Debug("[Execute] Command finished with a failure status")
	}

	logger.Debug("[Execute] Command executed")

	return output, nil
}

// isRemoteExit reports whether the command ran and the remote side reported its termination
func isRemoteExit(err error) bool {
	var exitErr *ssh.ExitError
	var exitMissingErr *ssh.ExitMissingError

	return errors.As(err, &exitErr) || errors.As(err, &exitMissingErr)
}

// channelError distinguishes a refused channel on a live connection from a dead connection
func channelError(err error) error {
	var openErr *ssh.OpenChannelError
	if errors.As(err, &openErr) {
		return err
	}

	return fmt.Errorf("%w: %v", transport.ErrConnectionLost, err)
}

func runError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %v", transport.ErrConnectionLost, err)
}

func (s *remoteSession) Upload(ctx context.Context, localPath string, remotePath string, onProgress transport.ProgressFunc) error {
	logger := s.logger.WithFields(logging.Fields{
		"local":  localPath,
		"remote": remotePath,
	})
	logger.Debug("[Upload] Will upload file to remote host")

	cli := s.currentClient()
	if cli == nil {
		return transport.NewTransferError(localPath, remotePath, transport.ErrNotConnected)
	}

	local, err := s.fs.Open(localPath)
	if err != nil {
		return transport.NewTransferError(localPath, remotePath, fmt.Errorf("opening local file: %w", err))
	}
	defer local.Close()

	info, err := local.Stat()
	if err != nil {
		return transport.NewTransferError(localPath, remotePath, fmt.Errorf("reading local file info: %w", err))
	}

	if info.IsDir() {
		return transport.NewTransferError(localPath, remotePath, errors.New("local path is a directory"))
	}

	remote, err := cli.CreateFile(remotePath)
	if err != nil {
		return transport.NewTransferError(localPath, remotePath, fmt.Errorf("creating remote file: %w", err))
	}

	err = s.copyWithProgress(ctx, remote, local, info.Size(), onProgress)
	closeErr := remote.Close()

	if err != nil {
		return transport.NewTransferError(localPath, remotePath, err)
	}

	if closeErr != nil {
		return transport.NewTransferError(localPath, remotePath, fmt.Errorf("closing remote file: %w", closeErr))
	}

	logger.
		WithField("bytes", info.Size()).
		Debug("[Upload] File uploaded")

	return nil
}

func (s *remoteSession) copyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, total int64, onProgress transport.ProgressFunc) error {
	report := func(transferred int64) {
		if onProgress != nil {
			onProgress(transferred, total)
		}
	}

	buf := make([]byte, s.chunkSize)

	var transferred int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			_, err := dst.Write(buf[:n])
			if err != nil {
				return fmt.Errorf("writing remote file: %w", err)
			}

			transferred += int64(n)
			report(transferred)
		}

		if readErr == io.EOF {
			break
		}

		if readErr != nil {
			return fmt.Errorf("reading local file: %w", readErr)
		}
	}

	if transferred == 0 {
		report(0)
	}

	if transferred != total {
		return fmt.Errorf("local file changed during transfer: sent %d of %d bytes", transferred, total)
	}

	return nil
}

func (s *remoteSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	s.logger.Debug("[Close] Will disconnect from remote host")

	err := s.client.Disconnect()
	s.client = nil

	if err != nil {
		return fmt.Errorf("disconnecting from remote host: %w", err)
	}

	s.logger.Debug("[Close] Successfully disconnected from remote host")

	return nil
}
