package session

import (
	"context"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// Session is a single command channel opened on an SSH connection
type Session interface {
	Run(ctx context.Context, command string) error
	Close()
}

func New(s *ssh.Session) Session {
	return &defaultSession{
		internal: s,
	}
}

type defaultSession struct {
	internal *ssh.Session
}

func (s *defaultSession) Run(ctx context.Context, command string) error {
	waitErr := make(chan error, 1)

	go func() {
		waitErr <- s.internal.Run(command)
	}()

	select {
	case err := <-waitErr:
		return err
	case <-ctx.Done():
		err := s.internal.Signal(ssh.SIGINT)
		if err != nil {
			return fmt.Errorf("interrupting SSH command: %w", err)
		}

		return ctx.Err()
	}
}

func (s *defaultSession) Close() {
	_ = s.internal.Close()
}
