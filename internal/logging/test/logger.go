package test

import (
	"bytes"
	"fmt"
	"io"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
)

func NewNullLogger() logging.Logger {
	logger := logging.New()
	_ = logger.SetFormat(logging.FormatTextSimple)
	logger.SetOutput(io.Discard)

	return logger
}

// NewBufferedLogger returns a debug level logger writing into an in-memory buffer
func NewBufferedLogger() (logging.Logger, fmt.Stringer) {
	buf := new(bytes.Buffer)

	logger := logging.New()
	_ = logger.SetFormat(logging.FormatTextSimple)
	_ = logger.SetLevel("debug")
	logger.SetOutput(buf)

	return logger, buf
}
