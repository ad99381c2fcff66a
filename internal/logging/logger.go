// Package logging wraps logrus behind the small Logger interface used across the provisioner
package logging

import (
	"io"
)

const (
	FormatText       = "text"
	FormatTextSimple = "text-simple"
	FormatJSON       = "json"
)

type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warning(args ...interface{})
	Error(args ...interface{})

	SetLevel(level string) error
	SetFormat(logFormat string) error

	// SetOutput disables the colours of the text format unless w is the
	// standard error stream
	SetOutput(w io.Writer)
}

func New() Logger {
	return newLogrus()
}
