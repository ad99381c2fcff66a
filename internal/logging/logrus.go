package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields
type Formatter = logrus.Formatter

var formatters = map[string]func(colors bool) Formatter{
	FormatText:       newTextFormatter,
	FormatTextSimple: newTextSimpleFormatter,
	FormatJSON:       newJSONFormatter,
}

// output is shared by a root logger and every logger derived from it
type output struct {
	format string
	colors bool
}

type logrusLogger struct {
	*logrus.Entry

	logger *logrus.Logger
	output *output
}

func newLogrus() Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(os.Stderr)

	l := &logrusLogger{
		Entry:  logger.WithField("PID", os.Getpid()),
		logger: logger,
		output: &output{format: FormatText, colors: true},
	}
	l.applyFormatter()

	return l
}

func (l *logrusLogger) derive(entry *logrus.Entry) Logger {
	return &logrusLogger{
		Entry:  entry,
		logger: l.logger,
		output: l.output,
	}
}

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return l.derive(l.Entry.WithField(key, value))
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return l.derive(l.Entry.WithFields(fields))
}

func (l *logrusLogger) WithError(err error) Logger {
	return l.derive(l.Entry.WithError(err))
}

func (l *logrusLogger) SetLevel(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("couldn't parse log level: %w", err)
	}

	l.logger.SetLevel(logLevel)

	return nil
}

func (l *logrusLogger) SetFormat(logFormat string) error {
	if _, ok := formatters[logFormat]; !ok {
		return fmt.Errorf("unsupported logging format %q", logFormat)
	}

	l.output.format = logFormat
	l.applyFormatter()

	return nil
}

func (l *logrusLogger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)

	l.output.colors = w == os.Stderr
	l.applyFormatter()
}

func (l *logrusLogger) applyFormatter() {
	l.logger.SetFormatter(formatters[l.output.format](l.output.colors))
}

func newJSONFormatter(_ bool) Formatter {
	return new(logrus.JSONFormatter)
}

func newTextFormatter(colors bool) Formatter {
	formatter := new(logrus.TextFormatter)
	formatter.FullTimestamp = true
	formatter.ForceColors = colors
	formatter.DisableColors = !colors

	return formatter
}

func newTextSimpleFormatter(_ bool) Formatter {
	formatter := new(logrus.TextFormatter)
	formatter.DisableColors = true

	return formatter
}
