package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLogger_SetLevel(t *testing.T) {
	tests := map[string]struct {
		level         string
		expectedError bool
		debugVisible  bool
	}{
		"debug level": {
			level:        "debug",
			debugVisible: true,
		},
		"warning level": {
			level:        "warning",
			debugVisible: false,
		},
		"unknown level": {
			level:         "verbose",
			expectedError: true,
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			buf := new(bytes.Buffer)

			logger := New()
			logger.SetOutput(buf)

			err := logger.SetLevel(tt.level)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			logger.Debug("debug line")
			assert.Equal(t, tt.debugVisible, bytes.Contains(buf.Bytes(), []byte("debug line")))
		})
	}
}

func TestLogrusLogger_SetFormat(t *testing.T) {
	buf := new(bytes.Buffer)

	logger := New()
	logger.SetOutput(buf)

	assert.Error(t, logger.SetFormat("xml"))
	require.NoError(t, logger.SetFormat(FormatJSON))

	logger.
		WithField("host", "10.0.0.1").
		Info("connected")

	assert.Contains(t, buf.String(), `"host":"10.0.0.1"`)
	assert.Contains(t, buf.String(), `"msg":"connected"`)
}

func TestLogrusLogger_SetOutputDisablesColors(t *testing.T) {
	buf := new(bytes.Buffer)

	logger := New()
	derived := logger.WithField("host", "10.0.0.1")

	logger.SetOutput(buf)
	derived.Warning("host key changed")

	assert.Contains(t, buf.String(), "host key changed")
	assert.NotContains(t, buf.String(), "\x1b[", "Colours should be disabled outside of stderr")
}
