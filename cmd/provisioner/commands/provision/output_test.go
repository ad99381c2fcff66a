package provision

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/pipeline"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("simulated error")
}

func disableColorOutput(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })
}

func TestNewSink(t *testing.T) {
	tests := map[string]struct {
		format       string
		expectedSink interface{}
		expectError  bool
	}{
		"default is text": {format: "", expectedSink: new(textSink)},
		"text":            {format: OutputText, expectedSink: new(textSink)},
		"json":            {format: OutputJSON, expectedSink: new(jsonSink)},
		"unknown":         {format: "yaml", expectError: true},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			s, err := newSink(tt.format, new(bytes.Buffer))
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.expectedSink, s)
		})
	}
}

func TestTextSink_ReportProgressInBuckets(t *testing.T) {
	disableColorOutput(t)

	output := new(bytes.Buffer)
	s := newTextSink(output)

	for _, overall := range []float64{0, 0, 0.05, 0.1, 0.15, 0.3, 0.99, 1} {
		s.ReportProgress(pipeline.Progress{Step: pipeline.StepInstall, Overall: overall})
	}

	expected := "[  0%] install\n" +
		"[ 10%] install\n" +
		"[ 30%] install\n" +
		"[ 90%] install\n" +
		"[100%] install\n"
	assert.Equal(t, expected, output.String())
}

func TestTextSink_ReportResult(t *testing.T) {
	disableColorOutput(t)

	tests := map[string]struct {
		result   pipeline.Result
		expected string
	}{
		"completed with warnings": {
			result: pipeline.Result{
				State:      pipeline.StateCompleted,
				Platform:   platform.Classification{Tag: platform.RHELFamily},
				Warnings:   []error{pipeline.NewRemoteCommandWarning(pipeline.StepInstall, "rpm: warning\n")},
				Activation: transport.Output{Stdout: "license valid\n"},
			},
			expected: "warning: install reported errors:\nrpm: warning\n" +
				"Provisioning completed on a rhel-family host\n",
		},
		"aborted": {
			result: pipeline.Result{
				State:      pipeline.StateAborted,
				FailedStep: pipeline.StepUploadInstaller,
				Err:        errors.New("simulated error"),
			},
			expected: "Provisioning aborted at step upload-installer: simulated error\n",
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			output := new(bytes.Buffer)

			err := newTextSink(output).ReportResult(tt.result)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, output.String())
		})
	}
}

func TestSinks_StopWritingAfterFailure(t *testing.T) {
	disableColorOutput(t)

	for name, create := range map[string]func(w *failingWriter) sink{
		"text": func(w *failingWriter) sink { return newTextSink(w) },
		"json": func(w *failingWriter) sink { return newJSONSink(w) },
	} {
		t.Run(name, func(t *testing.T) {
			w := new(failingWriter)
			s := create(w)

			s.ReportMessage("first")
			s.ReportMessage("second")

			err := s.ReportResult(pipeline.Result{State: pipeline.StateCompleted})
			assert.Error(t, err)
			assert.Equal(t, 1, w.writes)
		})
	}
}

func TestJSONSink_ReportResultAborted(t *testing.T) {
	output := new(bytes.Buffer)

	err := newJSONSink(output).ReportResult(pipeline.Result{
		State:      pipeline.StateAborted,
		FailedStep: pipeline.StepConnect,
		Err:        errors.New("connection refused"),
	})
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"type":"result","state":"aborted","failed_step":"connect","error":"connection refused"}`,
		output.String(),
	)
}
