package provision

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/encoding"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/pipeline"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// sink renders what a command produced for the operator
type sink interface {
	pipeline.Reporter

	// ReportResult returns the first write error met since the sink was created
	ReportResult(result pipeline.Result) error
	ReportClassification(host string, classification platform.Classification) error
}

func newSink(format string, w io.Writer) (sink, error) {
	switch format {
	case "", OutputText:
		return newTextSink(w), nil
	case OutputJSON:
		return newJSONSink(w), nil
	}

	return nil, fmt.Errorf("unsupported output format %q", format)
}

// textSink prints the overall progress in 10% buckets. Command output already
// arrives as messages, so the result only adds warnings and the outcome.
type textSink struct {
	w   io.Writer
	err error

	lastBucket int
}

func newTextSink(w io.Writer) *textSink {
	return &textSink{w: w, lastBucket: -1}
}

func (s *textSink) printf(c *color.Color, format string, args ...interface{}) {
	if s.err != nil {
		return
	}

	if c == nil {
		_, s.err = fmt.Fprintf(s.w, format+"\n", args...)
		return
	}

	_, s.err = c.Fprintf(s.w, format+"\n", args...)
}

func (s *textSink) ReportProgress(progress pipeline.Progress) {
	bucket := int(math.Floor(progress.Overall * 10))
	if bucket <= s.lastBucket {
		return
	}
	s.lastBucket = bucket

	s.printf(color.New(color.FgCyan), "[%3d%%] %s", bucket*10, progress.Step)
}

func (s *textSink) ReportMessage(message string) {
	s.printf(nil, "%s", message)
}

func (s *textSink) ReportResult(result pipeline.Result) error {
	for _, warning := range result.Warnings {
		s.printf(color.New(color.FgYellow), "warning: %v", warning)
	}

	if result.Completed() {
		s.printf(color.New(color.FgGreen, color.Bold), "Provisioning completed on a %s host", result.Platform.Tag)
		return s.err
	}

	s.printf(color.New(color.FgRed, color.Bold), "Provisioning aborted at step %s: %v", result.FailedStep, result.Err)

	return s.err
}

func (s *textSink) ReportClassification(host string, classification platform.Classification) error {
	s.printf(color.New(color.FgGreen), "%s: %s", host, classification.Tag)

	if classification.FallbackReason != nil {
		s.printf(color.New(color.FgYellow), "fallback reason: %v", classification.FallbackReason)
	}

	return s.err
}

type jsonEvent struct {
	Type string `json:"type"`

	Step         string   `json:"step,omitempty"`
	StepFraction *float64 `json:"step_fraction,omitempty"`
	Overall      *float64 `json:"overall,omitempty"`

	Message string `json:"message,omitempty"`

	Host           string   `json:"host,omitempty"`
	State          string   `json:"state,omitempty"`
	FailedStep     string   `json:"failed_step,omitempty"`
	Error          string   `json:"error,omitempty"`
	Platform       string   `json:"platform,omitempty"`
	FallbackReason string   `json:"fallback_reason,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	Activation     string   `json:"activation,omitempty"`
}

// jsonSink writes one JSON document per line
type jsonSink struct {
	w       io.Writer
	encoder encoding.Encoder
	err     error
}

func newJSONSink(w io.Writer) *jsonSink {
	return &jsonSink{w: w, encoder: encoding.NewJSON()}
}

func (s *jsonSink) write(event jsonEvent) {
	if s.err != nil {
		return
	}

	s.err = s.encoder.Encode(event, s.w)
}

func (s *jsonSink) ReportProgress(progress pipeline.Progress) {
	s.write(jsonEvent{
		Type:         "progress",
		Step:         progress.Step.String(),
		StepFraction: &progress.StepFraction,
		Overall:      &progress.Overall,
	})
}

func (s *jsonSink) ReportMessage(message string) {
	s.write(jsonEvent{Type: "message", Message: message})
}

func (s *jsonSink) ReportResult(result pipeline.Result) error {
	event := jsonEvent{
		Type:       "result",
		State:      result.State.String(),
		Platform:   result.Platform.Tag.String(),
		Activation: result.Activation.Combined(),
	}

	if result.Platform.FallbackReason != nil {
		event.FallbackReason = result.Platform.FallbackReason.Error()
	}

	for _, warning := range result.Warnings {
		event.Warnings = append(event.Warnings, warning.Error())
	}

	if !result.Completed() {
		event.FailedStep = result.FailedStep.String()
		event.Error = result.Err.Error()
	}

	s.write(event)

	return s.err
}

func (s *jsonSink) ReportClassification(host string, classification platform.Classification) error {
	event := jsonEvent{
		Type:     "classification",
		Host:     host,
		Platform: classification.Tag.String(),
	}

	if classification.FallbackReason != nil {
		event.FallbackReason = classification.FallbackReason.Error()
	}

	s.write(event)

	return s.err
}
