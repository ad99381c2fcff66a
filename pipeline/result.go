package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

// ErrRunInProgress is returned when a run is requested while another one is in flight
var ErrRunInProgress = errors.New("a provisioning run is already in progress")

// RemoteCommandWarning is reported when a remote command wrote to stderr. It
// never aborts a run.
type RemoteCommandWarning struct {
	Step   Step
	Stderr string
}

func NewRemoteCommandWarning(step Step, stderr string) *RemoteCommandWarning {
	return &RemoteCommandWarning{Step: step, Stderr: stderr}
}

func (w *RemoteCommandWarning) Error() string {
	return fmt.Sprintf("%s reported errors:\n%s", w.Step, strings.TrimRight(w.Stderr, "\n"))
}

func (w *RemoteCommandWarning) Is(err error) bool {
	_, ok := err.(*RemoteCommandWarning)
	return ok
}

type State int

const (
	StateCompleted State = iota
	StateAborted
)

func (s State) String() string {
	if s == StateCompleted {
		return "completed"
	}

	return "aborted"
}

// Result is the terminal state of a run
type Result struct {
	State State

	// FailedStep and Err are set when the run aborted
	FailedStep Step
	Err        error

	Platform   platform.Classification
	Warnings   []error
	Activation transport.Output
}

func (r Result) Completed() bool {
	return r.State == StateCompleted
}
