package signal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
)

// InterruptedError is the cancellation cause of the handler context
type InterruptedError struct {
	Signal os.Signal
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("interrupted by %v", e.Signal)
}

func (e *InterruptedError) Is(err error) bool {
	_, ok := err.(*InterruptedError)
	return ok
}

// TerminationHandler cancels its context on SIGINT or SIGTERM. A provisioning
// run that already started is not interrupted by it.
type TerminationHandler struct {
	ctx      context.Context
	cancelFn context.CancelCauseFunc
	logger   logging.Logger
	stopCh   chan os.Signal
}

func NewTerminationHandler(logger logging.Logger) *TerminationHandler {
	ctx, cancelFn := context.WithCancelCause(context.Background())

	return &TerminationHandler{
		ctx:      ctx,
		cancelFn: cancelFn,
		logger:   logger,
		stopCh:   make(chan os.Signal, 1),
	}
}

func (th *TerminationHandler) Context() context.Context {
	return th.ctx
}

func (th *TerminationHandler) HandleSignals() {
	signal.Notify(th.stopCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(th.stopCh)

	sig := <-th.stopCh
	th.logger.
		WithField("signal", sig).
		Warning("Received exit signal; a running provisioning will still finish")

	th.cancelFn(&InterruptedError{Signal: sig})
}
