package pipeline

// Progress is a snapshot of the run progress. StepFraction covers the current
// step only (upload progress); Overall covers the whole run.
type Progress struct {
	Step         Step
	StepFraction float64
	Overall      float64
}

// Reporter receives the progress and the human readable messages of a run,
// in emission order, from the goroutine executing the run
type Reporter interface {
	ReportProgress(progress Progress)
	ReportMessage(message string)
}

type nopReporter struct{}

func (nopReporter) ReportProgress(Progress) {}
func (nopReporter) ReportMessage(string)    {}

type EventKind int

const (
	EventProgress EventKind = iota
	EventMessage
)

// Event is a Reporter call carried over a channel
type Event struct {
	Kind     EventKind
	Progress Progress
	Message  string
}

// Dispatch replays the event on sink
func (e Event) Dispatch(sink Reporter) {
	switch e.Kind {
	case EventProgress:
		sink.ReportProgress(e.Progress)
	case EventMessage:
		sink.ReportMessage(e.Message)
	}
}

// ChannelReporter forwards the reports to a channel so they can be consumed
// on another goroutine with Await. Reports block while the buffer is full.
type ChannelReporter struct {
	events chan Event
}

func NewChannelReporter(buffer int) *ChannelReporter {
	return &ChannelReporter{events: make(chan Event, buffer)}
}

func (r *ChannelReporter) ReportProgress(progress Progress) {
	r.events <- Event{Kind: EventProgress, Progress: progress}
}

func (r *ChannelReporter) ReportMessage(message string) {
	r.events <- Event{Kind: EventMessage, Message: message}
}

func (r *ChannelReporter) Events() <-chan Event {
	return r.events
}

// Await dispatches events to sink on the calling goroutine until the result
// arrives. Events emitted before the result are always dispatched before
// Await returns.
func Await(results <-chan Result, events <-chan Event, sink Reporter) Result {
	for {
		select {
		case event := <-events:
			event.Dispatch(sink)
		case result := <-results:
			drain(events, sink)
			return result
		}
	}
}

func drain(events <-chan Event, sink Reporter) {
	for {
		select {
		case event := <-events:
			event.Dispatch(sink)
		default:
			return
		}
	}
}
