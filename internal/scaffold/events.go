package scaffold

// EventType classifies the structured progress events the orchestrator
// emits. The vocabulary is closed; sinks decide presentation.
type EventType string

const (
	// EventCreatedFile reports a file written to disk.
	EventCreatedFile EventType = "created-file"

	// EventCreatedDir reports a directory created on disk.
	EventCreatedDir EventType = "created-dir"

	// EventDryRunFile reports a file that a real run would write.
	EventDryRunFile EventType = "dry-run-file"

	// EventDryRunDir reports a directory that a real run would create.
	EventDryRunDir EventType = "dry-run-dir"

	// EventWarning reports a non-fatal failure attached to a kind and step.
	EventWarning EventType = "warning"

	// EventAborted reports the terminal aborted state.
	EventAborted EventType = "aborted"

	// EventCompleted reports the terminal completed state.
	EventCompleted EventType = "completed"
)

// Event is one structured progress notification.
type Event struct {
	// Type classifies the event.
	Type EventType

	// Path is the filesystem path the event concerns, when it concerns
	// one.
	Path string

	// Kind is the template kind in progress, inside the per-kind loop.
	Kind string

	// Step labels the orchestration step, mainly for warnings.
	Step string

	// Detail carries free-form context: a reason, planned commands, or
	// captured error text.
	Detail string
}

// Sink receives orchestration events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f.
func (f SinkFunc) Emit(e Event) { f(e) }
