package dashboard

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	// EventToggle signals that a flag's enabled state changed.
	EventToggle EventKind = "toggle"
	// EventFilter signals that the filter selection changed.
	EventFilter EventKind = "filter"
	// EventRetry signals that loading and error state were cleared.
	EventRetry EventKind = "retry"
)

// Event notifies subscribers that the controller state changed and the
// derived views should be re-read. Silent no-ops (unknown toggle ids,
// setters that change nothing) produce no event.
type Event struct {
	Kind EventKind `json:"kind"`
	// FlagID is set for toggle events only.
	FlagID string `json:"flag_id,omitempty"`
}
