package host

// EventSink receives encoded host events. Session implements it; bridges
// deliver each inbound event payload to the sink registered via StartEvents.
type EventSink interface {
	// HandleEvent delivers one encoded EventMessage from the host.
	HandleEvent(payload []byte) error
}

// Bridge is the transport between a session and the host rendering runtime.
// Payloads are opaque to the bridge; the session encodes and decodes them.
//
// Implementations must be safe for concurrent use.
type Bridge interface {
	// Invoke sends an encoded protocol message to the host and returns the
	// host's encoded response, if any.
	Invoke(method string, payload []byte) ([]byte, error)

	// StartEvents asks the host to begin delivering control events to sink.
	StartEvents(sink EventSink) error

	// StopEvents stops event delivery.
	StopEvents() error
}
