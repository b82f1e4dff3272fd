package host

import "errors"

// Sentinel errors for host channel operations.
var (
	// ErrBridgeUnavailable is returned when no transport to the host is bound.
	ErrBridgeUnavailable = errors.New("host: bridge unavailable")

	// ErrClosed is returned when operating on a closed bridge or session.
	ErrClosed = errors.New("host: closed")

	// ErrControlNotFound is returned when a host event addresses a control
	// the session does not know.
	ErrControlNotFound = errors.New("host: control not found")

	// ErrAlreadyAttached is returned when attaching a control that is
	// already part of a session tree.
	ErrAlreadyAttached = errors.New("host: control already attached")

	// ErrNoEventSink is returned when a synthetic event is emitted with no
	// sink listening.
	ErrNoEventSink = errors.New("host: no event sink registered")
)
