// Package errors provides structured error handling for the carousel binding.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTransport indicates a host bridge or transport error.
	KindTransport
	// KindCodec indicates a protocol message encode/decode failure.
	KindCodec
	// KindParsing indicates an event payload parsing failure.
	KindParsing
	// KindSession indicates a control session error.
	KindSession
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindCodec:
		return "codec"
	case KindParsing:
		return "parsing"
	case KindSession:
		return "session"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BindError represents a structured error in the binding layer.
type BindError struct {
	// Op is the operation that failed (e.g., "host.SendPatch").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the event channel name, if applicable.
	Channel string
	// ControlID is the affected control, if applicable (0 when not).
	ControlID int64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	switch {
	case e.Channel != "" && e.ControlID != 0:
		return fmt.Sprintf("%s [%s] channel=%s control=%d: %v", e.Op, e.Kind, e.Channel, e.ControlID, e.Err)
	case e.Channel != "":
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	case e.ControlID != 0:
		return fmt.Sprintf("%s [%s] control=%d: %v", e.Op, e.Kind, e.ControlID, e.Err)
	default:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "session.dispatchEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to decode message data.
type ParseError struct {
	// Channel is the channel that received the message.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// ErrorHandler receives errors reported by the binding layer.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
