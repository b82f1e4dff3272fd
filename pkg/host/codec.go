// Package host provides the attribute/event channel between a retained
// control tree and the host rendering runtime. A session ships attribute
// patches to the host over a bridge transport and routes the host's string
// events back to the owning controls.
package host

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// MessageCodec encodes and decodes protocol messages for transmission to
// the host runtime.
type MessageCodec interface {
	// Name identifies the codec on the wire ("json", "msgpack").
	Name() string

	// Encode converts a protocol message to bytes.
	Encode(v any) ([]byte, error)

	// Decode converts bytes received from the host into a protocol message.
	// Empty input leaves v untouched.
	Decode(data []byte, v any) error
}

// JSONCodec implements MessageCodec using JSON encoding.
// JSON prioritizes interoperability and readable wire traffic.
type JSONCodec struct{}

// Name returns "json".
func (JSONCodec) Name() string { return "json" }

// Encode serializes the value to JSON bytes.
func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode deserializes JSON bytes into v.
func (JSONCodec) Decode(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// MsgpackCodec implements MessageCodec using MessagePack encoding.
// MessagePack keeps frames compact for attribute-heavy patch traffic.
type MsgpackCodec struct{}

// Name returns "msgpack".
func (MsgpackCodec) Name() string { return "msgpack" }

// Encode serializes the value to MessagePack bytes.
func (MsgpackCodec) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode deserializes MessagePack bytes into v.
func (MsgpackCodec) Decode(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return msgpack.Unmarshal(data, v)
}

// DefaultCodec is the codec used by new sessions.
var DefaultCodec MessageCodec = JSONCodec{}

// CodecByName resolves a codec by its wire name. Used when the codec comes
// from configuration.
func CodecByName(name string) (MessageCodec, bool) {
	switch name {
	case "json":
		return JSONCodec{}, true
	case "msgpack":
		return MsgpackCodec{}, true
	}
	return nil, false
}
