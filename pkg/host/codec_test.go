package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodecs() []MessageCodec {
	return []MessageCodec{JSONCodec{}, MsgpackCodec{}}
}

func TestCodec_PatchRoundTrip(t *testing.T) {
	msg := PatchMessage{Patches: []ControlPatch{{
		ID: 3,
		Attrs: map[string]string{
			"autoPlay":   "true",
			"__animateTo": "2:500:easeIn:7",
		},
	}}}

	for _, codec := range allCodecs() {
		t.Run(codec.Name(), func(t *testing.T) {
			data, err := codec.Encode(msg)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			var got PatchMessage
			require.NoError(t, codec.Decode(data, &got))
			assert.Equal(t, msg, got)
		})
	}
}

func TestCodec_RegisterRoundTripKeepsTree(t *testing.T) {
	msg := RegisterMessage{Root: ControlSpec{
		ID:    1,
		Type:  "carousel",
		Attrs: map[string]string{"viewportFraction": "0.8"},
		Children: []ControlSpec{
			{ID: 2, Type: "text", Attrs: map[string]string{"value": "first"}},
			{ID: 3, Type: "text"},
		},
	}}

	for _, codec := range allCodecs() {
		t.Run(codec.Name(), func(t *testing.T) {
			data, err := codec.Encode(msg)
			require.NoError(t, err)

			var got RegisterMessage
			require.NoError(t, codec.Decode(data, &got))
			assert.Equal(t, msg, got)
		})
	}
}

func TestCodec_EventRoundTrip(t *testing.T) {
	msg := EventMessage{ControlID: 9, Name: "change", Data: "3:timed"}

	for _, codec := range allCodecs() {
		t.Run(codec.Name(), func(t *testing.T) {
			data, err := codec.Encode(msg)
			require.NoError(t, err)

			var got EventMessage
			require.NoError(t, codec.Decode(data, &got))
			assert.Equal(t, msg, got)
		})
	}
}

// Empty input is a keep-alive, not a message; decoding it must leave the
// target untouched.
func TestCodec_DecodeEmptyLeavesTargetUntouched(t *testing.T) {
	for _, codec := range allCodecs() {
		t.Run(codec.Name(), func(t *testing.T) {
			got := EventMessage{ControlID: 4, Name: "scrolled", Data: "0.5"}
			want := got
			require.NoError(t, codec.Decode(nil, &got))
			require.NoError(t, codec.Decode([]byte{}, &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestCodecByName(t *testing.T) {
	for _, name := range []string{"json", "msgpack"} {
		codec, ok := CodecByName(name)
		require.True(t, ok, "codec %q not found", name)
		assert.Equal(t, name, codec.Name())
	}

	_, ok := CodecByName("protobuf")
	assert.False(t, ok)
}

func TestDefaultCodecIsJSON(t *testing.T) {
	assert.Equal(t, "json", DefaultCodec.Name())
}
