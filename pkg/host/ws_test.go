package host

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wsTestServer starts a host stand-in whose handler drives one accepted
// connection. The returned URL is ready for DialWS.
func wsTestServer(t *testing.T, handle func(ctx context.Context, conn *websocket.Conn)) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()
		handle(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readTestFrame(ctx context.Context, conn *websocket.Conn, codec MessageCodec) (wsFrame, websocket.MessageType, error) {
	typ, data, err := conn.Read(ctx)
	if err != nil {
		return wsFrame{}, typ, err
	}
	var frame wsFrame
	err = codec.Decode(data, &frame)
	return frame, typ, err
}

func writeTestFrame(ctx context.Context, conn *websocket.Conn, codec MessageCodec, frame wsFrame) error {
	data, err := codec.Encode(frame)
	if err != nil {
		return err
	}
	typ := websocket.MessageBinary
	if codec.Name() == "json" {
		typ = websocket.MessageText
	}
	return conn.Write(ctx, typ, data)
}

// chanSink collects event payloads for assertions.
type chanSink struct {
	ch chan []byte
}

func (s *chanSink) HandleEvent(payload []byte) error {
	s.ch <- payload
	return nil
}

func TestDialWS_SendsHello(t *testing.T) {
	codec := MsgpackCodec{}
	hellos := make(chan wsFrame, 1)
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		frame, _, err := readTestFrame(ctx, conn, codec)
		if err != nil {
			return
		}
		hellos <- frame
		conn.Read(ctx)
	})

	b, err := DialWS(context.Background(), url, nil)
	require.NoError(t, err)
	defer b.Close()

	select {
	case frame := <-hellos:
		assert.Equal(t, wsFrameHello, frame.Type)
		assert.Equal(t, "msgpack", frame.Codec)
		assert.Equal(t, b.SessionID(), frame.Session)
		assert.NotEmpty(t, frame.Session)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the hello frame")
	}
}

func TestWSBridge_InvokeRoundTrip(t *testing.T) {
	codec := MsgpackCodec{}
	methods := make(chan string, 4)
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		for {
			frame, _, err := readTestFrame(ctx, conn, codec)
			if err != nil {
				return
			}
			if frame.Type != wsFrameInvoke {
				continue
			}
			methods <- frame.Method
			writeTestFrame(ctx, conn, codec, wsFrame{
				Type:    wsFrameResult,
				CallID:  frame.CallID,
				Payload: frame.Payload,
			})
		}
	})

	b, err := DialWS(context.Background(), url, nil)
	require.NoError(t, err)
	defer b.Close()

	result, err := b.Invoke(MethodPatch, []byte("payload-bytes"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload-bytes"), result)
	assert.Equal(t, MethodPatch, <-methods)
}

func TestWSBridge_InvokeHostError(t *testing.T) {
	codec := MsgpackCodec{}
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		for {
			frame, _, err := readTestFrame(ctx, conn, codec)
			if err != nil {
				return
			}
			if frame.Type != wsFrameInvoke {
				continue
			}
			writeTestFrame(ctx, conn, codec, wsFrame{
				Type:   wsFrameResult,
				CallID: frame.CallID,
				Error:  "carousel not registered",
			})
		}
	})

	b, err := DialWS(context.Background(), url, nil)
	require.NoError(t, err)
	defer b.Close()

	result, err := b.Invoke(MethodRegister, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carousel not registered")
	assert.Nil(t, result)
}

func TestWSBridge_InvokeTimeout(t *testing.T) {
	codec := MsgpackCodec{}
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		for {
			if _, _, err := readTestFrame(ctx, conn, codec); err != nil {
				return
			}
		}
	})

	b, err := DialWS(context.Background(), url, &WSOptions{CallTimeout: 100 * time.Millisecond})
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Invoke(MethodPatch, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// The server pushes the event before the invoke result, so delivery is
// ordered: once Invoke returns, the sink has already seen the event.
func TestWSBridge_EventsReachSink(t *testing.T) {
	codec := MsgpackCodec{}
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		for {
			frame, _, err := readTestFrame(ctx, conn, codec)
			if err != nil {
				return
			}
			if frame.Type != wsFrameInvoke {
				continue
			}
			writeTestFrame(ctx, conn, codec, wsFrame{
				Type:    wsFrameEvent,
				Payload: []byte("event-payload"),
			})
			writeTestFrame(ctx, conn, codec, wsFrame{
				Type:   wsFrameResult,
				CallID: frame.CallID,
			})
		}
	})

	b, err := DialWS(context.Background(), url, nil)
	require.NoError(t, err)
	defer b.Close()

	sink := &chanSink{ch: make(chan []byte, 4)}
	require.NoError(t, b.StartEvents(sink))

	_, err = b.Invoke(MethodPatch, nil)
	require.NoError(t, err)

	select {
	case payload := <-sink.ch:
		assert.Equal(t, []byte("event-payload"), payload)
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the sink")
	}

	// After StopEvents the same sequence must deliver nothing.
	require.NoError(t, b.StopEvents())
	_, err = b.Invoke(MethodPatch, nil)
	require.NoError(t, err)
	select {
	case payload := <-sink.ch:
		t.Fatalf("event delivered after StopEvents: %q", payload)
	default:
	}
}

func TestWSBridge_JSONFraming(t *testing.T) {
	codec := JSONCodec{}
	types := make(chan websocket.MessageType, 1)
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		frame, typ, err := readTestFrame(ctx, conn, codec)
		if err != nil || frame.Type != wsFrameHello {
			return
		}
		types <- typ
		for {
			frame, _, err := readTestFrame(ctx, conn, codec)
			if err != nil {
				return
			}
			if frame.Type != wsFrameInvoke {
				continue
			}
			writeTestFrame(ctx, conn, codec, wsFrame{
				Type:    wsFrameResult,
				CallID:  frame.CallID,
				Payload: frame.Payload,
			})
		}
	})

	b, err := DialWS(context.Background(), url, &WSOptions{Codec: codec})
	require.NoError(t, err)
	defer b.Close()

	result, err := b.Invoke(MethodPatch, []byte(`{"patches":[]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"patches":[]}`, string(result))

	select {
	case typ := <-types:
		assert.Equal(t, websocket.MessageText, typ, "json framing should use text messages")
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the hello frame")
	}
}

func TestWSBridge_CloseFailsPendingInvoke(t *testing.T) {
	codec := MsgpackCodec{}
	invoked := make(chan struct{})
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		for {
			frame, _, err := readTestFrame(ctx, conn, codec)
			if err != nil {
				return
			}
			if frame.Type == wsFrameInvoke {
				close(invoked)
			}
		}
	})

	b, err := DialWS(context.Background(), url, &WSOptions{CallTimeout: 5 * time.Second})
	require.NoError(t, err)

	errs := make(chan error, 1)
	go func() {
		_, err := b.Invoke(MethodPatch, nil)
		errs <- err
	}()

	select {
	case <-invoked:
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the invoke frame")
	}
	require.NoError(t, b.Close())

	select {
	case err := <-errs:
		require.ErrorIs(t, err, ErrClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("pending invoke did not fail after Close")
	}
}

func TestWSBridge_CloseIsIdempotent(t *testing.T) {
	codec := MsgpackCodec{}
	url := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		for {
			if _, _, err := readTestFrame(ctx, conn, codec); err != nil {
				return
			}
		}
	})

	b, err := DialWS(context.Background(), url, nil)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, err = b.Invoke(MethodPatch, nil)
	require.ErrorIs(t, err, ErrClosed)

	require.ErrorIs(t, b.StartEvents(&chanSink{ch: make(chan []byte, 1)}), ErrClosed)
}
