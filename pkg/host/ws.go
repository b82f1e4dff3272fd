package host

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/go-drift/carousel/pkg/errors"
)

// wsFrame is the on-wire framing for WSBridge traffic. The frame itself is
// encoded with the bridge codec; Payload carries session-codec bytes opaque
// to the bridge.
type wsFrame struct {
	Type    string `json:"type" msgpack:"type"`
	CallID  string `json:"callId,omitempty" msgpack:"callId,omitempty"`
	Method  string `json:"method,omitempty" msgpack:"method,omitempty"`
	Session string `json:"session,omitempty" msgpack:"session,omitempty"`
	Codec   string `json:"codec,omitempty" msgpack:"codec,omitempty"`
	Payload []byte `json:"payload,omitempty" msgpack:"payload,omitempty"`
	Error   string `json:"error,omitempty" msgpack:"error,omitempty"`
}

// Frame types exchanged with a WebSocket host.
const (
	wsFrameHello  = "hello"
	wsFrameInvoke = "invoke"
	wsFrameResult = "result"
	wsFrameEvent  = "event"
)

// wsCall is an invoke waiting for the host's result frame.
type wsCall struct {
	done   chan struct{}
	result []byte
	err    error
}

// WSOptions configure DialWS. The zero value uses msgpack framing and a
// 10 second call timeout.
type WSOptions struct {
	// Codec frames bridge traffic. Defaults to MsgpackCodec. JSON framing
	// switches the connection to text messages.
	Codec MessageCodec

	// CallTimeout bounds each Invoke round-trip. Defaults to 10 seconds.
	CallTimeout time.Duration

	// Header is passed through to the WebSocket handshake.
	Header http.Header
}

// WSBridge is a Bridge over a WebSocket connection to a host runtime.
//
// Invoke frames carry a call ID that the host echoes in its result frame;
// calls are correlated through a pending table, so invokes from multiple
// goroutines can be in flight at once. Event frames are pushed to the sink
// registered via StartEvents.
type WSBridge struct {
	conn      *websocket.Conn
	codec     MessageCodec
	msgType   websocket.MessageType
	sessionID string
	timeout   time.Duration
	cancel    context.CancelFunc

	writeMu sync.Mutex

	mu      sync.Mutex
	sink    EventSink
	pending map[string]*wsCall
	closed  bool
}

// DialWS connects to a WebSocket host runtime and announces the session
// with a hello frame. The returned bridge is ready for NewSession.
func DialWS(ctx context.Context, url string, opts *WSOptions) (*WSBridge, error) {
	if opts == nil {
		opts = &WSOptions{}
	}
	codec := opts.Codec
	if codec == nil {
		codec = MsgpackCodec{}
	}
	timeout := opts.CallTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPHeader: opts.Header,
	})
	if err != nil {
		return nil, fmt.Errorf("host: dial %s: %w", url, err)
	}

	msgType := websocket.MessageBinary
	if codec.Name() == "json" {
		msgType = websocket.MessageText
	}

	b := &WSBridge{
		conn:      conn,
		codec:     codec,
		msgType:   msgType,
		sessionID: uuid.New().String(),
		timeout:   timeout,
		pending:   make(map[string]*wsCall),
	}

	if err := b.writeFrame(ctx, &wsFrame{
		Type:    wsFrameHello,
		Session: b.sessionID,
		Codec:   codec.Name(),
	}); err != nil {
		conn.Close(websocket.StatusProtocolError, "hello failed")
		return nil, fmt.Errorf("host: hello: %w", err)
	}

	readCtx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	go b.readLoop(readCtx)

	return b, nil
}

// SessionID returns the unique ID announced to the host in the hello frame.
func (b *WSBridge) SessionID() string {
	return b.sessionID
}

// Invoke implements Bridge. It sends an invoke frame and blocks until the
// host's result frame arrives or the call timeout elapses.
func (b *WSBridge) Invoke(method string, payload []byte) ([]byte, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	call := &wsCall{done: make(chan struct{})}
	callID := uuid.New().String()
	b.pending[callID] = call
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	if err := b.writeFrame(ctx, &wsFrame{
		Type:    wsFrameInvoke,
		CallID:  callID,
		Method:  method,
		Payload: payload,
	}); err != nil {
		b.takePending(callID)
		return nil, err
	}

	select {
	case <-call.done:
		return call.result, call.err
	case <-ctx.Done():
		b.takePending(callID)
		return nil, fmt.Errorf("host: %s: %w", method, ctx.Err())
	}
}

// StartEvents implements Bridge. The host streams events for the lifetime
// of the connection; StartEvents gates delivery to the sink.
func (b *WSBridge) StartEvents(sink EventSink) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.sink = sink
	return nil
}

// StopEvents implements Bridge.
func (b *WSBridge) StopEvents() error {
	b.mu.Lock()
	b.sink = nil
	b.mu.Unlock()
	return nil
}

// Close tears down the connection. Pending invokes fail with ErrClosed.
// Close is idempotent.
func (b *WSBridge) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.sink = nil
	b.mu.Unlock()

	b.cancel()
	b.failPending(ErrClosed)
	return b.conn.Close(websocket.StatusNormalClosure, "")
}

func (b *WSBridge) writeFrame(ctx context.Context, frame *wsFrame) error {
	data, err := b.codec.Encode(frame)
	if err != nil {
		return fmt.Errorf("host: encode frame: %w", err)
	}
	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	return b.conn.Write(ctx, b.msgType, data)
}

// readLoop is the connection's single reader. It completes pending calls
// from result frames and forwards event frames to the sink.
func (b *WSBridge) readLoop(ctx context.Context) {
	for {
		_, data, err := b.conn.Read(ctx)
		if err != nil {
			b.failPending(ErrClosed)
			if ctx.Err() == nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				errors.Report(&errors.BindError{
					Op:      "wsbridge.read",
					Kind:    errors.KindTransport,
					Channel: b.sessionID,
					Err:     err,
				})
			}
			return
		}

		var frame wsFrame
		if err := b.codec.Decode(data, &frame); err != nil {
			errors.Report(&errors.BindError{
				Op:      "wsbridge.read",
				Kind:    errors.KindCodec,
				Channel: b.sessionID,
				Err:     err,
			})
			continue
		}

		switch frame.Type {
		case wsFrameResult:
			call := b.takePending(frame.CallID)
			if call == nil {
				continue
			}
			if frame.Error != "" {
				call.err = fmt.Errorf("host: %s", frame.Error)
			} else {
				call.result = frame.Payload
			}
			close(call.done)

		case wsFrameEvent:
			b.mu.Lock()
			sink := b.sink
			b.mu.Unlock()
			if sink != nil {
				sink.HandleEvent(frame.Payload)
			}
		}
	}
}

// takePending removes and returns a pending call, or nil when the call was
// already completed or abandoned.
func (b *WSBridge) takePending(callID string) *wsCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	call := b.pending[callID]
	delete(b.pending, callID)
	return call
}

// failPending completes every pending call with err and stops accepting
// new invokes.
func (b *WSBridge) failPending(err error) {
	b.mu.Lock()
	pending := b.pending
	b.pending = make(map[string]*wsCall)
	b.closed = true
	b.mu.Unlock()

	for _, call := range pending {
		call.err = err
		close(call.done)
	}
}
