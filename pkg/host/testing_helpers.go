package host

import "sync"

// RecordedCall is one bridge invocation captured by RecordingBridge.
type RecordedCall struct {
	Method  string
	Payload []byte
}

// RecordingBridge is a Bridge that captures protocol traffic for assertions
// and lets tests push synthetic host events through the registered sink.
// The zero value is ready to use.
type RecordingBridge struct {
	mu    sync.Mutex
	sink  EventSink
	calls []RecordedCall
}

func (b *RecordingBridge) Invoke(method string, payload []byte) ([]byte, error) {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	b.mu.Lock()
	b.calls = append(b.calls, RecordedCall{Method: method, Payload: cp})
	b.mu.Unlock()
	return nil, nil
}

func (b *RecordingBridge) StartEvents(sink EventSink) error {
	b.mu.Lock()
	b.sink = sink
	b.mu.Unlock()
	return nil
}

func (b *RecordingBridge) StopEvents() error {
	b.mu.Lock()
	b.sink = nil
	b.mu.Unlock()
	return nil
}

// Calls returns the captured invocations for a method, or all invocations
// when method is empty.
func (b *RecordingBridge) Calls(method string) []RecordedCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []RecordedCall
	for _, c := range b.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears the captured invocations.
func (b *RecordingBridge) Reset() {
	b.mu.Lock()
	b.calls = b.calls[:0]
	b.mu.Unlock()
}

// EmitEvent encodes a synthetic host event with the given codec and pushes
// it through the registered sink, simulating the host runtime.
func (b *RecordingBridge) EmitEvent(codec MessageCodec, controlID int64, name, data string) error {
	b.mu.Lock()
	sink := b.sink
	b.mu.Unlock()
	if sink == nil {
		return ErrNoEventSink
	}

	payload, err := codec.Encode(EventMessage{
		ControlID: controlID,
		Name:      name,
		Data:      data,
	})
	if err != nil {
		return err
	}
	return sink.HandleEvent(payload)
}

// SetupTestBridge creates a started session over a RecordingBridge with a
// synchronous dispatch function. The cleanup function should be
// testing.T.Cleanup or equivalent; it registers a teardown that calls
// ResetForTest.
//
//	session, bridge := host.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) (*Session, *RecordingBridge) {
	bridge := &RecordingBridge{}
	session := NewSession(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	session.Start()
	return session, bridge
}

// ResetForTest clears global package state (the UI dispatch hook) for test
// isolation. This should only be called from tests.
func ResetForTest() {
	dispatchMu.Lock()
	dispatchFunc = nil
	dispatchMu.Unlock()
}
