package errors

import (
	"strings"
	"testing"
	"time"
)

func TestBindErrorString(t *testing.T) {
	err := &BindError{
		Op:   "test.operation",
		Kind: KindTransport,
		Err:  &ParseError{Channel: "test", DataType: "TestData", Got: "invalid"},
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestBindErrorWithChannel(t *testing.T) {
	err := &BindError{
		Op:      "test.operation",
		Kind:    KindParsing,
		Channel: "change",
		Err:     &ParseError{Channel: "change", DataType: "ChangeEvent", Got: nil},
	}
	got := err.Error()
	if !strings.Contains(got, "channel=change") {
		t.Errorf("error string %q should contain %q", got, "channel=change")
	}
}

func TestBindErrorWithControlID(t *testing.T) {
	err := &BindError{
		Op:        "session.dispatchEvent",
		Kind:      KindSession,
		ControlID: 7,
		Err:       &ParseError{Channel: "scrolled", DataType: "ScrolledEvent", Got: 42},
	}
	got := err.Error()
	if !strings.Contains(got, "control=7") {
		t.Errorf("error string %q should contain %q", got, "control=7")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindTransport, "transport"},
		{KindCodec, "codec"},
		{KindParsing, "parsing"},
		{KindSession, "session"},
		{KindInit, "init"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "session.dispatchEvent",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in session.dispatchEvent: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *BindError
	handler := &testHandler{
		onError: func(err *BindError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&BindError{
		Op:   "test.op",
		Kind: KindInit,
		Err:  &ParseError{Channel: "test", DataType: "Test", Got: nil},
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{
		Value:     "test panic value",
		Timestamp: time.Now(),
	})

	if capturedPanic == nil {
		t.Fatal("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError func(*BindError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *BindError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
