package host

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/carousel/pkg/control"
	"github.com/go-drift/carousel/pkg/errors"
)

// Session connects a retained control tree to a host rendering runtime. It
// assigns control IDs on attach, ships attribute patches through the bridge,
// and routes host events back to the owning controls.
//
// A session is the control side of the wire only: it never validates
// attribute values or waits for render acknowledgements. The host owns
// validation and failure behavior.
//
// All methods are safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	bridge   Bridge
	codec    MessageCodec
	controls map[int64]control.Control
	started  bool
	nextID   atomic.Int64
}

// NewSession creates a session over the given bridge using DefaultCodec.
func NewSession(bridge Bridge) *Session {
	return &Session{
		bridge:   bridge,
		codec:    DefaultCodec,
		controls: make(map[int64]control.Control),
	}
}

// SetCodec replaces the session's message codec. Call before Start; a nil
// codec is ignored.
func (s *Session) SetCodec(codec MessageCodec) {
	if codec == nil {
		return
	}
	s.mu.Lock()
	s.codec = codec
	s.mu.Unlock()
}

// Codec returns the session's message codec.
func (s *Session) Codec() MessageCodec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codec
}

// Start begins event delivery from the host. Calling Start on a started
// session is a no-op.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	bridge := s.bridge
	s.mu.Unlock()

	if bridge == nil {
		return ErrBridgeUnavailable
	}
	if err := bridge.StartEvents(s); err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		errors.Report(&errors.BindError{
			Op:   "session.Start",
			Kind: errors.KindTransport,
			Err:  err,
		})
		return err
	}
	return nil
}

// Close stops event delivery and detaches all controls. The bridge itself
// is not closed; the caller owns its lifecycle.
func (s *Session) Close() error {
	s.mu.Lock()
	bridge := s.bridge
	controls := s.controls
	s.controls = make(map[int64]control.Control)
	s.started = false
	s.mu.Unlock()

	for _, c := range controls {
		c.Detach()
	}
	if bridge == nil {
		return nil
	}
	return bridge.StopEvents()
}

// Attach joins a control tree to the session. Every control in the tree is
// assigned an ID, and the full tree is registered with the host in one
// message. On transport failure the tree is detached again and the error
// returned.
func (s *Session) Attach(root control.Control) error {
	if root == nil {
		return nil
	}
	if root.ID() != 0 {
		return ErrAlreadyAttached
	}

	s.attachTree(root)

	payload, err := s.encode("session.Attach", RegisterMessage{Root: BuildSpec(root)})
	if err != nil {
		s.detachTree(root)
		return err
	}
	if err := s.invoke(MethodRegister, payload); err != nil {
		s.detachTree(root)
		return err
	}

	// The register message carried the full snapshot; later updates ship
	// only changes made from here on.
	drainDirty(root)
	return nil
}

// Detach removes a control tree from the session and tells the host to drop
// its native state.
func (s *Session) Detach(root control.Control) error {
	if root == nil || root.ID() == 0 {
		return nil
	}

	ids := collectIDs(root, nil)
	s.detachTree(root)

	payload, err := s.encode("session.Detach", DetachMessage{IDs: ids})
	if err != nil {
		return err
	}
	return s.invoke(MethodDetach, payload)
}

// Update flushes pending attribute changes for a control and its attached
// descendants as a single patch message. A clean tree sends nothing.
//
// Update implements [control.Updater]; controls receive the session on
// attach and call this through their own Update method.
func (s *Session) Update(ctrl control.Control) error {
	if ctrl == nil || ctrl.ID() == 0 {
		return control.ErrDetached
	}

	patches := collectPatches(ctrl, nil)
	if len(patches) == 0 {
		return nil
	}

	payload, err := s.encode("session.Update", PatchMessage{Patches: patches})
	if err != nil {
		return err
	}
	return s.invoke(MethodPatch, payload)
}

// Control returns the attached control with the given ID, or nil.
func (s *Session) Control(id int64) control.Control {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controls[id]
}

// HandleEvent implements EventSink. It decodes a host event and delivers it
// to the addressed control. Panics escaping a control's handler are
// recovered and reported, never propagated into the transport.
func (s *Session) HandleEvent(payload []byte) error {
	s.mu.RLock()
	codec := s.codec
	s.mu.RUnlock()

	var msg EventMessage
	if err := codec.Decode(payload, &msg); err != nil {
		errors.Report(&errors.BindError{
			Op:   "session.HandleEvent",
			Kind: errors.KindCodec,
			Err:  err,
		})
		return err
	}

	s.mu.RLock()
	ctrl := s.controls[msg.ControlID]
	s.mu.RUnlock()
	if ctrl == nil {
		err := fmt.Errorf("%w: %d", ErrControlNotFound, msg.ControlID)
		errors.Report(&errors.BindError{
			Op:        "session.HandleEvent",
			Kind:      errors.KindSession,
			Channel:   msg.Name,
			ControlID: msg.ControlID,
			Err:       err,
		})
		return err
	}

	defer errors.Recover("session.dispatchEvent")
	ctrl.HandleEvent(msg.Name, msg.Data)
	return nil
}

// attachTree assigns IDs depth-first and hands each control the session as
// its updater.
func (s *Session) attachTree(c control.Control) {
	id := s.nextID.Add(1)
	s.mu.Lock()
	s.controls[id] = c
	s.mu.Unlock()
	c.Attach(id, s)

	for _, child := range c.Children() {
		if child.ID() == 0 {
			s.attachTree(child)
		}
	}
}

// detachTree removes a control and its descendants from the registry.
func (s *Session) detachTree(c control.Control) {
	for _, child := range c.Children() {
		s.detachTree(child)
	}
	id := c.ID()
	if id != 0 {
		s.mu.Lock()
		delete(s.controls, id)
		s.mu.Unlock()
	}
	c.Detach()
}

func (s *Session) encode(op string, v any) ([]byte, error) {
	s.mu.RLock()
	codec := s.codec
	s.mu.RUnlock()

	data, err := codec.Encode(v)
	if err != nil {
		errors.Report(&errors.BindError{
			Op:   op,
			Kind: errors.KindCodec,
			Err:  err,
		})
		return nil, err
	}
	return data, nil
}

func (s *Session) invoke(method string, payload []byte) error {
	s.mu.RLock()
	bridge := s.bridge
	s.mu.RUnlock()

	if bridge == nil {
		return ErrBridgeUnavailable
	}
	if _, err := bridge.Invoke(method, payload); err != nil {
		errors.Report(&errors.BindError{
			Op:      "host." + method,
			Kind:    errors.KindTransport,
			Channel: method,
			Err:     err,
		})
		return err
	}
	return nil
}

func collectIDs(c control.Control, out []int64) []int64 {
	if id := c.ID(); id != 0 {
		out = append(out, id)
	}
	for _, child := range c.Children() {
		out = collectIDs(child, out)
	}
	return out
}

func collectPatches(c control.Control, out []ControlPatch) []ControlPatch {
	if id := c.ID(); id != 0 {
		if attrs := c.Attrs().TakeDirty(); len(attrs) > 0 {
			out = append(out, ControlPatch{ID: id, Attrs: attrs})
		}
	}
	for _, child := range c.Children() {
		out = collectPatches(child, out)
	}
	return out
}

func drainDirty(c control.Control) {
	c.Attrs().TakeDirty()
	for _, child := range c.Children() {
		drainDirty(child)
	}
}
