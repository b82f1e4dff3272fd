package control

import "sync"

// BaseControl provides the common Control implementation. Concrete controls
// embed it and add typed option accessors over the attribute store:
//
//	type Badge struct {
//		control.BaseControl
//	}
//
//	func NewBadge() *Badge {
//		return &Badge{BaseControl: control.NewBase("badge")}
//	}
//
// All methods are safe for concurrent use.
type BaseControl struct {
	controlType string
	attrs       *AttrStore

	mu       sync.RWMutex
	id       int64
	updater  Updater
	children []Control
	handlers map[string]func(data string)
}

// NewBase creates the embeddable base for a control of the given type.
func NewBase(controlType string) BaseControl {
	return BaseControl{
		controlType: controlType,
		attrs:       NewAttrStore(),
	}
}

// ControlType returns the type identifier the host uses to select a renderer.
func (b *BaseControl) ControlType() string {
	return b.controlType
}

// ID returns the session-assigned control ID, or 0 when detached.
func (b *BaseControl) ID() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.id
}

// Attached reports whether the control is currently part of a session tree.
func (b *BaseControl) Attached() bool {
	return b.ID() != 0
}

// Attrs returns the control's attribute store.
func (b *BaseControl) Attrs() *AttrStore {
	return b.attrs
}

// Children returns the ordered child controls.
func (b *BaseControl) Children() []Control {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.children) == 0 {
		return nil
	}
	out := make([]Control, len(b.children))
	copy(out, b.children)
	return out
}

// SetChildren replaces the child controls. Order is meaningful.
func (b *BaseControl) SetChildren(children []Control) {
	b.mu.Lock()
	b.children = children
	b.mu.Unlock()
}

// On registers a handler for a named host event, replacing any previous
// handler for that name. A nil handler deregisters.
func (b *BaseControl) On(name string, handler func(data string)) {
	b.mu.Lock()
	if handler == nil {
		delete(b.handlers, name)
	} else {
		if b.handlers == nil {
			b.handlers = make(map[string]func(data string))
		}
		b.handlers[name] = handler
	}
	b.mu.Unlock()
}

// HandleEvent delivers a host event to the registered handler, if any.
// Events with no handler are dropped.
func (b *BaseControl) HandleEvent(name, data string) {
	b.mu.RLock()
	handler := b.handlers[name]
	b.mu.RUnlock()
	if handler != nil {
		handler(data)
	}
}

// Attach is called by the session when the control joins a tree.
func (b *BaseControl) Attach(id int64, updater Updater) {
	b.mu.Lock()
	b.id = id
	b.updater = updater
	b.mu.Unlock()
}

// Detach is called by the session when the control leaves the tree.
func (b *BaseControl) Detach() {
	b.mu.Lock()
	b.id = 0
	b.updater = nil
	b.mu.Unlock()
}

// Update flushes the control's pending attribute changes to the host.
// Returns ErrDetached when the control is not attached to a session.
func (b *BaseControl) Update() error {
	b.mu.RLock()
	updater := b.updater
	b.mu.RUnlock()
	if updater == nil {
		return ErrDetached
	}
	return updater.Update(b)
}
