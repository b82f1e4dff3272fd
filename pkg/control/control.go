// Package control provides the retained control model for host-rendered UI.
// A control owns a string-keyed attribute store describing its configuration;
// the host runtime reads attribute patches, renders the control natively, and
// sends string events back.
package control

import "errors"

// ErrDetached is returned when an operation requires the control to be
// attached to a session.
var ErrDetached = errors.New("control: not attached to a session")

// Control is a node in the retained control tree.
//
// Implementations embed [BaseControl], which provides the attribute store,
// children, event handler registration, and the attach lifecycle.
type Control interface {
	// ControlType returns the type identifier the host uses to select a
	// renderer (e.g. "carousel", "text").
	ControlType() string

	// ID returns the session-assigned control ID, or 0 when detached.
	ID() int64

	// Attrs returns the control's attribute store.
	Attrs() *AttrStore

	// Children returns the ordered child controls. Order is meaningful;
	// for paged controls it defines the page index.
	Children() []Control

	// HandleEvent delivers a host event to the control. The data payload
	// is an opaque string whose grammar is event-specific.
	HandleEvent(name, data string)

	// Attach is called by the session when the control joins a tree.
	Attach(id int64, updater Updater)

	// Detach is called by the session when the control leaves the tree.
	Detach()
}

// Updater flushes a control's pending attribute changes to the host.
// The session implements this; controls receive it on attach so that
// command methods can push their own updates.
type Updater interface {
	Update(Control) error
}
