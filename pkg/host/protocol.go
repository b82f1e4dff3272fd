package host

import "github.com/go-drift/carousel/pkg/control"

// Method names for protocol messages sent through a Bridge.
const (
	MethodRegister = "register"
	MethodPatch    = "patch"
	MethodDetach   = "detach"
)

// ControlSpec describes one control in a register message: its session ID,
// type identifier, full attribute snapshot, and children in page order.
type ControlSpec struct {
	ID       int64             `json:"id" msgpack:"id"`
	Type     string            `json:"type" msgpack:"type"`
	Attrs    map[string]string `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Children []ControlSpec     `json:"children,omitempty" msgpack:"children,omitempty"`
}

// RegisterMessage announces a newly attached control tree to the host.
type RegisterMessage struct {
	Root ControlSpec `json:"root" msgpack:"root"`
}

// ControlPatch carries the changed attributes of one control. A key with an
// empty value means the attribute was removed.
type ControlPatch struct {
	ID    int64             `json:"id" msgpack:"id"`
	Attrs map[string]string `json:"attrs" msgpack:"attrs"`
}

// PatchMessage carries attribute changes for one or more controls.
type PatchMessage struct {
	Patches []ControlPatch `json:"patches" msgpack:"patches"`
}

// DetachMessage tells the host to drop controls and their native state.
type DetachMessage struct {
	IDs []int64 `json:"ids" msgpack:"ids"`
}

// EventMessage is a host event addressed to a control. The data payload is
// an opaque string whose grammar is event-specific; controls own the parse.
type EventMessage struct {
	ControlID int64  `json:"controlId" msgpack:"controlId"`
	Name      string `json:"name" msgpack:"name"`
	Data      string `json:"data" msgpack:"data"`
}

// BuildSpec builds the ControlSpec tree for an attached control and its
// descendants.
func BuildSpec(c control.Control) ControlSpec {
	spec := ControlSpec{
		ID:    c.ID(),
		Type:  c.ControlType(),
		Attrs: c.Attrs().Snapshot(),
	}
	for _, child := range c.Children() {
		spec.Children = append(spec.Children, BuildSpec(child))
	}
	return spec
}
