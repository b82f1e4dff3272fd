package carousel

import (
	"strconv"
	"strings"
)

// Event names emitted by the host for carousel controls.
const (
	// EventChange fires when the visible page settles on a new index.
	EventChange = "change"

	// EventScrolled fires continuously while the carousel scrolls.
	EventScrolled = "scrolled"
)

// ChangeReason records what drove a page change.
type ChangeReason string

const (
	// ReasonTimed marks a change made by the auto-play timer.
	ReasonTimed ChangeReason = "timed"

	// ReasonManual marks a change made by a user gesture.
	ReasonManual ChangeReason = "manual"

	// ReasonController marks a change made by a navigation command.
	ReasonController ChangeReason = "controller"
)

// ChangeEvent describes a settled page change.
type ChangeEvent struct {
	// Index is the zero-based index of the page now visible.
	Index int

	// Reason is what drove the change.
	Reason ChangeReason
}

// ScrolledEvent describes the live scroll position.
type ScrolledEvent struct {
	// Offset is the scroll position in page units.
	Offset float64
}

// ParseChangeEvent decodes a raw "<index>:<reason>" payload. The parse is
// total: an empty payload yields {0, ReasonManual}, a malformed index
// degrades to 0, and a missing or unrecognized reason degrades to
// ReasonManual. Segments past the second are ignored.
func ParseChangeEvent(data string) ChangeEvent {
	if data == "" {
		data = "0:manual"
	}
	parts := strings.Split(data, ":")

	ev := ChangeEvent{Reason: ReasonManual}
	if index, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		ev.Index = index
	}
	if len(parts) > 1 {
		switch r := ChangeReason(parts[1]); r {
		case ReasonTimed, ReasonManual, ReasonController:
			ev.Reason = r
		}
	}
	return ev
}

// ParseScrolledEvent decodes a raw scroll offset payload. Empty or malformed
// payloads degrade to offset 0.
func ParseScrolledEvent(data string) ScrolledEvent {
	offset, err := strconv.ParseFloat(strings.TrimSpace(data), 64)
	if err != nil {
		return ScrolledEvent{}
	}
	return ScrolledEvent{Offset: offset}
}
