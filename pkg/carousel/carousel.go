// Package carousel provides the carousel slider control.
//
// A Carousel holds an ordered list of page controls and serializes its
// configuration into string attributes the host renderer consumes (see
// package host). Navigation is command-based: AnimateToPage, NextPage,
// PreviousPage and JumpToPage encode one-shot requests into a reserved
// attribute, and the host reports what actually happened through the
// OnChange and OnScrolled callbacks. The carousel never assumes a command
// succeeded; the host's change events are the only source of truth for the
// current page.
package carousel

import (
	"sync/atomic"
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/control"
	"github.com/go-drift/carousel/pkg/host"
)

// ControlType is the type identifier the host uses to select the carousel
// renderer.
const ControlType = "carousel"

// Carousel is a paging slider over an ordered list of page controls.
//
// Configure it through the option setters, then attach it to a host session
// and call Update after batches of changes. The zero value is not usable;
// construct with New.
type Carousel struct {
	control.BaseControl

	token atomic.Int64

	// OnChange is called after the visible page settles on a new index,
	// whether the change came from a gesture, the auto-play timer or a
	// navigation command. Set it before attaching; it runs on the UI
	// thread via host.Dispatch. Assign nil to stop receiving.
	OnChange func(ChangeEvent)

	// OnScrolled is called continuously with the live scroll offset while
	// the carousel moves. Set it before attaching; it runs on the UI
	// thread via host.Dispatch. Assign nil to stop receiving.
	OnScrolled func(ScrolledEvent)
}

// New creates a carousel over the given pages, in order.
func New(pages ...control.Control) *Carousel {
	c := &Carousel{BaseControl: control.NewBase(ControlType)}
	c.SetChildren(pages)
	c.On(EventChange, c.handleChange)
	c.On(EventScrolled, c.handleScrolled)
	return c
}

// AnimateToPage smoothly scrolls to the page at index. A non-positive
// duration uses the 800ms default; the zero curve uses FastOutSlowIn.
func (c *Carousel) AnimateToPage(index int, duration time.Duration, curve animation.Curve) error {
	return c.sendCommand(Command{
		Target:   TargetPage,
		Index:    index,
		Duration: durationOr(duration, DefaultAnimateDuration),
		Curve:    curveNameOr(curve),
	})
}

// NextPage animates to the following page, wrapping when infinite scroll is
// enabled. A non-positive duration uses the 300ms default; the zero curve
// uses FastOutSlowIn.
func (c *Carousel) NextPage(duration time.Duration, curve animation.Curve) error {
	return c.sendCommand(Command{
		Target:   TargetNext,
		Duration: durationOr(duration, DefaultSlideDuration),
		Curve:    curveNameOr(curve),
	})
}

// PreviousPage animates to the preceding page, wrapping when infinite
// scroll is enabled. A non-positive duration uses the 300ms default; the
// zero curve uses FastOutSlowIn.
func (c *Carousel) PreviousPage(duration time.Duration, curve animation.Curve) error {
	return c.sendCommand(Command{
		Target:   TargetPrev,
		Duration: durationOr(duration, DefaultSlideDuration),
		Curve:    curveNameOr(curve),
	})
}

// JumpToPage snaps to the page at index without animating.
func (c *Carousel) JumpToPage(index int) error {
	return c.sendCommand(Command{Target: TargetJump, Index: index})
}

// sendCommand stamps the command with the next token, writes it to the
// command attribute and flushes. Commands are refused while detached so a
// later attach cannot replay them.
func (c *Carousel) sendCommand(cmd Command) error {
	if !c.Attached() {
		return control.ErrDetached
	}
	cmd.Token = c.token.Add(1)
	c.Attrs().Set(CommandAttr, cmd.Encode())
	return c.Update()
}

func (c *Carousel) handleChange(data string) {
	cb := c.OnChange
	if cb == nil {
		return
	}
	ev := ParseChangeEvent(data)
	host.Dispatch(func() { cb(ev) })
}

func (c *Carousel) handleScrolled(data string) {
	cb := c.OnScrolled
	if cb == nil {
		return
	}
	ev := ParseScrolledEvent(data)
	host.Dispatch(func() { cb(ev) })
}

func durationOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func curveNameOr(curve animation.Curve) string {
	if name := curve.Name(); name != "" {
		return name
	}
	return animation.FastOutSlowIn.Name()
}
