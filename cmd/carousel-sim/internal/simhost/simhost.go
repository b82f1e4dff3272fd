// Package simhost provides an in-process host runtime stand-in for the
// carousel simulator. It implements host.Bridge, keeps the host-side view of
// the registered control tree, executes navigation commands with the shared
// animation curves, runs the auto-play timer, and pushes change and scrolled
// events back through the session — the same wire contract a production
// renderer would honor, minus the actual drawing.
package simhost

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/host"
)

// controlState is the host-side record of one registered control.
type controlState struct {
	id       int64
	ctype    string
	attrs    map[string]string
	children []*controlState
}

func (c *controlState) attr(key string) string {
	return c.attrs[key]
}

func (c *controlState) boolAttr(key string, def bool) bool {
	switch c.attrs[key] {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

func (c *controlState) intAttr(key string, def int) int {
	v, err := strconv.Atoi(c.attrs[key])
	if err != nil {
		return def
	}
	return v
}

// slide is an in-flight page animation.
type slide struct {
	from   float64
	to     float64
	start  time.Time
	dur    time.Duration
	curve  animation.Curve
	reason carousel.ChangeReason
}

// Host simulates the host side of the attribute/event channel. Attach a
// session over it, then call Step from the frame loop to advance animations
// and auto-play.
//
// All methods are safe for concurrent use.
type Host struct {
	mu    sync.Mutex
	codec host.MessageCodec
	sink  host.EventSink

	controls map[int64]*controlState
	root     *controlState
	car      *controlState

	position   float64
	anim       *slide
	pending    *carousel.Command
	lastCmd    string
	nextPlayAt time.Time
}

// New creates a host simulator speaking the given codec. The codec must
// match the session's.
func New(codec host.MessageCodec) *Host {
	return &Host{
		codec:    codec,
		controls: make(map[int64]*controlState),
	}
}

// Invoke implements host.Bridge.
func (h *Host) Invoke(method string, payload []byte) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch method {
	case host.MethodRegister:
		var msg host.RegisterMessage
		if err := h.codec.Decode(payload, &msg); err != nil {
			return nil, fmt.Errorf("simhost: register: %w", err)
		}
		h.register(msg.Root)

	case host.MethodPatch:
		var msg host.PatchMessage
		if err := h.codec.Decode(payload, &msg); err != nil {
			return nil, fmt.Errorf("simhost: patch: %w", err)
		}
		for _, patch := range msg.Patches {
			h.applyPatch(patch)
		}

	case host.MethodDetach:
		var msg host.DetachMessage
		if err := h.codec.Decode(payload, &msg); err != nil {
			return nil, fmt.Errorf("simhost: detach: %w", err)
		}
		for _, id := range msg.IDs {
			h.drop(id)
		}

	default:
		return nil, fmt.Errorf("simhost: unknown method %q", method)
	}
	return nil, nil
}

// StartEvents implements host.Bridge.
func (h *Host) StartEvents(sink host.EventSink) error {
	h.mu.Lock()
	h.sink = sink
	h.mu.Unlock()
	return nil
}

// StopEvents implements host.Bridge.
func (h *Host) StopEvents() error {
	h.mu.Lock()
	h.sink = nil
	h.mu.Unlock()
	return nil
}

func (h *Host) register(spec host.ControlSpec) {
	h.root = h.index(spec)
	h.car = h.findByType(h.root, carousel.ControlType)
	if h.car != nil {
		h.position = float64(h.car.intAttr("initialPage", 0))
		h.lastCmd = h.car.attr(carousel.CommandAttr)
	}
}

func (h *Host) index(spec host.ControlSpec) *controlState {
	cs := &controlState{
		id:    spec.ID,
		ctype: spec.Type,
		attrs: make(map[string]string, len(spec.Attrs)),
	}
	for k, v := range spec.Attrs {
		cs.attrs[k] = v
	}
	for _, child := range spec.Children {
		cs.children = append(cs.children, h.index(child))
	}
	h.controls[cs.id] = cs
	return cs
}

func (h *Host) findByType(cs *controlState, ctype string) *controlState {
	if cs == nil {
		return nil
	}
	if cs.ctype == ctype {
		return cs
	}
	for _, child := range cs.children {
		if found := h.findByType(child, ctype); found != nil {
			return found
		}
	}
	return nil
}

// applyPatch merges changed attributes; an empty value removes the key. A
// changed command attribute on the carousel queues a navigation, executed on
// the next Step. Repeating the same command string is ignored, which is
// exactly why the control stamps commands with a token.
func (h *Host) applyPatch(patch host.ControlPatch) {
	cs := h.controls[patch.ID]
	if cs == nil {
		return
	}
	for k, v := range patch.Attrs {
		if v == "" {
			delete(cs.attrs, k)
		} else {
			cs.attrs[k] = v
		}
	}

	if cs != h.car {
		return
	}
	if raw, ok := patch.Attrs[carousel.CommandAttr]; ok && raw != "" && raw != h.lastCmd {
		h.lastCmd = raw
		if cmd, err := carousel.ParseCommand(raw); err == nil {
			h.pending = &cmd
		}
	}
}

func (h *Host) drop(id int64) {
	if cs, ok := h.controls[id]; ok {
		delete(h.controls, id)
		if cs == h.car {
			h.car = nil
			h.anim = nil
			h.pending = nil
		}
		if cs == h.root {
			h.root = nil
		}
	}
}

// Step advances the simulation to now: it starts a queued command, moves the
// in-flight animation, and fires auto-play when its deadline passes. Events
// produced by the step are pushed through the session before Step returns.
func (h *Host) Step(now time.Time) {
	h.mu.Lock()
	var events []host.EventMessage

	if h.car != nil {
		if h.pending != nil {
			cmd := *h.pending
			h.pending = nil
			events = h.beginCommand(now, cmd, events)
		}
		events = h.advance(now, events)
		events = h.autoPlay(now, events)
	}

	sink := h.sink
	codec := h.codec
	h.mu.Unlock()

	// Deliver outside the lock: handlers may call back into the session.
	if sink == nil {
		return
	}
	for _, ev := range events {
		payload, err := codec.Encode(ev)
		if err != nil {
			continue
		}
		sink.HandleEvent(payload)
	}
}

func (h *Host) beginCommand(now time.Time, cmd carousel.Command, events []host.EventMessage) []host.EventMessage {
	current := math.Round(h.position)
	var target float64
	switch cmd.Target {
	case carousel.TargetNext:
		target = current + 1
	case carousel.TargetPrev:
		target = current - 1
	case carousel.TargetJump:
		h.anim = nil
		h.position = h.resolveTarget(float64(cmd.Index))
		h.deferAutoPlay(now)
		return append(events, h.changeEvent(carousel.ReasonController))
	default:
		target = float64(cmd.Index)
	}

	h.startSlide(now, h.resolveTarget(target), cmd.Duration, cmd.AnimationCurve(), carousel.ReasonController)
	h.deferAutoPlay(now)
	return events
}

// resolveTarget maps a requested page onto the track. Finite carousels clamp
// out-of-range targets; infinite ones pick the closest equivalent copy when
// animateToClosest is set, matching how a real renderer treats the wrapped
// page list.
func (h *Host) resolveTarget(target float64) float64 {
	count := len(h.car.children)
	if count == 0 {
		return 0
	}
	if !h.car.boolAttr("enableInfiniteScroll", true) {
		return math.Min(math.Max(target, 0), float64(count-1))
	}
	if !h.car.boolAttr("animateToClosest", true) {
		return target
	}
	// Closest copy of the target page to the current position.
	n := float64(count)
	base := math.Floor(h.position/n) * n
	best := base + math.Mod(math.Mod(target, n)+n, n)
	for _, cand := range []float64{best - n, best + n} {
		if math.Abs(cand-h.position) < math.Abs(best-h.position) {
			best = cand
		}
	}
	return best
}

func (h *Host) startSlide(now time.Time, to float64, dur time.Duration, curve animation.Curve, reason carousel.ChangeReason) {
	if dur <= 0 {
		dur = carousel.DefaultSlideDuration
	}
	h.anim = &slide{
		from:   h.position,
		to:     to,
		start:  now,
		dur:    dur,
		curve:  curve,
		reason: reason,
	}
}

func (h *Host) advance(now time.Time, events []host.EventMessage) []host.EventMessage {
	if h.anim == nil {
		return events
	}
	a := h.anim

	t := float64(now.Sub(a.start)) / float64(a.dur)
	if t >= 1 {
		h.anim = nil
		h.position = a.to
		events = append(events, h.scrolledEvent())
		events = append(events, h.changeEvent(a.reason))
		h.deferAutoPlay(now)
		return events
	}
	if t < 0 {
		t = 0
	}
	prev := h.position
	h.position = a.from + (a.to-a.from)*a.curve.At(t)
	if h.position != prev {
		events = append(events, h.scrolledEvent())
	}
	return events
}

func (h *Host) autoPlay(now time.Time, events []host.EventMessage) []host.EventMessage {
	if h.anim != nil || !h.car.boolAttr("autoPlay", false) {
		return events
	}
	if h.nextPlayAt.IsZero() {
		h.deferAutoPlay(now)
		return events
	}
	if now.Before(h.nextPlayAt) {
		return events
	}

	count := len(h.car.children)
	if count == 0 {
		return events
	}
	atEnd := int(math.Round(h.position)) >= count-1
	infinite := h.car.boolAttr("enableInfiniteScroll", true)
	if !infinite && atEnd {
		if h.car.boolAttr("pauseAutoPlayInFiniteScroll", false) {
			h.deferAutoPlay(now)
			return events
		}
		// Restart from the first page.
		h.startSlide(now, 0, h.playDuration(), h.playCurve(), carousel.ReasonTimed)
		return events
	}

	h.startSlide(now, h.resolveTarget(math.Round(h.position)+1), h.playDuration(), h.playCurve(), carousel.ReasonTimed)
	return events
}

func (h *Host) playDuration() time.Duration {
	ms := h.car.intAttr("autoPlayAnimationDuration", int(carousel.DefaultAutoPlayDuration.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}

func (h *Host) playCurve() animation.Curve {
	return animation.CurveByName(h.car.attr("autoPlayCurve"))
}

func (h *Host) deferAutoPlay(now time.Time) {
	ms := h.car.intAttr("autoPlayInterval", int(carousel.DefaultAutoPlayInterval.Milliseconds()))
	h.nextPlayAt = now.Add(time.Duration(ms) * time.Millisecond)
}

// Swipe simulates a user drag by whole pages. It is ignored while gestures
// are disabled; a touch pauses auto-play when the carousel asks for that.
func (h *Host) Swipe(pages int, now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.car == nil || pages == 0 {
		return
	}
	if h.car.boolAttr("disableGesture", false) {
		return
	}
	if h.car.boolAttr("pauseAutoPlayOnTouch", true) {
		h.deferAutoPlay(now)
	}
	target := h.resolveTarget(math.Round(h.position) + float64(pages))
	h.startSlide(now, target, carousel.DefaultSlideDuration, animation.FastOutSlowIn, carousel.ReasonManual)
}

func (h *Host) changeEvent(reason carousel.ChangeReason) host.EventMessage {
	return host.EventMessage{
		ControlID: h.car.id,
		Name:      carousel.EventChange,
		Data:      fmt.Sprintf("%d:%s", h.pageIndex(), reason),
	}
}

func (h *Host) scrolledEvent() host.EventMessage {
	return host.EventMessage{
		ControlID: h.car.id,
		Name:      carousel.EventScrolled,
		Data:      fmt.Sprintf("%g", h.position),
	}
}

// pageIndex folds the continuous track position back onto the page list.
func (h *Host) pageIndex() int {
	count := len(h.car.children)
	if count == 0 {
		return 0
	}
	i := int(math.Round(h.position)) % count
	if i < 0 {
		i += count
	}
	return i
}

// PageState describes one carousel page for rendering.
type PageState struct {
	// Label is the page's text content, or its image source.
	Label string

	// Color is the page's color attribute as stored, if any.
	Color string
}

// State is a render snapshot of the simulated carousel.
type State struct {
	// Attached reports whether a carousel control is registered.
	Attached bool

	// Position is the continuous track position in page units.
	Position float64

	// CurrentPage is Position folded onto the page list.
	CurrentPage int

	// Pages lists the registered pages in order.
	Pages []PageState

	// Animating reports whether a slide is in flight.
	Animating bool

	// AutoPlay reports whether the auto-play timer is on.
	AutoPlay bool

	// Options is the carousel's current attribute snapshot.
	Options map[string]string
}

// Snapshot returns the current render state.
func (h *Host) Snapshot() State {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.car == nil {
		return State{}
	}
	st := State{
		Attached:    true,
		Position:    h.position,
		CurrentPage: h.pageIndex(),
		Animating:   h.anim != nil,
		AutoPlay:    h.car.boolAttr("autoPlay", false),
		Options:     make(map[string]string, len(h.car.attrs)),
	}
	for k, v := range h.car.attrs {
		st.Options[k] = v
	}
	for _, child := range h.car.children {
		page := PageState{Color: child.attr("color")}
		switch child.ctype {
		case "image":
			page.Label = child.attr("src")
		default:
			page.Label = child.attr("value")
		}
		st.Pages = append(st.Pages, page)
	}
	return st
}
