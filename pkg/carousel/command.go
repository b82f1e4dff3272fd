package carousel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/carousel/pkg/animation"
)

// CommandAttr is the reserved attribute key carrying navigation commands.
// The host watches it for changes and executes each new value exactly once.
const CommandAttr = "__animateTo"

// Target identifies the destination of a navigation command.
type Target int

const (
	// TargetPage animates to the page at Command.Index.
	TargetPage Target = iota

	// TargetNext animates to the following page.
	TargetNext

	// TargetPrev animates to the preceding page.
	TargetPrev

	// TargetJump snaps to the page at Command.Index without animating.
	TargetJump
)

// Wire sentinels for command targets.
const (
	wireNext = "__next"
	wirePrev = "__prev"
	wireJump = "__jump"
	wireNone = "none"
)

// Command is a one-shot navigation request. It rides the CommandAttr
// attribute as "<index|__next|__prev|__jump>:<duration>:<curve|none>:<token>";
// the trailing token makes back-to-back identical requests distinct, because
// the channel forwards only changed attribute values and would otherwise
// drop the repeat.
type Command struct {
	// Target is the navigation kind.
	Target Target

	// Index is the destination page for TargetPage and TargetJump.
	Index int

	// Duration is the animation length. Unused by TargetJump.
	Duration time.Duration

	// Curve is the easing identifier from the animation catalog. Unused by
	// TargetJump.
	Curve string

	// Token is the per-control monotonic counter value.
	Token int64
}

// Encode renders the command into its wire form. Jump commands carry the
// index in the duration slot: "__jump:<index>:none:<token>".
func (c Command) Encode() string {
	switch c.Target {
	case TargetNext:
		return fmt.Sprintf("%s:%d:%s:%d", wireNext, c.Duration.Milliseconds(), c.Curve, c.Token)
	case TargetPrev:
		return fmt.Sprintf("%s:%d:%s:%d", wirePrev, c.Duration.Milliseconds(), c.Curve, c.Token)
	case TargetJump:
		return fmt.Sprintf("%s:%d:%s:%d", wireJump, c.Index, wireNone, c.Token)
	default:
		return fmt.Sprintf("%d:%d:%s:%d", c.Index, c.Duration.Milliseconds(), c.Curve, c.Token)
	}
}

// ParseCommand decodes a wire command. It is the host-side counterpart of
// Encode, used by host runtimes and tests; unlike the event parsers it
// reports malformed input instead of degrading.
func ParseCommand(s string) (Command, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return Command{}, fmt.Errorf("carousel: command %q: want 4 segments, got %d", s, len(parts))
	}

	token, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Command{}, fmt.Errorf("carousel: command %q: bad token: %w", s, err)
	}

	cmd := Command{Token: token}
	switch parts[0] {
	case wireNext:
		cmd.Target = TargetNext
	case wirePrev:
		cmd.Target = TargetPrev
	case wireJump:
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			return Command{}, fmt.Errorf("carousel: command %q: bad jump index: %w", s, err)
		}
		cmd.Target = TargetJump
		cmd.Index = index
		return cmd, nil
	default:
		index, err := strconv.Atoi(parts[0])
		if err != nil {
			return Command{}, fmt.Errorf("carousel: command %q: bad target: %w", s, err)
		}
		cmd.Target = TargetPage
		cmd.Index = index
	}

	ms, err := strconv.Atoi(parts[1])
	if err != nil {
		return Command{}, fmt.Errorf("carousel: command %q: bad duration: %w", s, err)
	}
	cmd.Duration = time.Duration(ms) * time.Millisecond
	if parts[2] != wireNone {
		cmd.Curve = parts[2]
	}
	return cmd, nil
}

// AnimationCurve resolves the command's curve identifier, falling back to
// the carousel default for jump commands and unknown identifiers.
func (c Command) AnimationCurve() animation.Curve {
	return animation.CurveByName(c.Curve)
}
