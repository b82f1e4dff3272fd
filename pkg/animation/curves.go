// Package animation provides the easing curve catalog shared by the
// carousel control and the host.
//
// Each curve pairs a stable wire identifier (the string the host renderer
// understands, e.g. "fastOutSlowIn") with an easing function mapping
// progress t in [0, 1] to eased progress. The control only ships the
// identifier; the functions exist so hosts and previews can reproduce the
// motion locally.
package animation

import (
	"math"
	"slices"
)

// Curve pairs a wire identifier with its easing function.
//
// The zero value has an empty name and linear easing; APIs that accept a
// Curve treat it as "use the default".
type Curve struct {
	name string
	fn   func(float64) float64
}

// NewCurve creates a custom named curve. The name is sent to the host
// verbatim, so it must be an identifier the host renderer understands.
func NewCurve(name string, fn func(float64) float64) Curve {
	return Curve{name: name, fn: fn}
}

// Name returns the wire identifier of the curve.
func (c Curve) Name() string {
	return c.name
}

// IsZero reports whether the curve is the unset zero value.
func (c Curve) IsZero() bool {
	return c.name == "" && c.fn == nil
}

// At returns the eased progress for t in [0, 1].
func (c Curve) At(t float64) float64 {
	if c.fn == nil {
		return t
	}
	return c.fn(t)
}

// The curve catalog understood by the host renderer.
var (
	Linear        = Curve{"linear", func(t float64) float64 { return t }}
	EaseIn        = Curve{"easeIn", CubicBezier(0.42, 0.0, 1.0, 1.0)}
	EaseOut       = Curve{"easeOut", CubicBezier(0.0, 0.0, 0.58, 1.0)}
	EaseInOut     = Curve{"easeInOut", CubicBezier(0.42, 0.0, 0.58, 1.0)}
	BounceIn      = Curve{"bounceIn", bounceIn}
	BounceOut     = Curve{"bounceOut", bounceOut}
	ElasticIn     = Curve{"elasticIn", elastic(-1)}
	ElasticOut    = Curve{"elasticOut", elastic(1)}
	Decelerate    = Curve{"decelerate", decelerate}
	FastOutSlowIn = Curve{"fastOutSlowIn", CubicBezier(0.4, 0.0, 0.2, 1.0)}
)

var curvesByName = map[string]Curve{
	"linear":        Linear,
	"easeIn":        EaseIn,
	"easeOut":       EaseOut,
	"easeInOut":     EaseInOut,
	"bounceIn":      BounceIn,
	"bounceOut":     BounceOut,
	"elasticIn":     ElasticIn,
	"elasticOut":    ElasticOut,
	"decelerate":    Decelerate,
	"fastOutSlowIn": FastOutSlowIn,
}

// CurveByName resolves a wire identifier to its curve. Unknown identifiers
// resolve to FastOutSlowIn, the default the carousel control advertises.
func CurveByName(name string) Curve {
	if c, ok := curvesByName[name]; ok {
		return c
	}
	return FastOutSlowIn
}

// CurveNames returns the catalog's wire identifiers in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curvesByName))
	for name := range curvesByName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// decelerate eases out with quadratic deceleration.
func decelerate(t float64) float64 {
	t = 1 - clampUnit(t)
	return 1 - t*t
}

// bounceOut models a ball settling after three diminishing bounces.
func bounceOut(t float64) float64 {
	t = clampUnit(t)
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

// bounceIn is bounceOut mirrored around the midpoint.
func bounceIn(t float64) float64 {
	return 1 - bounceOut(1-clampUnit(t))
}

// elastic builds an exponentially damped oscillation with period 0.4:
// direction -1 winds up before the start (elasticIn), +1 overshoots past
// the end and settles (elasticOut).
func elastic(direction float64) func(float64) float64 {
	const period = 0.4
	return func(t float64) float64 {
		t = clampUnit(t)
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		s := period / 4
		if direction < 0 {
			t--
			return -math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/period)
		}
		return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/period) + 1
	}
}
