package ease

import (
	"math"

	"github.com/fogleman/ease"
)

// Kind names an easing curve shape. The names double as the persisted
// representation, so they must stay stable.
type Kind string

const (
	KindLinear      Kind = "linear"
	KindIn          Kind = "easeIn"
	KindOut         Kind = "easeOut"
	KindInOut       Kind = "easeInOut"
	KindBounce      Kind = "bounce"
	KindElastic     Kind = "elastic"
	KindSpring      Kind = "spring"
	KindSine        Kind = "sine"
	KindCubicBezier Kind = "cubicBezier"
)

// A Curve remaps normalized progress in [0,1]. Some kinds overshoot
// outside [0,1] (elastic, spring) on purpose.
//
// X1,Y1,X2,Y2 are the control points for KindCubicBezier and are
// ignored by every other kind. They are kept on the struct so a
// persisted keyframe keeps its full control-point data.
type Curve struct {
	Kind Kind    `yaml:"kind" json:"kind"`
	X1   float64 `yaml:"x1,omitempty" json:"x1,omitempty"`
	Y1   float64 `yaml:"y1,omitempty" json:"y1,omitempty"`
	X2   float64 `yaml:"x2,omitempty" json:"x2,omitempty"`
	Y2   float64 `yaml:"y2,omitempty" json:"y2,omitempty"`
}

// Predefined curves for the fixed kinds.
var (
	Linear  = Curve{Kind: KindLinear}
	In      = Curve{Kind: KindIn}
	Out     = Curve{Kind: KindOut}
	InOut   = Curve{Kind: KindInOut}
	Bounce  = Curve{Kind: KindBounce}
	Elastic = Curve{Kind: KindElastic}
	Spring  = Curve{Kind: KindSpring}
	Sine    = Curve{Kind: KindSine}
)

// CubicBezier creates a curve from two control points.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return Curve{Kind: KindCubicBezier, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Apply remaps progress t through the curve. It is pure and total; an
// unrecognised kind falls back to linear.
func (c Curve) Apply(t float64) float64 {
	switch c.Kind {
	case KindIn:
		return ease.InCubic(t)
	case KindOut:
		return ease.OutCubic(t)
	case KindInOut:
		// Legacy piecewise cubic with a jump at t=0.5, kept for
		// compatibility with timelines authored against it.
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := t - 1
		return 0.5*u*u*u + 1
	case KindBounce:
		return ease.OutBounce(t)
	case KindElastic:
		return ease.OutElastic(t)
	case KindSpring:
		return 1 - math.Exp(-6*t)*math.Cos(12*t)
	case KindSine:
		return ease.InOutSine(t)
	case KindCubicBezier:
		// Bernstein blend over x1/x2. Not a parametric bezier solve;
		// y1/y2 are stored but unused. Kept bit-for-bit compatible.
		u := 1 - t
		return 3*u*u*t*c.X1 + 3*u*t*t*c.X2 + t*t*t
	default:
		return t
	}
}
