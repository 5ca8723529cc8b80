package anim

import (
	"github.com/matt-g-everett/animtx/ease"
)

// TimeEpsilon is the minimum separation between two keyframes on a
// track. Time comparisons throughout the engine treat anything closer
// than this as the same instant.
const TimeEpsilon = 0.001

// A Keyframe anchors a property's value at an instant. Easing shapes
// the segment from this keyframe to the next one; the last keyframe's
// easing is never applied. Keyframes are immutable; editing one is
// modelled as remove-then-add.
type Keyframe[T Animatable[T]] struct {
	Time   float64
	Value  T
	Easing ease.Curve
}

// NewKeyframe creates a keyframe at the given time in seconds.
func NewKeyframe[T Animatable[T]](time float64, value T, easing ease.Curve) Keyframe[T] {
	return Keyframe[T]{Time: time, Value: value, Easing: easing}
}

func sameInstant(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < TimeEpsilon
}
