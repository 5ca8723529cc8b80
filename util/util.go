package util

import (
	"github.com/matt-g-everett/animtx/ease"
)

// GenerateLut builds a symmetric gain look-up table of the given
// length, rising through the easing curve to the middle and falling
// back down. The rig uses it for highlight falloff.
func GenerateLut(curve ease.Curve, length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := curve.Apply(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}
