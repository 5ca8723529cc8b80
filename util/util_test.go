package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/animtx/ease"
)

func TestGenerateLut(t *testing.T) {
	lut := GenerateLut(ease.Linear, 8)
	assert.Len(t, lut, 8)

	// Symmetric: rises to the middle, mirrors back down.
	for i := 0; i < 4; i++ {
		assert.Equal(t, lut[i], lut[7-i])
	}
	assert.Equal(t, 0.0, lut[0])
	assert.InDelta(t, 0.75, lut[3], 1e-12)

	// The curve shapes the ramp.
	eased := GenerateLut(ease.In, 8)
	assert.Less(t, eased[1], lut[1])
}
