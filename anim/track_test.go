package anim

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/animtx/ease"
)

func scalarTrack(t *testing.T, keys ...float64) *Track[Scalar] {
	t.Helper()
	tr := NewTrack[Scalar]("test.value")
	for i := 0; i < len(keys); i += 2 {
		assert.True(t, tr.Add(NewKeyframe(keys[i], Scalar(keys[i+1]), ease.Linear)))
	}
	return tr
}

func TestTrackOrderedAfterMutation(t *testing.T) {
	tr := NewTrack[Scalar]("test.value")
	times := []float64{3.5, 0.25, 7, 1, 5.5, 0, 2}
	for _, tm := range times {
		assert.True(t, tr.Add(NewKeyframe(tm, Scalar(tm), ease.Linear)))
	}
	assert.True(t, tr.Remove(1))
	assert.True(t, tr.Add(NewKeyframe(4.2, Scalar(42), ease.Linear)))

	got := tr.Times()
	assert.True(t, sort.Float64sAreSorted(got))
	assert.Len(t, got, 7)
}

func TestTrackRejectsNearDuplicates(t *testing.T) {
	tr := scalarTrack(t, 1.0, 10)

	assert.False(t, tr.Add(NewKeyframe(1.0, Scalar(99), ease.Linear)))
	assert.False(t, tr.Add(NewKeyframe(1.0005, Scalar(99), ease.Linear)))
	assert.False(t, tr.Add(NewKeyframe(0.9995, Scalar(99), ease.Linear)))

	// Unchanged: same cardinality, same value.
	assert.Equal(t, 1, tr.Len())
	v, ok := tr.ValueAt(1.0)
	assert.True(t, ok)
	assert.Equal(t, Scalar(10), v)

	// Just beyond epsilon is a different instant.
	assert.True(t, tr.Add(NewKeyframe(1.0011, Scalar(99), ease.Linear)))
}

func TestTrackEmptyEvaluation(t *testing.T) {
	tr := NewTrack[Scalar]("test.value")
	_, ok := tr.ValueAt(0)
	assert.False(t, ok)
}

func TestTrackClampsAtEnds(t *testing.T) {
	tr := scalarTrack(t, 1, 10, 2, 20, 3, 30)

	v, ok := tr.ValueAt(0)
	assert.True(t, ok)
	assert.Equal(t, Scalar(10), v)

	v, _ = tr.ValueAt(1)
	assert.Equal(t, Scalar(10), v)

	v, _ = tr.ValueAt(3)
	assert.Equal(t, Scalar(30), v)

	v, _ = tr.ValueAt(99)
	assert.Equal(t, Scalar(30), v)
}

func TestTrackExactMatchWinsOverBlending(t *testing.T) {
	tr := scalarTrack(t, 0, 0, 1, 100, 2, 0)

	v, _ := tr.ValueAt(1)
	assert.Equal(t, Scalar(100), v)

	// Within epsilon of a keyframe is still an exact hit.
	v, _ = tr.ValueAt(1.0004)
	assert.Equal(t, Scalar(100), v)
}

func TestTrackLinearMidpoint(t *testing.T) {
	tr := scalarTrack(t, 0, 0, 2, 100)

	v, ok := tr.ValueAt(1)
	assert.True(t, ok)
	assert.Equal(t, Scalar(50), v)
}

func TestTrackEasedInterpolation(t *testing.T) {
	tr := NewTrack[Scalar]("test.value")
	tr.Add(NewKeyframe(0, Scalar(0), ease.In))
	tr.Add(NewKeyframe(1, Scalar(100), ease.Linear))

	// easeIn is t^3, so halfway through the segment sits at 12.5.
	v, _ := tr.ValueAt(0.5)
	assert.InDelta(t, 12.5, float64(v), 1e-9)
}

func TestTrackMemoisesRepeatQueries(t *testing.T) {
	tr := scalarTrack(t, 0, 0, 2, 100)

	v1, _ := tr.ValueAt(0.5)
	v2, _ := tr.ValueAt(0.5003) // within epsilon of the last query
	assert.Equal(t, v1, v2)

	// Mutation invalidates the memo.
	tr.Remove(2)
	tr.Add(NewKeyframe(2, Scalar(200), ease.Linear))
	v3, _ := tr.ValueAt(0.5)
	assert.Equal(t, Scalar(50), v3)
}

func TestTrackRemove(t *testing.T) {
	tr := scalarTrack(t, 1, 10, 2, 20, 3, 30)

	assert.True(t, tr.Remove(2.0))
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []float64{1, 3}, tr.Times())

	assert.False(t, tr.Remove(2.0))
	assert.False(t, tr.Remove(9))
}

func TestTrackBracketHintSurvivesRandomSeeks(t *testing.T) {
	tr := NewTrack[Scalar]("test.value")
	for i := 0; i <= 10; i++ {
		tr.Add(NewKeyframe(float64(i), Scalar(i*10), ease.Linear))
	}

	// Monotonic sweep primes the hint, then random seeks must still
	// agree with straight linear interpolation. Tolerance covers the
	// epsilon snapping of queries that land next to a keyframe.
	for q := 0.0; q < 10; q += 0.037 {
		v, _ := tr.ValueAt(q)
		assert.InDelta(t, q*10, float64(v), 0.02)
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		q := r.Float64() * 10
		v, _ := tr.ValueAt(q)
		assert.InDelta(t, q*10, float64(v), 0.02)
	}
}

func TestTrackKeyframesSnapshotIsDetached(t *testing.T) {
	tr := scalarTrack(t, 1, 10, 2, 20)

	snap := tr.Keyframes()
	assert.Len(t, snap, 2)
	snap[0] = NewKeyframe(9, Scalar(999), ease.Linear)

	v, _ := tr.ValueAt(1)
	assert.Equal(t, Scalar(10), v)
}
