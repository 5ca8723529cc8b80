package anim

import (
	"sort"
)

// A Track stores the keyframes for one animatable property, ordered by
// strictly increasing time, and evaluates a value for any query time.
//
// Tracks are not safe for concurrent use; the engine expects all
// mutation and evaluation on one goroutine.
type Track[T Animatable[T]] struct {
	id   string
	keys []Keyframe[T]

	// Temporal-coherence memo: playback queries arrive at nearly
	// identical consecutive times, so the last answer is kept, and the
	// last bracketing segment is tried before searching again.
	memoTime  float64
	memoValue T
	memoOK    bool
	bracket   int
}

// NewTrack creates an empty track with a stable identity.
func NewTrack[T Animatable[T]](id string) *Track[T] {
	return &Track[T]{id: id, bracket: -1}
}

// ID returns the track's stable identity.
func (tr *Track[T]) ID() string { return tr.id }

// Len returns the number of keyframes.
func (tr *Track[T]) Len() int { return len(tr.keys) }

// Add inserts a keyframe in time order. It reports false and leaves
// the track unchanged when a keyframe already sits within TimeEpsilon
// of the new one.
func (tr *Track[T]) Add(kf Keyframe[T]) bool {
	i := sort.Search(len(tr.keys), func(i int) bool {
		return tr.keys[i].Time >= kf.Time
	})
	if i < len(tr.keys) && sameInstant(tr.keys[i].Time, kf.Time) {
		return false
	}
	if i > 0 && sameInstant(tr.keys[i-1].Time, kf.Time) {
		return false
	}

	tr.keys = append(tr.keys, Keyframe[T]{})
	copy(tr.keys[i+1:], tr.keys[i:])
	tr.keys[i] = kf
	tr.invalidate()
	return true
}

// Remove deletes the keyframe within TimeEpsilon of time, reporting
// whether one was found.
func (tr *Track[T]) Remove(time float64) bool {
	for i, kf := range tr.keys {
		if sameInstant(kf.Time, time) {
			tr.keys = append(tr.keys[:i], tr.keys[i+1:]...)
			tr.invalidate()
			return true
		}
	}
	return false
}

// ValueAt evaluates the track at the given time. It reports false on
// an empty track. Queries before the first keyframe clamp to its
// value and queries after the last clamp to the last value; a query
// within TimeEpsilon of a keyframe returns that keyframe's value with
// no blending.
func (tr *Track[T]) ValueAt(time float64) (T, bool) {
	var zero T
	if len(tr.keys) == 0 {
		return zero, false
	}

	if tr.memoOK && sameInstant(time, tr.memoTime) {
		return tr.memoValue, true
	}

	value := tr.evaluate(time)
	tr.memoTime = time
	tr.memoValue = value
	tr.memoOK = true
	return value, true
}

func (tr *Track[T]) evaluate(time float64) T {
	first, last := tr.keys[0], tr.keys[len(tr.keys)-1]
	if time <= first.Time {
		return first.Value
	}
	if time >= last.Time {
		return last.Value
	}

	i := tr.segment(time)
	before, after := tr.keys[i], tr.keys[i+1]
	if sameInstant(time, before.Time) {
		return before.Value
	}
	if sameInstant(time, after.Time) {
		return after.Value
	}

	progress := (time - before.Time) / (after.Time - before.Time)
	return before.Value.Interpolate(after.Value, before.Easing.Apply(progress))
}

// segment returns i such that keys[i].Time <= time < keys[i+1].Time.
// The previous bracket is tried first; normal playback advances
// monotonically, so the hint usually holds or moves one to the right.
func (tr *Track[T]) segment(time float64) int {
	if i := tr.bracket; i >= 0 && i+1 < len(tr.keys) {
		if tr.keys[i].Time <= time && time < tr.keys[i+1].Time {
			return i
		}
		if i+2 < len(tr.keys) && tr.keys[i+1].Time <= time && time < tr.keys[i+2].Time {
			tr.bracket = i + 1
			return i + 1
		}
	}

	i := sort.Search(len(tr.keys), func(i int) bool {
		return tr.keys[i].Time > time
	}) - 1
	tr.bracket = i
	return i
}

// Keyframes returns an ordered snapshot, safe against later mutation.
func (tr *Track[T]) Keyframes() []Keyframe[T] {
	out := make([]Keyframe[T], len(tr.keys))
	copy(out, tr.keys)
	return out
}

// Times returns the keyframe times in ascending order.
func (tr *Track[T]) Times() []float64 {
	out := make([]float64, len(tr.keys))
	for i, kf := range tr.keys {
		out[i] = kf.Time
	}
	return out
}

func (tr *Track[T]) invalidate() {
	tr.memoOK = false
	tr.bracket = -1
}
