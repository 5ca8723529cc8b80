package anim

import (
	"sort"
	"strings"

	"github.com/matt-g-everett/animtx/ease"
)

// A Snapshot is a type-erased dump of one track, for persistence and
// UI introspection. Values carry their concrete kind via the Kind tag.
type Snapshot struct {
	ID        string
	Kind      string
	Keyframes []KeyframeSnapshot
}

// A KeyframeSnapshot is one keyframe with its value erased to any.
type KeyframeSnapshot struct {
	Time   float64
	Value  any
	Easing ease.Curve
}

// binding pairs a typed track with its property update callback behind
// a type-erased face the registry can hold.
type binding interface {
	apply(time float64)
	removeAt(time float64) bool
	times() []float64
	snapshot(id string) Snapshot
}

type trackBinding[T Animatable[T]] struct {
	track    *Track[T]
	onChange func(T)
}

func (b *trackBinding[T]) apply(time float64) {
	if value, ok := b.track.ValueAt(time); ok {
		b.onChange(value)
	}
}

func (b *trackBinding[T]) removeAt(time float64) bool {
	return b.track.Remove(time)
}

func (b *trackBinding[T]) times() []float64 {
	return b.track.Times()
}

func (b *trackBinding[T]) snapshot(id string) Snapshot {
	var zero T
	s := Snapshot{ID: id, Kind: zero.Kind()}
	for _, kf := range b.track.Keyframes() {
		s.Keyframes = append(s.Keyframes, KeyframeSnapshot{
			Time:   kf.Time,
			Value:  kf.Value,
			Easing: kf.Easing,
		})
	}
	return s
}

// A Controller owns the playback clock and a registry of keyframe
// tracks with their property update callbacks. Advancing or seeking
// the clock evaluates every track and pushes present values to the
// callbacks; that is the engine's only externally observable effect.
//
// The controller is single-threaded by contract: all mutation and
// evaluation must happen on one goroutine. Callbacks run synchronously
// inside the evaluation pass and must not call back into Update.
type Controller struct {
	duration float64
	current  float64
	playing  bool
	tracks   map[string]binding
}

// NewController creates a controller with the given loop duration in
// seconds. Durations of zero or less fall back to one second so the
// clock always has somewhere to wrap.
func NewController(duration float64) *Controller {
	c := new(Controller)
	c.tracks = make(map[string]binding)
	c.SetDuration(duration)
	return c
}

// SetDuration changes the loop duration, clamping the current time
// into the new range.
func (c *Controller) SetDuration(duration float64) {
	if duration <= 0 {
		duration = 1
	}
	c.duration = duration
	if c.current > duration {
		c.current = duration
	}
}

// Duration returns the loop duration in seconds.
func (c *Controller) Duration() float64 { return c.duration }

// CurrentTime returns the playback position in seconds.
func (c *Controller) CurrentTime() float64 { return c.current }

// IsPlaying reports whether the clock is running.
func (c *Controller) IsPlaying() bool { return c.playing }

// Play marks the clock running. Time only moves through Advance, so an
// external driver decides the tick cadence; calling Play twice never
// stacks clocks.
func (c *Controller) Play() { c.playing = true }

// Pause stops the clock without moving the playback position.
func (c *Controller) Pause() { c.playing = false }

// Reset pauses, rewinds to zero and re-evaluates every track.
func (c *Controller) Reset() {
	c.playing = false
	c.current = 0
	c.Update()
}

// Seek moves the playback position, clamped into [0, duration], and
// re-evaluates every track. Seeking works whether playing or paused.
func (c *Controller) Seek(time float64) {
	if time < 0 {
		time = 0
	} else if time > c.duration {
		time = c.duration
	}
	c.current = time
	c.Update()
}

// Advance moves the clock forward by dt seconds and evaluates every
// track. Reaching the end wraps back keeping the overflow, so playback
// loops unconditionally. Advance is a no-op while paused.
func (c *Controller) Advance(dt float64) {
	if !c.playing || dt < 0 {
		return
	}
	c.current += dt
	for c.current >= c.duration {
		c.current -= c.duration
	}
	c.Update()
}

// Update evaluates every registered track at the current time and
// invokes the matching callback for each value present. Tracks with no
// keyframes invoke nothing.
func (c *Controller) Update() {
	for _, b := range c.tracks {
		b.apply(c.current)
	}
}

// AddTrack registers an empty typed track under id together with the
// callback that applies its values, and returns the track for direct
// keyframe editing. Registering an existing id replaces the previous
// track and callback.
func AddTrack[T Animatable[T]](c *Controller, id string, onChange func(T)) *Track[T] {
	tr := NewTrack[T](id)
	c.tracks[id] = &trackBinding[T]{track: tr, onChange: onChange}
	return tr
}

// TrackFor recovers the typed track registered under id. It reports
// false when the id is unknown or registered with a different value
// type; a type mismatch is not an error.
func TrackFor[T Animatable[T]](c *Controller, id string) (*Track[T], bool) {
	b, ok := c.tracks[id].(*trackBinding[T])
	if !ok {
		return nil, false
	}
	return b.track, true
}

// AddKeyframe adds a keyframe to the track registered under trackID,
// reporting false when the track is missing, holds a different value
// type, or already has a keyframe at that time.
func AddKeyframe[T Animatable[T]](c *Controller, trackID string, time float64, value T, easing ease.Curve) bool {
	tr, ok := TrackFor[T](c, trackID)
	if !ok {
		return false
	}
	return tr.Add(Keyframe[T]{Time: time, Value: value, Easing: easing})
}

// RemoveKeyframe removes the keyframe at time from the track
// registered under trackID, reporting whether one was removed.
func (c *Controller) RemoveKeyframe(trackID string, time float64) bool {
	b, ok := c.tracks[trackID]
	if !ok {
		return false
	}
	return b.removeAt(time)
}

// HasTrack reports whether a track is registered under id.
func (c *Controller) HasTrack(id string) bool {
	_, ok := c.tracks[id]
	return ok
}

// RemoveTrack unregisters the track under id, reporting whether it
// existed.
func (c *Controller) RemoveTrack(id string) bool {
	if _, ok := c.tracks[id]; !ok {
		return false
	}
	delete(c.tracks, id)
	return true
}

// RemoveTracksFor unregisters every track whose id begins with the
// owner prefix, returning how many were removed. Track ids are
// conventionally "<owner>.<property>".
func (c *Controller) RemoveTracksFor(ownerPrefix string) int {
	removed := 0
	for id := range c.tracks {
		if strings.HasPrefix(id, ownerPrefix) {
			delete(c.tracks, id)
			removed++
		}
	}
	return removed
}

// ClearTracks unregisters every track.
func (c *Controller) ClearTracks() {
	c.tracks = make(map[string]binding)
}

// TrackIDs returns every registered track id, sorted.
func (c *Controller) TrackIDs() []string {
	ids := make([]string, 0, len(c.tracks))
	for id := range c.tracks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// KeyframeTimes returns the union of every track's keyframe times,
// sorted ascending with times within TimeEpsilon of each other
// collapsed. External navigation and snapping logic builds on this.
func (c *Controller) KeyframeTimes() []float64 {
	var all []float64
	for _, b := range c.tracks {
		all = append(all, b.times()...)
	}
	sort.Float64s(all)

	out := all[:0]
	for _, t := range all {
		if len(out) == 0 || !sameInstant(out[len(out)-1], t) {
			out = append(out, t)
		}
	}
	return out
}

// Snapshots returns a type-erased dump of every track, ordered by id,
// for persistence and UI layers built on the introspection surface.
func (c *Controller) Snapshots() []Snapshot {
	ids := c.TrackIDs()
	out := make([]Snapshot, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.tracks[id].snapshot(id))
	}
	return out
}
