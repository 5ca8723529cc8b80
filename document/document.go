// Package document persists timelines as YAML. It is built entirely on
// the engine's introspection surface; the engine itself does no I/O.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/ease"
)

// A Document is the on-disk form of a timeline: every track's id and
// value kind, and every keyframe's time, value and easing.
type Document struct {
	Duration float64       `yaml:"duration"`
	Tracks   []TrackRecord `yaml:"tracks"`
}

// A TrackRecord is one persisted track.
type TrackRecord struct {
	ID        string           `yaml:"id"`
	Kind      string           `yaml:"kind"`
	Keyframes []KeyframeRecord `yaml:"keyframes"`
}

// A KeyframeRecord is one persisted keyframe. Exactly one value field
// is set, matching the owning track's kind. Colors are stored as hex
// with the alpha channel alongside.
type KeyframeRecord struct {
	Time   float64      `yaml:"time"`
	Scalar *float64     `yaml:"scalar,omitempty"`
	Point  *anim.Point  `yaml:"point,omitempty"`
	Size   *anim.Size   `yaml:"size,omitempty"`
	Color  string       `yaml:"color,omitempty"`
	Alpha  *float64     `yaml:"alpha,omitempty"`
	Path   []anim.Point `yaml:"path,omitempty"`
	Text   *string      `yaml:"text,omitempty"`
	Easing ease.Curve   `yaml:"easing"`
}

// FromController captures every registered track into a Document.
func FromController(c *anim.Controller) *Document {
	doc := &Document{Duration: c.Duration()}
	for _, snap := range c.Snapshots() {
		rec := TrackRecord{ID: snap.ID, Kind: snap.Kind}
		for _, kf := range snap.Keyframes {
			rec.Keyframes = append(rec.Keyframes, encodeKeyframe(kf))
		}
		doc.Tracks = append(doc.Tracks, rec)
	}
	return doc
}

func encodeKeyframe(kf anim.KeyframeSnapshot) KeyframeRecord {
	rec := KeyframeRecord{Time: kf.Time, Easing: kf.Easing}
	switch v := kf.Value.(type) {
	case anim.Scalar:
		f := float64(v)
		rec.Scalar = &f
	case anim.Point:
		p := v
		rec.Point = &p
	case anim.Size:
		s := v
		rec.Size = &s
	case anim.Color:
		rec.Color = v.Hex()
		a := v.A
		rec.Alpha = &a
	case anim.Path:
		rec.Path = append([]anim.Point(nil), v...)
	case anim.Text:
		s := string(v)
		rec.Text = &s
	}
	return rec
}

// Apply restores the document's keyframes into a controller whose
// tracks are already registered. Records whose id is not registered,
// or is registered with a different value kind, are skipped; the
// skipped ids are returned so callers can report them.
func (doc *Document) Apply(c *anim.Controller) []string {
	if doc.Duration > 0 {
		c.SetDuration(doc.Duration)
	}

	var skipped []string
	for _, rec := range doc.Tracks {
		if !applyTrack(c, rec) {
			skipped = append(skipped, rec.ID)
		}
	}
	return skipped
}

func applyTrack(c *anim.Controller, rec TrackRecord) bool {
	if !c.HasTrack(rec.ID) {
		return false
	}

	switch rec.Kind {
	case anim.KindScalar:
		return restore(c, rec, func(kf KeyframeRecord) (anim.Scalar, bool) {
			if kf.Scalar == nil {
				return 0, false
			}
			return anim.Scalar(*kf.Scalar), true
		})
	case anim.KindPoint:
		return restore(c, rec, func(kf KeyframeRecord) (anim.Point, bool) {
			if kf.Point == nil {
				return anim.Point{}, false
			}
			return *kf.Point, true
		})
	case anim.KindSize:
		return restore(c, rec, func(kf KeyframeRecord) (anim.Size, bool) {
			if kf.Size == nil {
				return anim.Size{}, false
			}
			return *kf.Size, true
		})
	case anim.KindColor:
		return restore(c, rec, func(kf KeyframeRecord) (anim.Color, bool) {
			colour, err := anim.ColorHex(kf.Color)
			if err != nil {
				return anim.Color{}, false
			}
			if kf.Alpha != nil {
				colour.A = *kf.Alpha
			}
			return colour, true
		})
	case anim.KindPath:
		return restore(c, rec, func(kf KeyframeRecord) (anim.Path, bool) {
			return anim.Path(kf.Path), true
		})
	case anim.KindText:
		return restore(c, rec, func(kf KeyframeRecord) (anim.Text, bool) {
			if kf.Text == nil {
				return "", false
			}
			return anim.Text(*kf.Text), true
		})
	default:
		return false
	}
}

// restore routes one track's keyframes through the typed registry
// path. The first type mismatch aborts, reporting the track skipped.
func restore[T anim.Animatable[T]](c *anim.Controller, rec TrackRecord, decode func(KeyframeRecord) (T, bool)) bool {
	if _, ok := anim.TrackFor[T](c, rec.ID); !ok {
		return false
	}
	for _, kf := range rec.Keyframes {
		value, ok := decode(kf)
		if !ok {
			continue
		}
		anim.AddKeyframe(c, rec.ID, kf.Time, value, kf.Easing)
	}
	return true
}

// Save writes the document to path as YAML.
func (doc *Document) Save(path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write timeline: %w", err)
	}
	return nil
}

// Load reads a timeline document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timeline: %w", err)
	}
	doc := new(Document)
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	return doc, nil
}
