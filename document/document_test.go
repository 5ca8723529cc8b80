package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/ease"
)

func registerAll(c *anim.Controller) {
	anim.AddTrack(c, "box.opacity", func(anim.Scalar) {})
	anim.AddTrack(c, "box.position", func(anim.Point) {})
	anim.AddTrack(c, "box.size", func(anim.Size) {})
	anim.AddTrack(c, "box.tint", func(anim.Color) {})
	anim.AddTrack(c, "box.outline", func(anim.Path) {})
	anim.AddTrack(c, "label.text", func(anim.Text) {})
}

func populate(t *testing.T, c *anim.Controller) {
	t.Helper()
	red, err := anim.ColorHex("#ff0000")
	assert.NoError(t, err)
	red.A = 0.5

	assert.True(t, anim.AddKeyframe(c, "box.opacity", 0.0, anim.Scalar(0), ease.In))
	assert.True(t, anim.AddKeyframe(c, "box.opacity", 2.0, anim.Scalar(100), ease.CubicBezier(0.42, 0, 0.58, 1)))
	assert.True(t, anim.AddKeyframe(c, "box.position", 1.0, anim.Point{X: 10, Y: 20}, ease.Linear))
	assert.True(t, anim.AddKeyframe(c, "box.size", 1.0, anim.Size{W: 30, H: 40}, ease.Bounce))
	assert.True(t, anim.AddKeyframe(c, "box.tint", 0.5, red, ease.Sine))
	assert.True(t, anim.AddKeyframe(c, "box.outline", 0.25, anim.Path{{X: 1, Y: 2}, {X: 3, Y: 4}}, ease.Linear))
	assert.True(t, anim.AddKeyframe(c, "label.text", 0.75, anim.Text("hello"), ease.Linear))
}

func TestRoundTrip(t *testing.T) {
	source := anim.NewController(12)
	registerAll(source)
	populate(t, source)

	path := filepath.Join(t.TempDir(), "timeline.yaml")
	assert.NoError(t, FromController(source).Save(path))

	doc, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 12.0, doc.Duration)
	assert.Len(t, doc.Tracks, 6)

	restored := anim.NewController(1)
	registerAll(restored)
	skipped := doc.Apply(restored)
	assert.Empty(t, skipped)
	assert.Equal(t, 12.0, restored.Duration())

	assert.Equal(t, source.Snapshots(), restored.Snapshots())
}

func TestApplySkipsUnregisteredTracks(t *testing.T) {
	source := anim.NewController(5)
	anim.AddTrack(source, "box.opacity", func(anim.Scalar) {})
	anim.AddTrack(source, "gone.value", func(anim.Scalar) {})
	anim.AddKeyframe(source, "box.opacity", 1.0, anim.Scalar(1), ease.Linear)
	anim.AddKeyframe(source, "gone.value", 1.0, anim.Scalar(1), ease.Linear)

	doc := FromController(source)

	restored := anim.NewController(5)
	anim.AddTrack(restored, "box.opacity", func(anim.Scalar) {})
	skipped := doc.Apply(restored)
	assert.Equal(t, []string{"gone.value"}, skipped)
	assert.Equal(t, []float64{1}, restored.KeyframeTimes())
}

func TestApplySkipsKindMismatch(t *testing.T) {
	source := anim.NewController(5)
	anim.AddTrack(source, "box.value", func(anim.Scalar) {})
	anim.AddKeyframe(source, "box.value", 1.0, anim.Scalar(1), ease.Linear)

	doc := FromController(source)

	// Same id, different value kind on the restore side.
	restored := anim.NewController(5)
	anim.AddTrack(restored, "box.value", func(anim.Color) {})
	skipped := doc.Apply(restored)
	assert.Equal(t, []string{"box.value"}, skipped)
}

func TestColorHexRoundTrip(t *testing.T) {
	source := anim.NewController(5)
	anim.AddTrack(source, "box.tint", func(anim.Color) {})
	c, _ := anim.ColorHex("#102030")
	anim.AddKeyframe(source, "box.tint", 0.0, c, ease.Linear)

	doc := FromController(source)
	assert.Equal(t, "#102030", doc.Tracks[0].Keyframes[0].Color)

	restored := anim.NewController(5)
	anim.AddTrack(restored, "box.tint", func(anim.Color) {})
	assert.Empty(t, doc.Apply(restored))
	assert.Equal(t, source.Snapshots(), restored.Snapshots())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
