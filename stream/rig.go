package stream

import (
	"math"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/ease"
	"github.com/matt-g-everett/animtx/util"
)

// A Rig holds the animatable properties of the LED rig. Each property
// is backed by a keyframe track; the track callbacks write straight
// into these fields and Render paints the result into a Frame.
type Rig struct {
	back          anim.Color
	highlight     anim.Color
	center        anim.Point
	width         anim.Scalar
	brightness    anim.Scalar
	caption       anim.Text
	gradientPhase anim.Scalar
	gradientMix   anim.Scalar

	gradient GradientTable
	lut      []float64
}

// NewRig creates a rig and registers its property tracks with the
// controller. Track ids share the "rig." owner prefix so the whole
// rig can be torn down with RemoveTracksFor.
func NewRig(ctrl *anim.Controller) *Rig {
	r := new(Rig)
	r.back, _ = anim.ColorHex("#000005")
	r.highlight, _ = anim.ColorHex("#808080")
	r.width = 40
	r.brightness = 1
	r.gradient = Rainbow
	r.lut = util.GenerateLut(ease.InOut, 64)

	anim.AddTrack(ctrl, "rig.back", func(c anim.Color) { r.back = c })
	anim.AddTrack(ctrl, "rig.highlight.color", func(c anim.Color) { r.highlight = c })
	anim.AddTrack(ctrl, "rig.highlight.center", func(p anim.Point) { r.center = p })
	anim.AddTrack(ctrl, "rig.highlight.width", func(s anim.Scalar) { r.width = s })
	anim.AddTrack(ctrl, "rig.brightness", func(s anim.Scalar) { r.brightness = s })
	anim.AddTrack(ctrl, "rig.caption", func(t anim.Text) { r.caption = t })
	anim.AddTrack(ctrl, "rig.gradient.phase", func(s anim.Scalar) { r.gradientPhase = s })
	anim.AddTrack(ctrl, "rig.gradient.mix", func(s anim.Scalar) { r.gradientMix = s })

	return r
}

// Caption returns the current caption text, for the status topic.
func (r *Rig) Caption() string {
	return string(r.caption)
}

// Render paints the rig's current property values into a frame: flat
// background, eased highlight around the centre, then master
// brightness. The highlight centre is a point whose X is the pixel
// position; Y biases the highlight gain.
func (r *Rig) Render(f *Frame) {
	f.Fill(r.back)

	if mix := clampUnit(float64(r.gradientMix)); mix > 0 && len(r.gradient) > 1 {
		n := float64(f.Len())
		for i := 0; i < f.Len(); i++ {
			pos := float64(i)/n + float64(r.gradientPhase)
			c := r.gradient.GetColor(pos, 1.0, 0.05)
			f.Blend(i, anim.Color{R: c.R, G: c.G, B: c.B, A: 1}, mix)
		}
	}

	width := float64(r.width)
	if width > 0 {
		start := int(math.Ceil(r.center.X - width/2))
		for i := 0; i < int(width); i++ {
			pos := (float64(i) + 0.5) / width
			gain := r.lut[int(pos*float64(len(r.lut)))] * (1 + r.center.Y)
			f.Blend(start+i, r.highlight, clampUnit(gain))
		}
	}

	f.Scale(clampUnit(float64(r.brightness)))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DefaultTimeline seeds the rig's tracks with the built-in show, used
// when no timeline document is supplied.
func DefaultTimeline(ctrl *anim.Controller) {
	duration := ctrl.Duration()
	back, _ := anim.ColorHex("#000005")
	warm, _ := anim.ColorHex("#100505")
	fore, _ := anim.ColorHex("#808080")
	accent, _ := anim.ColorHex("#404040")

	anim.AddKeyframe(ctrl, "rig.back", 0, back, ease.Sine)
	anim.AddKeyframe(ctrl, "rig.back", duration/2, warm, ease.Sine)
	anim.AddKeyframe(ctrl, "rig.back", duration, back, ease.Linear)

	anim.AddKeyframe(ctrl, "rig.highlight.color", 0, fore, ease.Linear)
	anim.AddKeyframe(ctrl, "rig.highlight.color", duration, accent, ease.Linear)

	anim.AddKeyframe(ctrl, "rig.highlight.center", 0, anim.Point{X: 0}, ease.InOut)
	anim.AddKeyframe(ctrl, "rig.highlight.center", duration/2, anim.Point{X: numPixels - 1, Y: 0.2}, ease.InOut)
	anim.AddKeyframe(ctrl, "rig.highlight.center", duration, anim.Point{X: 0}, ease.Linear)

	anim.AddKeyframe(ctrl, "rig.highlight.width", 0, anim.Scalar(20), ease.Elastic)
	anim.AddKeyframe(ctrl, "rig.highlight.width", duration/2, anim.Scalar(80), ease.Elastic)
	anim.AddKeyframe(ctrl, "rig.highlight.width", duration, anim.Scalar(20), ease.Linear)

	anim.AddKeyframe(ctrl, "rig.brightness", 0, anim.Scalar(0), ease.CubicBezier(0.4, 0, 0.6, 1))
	anim.AddKeyframe(ctrl, "rig.brightness", duration*0.1, anim.Scalar(1), ease.Linear)
	anim.AddKeyframe(ctrl, "rig.brightness", duration*0.9, anim.Scalar(1), ease.Out)
	anim.AddKeyframe(ctrl, "rig.brightness", duration, anim.Scalar(0), ease.Linear)

	anim.AddKeyframe(ctrl, "rig.caption", 0, anim.Text("sweep up"), ease.Linear)
	anim.AddKeyframe(ctrl, "rig.caption", duration/2, anim.Text("sweep down"), ease.Linear)

	anim.AddKeyframe(ctrl, "rig.gradient.phase", 0, anim.Scalar(0), ease.Linear)
	anim.AddKeyframe(ctrl, "rig.gradient.phase", duration, anim.Scalar(1), ease.Linear)

	anim.AddKeyframe(ctrl, "rig.gradient.mix", 0, anim.Scalar(0), ease.Sine)
	anim.AddKeyframe(ctrl, "rig.gradient.mix", duration*0.25, anim.Scalar(0.6), ease.Sine)
	anim.AddKeyframe(ctrl, "rig.gradient.mix", duration*0.75, anim.Scalar(0.6), ease.Sine)
	anim.AddKeyframe(ctrl, "rig.gradient.mix", duration, anim.Scalar(0), ease.Linear)
}
