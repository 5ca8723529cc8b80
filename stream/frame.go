package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
)

const numPixels = 500

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels [numPixels]colorful.Color
}

// NewFrame creates a new Frame instance.
func NewFrame() *Frame {
	f := new(Frame)
	return f
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Fill paints every pixel with the same colour.
func (f *Frame) Fill(c anim.Color) {
	rgb := c.Colorful()
	for i := range f.pixels {
		f.pixels[i] = rgb
	}
}

// Blend mixes a colour into the pixel at i with the given gain.
func (f *Frame) Blend(i int, c anim.Color, gain float64) {
	if i < 0 || i >= len(f.pixels) {
		return
	}
	f.pixels[i] = f.pixels[i].BlendRgb(c.Colorful(), gain)
}

// Scale multiplies every channel of every pixel by gain, for master
// brightness.
func (f *Frame) Scale(gain float64) {
	for i, p := range f.pixels {
		f.pixels[i] = colorful.Color{R: p.R * gain, G: p.G * gain, B: p.B * gain}
	}
}

// Pixel returns the colour at i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (numPixels*3)+2)
	binary.LittleEndian.PutUint16(data, numPixels)
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
