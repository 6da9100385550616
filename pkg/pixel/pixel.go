// Package pixel provides the color value stored in every quadtree node and the
// distance metrics used to compare two colors.
package pixel

import (
	"fmt"
	"image/color"
	"math"
)

// Pixel is a non-premultiplied 8-bit RGBA color.
type Pixel struct {
	R, G, B, A uint8
}

// Channels is the number of color channels carried by a Pixel.
const Channels = 4

// New returns a Pixel from real-valued channels in the 0-255 range.
// Values are clamped and truncated toward zero.
func New(r, g, b, a float64) Pixel {
	return Pixel{R: toByte(r), G: toByte(g), B: toByte(b), A: toByte(a)}
}

// FromColor converts any color.Color into a Pixel without premultiplication.
func FromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA returns the pixel as a standard library color.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

// Channel returns channel i (0=R, 1=G, 2=B, 3=A) as a float.
func (p Pixel) Channel(i int) float64 {
	switch i {
	case 0:
		return float64(p.R)
	case 1:
		return float64(p.G)
	case 2:
		return float64(p.B)
	case 3:
		return float64(p.A)
	}
	panic(fmt.Sprintf("pixel: channel %d out of range", i))
}

// DistanceTo is the Euclidean distance over all four channels.
func (p Pixel) DistanceTo(o Pixel) float64 {
	return Euclidean.Distance(p, o)
}

func (p Pixel) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", p.R, p.G, p.B, p.A)
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
