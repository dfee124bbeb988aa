// Package palette holds the decoration colors and the distance fog applied to line colors.
package palette

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Color is one of the decoration palette entries.
type Color int

const (
	// None is the outcome of a sample landing exactly on a bucket boundary
	// (0.25, 0.5 or 0.75). Such decorations are drawn with DefaultLine.
	None Color = iota
	Blue
	Red
	Yellow
	Green
)

// Colors lists the four real palette entries.
var Colors = []Color{Blue, Red, Yellow, Green}

var rgba = map[Color]color.RGBA{
	Blue:   {R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	Red:    {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	Yellow: {R: 0xff, G: 0xe6, B: 0x63, A: 0xff},
	Green:  {R: 0x6f, G: 0xff, B: 0x63, A: 0xff},
}

// DefaultLine is the color of the tunnel outline and of uncolored decorations.
var DefaultLine = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// FromSample maps a uniform sample c in [0,1) to a palette color using four buckets:
// (0.75,1) blue, (0.5,0.75) red, (0.25,0.5) yellow, [0,0.25) green.
// The bucket bounds are open, so exactly 0.25, 0.5 and 0.75 return None.
func FromSample(c float64) Color {
	switch {
	case c > 0.75 && c < 1:
		return Blue
	case c > 0.5 && c < 0.75:
		return Red
	case c < 0.5 && c > 0.25:
		return Yellow
	case c < 0.25:
		return Green
	}
	return None
}

// RGBA returns the display color, DefaultLine for None.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return DefaultLine
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	}
	return "none"
}

// FogFactor returns the exponential-squared fog visibility at distance d for the given
// density: 1 at the eye, falling toward 0 with distance.
func FogFactor(d, density float32) float32 {
	x := density * d
	return math32.Clamp(math32.Exp(-x*x), 0, 1)
}

// ViewDepth returns how far p lies in front of eye along the unit vector forward.
// Points level with or behind the eye have depth 0.
func ViewDepth(p, eye, forward math32.Vector3) float32 {
	return max(p.Sub(eye).Dot(forward), 0)
}

// Fog fades c toward black by the fog factor at distance d. Alpha is kept.
func Fog(c color.RGBA, d, density float32) color.RGBA {
	f := FogFactor(d, density)
	return color.RGBA{
		R: uint8(math32.Round(float32(c.R) * f)),
		G: uint8(math32.Round(float32(c.G) * f)),
		B: uint8(math32.Round(float32(c.B) * f)),
		A: c.A,
	}
}
