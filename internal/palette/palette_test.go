package palette

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestFromSample(t *testing.T) {
	tests := []struct {
		c    float64
		want Color
	}{
		{0.8, Blue},
		{0.6, Red},
		{0.3, Yellow},
		{0.1, Green},
		{0, Green},
		{0.999999, Blue},
		{0.2500001, Yellow},
		{0.7499999, Red},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromSample(tt.c), "c=%v", tt.c)
	}
}

func TestFromSampleBoundaryGap(t *testing.T) {
	for _, c := range []float64{0.25, 0.5, 0.75} {
		got := FromSample(c)
		assert.Equal(t, None, got, "c=%v", c)
		assert.Equal(t, DefaultLine, got.RGBA())
		assert.Equal(t, "none", got.String())
	}
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, Blue.RGBA())
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, Red.RGBA())
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xe6, B: 0x63, A: 0xff}, Yellow.RGBA())
	assert.Equal(t, color.RGBA{R: 0x6f, G: 0xff, B: 0x63, A: 0xff}, Green.RGBA())
	assert.Len(t, Colors, 4)
}

func TestFog(t *testing.T) {
	assert.Equal(t, float32(1), FogFactor(0, 0.3))
	prev := float32(1)
	for d := float32(0.5); d < 20; d += 0.5 {
		f := FogFactor(d, 0.3)
		assert.Less(t, f, prev, "d=%v", d)
		prev = f
	}
	assert.Equal(t, DefaultLine, Fog(DefaultLine, 0, 0.3))
	faded := Fog(DefaultLine, 100, 0.3)
	assert.Equal(t, color.RGBA{A: 0xff}, faded)
}

func TestViewDepth(t *testing.T) {
	eye := math32.Vec3(0, 0, 5)
	forward := math32.Vec3(0, 0, -1)
	assert.InDelta(t, 5, ViewDepth(math32.Vec3(0, 0, 0), eye, forward), 1e-6)
	// sideways offset does not add depth
	assert.InDelta(t, 5, ViewDepth(math32.Vec3(3, -2, 0), eye, forward), 1e-6)
	assert.Equal(t, float32(0), ViewDepth(math32.Vec3(0, 0, 9), eye, forward))
	assert.Equal(t, float32(0), ViewDepth(math32.Vec3(4, 0, 5), eye, forward))
}
