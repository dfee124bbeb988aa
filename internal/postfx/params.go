// Package postfx renders the scene into an offscreen target and composites a bloom glow
// with filmic tone mapping onto the screen.
package postfx

import (
	"errors"

	"cogentcore.org/core/math32"
)

// ErrShader is returned (wrapped) when a post-processing shader fails to compile.
var ErrShader = errors.New("postfx: shader failed to compile")

// ErrTarget is returned (wrapped) when a render target cannot be allocated.
var ErrTarget = errors.New("postfx: render target allocation failed")

// NumMips is the number of blur levels in the bloom chain.
const NumMips = 5

// kernelRadii are the blur kernel sizes per mip, finest first.
var kernelRadii = [NumMips]int{3, 5, 7, 9, 11}

// maxKernel bounds the weight array uploaded to the blur shader.
const maxKernel = 11

// baseFactors weigh each mip in the composite before the radius adjustment.
var baseFactors = [NumMips]float32{1.0, 0.8, 0.6, 0.4, 0.2}

// smoothWidth is the soft knee above Threshold in the bright pass.
const smoothWidth = 0.01

// Params controls the glow. Strength scales the summed mips, Threshold is the luminance
// cutoff of the bright pass, and Radius in [0,1] shifts weight from fine to coarse mips.
// NewBloom uses the defaults for a negative Strength or Threshold.
type Params struct {
	Strength  float32
	Threshold float32
	Radius    float32
}

// DefaultParams returns strength 3.5, threshold 0.002, radius 0.
func DefaultParams() Params {
	return Params{Strength: 3.5, Threshold: 0.002, Radius: 0}
}

// normalized replaces a negative strength or threshold with the default and clamps
// the radius to [0,1].
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.Strength < 0 {
		p.Strength = d.Strength
	}
	if p.Threshold < 0 {
		p.Threshold = d.Threshold
	}
	p.Radius = math32.Clamp(p.Radius, 0, 1)
	return p
}

// MipFactors returns the composite weight of each mip for radius r.
func MipFactors(r float32) [NumMips]float32 {
	r = math32.Clamp(r, 0, 1)
	var out [NumMips]float32
	for i, f := range baseFactors {
		out[i] = f + (1.2-f-f)*r
	}
	return out
}

// MipSize is the dimension of one blur level.
type MipSize struct {
	W, H int32
}

// MipSizes returns the blur level sizes for a w x h frame: half resolution first,
// then halving per level, never below 1 pixel.
func MipSizes(w, h int) [NumMips]MipSize {
	var out [NumMips]MipSize
	rw := math32.Round(float32(w) / 2)
	rh := math32.Round(float32(h) / 2)
	for i := range out {
		out[i] = MipSize{W: max(int32(rw), 1), H: max(int32(rh), 1)}
		rw = math32.Round(rw / 2)
		rh = math32.Round(rh / 2)
	}
	return out
}

// GaussianWeights returns the one-sided kernel weights for a blur of the given radius,
// with sigma equal to the radius. Index 0 is the center tap.
func GaussianWeights(radius int) []float32 {
	if radius < 1 {
		radius = 1
	}
	sigma := float32(radius)
	out := make([]float32, radius)
	for i := range out {
		x := float32(i)
		out[i] = 0.39894 * math32.Exp(-0.5*x*x/(sigma*sigma)) / sigma
	}
	return out
}

// paddedWeights returns GaussianWeights(radius) zero-padded to maxKernel for upload.
func paddedWeights(radius int) []float32 {
	out := make([]float32, maxKernel)
	copy(out, GaussianWeights(radius))
	return out
}

// Luminance is the bright-pass luma of a linear RGB color.
func Luminance(r, g, b float32) float32 {
	return 0.299*r + 0.587*g + 0.114*b
}

// BrightAlpha is the bright-pass keep factor for luma l, a smoothstep from
// threshold to threshold+smoothWidth.
func BrightAlpha(l, threshold float32) float32 {
	t := math32.Clamp((l-threshold)/smoothWidth, 0, 1)
	return t * t * (3 - 2*t)
}

// AccumWeights splits MipFactors(r) into per-mip weights summing to 1 and their total,
// so mips can be accumulated in an 8-bit target and rescaled in the composite.
func AccumWeights(r float32) (weights [NumMips]float32, total float32) {
	f := MipFactors(r)
	for _, v := range f {
		total += v
	}
	for i, v := range f {
		weights[i] = v / total
	}
	return weights, total
}
