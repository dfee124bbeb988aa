// Package decor scatters the colored wireframe cubes along the tunnel path.
package decor

import (
	"math/rand/v2"
	"time"

	"cogentcore.org/core/math32"

	"tunnel/internal/geom"
	"tunnel/internal/palette"
	"tunnel/internal/spline"
)

// Rand is the random source used by Generate. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
}

// Sampler is the part of a path the generator needs.
type Sampler interface {
	PointAt(u float32) math32.Vector3
}

// Options controls decoration generation.
// Count is the number of cubes, Size their edge length. JitterScale is the maximum
// forward offset added to each cube's evenly spaced path parameter. ScatterOffset shifts
// the uniform X/Y scatter so it spans [-ScatterOffset, 1-ScatterOffset).
// EdgeThresholdDeg is the sharpness threshold used to outline the cube.
// Seed seeds NewRand; Seed == 0 uses a time-based seed.
type Options struct {
	Count            int
	Size             float32
	JitterScale      float64
	ScatterOffset    float64
	EdgeThresholdDeg float32
	Seed             uint64
}

// DefaultOptions returns the reference scene: 55 cubes of size 0.075.
func DefaultOptions() Options {
	return Options{
		Count:            55,
		Size:             0.075,
		JitterScale:      0.1,
		ScatterOffset:    0.4,
		EdgeThresholdDeg: 0.2,
	}
}

// NewRand returns a seeded PCG source. seed == 0 seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Decoration is one wireframe cube placed along the path.
type Decoration struct {
	Index     int
	BaseParam float32 // Index / Count
	Param     float32 // BaseParam plus jitter, wrapped into [0,1)
	Position  math32.Vector3
	Rotation  math32.Vector3 // XYZ Euler angles in radians, each in [0, π)
	Color     palette.Color
	Edges     []geom.Segment // world-space outline
}

// Param returns the wrapped path parameter of cube i of count with the given jitter.
func Param(i, count int, jitter float64) float32 {
	return spline.Wrap(float32(float64(i)/float64(count) + jitter))
}

// Generate places opts.Count cubes along path. Random values are drawn from rnd in a
// fixed order per cube (jitter, x, y, three rotations, color), so a seeded source
// reproduces the same decorations.
func Generate(path Sampler, opts Options, rnd Rand) []Decoration {
	if opts.Count <= 0 {
		return nil
	}
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	// the solid cube is only an edge source; it is never drawn
	outline := geom.Edges(geom.NewBox(opts.Size), opts.EdgeThresholdDeg)

	out := make([]Decoration, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		p := Param(i, opts.Count, rnd.Float64()*opts.JitterScale)
		pos := path.PointAt(p)
		pos.X += float32(rnd.Float64() - opts.ScatterOffset)
		pos.Y += float32(rnd.Float64() - opts.ScatterOffset)

		rot := math32.Vec3(
			float32(rnd.Float64()*math32.Pi),
			float32(rnd.Float64()*math32.Pi),
			float32(rnd.Float64()*math32.Pi),
		)
		col := palette.FromSample(rnd.Float64())

		out = append(out, Decoration{
			Index:     i,
			BaseParam: float32(i) / float32(opts.Count),
			Param:     p,
			Position:  pos,
			Rotation:  rot,
			Color:     col,
			Edges:     geom.TransformAll(outline, geom.EulerXYZ(rot), pos),
		})
	}
	return out
}
