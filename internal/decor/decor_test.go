package decor

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunnel/internal/palette"
	"tunnel/internal/spline"
)

// scripted returns the given values in order, cycling when exhausted.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// line is a straight sampler: PointAt(u) = (0, 0, 10u).
type line struct{}

func (line) PointAt(u float32) math32.Vector3 { return math32.Vec3(0, 0, 10*u) }

func TestParamWrapsAround(t *testing.T) {
	assert.InDelta(t, 0.0, Param(0, 55, 0), 1e-7)
	assert.InDelta(t, 10.0/55+0.05, Param(10, 55, 0.05), 1e-6)
	// 54/55 + 0.09 >= 1
	p := Param(54, 55, 0.09)
	assert.InDelta(t, 54.0/55+0.09-1, p, 1e-6)
	assert.GreaterOrEqual(t, p, float32(0))
	assert.Less(t, p, float32(1))
}

func TestGenerateUsesDrawsInOrder(t *testing.T) {
	// jitter, x, y, rx, ry, rz, color
	rnd := &scripted{vals: []float64{0.5, 0.9, 0.1, 0, 0.5, 0.25, 0.8}}
	opts := DefaultOptions()
	opts.Count = 1
	decs := Generate(line{}, opts, rnd)
	require.Len(t, decs, 1)
	d := decs[0]

	assert.Equal(t, 0, d.Index)
	assert.Equal(t, float32(0), d.BaseParam)
	assert.InDelta(t, 0.05, d.Param, 1e-6)
	assert.InDelta(t, 0.5, d.Position.X, 1e-6)
	assert.InDelta(t, -0.3, d.Position.Y, 1e-6)
	assert.InDelta(t, 0.5, d.Position.Z, 1e-5)
	assert.InDelta(t, 0, d.Rotation.X, 1e-6)
	assert.InDelta(t, math32.Pi/2, d.Rotation.Y, 1e-6)
	assert.InDelta(t, math32.Pi/4, d.Rotation.Z, 1e-6)
	assert.Equal(t, palette.Blue, d.Color)
	assert.Len(t, d.Edges, 12)
	assert.Equal(t, 7, rnd.i)
}

func TestGenerateBoundaryColor(t *testing.T) {
	rnd := &scripted{vals: []float64{0, 0, 0, 0, 0, 0, 0.5}}
	opts := DefaultOptions()
	opts.Count = 3
	for _, d := range Generate(line{}, opts, rnd) {
		assert.Equal(t, palette.None, d.Color)
	}
}

func TestGenerateReferenceScene(t *testing.T) {
	path := spline.Default()
	opts := DefaultOptions()
	decs := Generate(path, opts, NewRand(42))
	require.Len(t, decs, 55)

	for i, d := range decs {
		assert.Equal(t, i, d.Index)
		assert.Equal(t, float32(i)/55, d.BaseParam)
		assert.GreaterOrEqual(t, d.Param, float32(0))
		assert.Less(t, d.Param, float32(1))

		center := path.PointAt(d.Param)
		dx, dy := d.Position.X-center.X, d.Position.Y-center.Y
		assert.GreaterOrEqual(t, dx, float32(-0.4)-1e-5)
		assert.Less(t, dx, float32(0.6)+1e-5)
		assert.GreaterOrEqual(t, dy, float32(-0.4)-1e-5)
		assert.Less(t, dy, float32(0.6)+1e-5)
		assert.Equal(t, center.Z, d.Position.Z)

		for _, r := range []float32{d.Rotation.X, d.Rotation.Y, d.Rotation.Z} {
			assert.GreaterOrEqual(t, r, float32(0))
			assert.LessOrEqual(t, r, float32(math32.Pi))
		}
		if d.Color != palette.None {
			assert.Contains(t, palette.Colors, d.Color)
		}
		require.Len(t, d.Edges, 12)
		for _, e := range d.Edges {
			assert.InDelta(t, opts.Size, math32.Sqrt(e.B.Sub(e.A).Dot(e.B.Sub(e.A))), 1e-5)
			// every outline corner stays within half a diagonal of the cube center
			assert.LessOrEqual(t, math32.Sqrt(e.A.Sub(d.Position).Dot(e.A.Sub(d.Position))), opts.Size)
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	path := spline.Default()
	a := Generate(path, DefaultOptions(), NewRand(7))
	b := Generate(path, DefaultOptions(), NewRand(7))
	assert.Equal(t, a, b)

	c := Generate(path, DefaultOptions(), NewRand(8))
	assert.NotEqual(t, a, c)
}

func TestGenerateEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.Count = 0
	assert.Nil(t, Generate(line{}, opts, NewRand(1)))
}

func rotX(v math32.Vector3, a float32) math32.Vector3 {
	c, s := math32.Cos(a), math32.Sin(a)
	return math32.Vec3(v.X, v.Y*c-v.Z*s, v.Y*s+v.Z*c)
}

func rotY(v math32.Vector3, a float32) math32.Vector3 {
	c, s := math32.Cos(a), math32.Sin(a)
	return math32.Vec3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
}

func rotZ(v math32.Vector3, a float32) math32.Vector3 {
	c, s := math32.Cos(a), math32.Sin(a)
	return math32.Vec3(v.X*c-v.Y*s, v.X*s+v.Y*c, v.Z)
}

func TestGenerateRotatesOutlineXYZ(t *testing.T) {
	// jitter, x, y, then rotations of 0.5, 1 and 1.5 rad
	rnd := &scripted{vals: []float64{0, 0.5, 0.5, 0.5 / math.Pi, 1 / math.Pi, 1.5 / math.Pi, 0.1}}
	opts := DefaultOptions()
	opts.Count = 1
	decs := Generate(line{}, opts, rnd)
	require.Len(t, decs, 1)
	d := decs[0]
	require.InDelta(t, 1.5, d.Rotation.Z, 1e-6)

	h := opts.Size / 2
	var corners []math32.Vector3
	for _, x := range []float32{-h, h} {
		for _, y := range []float32{-h, h} {
			for _, z := range []float32{-h, h} {
				v := rotX(rotY(rotZ(math32.Vec3(x, y, z), d.Rotation.Z), d.Rotation.Y), d.Rotation.X)
				corners = append(corners, v.Add(d.Position))
			}
		}
	}
	near := func(p math32.Vector3) bool {
		for _, c := range corners {
			if p.DistanceTo(c) < 1e-5 {
				return true
			}
		}
		return false
	}
	require.Len(t, d.Edges, 12)
	for i, e := range d.Edges {
		assert.True(t, near(e.A), "edge %d start %v", i, e.A)
		assert.True(t, near(e.B), "edge %d end %v", i, e.B)
	}
}
