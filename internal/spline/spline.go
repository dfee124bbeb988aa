package spline

import (
	"errors"
	"fmt"
	"sort"

	"cogentcore.org/core/math32"
)

// ArcDivisions is the number of samples used to build the arc-length table.
const ArcDivisions = 200

// tangentDelta is the parameter step used for finite-difference tangents.
const tangentDelta = 0.0001

// ErrTooFewPoints is returned by NewClosed when the control polygon cannot form a loop.
var ErrTooFewPoints = errors.New("spline: a closed path needs at least 4 control points")

// Path is a closed centripetal Catmull-Rom curve through a fixed set of control points.
// It is parameterized by arc length: PointAt(p) for p in [0,1) moves at uniform speed,
// and PointAt(0) == PointAt(1). A Path is immutable after construction and safe to share.
type Path struct {
	points  []math32.Vector3
	lengths []float32 // cumulative arc length at t = i/ArcDivisions
}

// NewClosed returns a closed path through points. The slice is copied.
func NewClosed(points []math32.Vector3) (*Path, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewPoints, len(points))
	}
	p := &Path{points: make([]math32.Vector3, len(points))}
	copy(p.points, points)
	p.buildLengths()
	return p, nil
}

// Default returns the fixed loop the demo flies through.
func Default() *Path {
	p, err := NewClosed(DefaultPoints())
	if err != nil {
		panic(err)
	}
	return p
}

// ControlPoints returns a copy of the control points.
func (p *Path) ControlPoints() []math32.Vector3 {
	out := make([]math32.Vector3, len(p.points))
	copy(out, p.points)
	return out
}

// Length returns the total arc length of the loop (as measured by the arc table).
func (p *Path) Length() float32 {
	return p.lengths[len(p.lengths)-1]
}

// PointAt returns the point at arc-length parameter u. u is wrapped into [0,1).
func (p *Path) PointAt(u float32) math32.Vector3 {
	return p.pointAtT(p.uToT(Wrap(u)))
}

// TangentAt returns the unit tangent at arc-length parameter u. u is wrapped into [0,1).
func (p *Path) TangentAt(u float32) math32.Vector3 {
	t := p.uToT(Wrap(u))
	a := p.pointAtT(Wrap(t - tangentDelta))
	b := p.pointAtT(Wrap(t + tangentDelta))
	return b.Sub(a).Normal()
}

// Points returns divisions+1 points sampled uniformly in curve parameter,
// the last one closing the loop onto the first.
func (p *Path) Points(divisions int) []math32.Vector3 {
	if divisions < 1 {
		divisions = 1
	}
	out := make([]math32.Vector3, 0, divisions+1)
	for i := 0; i <= divisions; i++ {
		out = append(out, p.pointAtT(float32(i)/float32(divisions)))
	}
	return out
}

// Wrap normalizes a path parameter into [0,1).
func Wrap(u float32) float32 {
	m := math32.Mod(u, 1)
	if m < 0 {
		m++
	}
	if m >= 1 {
		m = 0
	}
	return m
}

func (p *Path) buildLengths() {
	p.lengths = make([]float32, ArcDivisions+1)
	last := p.pointAtT(0)
	var sum float32
	for i := 1; i <= ArcDivisions; i++ {
		cur := p.pointAtT(float32(i) / ArcDivisions)
		sum += math32.Sqrt(distSq(cur, last))
		p.lengths[i] = sum
		last = cur
	}
}

// uToT maps a normalized arc length to the curve parameter t.
func (p *Path) uToT(u float32) float32 {
	n := len(p.lengths)
	target := u * p.lengths[n-1]
	// largest i with lengths[i] <= target
	i := sort.Search(n, func(k int) bool { return p.lengths[k] > target }) - 1
	if i < 0 {
		i = 0
	}
	if i >= n-1 {
		return 1
	}
	before := p.lengths[i]
	if before == target {
		return float32(i) / float32(n-1)
	}
	seg := p.lengths[i+1] - before
	frac := (target - before) / seg
	return (float32(i) + frac) / float32(n-1)
}

// pointAtT evaluates the curve at parameter t in [0,1].
func (p *Path) pointAtT(t float32) math32.Vector3 {
	l := len(p.points)
	x := float32(l) * t
	ip := int(math32.Floor(x))
	w := x - float32(ip)
	ip = ((ip % l) + l) % l

	p0 := p.points[(ip-1+l)%l]
	p1 := p.points[ip]
	p2 := p.points[(ip+1)%l]
	p3 := p.points[(ip+2)%l]

	dt0 := math32.Pow(distSq(p0, p1), 0.25)
	dt1 := math32.Pow(distSq(p1, p2), 0.25)
	dt2 := math32.Pow(distSq(p2, p3), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}
	return math32.Vec3(
		nonUniform(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2).at(w),
		nonUniform(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2).at(w),
		nonUniform(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2).at(w),
	)
}

func distSq(a, b math32.Vector3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// cubic holds c0 + c1 t + c2 t^2 + c3 t^3.
type cubic struct {
	c0, c1, c2, c3 float32
}

func (c cubic) at(t float32) float32 {
	t2 := t * t
	return c.c0 + c.c1*t + c.c2*t2 + c.c3*t2*t
}

// hermite builds the cubic from end values x0, x1 and end tangents t0, t1.
func hermite(x0, x1, t0, t1 float32) cubic {
	return cubic{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

// nonUniform is the Catmull-Rom segment between x1 and x2 with knot spacing dt0..dt2.
func nonUniform(x0, x1, x2, x3, dt0, dt1, dt2 float32) cubic {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	return hermite(x1, x2, t1*dt1, t2*dt1)
}
