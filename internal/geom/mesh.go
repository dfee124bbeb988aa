// Package geom builds the triangle meshes of the tunnel and its decorations
// and derives the line-segment outlines that are actually drawn.
package geom

import "cogentcore.org/core/math32"

// Curve is a closed curve sampled by a normalized parameter in [0,1).
type Curve interface {
	PointAt(u float32) math32.Vector3
	TangentAt(u float32) math32.Vector3
}

// Mesh is an indexed triangle mesh. Meshes are built once and not mutated afterwards.
type Mesh struct {
	Vertices []math32.Vector3
	Indices  []uint32 // three per triangle
	BBox     math32.Box3
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c math32.Vector3) {
	return m.Vertices[m.Indices[3*i]], m.Vertices[m.Indices[3*i+1]], m.Vertices[m.Indices[3*i+2]]
}

func (m *Mesh) computeBBox() {
	m.BBox = math32.B3Empty()
	for _, v := range m.Vertices {
		m.BBox.ExpandByPoint(v)
	}
}

// Segment is one straight line of an outline.
type Segment struct {
	A, B math32.Vector3
}

// Midpoint returns the center of the segment.
func (s Segment) Midpoint() math32.Vector3 {
	return s.A.Add(s.B).MulScalar(0.5)
}

// Transform rotates the segment by r and then translates it by offset.
func (s Segment) Transform(r Rotation, offset math32.Vector3) Segment {
	return Segment{
		A: r.Apply(s.A).Add(offset),
		B: r.Apply(s.B).Add(offset),
	}
}

// TransformAll applies Transform to every segment and returns a new slice.
func TransformAll(segs []Segment, r Rotation, offset math32.Vector3) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = s.Transform(r, offset)
	}
	return out
}
