package geom

import "cogentcore.org/core/math32"

// boxFaces lists each face as its outward axis and the two in-plane axes (u, v),
// ordered so that u x v points along the outward axis.
var boxFaces = [6][3]math32.Vector3{
	{{X: 1}, {Z: -1}, {Y: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {X: 1}, {Z: -1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: -1}, {Y: 1}},
}

// NewBox returns an axis-aligned cube of edge length size centered at the origin.
// Each face has its own four vertices (24 in total) and two triangles.
func NewBox(size float32) *Mesh {
	h := size / 2
	m := &Mesh{
		Vertices: make([]math32.Vector3, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range boxFaces {
		n, u, v := f[0].MulScalar(h), f[1].MulScalar(h), f[2].MulScalar(h)
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			n.Sub(u).Sub(v),
			n.Add(u).Sub(v),
			n.Add(u).Add(v),
			n.Sub(u).Add(v),
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.computeBBox()
	return m
}
