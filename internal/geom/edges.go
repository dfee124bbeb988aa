package geom

import (
	"cogentcore.org/core/math32"
)

// edgePrecision is the grid vertices are snapped to before edges are matched,
// so coincident vertices of neighboring faces are treated as one.
const edgePrecision = 1e4

type vkey [3]int32

func keyOf(v math32.Vector3) vkey {
	return vkey{
		int32(math32.Round(v.X * edgePrecision)),
		int32(math32.Round(v.Y * edgePrecision)),
		int32(math32.Round(v.Z * edgePrecision)),
	}
}

type halfEdge struct {
	from, to vkey
}

type pendingEdge struct {
	a, b   math32.Vector3
	normal math32.Vector3
	open   bool
}

// Edges returns the outline of m: every edge between two triangles whose normals differ
// by more than thresholdDeg degrees, plus every edge that belongs to a single triangle.
// Degenerate triangles are ignored. The result order is deterministic for a given mesh.
func Edges(m *Mesh, thresholdDeg float32) []Segment {
	thresholdDot := math32.Cos(math32.DegToRad(thresholdDeg))

	var out []Segment
	index := make(map[halfEdge]int)
	var pending []pendingEdge

	for t := 0; t < m.NumTriangles(); t++ {
		a, b, c := m.Triangle(t)
		verts := [3]math32.Vector3{a, b, c}
		keys := [3]vkey{keyOf(a), keyOf(b), keyOf(c)}
		if keys[0] == keys[1] || keys[1] == keys[2] || keys[2] == keys[0] {
			continue
		}
		normal := c.Sub(b).Cross(a.Sub(b)).Normal()

		for j := 0; j < 3; j++ {
			next := (j + 1) % 3
			fwd := halfEdge{keys[j], keys[next]}
			rev := halfEdge{keys[next], keys[j]}
			if i, ok := index[rev]; ok && pending[i].open {
				if normal.Dot(pending[i].normal) <= thresholdDot {
					out = append(out, Segment{A: pending[i].a, B: pending[i].b})
				}
				pending[i].open = false
				continue
			}
			if _, ok := index[fwd]; ok {
				continue
			}
			index[fwd] = len(pending)
			pending = append(pending, pendingEdge{a: verts[j], b: verts[next], normal: normal, open: true})
		}
	}

	for _, p := range pending {
		if p.open {
			out = append(out, Segment{A: p.a, B: p.b})
		}
	}
	return out
}
