package geom

import (
	"cogentcore.org/core/math32"
)

// Frames holds a moving coordinate frame sampled at segments+1 points along a curve.
type Frames struct {
	Tangents  []math32.Vector3
	Normals   []math32.Vector3
	Binormals []math32.Vector3
}

// NewFrames computes parallel-transport frames along path at segments+1 evenly spaced
// parameters. When closed is set, the accumulated twist between the first and the last
// frame is spread evenly over the loop so the frames meet without a seam.
func NewFrames(path Curve, segments int, closed bool) Frames {
	n := segments + 1
	fr := Frames{
		Tangents:  make([]math32.Vector3, n),
		Normals:   make([]math32.Vector3, n),
		Binormals: make([]math32.Vector3, n),
	}
	for i := 0; i < n; i++ {
		fr.Tangents[i] = path.TangentAt(float32(i) / float32(segments)).Normal()
	}

	// initial normal: perpendicular to the tangent, away from its smallest component
	t0 := fr.Tangents[0]
	axis := math32.Vec3(1, 0, 0)
	smallest := math32.Abs(t0.X)
	if ay := math32.Abs(t0.Y); ay <= smallest {
		smallest = ay
		axis = math32.Vec3(0, 1, 0)
	}
	if az := math32.Abs(t0.Z); az <= smallest {
		axis = math32.Vec3(0, 0, 1)
	}
	v := t0.Cross(axis).Normal()
	fr.Normals[0] = t0.Cross(v)
	fr.Binormals[0] = t0.Cross(fr.Normals[0])

	for i := 1; i < n; i++ {
		fr.Normals[i] = fr.Normals[i-1]
		v := fr.Tangents[i-1].Cross(fr.Tangents[i])
		if v.Length() > 1e-6 {
			v = v.Normal()
			theta := math32.Acos(math32.Clamp(fr.Tangents[i-1].Dot(fr.Tangents[i]), -1, 1))
			fr.Normals[i] = Rotate(fr.Normals[i], v, theta)
		}
		fr.Binormals[i] = fr.Tangents[i].Cross(fr.Normals[i])
	}

	if closed {
		theta := math32.Acos(math32.Clamp(fr.Normals[0].Dot(fr.Normals[segments]), -1, 1)) / float32(segments)
		if fr.Tangents[0].Dot(fr.Normals[0].Cross(fr.Normals[segments])) > 0 {
			theta = -theta
		}
		for i := 1; i < n; i++ {
			fr.Normals[i] = Rotate(fr.Normals[i], fr.Tangents[i], theta*float32(i))
			fr.Binormals[i] = fr.Tangents[i].Cross(fr.Normals[i])
		}
	}
	return fr
}

// TubeN returns the vertex and index counts of a tube with the given tessellation.
func TubeN(segments, radialSegments int) (numVertex, nIndex int) {
	numVertex = (segments + 1) * (radialSegments + 1)
	nIndex = segments * radialSegments * 6
	return
}

// NewTube sweeps a circle of the given radius along path. segments is the number of
// rings along the path, radialSegments the number of sides of each ring. When closed
// is set the last ring is placed exactly on the first one.
func NewTube(path Curve, segments int, radius float32, radialSegments int, closed bool) *Mesh {
	if segments < 1 {
		segments = 1
	}
	if radialSegments < 3 {
		radialSegments = 3
	}
	fr := NewFrames(path, segments, closed)
	numVertex, nIndex := TubeN(segments, radialSegments)
	m := &Mesh{
		Vertices: make([]math32.Vector3, 0, numVertex),
		Indices:  make([]uint32, 0, nIndex),
	}

	for i := 0; i <= segments; i++ {
		fi := i
		if closed && i == segments {
			fi = 0
		}
		center := path.PointAt(float32(fi) / float32(segments))
		nrm, bin := fr.Normals[fi], fr.Binormals[fi]
		for j := 0; j <= radialSegments; j++ {
			v := float32(j) / float32(radialSegments) * math32.Pi * 2
			sin := math32.Sin(v)
			cos := -math32.Cos(v)
			dir := nrm.MulScalar(cos).Add(bin.MulScalar(sin)).Normal()
			m.Vertices = append(m.Vertices, center.Add(dir.MulScalar(radius)))
		}
	}

	ring := uint32(radialSegments + 1)
	for j := uint32(1); j <= uint32(segments); j++ {
		for i := uint32(1); i <= uint32(radialSegments); i++ {
			a := ring*(j-1) + (i - 1)
			b := ring*j + (i - 1)
			c := ring*j + i
			d := ring*(j-1) + i
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	m.computeBBox()
	return m
}
