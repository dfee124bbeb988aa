package geom

import "cogentcore.org/core/math32"

// Rotation is a chain of rotation matrices applied to a vector first to last.
type Rotation []math32.Matrix4

// QuatRotation returns the rotation described by q.
func QuatRotation(q math32.Quat) Rotation {
	r := make(Rotation, 1)
	r[0].SetRotationFromQuat(q)
	return r
}

// AxisAngle returns the rotation by angle radians around the unit vector axis.
func AxisAngle(axis math32.Vector3, angle float32) Rotation {
	return QuatRotation(math32.NewQuatAxisAngle(axis, angle))
}

// EulerXYZ returns the rotation Rx·Ry·Rz for the angles in e, so a vector is
// turned around Z first and around X last.
func EulerXYZ(e math32.Vector3) Rotation {
	r := make(Rotation, 3)
	r[0].SetRotationZ(e.Z)
	r[1].SetRotationY(e.Y)
	r[2].SetRotationX(e.X)
	return r
}

// Apply returns v rotated by r.
func (r Rotation) Apply(v math32.Vector3) math32.Vector3 {
	for i := range r {
		v = v.MulMatrix4(&r[i])
	}
	return v
}

// Rotate returns v rotated by angle radians around the unit vector axis.
func Rotate(v, axis math32.Vector3, angle float32) math32.Vector3 {
	return AxisAngle(axis, angle).Apply(v)
}
