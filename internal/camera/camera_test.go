package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"tunnel/internal/spline"
)

func assertVecNear(t *testing.T, want, got math32.Vector3, tol float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
	assert.InDelta(t, want.Z, got.Z, tol, "Z")
}

func TestParam(t *testing.T) {
	f := NewFollower(spline.Default(), DefaultOptions())
	assert.InDelta(t, 80000.0, f.Period(), 1e-6)
	assert.Equal(t, float32(0), f.Param(0))
	assert.InDelta(t, 0.5, f.Param(40000), 1e-6)
	assert.InDelta(t, 0.25, f.Param(100000), 1e-6)
	assert.InDelta(t, 0.75, f.Param(-20000), 1e-6)
	for _, ts := range []float64{0, 1, 79999.9, 80000, 1e9 + 3} {
		p := f.Param(ts)
		assert.GreaterOrEqual(t, p, float32(0))
		assert.Less(t, p, float32(1))
	}
}

func TestUpdateIsPeriodic(t *testing.T) {
	f := NewFollower(spline.Default(), DefaultOptions())
	for _, ts := range []float64{0, 16.7, 1234.5, 55555, 79990} {
		p1, l1 := f.Update(ts)
		p2, l2 := f.Update(ts + 80000)
		assertVecNear(t, p1, p2, 1e-3)
		assertVecNear(t, l1, l2, 1e-3)
	}
}

func TestLookAtIsAhead(t *testing.T) {
	path := spline.Default()
	f := NewFollower(path, DefaultOptions())

	assert.InDelta(t, 0.02, f.LookAheadParam(0.99), 1e-6)
	assert.InDelta(t, 0.53, f.LookAheadParam(0.5), 1e-6)

	for _, ts := range []float64{0, 20000, 79200, 79999} {
		pos, lookAt := f.Update(ts)
		p := f.Param(ts)
		assert.Equal(t, path.PointAt(p), pos)
		assert.Equal(t, path.PointAt(spline.Wrap(p+0.03)), lookAt)
		// the target sits ahead along the direction of travel
		assert.Greater(t, lookAt.Sub(pos).Dot(path.TangentAt(p)), float32(0))
	}
}

func TestNewFollowerDefaults(t *testing.T) {
	f := NewFollower(spline.Default(), Options{})
	assert.Equal(t, DefaultOptions(), f.opts)
}

func TestOrbitAtRestIsIdentity(t *testing.T) {
	o := NewOrbit(DefaultOrbitOptions())
	eye, target := math32.Vec3(1, 2, 3), math32.Vec3(1, 2, 5)
	gotEye, gotTarget := o.Apply(eye, target)
	assertVecNear(t, eye, gotEye, 1e-6)
	assertVecNear(t, target, gotTarget, 1e-6)
	assert.False(t, o.Moving())
}

func TestOrbitDampsToRest(t *testing.T) {
	o := NewOrbit(DefaultOrbitOptions())
	o.Rotate(0.05, 0)
	assert.True(t, o.Moving())
	for i := 0; i < 600; i++ {
		o.Update()
	}
	assert.False(t, o.Moving())
	yaw, _, _, _, _ := o.Offsets()
	assert.Greater(t, yaw, 0.05)

	o.Reset()
	yaw, pitch, px, py, zoom := o.Offsets()
	assert.Zero(t, yaw+pitch+px+py+zoom)
}

func TestOrbitYawKeepsDistance(t *testing.T) {
	o := NewOrbit(DefaultOrbitOptions())
	o.yaw.Position = math32.Pi / 2
	eye, target := math32.Vec3(0, 0, 2), math32.Vec3(0, 0, 0)
	gotEye, gotTarget := o.Apply(eye, target)
	assertVecNear(t, target, gotTarget, 1e-6)
	assert.InDelta(t, 2, gotEye.Length(), 1e-5)
	assertVecNear(t, math32.Vec3(2, 0, 0), gotEye, 1e-5)
}

func TestOrbitPitchIsClamped(t *testing.T) {
	o := NewOrbit(DefaultOrbitOptions())
	o.Rotate(0, 10)
	for i := 0; i < 100; i++ {
		o.Update()
	}
	_, pitch, _, _, _ := o.Offsets()
	assert.LessOrEqual(t, pitch, maxPitch)
}

func TestOrbitZoomAndPan(t *testing.T) {
	o := NewOrbit(DefaultOrbitOptions())
	o.zoom.Position = 0.6931471805599453 // ln 2
	o.panY.Position = 1
	eye, target := math32.Vec3(0, 0, 2), math32.Vec3(0, 0, 0)
	gotEye, gotTarget := o.Apply(eye, target)
	assertVecNear(t, math32.Vec3(0, 1, 0), gotTarget, 1e-6)
	assertVecNear(t, math32.Vec3(0, 1, 4), gotEye, 1e-5)
}
