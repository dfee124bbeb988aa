package camera

import (
	"math"

	"cogentcore.org/core/math32"
	"github.com/charmbracelet/harmonica"

	"tunnel/internal/geom"
)

// maxPitch keeps the orbit away from the poles so the up vector stays valid.
const maxPitch = math.Pi/2 - 0.05

// OrbitOptions configures the damped manual controls.
// Frequency and DampingRatio parameterize the spring that pulls each velocity back to 0;
// a ratio of 1 is critically damped (no overshoot).
type OrbitOptions struct {
	FPS          int
	Frequency    float64
	DampingRatio float64
}

// DefaultOrbitOptions returns critically damped controls for 60 FPS.
func DefaultOrbitOptions() OrbitOptions {
	return OrbitOptions{FPS: 60, Frequency: 4, DampingRatio: 1}
}

// axis tracks one control offset and its decaying velocity.
type axis struct {
	Position float64
	Velocity float64
	accel    float64
	spring   harmonica.Spring
}

func newAxis(o OrbitOptions) axis {
	return axis{spring: harmonica.NewSpring(harmonica.FPS(o.FPS), o.Frequency, o.DampingRatio)}
}

func (a *axis) update() {
	a.Position += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Orbit holds the manual camera offsets applied on top of the path follower:
// yaw/pitch around the look-at target, pan of both eye and target, and a log-scale zoom
// of the eye distance. Input adds velocity; Update integrates and damps it.
type Orbit struct {
	opts  OrbitOptions
	yaw   axis
	pitch axis
	panX  axis
	panY  axis
	zoom  axis
}

// NewOrbit returns controls at rest.
func NewOrbit(opts OrbitOptions) *Orbit {
	if opts.FPS <= 0 {
		opts.FPS = DefaultOrbitOptions().FPS
	}
	o := &Orbit{opts: opts}
	o.Reset()
	return o
}

// Reset drops all offsets and velocities.
func (o *Orbit) Reset() {
	o.yaw = newAxis(o.opts)
	o.pitch = newAxis(o.opts)
	o.panX = newAxis(o.opts)
	o.panY = newAxis(o.opts)
	o.zoom = newAxis(o.opts)
}

// Rotate adds angular velocity in radians per frame.
func (o *Orbit) Rotate(dYaw, dPitch float64) {
	o.yaw.Velocity += dYaw
	o.pitch.Velocity += dPitch
}

// Pan adds sideways and vertical velocity in world units per frame.
func (o *Orbit) Pan(dx, dy float64) {
	o.panX.Velocity += dx
	o.panY.Velocity += dy
}

// Zoom adds log-distance velocity; positive moves the eye away from the target.
func (o *Orbit) Zoom(d float64) {
	o.zoom.Velocity += d
}

// Update advances one frame.
func (o *Orbit) Update() {
	o.yaw.update()
	o.pitch.update()
	o.pitch.Position = math.Max(-maxPitch, math.Min(maxPitch, o.pitch.Position))
	o.panX.update()
	o.panY.update()
	o.zoom.update()
}

// Offsets returns the current yaw, pitch, pan and zoom offsets.
func (o *Orbit) Offsets() (yaw, pitch, panX, panY, zoom float64) {
	return o.yaw.Position, o.pitch.Position, o.panX.Position, o.panY.Position, o.zoom.Position
}

// Moving reports whether any control still has noticeable velocity.
func (o *Orbit) Moving() bool {
	for _, a := range []*axis{&o.yaw, &o.pitch, &o.panX, &o.panY, &o.zoom} {
		if math.Abs(a.Velocity) > 1e-5 {
			return true
		}
	}
	return false
}

// Apply returns eye and target after applying the offsets to the follower's pose.
func (o *Orbit) Apply(eye, target math32.Vector3) (math32.Vector3, math32.Vector3) {
	up := math32.Vec3(0, 1, 0)
	view := eye.Sub(target)
	if view.Dot(view) == 0 {
		view = math32.Vec3(0, 0, 1)
	}

	view = geom.Rotate(view, up, float32(o.yaw.Position))
	right := up.Cross(view)
	if right.Dot(right) > 1e-12 {
		view = geom.Rotate(view, right.Normal(), float32(o.pitch.Position))
	}
	view = view.MulScalar(float32(math.Exp(o.zoom.Position)))

	var pan math32.Vector3
	if right.Dot(right) > 1e-12 {
		pan = right.Normal().MulScalar(float32(o.panX.Position))
	}
	pan = pan.Add(up.MulScalar(float32(o.panY.Position)))

	target = target.Add(pan)
	return target.Add(view), target
}
