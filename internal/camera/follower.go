// Package camera moves the view along the tunnel path and layers the damped
// manual orbit controls on top of it.
package camera

import (
	"math"

	"cogentcore.org/core/math32"

	"tunnel/internal/spline"
)

// Sampler is the part of a path the follower needs.
type Sampler interface {
	PointAt(u float32) math32.Vector3
}

// Options configures the path follower.
// LoopPeriod is the loop length in scaled time units and SpeedFactor scales the raw
// elapsed time (milliseconds) into those units, so one loop lasts
// LoopPeriod/SpeedFactor raw units. LookAhead is the path parameter offset of the
// look-at target.
type Options struct {
	LoopPeriod  float64
	SpeedFactor float64
	LookAhead   float32
}

// DefaultOptions returns an 8000-unit loop at speed 0.1 (80 s per loop) looking 0.03 ahead.
func DefaultOptions() Options {
	return Options{
		LoopPeriod:  8000,
		SpeedFactor: 0.1,
		LookAhead:   0.03,
	}
}

// Follower computes the camera position and target for an elapsed time.
// It holds no state besides its path and options; Update is a pure function of t.
type Follower struct {
	path Sampler
	opts Options
}

// NewFollower returns a follower over path. Non-positive options fall back to defaults.
func NewFollower(path Sampler, opts Options) *Follower {
	def := DefaultOptions()
	if opts.LoopPeriod <= 0 {
		opts.LoopPeriod = def.LoopPeriod
	}
	if opts.SpeedFactor <= 0 {
		opts.SpeedFactor = def.SpeedFactor
	}
	if opts.LookAhead <= 0 {
		opts.LookAhead = def.LookAhead
	}
	return &Follower{path: path, opts: opts}
}

// Period returns the raw elapsed time of one full loop.
func (f *Follower) Period() float64 {
	return f.opts.LoopPeriod / f.opts.SpeedFactor
}

// Param returns the path parameter in [0,1) for elapsed time t.
func (f *Follower) Param(t float64) float32 {
	l := f.opts.LoopPeriod
	m := math.Mod(t*f.opts.SpeedFactor, l)
	if m < 0 {
		m += l
	}
	return spline.Wrap(float32(m / l))
}

// LookAheadParam returns the wrapped parameter of the look-at target for camera parameter p.
func (f *Follower) LookAheadParam(p float32) float32 {
	return spline.Wrap(p + f.opts.LookAhead)
}

// Update returns the camera position and look-at target at elapsed time t.
func (f *Follower) Update(t float64) (position, lookAt math32.Vector3) {
	p := f.Param(t)
	return f.path.PointAt(p), f.path.PointAt(f.LookAheadParam(p))
}
