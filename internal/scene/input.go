package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	rotateSpeed = 0.0003 // radians per frame per pixel of drag
	panSpeed    = 0.0002 // world units per pixel of drag
	zoomSpeed   = 0.005  // log-distance per wheel notch
)

// handleInput maps mouse drags to orbit velocity: left drag orbits, right drag pans,
// the wheel zooms. B toggles bloom, L the centerline and R resets the orbit.
func (s *Scene) handleInput() {
	delta := rl.GetMouseDelta()
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		s.orbit.Rotate(float64(-delta.X*rotateSpeed), float64(-delta.Y*rotateSpeed))
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		s.orbit.Pan(float64(-delta.X*panSpeed), float64(delta.Y*panSpeed))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.orbit.Zoom(float64(-wheel * zoomSpeed))
	}

	if rl.IsKeyPressed(rl.KeyB) && s.bloom != nil {
		s.bloom.SetEnabled(!s.bloom.Enabled())
		s.log.Info("bloom toggled", "enabled", s.bloom.Enabled())
	}
	if rl.IsKeyPressed(rl.KeyL) {
		s.ShowPath = !s.ShowPath
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.orbit.Reset()
		s.log.Info("orbit reset")
	}
}
