package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"tunnel/internal/camera"
	"tunnel/internal/config"
	"tunnel/internal/postfx"
	"tunnel/internal/world"
)

// Scene holds the raylib camera and draws the world through the bloom pass.
// Update moves the camera along the path with the orbit offsets on top;
// Draw renders the tunnel and decoration outlines.
type Scene struct {
	Camera   rl.Camera3D
	ShowPath bool

	world *world.World
	orbit *camera.Orbit
	bloom *postfx.Bloom
	log   *slog.Logger
	prefs config.Prefs
	param float32 // path parameter of the last Update
}

// New returns a scene over w. The camera starts at (0,0,5) looking at the origin with the
// configured vertical FOV until the first Update. GPU resources are created in Init.
func New(w *world.World, prefs config.Prefs, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	s := &Scene{
		world:    w,
		prefs:    prefs,
		log:      log,
		ShowPath: prefs.Debug.ShowPath,
		orbit: camera.NewOrbit(camera.OrbitOptions{
			FPS:          prefs.Window.TargetFPS,
			Frequency:    prefs.Scene.OrbitFrequency,
			DampingRatio: 1,
		}),
	}
	s.Camera.Position = rl.NewVector3(0, 0, 5)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = prefs.Scene.FOV
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Init allocates the bloom targets for a w x h screen. Call once the window exists.
func (s *Scene) Init(w, h int) error {
	b, err := postfx.NewBloom(w, h, postfx.Params{
		Strength:  s.prefs.Bloom.Strength,
		Threshold: s.prefs.Bloom.Threshold,
		Radius:    s.prefs.Bloom.Radius,
	})
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	b.SetEnabled(s.prefs.Bloom.Enabled)
	s.bloom = b
	p := b.Params()
	s.log.Info("bloom ready", "width", w, "height", h,
		"strength", p.Strength, "threshold", p.Threshold, "radius", p.Radius)
	return nil
}

// Resize reallocates the bloom targets. A failed reallocation disables the bloom pass
// and the scene is drawn directly.
func (s *Scene) Resize(w, h int) {
	if s.bloom == nil {
		return
	}
	if err := s.bloom.Resize(w, h); err != nil {
		s.log.Error("bloom resize failed, drawing without bloom", "width", w, "height", h, "err", err)
		s.bloom.Unload()
		s.bloom = nil
		return
	}
	bw, bh := s.bloom.Size()
	s.log.Info("resized", "width", bw, "height", bh)
}

// Unload frees GPU resources.
func (s *Scene) Unload() {
	if s.bloom != nil {
		s.bloom.Unload()
		s.bloom = nil
	}
}

// Param returns the path parameter of the camera at the last Update.
func (s *Scene) Param() float32 {
	return s.param
}

// Update reads the orbit input and places the camera for elapsed time t (milliseconds).
func (s *Scene) Update(t float64) {
	s.handleInput()
	s.orbit.Update()

	s.param = s.world.Follower.Param(t)
	eye, target := s.world.Follower.Update(t)
	eye, target = s.orbit.Apply(eye, target)
	s.Camera.Position = vec(eye)
	s.Camera.Target = vec(target)
}

// Draw renders the scene through the bloom pass, or directly when bloom is unavailable.
func (s *Scene) Draw() {
	if s.bloom != nil {
		s.bloom.Render(s.draw3D)
		return
	}
	s.draw3D()
}

func (s *Scene) draw3D() {
	rl.BeginMode3D(s.Camera)
	eye := math32.Vec3(s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z)
	target := math32.Vec3(s.Camera.Target.X, s.Camera.Target.Y, s.Camera.Target.Z)
	forward := target.Sub(eye).Normal()
	density := s.prefs.Scene.FogDensity

	drawSegments(s.world.TubeEdges, lineColor, eye, forward, density)
	for _, d := range s.world.Decorations {
		drawSegments(d.Edges, d.Color.RGBA(), eye, forward, density)
	}
	if s.ShowPath {
		// the debug centerline ignores fog so the whole loop stays visible
		drawSegments(s.world.Centerline, pathColor, eye, forward, 0)
	}
	rl.EndMode3D()
}
