package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the default config file path, relative to the process working directory.
const Path = "config/tunnel.yaml"

// Prefs holds everything the flythrough reads at startup. Fields missing from the file
// keep their Default() values.
type Prefs struct {
	Window Window `yaml:"window"`
	Scene  Scene  `yaml:"scene"`
	Bloom  Bloom  `yaml:"bloom"`
	Debug  Debug  `yaml:"debug"`
	// Seed seeds the decoration RNG. 0 picks a time-based seed each run.
	Seed uint64 `yaml:"seed"`
}

// Window sizes the display surface.
type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
}

// Scene holds the tunnel, decoration and camera constants.
type Scene struct {
	TubeRadius         float32 `yaml:"tube_radius"`
	TubeSegments       int     `yaml:"tube_segments"`
	TubeRadialSegments int     `yaml:"tube_radial_segments"`
	EdgeThresholdDeg   float32 `yaml:"edge_threshold_deg"`
	BoxCount           int     `yaml:"box_count"`
	BoxSize            float32 `yaml:"box_size"`
	LoopPeriod         float64 `yaml:"loop_period"`
	SpeedFactor        float64 `yaml:"speed_factor"`
	LookAhead          float32 `yaml:"look_ahead"`
	FogDensity         float32 `yaml:"fog_density"`
	FOV                float32 `yaml:"fov"`
	PathDivisions      int     `yaml:"path_divisions"`
	OrbitFrequency     float64 `yaml:"orbit_frequency"`
}

// Bloom holds the glow pass parameters.
type Bloom struct {
	Enabled   bool    `yaml:"enabled"`
	Strength  float32 `yaml:"strength"`
	Threshold float32 `yaml:"threshold"`
	Radius    float32 `yaml:"radius"`
}

// Debug toggles the overlays.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_mem_alloc"`
	ShowPath     bool `yaml:"show_path"`
}

// Default returns the reference flythrough: 1280x720 at 60 FPS, bloom on, overlays off.
func Default() Prefs {
	return Prefs{
		Window: Window{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			Title:     "tunnel",
		},
		Scene: Scene{
			TubeRadius:         0.65,
			TubeSegments:       222,
			TubeRadialSegments: 16,
			EdgeThresholdDeg:   0.2,
			BoxCount:           55,
			BoxSize:            0.075,
			LoopPeriod:         8000,
			SpeedFactor:        0.1,
			LookAhead:          0.03,
			FogDensity:         0.3,
			FOV:                75,
			PathDivisions:      100,
			OrbitFrequency:     4,
		},
		Bloom: Bloom{
			Enabled:   true,
			Strength:  3.5,
			Threshold: 0.002,
			Radius:    0,
		},
	}
}

// Load reads preferences from path. A missing file yields Default() and no error.
// A malformed file yields Default() and the parse error so the caller can warn.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the parent directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("invalid value")

// Validate rejects values the builders cannot work with.
func (p Prefs) Validate() error {
	switch {
	case p.Window.Width <= 0 || p.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", p.Window.Width, p.Window.Height, ErrInvalid)
	case p.Scene.TubeSegments < 3 || p.Scene.TubeRadialSegments < 3:
		return fmt.Errorf("tube segments %d/%d: %w", p.Scene.TubeSegments, p.Scene.TubeRadialSegments, ErrInvalid)
	case p.Scene.TubeRadius <= 0 || p.Scene.BoxSize <= 0:
		return fmt.Errorf("tube radius %v, box size %v: %w", p.Scene.TubeRadius, p.Scene.BoxSize, ErrInvalid)
	case p.Scene.BoxCount < 0:
		return fmt.Errorf("box count %d: %w", p.Scene.BoxCount, ErrInvalid)
	case p.Scene.LoopPeriod <= 0 || p.Scene.SpeedFactor <= 0:
		return fmt.Errorf("loop period %v, speed %v: %w", p.Scene.LoopPeriod, p.Scene.SpeedFactor, ErrInvalid)
	case p.Scene.FOV <= 0 || p.Scene.FOV >= 180:
		return fmt.Errorf("fov %v: %w", p.Scene.FOV, ErrInvalid)
	}
	return nil
}
