package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the runtime overlays (FPS, heap, loop progress). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowProgress bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastLoopText string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Visible reports whether any overlay is on.
func (d *Debug) Visible() bool {
	return d.ShowFPS || d.ShowMemAlloc || d.ShowProgress
}

// Toggle flips every overlay together: all on when any is off, otherwise all off.
func (d *Debug) Toggle() {
	on := !(d.ShowFPS && d.ShowMemAlloc && d.ShowProgress)
	d.ShowFPS, d.ShowMemAlloc, d.ShowProgress = on, on, on
}

// LoopText formats the camera's loop progress for path parameter p.
func LoopText(p float32, segments int) string {
	return fmt.Sprintf("Loop: %5.1f%%  Lines: %d", p*100, segments)
}

// Draw renders the enabled overlays top-right in green. Call after the scene.
// p is the camera path parameter and segments the number of lines drawn per frame.
func (d *Debug) Draw(p float32, segments int) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") ||
		(d.ShowProgress && d.lastLoopText == "") {
		update = true
	}

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, y)
		y += lineHeight
	}
	if d.ShowProgress {
		if update {
			d.lastLoopText = LoopText(p, segments)
		}
		drawRight(d.lastLoopText, y)
	}
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	x := int32(rl.GetScreenWidth()) - w - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
