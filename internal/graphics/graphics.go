package graphics

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tunnel/internal/config"
)

// Hooks are the per-frame callbacks of Run. Any of them may be nil.
// Init runs once after the window and GL context exist, with the screen size; an
// error from Init closes the window and is returned by Run.
// Update receives the elapsed time in milliseconds since the window opened.
// Draw runs between BeginDrawing and EndDrawing after the screen is cleared.
// Resize fires when the screen size changes. Close runs before the window closes.
type Hooks struct {
	Init   func(w, h int) error
	Update func(t float64)
	Draw   func()
	Resize func(w, h int)
	Close  func()
}

// Run opens the window and drives the frame loop until the window is closed.
// Each frame reads the monotonic clock, calls Update, then clears the screen and calls Draw.
func Run(win config.Window, log *slog.Logger, h Hooks) error {
	if log != nil {
		rl.SetTraceLogCallback(func(level int, text string) {
			switch {
			case level >= int(rl.LogError):
				log.Error(text, "source", "raylib")
			case level >= int(rl.LogWarning):
				log.Warn(text, "source", "raylib")
			default:
				log.Debug(text, "source", "raylib")
			}
		})
	}
	rl.SetTraceLogLevel(rl.LogWarning)

	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	width, height := int32(win.Width), int32(win.Height)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()

	rl.SetWindowMinSize(320, 180)
	if win.TargetFPS > 0 {
		rl.SetTargetFPS(int32(win.TargetFPS))
	}

	w, ht := rl.GetScreenWidth(), rl.GetScreenHeight()
	if h.Init != nil {
		if err := h.Init(w, ht); err != nil {
			return err
		}
	}
	if h.Close != nil {
		defer h.Close()
	}
	if log != nil {
		log.Info("window open", "width", w, "height", ht, "fullscreen", win.Fullscreen)
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			nw, nh := rl.GetScreenWidth(), rl.GetScreenHeight()
			if nw != w || nh != ht {
				w, ht = nw, nh
				if h.Resize != nil {
					h.Resize(w, ht)
				}
			}
		}

		if h.Update != nil {
			h.Update(rl.GetTime() * 1000)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if h.Draw != nil {
			h.Draw()
		}
		rl.EndDrawing()
	}
	return nil
}
