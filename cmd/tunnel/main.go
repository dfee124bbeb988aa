package main

import (
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tunnel/internal/capture"
	"tunnel/internal/config"
	"tunnel/internal/debug"
	"tunnel/internal/decor"
	"tunnel/internal/env"
	"tunnel/internal/graphics"
	"tunnel/internal/logger"
	"tunnel/internal/scene"
	"tunnel/internal/world"
)

func main() {
	lg := logger.New(logger.LogFilePath, os.Stderr)
	log := lg.Slog(slog.LevelInfo)

	prefs, err := config.Load(config.Path)
	if err != nil {
		log.Warn("config ignored, using defaults", "path", config.Path, "err", err)
	}
	vars, err := env.Load(env.File)
	if err != nil {
		log.Warn("env file ignored", "path", env.File, "err", err)
	}
	if err := prefs.ApplyEnv(env.Lookup(vars)); err != nil {
		log.Warn("env overrides skipped", "err", err)
	}
	if err := prefs.Validate(); err != nil {
		log.Warn("overrides rejected, using defaults", "err", err)
		prefs = config.Default()
	}

	start := time.Now()
	w := world.Build(prefs.Scene, decor.NewRand(prefs.Seed))
	log.Info("world built",
		"tube_edges", len(w.TubeEdges),
		"decorations", len(w.Decorations),
		"path_length", w.Path.Length(),
		"seed", prefs.Seed,
		"took", time.Since(start))

	scn := scene.New(w, prefs, log)
	dbg := debug.New()
	dbg.ShowFPS = prefs.Debug.ShowFPS
	dbg.ShowMemAlloc = prefs.Debug.ShowMemAlloc

	var shot, rawShot bool
	update := func(t float64) {
		scn.Update(t)
		if rl.IsKeyPressed(rl.KeyF3) {
			dbg.Toggle()
			log.Info("debug overlay", "visible", dbg.Visible())
		}
		if rl.IsKeyPressed(rl.KeyP) {
			shot = true
			rawShot = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		}
	}
	draw := func() {
		scn.Draw()
		if shot {
			shot = false
			img, flipped := scn.Snapshot(rawShot)
			path, err := capture.Save(img, capture.Dir, time.Now(), flipped)
			if err != nil {
				log.Error("screenshot failed", "err", err)
			} else {
				log.Info("screenshot saved", "path", path)
			}
		}
		dbg.Draw(scn.Param(), w.NumSegments())
	}

	err = graphics.Run(prefs.Window, log, graphics.Hooks{
		Init:   scn.Init,
		Update: update,
		Draw:   draw,
		Resize: scn.Resize,
		Close:  scn.Unload,
	})
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
}
