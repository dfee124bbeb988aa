// Package world assembles the immutable scene data: path, tunnel outline, decorations
// and the camera follower. Everything here is built once before the first frame.
package world

import (
	"cogentcore.org/core/math32"

	"tunnel/internal/camera"
	"tunnel/internal/config"
	"tunnel/internal/decor"
	"tunnel/internal/geom"
	"tunnel/internal/spline"
)

// World is the read-only data the render loop draws every frame.
type World struct {
	Path        *spline.Path
	Tube        *geom.Mesh // edge source only, never drawn solid
	TubeEdges   []geom.Segment
	Centerline  []geom.Segment // debug polyline through the path
	Decorations []decor.Decoration
	Follower    *camera.Follower
}

// Build creates the world for cfg on the default path, drawing decoration randomness from rnd.
func Build(cfg config.Scene, rnd decor.Rand) *World {
	return BuildOn(spline.Default(), cfg, rnd)
}

// BuildOn is Build with an explicit path.
func BuildOn(path *spline.Path, cfg config.Scene, rnd decor.Rand) *World {
	tube := geom.NewTube(path, cfg.TubeSegments, cfg.TubeRadius, cfg.TubeRadialSegments, true)

	opts := decor.DefaultOptions()
	opts.Count = cfg.BoxCount
	opts.Size = cfg.BoxSize
	opts.EdgeThresholdDeg = cfg.EdgeThresholdDeg

	return &World{
		Path:        path,
		Tube:        tube,
		TubeEdges:   geom.Edges(tube, cfg.EdgeThresholdDeg),
		Centerline:  polyline(path.Points(cfg.PathDivisions)),
		Decorations: decor.Generate(path, opts, rnd),
		Follower: camera.NewFollower(path, camera.Options{
			LoopPeriod:  cfg.LoopPeriod,
			SpeedFactor: cfg.SpeedFactor,
			LookAhead:   cfg.LookAhead,
		}),
	}
}

// NumSegments returns the number of line segments drawn per frame, excluding the centerline.
func (w *World) NumSegments() int {
	n := len(w.TubeEdges)
	for _, d := range w.Decorations {
		n += len(d.Edges)
	}
	return n
}

func polyline(pts []math32.Vector3) []geom.Segment {
	if len(pts) < 2 {
		return nil
	}
	out := make([]geom.Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		out = append(out, geom.Segment{A: pts[i-1], B: pts[i]})
	}
	return out
}
