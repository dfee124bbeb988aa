package scene

import (
	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"tunnel/internal/geom"
	"tunnel/internal/palette"
)

var (
	lineColor = palette.DefaultLine
	pathColor = rl.NewColor(0xff, 0, 0, 0xff)
)

// drawSegments draws each segment with col attenuated by fog at the view depth of its
// midpoint (distance along forward from eye). Fully fogged segments are skipped.
// Reuses start/end to avoid per-frame allocations.
func drawSegments(segs []geom.Segment, col rl.Color, eye, forward math32.Vector3, density float32) {
	var start, end rl.Vector3
	for _, sg := range segs {
		c := col
		if density > 0 {
			d := palette.ViewDepth(sg.Midpoint(), eye, forward)
			c = palette.Fog(col, d, density)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				continue
			}
		}
		start.X, start.Y, start.Z = sg.A.X, sg.A.Y, sg.A.Z
		end.X, end.Y, end.Z = sg.B.X, sg.B.Y, sg.B.Z
		rl.DrawLine3D(start, end, c)
	}
}

func vec(v math32.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
