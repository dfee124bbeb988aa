package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunnel/internal/config"
	"tunnel/internal/decor"
	"tunnel/internal/geom"
)

func TestBuildReferenceScene(t *testing.T) {
	cfg := config.Default().Scene
	w := Build(cfg, decor.NewRand(1))

	require.NotNil(t, w.Path)
	require.Len(t, w.Decorations, 55)
	for _, d := range w.Decorations {
		assert.Len(t, d.Edges, 12)
	}

	nv, ni := geom.TubeN(cfg.TubeSegments, cfg.TubeRadialSegments)
	assert.Len(t, w.Tube.Vertices, nv)
	assert.Len(t, w.Tube.Indices, ni)

	// every longitudinal line is a 22.5 degree crease, so at least those are drawn
	longitudinal := cfg.TubeSegments * cfg.TubeRadialSegments
	assert.GreaterOrEqual(t, len(w.TubeEdges), longitudinal)
	assert.LessOrEqual(t, len(w.TubeEdges), 3*longitudinal)

	assert.Len(t, w.Centerline, cfg.PathDivisions)
	assert.Equal(t, len(w.TubeEdges)+55*12, w.NumSegments())

	pos, lookAt := w.Follower.Update(0)
	assert.Equal(t, w.Path.PointAt(0), pos)
	assert.Equal(t, w.Path.PointAt(0.03), lookAt)
}

func TestBuildSameSeedSameWorld(t *testing.T) {
	cfg := config.Default().Scene
	a := Build(cfg, decor.NewRand(99))
	b := Build(cfg, decor.NewRand(99))
	assert.Equal(t, a.Decorations, b.Decorations)
	assert.Equal(t, a.TubeEdges, b.TubeEdges)
}

func TestBuildHonorsSceneConfig(t *testing.T) {
	cfg := config.Default().Scene
	cfg.BoxCount = 5
	cfg.BoxSize = 1
	cfg.PathDivisions = 10
	cfg.LoopPeriod = 100
	cfg.SpeedFactor = 1
	w := Build(cfg, decor.NewRand(3))

	require.Len(t, w.Decorations, 5)
	assert.Len(t, w.Centerline, 10)
	assert.InDelta(t, 100.0, w.Follower.Period(), 1e-9)
	e := w.Decorations[0].Edges[0]
	assert.InDelta(t, 1, e.B.Sub(e.A).Length(), 1e-5)
}
