package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopText(t *testing.T) {
	assert.Equal(t, "Loop:  50.0%  Lines: 10", LoopText(0.5, 10))
	assert.Equal(t, "Loop:   0.0%  Lines: 0", LoopText(0, 0))
	assert.Equal(t, "Loop:  99.9%  Lines: 3552", LoopText(0.999, 3552))
}

func TestToggle(t *testing.T) {
	d := New()
	assert.False(t, d.Visible())

	d.Toggle()
	assert.True(t, d.ShowFPS && d.ShowMemAlloc && d.ShowProgress)
	assert.True(t, d.Visible())

	d.Toggle()
	assert.False(t, d.Visible())

	// a partly enabled overlay turns fully on first
	d.ShowFPS = true
	assert.True(t, d.Visible())
	d.Toggle()
	assert.True(t, d.ShowMemAlloc && d.ShowProgress)
}
