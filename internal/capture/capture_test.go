package capture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	return img
}

func TestName(t *testing.T) {
	ts := time.Date(2026, 1, 2, 15, 4, 5, 123e6, time.UTC)
	assert.Equal(t, "tunnel-20260102-150405.123.png", Name(ts))
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	ts := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	path, err := Save(testImage(), dir, ts, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Name(ts)), path)

	img, err := imgio.Open(path)
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestSaveFlippedAndUnique(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	first, err := Save(testImage(), dir, ts, false)
	require.NoError(t, err)
	second, err := Save(testImage(), dir, ts, true)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(dir, "tunnel-20260102-150405.000-1.png"), second)

	img, err := imgio.Open(second)
	require.NoError(t, err)
	_, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), b)
}

func TestSaveEmpty(t *testing.T) {
	_, err := Save(image.NewRGBA(image.Rectangle{}), t.TempDir(), time.Now(), false)
	assert.Error(t, err)
}
