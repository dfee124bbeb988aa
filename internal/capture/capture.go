// Package capture writes rendered frames to disk as PNG files.
package capture

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Dir is the default screenshot directory, relative to the working directory.
const Dir = "screenshots"

// Name returns the file name for a frame captured at t, e.g. "tunnel-20260102-150405.123.png".
func Name(t time.Time) string {
	return "tunnel-" + t.Format("20060102-150405.000") + ".png"
}

// Save writes img as a PNG under dir (created if needed) and returns the saved path.
// flipped marks images read back from a render texture, which are stored bottom-up.
// An existing file with the same name is never overwritten; a numeric suffix is added.
func Save(img image.Image, dir string, t time.Time, flipped bool) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", errors.New("capture: empty image")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	if flipped {
		img = transform.FlipV(img)
	}
	path, err := freePath(dir, Name(t))
	if err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("capture: save %s: %w", path, err)
	}
	return path, nil
}

func freePath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	base := name[:len(name)-len(ext)]
	candidate := filepath.Join(dir, name)
	for i := 1; ; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = filepath.Join(dir, base+"-"+strconv.Itoa(i)+ext)
	}
}
