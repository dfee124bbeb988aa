package scene

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Snapshot reads back the current frame. With raw set it returns the offscreen scene
// target before bloom and tone mapping, which is stored bottom-up (flipped is true);
// otherwise it reads the screen. Call from Draw, after the scene is drawn.
func (s *Scene) Snapshot(raw bool) (img image.Image, flipped bool) {
	if raw && s.bloom != nil {
		src := rl.LoadImageFromTexture(s.bloom.SceneTexture())
		defer rl.UnloadImage(src)
		return src.ToImage(), true
	}
	src := rl.LoadImageFromScreen()
	defer rl.UnloadImage(src)
	return src.ToImage(), false
}
