package postfx

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bloom owns the offscreen targets and shaders of the glow pass. Create it after the
// window exists and Unload it before the window closes.
type Bloom struct {
	params  Params
	enabled bool
	width   int
	height  int
	sizes   [NumMips]MipSize

	scene      rl.RenderTexture2D
	bright     rl.RenderTexture2D
	horizontal [NumMips]rl.RenderTexture2D
	vertical   [NumMips]rl.RenderTexture2D
	accum      rl.RenderTexture2D

	brightShader    rl.Shader
	blurShader      rl.Shader
	compositeShader rl.Shader

	thresholdLoc    int32
	smoothWidthLoc  int32
	invSizeLoc      int32
	directionLoc    int32
	kernelRadiusLoc int32
	weightsLoc      int32
	bloomTexLoc     int32
	strengthLoc     int32
	bloomOnLoc      int32
}

// NewBloom compiles the shaders and allocates targets for a w x h frame.
// Out-of-range parameters are replaced, see Params.
func NewBloom(w, h int, p Params) (*Bloom, error) {
	b := &Bloom{params: p.normalized(), enabled: true}
	if err := b.loadShaders(); err != nil {
		b.Unload()
		return nil, err
	}
	if err := b.Resize(w, h); err != nil {
		b.Unload()
		return nil, err
	}
	return b, nil
}

func (b *Bloom) loadShaders() error {
	b.brightShader = rl.LoadShaderFromMemory("", brightFS)
	if !rl.IsShaderValid(b.brightShader) {
		return fmt.Errorf("bright pass: %w", ErrShader)
	}
	b.blurShader = rl.LoadShaderFromMemory("", blurFS)
	if !rl.IsShaderValid(b.blurShader) {
		return fmt.Errorf("blur: %w", ErrShader)
	}
	b.compositeShader = rl.LoadShaderFromMemory("", compositeFS)
	if !rl.IsShaderValid(b.compositeShader) {
		return fmt.Errorf("composite: %w", ErrShader)
	}

	b.thresholdLoc = rl.GetShaderLocation(b.brightShader, "threshold")
	b.smoothWidthLoc = rl.GetShaderLocation(b.brightShader, "smoothWidth")
	b.invSizeLoc = rl.GetShaderLocation(b.blurShader, "invSize")
	b.directionLoc = rl.GetShaderLocation(b.blurShader, "direction")
	b.kernelRadiusLoc = rl.GetShaderLocation(b.blurShader, "kernelRadius")
	b.weightsLoc = rl.GetShaderLocation(b.blurShader, "weights")
	b.bloomTexLoc = rl.GetShaderLocation(b.compositeShader, "bloomTexture")
	b.strengthLoc = rl.GetShaderLocation(b.compositeShader, "strength")
	b.bloomOnLoc = rl.GetShaderLocation(b.compositeShader, "bloomOn")
	return nil
}

// Resize reallocates every target for a w x h frame. Sizes below 1 are clamped.
func (b *Bloom) Resize(w, h int) error {
	w, h = max(w, 1), max(h, 1)
	b.unloadTargets()
	b.width, b.height = w, h
	b.sizes = MipSizes(w, h)

	var err error
	if b.scene, err = loadTarget(int32(w), int32(h)); err != nil {
		return err
	}
	if b.bright, err = loadTarget(b.sizes[0].W, b.sizes[0].H); err != nil {
		return err
	}
	for i, s := range b.sizes {
		if b.horizontal[i], err = loadTarget(s.W, s.H); err != nil {
			return err
		}
		if b.vertical[i], err = loadTarget(s.W, s.H); err != nil {
			return err
		}
	}
	if b.accum, err = loadTarget(b.sizes[0].W, b.sizes[0].H); err != nil {
		return err
	}
	return nil
}

func loadTarget(w, h int32) (rl.RenderTexture2D, error) {
	rt := rl.LoadRenderTexture(w, h)
	if !rl.IsRenderTextureValid(rt) {
		return rt, fmt.Errorf("%dx%d: %w", w, h, ErrTarget)
	}
	rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
	return rt, nil
}

// Size returns the current frame size.
func (b *Bloom) Size() (int, int) {
	return b.width, b.height
}

// Enabled reports whether the glow is applied.
func (b *Bloom) Enabled() bool {
	return b.enabled
}

// SetEnabled turns the glow on or off. Tone mapping stays on either way.
func (b *Bloom) SetEnabled(on bool) {
	b.enabled = on
}

// Params returns the glow parameters in use.
func (b *Bloom) Params() Params {
	return b.params
}

// SceneTexture returns the offscreen scene target of the last frame (stored bottom-up).
func (b *Bloom) SceneTexture() rl.Texture2D {
	return b.scene.Texture
}

// Render draws drawScene into the offscreen target, runs the bright pass and blur chain,
// and composites the result onto the current framebuffer. Call between BeginDrawing and
// EndDrawing; drawScene must do its own BeginMode3D/EndMode3D.
func (b *Bloom) Render(drawScene func()) {
	rl.BeginTextureMode(b.scene)
	rl.ClearBackground(rl.Black)
	drawScene()
	rl.EndTextureMode()

	if b.enabled {
		b.renderBloom()
	}

	rl.BeginShaderMode(b.compositeShader)
	_, total := AccumWeights(b.params.Radius)
	rl.SetShaderValue(b.compositeShader, b.strengthLoc, []float32{b.params.Strength * total}, rl.ShaderUniformFloat)
	on := float32(0)
	if b.enabled {
		on = 1
	}
	rl.SetShaderValue(b.compositeShader, b.bloomOnLoc, []float32{on}, rl.ShaderUniformFloat)
	rl.SetShaderValueTexture(b.compositeShader, b.bloomTexLoc, b.accum.Texture)
	blit(b.scene.Texture, int32(b.width), int32(b.height))
	rl.EndShaderMode()
}

func (b *Bloom) renderBloom() {
	rl.SetShaderValue(b.brightShader, b.thresholdLoc, []float32{b.params.Threshold}, rl.ShaderUniformFloat)
	rl.SetShaderValue(b.brightShader, b.smoothWidthLoc, []float32{smoothWidth}, rl.ShaderUniformFloat)
	pass(b.bright, b.scene.Texture, b.brightShader)

	src := b.bright.Texture
	for i, s := range b.sizes {
		inv := []float32{1 / float32(s.W), 1 / float32(s.H)}
		rl.SetShaderValue(b.blurShader, b.invSizeLoc, inv, rl.ShaderUniformVec2)
		rl.SetShaderValue(b.blurShader, b.kernelRadiusLoc, []float32{float32(kernelRadii[i])}, rl.ShaderUniformFloat)
		rl.SetShaderValueV(b.blurShader, b.weightsLoc, paddedWeights(kernelRadii[i]), rl.ShaderUniformFloat, maxKernel)

		rl.SetShaderValue(b.blurShader, b.directionLoc, []float32{1, 0}, rl.ShaderUniformVec2)
		pass(b.horizontal[i], src, b.blurShader)
		rl.SetShaderValue(b.blurShader, b.directionLoc, []float32{0, 1}, rl.ShaderUniformVec2)
		pass(b.vertical[i], b.horizontal[i].Texture, b.blurShader)
		src = b.vertical[i].Texture
	}

	weights, _ := AccumWeights(b.params.Radius)
	rl.BeginTextureMode(b.accum)
	rl.ClearBackground(rl.Black)
	rl.BeginBlendMode(rl.BlendAdditive)
	for i := range b.vertical {
		v := uint8(weights[i]*255 + 0.5)
		blitTinted(b.vertical[i].Texture, b.accum.Texture.Width, b.accum.Texture.Height, rl.NewColor(v, v, v, 255))
	}
	rl.EndBlendMode()
	rl.EndTextureMode()
}

// pass draws src stretched over dst through shader.
func pass(dst rl.RenderTexture2D, src rl.Texture2D, shader rl.Shader) {
	rl.BeginTextureMode(dst)
	rl.ClearBackground(rl.Black)
	rl.BeginShaderMode(shader)
	blit(src, dst.Texture.Width, dst.Texture.Height)
	rl.EndShaderMode()
	rl.EndTextureMode()
}

func blit(src rl.Texture2D, w, h int32) {
	blitTinted(src, w, h, rl.White)
}

// blitTinted draws a render texture over a w x h area. Render textures are stored
// bottom-up, hence the negative source height.
func blitTinted(src rl.Texture2D, w, h int32, tint rl.Color) {
	srcRect := rl.NewRectangle(0, 0, float32(src.Width), -float32(src.Height))
	dstRect := rl.NewRectangle(0, 0, float32(w), float32(h))
	rl.DrawTexturePro(src, srcRect, dstRect, rl.NewVector2(0, 0), 0, tint)
}

func (b *Bloom) unloadTargets() {
	unload := func(rt *rl.RenderTexture2D) {
		if rt.ID != 0 {
			rl.UnloadRenderTexture(*rt)
		}
		*rt = rl.RenderTexture2D{}
	}
	unload(&b.scene)
	unload(&b.bright)
	for i := range b.horizontal {
		unload(&b.horizontal[i])
		unload(&b.vertical[i])
	}
	unload(&b.accum)
}

// Unload frees all GPU resources. The Bloom must not be used afterwards.
func (b *Bloom) Unload() {
	b.unloadTargets()
	for _, s := range []*rl.Shader{&b.brightShader, &b.blurShader, &b.compositeShader} {
		if s.ID != 0 {
			rl.UnloadShader(*s)
		}
		*s = rl.Shader{}
	}
}
