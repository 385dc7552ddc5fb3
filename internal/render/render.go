// Package render walks a scene's pixels incrementally, accumulating
// the traced image in a framebuffer across many small steps.
package render

import (
	"image"
	"image/color"

	"github.com/gmalmquist/gwendr/internal/scene"
)

// budgetDivisor sets the per-step pixel budget: a full pass takes 64
// steps, so at 60 ticks per second a frame converges in about a second.
const budgetDivisor = 64

// Renderer traces a scene into an RGBA framebuffer a budgeted slice of
// pixels at a time. It is not safe for concurrent use; drive it from
// one goroutine.
type Renderer struct {
	scene  *scene.Scene
	fb     *image.RGBA
	cursor int
	passes uint64
}

// New creates a renderer for the given scene and framebuffer size.
func New(s *scene.Scene, width, height int) *Renderer {
	return &Renderer{
		scene: s,
		fb:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Step traces the next budget of pixels. Pixels whose primary ray hits
// nothing are painted black.
func (r *Renderer) Step() {
	w := r.fb.Rect.Dx()
	h := r.fb.Rect.Dy()
	for i := 0; i < w*h/budgetDivisor; i++ {
		r.renderNext(w, h)
	}
}

func (r *Renderer) renderNext(w, h int) {
	x := r.cursor % w
	y := r.cursor / w

	var px color.RGBA
	if c, ok := r.scene.Pixel(x, y, w, h); ok {
		px.R, px.G, px.B, px.A = c.RGBA8()
	} else {
		px = color.RGBA{A: 0xff}
	}
	r.fb.SetRGBA(x, y, px)

	r.cursor = (r.cursor + 1) % (w * h)
	if r.cursor == 0 {
		r.passes++
	}
}

// Reset rewinds the pixel cursor so the next Step starts a fresh pass.
// Call after the scene changes; stale pixels are overwritten as the new
// pass sweeps through.
func (r *Renderer) Reset() {
	r.cursor = 0
}

// Passes returns how many complete sweeps over the framebuffer have
// finished.
func (r *Renderer) Passes() uint64 {
	return r.passes
}

// Scene returns the scene being rendered.
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Framebuffer returns the image the renderer paints into. The renderer
// keeps writing to it on subsequent Steps; copy it before handing it to
// another goroutine.
func (r *Renderer) Framebuffer() *image.RGBA {
	return r.fb
}

// Snapshot returns a copy of the framebuffer safe to use from other
// goroutines.
func (r *Renderer) Snapshot() *image.RGBA {
	out := image.NewRGBA(r.fb.Rect)
	copy(out.Pix, r.fb.Pix)
	return out
}
