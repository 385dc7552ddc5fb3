package display

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window shows a program's framebuffer and feeds it ticks and key
// presses.
type Window struct {
	program Program
	title   string
	fbImg   *ebiten.Image
}

// NewWindow wraps the single program handle in a windowed display.
func NewWindow(program Program, title string) *Window {
	return &Window{program: program, title: title}
}

// Run opens the window and blocks until it closes or the program
// fails. Must be called from the main goroutine.
func (w *Window) Run() error {
	fb := w.program.Framebuffer().Bounds()
	ebiten.SetWindowSize(fb.Dx(), fb.Dy())
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(w)
}

// Update forwards this tick's key presses, then advances the program
// exactly once. Forwarding happens first so a press takes effect in
// the update it precedes, matching event-then-frame ordering.
func (w *Window) Update() error {
	for _, key := range pressedKeys() {
		w.program.HandleKeyDown(key)
	}
	if err := w.program.Update(); err != nil {
		return fmt.Errorf("program update: %w", err)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	fb := w.program.Framebuffer()
	if w.fbImg == nil ||
		w.fbImg.Bounds().Dx() != fb.Bounds().Dx() ||
		w.fbImg.Bounds().Dy() != fb.Bounds().Dy() {
		w.fbImg = ebiten.NewImage(fb.Bounds().Dx(), fb.Bounds().Dy())
	}
	w.fbImg.WritePixels(fb.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := float64(fb.Bounds().Dx()), float64(fb.Bounds().Dy())
	scale, offsetX, offsetY := aspectFitTransform(float64(sw), float64(sh), fw, fh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(w.fbImg, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// aspectFitTransform returns scale and offsets to fit frame into view
// with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
