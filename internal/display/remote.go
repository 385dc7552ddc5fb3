package display

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyCallback is called for every key press the viewer should forward.
type KeyCallback func(key string)

// RemoteWindow shows frames decoded off the network and forwards key
// presses back through a callback. It is the thin end of the remote
// pair; the program lives on the other side.
type RemoteWindow struct {
	mu    sync.Mutex
	frame *image.RGBA

	fbImg *ebiten.Image
	onKey KeyCallback
	title string
}

// NewRemoteWindow creates a viewer window. onKey fires on the display
// goroutine.
func NewRemoteWindow(title string, onKey KeyCallback) *RemoteWindow {
	return &RemoteWindow{title: title, onKey: onKey}
}

// SetFrame swaps in a newly decoded frame. Safe to call from the
// network goroutine.
func (w *RemoteWindow) SetFrame(img *image.RGBA) {
	w.mu.Lock()
	w.frame = img
	w.mu.Unlock()
}

// Run opens the window and blocks until it closes. Must be called from
// the main goroutine.
func (w *RemoteWindow) Run() error {
	ebiten.SetWindowSize(960, 540)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(w)
}

func (w *RemoteWindow) Update() error {
	if w.onKey != nil {
		for _, key := range pressedKeys() {
			w.onKey(key)
		}
	}
	return nil
}

func (w *RemoteWindow) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	frame := w.frame
	w.mu.Unlock()
	if frame == nil {
		return
	}

	if w.fbImg == nil ||
		w.fbImg.Bounds().Dx() != frame.Bounds().Dx() ||
		w.fbImg.Bounds().Dy() != frame.Bounds().Dy() {
		w.fbImg = ebiten.NewImage(frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	w.fbImg.WritePixels(frame.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := float64(frame.Bounds().Dx()), float64(frame.Bounds().Dy())
	scale, offsetX, offsetY := aspectFitTransform(float64(sw), float64(sh), fw, fh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(w.fbImg, op)
}

func (w *RemoteWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
