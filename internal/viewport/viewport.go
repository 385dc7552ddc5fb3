// Package viewport is the program the host glue drives: one Update per
// display tick, key names in, a progressively sharpening framebuffer
// out.
package viewport

import (
	"image"
	"math"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/render"
	"github.com/gmalmquist/gwendr/internal/scene"
)

const moveStep = 0.25

// Viewport owns a scene and its renderer. It is confined to the
// goroutine driving Update and HandleKeyDown.
type Viewport struct {
	renderer *render.Renderer
	home     scene.View
	frame    uint64
}

// New creates a viewport rendering the given scene at the given
// resolution. Construct exactly one per process and pass it where it
// is needed; everything it does hangs off this handle.
func New(s *scene.Scene, width, height int) *Viewport {
	return &Viewport{
		renderer: render.New(s, width, height),
		home:     s.View,
	}
}

// Update advances the progressive render by one tick's budget.
func (v *Viewport) Update() error {
	v.renderer.Step()
	v.frame++
	return nil
}

// HandleKeyDown applies one key press. Key names follow the DOM
// KeyboardEvent.key convention ("ArrowUp", "a", " ", ...). Unknown
// keys are ignored. Holding a key lands here once per host repeat, so
// movement continues while held.
func (v *Viewport) HandleKeyDown(key string) {
	switch key {
	case "ArrowUp", "w":
		v.moveEye(linear.Forward().Scale(moveStep))
	case "ArrowDown", "s":
		v.moveEye(linear.Backward().Scale(moveStep))
	case "ArrowLeft", "a":
		v.moveEye(linear.Left().Scale(moveStep))
	case "ArrowRight", "d":
		v.moveEye(linear.Right().Scale(moveStep))
	case "r":
		v.moveEye(linear.Up().Scale(moveStep))
	case "f":
		v.moveEye(linear.Down().Scale(moveStep))
	case "q":
		v.turnEye(-math.Pi / 36)
	case "e":
		v.turnEye(math.Pi / 36)
	case " ":
		v.setView(v.home)
	case "Tab":
		v.toggleProjection()
	}
}

// Framebuffer exposes the render target for the display to draw.
func (v *Viewport) Framebuffer() *image.RGBA {
	return v.renderer.Framebuffer()
}

// Snapshot returns a copy of the framebuffer for use off the driving
// goroutine.
func (v *Viewport) Snapshot() *image.RGBA {
	return v.renderer.Snapshot()
}

// Passes reports completed render sweeps, for progress logging.
func (v *Viewport) Passes() uint64 {
	return v.renderer.Passes()
}

func (v *Viewport) moveEye(by linear.Vec3) {
	switch view := v.renderer.Scene().View.(type) {
	case scene.PerspView:
		view.EyeFrame = view.EyeFrame.Translate(eyeDelta(view.EyeFrame.Basis, by))
		v.setView(view)
	case scene.OrthoView:
		view.Frame = view.Frame.Translate(eyeDelta(view.Frame.Basis, by))
		v.setView(view)
	}
}

// eyeDelta maps a local movement onto the camera's (normalized) axes,
// so "forward" follows the view direction even after turning. The
// ortho frame's axes span the film, so they are normalized first.
func eyeDelta(b linear.Basis, by linear.Vec3) linear.Vec3 {
	return linear.Zero().
		Add(by.X, b.I.Normalize()).
		Add(by.Y, b.J.Normalize()).
		Add(by.Z, b.K.Normalize())
}

func (v *Viewport) turnEye(angle float64) {
	switch view := v.renderer.Scene().View.(type) {
	case scene.PerspView:
		view.EyeFrame = view.EyeFrame.Rotate(angle, linear.Up())
		v.setView(view)
	case scene.OrthoView:
		view.Frame = view.Frame.Rotate(angle, linear.Up())
		v.setView(view)
	}
}

func (v *Viewport) toggleProjection() {
	s := v.renderer.Scene()
	switch view := s.View.(type) {
	case scene.PerspView:
		v.setView(scene.OrthoView{Frame: linear.NewFrame(
			view.EyeFrame.Origin,
			view.EyeFrame.Basis.I.Normalize().Scale(5),
			view.EyeFrame.Basis.J.Normalize().Scale(5),
			view.EyeFrame.Basis.K,
		)})
	case scene.OrthoView:
		v.setView(scene.PerspView{
			EyeFrame: linear.NewFrame(
				view.Frame.Origin,
				view.Frame.Basis.I.Normalize(),
				view.Frame.Basis.J.Normalize(),
				view.Frame.Basis.K.Normalize(),
			),
			Near:       1,
			FOVDegrees: 60,
		})
	}
}

// setView swaps the camera and restarts the progressive pass, since
// every already-painted pixel is stale under the new view.
func (v *Viewport) setView(view scene.View) {
	v.renderer.Scene().View = view
	v.renderer.Reset()
}
