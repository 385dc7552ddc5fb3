package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/scene"
	"github.com/gmalmquist/gwendr/internal/sdf"
)

func smallViewport() *Viewport {
	s := &scene.Scene{
		SDF:      sdf.Translate(sdf.NewSphere(1), linear.V3(0, 0, 5)),
		View:     scene.PerspView{EyeFrame: linear.IdentityFrame(), Near: 1, FOVDegrees: 60},
		FarPlane: 100,
	}
	return New(s, 16, 16)
}

func eyeOrigin(t *testing.T, v *Viewport) linear.Vec3 {
	t.Helper()
	view, ok := v.renderer.Scene().View.(scene.PerspView)
	require.True(t, ok)
	return view.EyeFrame.Origin
}

func TestUpdateAdvancesRender(t *testing.T) {
	v := smallViewport()
	for i := 0; i < 64; i++ {
		require.NoError(t, v.Update())
	}
	assert.Equal(t, uint64(1), v.Passes())
}

func TestArrowKeysMoveEye(t *testing.T) {
	v := smallViewport()

	v.HandleKeyDown("ArrowUp")
	assert.InDelta(t, moveStep, eyeOrigin(t, v).Z, 1e-9)

	v.HandleKeyDown("ArrowLeft")
	assert.InDelta(t, -moveStep, eyeOrigin(t, v).X, 1e-9)

	v.HandleKeyDown("f")
	assert.InDelta(t, -moveStep, eyeOrigin(t, v).Y, 1e-9)
}

func TestRepeatedKeysAccumulate(t *testing.T) {
	v := smallViewport()

	// host key repeat: every notification is a separate move
	v.HandleKeyDown("ArrowUp")
	v.HandleKeyDown("ArrowUp")
	assert.InDelta(t, 2*moveStep, eyeOrigin(t, v).Z, 1e-9)
}

func TestMovementFollowsViewDirection(t *testing.T) {
	v := smallViewport()

	// quarter turn left, then "forward" should move along -X
	for i := 0; i < 18; i++ {
		v.HandleKeyDown("q")
	}
	v.HandleKeyDown("w")

	o := eyeOrigin(t, v)
	assert.InDelta(t, -moveStep, o.X, 1e-9)
	assert.InDelta(t, 0, o.Z, 1e-9)
}

func TestSpaceResetsView(t *testing.T) {
	v := smallViewport()
	v.HandleKeyDown("ArrowUp")
	v.HandleKeyDown("ArrowRight")
	v.HandleKeyDown(" ")
	assert.Equal(t, linear.Zero(), eyeOrigin(t, v))
}

func TestTabTogglesProjection(t *testing.T) {
	v := smallViewport()

	v.HandleKeyDown("Tab")
	_, ok := v.renderer.Scene().View.(scene.OrthoView)
	assert.True(t, ok)

	v.HandleKeyDown("Tab")
	_, ok = v.renderer.Scene().View.(scene.PerspView)
	assert.True(t, ok)
}

func TestUnknownKeysIgnored(t *testing.T) {
	v := smallViewport()
	v.HandleKeyDown("F13")
	v.HandleKeyDown("")
	assert.Equal(t, linear.Zero(), eyeOrigin(t, v))
}

func TestCameraChangeRestartsPass(t *testing.T) {
	v := smallViewport()
	require.NoError(t, v.Update())
	v.HandleKeyDown("ArrowUp")

	// the interrupted pass doesn't count; a fresh full pass does
	for i := 0; i < 64; i++ {
		require.NoError(t, v.Update())
	}
	assert.Equal(t, uint64(1), v.Passes())
}

func TestDefaultScene(t *testing.T) {
	s := DefaultScene()
	require.Len(t, s.Lights, 3)

	// the hero sphere sits dead ahead of the default eye
	view, ok := s.View.(scene.PerspView)
	require.True(t, ok)
	ray := linear.NewRay(view.EyeFrame.Origin, view.EyeFrame.Basis.K)
	hit, found := s.March(ray)
	require.True(t, found)
	assert.InDelta(t, 9.0, hit.Distance, 0.1)
}
