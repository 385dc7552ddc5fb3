package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
	"github.com/gmalmquist/gwendr/internal/scene"
	"github.com/gmalmquist/gwendr/internal/sdf"
)

func brightScene() *scene.Scene {
	m := mat.DefaultMaterial()
	m.Ambient = mat.White() // visible with no lights at all
	return &scene.Scene{
		SDF:      sdf.Shaded(sdf.Translate(sdf.NewSphere(1), linear.V3(0, 0, 5)), m),
		View:     scene.PerspView{EyeFrame: linear.IdentityFrame(), Near: 1, FOVDegrees: 60},
		FarPlane: 100,
	}
}

func TestStepBudget(t *testing.T) {
	r := New(brightScene(), 64, 64)

	// one step covers 1/64th of the frame
	r.Step()
	assert.Equal(t, uint64(0), r.Passes())

	for i := 0; i < 63; i++ {
		r.Step()
	}
	assert.Equal(t, uint64(1), r.Passes())
}

func TestFullPassPaintsEveryPixel(t *testing.T) {
	r := New(brightScene(), 32, 32)
	for i := 0; i < 64; i++ {
		r.Step()
	}
	require.Equal(t, uint64(1), r.Passes())

	fb := r.Framebuffer()
	for i := 3; i < len(fb.Pix); i += 4 {
		assert.Equal(t, uint8(0xff), fb.Pix[i], "alpha at pixel %d", i/4)
	}

	// the sphere fills the center, the corners miss
	center := fb.RGBAAt(16, 16)
	assert.Equal(t, uint8(0xff), center.R)
	corner := fb.RGBAAt(0, 0)
	assert.Equal(t, uint8(0), corner.R)
}

func TestResetRewindsCursorNotPasses(t *testing.T) {
	r := New(brightScene(), 32, 32)
	for i := 0; i < 80; i++ {
		r.Step()
	}
	passes := r.Passes()
	r.Reset()
	assert.Equal(t, passes, r.Passes())

	// next full pass still completes
	for i := 0; i < 64; i++ {
		r.Step()
	}
	assert.Equal(t, passes+1, r.Passes())
}

func TestSnapshotIsIndependent(t *testing.T) {
	r := New(brightScene(), 16, 16)
	for i := 0; i < 64; i++ {
		r.Step()
	}
	snap := r.Snapshot()
	require.Equal(t, r.Framebuffer().Pix, snap.Pix)

	snap.Pix[0] ^= 0xff
	assert.NotEqual(t, r.Framebuffer().Pix[0], snap.Pix[0])
}
