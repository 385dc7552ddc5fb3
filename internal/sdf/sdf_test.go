package sdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
)

func TestFuncSDF(t *testing.T) {
	// distance from unit sphere at origin
	f := Func(func(v linear.Vec3) float64 { return v.Norm() - 1 }, 0.001)
	assert.InDelta(t, 0.0, f.Distance(linear.Right()), 1e-9)
	assert.InDelta(t, 0.0, f.Distance(linear.Up()), 1e-9)
	assert.InDelta(t, 0.0, f.Distance(linear.Down()), 1e-9)
	assert.InDelta(t, 1.0, f.Distance(linear.V3(2, 0, 0)), 1e-9)
	assert.InDelta(t, -1.0, f.Distance(linear.Zero()), 1e-9)
}

func TestSphere(t *testing.T) {
	s := NewSphere(2)
	assert.InDelta(t, -2.0, s.Distance(linear.Zero()), 1e-9)
	assert.InDelta(t, 1.0, s.Distance(linear.V3(3, 0, 0)), 1e-9)
	assert.InDelta(t, 0.0, s.Distance(linear.V3(0, 2, 0)), 1e-9)
}

func TestDisk(t *testing.T) {
	d := NewDisk(linear.Up(), 3)

	// directly above the disk: distance is the height
	assert.InDelta(t, 2.0, d.Distance(linear.V3(0, 2, 0)), 1e-9)
	assert.InDelta(t, 2.0, d.Distance(linear.V3(1, 2, 1)), 1e-9)

	// in-plane beyond the rim
	assert.InDelta(t, 2.0, d.Distance(linear.V3(5, 0, 0)), 1e-9)

	// on the disk
	assert.InDelta(t, 0.0, d.Distance(linear.V3(1, 0, 1)), 1e-9)
}

func TestBox(t *testing.T) {
	b := NewBox(2, 2, 2)
	assert.InDelta(t, -1.0, b.Distance(linear.Zero()), 1e-9)
	assert.InDelta(t, 1.0, b.Distance(linear.V3(2, 0, 0)), 1e-9)
	assert.InDelta(t, 0.0, b.Distance(linear.V3(1, 0.5, -0.5)), 1e-9)
}

func TestUnionAndTranslate(t *testing.T) {
	a := Translate(NewSphere(1), linear.V3(-3, 0, 0))
	b := Translate(NewSphere(1), linear.V3(3, 0, 0))
	u := Union(a, b)

	assert.InDelta(t, 2.0, u.Distance(linear.Zero()), 1e-9)
	assert.InDelta(t, -1.0, u.Distance(linear.V3(3, 0, 0)), 1e-9)
	assert.InDelta(t, -1.0, u.Distance(linear.V3(-3, 0, 0)), 1e-9)
}

func TestUnionMaterialResolvesToNearest(t *testing.T) {
	red := mat.DefaultMaterial()
	red.Diffuse = mat.MustHexColor("#ff0000")
	blue := mat.DefaultMaterial()
	blue.Diffuse = mat.MustHexColor("#0000ff")

	u := Union(
		Shaded(Translate(NewSphere(1), linear.V3(-3, 0, 0)), red),
		Shaded(Translate(NewSphere(1), linear.V3(3, 0, 0)), blue),
	)

	m, ok := MaterialAt(u, linear.V3(-2, 0, 0))
	require.True(t, ok)
	assert.Equal(t, red.Diffuse, m.Diffuse)

	m, ok = MaterialAt(u, linear.V3(2, 0, 0))
	require.True(t, ok)
	assert.Equal(t, blue.Diffuse, m.Diffuse)
}

func TestDifference(t *testing.T) {
	// unit sphere with its right half cut away by a large box
	cut := Difference(
		NewSphere(1),
		Translate(NewBox(2, 4, 4), linear.V3(1, 0, 0)),
	)
	assert.True(t, cut.Distance(linear.V3(-0.5, 0, 0)) < 0)
	assert.True(t, cut.Distance(linear.V3(0.5, 0, 0)) > 0)
}

func TestScale(t *testing.T) {
	s := Scale(NewSphere(1), 3)
	assert.InDelta(t, -3.0, s.Distance(linear.Zero()), 1e-9)
	assert.InDelta(t, 0.0, s.Distance(linear.V3(3, 0, 0)), 1e-9)
	assert.InDelta(t, 2.0, s.Distance(linear.V3(5, 0, 0)), 1e-9)
}

func TestRotateCombinator(t *testing.T) {
	// box long along X, rotated 90 degrees about Y becomes long along Z
	b := Rotate(NewBox(4, 1, 1), 3.14159265358979/2, linear.Up())
	assert.True(t, b.Distance(linear.V3(0, 0, 1.5)) < 0)
	assert.True(t, b.Distance(linear.V3(1.5, 0, 0)) > 0)
}

func TestNormal(t *testing.T) {
	s := NewSphere(1)
	n := Normal(s, linear.V3(1, 0, 0))
	assert.InDelta(t, 1.0, n.X, 1e-3)
	assert.InDelta(t, 0.0, n.Y, 1e-3)
	assert.InDelta(t, 0.0, n.Z, 1e-3)

	n = Normal(s, linear.V3(0, -1, 0))
	assert.InDelta(t, -1.0, n.Y, 1e-3)
}

func TestMaterialAtWithoutSurface(t *testing.T) {
	_, ok := MaterialAt(NewSphere(1), linear.Zero())
	assert.False(t, ok)
}
