package sdf

import (
	"math"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
)

// Union returns the shape covering all the given shapes. Materials
// resolve to whichever operand is nearest at the queried point.
func Union(shapes ...SDF) SDF {
	if len(shapes) == 1 {
		return shapes[0]
	}
	out := shapes[0]
	for _, s := range shapes[1:] {
		out = unionSDF{a: out, b: s}
	}
	return out
}

type unionSDF struct {
	a, b SDF
}

func (u unionSDF) Distance(p linear.Vec3) float64 {
	return math.Min(u.a.Distance(p), u.b.Distance(p))
}

func (u unionSDF) Epsilon() float64 {
	return math.Min(u.a.Epsilon(), u.b.Epsilon())
}

func (u unionSDF) SurfaceAt(p linear.Vec3) (mat.Material, bool) {
	if u.a.Distance(p) <= u.b.Distance(p) {
		return MaterialAt(u.a, p)
	}
	return MaterialAt(u.b, p)
}

// Intersection returns the shape covered by both a and b.
func Intersection(a, b SDF) SDF {
	return intersectionSDF{a: a, b: b}
}

type intersectionSDF struct {
	a, b SDF
}

func (i intersectionSDF) Distance(p linear.Vec3) float64 {
	return math.Max(i.a.Distance(p), i.b.Distance(p))
}

func (i intersectionSDF) Epsilon() float64 {
	return math.Min(i.a.Epsilon(), i.b.Epsilon())
}

func (i intersectionSDF) SurfaceAt(p linear.Vec3) (mat.Material, bool) {
	return MaterialAt(i.a, p)
}

// Negate flips the inside and outside of s.
func Negate(s SDF) SDF {
	return negateSDF{s: s}
}

type negateSDF struct {
	s SDF
}

func (n negateSDF) Distance(p linear.Vec3) float64 { return -n.s.Distance(p) }
func (n negateSDF) Epsilon() float64               { return n.s.Epsilon() }

// Difference returns a with b carved out.
func Difference(a, b SDF) SDF {
	return Intersection(a, Negate(b))
}

// Translate moves s by the given offset.
func Translate(s SDF, by linear.Vec3) SDF {
	return translatedSDF{s: s, by: by}
}

type translatedSDF struct {
	s  SDF
	by linear.Vec3
}

func (t translatedSDF) Distance(p linear.Vec3) float64 {
	return t.s.Distance(p.Sub(t.by))
}

func (t translatedSDF) Epsilon() float64 { return t.s.Epsilon() }

func (t translatedSDF) SurfaceAt(p linear.Vec3) (mat.Material, bool) {
	return MaterialAt(t.s, p.Sub(t.by))
}

// Scale grows s uniformly by the given factor.
func Scale(s SDF, factor float64) SDF {
	return scaledSDF{s: s, factor: factor}
}

type scaledSDF struct {
	s      SDF
	factor float64
}

func (sc scaledSDF) Distance(p linear.Vec3) float64 {
	return sc.s.Distance(p.Scale(1/sc.factor)) * sc.factor
}

func (sc scaledSDF) Epsilon() float64 { return sc.s.Epsilon() }

func (sc scaledSDF) SurfaceAt(p linear.Vec3) (mat.Material, bool) {
	return MaterialAt(sc.s, p.Scale(1/sc.factor))
}

// Rotate spins s by angle radians about the given axis through the
// origin.
func Rotate(s SDF, angle float64, axis linear.Vec3) SDF {
	return rotatedSDF{s: s, angle: angle, axis: axis}
}

type rotatedSDF struct {
	s     SDF
	angle float64
	axis  linear.Vec3
}

func (r rotatedSDF) Distance(p linear.Vec3) float64 {
	return r.s.Distance(p.Rotate(-r.angle, r.axis))
}

func (r rotatedSDF) Epsilon() float64 { return r.s.Epsilon() }

func (r rotatedSDF) SurfaceAt(p linear.Vec3) (mat.Material, bool) {
	return MaterialAt(r.s, p.Rotate(-r.angle, r.axis))
}

// Shaded attaches a material to s.
func Shaded(s SDF, m mat.Material) SDF {
	return shadedSDF{s: s, m: m}
}

type shadedSDF struct {
	s SDF
	m mat.Material
}

func (sh shadedSDF) Distance(p linear.Vec3) float64 { return sh.s.Distance(p) }
func (sh shadedSDF) Epsilon() float64               { return sh.s.Epsilon() }

func (sh shadedSDF) SurfaceAt(linear.Vec3) (mat.Material, bool) {
	return sh.m, true
}
