// Package sdf models solids as signed distance functions: negative
// inside, zero on the surface, positive outside.
package sdf

import (
	"math"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
)

// SDF reports the signed distance from a point to a surface. Epsilon is
// the tolerance at which a march counts as a hit, scaled to the shape.
type SDF interface {
	Distance(p linear.Vec3) float64
	Epsilon() float64
}

// Surfacer is implemented by shapes that carry a material. Shapes
// without one shade with the scene default.
type Surfacer interface {
	SurfaceAt(p linear.Vec3) (mat.Material, bool)
}

// MaterialAt returns the material of s at p, if s carries one.
func MaterialAt(s SDF, p linear.Vec3) (mat.Material, bool) {
	if sf, ok := s.(Surfacer); ok {
		return sf.SurfaceAt(p)
	}
	return mat.Material{}, false
}

// Normal estimates the surface normal at p by central differences at
// the shape's epsilon.
func Normal(s SDF, p linear.Vec3) linear.Vec3 {
	e := s.Epsilon()
	return linear.V3(
		s.Distance(p.Add(e, linear.Right()))-s.Distance(p.Add(e, linear.Left())),
		s.Distance(p.Add(e, linear.Up()))-s.Distance(p.Add(e, linear.Down())),
		s.Distance(p.Add(e, linear.Forward()))-s.Distance(p.Add(e, linear.Backward())),
	).Normalize()
}

// Sphere is a ball of the given radius about Center.
type Sphere struct {
	Center linear.Vec3
	Radius float64
}

// NewSphere constructs a sphere at the origin.
func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

func (s Sphere) Distance(p linear.Vec3) float64 {
	return s.Center.Dist(p) - s.Radius
}

func (s Sphere) Epsilon() float64 {
	return s.Radius / 10_000
}

// Disk is a flat disc of the given radius about the origin, facing
// along Normal.
type Disk struct {
	Normal linear.Vec3
	Radius float64
}

// NewDisk constructs a disk facing along normal.
func NewDisk(normal linear.Vec3, radius float64) Disk {
	return Disk{Normal: normal.Normalize(), Radius: radius}
}

func (d Disk) Distance(p linear.Vec3) float64 {
	h := p.Dot(d.Normal)
	radial := p.Add(-h, d.Normal).Norm() - d.Radius
	if radial < 0 {
		radial = 0
	}
	return math.Hypot(h, radial)
}

func (d Disk) Epsilon() float64 {
	return d.Radius / 10_000
}

// Box is an axis-aligned box with the given half extents about the
// origin.
type Box struct {
	HalfExtents linear.Vec3
}

// NewBox constructs a box with the given full dimensions.
func NewBox(width, height, depth float64) Box {
	return Box{HalfExtents: linear.V3(width/2, height/2, depth/2)}
}

func (b Box) Distance(p linear.Vec3) float64 {
	q := linear.V3(
		math.Abs(p.X)-b.HalfExtents.X,
		math.Abs(p.Y)-b.HalfExtents.Y,
		math.Abs(p.Z)-b.HalfExtents.Z,
	)
	outside := linear.V3(math.Max(q.X, 0), math.Max(q.Y, 0), math.Max(q.Z, 0)).Norm()
	inside := math.Min(math.Max(q.X, math.Max(q.Y, q.Z)), 0)
	return outside + inside
}

func (b Box) Epsilon() float64 {
	m := math.Min(b.HalfExtents.X, math.Min(b.HalfExtents.Y, b.HalfExtents.Z))
	return m / 10_000
}

// Func wraps an arbitrary distance function.
func Func(f func(p linear.Vec3) float64, epsilon float64) SDF {
	return funcSDF{f: f, epsilon: epsilon}
}

type funcSDF struct {
	f       func(p linear.Vec3) float64
	epsilon float64
}

func (s funcSDF) Distance(p linear.Vec3) float64 { return s.f(p) }
func (s funcSDF) Epsilon() float64               { return s.epsilon }
