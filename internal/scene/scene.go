// Package scene composes distance fields, lights and a camera, and
// traces primary rays into shaded colors.
package scene

import (
	"math"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
	"github.com/gmalmquist/gwendr/internal/sdf"
)

const (
	maxMarchSteps      = 512
	maxReflectionDepth = 3
	// Hit points are nudged off the surface by this many epsilons
	// before secondary rays march, so they don't immediately re-hit.
	surfaceLift = 4
)

// Scene is everything the tracer needs to color a pixel.
type Scene struct {
	SDF      sdf.SDF
	Lights   []Light
	View     View
	FarPlane float64
}

// Hit describes where a march met the surface.
type Hit struct {
	Point    linear.Vec3
	Distance float64
	Steps    int
}

// March sphere-traces the ray through the scene's distance field.
// The second return is false when the ray escapes past the far plane.
func (s *Scene) March(ray linear.Ray) (Hit, bool) {
	dir := ray.Direction.Normalize()
	t := 0.0
	for i := 0; i < maxMarchSteps; i++ {
		p := ray.Origin.Add(t, dir)
		d := s.SDF.Distance(p)
		if d < s.SDF.Epsilon() {
			return Hit{Point: p, Distance: t, Steps: i}, true
		}
		t += d
		if t > s.FarPlane {
			break
		}
	}
	return Hit{}, false
}

// Pixel traces the primary ray for pixel (x, y) on a w x h film. The
// second return is false when the ray hits nothing.
func (s *Scene) Pixel(x, y, w, h int) (mat.Color, bool) {
	return s.trace(s.View.PixelRay(x, y, w, h), 0)
}

func (s *Scene) trace(ray linear.Ray, depth int) (mat.Color, bool) {
	hit, ok := s.March(ray)
	if !ok {
		return mat.Color{}, false
	}
	return s.shade(ray, hit, depth), true
}

func (s *Scene) shade(ray linear.Ray, hit Hit, depth int) mat.Color {
	material, ok := sdf.MaterialAt(s.SDF, hit.Point)
	if !ok {
		material = mat.DefaultMaterial()
	}
	normal := sdf.Normal(s.SDF, hit.Point)
	viewDir := ray.Direction.Normalize().Scale(-1)
	lifted := hit.Point.Add(surfaceLift*s.SDF.Epsilon(), normal)

	color := material.Ambient
	for _, light := range s.Lights {
		if s.occluded(lifted, light) {
			continue
		}
		incoming := light.ColorAt(hit.Point)
		lightDir := light.Position.Sub(hit.Point).Normalize()

		diffuse := math.Max(0, normal.Dot(lightDir))
		color = color.Add(diffuse, material.Diffuse.Multiply(incoming))

		reflected := lightDir.Scale(-1).Reflect(normal)
		spec := math.Max(0, reflected.Dot(viewDir))
		if spec > 0 && material.Phong > 0 {
			color = color.Add(math.Pow(spec, material.Phong), material.Specular.Multiply(incoming))
		}
	}

	if material.Reflectivity > 0 && depth < maxReflectionDepth {
		bounce := linear.NewRay(lifted, ray.Direction.Normalize().Reflect(normal))
		if bounced, ok := s.trace(bounce, depth+1); ok {
			color = color.Lerp(bounced, material.Reflectivity)
		}
	}

	return color
}

// occluded reports whether anything blocks the path from point to the
// light.
func (s *Scene) occluded(point linear.Vec3, light Light) bool {
	hit, ok := s.March(light.ShadowRay(point))
	if !ok {
		return false
	}
	return hit.Distance < point.Dist(light.Position)
}
