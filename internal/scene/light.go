package scene

import (
	"math"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
)

// Light is a point light. Atten is the radius at which its intensity
// starts falling off with the square of distance.
type Light struct {
	Position linear.Vec3
	Color    mat.Color
	Atten    float64
}

// NewLight constructs a point light.
func NewLight(position linear.Vec3, color mat.Color, atten float64) Light {
	return Light{Position: position, Color: color, Atten: atten}
}

// ShadowRay returns the ray from point toward the light.
func (l Light) ShadowRay(point linear.Vec3) linear.Ray {
	return linear.NewRay(point, l.Position.Sub(point))
}

// ColorAt returns the light's color attenuated for the given point.
func (l Light) ColorAt(point linear.Vec3) mat.Color {
	dist2 := point.Dist2(l.Position)
	atten := math.Min((l.Atten*l.Atten)/dist2, 1)
	return l.Color.Scale(atten)
}
