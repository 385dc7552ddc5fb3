// Package mat holds colors and surface materials.
package mat

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple with float components. Values outside [0, 1]
// are legal mid-computation and clamped on output.
type Color struct {
	R, G, B float64
}

// NewColor constructs a color from float components.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromIRGB constructs a color from 8-bit components.
func FromIRGB(r, g, b int) Color {
	return NewColor(float64(r)/255, float64(g)/255, float64(b)/255)
}

// FromHexstring parses a "#rrggbb" color. The leading '#' is optional.
func FromHexstring(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want six hex digits", s)
	}
	var comps [3]int
	for i := range comps {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		comps[i] = int(v)
	}
	return FromIRGB(comps[0], comps[1], comps[2]), nil
}

// MustHexColor is FromHexstring for compile-time literals.
func MustHexColor(s string) Color {
	c, err := FromHexstring(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Black returns the zero color.
func Black() Color { return Color{} }

// White returns full-intensity white.
func White() Color { return NewColor(1, 1, 1) }

// Add returns c + scale*other.
func (c Color) Add(scale float64, other Color) Color {
	return NewColor(c.R+scale*other.R, c.G+scale*other.G, c.B+scale*other.B)
}

// Scale returns c with every component scaled by s.
func (c Color) Scale(s float64) Color {
	return NewColor(c.R*s, c.G*s, c.B*s)
}

// Multiply returns the component-wise product of c and other.
func (c Color) Multiply(other Color) Color {
	return NewColor(c.R*other.R, c.G*other.G, c.B*other.B)
}

// Lerp returns the blend (1-t)*c + t*other.
func (c Color) Lerp(other Color, t float64) Color {
	return c.Scale(1 - t).Add(t, other)
}

// RGBA8 returns the clamped 8-bit components with full alpha.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to255(c.R), to255(c.G), to255(c.B), 0xff
}

// Hexstring renders the clamped color as "#rrggbb".
func (c Color) Hexstring() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Color) String() string {
	return c.Hexstring()
}

func to255(f float64) uint8 {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return uint8(f * 255)
}

// Material describes how a surface responds to light.
type Material struct {
	Ambient      Color
	Diffuse      Color
	Specular     Color
	Phong        float64
	Reflectivity float64
}

// DefaultMaterial returns a matte white surface.
func DefaultMaterial() Material {
	return Material{
		Ambient:  Black(),
		Diffuse:  White(),
		Specular: Black(),
		Phong:    1,
	}
}
