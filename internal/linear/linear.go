// Package linear provides the small 3D vector and frame algebra the
// renderer is built on.
package linear

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector. It doubles as a point.
type Vec3 struct {
	X, Y, Z float64
}

// V3 constructs a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Canonical directions. Z points into the screen (left-handed, matching
// the renderer's camera convention).
func Zero() Vec3     { return Vec3{} }
func Up() Vec3       { return V3(0, 1, 0) }
func Down() Vec3     { return V3(0, -1, 0) }
func Left() Vec3     { return V3(-1, 0, 0) }
func Right() Vec3    { return V3(1, 0, 0) }
func Forward() Vec3  { return V3(0, 0, 1) }
func Backward() Vec3 { return V3(0, 0, -1) }

// Add returns v + scale*other.
func (v Vec3) Add(scale float64, other Vec3) Vec3 {
	return V3(v.X+scale*other.X, v.Y+scale*other.Y, v.Z+scale*other.Z)
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return v.Add(-1, other)
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return V3(v.X*s, v.Y*s, v.Z*s)
}

// ScaleVec returns the component-wise product of v and s.
func (v Vec3) ScaleVec(s Vec3) Vec3 {
	return V3(v.X*s.X, v.Y*s.Y, v.Z*s.Z)
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns v x other (right-hand rule).
func (v Vec3) Cross(other Vec3) Vec3 {
	return V3(
		v.Y*other.Z-v.Z*other.Y,
		v.Z*other.X-v.X*other.Z,
		v.X*other.Y-v.Y*other.X,
	)
}

// Norm2 returns the squared length of v.
func (v Vec3) Norm2() float64 {
	return v.Dot(v)
}

// Norm returns the length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	mag2 := v.Norm2()
	if mag2 == 0 {
		return v
	}
	return v.Scale(1 / math.Sqrt(mag2))
}

// Dist2 returns the squared distance between v and other.
func (v Vec3) Dist2(other Vec3) float64 {
	return other.Sub(v).Norm2()
}

// Dist returns the distance between v and other.
func (v Vec3) Dist(other Vec3) float64 {
	return math.Sqrt(v.Dist2(other))
}

// Rotate returns v rotated by angle radians about the given axis
// (Rodrigues' formula). The axis need not be normalized.
func (v Vec3) Rotate(angle float64, axis Vec3) Vec3 {
	k := axis.Normalize()
	sin, cos := math.Sincos(angle)
	return v.Scale(cos).
		Add(sin, k.Cross(v)).
		Add(k.Dot(v)*(1-cos), k)
}

// Reflect returns v mirrored about the given surface normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	n := normal.Normalize()
	return v.Add(-2*v.Dot(n), n)
}

func (v Vec3) String() string {
	return fmt.Sprintf("<%.2f, %.2f, %.2f>", v.X, v.Y, v.Z)
}

// Basis is an ordered triple of (not necessarily orthonormal) axes.
type Basis struct {
	I, J, K Vec3
}

// IdentityBasis returns the standard basis.
func IdentityBasis() Basis {
	return Basis{I: Right(), J: Up(), K: Forward()}
}

// Project maps local coordinates into the space the basis lives in.
func (b Basis) Project(local Vec3) Vec3 {
	return Zero().
		Add(local.X, b.I).
		Add(local.Y, b.J).
		Add(local.Z, b.K)
}

// Unproject maps a vector in the enclosing space back to local
// coordinates along each axis.
func (b Basis) Unproject(global Vec3) Vec3 {
	return V3(
		global.Dot(b.I)/b.I.Norm2(),
		global.Dot(b.J)/b.J.Norm2(),
		global.Dot(b.K)/b.K.Norm2(),
	)
}

func (b Basis) String() string {
	return fmt.Sprintf("Basis(I=%s, J=%s, K=%s)", b.I, b.J, b.K)
}

// Frame is a basis with an origin: a local coordinate system embedded
// in world space.
type Frame struct {
	Origin Vec3
	Basis  Basis
}

// IdentityFrame returns the world frame.
func IdentityFrame() Frame {
	return Frame{Origin: Zero(), Basis: IdentityBasis()}
}

// NewFrame constructs a frame from an origin and three axes.
func NewFrame(origin, i, j, k Vec3) Frame {
	return Frame{Origin: origin, Basis: Basis{I: i, J: j, K: k}}
}

// Translate returns the frame moved by the given offset.
func (f Frame) Translate(by Vec3) Frame {
	f.Origin = f.Origin.Add(1, by)
	return f
}

// Rotate returns the frame with its axes rotated about the given axis.
// The origin stays put.
func (f Frame) Rotate(angle float64, axis Vec3) Frame {
	f.Basis.I = f.Basis.I.Rotate(angle, axis)
	f.Basis.J = f.Basis.J.Rotate(angle, axis)
	f.Basis.K = f.Basis.K.Rotate(angle, axis)
	return f
}

// ProjectVec maps a local direction to world space.
func (f Frame) ProjectVec(local Vec3) Vec3 {
	return f.Basis.Project(local)
}

// UnprojectVec maps a world direction to local space.
func (f Frame) UnprojectVec(global Vec3) Vec3 {
	return f.Basis.Unproject(global)
}

// ProjectPoint maps a local point to world space.
func (f Frame) ProjectPoint(local Vec3) Vec3 {
	return f.Basis.Project(local).Add(1, f.Origin)
}

// UnprojectPoint maps a world point to local space.
func (f Frame) UnprojectPoint(global Vec3) Vec3 {
	return f.Basis.Unproject(global.Sub(f.Origin))
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame(O=%s, I=%s, J=%s, K=%s)",
		f.Origin, f.Basis.I, f.Basis.J, f.Basis.K)
}

// Ray is a half-line: origin plus non-negative multiples of direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay constructs a ray.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point t units along the (normalized) direction.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(t, r.Direction.Normalize())
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(origin=%s, direction=%s)", r.Origin, r.Direction)
}
