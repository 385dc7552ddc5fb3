package scene

import (
	"math"

	"github.com/gmalmquist/gwendr/internal/linear"
)

// View generates the primary ray for a pixel on a w x h film.
type View interface {
	PixelRay(x, y, w, h int) linear.Ray
}

// PerspView is a pinhole camera. EyeFrame's K axis is the view
// direction, J is up. FOVDegrees is the vertical field of view.
type PerspView struct {
	EyeFrame   linear.Frame
	Near       float64
	FOVDegrees float64
}

func (v PerspView) PixelRay(x, y, w, h int) linear.Ray {
	u := (float64(x)+0.5)/float64(w)*2 - 1
	t := 1 - (float64(y)+0.5)/float64(h)*2
	aspect := float64(w) / float64(h)
	half := math.Tan(v.FOVDegrees * math.Pi / 360)

	dir := v.EyeFrame.ProjectVec(linear.V3(u*half*aspect, t*half, 1)).Normalize()
	origin := v.EyeFrame.Origin.Add(v.Near, dir)
	return linear.NewRay(origin, dir)
}

// OrthoView is a parallel-projection camera. The frame's I and J axes
// span half the film in world units; K is the view direction.
type OrthoView struct {
	Frame linear.Frame
}

func (v OrthoView) PixelRay(x, y, w, h int) linear.Ray {
	u := (float64(x)+0.5)/float64(w)*2 - 1
	t := 1 - (float64(y)+0.5)/float64(h)*2

	origin := v.Frame.ProjectPoint(linear.V3(u, t, 0))
	dir := v.Frame.Basis.K.Normalize()
	return linear.NewRay(origin, dir)
}
