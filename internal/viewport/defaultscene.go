package viewport

import (
	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
	"github.com/gmalmquist/gwendr/internal/scene"
	"github.com/gmalmquist/gwendr/internal/sdf"
)

// DefaultScene is the built-in demo: four shaded spheres hanging over a
// disk floor, lit from three sides, seen through a perspective eye
// pulled back from the origin.
func DefaultScene() *scene.Scene {
	a := sdf.Shaded(
		sdf.Translate(sdf.NewSphere(1), linear.V3(0, 0, 5)),
		shiny("#ffffff", 1.0),
	)
	b := sdf.Shaded(
		sdf.Translate(sdf.NewSphere(1), linear.V3(-3, 3, 7)),
		shiny("#ff88ff", 1.0),
	)
	c := sdf.Shaded(
		sdf.Translate(sdf.NewSphere(0.5), linear.V3(1, -2, 2)),
		shiny("#8888ff", 0),
	)
	d := sdf.Shaded(
		sdf.Translate(sdf.NewSphere(0.2), linear.V3(-1, 0.6, 4.5)),
		shiny("#ffffff", 0),
	)
	floor := sdf.Shaded(
		sdf.Translate(sdf.NewDisk(linear.Up(), 30), linear.V3(0, -10, 0)),
		matte("#ffffff"),
	)

	return &scene.Scene{
		SDF: sdf.Union(floor, a, b, c, d),
		Lights: []scene.Light{
			scene.NewLight(linear.V3(-10, 10, 5), mat.White(), 10),
			scene.NewLight(linear.V3(10, 0, 0), mat.MustHexColor("#ff88ff").Scale(0.1), 10),
			scene.NewLight(linear.V3(-10, 0, 3), mat.White(), 10),
		},
		View: scene.PerspView{
			EyeFrame:   linear.IdentityFrame().Translate(linear.Backward().Scale(5)),
			Near:       1,
			FOVDegrees: 60,
		},
		FarPlane: 1000,
	}
}

func shiny(diffuse string, reflectivity float64) mat.Material {
	m := mat.DefaultMaterial()
	m.Diffuse = mat.MustHexColor(diffuse)
	m.Ambient = m.Diffuse.Scale(0.01)
	m.Specular = mat.White()
	m.Phong = 10
	m.Reflectivity = reflectivity
	return m
}

func matte(diffuse string) mat.Material {
	m := mat.DefaultMaterial()
	m.Diffuse = mat.MustHexColor(diffuse)
	m.Ambient = m.Diffuse.Scale(0.01)
	return m
}
