// Package scenefile loads scene descriptions from HCL files.
//
// A scene file lists shape blocks (sphere, disk, box) with optional
// material blocks, light blocks, and one camera block:
//
//	camera {
//	  eye = [0, 0, -5]
//	  fov = 60
//	}
//
//	sphere {
//	  center = [0, 0, 5]
//	  radius = 1
//	  material {
//	    diffuse      = "#ffffff"
//	    reflectivity = 1
//	  }
//	}
//
//	light {
//	  position = [-10, 10, 5]
//	  color    = "#ffffff"
//	  atten    = 10
//	}
package scenefile

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/gmalmquist/gwendr/internal/linear"
	"github.com/gmalmquist/gwendr/internal/mat"
	"github.com/gmalmquist/gwendr/internal/scene"
	"github.com/gmalmquist/gwendr/internal/sdf"
)

type fileHCL struct {
	FarPlane *float64    `hcl:"far_plane,optional"`
	Camera   *cameraHCL  `hcl:"camera,block"`
	Lights   []lightHCL  `hcl:"light,block"`
	Spheres  []sphereHCL `hcl:"sphere,block"`
	Disks    []diskHCL   `hcl:"disk,block"`
	Boxes    []boxHCL    `hcl:"box,block"`
}

type cameraHCL struct {
	Projection *string   `hcl:"projection,optional"`
	Eye        []float64 `hcl:"eye"`
	LookAt     []float64 `hcl:"look_at,optional"`
	FOV        *float64  `hcl:"fov,optional"`
	Near       *float64  `hcl:"near,optional"`
	Film       *float64  `hcl:"film,optional"`
}

type lightHCL struct {
	Position []float64 `hcl:"position"`
	Color    string    `hcl:"color"`
	Atten    float64   `hcl:"atten"`
}

type sphereHCL struct {
	Center   []float64    `hcl:"center"`
	Radius   float64      `hcl:"radius"`
	Material *materialHCL `hcl:"material,block"`
}

type diskHCL struct {
	Center   []float64    `hcl:"center"`
	Normal   []float64    `hcl:"normal"`
	Radius   float64      `hcl:"radius"`
	Material *materialHCL `hcl:"material,block"`
}

type boxHCL struct {
	Center   []float64    `hcl:"center"`
	Size     []float64    `hcl:"size"`
	Angle    *float64     `hcl:"angle,optional"`
	Axis     []float64    `hcl:"axis,optional"`
	Material *materialHCL `hcl:"material,block"`
}

type materialHCL struct {
	Diffuse      string   `hcl:"diffuse"`
	Ambient      *string  `hcl:"ambient,optional"`
	Specular     *string  `hcl:"specular,optional"`
	Phong        *float64 `hcl:"phong,optional"`
	Reflectivity *float64 `hcl:"reflectivity,optional"`
}

// evalContext exposes a few constants to scene expressions, so files
// can say things like angle = pi / 4.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi":  cty.NumberFloatVal(math.Pi),
			"tau": cty.NumberFloatVal(2 * math.Pi),
		},
	}
}

// Load reads and builds a scene from the HCL file at path.
func Load(path string) (*scene.Scene, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse scene file %s: %s", path, diags.Error())
	}
	return build(path, file)
}

// Parse builds a scene from HCL source held in memory. The filename
// only labels diagnostics.
func Parse(filename string, src []byte) (*scene.Scene, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse scene %s: %s", filename, diags.Error())
	}
	return build(filename, file)
}

func build(name string, file *hcl.File) (*scene.Scene, error) {
	var raw fileHCL
	diags := gohcl.DecodeBody(file.Body, evalContext(), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode scene %s: %s", name, diags.Error())
	}

	var shapes []sdf.SDF
	for i, s := range raw.Spheres {
		shape, err := buildSphere(s)
		if err != nil {
			return nil, fmt.Errorf("%s: sphere %d: %w", name, i, err)
		}
		shapes = append(shapes, shape)
	}
	for i, d := range raw.Disks {
		shape, err := buildDisk(d)
		if err != nil {
			return nil, fmt.Errorf("%s: disk %d: %w", name, i, err)
		}
		shapes = append(shapes, shape)
	}
	for i, b := range raw.Boxes {
		shape, err := buildBox(b)
		if err != nil {
			return nil, fmt.Errorf("%s: box %d: %w", name, i, err)
		}
		shapes = append(shapes, shape)
	}
	if len(shapes) == 0 {
		return nil, fmt.Errorf("%s: scene has no shapes", name)
	}

	var lights []scene.Light
	for i, l := range raw.Lights {
		light, err := buildLight(l)
		if err != nil {
			return nil, fmt.Errorf("%s: light %d: %w", name, i, err)
		}
		lights = append(lights, light)
	}

	view, err := buildView(raw.Camera)
	if err != nil {
		return nil, fmt.Errorf("%s: camera: %w", name, err)
	}

	farPlane := 1000.0
	if raw.FarPlane != nil {
		farPlane = *raw.FarPlane
	}

	return &scene.Scene{
		SDF:      sdf.Union(shapes...),
		Lights:   lights,
		View:     view,
		FarPlane: farPlane,
	}, nil
}

func buildSphere(s sphereHCL) (sdf.SDF, error) {
	center, err := vec3(s.Center, "center")
	if err != nil {
		return nil, err
	}
	if s.Radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", s.Radius)
	}
	return withMaterial(sdf.Translate(sdf.NewSphere(s.Radius), center), s.Material)
}

func buildDisk(d diskHCL) (sdf.SDF, error) {
	center, err := vec3(d.Center, "center")
	if err != nil {
		return nil, err
	}
	normal, err := vec3(d.Normal, "normal")
	if err != nil {
		return nil, err
	}
	if d.Radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", d.Radius)
	}
	return withMaterial(sdf.Translate(sdf.NewDisk(normal, d.Radius), center), d.Material)
}

func buildBox(b boxHCL) (sdf.SDF, error) {
	center, err := vec3(b.Center, "center")
	if err != nil {
		return nil, err
	}
	size, err := vec3(b.Size, "size")
	if err != nil {
		return nil, err
	}
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("size must be positive, got %s", size)
	}

	var shape sdf.SDF = sdf.NewBox(size.X, size.Y, size.Z)
	if b.Angle != nil {
		axis := linear.Up()
		if b.Axis != nil {
			axis, err = vec3(b.Axis, "axis")
			if err != nil {
				return nil, err
			}
		}
		shape = sdf.Rotate(shape, *b.Angle, axis)
	}
	return withMaterial(sdf.Translate(shape, center), b.Material)
}

func buildLight(l lightHCL) (scene.Light, error) {
	position, err := vec3(l.Position, "position")
	if err != nil {
		return scene.Light{}, err
	}
	color, err := mat.FromHexstring(l.Color)
	if err != nil {
		return scene.Light{}, err
	}
	if l.Atten <= 0 {
		return scene.Light{}, fmt.Errorf("atten must be positive, got %v", l.Atten)
	}
	return scene.NewLight(position, color, l.Atten), nil
}

func buildView(c *cameraHCL) (scene.View, error) {
	if c == nil {
		return scene.PerspView{
			EyeFrame:   linear.IdentityFrame().Translate(linear.Backward().Scale(5)),
			Near:       1,
			FOVDegrees: 60,
		}, nil
	}

	eye, err := vec3(c.Eye, "eye")
	if err != nil {
		return nil, err
	}

	frame := linear.IdentityFrame().Translate(eye)
	if c.LookAt != nil {
		target, err := vec3(c.LookAt, "look_at")
		if err != nil {
			return nil, err
		}
		k := target.Sub(eye).Normalize()
		if k.Norm2() == 0 {
			return nil, fmt.Errorf("look_at coincides with eye")
		}
		i := linear.Up().Cross(k).Normalize()
		j := k.Cross(i)
		frame = linear.NewFrame(eye, i, j, k)
	}

	projection := "persp"
	if c.Projection != nil {
		projection = *c.Projection
	}

	switch projection {
	case "persp":
		fov := 60.0
		if c.FOV != nil {
			fov = *c.FOV
		}
		near := 1.0
		if c.Near != nil {
			near = *c.Near
		}
		return scene.PerspView{EyeFrame: frame, Near: near, FOVDegrees: fov}, nil
	case "ortho":
		film := 5.0
		if c.Film != nil {
			film = *c.Film
		}
		return scene.OrthoView{Frame: linear.NewFrame(
			frame.Origin,
			frame.Basis.I.Scale(film),
			frame.Basis.J.Scale(film),
			frame.Basis.K,
		)}, nil
	default:
		return nil, fmt.Errorf("unknown projection %q (want persp or ortho)", projection)
	}
}

func withMaterial(shape sdf.SDF, m *materialHCL) (sdf.SDF, error) {
	if m == nil {
		return shape, nil
	}

	material := mat.DefaultMaterial()
	diffuse, err := mat.FromHexstring(m.Diffuse)
	if err != nil {
		return nil, err
	}
	material.Diffuse = diffuse
	material.Ambient = diffuse.Scale(0.01)

	if m.Ambient != nil {
		if material.Ambient, err = mat.FromHexstring(*m.Ambient); err != nil {
			return nil, err
		}
	}
	if m.Specular != nil {
		if material.Specular, err = mat.FromHexstring(*m.Specular); err != nil {
			return nil, err
		}
	}
	if m.Phong != nil {
		material.Phong = *m.Phong
	}
	if m.Reflectivity != nil {
		material.Reflectivity = *m.Reflectivity
	}
	return sdf.Shaded(shape, material), nil
}

func vec3(comps []float64, attr string) (linear.Vec3, error) {
	if len(comps) != 3 {
		return linear.Vec3{}, fmt.Errorf("%s wants [x, y, z], got %d components", attr, len(comps))
	}
	return linear.V3(comps[0], comps[1], comps[2]), nil
}
