package render

import (
	"errors"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/shopfab/shelfgen"
)

// PreviewConfig controls the offline PNG preview render.
type PreviewConfig struct {
	Width, Height int
	// Eye, LookAt and Up define the camera; zero values pick an isometric
	// three-quarter view.
	Eye    [3]float64
	LookAt [3]float64
	Up     [3]float64
}

// CreatePNG renders a shaded preview of the assembly to a PNG file. The
// assembly is fit to a bi-unit cube, lit by a single directional light and
// supersampled 2x before downsizing.
func CreatePNG(path string, a *shelfgen.Assembly, cfg PreviewConfig) error {
	tris := a.Triangles()
	if len(tris) == 0 {
		return errors.New("empty assembly")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.Eye == ([3]float64{}) {
		cfg.Eye = [3]float64{3, -3, 2}
		cfg.Up = [3]float64{0, 0, 1}
	}
	ftris := make([]*fauxgl.Triangle, len(tris))
	for i, t := range tris {
		ftris[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(t[0].X, t[0].Y, t[0].Z),
			fauxgl.V(t[1].X, t[1].Y, t[1].Z),
			fauxgl.V(t[2].X, t[2].Y, t[2].Z),
		)
	}
	mesh := fauxgl.NewTriangleMesh(ftris)
	mesh.BiUnitCube()

	const (
		scale = 2 // supersampling
		fovy  = 30
		near  = 1
		far   = 10
	)
	eye := fauxgl.V(cfg.Eye[0], cfg.Eye[1], cfg.Eye[2])
	center := fauxgl.V(cfg.LookAt[0], cfg.LookAt[1], cfg.LookAt[2])
	up := fauxgl.V(cfg.Up[0], cfg.Up[1], cfg.Up[2])
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()

	context := fauxgl.NewContext(cfg.Width*scale, cfg.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(cfg.Width) / float64(cfg.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor("#8A6A43")
	context.Shader = shader
	context.DrawMesh(mesh)

	image := resize.Resize(uint(cfg.Width), uint(cfg.Height), context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(path, image)
}
