package parts

import (
	"errors"

	"github.com/shopfab/shelfgen"
	"github.com/shopfab/shelfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// CrownStyle selects the crown molding silhouette.
type CrownStyle uint8

const (
	// CrownCylinder is a cylindrical rod along the shelf width.
	CrownCylinder CrownStyle = iota
	// CrownOvoid is a sphere flattened to the crown footprint.
	CrownOvoid
)

// CrownParams defines the decorative crown molding. The long axis always
// runs along x (the shelf width).
type CrownParams struct {
	Width float64
	Style CrownStyle
	// Cylinder style.
	Radius   float64
	Segments int
	// Ovoid style.
	Height float64
	Depth  float64
}

// Crown returns the crown molding object.
func Crown(name string, p CrownParams) (*shelfgen.Object, error) {
	if p.Width <= 0 {
		return nil, errors.New("crown width must be positive")
	}
	switch p.Style {
	case CrownCylinder:
		if p.Radius <= 0 {
			return nil, errors.New("crown radius must be positive")
		}
		if p.Segments < 3 {
			return nil, errors.New("crown segments must be 3 or more")
		}
		return shelfgen.NewObject(name, shelfgen.Cylinder(p.Width, p.Radius, p.Segments)), nil
	case CrownOvoid:
		if p.Height <= 0 || p.Depth <= 0 {
			return nil, errors.New("crown height and depth must be positive")
		}
		m := shelfgen.UVSphere(0.5, 16, 8)
		scale := r3.Vec{X: p.Width, Y: p.Depth, Z: p.Height}
		for i := range m.Verts {
			m.Verts[i] = d3.MulElem(m.Verts[i], scale)
		}
		return shelfgen.NewObject(name, m), nil
	}
	return nil, errors.New("unknown crown style")
}
