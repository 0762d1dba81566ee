// Package parts builds the parameterized components of a retail shelf
// assembly and positions them relative to each other. Builders validate their
// dimensions and return world-axis-aligned meshes centered at the origin;
// placement is done afterwards through Layout.
package parts

import (
	"errors"

	"github.com/shopfab/shelfgen"
	"github.com/shopfab/shelfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ShelfParams defines the main shelf body. Dimensions are meters.
type ShelfParams struct {
	Width  float64
	Height float64
	Depth  float64
	// Thickness is the wall thickness used when Hollow is set.
	Thickness float64
	// Hollow builds an open-top tray shell instead of a solid slab.
	Hollow bool
}

// Shelf returns the main shelf body as an object named name. The mesh spans
// exactly Width x Depth x Height centered at the origin.
func Shelf(name string, p ShelfParams) (*shelfgen.Object, error) {
	if d3.LTEZero(r3.Vec{X: p.Width, Y: p.Depth, Z: p.Height}) {
		return nil, errors.New("shelf dimensions must be positive")
	}
	if !p.Hollow {
		return shelfgen.NewObject(name, shelfgen.Box(r3.Vec{X: p.Width, Y: p.Depth, Z: p.Height})), nil
	}
	t := p.Thickness
	if t <= 0 {
		return nil, errors.New("shelf wall thickness must be positive for hollow shelf")
	}
	if 2*t >= p.Width || 2*t >= p.Depth || t >= p.Height {
		return nil, errors.New("shelf wall thickness too large for shelf dimensions")
	}
	m := trayShell(p.Width, p.Depth, p.Height, t)
	return shelfgen.NewObject(name, m), nil
}

// trayShell assembles an open-top box from a bottom slab and four walls.
func trayShell(w, d, h, t float64) *shelfgen.Mesh {
	m := &shelfgen.Mesh{}
	add := func(size, center r3.Vec) {
		slab := shelfgen.Box(size)
		slab.Translate(center)
		m.Merge(slab)
	}
	wallH := h - t
	wallZ := t / 2
	add(r3.Vec{X: w, Y: d, Z: t}, r3.Vec{Z: -h/2 + t/2})                     // bottom
	add(r3.Vec{X: w, Y: t, Z: wallH}, r3.Vec{Y: -d/2 + t/2, Z: wallZ})       // front
	add(r3.Vec{X: w, Y: t, Z: wallH}, r3.Vec{Y: d/2 - t/2, Z: wallZ})        // back
	add(r3.Vec{X: t, Y: d - 2*t, Z: wallH}, r3.Vec{X: -w/2 + t/2, Z: wallZ}) // left
	add(r3.Vec{X: t, Y: d - 2*t, Z: wallH}, r3.Vec{X: w/2 - t/2, Z: wallZ})  // right
	return m
}
