// Package shelfgen procedurally builds retail shelf assemblies as polygonal
// meshes and hands them to the render package for interchange-format export.
// All geometry lives in an explicit Scene value owned by the caller; there is
// no global scene state.
package shelfgen

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a triangle in 3D space with vertices ordered counterclockwise
// when viewed from outside the surface.
type Triangle [3]r3.Vec

// Normal returns the unit normal of the triangle following the right hand rule.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Area returns the triangle surface area.
func (t Triangle) Area() float64 {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return 0.5 * r3.Norm(r3.Cross(e1, e2))
}
