package shelfgen

import (
	"github.com/shopfab/shelfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Object is a named mesh instance with a world transform and an optional
// material reference. Materials are shared by reference; any number of
// objects may point at the same Material.
type Object struct {
	Name        string
	Mesh        *Mesh
	Translation r3.Vec
	Rotation    r3.Rotation
	Scale       r3.Vec
	Material    *Material
}

// NewObject returns an object wrapping m with an identity transform.
func NewObject(name string, m *Mesh) *Object {
	return &Object{
		Name:     name,
		Mesh:     m,
		Rotation: r3.NewRotation(0, r3.Vec{Z: 1}),
		Scale:    d3.Elem(1),
	}
}

// transformPoint applies scale, then rotation, then translation.
func (o *Object) transformPoint(p r3.Vec) r3.Vec {
	p = d3.MulElem(p, o.Scale)
	p = o.Rotation.Rotate(p)
	return r3.Add(p, o.Translation)
}

// WorldTriangles returns the object's triangulated mesh in world space.
func (o *Object) WorldTriangles() []Triangle {
	tris := o.Mesh.Triangles()
	for i := range tris {
		tris[i][0] = o.transformPoint(tris[i][0])
		tris[i][1] = o.transformPoint(tris[i][1])
		tris[i][2] = o.transformPoint(tris[i][2])
	}
	return tris
}

// WorldVerts returns the object's vertices in world space.
func (o *Object) WorldVerts() []r3.Vec {
	vs := make([]r3.Vec, len(o.Mesh.Verts))
	for i, v := range o.Mesh.Verts {
		vs[i] = o.transformPoint(v)
	}
	return vs
}

// WorldBounds returns the axis aligned bounding box of the transformed mesh.
func (o *Object) WorldBounds() d3.Box {
	vs := o.WorldVerts()
	if len(vs) == 0 {
		return d3.Box{}
	}
	box := d3.Box{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		box = box.Include(v)
	}
	return box
}

// Dimensions returns the world space bounding box size of the object.
func (o *Object) Dimensions() r3.Vec {
	return o.WorldBounds().Size()
}
