// Package render turns shelfgen assemblies into interchange mesh files:
// binary STL, OBJ with a companion MTL, binary PLY and glTF 2.0, plus a JSON
// generation sidecar and an optional PNG preview.
package render

import (
	"io"

	"github.com/shopfab/shelfgen"
)

// Renderer streams triangles of a model. ReadTriangles follows io.Reader
// conventions and reports io.EOF once the model is exhausted.
type Renderer interface {
	ReadTriangles(t []shelfgen.Triangle) (int, error)
}

// assemblyRenderer streams the world space triangles of an assembly one
// object at a time.
type assemblyRenderer struct {
	objects []*shelfgen.Object
	pending []shelfgen.Triangle
}

// NewAssemblyRenderer returns a Renderer over the assembly's objects in
// insertion order.
func NewAssemblyRenderer(a *shelfgen.Assembly) Renderer {
	return &assemblyRenderer{objects: a.Objects()}
}

func (ar *assemblyRenderer) ReadTriangles(dst []shelfgen.Triangle) (int, error) {
	if len(dst) == 0 {
		panic("cannot read into empty triangle slice")
	}
	for len(ar.pending) == 0 {
		if len(ar.objects) == 0 {
			return 0, io.EOF
		}
		ar.pending = ar.objects[0].WorldTriangles()
		ar.objects = ar.objects[1:]
	}
	n := copy(dst, ar.pending)
	ar.pending = ar.pending[n:]
	return n, nil
}
