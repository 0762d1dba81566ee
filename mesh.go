package shelfgen

import (
	"fmt"

	"github.com/shopfab/shelfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed polygonal surface. Faces are ordered vertex index tuples
// of length 3 or more, wound counterclockwise seen from outside.
type Mesh struct {
	Verts []r3.Vec
	Faces [][]int
}

// Validate checks that every face references only vertices present in the
// vertex list and has at least 3 indices.
func (m *Mesh) Validate() error {
	nv := len(m.Verts)
	for i, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d indices, need at least 3", i, len(f))
		}
		for _, vi := range f {
			if vi < 0 || vi >= nv {
				return fmt.Errorf("face %d references vertex %d outside [0,%d)", i, vi, nv)
			}
		}
	}
	return nil
}

// Triangles triangulates the mesh by fanning each face around its first
// vertex and returns the resulting triangles.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		for i := 2; i < len(f); i++ {
			tris = append(tris, Triangle{
				m.Verts[f[0]],
				m.Verts[f[i-1]],
				m.Verts[f[i]],
			})
		}
	}
	return tris
}

// TriangleCount returns the number of triangles Triangles would produce.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		n += len(f) - 2
	}
	return n
}

// Bounds returns the axis aligned bounding box of the mesh vertices.
// The zero box is returned for an empty mesh.
func (m *Mesh) Bounds() d3.Box {
	if len(m.Verts) == 0 {
		return d3.Box{}
	}
	s := d3.Set(m.Verts)
	return d3.Box{Min: s.Min(), Max: s.Max()}
}

// Merge appends the geometry of other to m, offsetting face indices.
// The meshes remain unwelded; coincident vertices are not deduplicated.
func (m *Mesh) Merge(other *Mesh) {
	offset := len(m.Verts)
	m.Verts = append(m.Verts, other.Verts...)
	for _, f := range other.Faces {
		nf := make([]int, len(f))
		for i, vi := range f {
			nf[i] = vi + offset
		}
		m.Faces = append(m.Faces, nf)
	}
}

// Translate displaces all mesh vertices by v.
func (m *Mesh) Translate(v r3.Vec) {
	for i := range m.Verts {
		m.Verts[i] = r3.Add(m.Verts[i], v)
	}
}
