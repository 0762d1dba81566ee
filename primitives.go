package shelfgen

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box returns a box mesh of the given outer size centered at the origin.
func Box(size r3.Vec) *Mesh {
	h := r3.Scale(0.5, size)
	return &Mesh{
		Verts: []r3.Vec{
			{X: -h.X, Y: -h.Y, Z: -h.Z},
			{X: h.X, Y: -h.Y, Z: -h.Z},
			{X: h.X, Y: h.Y, Z: -h.Z},
			{X: -h.X, Y: h.Y, Z: -h.Z},
			{X: -h.X, Y: -h.Y, Z: h.Z},
			{X: h.X, Y: -h.Y, Z: h.Z},
			{X: h.X, Y: h.Y, Z: h.Z},
			{X: -h.X, Y: h.Y, Z: h.Z},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{2, 3, 7, 6}, // back
			{3, 0, 4, 7}, // left
			{1, 2, 6, 5}, // right
		},
	}
}

// TriangularPrism returns a right triangular prism. The base triangle lies on
// the z=0 plane with its base edge spanning x in [-length/2, length/2] and the
// apex at x=-length/2, z=height. The prism is extruded along y by thickness,
// centered on the xz plane.
func TriangularPrism(length, height, thickness float64) *Mesh {
	l, t := length/2, thickness/2
	return &Mesh{
		Verts: []r3.Vec{
			{X: -l, Y: -t, Z: 0},
			{X: l, Y: -t, Z: 0},
			{X: -l, Y: -t, Z: height},
			{X: -l, Y: t, Z: 0},
			{X: l, Y: t, Z: 0},
			{X: -l, Y: t, Z: height},
		},
		Faces: [][]int{
			{0, 1, 2},    // front triangle
			{3, 5, 4},    // back triangle
			{0, 3, 4, 1}, // bottom
			{0, 2, 5, 3}, // vertical side
			{1, 4, 5, 2}, // hypotenuse
		},
	}
}

// Cylinder returns a cylinder mesh with its axis along x, centered at the
// origin. segments is the number of sides and must be 3 or more.
func Cylinder(length, radius float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	l := length / 2
	m := &Mesh{}
	// two rings then two cap centers.
	for _, x := range [2]float64{-l, l} {
		for i := 0; i < segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			m.Verts = append(m.Verts, r3.Vec{
				X: x,
				Y: radius * math.Cos(theta),
				Z: radius * math.Sin(theta),
			})
		}
	}
	c0 := len(m.Verts)
	m.Verts = append(m.Verts, r3.Vec{X: -l}, r3.Vec{X: l})
	c1 := c0 + 1
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		// side wall
		m.Faces = append(m.Faces, []int{i, j, segments + j, segments + i})
		// caps
		m.Faces = append(m.Faces,
			[]int{c0, j, i},
			[]int{c1, segments + i, segments + j},
		)
	}
	return m
}

// UVSphere returns a latitude-longitude sphere mesh centered at the origin.
// uSegments is the segment count around the z axis, vSegments the ring count
// from pole to pole.
func UVSphere(radius float64, uSegments, vSegments int) *Mesh {
	if uSegments < 3 {
		uSegments = 3
	}
	if vSegments < 2 {
		vSegments = 2
	}
	m := &Mesh{}
	top := 0
	bottom := 1
	m.Verts = append(m.Verts, r3.Vec{Z: radius}, r3.Vec{Z: -radius})
	ring := func(v, u int) int { return 2 + (v-1)*uSegments + u%uSegments }
	for v := 1; v < vSegments; v++ {
		phi := math.Pi * float64(v) / float64(vSegments)
		for u := 0; u < uSegments; u++ {
			theta := 2 * math.Pi * float64(u) / float64(uSegments)
			m.Verts = append(m.Verts, r3.Vec{
				X: radius * math.Sin(phi) * math.Cos(theta),
				Y: radius * math.Sin(phi) * math.Sin(theta),
				Z: radius * math.Cos(phi),
			})
		}
	}
	for u := 0; u < uSegments; u++ {
		m.Faces = append(m.Faces, []int{top, ring(1, u), ring(1, u+1)})
		m.Faces = append(m.Faces, []int{bottom, ring(vSegments-1, u+1), ring(vSegments-1, u)})
	}
	for v := 1; v < vSegments-1; v++ {
		for u := 0; u < uSegments; u++ {
			m.Faces = append(m.Faces, []int{
				ring(v, u), ring(v+1, u), ring(v+1, u+1), ring(v, u+1),
			})
		}
	}
	return m
}
