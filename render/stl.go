package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/shopfab/shelfgen"
)

// stlTriangle defines the triangle record within a binary STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count
}

const stlTriangleSize = 50

// WriteSTL writes model triangles to w in binary STL format.
func WriteSTL(wr io.Writer, model []shelfgen.Triangle) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	w := bufio.NewWriter(wr)
	var header [84]byte
	binary.LittleEndian.PutUint32(header[80:], uint32(len(model)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	var d stlTriangle
	var b [stlTriangleSize]byte
	for _, tri := range model {
		n := tri.Normal()
		d.Normal = f32vec(n.X, n.Y, n.Z)
		d.Vertex1 = f32vec(tri[0].X, tri[0].Y, tri[0].Z)
		d.Vertex2 = f32vec(tri[1].X, tri[1].Y, tri[1].Z)
		d.Vertex3 = f32vec(tri[2].X, tri[2].Y, tri[2].Z)
		if bad3F32(d.Vertex1) || bad3F32(d.Vertex2) || bad3F32(d.Vertex3) {
			return errors.New("inf/NaN STL triangle vertex")
		}
		d.put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// CreateSTL writes the triangles of a Renderer to an STL file at path.
func CreateSTL(path string, r Renderer) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSTL(file, model)
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func f32vec(x, y, z float64) [3]float32 {
	return [3]float32{float32(x), float32(y), float32(z)}
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
