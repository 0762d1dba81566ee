package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/shopfab/shelfgen"
)

// WritePLY writes the assembly as a binary little-endian PLY file. All object
// meshes are flattened into one vertex and one face element in world space.
func WritePLY(w io.Writer, a *shelfgen.Assembly) error {
	var (
		nv, nf int
		objs   = a.Objects()
	)
	for _, o := range objs {
		nv += len(o.Mesh.Verts)
		nf += len(o.Mesh.Faces)
	}
	if nv == 0 {
		return errors.New("empty assembly")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "ply")
	fmt.Fprintln(bw, "format binary_little_endian 1.0")
	fmt.Fprintf(bw, "comment shelfgen %s\n", a.Label)
	fmt.Fprintf(bw, "element vertex %d\n", nv)
	fmt.Fprintln(bw, "property float x")
	fmt.Fprintln(bw, "property float y")
	fmt.Fprintln(bw, "property float z")
	fmt.Fprintf(bw, "element face %d\n", nf)
	fmt.Fprintln(bw, "property list uchar uint vertex_indices")
	fmt.Fprintln(bw, "end_header")

	var vbuf [12]byte
	for _, o := range objs {
		for _, v := range o.WorldVerts() {
			f := f32vec(v.X, v.Y, v.Z)
			if bad3F32(f) {
				return errors.New("inf/NaN PLY vertex")
			}
			binary.LittleEndian.PutUint32(vbuf[0:], math.Float32bits(f[0]))
			binary.LittleEndian.PutUint32(vbuf[4:], math.Float32bits(f[1]))
			binary.LittleEndian.PutUint32(vbuf[8:], math.Float32bits(f[2]))
			if _, err := bw.Write(vbuf[:]); err != nil {
				return err
			}
		}
	}
	offset := 0
	for _, o := range objs {
		for _, face := range o.Mesh.Faces {
			if len(face) > math.MaxUint8 {
				return fmt.Errorf("face with %d vertices exceeds PLY uchar list count", len(face))
			}
			if err := bw.WriteByte(byte(len(face))); err != nil {
				return err
			}
			var ibuf [4]byte
			for _, vi := range face {
				binary.LittleEndian.PutUint32(ibuf[:], uint32(vi+offset))
				if _, err := bw.Write(ibuf[:]); err != nil {
					return err
				}
			}
		}
		offset += len(o.Mesh.Verts)
	}
	return bw.Flush()
}
