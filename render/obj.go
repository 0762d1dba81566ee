package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopfab/shelfgen"
)

// WriteOBJ writes the assembly as a Wavefront OBJ with one `o` group per
// object in a shared 1-based index space. mtlName, when not empty, is emitted
// as a mtllib reference and material names as usemtl lines.
func WriteOBJ(w io.Writer, a *shelfgen.Assembly, mtlName string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", a.Label)
	if mtlName != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtlName)
	}
	offset := 1
	for _, o := range a.Objects() {
		fmt.Fprintf(bw, "o %s\n", o.Name)
		if o.Material != nil {
			fmt.Fprintf(bw, "usemtl %s\n", o.Material.Name)
		}
		verts := o.WorldVerts()
		for _, v := range verts {
			fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
		}
		for _, f := range o.Mesh.Faces {
			fmt.Fprint(bw, "f")
			for _, vi := range f {
				fmt.Fprintf(bw, " %d", vi+offset)
			}
			fmt.Fprintln(bw)
		}
		offset += len(verts)
	}
	return bw.Flush()
}

// WriteMTL writes the material library for the assembly. Base color maps to
// Kd, alpha to d, roughness and metallic to the PBR extension keys Pr and Pm.
func WriteMTL(w io.Writer, a *shelfgen.Assembly) error {
	bw := bufio.NewWriter(w)
	for _, m := range assemblyMaterials(a) {
		fmt.Fprintf(bw, "newmtl %s\n", m.Name)
		fmt.Fprintf(bw, "Kd %.4f %.4f %.4f\n", m.BaseColor[0], m.BaseColor[1], m.BaseColor[2])
		fmt.Fprintf(bw, "d %.4f\n", m.BaseColor[3])
		fmt.Fprintf(bw, "Pr %.4f\n", m.Roughness)
		fmt.Fprintf(bw, "Pm %.4f\n", m.Metallic)
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// assemblyMaterials returns the distinct materials referenced by the
// assembly, in first-use order.
func assemblyMaterials(a *shelfgen.Assembly) []*shelfgen.Material {
	var mats []*shelfgen.Material
	seen := make(map[*shelfgen.Material]bool)
	for _, o := range a.Objects() {
		if o.Material != nil && !seen[o.Material] {
			seen[o.Material] = true
			mats = append(mats, o.Material)
		}
	}
	return mats
}

// createOBJ writes base.obj and, when materials are present, base.mtl.
func createOBJ(dir, base string, a *shelfgen.Assembly) error {
	mtlName := ""
	if len(assemblyMaterials(a)) > 0 {
		mtlName = base + ".mtl"
		mf, err := os.Create(filepath.Join(dir, mtlName))
		if err != nil {
			return err
		}
		if err := WriteMTL(mf, a); err != nil {
			mf.Close()
			return err
		}
		if err := mf.Close(); err != nil {
			return err
		}
	}
	f, err := os.Create(filepath.Join(dir, base+".obj"))
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteOBJ(f, a, mtlName)
}
