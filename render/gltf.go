package render

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"

	"github.com/shopfab/shelfgen"
)

// Minimal glTF 2.0 document model, enough for static meshes with flat
// pbrMetallicRoughness materials and a single embedded buffer.
type gltfDocument struct {
	Asset       gltfAsset      `json:"asset"`
	Scene       int            `json:"scene"`
	Scenes      []gltfScene    `json:"scenes"`
	Nodes       []gltfNode     `json:"nodes"`
	Meshes      []gltfMesh     `json:"meshes"`
	Materials   []gltfMaterial `json:"materials,omitempty"`
	Buffers     []gltfBuffer   `json:"buffers"`
	BufferViews []gltfView     `json:"bufferViews"`
	Accessors   []gltfAccessor `json:"accessors"`
}

type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

type gltfScene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes"`
}

type gltfNode struct {
	Name string `json:"name,omitempty"`
	Mesh int    `json:"mesh"`
}

type gltfMesh struct {
	Name       string          `json:"name,omitempty"`
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Material   *int           `json:"material,omitempty"`
}

type gltfMaterial struct {
	Name string  `json:"name,omitempty"`
	PBR  gltfPBR `json:"pbrMetallicRoughness"`
}

type gltfPBR struct {
	BaseColorFactor [4]float64 `json:"baseColorFactor"`
	MetallicFactor  float64    `json:"metallicFactor"`
	RoughnessFactor float64    `json:"roughnessFactor"`
}

type gltfBuffer struct {
	ByteLength int    `json:"byteLength"`
	URI        string `json:"uri"`
}

type gltfView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target,omitempty"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float64 `json:"min,omitempty"`
	Max           []float64 `json:"max,omitempty"`
}

const (
	gltfComponentFloat = 5126
	gltfComponentUint  = 5125
	gltfTargetArray    = 34962
	gltfTargetElement  = 34963
)

// WriteGLTF writes the assembly as a glTF 2.0 JSON document with world space
// geometry in one embedded base64 buffer, one node and mesh per object.
func WriteGLTF(w io.Writer, a *shelfgen.Assembly) error {
	doc := gltfDocument{
		Asset: gltfAsset{Version: "2.0", Generator: "shelfgen"},
		Scene: 0,
	}
	var (
		bin    bytes.Buffer
		nodes  []int
		matIdx = make(map[*shelfgen.Material]int)
	)
	for _, m := range assemblyMaterials(a) {
		matIdx[m] = len(doc.Materials)
		doc.Materials = append(doc.Materials, gltfMaterial{
			Name: m.Name,
			PBR: gltfPBR{
				BaseColorFactor: m.BaseColor,
				MetallicFactor:  m.Metallic,
				RoughnessFactor: m.Roughness,
			},
		})
	}
	for _, o := range a.Objects() {
		verts := o.WorldVerts()
		// positions view
		posOffset := bin.Len()
		min := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
		max := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		var b4 [4]byte
		for _, v := range verts {
			for c, x := range [3]float64{v.X, v.Y, v.Z} {
				f := float32(x)
				min[c] = math.Min(min[c], float64(f))
				max[c] = math.Max(max[c], float64(f))
				binary.LittleEndian.PutUint32(b4[:], math.Float32bits(f))
				bin.Write(b4[:])
			}
		}
		// triangle indices view
		idxOffset := bin.Len()
		nIdx := 0
		for _, f := range o.Mesh.Faces {
			for i := 2; i < len(f); i++ {
				for _, vi := range [3]int{f[0], f[i-1], f[i]} {
					binary.LittleEndian.PutUint32(b4[:], uint32(vi))
					bin.Write(b4[:])
				}
				nIdx += 3
			}
		}
		posView := len(doc.BufferViews)
		doc.BufferViews = append(doc.BufferViews,
			gltfView{Buffer: 0, ByteOffset: posOffset, ByteLength: idxOffset - posOffset, Target: gltfTargetArray},
			gltfView{Buffer: 0, ByteOffset: idxOffset, ByteLength: bin.Len() - idxOffset, Target: gltfTargetElement},
		)
		posAcc := len(doc.Accessors)
		doc.Accessors = append(doc.Accessors,
			gltfAccessor{BufferView: posView, ComponentType: gltfComponentFloat, Count: len(verts), Type: "VEC3", Min: min, Max: max},
			gltfAccessor{BufferView: posView + 1, ComponentType: gltfComponentUint, Count: nIdx, Type: "SCALAR"},
		)
		prim := gltfPrimitive{
			Attributes: map[string]int{"POSITION": posAcc},
			Indices:    posAcc + 1,
		}
		if o.Material != nil {
			idx := matIdx[o.Material]
			prim.Material = &idx
		}
		doc.Meshes = append(doc.Meshes, gltfMesh{Name: o.Name, Primitives: []gltfPrimitive{prim}})
		doc.Nodes = append(doc.Nodes, gltfNode{Name: o.Name, Mesh: len(doc.Meshes) - 1})
		nodes = append(nodes, len(doc.Nodes)-1)
	}
	doc.Scenes = []gltfScene{{Name: a.Label, Nodes: nodes}}
	doc.Buffers = []gltfBuffer{{
		ByteLength: bin.Len(),
		URI:        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(bin.Bytes()),
	}}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
