package shelfgen

// Material is a flat shading parameter set. No texture or node graph is
// attached; values are passed through verbatim to exporters.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA, each component in [0,1]
	Roughness float64
	Metallic  float64
}
