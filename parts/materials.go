package parts

import "github.com/shopfab/shelfgen"

// Category maps a component to its default material.
type Category uint8

const (
	CategoryShelf Category = iota
	CategoryBracket
	CategoryBacking
	CategoryCrown
)

// DefaultMaterial returns a fresh material with the flat defaults for a
// component category. Callers may mutate the returned value before sharing
// it across objects.
func DefaultMaterial(c Category) *shelfgen.Material {
	switch c {
	case CategoryBracket:
		return &shelfgen.Material{
			Name:      "Metal",
			BaseColor: [4]float64{0.7, 0.7, 0.7, 1},
			Roughness: 0.1,
			Metallic:  1,
		}
	case CategoryBacking:
		return &shelfgen.Material{
			Name:      "Laminate",
			BaseColor: [4]float64{0.7, 0.65, 0.55, 1},
			Roughness: 0.8,
		}
	case CategoryCrown:
		return &shelfgen.Material{
			Name:      "Trim",
			BaseColor: [4]float64{0.4, 0.4, 0.4, 1},
			Roughness: 0.6,
			Metallic:  0.1,
		}
	default:
		return &shelfgen.Material{
			Name:      "Wood",
			BaseColor: [4]float64{0.6, 0.4, 0.2, 1},
			Roughness: 0.3,
		}
	}
}
