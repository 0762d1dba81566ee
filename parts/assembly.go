package parts

import (
	"fmt"

	"github.com/shopfab/shelfgen"
)

// AssemblyParams bundles every generation knob of a shelf assembly.
type AssemblyParams struct {
	Label        string
	Shelf        ShelfParams
	Backing      BackingParams
	Crown        CrownParams
	BracketCount int
	// Bracket overrides the derived bracket size when non-zero.
	Bracket       BracketParams
	Layout        Layout
	WithMaterials bool
}

// DefaultAssemblyParams returns the stock retail shelf: a 2 m wide solid
// shelf with four brackets, a 1.5 m backing and a cylindrical crown.
func DefaultAssemblyParams() AssemblyParams {
	return AssemblyParams{
		Label: "retail_shelf",
		Shelf: ShelfParams{
			Width:     2.0,
			Height:    0.3,
			Depth:     0.4,
			Thickness: 0.05,
		},
		Backing: BackingParams{
			Width:     2.0,
			Height:    1.5,
			Thickness: 0.02,
		},
		Crown: CrownParams{
			Width:    2.0,
			Style:    CrownCylinder,
			Radius:   0.08,
			Segments: 16,
		},
		BracketCount:  4,
		Layout:        DefaultLayout(),
		WithMaterials: true,
	}
}

// BuildAssembly constructs the full shelf assembly in sc: build, position,
// material, in one linear pass. The returned assembly groups the shelf, the
// brackets, the backing panel and the crown molding.
func BuildAssembly(sc *shelfgen.Scene, p AssemblyParams) (*shelfgen.Assembly, error) {
	shelf, err := Shelf("ShelfBase", p.Shelf)
	if err != nil {
		return nil, fmt.Errorf("shelf: %w", err)
	}
	bp := p.Bracket
	if bp == (BracketParams{}) {
		bp = deriveBracket(p.Shelf)
	}
	brackets := make([]*shelfgen.Object, p.BracketCount)
	for i := range brackets {
		brackets[i], err = Bracket(fmt.Sprintf("SupportBracket_%d", i+1), bp)
		if err != nil {
			return nil, fmt.Errorf("bracket: %w", err)
		}
	}
	backing, err := Backing("BackingPanel", p.Backing)
	if err != nil {
		return nil, fmt.Errorf("backing: %w", err)
	}
	crown, err := Crown("CrownMolding", p.Crown)
	if err != nil {
		return nil, fmt.Errorf("crown: %w", err)
	}

	p.Layout.PlaceBackingBehindShelf(backing, shelf)
	p.Layout.PlaceBracketsUnderShelf(brackets, shelf)
	p.Layout.PlaceCrownAboveBacking(crown, backing)

	if p.WithMaterials {
		shelf.Material = DefaultMaterial(CategoryShelf)
		backing.Material = DefaultMaterial(CategoryBacking)
		crown.Material = DefaultMaterial(CategoryCrown)
		metal := DefaultMaterial(CategoryBracket)
		for _, b := range brackets {
			b.Material = metal
		}
	}

	objs := make([]*shelfgen.Object, 0, 3+len(brackets))
	objs = append(objs, shelf)
	objs = append(objs, brackets...)
	objs = append(objs, backing, crown)
	sc.Add(objs...)
	return sc.NewAssembly(p.Label, objs...), nil
}
