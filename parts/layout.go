package parts

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/shopfab/shelfgen"
)

// Fraction of the shelf width over which multiple brackets are spread.
const bracketSpan = 0.8

// Layout holds the closed-form placement constants of the assembly.
type Layout struct {
	// BackingClearance is the gap between the shelf back face and the
	// backing panel center plane.
	BackingClearance float64
	// CrownGap is the gap between the backing top edge and the crown center.
	CrownGap float64
}

// DefaultLayout returns the standard assembly spacing.
func DefaultLayout() Layout {
	return Layout{
		BackingClearance: 0.01,
		CrownGap:         0.1,
	}
}

// PlaceBackingBehindShelf moves the backing directly behind the shelf's back
// face, offset by the clearance gap. X and Z follow the shelf center.
func (l Layout) PlaceBackingBehindShelf(backing, shelf *shelfgen.Object) {
	d := shelf.Dimensions()
	backing.Translation = r3.Vec{
		X: shelf.Translation.X,
		Y: shelf.Translation.Y - d.Y/2 - l.BackingClearance,
		Z: shelf.Translation.Z,
	}
}

// PlaceBracketsUnderShelf spaces brackets along the shelf width at the shelf
// underside, backs at the shelf back plane. A single bracket is centered;
// several are spaced evenly across 80% of the shelf width, symmetric about
// the shelf center.
func (l Layout) PlaceBracketsUnderShelf(brackets []*shelfgen.Object, shelf *shelfgen.Object) {
	n := len(brackets)
	if n == 0 {
		return
	}
	d := shelf.Dimensions()
	for i, b := range brackets {
		x := shelf.Translation.X
		if n > 1 {
			f := float64(i) / float64(n-1)
			x += (f - 0.5) * bracketSpan * d.X
		}
		bd := b.Dimensions()
		b.Translation = r3.Vec{
			X: x,
			Y: shelf.Translation.Y - d.Y/2 + bd.Y/2,
			Z: shelf.Translation.Z - d.Z/2 - bd.Z,
		}
	}
}

// PlaceCrownAboveBacking centers the crown horizontally on the backing and
// offsets it upward from the backing top edge by the crown gap.
func (l Layout) PlaceCrownAboveBacking(crown, backing *shelfgen.Object) {
	d := backing.Dimensions()
	crown.Translation = r3.Vec{
		X: backing.Translation.X,
		Y: backing.Translation.Y,
		Z: backing.Translation.Z + d.Z/2 + l.CrownGap,
	}
}
