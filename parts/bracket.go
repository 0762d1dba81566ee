package parts

import (
	"errors"

	"github.com/shopfab/shelfgen"
	"github.com/shopfab/shelfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// BracketParams defines a triangular support bracket. The base triangle lies
// on the z=0 plane with the vertical edge at the back; the prism is extruded
// along y by Thickness.
type BracketParams struct {
	Length    float64 // horizontal leg, along x
	Height    float64 // vertical leg, along z
	Thickness float64 // extrusion, along y
}

// Bracket returns one triangular prism support bracket.
func Bracket(name string, p BracketParams) (*shelfgen.Object, error) {
	if d3.LTEZero(r3.Vec{X: p.Length, Y: p.Thickness, Z: p.Height}) {
		return nil, errors.New("bracket dimensions must be positive")
	}
	return shelfgen.NewObject(name, shelfgen.TriangularPrism(p.Length, p.Height, p.Thickness)), nil
}

// deriveBracket sizes a bracket to fill the support space under a shelf,
// twice as long as it is tall and a quarter of the shelf depth thick.
func deriveBracket(shelf ShelfParams) BracketParams {
	h := shelf.Depth * 0.8
	if max := shelf.Height * 3; h > max {
		h = max
	}
	return BracketParams{
		Length:    2 * h,
		Height:    h,
		Thickness: 0.25 * shelf.Depth,
	}
}
