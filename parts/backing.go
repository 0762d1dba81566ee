package parts

import (
	"errors"
	"math"

	"github.com/shopfab/shelfgen"
	"github.com/shopfab/shelfgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default pegboard hole grid values, matching common 5 cm pitch pegboard.
const (
	DefaultHolePitch    = 0.05
	DefaultHoleDiameter = 0.01
	DefaultHoleSegments = 16
)

// BackingParams defines the backing panel behind the shelf. The panel spans
// Width along x, Thickness along y and Height along z, centered at origin.
type BackingParams struct {
	Width     float64
	Height    float64
	Thickness float64
	// Pegboard carves a regular grid of cylindrical through-holes.
	Pegboard     bool
	HolePitch    float64 // hole center spacing, 0 means DefaultHolePitch
	HoleDiameter float64 // 0 means DefaultHoleDiameter
	HoleSegments int     // sides per hole, multiple of 4, 0 means DefaultHoleSegments
}

func (p *BackingParams) applyDefaults() {
	if p.HolePitch == 0 {
		p.HolePitch = DefaultHolePitch
	}
	if p.HoleDiameter == 0 {
		p.HoleDiameter = DefaultHoleDiameter
	}
	if p.HoleSegments == 0 {
		p.HoleSegments = DefaultHoleSegments
	}
}

// GridDims returns the number of pegboard hole columns and rows that fit the
// panel while keeping at least half a pitch of margin to every edge.
func (p BackingParams) GridDims() (nx, nz int) {
	p.applyDefaults()
	nx = int(math.Floor(p.Width/p.HolePitch)) - 1
	nz = int(math.Floor(p.Height/p.HolePitch)) - 1
	if nx < 0 {
		nx = 0
	}
	if nz < 0 {
		nz = 0
	}
	return nx, nz
}

// Backing returns the backing panel object. Without the pegboard flag the
// mesh is a plain box; with it, the hole grid is tessellated directly so no
// boolean mesh operation is needed.
func Backing(name string, p BackingParams) (*shelfgen.Object, error) {
	if d3.LTEZero(r3.Vec{X: p.Width, Y: p.Thickness, Z: p.Height}) {
		return nil, errors.New("backing dimensions must be positive")
	}
	if !p.Pegboard {
		return shelfgen.NewObject(name, shelfgen.Box(r3.Vec{X: p.Width, Y: p.Thickness, Z: p.Height})), nil
	}
	p.applyDefaults()
	if p.HoleSegments < 4 || p.HoleSegments%4 != 0 {
		return nil, errors.New("pegboard hole segments must be a positive multiple of 4")
	}
	if p.HoleDiameter >= p.HolePitch {
		return nil, errors.New("pegboard hole diameter must be smaller than the pitch")
	}
	nx, nz := p.GridDims()
	if nx < 1 || nz < 1 {
		return nil, errors.New("backing panel too small for a pegboard hole grid")
	}
	m := pegboardPanel(p, nx, nz)
	return shelfgen.NewObject(name, m), nil
}

// pegboardPanel tessellates the perforated panel. Each hole sits centered in
// a pitch-sized square cell; the front and back faces are built from a frame
// of margin strips plus one quad ring per cell connecting the cell perimeter
// to the hole circle. Hole walls connect the two circles.
func pegboardPanel(p BackingParams, nx, nz int) *shelfgen.Mesh {
	var (
		w, h, t = p.Width, p.Height, p.Thickness
		pitch   = p.HolePitch
		r       = p.HoleDiameter / 2
		segs    = p.HoleSegments
		gx, gz  = float64(nx) * pitch / 2, float64(nz) * pitch / 2
		y       = t / 2
	)
	m := &shelfgen.Mesh{}
	// addPoly appends a polygon reordered so its normal points along want.
	addPoly := func(want r3.Vec, pts ...r3.Vec) {
		n := r3.Cross(r3.Sub(pts[1], pts[0]), r3.Sub(pts[2], pts[0]))
		if r3.Dot(n, want) < 0 {
			for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
				pts[i], pts[j] = pts[j], pts[i]
			}
		}
		base := len(m.Verts)
		m.Verts = append(m.Verts, pts...)
		face := make([]int, len(pts))
		for i := range face {
			face[i] = base + i
		}
		m.Faces = append(m.Faces, face)
	}
	rect := func(y, x0, z0, x1, z1 float64, want r3.Vec) {
		addPoly(want,
			r3.Vec{X: x0, Y: y, Z: z0},
			r3.Vec{X: x1, Y: y, Z: z0},
			r3.Vec{X: x1, Y: y, Z: z1},
			r3.Vec{X: x0, Y: y, Z: z1},
		)
	}
	// perimPoint projects a ray at angle theta from the cell center onto the
	// cell's square boundary of half extent hp.
	perimPoint := func(cx, cz, theta, hp float64) (float64, float64) {
		c, s := math.Cos(theta), math.Sin(theta)
		k := hp / math.Max(math.Abs(c), math.Abs(s))
		return cx + k*c, cz + k*s
	}

	for _, side := range [2]struct {
		y    float64
		want r3.Vec
	}{
		{y, r3.Vec{Y: 1}},
		{-y, r3.Vec{Y: -1}},
	} {
		// margin frame around the hole grid.
		rect(side.y, -w/2, -h/2, w/2, -gz, side.want) // bottom strip
		rect(side.y, -w/2, gz, w/2, h/2, side.want)   // top strip
		rect(side.y, -w/2, -gz, -gx, gz, side.want)   // left strip
		rect(side.y, gx, -gz, w/2, gz, side.want)     // right strip
		// one ring of quads per cell.
		for i := 0; i < nx; i++ {
			for j := 0; j < nz; j++ {
				cx := -gx + (float64(i)+0.5)*pitch
				cz := -gz + (float64(j)+0.5)*pitch
				for k := 0; k < segs; k++ {
					a0 := 2 * math.Pi * float64(k) / float64(segs)
					a1 := 2 * math.Pi * float64(k+1) / float64(segs)
					px0, pz0 := perimPoint(cx, cz, a0, pitch/2)
					px1, pz1 := perimPoint(cx, cz, a1, pitch/2)
					addPoly(side.want,
						r3.Vec{X: px0, Y: side.y, Z: pz0},
						r3.Vec{X: px1, Y: side.y, Z: pz1},
						r3.Vec{X: cx + r*math.Cos(a1), Y: side.y, Z: cz + r*math.Sin(a1)},
						r3.Vec{X: cx + r*math.Cos(a0), Y: side.y, Z: cz + r*math.Sin(a0)},
					)
				}
			}
		}
	}
	// hole walls, facing the hole axis.
	for i := 0; i < nx; i++ {
		for j := 0; j < nz; j++ {
			cx := -gx + (float64(i)+0.5)*pitch
			cz := -gz + (float64(j)+0.5)*pitch
			for k := 0; k < segs; k++ {
				a0 := 2 * math.Pi * float64(k) / float64(segs)
				a1 := 2 * math.Pi * float64(k+1) / float64(segs)
				x0, z0 := cx+r*math.Cos(a0), cz+r*math.Sin(a0)
				x1, z1 := cx+r*math.Cos(a1), cz+r*math.Sin(a1)
				am := (a0 + a1) / 2
				inward := r3.Vec{X: -math.Cos(am), Z: -math.Sin(am)}
				addPoly(inward,
					r3.Vec{X: x0, Y: y, Z: z0},
					r3.Vec{X: x1, Y: y, Z: z1},
					r3.Vec{X: x1, Y: -y, Z: z1},
					r3.Vec{X: x0, Y: -y, Z: z0},
				)
			}
		}
	}
	// outer sides of the panel slab.
	addPoly(r3.Vec{Z: -1},
		r3.Vec{X: -w / 2, Y: -y, Z: -h / 2}, r3.Vec{X: w / 2, Y: -y, Z: -h / 2},
		r3.Vec{X: w / 2, Y: y, Z: -h / 2}, r3.Vec{X: -w / 2, Y: y, Z: -h / 2})
	addPoly(r3.Vec{Z: 1},
		r3.Vec{X: -w / 2, Y: -y, Z: h / 2}, r3.Vec{X: w / 2, Y: -y, Z: h / 2},
		r3.Vec{X: w / 2, Y: y, Z: h / 2}, r3.Vec{X: -w / 2, Y: y, Z: h / 2})
	addPoly(r3.Vec{X: -1},
		r3.Vec{X: -w / 2, Y: -y, Z: -h / 2}, r3.Vec{X: -w / 2, Y: y, Z: -h / 2},
		r3.Vec{X: -w / 2, Y: y, Z: h / 2}, r3.Vec{X: -w / 2, Y: -y, Z: h / 2})
	addPoly(r3.Vec{X: 1},
		r3.Vec{X: w / 2, Y: -y, Z: -h / 2}, r3.Vec{X: w / 2, Y: y, Z: -h / 2},
		r3.Vec{X: w / 2, Y: y, Z: h / 2}, r3.Vec{X: w / 2, Y: -y, Z: h / 2})
	return m
}
