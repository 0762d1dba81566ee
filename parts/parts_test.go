package parts_test

import (
	"math"
	"testing"

	"github.com/shopfab/shelfgen"
	"github.com/shopfab/shelfgen/internal/d3"
	"github.com/shopfab/shelfgen/parts"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

func mustShelf(t *testing.T, p parts.ShelfParams) *shelfgen.Object {
	t.Helper()
	o, err := parts.Shelf("ShelfBase", p)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestShelfBounds(t *testing.T) {
	for _, p := range []parts.ShelfParams{
		{Width: 2.0, Height: 0.3, Depth: 0.4},
		{Width: 1.2, Height: 0.1, Depth: 0.6},
		{Width: 0.5, Height: 0.05, Depth: 0.25},
	} {
		o := mustShelf(t, p)
		want := d3.NewBox(r3.Vec{}, r3.Vec{X: p.Width, Y: p.Depth, Z: p.Height})
		if !o.WorldBounds().Equals(want, 0) {
			t.Errorf("shelf %+v bounds got %+v want %+v", p, o.WorldBounds(), want)
		}
	}
}

// The stock example: width 2, height 0.3, depth 0.4 spans exactly
// [-1,1]x[-0.2,0.2]x[-0.15,0.15] before placement.
func TestShelfStockExample(t *testing.T) {
	o := mustShelf(t, parts.ShelfParams{Width: 2.0, Height: 0.3, Depth: 0.4})
	b := o.WorldBounds()
	wantMin := r3.Vec{X: -1.0, Y: -0.2, Z: -0.15}
	wantMax := r3.Vec{X: 1.0, Y: 0.2, Z: 0.15}
	if b.Min != wantMin || b.Max != wantMax {
		t.Fatalf("bounds got %+v want [%+v %+v]", b, wantMin, wantMax)
	}
}

func TestHollowShelf(t *testing.T) {
	p := parts.ShelfParams{Width: 2, Height: 0.3, Depth: 0.4, Thickness: 0.05, Hollow: true}
	o := mustShelf(t, p)
	if err := o.Mesh.Validate(); err != nil {
		t.Fatal(err)
	}
	want := d3.NewBox(r3.Vec{}, r3.Vec{X: 2, Y: 0.4, Z: 0.3})
	if !o.WorldBounds().Equals(want, tol) {
		t.Errorf("hollow shelf bounds got %+v want %+v", o.WorldBounds(), want)
	}
	// five slabs of 8 vertices each
	if len(o.Mesh.Verts) != 40 {
		t.Errorf("hollow shelf verts got %d want 40", len(o.Mesh.Verts))
	}
}

func TestShelfValidation(t *testing.T) {
	if _, err := parts.Shelf("s", parts.ShelfParams{Width: 0, Height: 1, Depth: 1}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := parts.Shelf("s", parts.ShelfParams{Width: 1, Height: 1, Depth: 1, Hollow: true}); err == nil {
		t.Error("expected error for hollow shelf without thickness")
	}
	if _, err := parts.Shelf("s", parts.ShelfParams{Width: 1, Height: 1, Depth: 1, Hollow: true, Thickness: 0.6}); err == nil {
		t.Error("expected error for oversized wall thickness")
	}
}

func TestBracketMesh(t *testing.T) {
	o, err := parts.Bracket("b", parts.BracketParams{Length: 0.6, Height: 0.3, Thickness: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if err := o.Mesh.Validate(); err != nil {
		t.Fatal(err)
	}
	b := o.WorldBounds()
	if b.Min.Z != 0 || b.Max.Z != 0.3 {
		t.Errorf("bracket base not on z=0: %+v", b)
	}
	if _, err := parts.Bracket("b", parts.BracketParams{Length: -1, Height: 1, Thickness: 1}); err == nil {
		t.Error("expected error for negative length")
	}
}

func placeBrackets(t *testing.T, n int, shelf *shelfgen.Object) []*shelfgen.Object {
	t.Helper()
	brackets := make([]*shelfgen.Object, n)
	for i := range brackets {
		var err error
		brackets[i], err = parts.Bracket("b", parts.BracketParams{Length: 0.4, Height: 0.2, Thickness: 0.1})
		if err != nil {
			t.Fatal(err)
		}
	}
	parts.DefaultLayout().PlaceBracketsUnderShelf(brackets, shelf)
	return brackets
}

func TestBracketSpacing(t *testing.T) {
	const width = 2.0
	shelf := mustShelf(t, parts.ShelfParams{Width: width, Height: 0.3, Depth: 0.4})
	for _, n := range []int{2, 3, 4, 5} {
		brackets := placeBrackets(t, n, shelf)
		xs := make([]float64, n)
		for i, b := range brackets {
			xs[i] = b.Translation.X
		}
		// symmetric about the shelf center
		for i := range xs {
			if got := xs[i] + xs[n-1-i]; math.Abs(got) > tol {
				t.Errorf("n=%d: positions not symmetric: %v", n, xs)
			}
		}
		// spanning exactly 80% of the shelf width
		if span := xs[n-1] - xs[0]; math.Abs(span-0.8*width) > tol {
			t.Errorf("n=%d: span got %v want %v", n, span, 0.8*width)
		}
		// evenly spaced
		step := xs[1] - xs[0]
		for i := 2; i < n; i++ {
			if math.Abs((xs[i]-xs[i-1])-step) > tol {
				t.Errorf("n=%d: uneven spacing: %v", n, xs)
			}
		}
	}
}

func TestSingleBracketCentered(t *testing.T) {
	shelf := mustShelf(t, parts.ShelfParams{Width: 2, Height: 0.3, Depth: 0.4})
	shelf.Translation = r3.Vec{X: 0.7, Y: -0.2, Z: 1.1}
	b := placeBrackets(t, 1, shelf)[0]
	if b.Translation.X != shelf.Translation.X {
		t.Errorf("single bracket not centered: %v", b.Translation.X)
	}
	// top of the bracket touches the shelf underside
	if got, want := b.WorldBounds().Max.Z, shelf.WorldBounds().Min.Z; math.Abs(got-want) > tol {
		t.Errorf("bracket top %v, shelf underside %v", got, want)
	}
}

func TestBackingPosition(t *testing.T) {
	for _, tc := range []struct {
		depth, clearance float64
	}{
		{0.4, 0.01},
		{0.6, 0.02},
		{0.25, 0.005},
	} {
		shelf := mustShelf(t, parts.ShelfParams{Width: 2, Height: 0.3, Depth: tc.depth})
		shelf.Translation = r3.Vec{X: 0.3, Y: 0.9, Z: -0.4}
		backing, err := parts.Backing("BackingPanel", parts.BackingParams{Width: 2.2, Height: 1.5, Thickness: 0.02})
		if err != nil {
			t.Fatal(err)
		}
		l := parts.Layout{BackingClearance: tc.clearance, CrownGap: 0.1}
		l.PlaceBackingBehindShelf(backing, shelf)
		want := shelf.Translation.Y - tc.depth/2 - tc.clearance
		if got := backing.Translation.Y; math.Abs(got-want) > tol {
			t.Errorf("depth=%v clearance=%v: backing y got %v want %v", tc.depth, tc.clearance, got, want)
		}
		if backing.Translation.X != shelf.Translation.X || backing.Translation.Z != shelf.Translation.Z {
			t.Errorf("backing not aligned with shelf: %+v", backing.Translation)
		}
	}
}

func TestCrownPosition(t *testing.T) {
	const backingHeight = 1.5
	backing, err := parts.Backing("BackingPanel", parts.BackingParams{Width: 2, Height: backingHeight, Thickness: 0.02})
	if err != nil {
		t.Fatal(err)
	}
	backing.Translation = r3.Vec{X: 0.1, Y: -0.21, Z: 0.75}
	crown, err := parts.Crown("CrownMolding", parts.CrownParams{Width: 2, Style: parts.CrownCylinder, Radius: 0.08, Segments: 16})
	if err != nil {
		t.Fatal(err)
	}
	l := parts.Layout{BackingClearance: 0.01, CrownGap: 0.1}
	l.PlaceCrownAboveBacking(crown, backing)
	want := backing.Translation.Z + backingHeight/2 + l.CrownGap
	if got := crown.Translation.Z; math.Abs(got-want) > tol {
		t.Errorf("crown z got %v want %v", got, want)
	}
	if crown.Translation.X != backing.Translation.X || crown.Translation.Y != backing.Translation.Y {
		t.Errorf("crown not centered on backing: %+v", crown.Translation)
	}
}

func TestCrownOvoid(t *testing.T) {
	crown, err := parts.Crown("c", parts.CrownParams{Width: 2.2, Style: parts.CrownOvoid, Height: 0.15, Depth: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	want := d3.NewBox(r3.Vec{}, r3.Vec{X: 2.2, Y: 0.1, Z: 0.15})
	if !crown.WorldBounds().Equals(want, tol) {
		t.Errorf("ovoid crown bounds got %+v want %+v", crown.WorldBounds(), want)
	}
}

func TestBackingPlain(t *testing.T) {
	o, err := parts.Backing("BackingPanel", parts.BackingParams{Width: 2, Height: 1.5, Thickness: 0.02})
	if err != nil {
		t.Fatal(err)
	}
	// no pegboard flag: a plain box, no holes carved
	if len(o.Mesh.Verts) != 8 {
		t.Errorf("plain backing verts got %d want 8", len(o.Mesh.Verts))
	}
	want := d3.NewBox(r3.Vec{}, r3.Vec{X: 2, Y: 0.02, Z: 1.5})
	if !o.WorldBounds().Equals(want, 0) {
		t.Errorf("backing bounds got %+v want %+v", o.WorldBounds(), want)
	}
}

func TestPegboardBacking(t *testing.T) {
	p := parts.BackingParams{
		Width: 0.5, Height: 0.5, Thickness: 0.02,
		Pegboard:     true,
		HolePitch:    0.0625,
		HoleDiameter: 0.02,
		HoleSegments: 16,
	}
	nx, nz := p.GridDims()
	if nx != 7 || nz != 7 {
		t.Fatalf("grid dims got %dx%d want 7x7", nx, nz)
	}
	o, err := parts.Backing("BackingPanel", p)
	if err != nil {
		t.Fatal(err)
	}
	m := o.Mesh
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	want := d3.NewBox(r3.Vec{}, r3.Vec{X: p.Width, Y: p.Thickness, Z: p.Height})
	if !m.Bounds().Equals(want, tol) {
		t.Errorf("pegboard bounds got %+v want %+v", m.Bounds(), want)
	}
	// faces: per side 4 margin strips + one ring quad per hole segment,
	// plus hole walls and 4 outer sides.
	holes := nx * nz
	wantFaces := 2*(4+holes*p.HoleSegments) + holes*p.HoleSegments + 4
	if len(m.Faces) != wantFaces {
		t.Errorf("pegboard faces got %d want %d", len(m.Faces), wantFaces)
	}
	// every vertex stays inside the panel slab
	for _, v := range m.Verts {
		if !want.Contains(v) {
			t.Fatalf("vertex %+v outside panel bounds %+v", v, want)
		}
	}
	// no face vertex may fall inside a hole
	r := p.HoleDiameter / 2
	for _, v := range m.Verts {
		if math.Abs(v.Y) != p.Thickness/2 {
			continue
		}
		for i := 0; i < nx; i++ {
			for j := 0; j < nz; j++ {
				cx := (float64(i) - float64(nx-1)/2) * p.HolePitch
				cz := (float64(j) - float64(nz-1)/2) * p.HolePitch
				d := math.Hypot(v.X-cx, v.Z-cz)
				if d < r-1e-9 {
					t.Fatalf("vertex %+v inside hole at (%v,%v)", v, cx, cz)
				}
			}
		}
	}
}

func TestPegboardValidation(t *testing.T) {
	base := parts.BackingParams{Width: 0.5, Height: 0.5, Thickness: 0.02, Pegboard: true}

	small := base
	small.Width, small.Height = 0.04, 0.04
	if _, err := parts.Backing("b", small); err == nil {
		t.Error("expected error for panel smaller than the grid pitch")
	}
	wide := base
	wide.HoleDiameter = 0.06
	if _, err := parts.Backing("b", wide); err == nil {
		t.Error("expected error for hole diameter >= pitch")
	}
	odd := base
	odd.HoleSegments = 10
	if _, err := parts.Backing("b", odd); err == nil {
		t.Error("expected error for segment count not multiple of 4")
	}
}

func TestDerivedBracketScalesWithDepth(t *testing.T) {
	for _, depth := range []float64{0.2, 0.4, 0.6} {
		sc := shelfgen.NewScene()
		params := parts.DefaultAssemblyParams()
		params.Shelf.Depth = depth
		a, err := parts.BuildAssembly(sc, params)
		if err != nil {
			t.Fatal(err)
		}
		bracket := a.Objects()[1]
		if got, want := bracket.Dimensions().Y, 0.25*depth; math.Abs(got-want) > tol {
			t.Errorf("depth=%v: bracket thickness got %v want %v", depth, got, want)
		}
	}
}

func TestBuildAssembly(t *testing.T) {
	sc := shelfgen.NewScene()
	params := parts.DefaultAssemblyParams()
	a, err := parts.BuildAssembly(sc, params)
	if err != nil {
		t.Fatal(err)
	}
	objs := a.Objects()
	if len(objs) != 3+params.BracketCount {
		t.Fatalf("assembly objects got %d want %d", len(objs), 3+params.BracketCount)
	}
	if len(sc.Objects()) != len(objs) {
		t.Errorf("scene holds %d objects, assembly %d", len(sc.Objects()), len(objs))
	}
	if objs[0].Material == nil || objs[0].Material.Name != "Wood" {
		t.Errorf("shelf material got %+v", objs[0].Material)
	}
	// all brackets share one material by reference
	var bracketMat *shelfgen.Material
	for _, o := range objs[1 : 1+params.BracketCount] {
		if bracketMat == nil {
			bracketMat = o.Material
		} else if o.Material != bracketMat {
			t.Error("brackets do not share a material")
		}
	}
	for _, o := range objs {
		if err := o.Mesh.Validate(); err != nil {
			t.Errorf("%s: %v", o.Name, err)
		}
	}
}

func TestBuildAssemblyNoMaterials(t *testing.T) {
	sc := shelfgen.NewScene()
	params := parts.DefaultAssemblyParams()
	params.WithMaterials = false
	a, err := parts.BuildAssembly(sc, params)
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range a.Objects() {
		if o.Material != nil {
			t.Errorf("%s has a material with materials disabled", o.Name)
		}
	}
}
