package main

import (
	"testing"

	"github.com/shopfab/shelfgen"
	"github.com/shopfab/shelfgen/parts"
	"github.com/shopfab/shelfgen/preset"
)

func buildTestAssembly(t *testing.T) *shelfgen.Assembly {
	t.Helper()
	sc := shelfgen.NewScene()
	a, err := parts.BuildAssembly(sc, parts.DefaultAssemblyParams())
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestOverrideMaterialsPartial(t *testing.T) {
	a := buildTestAssembly(t)
	shelf := a.Objects()[0]
	wantColor := shelf.Material.BaseColor
	rough := 0.9
	overrideMaterials(a, map[string]preset.Material{
		"shelf": {Roughness: &rough},
	})
	if shelf.Material.Roughness != rough {
		t.Errorf("roughness got %v want %v", shelf.Material.Roughness, rough)
	}
	// fields absent from the override keep the category default
	if shelf.Material.BaseColor != wantColor {
		t.Errorf("base color got %v want %v", shelf.Material.BaseColor, wantColor)
	}
}

func TestOverrideMaterialsByCategory(t *testing.T) {
	a := buildTestAssembly(t)
	color := [4]float64{0.1, 0.2, 0.3, 1}
	metallic := 0.8
	overrideMaterials(a, map[string]preset.Material{
		"bracket": {Color: &color, Metallic: &metallic},
	})
	for _, o := range a.Objects() {
		switch categoryOf(o.Name) {
		case "bracket":
			if o.Material.BaseColor != color || o.Material.Metallic != metallic {
				t.Errorf("%s: override not applied: %+v", o.Name, o.Material)
			}
		default:
			if o.Material.BaseColor == color {
				t.Errorf("%s: override leaked across categories", o.Name)
			}
		}
	}
}
