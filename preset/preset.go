// Package preset loads shelf generation presets from TOML files, so a fleet
// of shelf variants can be described without command lines.
package preset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Preset mirrors the CLI generation knobs. Zero values mean "use the flag or
// built-in default".
type Preset struct {
	Label         string   `toml:"label"`
	Width         float64  `toml:"width"`
	Height        float64  `toml:"height"`
	Depth         float64  `toml:"depth"`
	Thickness     float64  `toml:"thickness"`
	Hollow        bool     `toml:"hollow"`
	BackingHeight float64  `toml:"backing_height"`
	BackingThick  float64  `toml:"backing_thickness"`
	Brackets      int      `toml:"brackets"`
	Pegboard      bool     `toml:"pegboard"`
	CrownStyle    string   `toml:"crown_style"` // "cylinder" or "ovoid"
	Formats       []string `toml:"formats"`
	OutputDir     string   `toml:"output_dir"`
	NoMaterials   bool     `toml:"no_materials"`

	Materials map[string]Material `toml:"materials"`
}

// Material overrides the default shading values of one component category,
// keyed by "shelf", "bracket", "backing" or "crown". Nil fields keep the
// category default.
type Material struct {
	Color     *[4]float64 `toml:"color"`
	Roughness *float64    `toml:"roughness"`
	Metallic  *float64    `toml:"metallic"`
}

// Default returns the stock shelf preset matching the CLI defaults.
func Default() Preset {
	return Preset{
		Label:         "retail_shelf",
		Width:         2.0,
		Height:        0.3,
		Depth:         0.4,
		Thickness:     0.05,
		BackingHeight: 1.5,
		BackingThick:  0.02,
		Brackets:      4,
		CrownStyle:    "cylinder",
		Formats:       []string{"obj"},
		OutputDir:     "output",
	}
}

// Load reads a TOML preset file. Fields absent from the file keep the
// Default values; unknown keys are rejected.
func Load(path string) (Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	p := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return p, nil
}
