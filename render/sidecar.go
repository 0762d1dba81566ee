package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// InfoName is the file name of the JSON generation sidecar.
const InfoName = "shelf_info.json"

// Params echoes the generation inputs into the sidecar, verbatim.
type Params struct {
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Depth         float64  `json:"depth"`
	BackingHeight float64  `json:"backing_height"`
	Brackets      int      `json:"brackets"`
	Pegboard      bool     `json:"pegboard"`
	ExportFormats []string `json:"export_formats"`
	NoMaterials   bool     `json:"no_materials"`
}

// Info is the generation metadata written next to the exported meshes.
type Info struct {
	Description string    `json:"description"`
	Generator   string    `json:"generator"`
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Parameters  Params    `json:"parameters"`
	Components  []string  `json:"components"`
}

// NewInfo returns a sidecar describing one generation run with a fresh id.
func NewInfo(p Params) Info {
	return Info{
		Description: "Procedurally generated retail shelf assembly",
		Generator:   "shelfgen",
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Parameters:  p,
		Components: []string{
			"ShelfBase",
			"SupportBrackets",
			"BackingPanel",
			"CrownMolding",
		},
	}
}

// WriteInfo writes the sidecar into dir as InfoName.
func WriteInfo(dir string, info Info) error {
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, InfoName), append(b, '\n'), 0o644)
}
