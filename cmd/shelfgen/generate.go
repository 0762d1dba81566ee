package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shopfab/shelfgen"
	"github.com/shopfab/shelfgen/parts"
	"github.com/shopfab/shelfgen/preset"
	"github.com/shopfab/shelfgen/render"
)

// outputDirEnv overrides the default export directory, preset values and
// explicit --export-path still win.
const outputDirEnv = "SHELFGEN_OUTPUT_DIR"

type generateOptions struct {
	width, height, depth float64
	thickness            float64
	hollow               bool
	backingHeight        float64
	backingThick         float64
	brackets             int
	pegboard             bool
	crownStyle           string
	formats              []string
	exportPath           string
	noMaterials          bool
	preview              bool
	configPath           string
	verbose              bool
}

func newGenerateOptions() *generateOptions {
	return &generateOptions{}
}

// applyPreset folds a loaded preset under the flag values: only flags the
// user did not set on the command line are replaced.
func (g *generateOptions) applyPreset(cmd *cobra.Command, p preset.Preset) {
	set := cmd.Flags().Changed
	if !set("width") {
		g.width = p.Width
	}
	if !set("height") {
		g.height = p.Height
	}
	if !set("depth") {
		g.depth = p.Depth
	}
	if !set("thickness") {
		g.thickness = p.Thickness
	}
	if !set("hollow") {
		g.hollow = p.Hollow
	}
	if !set("backing-height") {
		g.backingHeight = p.BackingHeight
	}
	if !set("backing-thickness") {
		g.backingThick = p.BackingThick
	}
	if !set("brackets") {
		g.brackets = p.Brackets
	}
	if !set("pegboard") {
		g.pegboard = p.Pegboard
	}
	if !set("crown-style") {
		g.crownStyle = p.CrownStyle
	}
	if !set("export-format") && len(p.Formats) > 0 {
		g.formats = p.Formats
	}
	if !set("export-path") && p.OutputDir != "" {
		g.exportPath = p.OutputDir
	}
	if !set("no-materials") {
		g.noMaterials = p.NoMaterials
	}
}

// assemblyParams maps the resolved options onto the builder parameters.
func (g *generateOptions) assemblyParams(label string) (parts.AssemblyParams, error) {
	p := parts.DefaultAssemblyParams()
	if label != "" {
		p.Label = label
	}
	p.Shelf = parts.ShelfParams{
		Width:     g.width,
		Height:    g.height,
		Depth:     g.depth,
		Thickness: g.thickness,
		Hollow:    g.hollow,
	}
	p.Backing = parts.BackingParams{
		Width:     g.width,
		Height:    g.backingHeight,
		Thickness: g.backingThick,
		Pegboard:  g.pegboard,
	}
	p.Crown.Width = g.width
	switch strings.ToLower(g.crownStyle) {
	case "", "cylinder":
		p.Crown.Style = parts.CrownCylinder
	case "ovoid":
		p.Crown.Style = parts.CrownOvoid
		p.Crown.Height = 0.15
		p.Crown.Depth = 0.1
	default:
		return p, fmt.Errorf("unknown crown style %q", g.crownStyle)
	}
	p.BracketCount = g.brackets
	p.WithMaterials = !g.noMaterials
	return p, nil
}

func (g *generateOptions) run(cmd *cobra.Command, logger *log.Logger) error {
	label := ""
	var matOverrides map[string]preset.Material
	if g.configPath != "" {
		ps, err := preset.Load(g.configPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded preset", "path", g.configPath)
		g.applyPreset(cmd, ps)
		label = ps.Label
		matOverrides = ps.Materials
	}
	if !cmd.Flags().Changed("export-path") {
		if dir := os.Getenv(outputDirEnv); dir != "" {
			g.exportPath = dir
		}
	}
	if g.brackets < 0 {
		return errors.New("bracket count must not be negative")
	}
	formats := make([]render.Format, 0, len(g.formats))
	for _, s := range g.formats {
		f, err := render.ParseFormat(s)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	params, err := g.assemblyParams(label)
	if err != nil {
		return err
	}
	logger.Info("generating shelf",
		"width", g.width, "height", g.height, "depth", g.depth,
		"brackets", g.brackets, "pegboard", g.pegboard)

	sc := shelfgen.NewScene()
	assembly, err := parts.BuildAssembly(sc, params)
	if err != nil {
		return err
	}
	overrideMaterials(assembly, matOverrides)
	for _, o := range assembly.Objects() {
		logger.Debug("built object", "name", o.Name,
			"verts", len(o.Mesh.Verts), "faces", len(o.Mesh.Faces))
	}
	bounds := assembly.Bounds()
	logger.Debug("assembly bounds", "size", bounds.Size(), "center", bounds.Center())

	if err := render.Export(g.exportPath, assembly, formats, logger); err != nil {
		return err
	}
	info := render.NewInfo(render.Params{
		Width:         g.width,
		Height:        g.height,
		Depth:         g.depth,
		BackingHeight: g.backingHeight,
		Brackets:      g.brackets,
		Pegboard:      g.pegboard,
		ExportFormats: g.formats,
		NoMaterials:   g.noMaterials,
	})
	if err := render.WriteInfo(g.exportPath, info); err != nil {
		return err
	}
	logger.Info("wrote sidecar", "path", filepath.Join(g.exportPath, render.InfoName))

	if g.preview {
		path := filepath.Join(g.exportPath, "preview.png")
		if err := render.CreatePNG(path, assembly, render.PreviewConfig{}); err != nil {
			return err
		}
		logger.Info("wrote preview", "path", path)
	}
	return nil
}

// overrideMaterials applies preset material overrides by component category.
func overrideMaterials(a *shelfgen.Assembly, overrides map[string]preset.Material) {
	if len(overrides) == 0 {
		return
	}
	for _, o := range a.Objects() {
		if o.Material == nil {
			continue
		}
		key := categoryOf(o.Name)
		ov, ok := overrides[key]
		if !ok {
			continue
		}
		if ov.Color != nil {
			o.Material.BaseColor = *ov.Color
		}
		if ov.Roughness != nil {
			o.Material.Roughness = *ov.Roughness
		}
		if ov.Metallic != nil {
			o.Material.Metallic = *ov.Metallic
		}
	}
}

func categoryOf(objName string) string {
	switch {
	case strings.HasPrefix(objName, "SupportBracket"):
		return "bracket"
	case objName == "BackingPanel":
		return "backing"
	case objName == "CrownMolding":
		return "crown"
	default:
		return "shelf"
	}
}
