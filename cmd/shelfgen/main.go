// Command shelfgen generates a retail shelf assembly and exports it to
// interchange mesh formats.
//
//	shelfgen --width 2.0 --height 0.3 --depth 0.4 --pegboard \
//	    --export-format obj,gltf --export-path out/
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shelfgen",
	})
	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	g := newGenerateOptions()
	cmd := &cobra.Command{
		Use:           "shelfgen",
		Short:         "Procedurally generate a retail shelf assembly",
		Long:          "shelfgen builds a parameterized retail shelf (base, support brackets,\nbacking panel, crown molding) and exports it to OBJ, PLY, STL or glTF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			return g.run(cmd, logger)
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&g.width, "width", 2.0, "shelf width in meters")
	fl.Float64Var(&g.height, "height", 0.3, "shelf height in meters")
	fl.Float64Var(&g.depth, "depth", 0.4, "shelf depth in meters")
	fl.Float64Var(&g.thickness, "thickness", 0.05, "shelf wall thickness in meters")
	fl.BoolVar(&g.hollow, "hollow", false, "build the shelf as an open-top tray")
	fl.Float64Var(&g.backingHeight, "backing-height", 1.5, "backing panel height in meters")
	fl.Float64Var(&g.backingThick, "backing-thickness", 0.02, "backing panel thickness in meters")
	fl.IntVar(&g.brackets, "brackets", 4, "number of support brackets")
	fl.BoolVar(&g.pegboard, "pegboard", false, "carve pegboard holes into the backing")
	fl.StringVar(&g.crownStyle, "crown-style", "cylinder", "crown style: cylinder or ovoid")
	fl.StringSliceVar(&g.formats, "export-format", []string{"obj"}, "export formats: obj, ply, stl, gltf")
	fl.StringVar(&g.exportPath, "export-path", "output", "export directory")
	fl.BoolVar(&g.noMaterials, "no-materials", false, "skip material assignment")
	fl.BoolVar(&g.preview, "preview", false, "also render a PNG preview")
	fl.StringVar(&g.configPath, "config", "", "TOML preset file, explicit flags still win")
	fl.BoolVarP(&g.verbose, "verbose", "v", false, "debug logging")
	return cmd
}
