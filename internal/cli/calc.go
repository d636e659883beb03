package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/config"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/pipeline"
	"github.com/framewright/framewright/pkg/units"
)

// calcCommand creates the calc command for computing cut dimensions.
func (c *CLI) calcCommand() *cobra.Command {
	design := &designFlags{}
	var (
		file         string
		name         string
		shareCode    string
		unit         string
		blade        string
		denominators string
		formats      string
		output       string
		scale        float64
		noLabels     bool
		detailed     bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute cut dimensions for a frame design",
		Long: `Compute cut dimensions for a frame design.

The design comes from inline flags, a design file (JSON or TOML), a saved
workbench design, or a share code. The cut sheet covers frame rail lengths, matboard
and glass dimensions, required depth, and total stock, with every value
expressed as a tape-measure reading.

With no source flags at all, calc prints the cut sheet for the stock
design so the output shape is easy to explore.`,
		Example: `  framewright calc --height 8 --width 10
  framewright calc --height "8 1/2" --width 11 --mat "2 1/4"
  framewright calc --height 210mm --width 297mm --unit mm
  framewright calc --name "Hallway Print" --format svg --output hallway.svg
  framewright calc --file design.json --format text,json,svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			opts, err := calcOptions(design, cfg, calcInputs{
				file:         file,
				name:         name,
				share:        shareCode,
				unit:         unit,
				blade:        blade,
				denominators: denominators,
				formats:      formats,
				scale:        scale,
				noLabels:     noLabels,
				detailed:     detailed,
			})
			if err != nil {
				return err
			}

			return c.runCalc(cmd.Context(), opts, output)
		},
	}

	addDesignFlags(cmd, design)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the design from a JSON or TOML file")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Load a saved design from the workbench")
	cmd.Flags().StringVar(&shareCode, "share", "", "Decode the design from a share code or link")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", `Display unit: "in" or "mm"`)
	cmd.Flags().StringVar(&blade, "blade", "", "Saw blade kerf width")
	cmd.Flags().StringVar(&denominators, "denominators", "", `Tape graduations, e.g. "32,16,8"`)
	cmd.Flags().StringVar(&formats, "format", "", "Output formats: text, json, svg, dot, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path, or basename when several formats are requested")
	cmd.Flags().Float64Var(&scale, "scale", 0, "Face view scale in pixels per inch")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "Omit dimension callouts from the face view")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Add dimension labels to the assembly diagram")

	return cmd
}

// calcInputs carries the non-design calc flags into option assembly.
type calcInputs struct {
	file         string
	name         string
	share        string
	unit         string
	blade        string
	denominators string
	formats      string
	scale        float64
	noLabels     bool
	detailed     bool
}

// calcOptions layers flags over configuration to build pipeline options.
// Flags win over the config file, which wins over built-in defaults.
func calcOptions(design *designFlags, cfg config.Config, in calcInputs) (pipeline.Options, error) {
	opts := pipeline.Options{
		File:     in.file,
		Name:     in.name,
		Share:    in.share,
		Unit:     cfg.Unit,
		Formats:  parseFormats(in.formats),
		Scale:    in.scale,
		NoLabels: in.noLabels,
		Detailed: in.detailed,
	}
	if in.unit != "" {
		opts.Unit = in.unit
	}
	displayUnit, err := units.ParseUnit(opts.Unit)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts.BladeWidth = cfg.BladeWidth
	if in.blade != "" {
		bw, err := units.ParseMeasurement(in.blade, displayUnit)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.BladeWidth = bw
	}

	opts.Denominators = cfg.Denominators
	if in.denominators != "" {
		dens, err := parseDenominators(in.denominators)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Denominators = dens
	}

	// Inline flags describe the design when no other source was named.
	// A bare `framewright calc` falls through to the stock design.
	if in.file == "" && in.name == "" && in.share == "" {
		d, err := design.design(displayUnit)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Design = &d
	}

	return opts, nil
}

// runCalc executes the pipeline and writes the requested artifacts.
func (c *CLI) runCalc(ctx context.Context, opts pipeline.Options, output string) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, cleanup, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("open workbench: %w", err)
	}
	defer cleanup()

	spinner := newSpinner(ctx, "Calculating cut dimensions...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Calculation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return c.writeArtifacts(result, opts, output)
}

// writeArtifacts sends a lone text or JSON artifact to stdout and
// everything else to files next to the invocation.
func (c *CLI) writeArtifacts(result *pipeline.Result, opts pipeline.Options, output string) error {
	formats := opts.Formats

	// A single text or JSON cut sheet goes to stdout unless an output
	// path was requested, so calc composes with shell pipes.
	if output == "" && len(formats) == 1 &&
		(formats[0] == pipeline.FormatText || formats[0] == pipeline.FormatJSON) {
		_, err := os.Stdout.Write(result.Artifacts[formats[0]])
		return err
	}

	base := artifactBase(output, opts.File)
	var paths []string
	for _, f := range formats {
		path := base + "." + artifactExt(f)
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Cut plan ready")
	for _, path := range paths {
		printFile(path)
	}
	printStats(cutPieceCount(result.Report.CutList), stockLength(result, opts))
	if result.Report.DepthClearance < 0 {
		printWarning("Frame depth is shallower than the glass, mat, and artwork stack")
	}

	return nil
}

// artifactBase picks the basename artifacts are written under: the
// output flag minus any artifact extension, then the input design file
// minus its extension, then a plain fallback.
func artifactBase(output, file string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	if file != "" {
		base := filepath.Base(file)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return "frame"
}

// artifactExt maps a pipeline format to its file extension.
func artifactExt(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

// cutPieceCount totals the rail pieces across both cut directions.
func cutPieceCount(cl frame.CutList) int {
	n := 0
	for _, p := range cl.Horizontal {
		n += p.Quantity
	}
	for _, p := range cl.Vertical {
		n += p.Quantity
	}
	return n
}

// stockLength renders the total wood length compactly for the stats line.
func stockLength(result *pipeline.Result, opts pipeline.Options) string {
	fo := opts.FormatOptions()
	fo.TapeFractions = false
	return fo.Value(result.Report.TotalWoodLength)
}
