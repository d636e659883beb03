package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/tape"
	"github.com/framewright/framewright/pkg/units"
)

// tapeLine is one converted reading in JSON output.
type tapeLine struct {
	Input   string           `json:"input"`
	Inches  float64          `json:"inches"`
	Reading tape.Measurement `json:"reading"`
	Display string           `json:"display"`
}

// tapeCommand creates the tape command for converting measurements.
func (c *CLI) tapeCommand() *cobra.Command {
	var (
		unit         string
		denominators string
		noSegments   bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "tape <measurement>...",
		Short: "Convert measurements to tape-measure readings",
		Long: `Convert measurements to tape-measure readings.

Each value is parsed as a decimal, a fraction, or a suffixed metric
measurement, then expressed against standard tape graduations. Readings
off the graduation grid are reported as a coarse base fraction plus a
fine adjustment, the way a cut is actually marked.`,
		Example: `  framewright tape 4.72
  framewright tape "4 3/4" 0.5 120mm
  framewright tape --unit mm --json 120`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTape(args, unit, denominators, noSegments, asJSON)
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", `Unit for bare values: "in" or "mm"`)
	cmd.Flags().StringVar(&denominators, "denominators", "", `Tape graduations, e.g. "32,16,8"`)
	cmd.Flags().BoolVar(&noSegments, "no-segments", false, "Report the single nearest fraction, without an adjustment")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")

	return cmd
}

// runTape converts each argument and prints the readings.
func (c *CLI) runTape(args []string, unit, denominators string, noSegments, asJSON bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	unitName := cfg.Unit
	if unit != "" {
		unitName = unit
	}
	def, err := units.ParseUnit(unitName)
	if err != nil {
		return err
	}

	dens := cfg.Denominators
	if denominators != "" {
		if dens, err = parseDenominators(denominators); err != nil {
			return err
		}
	}

	lines := make([]tapeLine, 0, len(args))
	for _, arg := range args {
		inches, err := units.ParseMeasurement(arg, def)
		if err != nil {
			return err
		}
		m, err := tape.Approximate(inches, dens, !noSegments)
		if err != nil {
			return err
		}
		lines = append(lines, tapeLine{
			Input:   arg,
			Inches:  inches,
			Reading: m,
			Display: m.String(),
		})
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lines)
	}

	for _, line := range lines {
		printKeyValue(line.Input, line.Display+"\"")
	}
	return nil
}
