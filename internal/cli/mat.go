package cli

import (
	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// matCommand creates the mat command for suggesting a mat width.
func (c *CLI) matCommand() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "mat <height> <width>",
		Short: "Suggest a mat width for artwork dimensions",
		Long: `Suggest a visually balanced mat width for the given artwork.

The suggestion scales with the long edge of the framed result, clamped
to practical matboard bounds and rounded to the nearest quarter inch.`,
		Example: `  framewright mat 8 10
  framewright mat 210mm 297mm`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMat(args[0], args[1], unit)
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", `Unit for bare values: "in" or "mm"`)

	return cmd
}

// runMat parses the artwork dimensions and prints the suggestion.
func (c *CLI) runMat(heightArg, widthArg, unit string) error {
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

	h, err := units.ParseMeasurement(heightArg, def)
	if err != nil {
		return err
	}
	w, err := units.ParseMeasurement(widthArg, def)
	if err != nil {
		return err
	}

	width, basis, err := frame.SuggestMatWidthFor(h, w)
	if err != nil {
		return err
	}

	fo := format.DefaultOptions(def)
	fo.Denominators = cfg.Denominators

	printKeyValue("Suggested", fo.Value(width))
	printDetail("sized from the %s's long edge", string(basis))
	return nil
}
