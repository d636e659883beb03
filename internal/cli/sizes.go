package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
	"github.com/framewright/framewright/pkg/workbench"
)

// sizesCommand groups the frame size subcommands.
func (c *CLI) sizesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "List and manage frame sizes",
	}

	cmd.AddCommand(c.sizesListCommand())
	cmd.AddCommand(c.sizesAddCommand())
	cmd.AddCommand(c.sizesRemoveCommand())
	cmd.AddCommand(c.sizesGenerateCommand())

	return cmd
}

// =============================================================================
// sizes list
// =============================================================================

func (c *CLI) sizesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List standard and custom frame sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSizesList(cmd.Context())
		},
	}
}

func (c *CLI) runSizesList(ctx context.Context) error {
	st, cfg, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	custom, err := st.ListSizes(ctx)
	if err != nil {
		return err
	}

	fo := cfg.FormatOptions()
	fo.TapeFractions = false

	type entry struct {
		size   frame.Size
		custom bool
	}
	entries := make([]entry, 0, len(frame.StandardSizes())+len(custom))
	for _, s := range frame.StandardSizes() {
		entries = append(entries, entry{size: s})
	}
	for _, s := range custom {
		entries = append(entries, entry{size: s, custom: true})
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		source := "standard"
		if e.custom {
			source = "custom"
		}
		rows[i] = []string{e.size.Name, fo.Value(e.size.Height), fo.Value(e.size.Width), source}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Height", "Width", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < len(entries) && entries[row].custom {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	return nil
}

// =============================================================================
// sizes add / remove
// =============================================================================

func (c *CLI) sizesAddCommand() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "add <name> <height> <width>",
		Short: "Save a custom frame size",
		Example: `  framewright sizes add Postcard 4 6
  framewright sizes add A4 210mm 297mm`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSizesAdd(cmd.Context(), args[0], args[1], args[2], unit)
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", `Unit for bare values: "in" or "mm"`)

	return cmd
}

func (c *CLI) runSizesAdd(ctx context.Context, name, heightArg, widthArg, unit string) error {
	st, cfg, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

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

	var dupNote string
	if existing, err := st.ListSizes(ctx); err == nil {
		pool := append(frame.StandardSizes(), existing...)
		if match, ok := workbench.MatchingDims(pool, h, w); ok && !strings.EqualFold(match, name) {
			dupNote = match
		}
	}

	size := frame.Size{Name: name, Height: h, Width: w}
	if err := st.SaveSize(ctx, size); err != nil {
		return err
	}

	printSuccess("Saved size %s", size.String())
	if dupNote != "" {
		printDetail("same dimensions as %q", dupNote)
	}
	return nil
}

func (c *CLI) sizesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a custom frame size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSizesRemove(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runSizesRemove(ctx context.Context, name string) error {
	st, _, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteSize(ctx, name); err != nil {
		return err
	}
	printSuccess("Removed size %q", name)
	return nil
}

// =============================================================================
// sizes generate
// =============================================================================

func (c *CLI) sizesGenerateCommand() *cobra.Command {
	var (
		ratio string
		min   float64
		max   float64
		step  float64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a size run for an aspect ratio",
		Long: `Generate a run of frame sizes sharing one aspect ratio.

The run scales the ratio until the long edge walks from the minimum to
the maximum in the given increment, which is how print shops derive
their standard offerings.`,
		Example: `  framewright sizes generate --ratio 4:5
  framewright sizes generate --ratio 2:3 --min 6 --max 36 --step 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSizesGenerate(ratio, min, max, step)
		},
	}

	cmd.Flags().StringVar(&ratio, "ratio", "4:6", `Height:width aspect ratio, e.g. "4:6"`)
	cmd.Flags().Float64Var(&min, "min", 6, "Smallest long edge in inches")
	cmd.Flags().Float64Var(&max, "max", 20, "Largest long edge in inches")
	cmd.Flags().Float64Var(&step, "step", 0.5, "Long edge increment in inches")

	return cmd
}

func (c *CLI) runSizesGenerate(ratio string, min, max, step float64) error {
	h, w, err := parseRatio(ratio)
	if err != nil {
		return err
	}

	sizes, err := frame.GenerateSizes(h, w, min, max, step)
	if err != nil {
		return err
	}

	fo := format.DefaultOptions(units.Inches)
	fo.TapeFractions = false

	rows := make([][]string, len(sizes))
	for i, s := range sizes {
		rows[i] = []string{s.Name, fo.Value(s.Height), fo.Value(s.Width)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Height", "Width").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	printDetail("%d sizes at %s", len(sizes), ratio)
	return nil
}

// parseRatio splits a "height:width" ratio into its two terms.
func parseRatio(s string) (float64, float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, `ratio must look like "4:5"`)
	}
	h, errH := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	w, errW := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errH != nil || errW != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, `ratio must look like "4:5"`)
	}
	return h, w, nil
}
