package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/config"
	"github.com/framewright/framewright/pkg/frame"
	pkgio "github.com/framewright/framewright/pkg/io"
	"github.com/framewright/framewright/pkg/report"
	"github.com/framewright/framewright/pkg/share"
	"github.com/framewright/framewright/pkg/units"
	"github.com/framewright/framewright/pkg/workbench"
)

// designsCommand groups the saved design subcommands.
func (c *CLI) designsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "designs",
		Short: "Manage saved designs in the workbench",
	}

	cmd.AddCommand(c.designsListCommand())
	cmd.AddCommand(c.designsShowCommand())
	cmd.AddCommand(c.designsSaveCommand())
	cmd.AddCommand(c.designsDeleteCommand())
	cmd.AddCommand(c.designsPathCommand())

	return cmd
}

// =============================================================================
// designs list
// =============================================================================

func (c *CLI) designsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved designs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesignsList(cmd.Context())
		},
	}
}

func (c *CLI) runDesignsList(ctx context.Context) error {
	st, cfg, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	designs, err := st.ListDesigns(ctx)
	if err != nil {
		return err
	}

	if len(designs) == 0 {
		printInfo("No saved designs yet")
		printNextStep("Save one", `framewright designs save "My Frame" --height 8 --width 10`)
		return nil
	}

	fo := cfg.FormatOptions()
	fo.TapeFractions = false

	rows := make([][]string, len(designs))
	for i, sd := range designs {
		mat := "—"
		if sd.Design.HasMat() {
			mat = fo.Value(sd.Design.MatWidthTopBottom)
		}
		rows[i] = []string{
			sd.Name,
			fo.Value(sd.Design.ArtworkHeight) + " × " + fo.Value(sd.Design.ArtworkWidth),
			mat,
			formatRelativeTime(sd.UpdatedAt),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Artwork", "Mat", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	return nil
}

// =============================================================================
// designs show
// =============================================================================

func (c *CLI) designsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the cut sheet for a saved design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesignsShow(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runDesignsShow(ctx context.Context, name string) error {
	st, cfg, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.GetDesign(ctx, name)
	if err != nil {
		return err
	}

	rep := report.Build(saved.Design, report.Options{
		Unit:       cfg.DisplayUnit(),
		BladeWidth: saved.BladeWidth,
	})

	fmt.Println(StyleTitle.Render(saved.Name))
	printDetail("updated %s", formatRelativeTime(saved.UpdatedAt))
	printNewline()
	fmt.Print(rep.Render(cfg.FormatOptions()))
	return nil
}

// =============================================================================
// designs save / delete
// =============================================================================

func (c *CLI) designsSaveCommand() *cobra.Command {
	design := &designFlags{}
	var (
		file      string
		shareCode string
		unit      string
		blade     string
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a design under a name",
		Example: `  framewright designs save "Hallway Print" --height 11 --width 14
  framewright designs save "From Chat" --share https://framewright.app/?d=...
  framewright designs save Imported --file design.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesignsSave(cmd.Context(), args[0], design, file, shareCode, unit, blade)
		},
	}

	addDesignFlags(cmd, design)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the design from a JSON or TOML file")
	cmd.Flags().StringVar(&shareCode, "share", "", "Decode the design from a share code or link")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", `Unit for bare values: "in" or "mm"`)
	cmd.Flags().StringVar(&blade, "blade", "", "Saw blade kerf width stored with the design")

	return cmd
}

func (c *CLI) runDesignsSave(ctx context.Context, name string, design *designFlags, file, shareCode, unit, blade string) error {
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

	var (
		d          frame.Design
		bladeWidth float64
	)
	switch {
	case file != "":
		if d, err = pkgio.ImportDesign(file); err != nil {
			return err
		}
	case shareCode != "":
		payload, err := share.Decode(shareCode)
		if err != nil {
			return err
		}
		if d, err = payload.Design(); err != nil {
			return err
		}
		bladeWidth = payload.BladeWidth
	default:
		if d, err = design.design(def); err != nil {
			return err
		}
	}

	if blade != "" {
		if bladeWidth, err = units.ParseMeasurement(blade, def); err != nil {
			return err
		}
	}

	saved, err := st.SaveDesign(ctx, workbench.SavedDesign{
		Name:       name,
		Design:     d,
		BladeWidth: bladeWidth,
	})
	if err != nil {
		return err
	}

	fo := cfg.FormatOptions()
	fo.TapeFractions = false

	printSuccess("Saved %q", saved.Name)
	printDetail("artwork %s × %s", fo.Value(d.ArtworkHeight), fo.Value(d.ArtworkWidth))
	printNewline()
	printNextStep("Cut sheet", fmt.Sprintf("framewright calc --name %q", saved.Name))
	return nil
}

func (c *CLI) designsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesignsDelete(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runDesignsDelete(ctx context.Context, name string) error {
	st, _, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteDesign(ctx, name); err != nil {
		return err
	}
	printSuccess("Deleted %q", name)
	return nil
}

// =============================================================================
// designs path
// =============================================================================

func (c *CLI) designsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the workbench is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesignsPath()
		},
	}
}

func (c *CLI) runDesignsPath() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	if cfg.Storage.Backend != "" && cfg.Storage.Backend != config.BackendFile {
		printInfo("Workbench uses the %s backend", cfg.Storage.Backend)
		return nil
	}

	dir, err := workbenchDir(cfg)
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// formatRelativeTime renders a timestamp as a friendly age.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
