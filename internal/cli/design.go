package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/workbench"
)

// designerCommand creates the design command for interactive editing.
func (c *CLI) designerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design [name]",
		Short: "Design a frame interactively",
		Long: `Design a frame interactively in the terminal.

The designer edits one measurement at a time with a live cut sheet
alongside. The aspect lock keeps height and width in ratio while either
is edited, the mat toggles on and off, and the working state is carried
over to the next session. Saving from the designer stores the design in
the workbench under a name.

With a name argument, the designer starts from that saved design.`,
		Example: `  framewright design
  framewright design "Hallway Print"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return c.runDesigner(cmd.Context(), name)
		},
	}

	return cmd
}

func (c *CLI) runDesigner(ctx context.Context, name string) error {
	st, cfg, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open workbench: %w", err)
	}
	defer st.Close()

	settings, err := st.LoadSettings(ctx)
	if err != nil {
		return err
	}

	d := settings.Design
	unit := settings.Unit
	blade := settings.BladeWidth
	if name != "" {
		saved, err := st.GetDesign(ctx, name)
		if err != nil {
			return err
		}
		d = saved.Design
		if saved.BladeWidth > 0 {
			blade = saved.BladeWidth
		}
	}

	m := newDesignerModel(d, unit, cfg.Denominators, name)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run designer: %w", err)
	}

	fm, ok := finalModel.(designerModel)
	if !ok {
		return nil
	}

	// The working state carries over to the next session regardless of
	// how the designer exited.
	if err := st.SaveSettings(ctx, workbench.Settings{
		Unit:       fm.unit,
		Design:     fm.design,
		BladeWidth: blade,
	}); err != nil {
		c.Logger.Debug("save settings", "error", err)
	}

	if fm.request == nil {
		return nil
	}

	saved, err := st.SaveDesign(ctx, workbench.SavedDesign{
		Name:       fm.request.name,
		Design:     fm.design,
		BladeWidth: blade,
	})
	if err != nil {
		return err
	}

	printSuccess("Saved %q", saved.Name)
	printNextStep("Cut sheet", fmt.Sprintf("framewright calc --name %q", saved.Name))
	return nil
}
