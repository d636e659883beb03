package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	pkgio "github.com/framewright/framewright/pkg/io"
	"github.com/framewright/framewright/pkg/share"
	"github.com/framewright/framewright/pkg/units"
)

// shareCommand groups the share link subcommands.
func (c *CLI) shareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode and decode shareable design links",
	}

	cmd.AddCommand(c.shareEncodeCommand())
	cmd.AddCommand(c.shareDecodeCommand())

	return cmd
}

// =============================================================================
// share encode
// =============================================================================

func (c *CLI) shareEncodeCommand() *cobra.Command {
	design := &designFlags{}
	var (
		file  string
		name  string
		unit  string
		blade string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a design as a share code and link",
		Long: `Encode a design as a compact share code and link.

The code captures the design's dimensions, thickness stack, blade
width, and display unit in 38 URL-safe characters, so a complete
cutting setup travels in a chat message.`,
		Example: `  framewright share encode --height 16 --width 20
  framewright share encode --name "Hallway Print"
  framewright share encode --file design.json --unit mm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShareEncode(cmd.Context(), design, file, name, unit, blade)
		},
	}

	addDesignFlags(cmd, design)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the design from a JSON or TOML file")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Encode a saved workbench design")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", `Display unit carried in the link: "in" or "mm"`)
	cmd.Flags().StringVar(&blade, "blade", "", "Saw blade kerf width carried in the link")

	return cmd
}

func (c *CLI) runShareEncode(ctx context.Context, design *designFlags, file, name, unit, blade string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	unitName := cfg.Unit
	if unit != "" {
		unitName = unit
	}
	u, err := units.ParseUnit(unitName)
	if err != nil {
		return err
	}

	bladeWidth := cfg.BladeWidth
	if blade != "" {
		if bladeWidth, err = units.ParseMeasurement(blade, u); err != nil {
			return err
		}
	}

	var d frame.Design
	switch {
	case name != "":
		st, _, err := c.openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		saved, err := st.GetDesign(ctx, name)
		if err != nil {
			return err
		}
		d = saved.Design
		if blade == "" && saved.BladeWidth > 0 {
			bladeWidth = saved.BladeWidth
		}
	case file != "":
		if d, err = pkgio.ImportDesign(file); err != nil {
			return err
		}
	default:
		if d, err = design.design(u); err != nil {
			return err
		}
	}

	payload := share.FromDesign(d, bladeWidth, u)
	code, err := share.Encode(payload)
	if err != nil {
		return err
	}
	link, err := share.EncodeURL(payload, cfg.ShareBaseURL)
	if err != nil {
		return err
	}

	printKeyValue("Code", code)
	printLink(link)
	printNewline()
	printNextStep("Calculate", "framewright calc --share "+code)
	return nil
}

// =============================================================================
// share decode
// =============================================================================

func (c *CLI) shareDecodeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <code-or-link>",
		Short: "Decode a share code into its design parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShareDecode(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the design as JSON")

	return cmd
}

func (c *CLI) runShareDecode(arg string, asJSON bool) error {
	payload, err := share.Decode(arg)
	if err != nil {
		return err
	}
	d, err := payload.Design()
	if err != nil {
		return err
	}

	if asJSON {
		return pkgio.WriteDesignJSON(d, os.Stdout)
	}

	fo := format.DefaultOptions(payload.Unit)

	printKeyValue("Artwork", fo.Value(d.ArtworkHeight)+" × "+fo.Value(d.ArtworkWidth))
	if d.HasMat() {
		printKeyValue("Mat", fo.Value(d.MatWidthTopBottom))
	} else {
		printKeyValue("Mat", "none")
	}
	printKeyValue("Frame", fo.Value(d.FrameMaterialWidth)+" × "+fo.Value(d.FrameMaterialDepth)+" deep")
	printKeyValue("Blade", fo.Value(payload.BladeWidth))
	printKeyValue("Unit", payload.Unit.Label())
	printNewline()
	printNextStep("Calculate", "framewright calc --share "+arg)
	return nil
}
