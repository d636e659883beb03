package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/framewright/internal/api"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the frame calculator over HTTP",
		Long: `Serve the frame calculator as a JSON API.

The server exposes calculation, tape conversion, share codes, size
presets, saved designs, and SVG rendering under /api/v1, backed by the
same workbench storage the CLI uses. It drains in-flight requests and
exits cleanly on interrupt.`,
		Example: `  framewright serve
  framewright serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "Listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	st, cfg, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open workbench: %w", err)
	}
	defer st.Close()

	srv := api.New(api.Config{
		Addr:         addr,
		Store:        st,
		Logger:       c.Logger,
		ShareBaseURL: cfg.ShareBaseURL,
	})

	return srv.ListenAndServe(ctx)
}
