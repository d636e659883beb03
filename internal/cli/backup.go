package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/workbench"
)

// backupCommand groups the workbench backup subcommands.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import workbench backups",
	}

	cmd.AddCommand(c.backupExportCommand())
	cmd.AddCommand(c.backupImportCommand())

	return cmd
}

// =============================================================================
// backup export
// =============================================================================

func (c *CLI) backupExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the workbench to a backup file",
		Long: `Export every saved design, custom size, and the current settings
to a single JSON file. The file restores into any storage backend, so
it also moves a workbench between machines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBackupExport(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Backup file path (default framewright_backup_<timestamp>.json)")

	return cmd
}

func (c *CLI) runBackupExport(ctx context.Context, output string) error {
	st, _, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if output == "" {
		output = workbench.BackupFilename(time.Now())
	}

	spinner := newSpinner(ctx, "Exporting workbench...")
	spinner.Start()

	backup, err := workbench.ExportBackup(ctx, st)
	if err != nil {
		spinner.StopWithError("Export failed")
		return err
	}
	spinner.Stop()

	if err := workbench.SaveBackupFile(backup, output); err != nil {
		return err
	}

	printSuccess("Workbench exported")
	printFile(output)
	printDetail("%d designs, %d sizes", len(backup.SavedDesigns), len(backup.CustomSizes))
	return nil
}

// =============================================================================
// backup import
// =============================================================================

func (c *CLI) backupImportCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a backup file into the workbench",
		Long: `Import a backup file into the workbench.

Merge mode keeps existing entries, overwrites designs that share a
name with the backup, and skips size presets whose dimensions already
exist. Replace mode clears the workbench first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBackupImport(cmd.Context(), args[0], mode)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(workbench.ImportMerge), `Import mode: "merge" or "replace"`)

	return cmd
}

func (c *CLI) runBackupImport(ctx context.Context, path, mode string) error {
	importMode := workbench.ImportMode(mode)
	switch importMode {
	case workbench.ImportMerge, workbench.ImportReplace:
	default:
		return errors.New(errors.ErrCodeInvalidInput, `import mode must be "merge" or "replace"`)
	}

	backup, err := workbench.LoadBackupFile(path)
	if err != nil {
		return err
	}

	st, _, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if importMode == workbench.ImportReplace {
		printInfo("Replacing the current workbench")
	}

	spinner := newSpinner(ctx, "Importing backup...")
	spinner.Start()

	res, err := workbench.ImportBackup(ctx, st, backup, importMode)
	if err != nil {
		spinner.StopWithError("Import failed")
		return err
	}
	spinner.Stop()

	printSuccess("Imported %d designs, %d sizes", res.Designs, res.Sizes)
	if res.SkippedSizes > 0 {
		printDetail("skipped %d sizes matching existing dimensions", res.SkippedSizes)
	}
	return nil
}
