package workbench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
)

// BackupVersion is the format version written into new backups.
const BackupVersion = "1.0"

// Backup is a complete snapshot of a workbench.
type Backup struct {
	Version         string        `json:"version"`
	ExportedAt      time.Time     `json:"exported_at"`
	SavedDesigns    []SavedDesign `json:"saved_designs"`
	CustomSizes     []frame.Size  `json:"custom_sizes"`
	CurrentSettings *Settings     `json:"current_settings,omitempty"`
}

// ImportMode controls how a backup combines with existing data.
type ImportMode string

const (
	// ImportMerge keeps existing data: designs are updated when the
	// backup carries the same name, sizes with already-present
	// dimensions are skipped.
	ImportMerge ImportMode = "merge"

	// ImportReplace clears the workbench before importing.
	ImportReplace ImportMode = "replace"
)

// BackupFilename returns the conventional file name for a backup taken
// at t, e.g. "framewright_backup_20240311_153045.json".
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("framewright_backup_%s.json", t.Format("20060102_150405"))
}

// ExportBackup snapshots the full contents of a store.
func ExportBackup(ctx context.Context, st Store) (Backup, error) {
	designs, err := st.ListDesigns(ctx)
	if err != nil {
		return Backup{}, err
	}
	sizes, err := st.ListSizes(ctx)
	if err != nil {
		return Backup{}, err
	}
	settings, err := st.LoadSettings(ctx)
	if err != nil {
		return Backup{}, err
	}

	return Backup{
		Version:         BackupVersion,
		ExportedAt:      nowUTC(),
		SavedDesigns:    designs,
		CustomSizes:     sizes,
		CurrentSettings: &settings,
	}, nil
}

// WriteBackup encodes the backup as indented JSON.
func WriteBackup(b Backup, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBackup, err, "encode backup")
	}
	return nil
}

// ReadBackup decodes and validates a backup. A file without a version
// field is rejected as not being a backup at all.
func ReadBackup(r io.Reader) (Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Backup{}, errors.Wrap(errors.ErrCodeInvalidBackup, err, "decode backup")
	}
	if b.Version == "" {
		return Backup{}, errors.New(errors.ErrCodeInvalidBackup, "backup file has no version")
	}
	return b, nil
}

// SaveBackupFile writes the backup to a JSON file at path.
func SaveBackupFile(b Backup, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "create %s", path)
	}
	defer f.Close()
	return WriteBackup(b, f)
}

// LoadBackupFile reads a backup from the JSON file at path.
func LoadBackupFile(path string) (Backup, error) {
	f, err := os.Open(path)
	if err != nil {
		return Backup{}, errors.Wrap(errors.ErrCodeStore, err, "open %s", path)
	}
	defer f.Close()
	return ReadBackup(f)
}

// ImportResult summarizes what an import changed.
type ImportResult struct {
	Designs      int // designs written
	Sizes        int // size presets written
	SkippedSizes int // presets skipped as dimension duplicates
}

// ImportBackup applies a backup to a store.
//
// In merge mode, imported designs overwrite same-named existing designs
// and imported sizes are skipped when a preset with exactly the same
// dimensions already exists. In replace mode the workbench is cleared
// first, settings reset to defaults, and everything in the backup is
// written.
func ImportBackup(ctx context.Context, st Store, b Backup, mode ImportMode) (ImportResult, error) {
	var res ImportResult

	if b.Version == "" {
		return res, errors.New(errors.ErrCodeInvalidBackup, "backup file has no version")
	}
	switch mode {
	case ImportMerge, ImportReplace:
	default:
		return res, errors.New(errors.ErrCodeInvalidInput,
			"import mode %q (want %q or %q)", mode, ImportMerge, ImportReplace)
	}

	if mode == ImportReplace {
		if err := clearStore(ctx, st); err != nil {
			return res, err
		}
	}

	for _, d := range b.SavedDesigns {
		if _, err := st.SaveDesign(ctx, d); err != nil {
			return res, err
		}
		res.Designs++
	}

	existing, err := st.ListSizes(ctx)
	if err != nil {
		return res, err
	}
	for _, sz := range b.CustomSizes {
		if mode == ImportMerge && hasExactDims(existing, sz.Height, sz.Width) {
			res.SkippedSizes++
			continue
		}
		if err := st.SaveSize(ctx, sz); err != nil {
			return res, err
		}
		res.Sizes++
	}

	if b.CurrentSettings != nil {
		if err := st.SaveSettings(ctx, *b.CurrentSettings); err != nil {
			return res, err
		}
	}
	return res, nil
}

func clearStore(ctx context.Context, st Store) error {
	designs, err := st.ListDesigns(ctx)
	if err != nil {
		return err
	}
	for _, d := range designs {
		if err := st.DeleteDesign(ctx, d.Name); err != nil {
			return err
		}
	}

	sizes, err := st.ListSizes(ctx)
	if err != nil {
		return err
	}
	for _, sz := range sizes {
		if err := st.DeleteSize(ctx, sz.Name); err != nil {
			return err
		}
	}

	return st.SaveSettings(ctx, DefaultSettings())
}

// hasExactDims reports whether a preset with exactly these edges is
// already present. Unlike [MatchingDims] this is strict equality; a
// backup entry a hair off from an existing preset imports as its own
// entry.
func hasExactDims(sizes []frame.Size, height, width float64) bool {
	for _, s := range sizes {
		if s.Height == height && s.Width == width {
			return true
		}
	}
	return false
}
