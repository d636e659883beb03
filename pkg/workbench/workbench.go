// Package workbench persists the working state of the frame calculator:
// named designs, custom size presets, and the current settings.
//
// # Architecture
//
// The [Store] interface abstracts the persistence backend:
//   - file: JSON files in a config directory, for CLI use
//   - redis: shared storage for multi-instance API deployments
//   - mongo: document storage with the same semantics
//   - null: drops everything, for tests and ephemeral runs
//
// All backends share the same identity rules. A saved design is keyed
// by its exact name, and saving again under the same name updates it in
// place. A size preset is keyed by its case-insensitively folded name,
// so "A4" replaces "a4". Settings are a single record.
//
// # Usage
//
// Create a store and save a design:
//
//	st, err := workbench.NewFileStore("")  // ~/.config/framewright/workbench
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	saved, err := st.SaveDesign(ctx, workbench.SavedDesign{
//	    Name:   "living room poster",
//	    Design: d,
//	})
//
// Complete snapshots move between stores with [ExportBackup] and
// [ImportBackup].
package workbench

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// SavedDesign is a named design in the workbench.
type SavedDesign struct {
	ID         string       `json:"id" bson:"_id"`
	Name       string       `json:"name" bson:"name"`
	Design     frame.Design `json:"design" bson:"design"`
	BladeWidth float64      `json:"blade_width,omitempty" bson:"blade_width,omitempty"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" bson:"updated_at"`
}

// Settings is the calculator state that survives between sessions.
type Settings struct {
	Unit       units.Unit   `json:"unit" bson:"unit"`
	Design     frame.Design `json:"design" bson:"design"`
	BladeWidth float64      `json:"blade_width" bson:"blade_width"`
}

// DefaultSettings returns the state of a fresh workbench.
func DefaultSettings() Settings {
	return Settings{
		Unit:       units.Inches,
		Design:     frame.Default(),
		BladeWidth: frame.DefaultBladeWidth,
	}
}

// Store is the interface for workbench persistence backends.
//
// Lookups that miss return a DESIGN_NOT_FOUND or NOT_FOUND coded error;
// LoadSettings never misses and falls back to [DefaultSettings].
type Store interface {
	// ListDesigns returns every saved design, oldest first.
	ListDesigns(ctx context.Context) ([]SavedDesign, error)

	// GetDesign retrieves a saved design by exact name.
	GetDesign(ctx context.Context, name string) (SavedDesign, error)

	// SaveDesign stores d under its name, replacing any existing design
	// with that name while keeping its identity and creation time. The
	// returned value carries the assigned ID and timestamps.
	SaveDesign(ctx context.Context, d SavedDesign) (SavedDesign, error)

	// DeleteDesign removes a saved design by exact name.
	DeleteDesign(ctx context.Context, name string) error

	// ListSizes returns the custom size presets sorted by folded name.
	ListSizes(ctx context.Context) ([]frame.Size, error)

	// SaveSize stores a size preset, replacing any preset whose name
	// matches case-insensitively.
	SaveSize(ctx context.Context, s frame.Size) error

	// DeleteSize removes a size preset by case-insensitive name.
	DeleteSize(ctx context.Context, name string) error

	// LoadSettings returns the persisted settings, or DefaultSettings
	// when nothing has been saved yet.
	LoadSettings(ctx context.Context) (Settings, error)

	// SaveSettings persists the current settings.
	SaveSettings(ctx context.Context, s Settings) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// DimsTolerance is how close two presets' edges must be, in inches, to
// count as the same physical size.
const DimsTolerance = 0.01

// MatchingDims reports the name of the first preset whose dimensions
// match the given edges within [DimsTolerance]. Presets with the same
// measurements are allowed; callers surface the match as a note.
func MatchingDims(sizes []frame.Size, height, width float64) (string, bool) {
	for _, s := range sizes {
		if math.Abs(s.Height-height) < DimsTolerance && math.Abs(s.Width-width) < DimsTolerance {
			return s.Name, true
		}
	}
	return "", false
}

// sizeKey folds a preset name to its identity.
func sizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortSizes(list []frame.Size) {
	sort.Slice(list, func(i, j int) bool {
		return sizeKey(list[i].Name) < sizeKey(list[j].Name)
	})
}

func validateSize(s frame.Size) error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New(errors.ErrCodeInvalidName, "size name is required")
	}
	if err := errors.ValidateDimension("height", s.Height); err != nil {
		return err
	}
	return errors.ValidateDimension("width", s.Width)
}

func nowUTC() time.Time { return time.Now().UTC() }
