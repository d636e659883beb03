package workbench

import (
	"context"

	"github.com/google/uuid"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
)

// NullStore is a no-op workbench that never persists anything.
// Useful for testing or when persistence should be disabled.
type NullStore struct{}

// NewNullStore creates a null workbench store.
func NewNullStore() Store {
	return &NullStore{}
}

// ListDesigns always returns an empty workbench.
func (s *NullStore) ListDesigns(ctx context.Context) ([]SavedDesign, error) {
	return nil, nil
}

// GetDesign always misses.
func (s *NullStore) GetDesign(ctx context.Context, name string) (SavedDesign, error) {
	return SavedDesign{}, errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
}

// SaveDesign accepts and drops the design.
func (s *NullStore) SaveDesign(ctx context.Context, d SavedDesign) (SavedDesign, error) {
	if err := errors.ValidateDesignName(d.Name); err != nil {
		return SavedDesign{}, err
	}
	d.ID = uuid.NewString()
	return d, nil
}

// DeleteDesign always misses.
func (s *NullStore) DeleteDesign(ctx context.Context, name string) error {
	return errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
}

// ListSizes always returns no presets.
func (s *NullStore) ListSizes(ctx context.Context) ([]frame.Size, error) {
	return nil, nil
}

// SaveSize drops the preset.
func (s *NullStore) SaveSize(ctx context.Context, size frame.Size) error {
	return nil
}

// DeleteSize always misses.
func (s *NullStore) DeleteSize(ctx context.Context, name string) error {
	return errors.New(errors.ErrCodeNotFound, "size %q not found", name)
}

// LoadSettings returns the defaults.
func (s *NullStore) LoadSettings(ctx context.Context) (Settings, error) {
	return DefaultSettings(), nil
}

// SaveSettings drops the settings.
func (s *NullStore) SaveSettings(ctx context.Context, settings Settings) error {
	return nil
}

// Ping always succeeds.
func (s *NullStore) Ping(ctx context.Context) error { return nil }

// Close does nothing.
func (s *NullStore) Close() error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
