package workbench

import (
	"context"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/observability"
)

// Instrument wraps a store so lookups and writes are reported to the
// registered observability hooks. The no-op default hooks make it safe
// to apply unconditionally; every backend gets the same events.
func Instrument(st Store) Store {
	return &instrumentedStore{inner: st}
}

type instrumentedStore struct {
	inner Store
}

func (s *instrumentedStore) ListDesigns(ctx context.Context) ([]SavedDesign, error) {
	return s.inner.ListDesigns(ctx)
}

func (s *instrumentedStore) GetDesign(ctx context.Context, name string) (SavedDesign, error) {
	d, err := s.inner.GetDesign(ctx, name)
	switch {
	case err == nil:
		observability.Store().OnHit(ctx, "design")
	case errors.Is(err, errors.ErrCodeDesignNotFound):
		observability.Store().OnMiss(ctx, "design")
	}
	return d, err
}

func (s *instrumentedStore) SaveDesign(ctx context.Context, d SavedDesign) (SavedDesign, error) {
	saved, err := s.inner.SaveDesign(ctx, d)
	if err == nil {
		observability.Store().OnWrite(ctx, "design")
	}
	return saved, err
}

func (s *instrumentedStore) DeleteDesign(ctx context.Context, name string) error {
	err := s.inner.DeleteDesign(ctx, name)
	if err == nil {
		observability.Store().OnWrite(ctx, "design")
	}
	return err
}

func (s *instrumentedStore) ListSizes(ctx context.Context) ([]frame.Size, error) {
	return s.inner.ListSizes(ctx)
}

func (s *instrumentedStore) SaveSize(ctx context.Context, size frame.Size) error {
	err := s.inner.SaveSize(ctx, size)
	if err == nil {
		observability.Store().OnWrite(ctx, "size")
	}
	return err
}

func (s *instrumentedStore) DeleteSize(ctx context.Context, name string) error {
	err := s.inner.DeleteSize(ctx, name)
	if err == nil {
		observability.Store().OnWrite(ctx, "size")
	}
	return err
}

func (s *instrumentedStore) LoadSettings(ctx context.Context) (Settings, error) {
	return s.inner.LoadSettings(ctx)
}

func (s *instrumentedStore) SaveSettings(ctx context.Context, settings Settings) error {
	err := s.inner.SaveSettings(ctx, settings)
	if err == nil {
		observability.Store().OnWrite(ctx, "settings")
	}
	return err
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *instrumentedStore) Close() error {
	return s.inner.Close()
}

var _ Store = (*instrumentedStore)(nil)
