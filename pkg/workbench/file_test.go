package workbench

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	return st
}

func testSavedDesign(t *testing.T, name string) SavedDesign {
	t.Helper()
	d := frame.Default()
	d.ArtworkHeight = 8
	d.ArtworkWidth = 10
	d, err := frame.New(d)
	if err != nil {
		t.Fatalf("frame.New error: %v", err)
	}
	return SavedDesign{Name: name, Design: d, BladeWidth: 0.125}
}

func TestFileStoreDesignLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	defer st.Close()

	// Empty store lists nothing.
	list, err := st.ListDesigns(ctx)
	if err != nil {
		t.Fatalf("ListDesigns error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty store, got %d designs", len(list))
	}

	// Save assigns an ID and timestamps.
	saved, err := st.SaveDesign(ctx, testSavedDesign(t, "Living Room"))
	if err != nil {
		t.Fatalf("SaveDesign error: %v", err)
	}
	if saved.ID == "" {
		t.Error("SaveDesign should assign an ID")
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("SaveDesign should set timestamps")
	}

	// Get by exact name.
	got, err := st.GetDesign(ctx, "Living Room")
	if err != nil {
		t.Fatalf("GetDesign error: %v", err)
	}
	if got.ID != saved.ID {
		t.Errorf("GetDesign ID = %q, want %q", got.ID, saved.ID)
	}
	if got.Design.ArtworkWidth != 10 {
		t.Errorf("GetDesign artwork width = %v, want 10", got.Design.ArtworkWidth)
	}

	// Names are case sensitive for designs.
	if _, err := st.GetDesign(ctx, "living room"); !errors.Is(err, errors.ErrCodeDesignNotFound) {
		t.Errorf("GetDesign with folded name: got %v, want DESIGN_NOT_FOUND", err)
	}

	// Delete removes, a second delete misses.
	if err := st.DeleteDesign(ctx, "Living Room"); err != nil {
		t.Fatalf("DeleteDesign error: %v", err)
	}
	if err := st.DeleteDesign(ctx, "Living Room"); !errors.Is(err, errors.ErrCodeDesignNotFound) {
		t.Errorf("second DeleteDesign: got %v, want DESIGN_NOT_FOUND", err)
	}
}

func TestFileStoreSaveDesignReplaces(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	defer st.Close()

	first, err := st.SaveDesign(ctx, testSavedDesign(t, "Hallway"))
	if err != nil {
		t.Fatalf("SaveDesign error: %v", err)
	}
	if _, err := st.SaveDesign(ctx, testSavedDesign(t, "Kitchen")); err != nil {
		t.Fatalf("SaveDesign error: %v", err)
	}

	// Saving the same name again replaces in place.
	update := testSavedDesign(t, "Hallway")
	update.Design.MatWidthTopBottom = 3
	update.Design.MatWidthSides = 3
	second, err := st.SaveDesign(ctx, update)
	if err != nil {
		t.Fatalf("SaveDesign replace error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("replace changed ID: %q -> %q", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("replace changed CreatedAt: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Error("replace should not move UpdatedAt backwards")
	}

	list, err := st.ListDesigns(ctx)
	if err != nil {
		t.Fatalf("ListDesigns error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 designs after replace, got %d", len(list))
	}
	// Replaced entry keeps its position.
	if list[0].Name != "Hallway" || list[1].Name != "Kitchen" {
		t.Errorf("unexpected order: %q, %q", list[0].Name, list[1].Name)
	}
	if list[0].Design.MatWidthTopBottom != 3 {
		t.Errorf("replace did not persist: mat width = %v", list[0].Design.MatWidthTopBottom)
	}
}

func TestFileStoreRejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	defer st.Close()

	_, err := st.SaveDesign(ctx, testSavedDesign(t, "   "))
	if !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("blank name: got %v, want INVALID_NAME", err)
	}
}

func TestFileStoreSizes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	defer st.Close()

	sizes := []frame.Size{
		{Name: "Poster", Height: 24, Width: 36},
		{Name: "album cover", Height: 12.375, Width: 12.375},
		{Name: "Banner", Height: 6, Width: 48},
	}
	for _, s := range sizes {
		if err := st.SaveSize(ctx, s); err != nil {
			t.Fatalf("SaveSize(%q) error: %v", s.Name, err)
		}
	}

	// Listed alphabetically by folded name.
	list, err := st.ListSizes(ctx)
	if err != nil {
		t.Fatalf("ListSizes error: %v", err)
	}
	wantOrder := []string{"album cover", "Banner", "Poster"}
	if len(list) != len(wantOrder) {
		t.Fatalf("ListSizes returned %d entries, want %d", len(list), len(wantOrder))
	}
	for i, want := range wantOrder {
		if list[i].Name != want {
			t.Errorf("list[%d].Name = %q, want %q", i, list[i].Name, want)
		}
	}

	// Size names replace case-insensitively.
	if err := st.SaveSize(ctx, frame.Size{Name: "POSTER", Height: 18, Width: 24}); err != nil {
		t.Fatalf("SaveSize replace error: %v", err)
	}
	list, err = st.ListSizes(ctx)
	if err != nil {
		t.Fatalf("ListSizes error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("case-folded replace should not add an entry: got %d", len(list))
	}
	var poster frame.Size
	for _, s := range list {
		if strings.EqualFold(s.Name, "poster") {
			poster = s
		}
	}
	if poster.Height != 18 || poster.Width != 24 {
		t.Errorf("replace did not persist: got %vx%v", poster.Height, poster.Width)
	}

	// Delete is case-insensitive too.
	if err := st.DeleteSize(ctx, "banner"); err != nil {
		t.Fatalf("DeleteSize error: %v", err)
	}
	if err := st.DeleteSize(ctx, "banner"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("second DeleteSize: got %v, want NOT_FOUND", err)
	}
}

func TestFileStoreSizeValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	defer st.Close()

	tests := []struct {
		name string
		size frame.Size
		code errors.Code
	}{
		{"empty name", frame.Size{Name: "", Height: 4, Width: 6}, errors.ErrCodeInvalidName},
		{"zero height", frame.Size{Name: "bad", Height: 0, Width: 6}, errors.ErrCodeInvalidDimension},
		{"negative width", frame.Size{Name: "bad", Height: 4, Width: -6}, errors.ErrCodeInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.SaveSize(ctx, tt.size)
			if !errors.Is(err, tt.code) {
				t.Errorf("SaveSize: got %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFileStoreSettings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	defer st.Close()

	// Settings never miss: a fresh store serves defaults.
	got, err := st.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if got.Unit != units.Inches {
		t.Errorf("default unit = %v, want inches", got.Unit)
	}
	if got.BladeWidth != frame.DefaultBladeWidth {
		t.Errorf("default blade width = %v, want %v", got.BladeWidth, frame.DefaultBladeWidth)
	}

	got.Unit = units.Millimeters
	got.BladeWidth = 0.25
	if err := st.SaveSettings(ctx, got); err != nil {
		t.Fatalf("SaveSettings error: %v", err)
	}

	again, err := st.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if again.Unit != units.Millimeters || again.BladeWidth != 0.25 {
		t.Errorf("settings did not round trip: %+v", again)
	}
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	if _, err := st.SaveDesign(ctx, testSavedDesign(t, "Persistent")); err != nil {
		t.Fatalf("SaveDesign error: %v", err)
	}
	st.Close()

	// Reopening the same directory sees the saved design.
	st2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore reopen error: %v", err)
	}
	defer st2.Close()
	if _, err := st2.GetDesign(ctx, "Persistent"); err != nil {
		t.Errorf("design lost across reopen: %v", err)
	}

	// Files live where Path says they do.
	if st2.Path() != dir {
		t.Errorf("Path = %q, want %q", st2.Path(), dir)
	}
	if _, err := os.Stat(filepath.Join(dir, designsFile)); err != nil {
		t.Errorf("designs file missing: %v", err)
	}
}

func TestMatchingDims(t *testing.T) {
	sizes := []frame.Size{
		{Name: "4x6", Height: 4, Width: 6},
		{Name: "5x7", Height: 5, Width: 7},
	}

	// Within tolerance on both axes.
	if name, ok := MatchingDims(sizes, 4.005, 5.995); !ok || name != "4x6" {
		t.Errorf("MatchingDims(4.005, 5.995) = %q, %v; want 4x6, true", name, ok)
	}
	// Exactly on the entry.
	if name, ok := MatchingDims(sizes, 5, 7); !ok || name != "5x7" {
		t.Errorf("MatchingDims(5, 7) = %q, %v; want 5x7, true", name, ok)
	}
	// One axis out of tolerance is no match.
	if _, ok := MatchingDims(sizes, 4, 6.02); ok {
		t.Error("MatchingDims(4, 6.02) should not match")
	}
	if _, ok := MatchingDims(nil, 4, 6); ok {
		t.Error("MatchingDims on empty list should not match")
	}
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	st := NewNullStore()
	defer st.Close()

	// Save validates but discards.
	saved, err := st.SaveDesign(ctx, testSavedDesign(t, "Ghost"))
	if err != nil {
		t.Fatalf("SaveDesign error: %v", err)
	}
	if saved.ID == "" {
		t.Error("NullStore.SaveDesign should still assign an ID")
	}
	if _, err := st.GetDesign(ctx, "Ghost"); !errors.Is(err, errors.ErrCodeDesignNotFound) {
		t.Errorf("NullStore.GetDesign: got %v, want DESIGN_NOT_FOUND", err)
	}

	list, err := st.ListDesigns(ctx)
	if err != nil {
		t.Fatalf("ListDesigns error: %v", err)
	}
	if len(list) != 0 {
		t.Error("NullStore should not retain designs")
	}

	// Settings fall back to defaults.
	settings, err := st.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if settings.Unit != units.Inches {
		t.Errorf("NullStore settings unit = %v, want inches", settings.Unit)
	}
}
