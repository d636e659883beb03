package workbench

import (
	"context"
	"testing"

	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/observability"
)

type countingStoreHooks struct {
	hits, misses, writes int
}

func (h *countingStoreHooks) OnHit(context.Context, string)   { h.hits++ }
func (h *countingStoreHooks) OnMiss(context.Context, string)  { h.misses++ }
func (h *countingStoreHooks) OnWrite(context.Context, string) { h.writes++ }

func TestInstrumentedStore(t *testing.T) {
	hooks := &countingStoreHooks{}
	observability.SetStoreHooks(hooks)
	defer observability.Reset()

	st := Instrument(newTestStore(t))
	ctx := context.Background()

	if _, err := st.SaveDesign(ctx, testSavedDesign(t, "Tracked")); err != nil {
		t.Fatalf("SaveDesign error: %v", err)
	}
	if err := st.SaveSize(ctx, frame.Size{Name: "Card", Height: 5, Width: 7}); err != nil {
		t.Fatalf("SaveSize error: %v", err)
	}
	if _, err := st.GetDesign(ctx, "Tracked"); err != nil {
		t.Fatalf("GetDesign error: %v", err)
	}
	if _, err := st.GetDesign(ctx, "Absent"); err == nil {
		t.Fatal("GetDesign should report the missing design")
	}

	if hooks.writes != 2 {
		t.Errorf("writes = %d, want 2", hooks.writes)
	}
	if hooks.hits != 1 {
		t.Errorf("hits = %d, want 1", hooks.hits)
	}
	if hooks.misses != 1 {
		t.Errorf("misses = %d, want 1", hooks.misses)
	}

	// Failed writes are not reported.
	if err := st.SaveSize(ctx, frame.Size{Name: "", Height: 5, Width: 7}); err == nil {
		t.Fatal("SaveSize should reject an unnamed size")
	}
	if hooks.writes != 2 {
		t.Errorf("failed write should not count, got %d", hooks.writes)
	}
}
