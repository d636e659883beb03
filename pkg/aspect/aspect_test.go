package aspect

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestSetAndRatio(t *testing.T) {
	var l Lock
	if l.Locked() {
		t.Fatal("zero value Lock reports locked")
	}
	if !l.Set(10, 8) {
		t.Fatal("Set(10, 8) = false")
	}
	if !l.Locked() || !near(l.Ratio(), 1.25) {
		t.Errorf("after Set(10, 8): locked=%v ratio=%v, want locked with 1.25", l.Locked(), l.Ratio())
	}
}

func TestSetRejectsNonPositiveWidth(t *testing.T) {
	var l Lock
	if l.Set(10, 0) {
		t.Error("Set(10, 0) = true, want false")
	}
	if l.Locked() {
		t.Error("failed Set engaged the lock")
	}

	// A failed Set must not disturb an engaged lock either.
	l.Set(10, 8)
	if l.Set(5, -1) {
		t.Error("Set(5, -1) = true, want false")
	}
	if !l.Locked() || !near(l.Ratio(), 1.25) {
		t.Errorf("failed Set disturbed the lock: locked=%v ratio=%v", l.Locked(), l.Ratio())
	}
}

func TestZeroHeightLocksDegenerateRatio(t *testing.T) {
	var l Lock
	if !l.Set(0, 8) {
		t.Fatal("Set(0, 8) = false, want locked with zero ratio")
	}
	if !l.Locked() || l.Ratio() != 0 {
		t.Errorf("locked=%v ratio=%v, want locked with 0", l.Locked(), l.Ratio())
	}
	if got := l.WidthFor(10, DefaultStep); got != 0 {
		t.Errorf("WidthFor under zero ratio = %v, want 0", got)
	}
	if got := l.HeightFor(10, DefaultStep); got != 0 {
		t.Errorf("HeightFor under zero ratio = %v, want 0", got)
	}
}

func TestUnlock(t *testing.T) {
	var l Lock
	l.Set(10, 8)
	l.Unlock()
	if l.Locked() || l.Ratio() != 0 {
		t.Errorf("after Unlock: locked=%v ratio=%v", l.Locked(), l.Ratio())
	}
}

func TestToggle(t *testing.T) {
	var l Lock
	if !l.Toggle(10, 8) {
		t.Fatal("first Toggle = false, want engaged")
	}
	if l.Toggle(12, 9) {
		t.Fatal("second Toggle = true, want released")
	}
	// Toggling on with a bad width fails quietly and stays open.
	if l.Toggle(10, 0) {
		t.Error("Toggle with zero width engaged the lock")
	}
	if l.Locked() {
		t.Error("lock engaged after failed toggle")
	}
}

func TestInvert(t *testing.T) {
	var l Lock
	l.Invert() // open lock: no-op
	if l.Locked() {
		t.Fatal("Invert engaged an open lock")
	}

	l.Set(10, 8)
	l.Invert()
	if !near(l.Ratio(), 0.8) {
		t.Errorf("inverted ratio = %v, want 0.8", l.Ratio())
	}
	l.Invert()
	if !near(l.Ratio(), 1.25) {
		t.Errorf("double inversion = %v, want 1.25", l.Ratio())
	}

	l.Set(0, 8)
	l.Invert() // degenerate ratio: no-op
	if l.Ratio() != 0 {
		t.Errorf("inverted degenerate ratio = %v, want 0", l.Ratio())
	}
}

func TestDerivedDimensions(t *testing.T) {
	var l Lock
	l.Set(10, 8) // ratio 1.25

	if got := l.WidthFor(12.5, DefaultStep); !near(got, 10.0) {
		t.Errorf("WidthFor(12.5) = %v, want 10", got)
	}
	if got := l.HeightFor(10, DefaultStep); !near(got, 12.5) {
		t.Errorf("HeightFor(10) = %v, want 12.5", got)
	}

	// Derivations snap to the step grid.
	l.Set(3, 2) // ratio 1.5
	if got := l.WidthFor(10, DefaultStep); !near(got, 6.75) {
		t.Errorf("WidthFor(10) = %v, want 6.75 (6.667 snapped)", got)
	}
	if got := l.HeightFor(7, DefaultStep); !near(got, 10.5) {
		t.Errorf("HeightFor(7) = %v, want 10.5", got)
	}
}

func TestDerivedDimensionsUnlocked(t *testing.T) {
	var l Lock
	if got := l.WidthFor(10, DefaultStep); got != 0 {
		t.Errorf("WidthFor on open lock = %v, want 0", got)
	}
	if got := l.HeightFor(10, DefaultStep); got != 0 {
		t.Errorf("HeightFor on open lock = %v, want 0", got)
	}
}
