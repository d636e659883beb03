// Package aspect maintains the aspect ratio lock that keeps artwork
// height and width synchronized while one of them is edited.
//
// The lock freezes the height/width ratio at the moment it is engaged.
// From then on, editing one dimension derives the other through
// [Lock.WidthFor] and [Lock.HeightFor], snapped to a measurement grid
// so repeated edits do not drift.
//
// A Lock belongs to a single editing session. The zero value is an
// open lock, ready to use. Locks are not safe for concurrent use.
package aspect

import "github.com/framewright/framewright/pkg/units"

// DefaultStep is the grid derived dimensions snap to, in inches.
const DefaultStep = 0.25

// Lock freezes a height/width ratio and derives the complementary
// dimension while engaged.
type Lock struct {
	locked bool
	ratio  float64 // height / width while locked
}

// Locked reports whether the ratio is frozen.
func (l *Lock) Locked() bool {
	return l.locked
}

// Ratio returns the frozen height/width ratio, or 0 when the lock is
// open. A locked ratio can itself be 0 if it was set from a zero
// height; check [Lock.Locked] to tell the two apart.
func (l *Lock) Ratio() float64 {
	if !l.locked {
		return 0
	}
	return l.ratio
}

// Set freezes the ratio at height/width and reports whether the lock
// took. A non-positive width cannot define a ratio and leaves the lock
// exactly as it was.
func (l *Lock) Set(height, width float64) bool {
	if width <= 0 {
		return false
	}
	l.locked = true
	l.ratio = height / width
	return true
}

// Unlock opens the lock.
func (l *Lock) Unlock() {
	l.locked = false
	l.ratio = 0
}

// Toggle flips the lock: it unlocks when locked, otherwise freezes the
// ratio at height/width. It returns the new locked state.
func (l *Lock) Toggle(height, width float64) bool {
	if l.locked {
		l.Unlock()
	} else {
		l.Set(height, width)
	}
	return l.locked
}

// Invert flips the frozen ratio for an orientation swap. Open or
// degenerate (zero-ratio) locks are left unchanged.
func (l *Lock) Invert() {
	if !l.locked || l.ratio == 0 {
		return
	}
	l.ratio = 1 / l.ratio
}

// WidthFor derives the width matching height under the frozen ratio,
// snapped to step. It returns 0 when the lock is open or the ratio is
// degenerate.
func (l *Lock) WidthFor(height, step float64) float64 {
	if !l.locked || l.ratio == 0 {
		return 0
	}
	return units.RoundToStep(height/l.ratio, step)
}

// HeightFor derives the height matching width under the frozen ratio,
// snapped to step. It returns 0 when the lock is open.
func (l *Lock) HeightFor(width, step float64) float64 {
	if !l.locked {
		return 0
	}
	return units.RoundToStep(width*l.ratio, step)
}
