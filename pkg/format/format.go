// Package format renders frame measurements for display.
//
// Inch values default to tape-measure mixed numbers with an informative
// decimal in parentheses when the two differ:
//
//	format.Value(4.72, units.Inches)  // `4 3/4 - 1/32" (4.72")`
//	format.Value(4.0, units.Inches)   // `4"`
//	format.Value(4.72, units.Millimeters) // `119.9 mm`
//
// Trailing zeros are uninformative on a cut list and are always stripped
// from decimal renderings.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/framewright/framewright/pkg/tape"
	"github.com/framewright/framewright/pkg/units"
)

// Options control measurement rendering.
type Options struct {
	Unit          units.Unit
	PrecisionIn   int   // decimal places for plain inch values
	PrecisionMM   int   // decimal places for millimeter values
	TapeFractions bool  // render inches as tape-measure mixed numbers
	Segments      bool  // split tape fractions into base + adjustment
	Denominators  []int // allowed tape graduations; nil uses tape.DefaultDenominators
}

// DefaultOptions returns the standard display settings for a unit.
func DefaultOptions(unit units.Unit) Options {
	return Options{
		Unit:          unit,
		PrecisionIn:   3,
		PrecisionMM:   1,
		TapeFractions: true,
		Segments:      true,
	}
}

// Float formats a value with fixed decimals, stripping uninformative
// trailing zeros and a bare trailing decimal point: Float(1.000, 3) is
// "1", Float(0.015, 3) is "0.015".
func Float(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// Value formats an inch measurement according to o.
//
// Millimeter display converts and rounds; plain inch display renders a
// decimal with the inch mark. Tape display composes whole, fraction, and
// adjustment, and appends the decimal form in parentheses when it reads
// differently from the tape form.
func (o Options) Value(v float64) string {
	if o.Unit == units.Millimeters {
		return Float(units.InchesToMM(v), o.PrecisionMM) + " mm"
	}

	plain := Float(v, o.PrecisionIn) + "\""
	if !o.TapeFractions {
		return plain
	}

	m, err := tape.Approximate(v, o.Denominators, o.Segments)
	if err != nil {
		// Unapproximatable values (bad custom graduations) still
		// need a reading; fall back to the decimal form.
		return plain
	}

	formatted := m.String() + "\""
	if plain != formatted {
		formatted = fmt.Sprintf("%s (%s)", formatted, plain)
	}
	return formatted
}

// Pair formats a labeled height × width pair:
//
//	**Frame Inside:** 13 3/4" (13.75") × 11 3/4" (11.75")
func (o Options) Pair(label string, v1, v2 float64) string {
	return fmt.Sprintf("**%s:** %s × %s", label, o.Value(v1), o.Value(v2))
}

// Value formats v with the default options for unit.
func Value(v float64, unit units.Unit) string {
	return DefaultOptions(unit).Value(v)
}

// Pair formats a labeled dimension pair with the default options for unit.
func Pair(label string, v1, v2 float64, unit units.Unit) string {
	return DefaultOptions(unit).Pair(label, v1, v2)
}

// commonRatios maps well-known proportions to their conventional names.
var commonRatios = []struct {
	h, w float64
	name string
}{
	{1, 1, "1:1"},
	{4, 3, "4:3"}, {3, 4, "3:4"},
	{3, 2, "3:2"}, {2, 3, "2:3"},
	{5, 4, "5:4"}, {4, 5, "4:5"},
	{16, 9, "16:9"}, {9, 16, "9:16"},
	{5, 7, "5:7"}, {7, 5, "7:5"},
	{11, 14, "11:14"}, {14, 11, "14:11"},
}

// Ratio renders the aspect ratio of a height and width, e.g. "5:4".
// A zero dimension has no meaningful ratio and renders as "—".
func Ratio(h, w float64) string {
	if w == 0 || h == 0 {
		return "—"
	}
	return RatioValue(h / w)
}

// RatioValue renders a raw height/width ratio. Well-known proportions
// get their conventional names; anything else falls back to a decimal
// against 1, inverted below unity so "1:3" reads naturally.
func RatioValue(ratio float64) string {
	if ratio == 0 {
		return "—"
	}

	for _, r := range commonRatios {
		if math.Abs(ratio-r.h/r.w) < 0.01 {
			return r.name
		}
	}

	if ratio < 1 {
		inv := 1 / ratio
		if math.Abs(inv-math.Round(inv)) < 0.01 {
			return fmt.Sprintf("1:%d", int(math.Round(inv)))
		}
		return fmt.Sprintf("1:%.2f", inv)
	}
	if math.Abs(ratio-math.Round(ratio)) < 0.01 {
		return fmt.Sprintf("%d:1", int(math.Round(ratio)))
	}
	return fmt.Sprintf("%.2f:1", ratio)
}
