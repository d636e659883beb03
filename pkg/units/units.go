// Package units provides measurement units and conversions for frame
// dimensioning.
//
// All geometry in this module is computed in inches; millimeters exist only
// at the display and input edges. The conversion helpers here mirror that
// split: values cross into inches as early as possible and leave as late as
// possible.
package units

import (
	"math"
	"strings"

	"github.com/framewright/framewright/pkg/errors"
)

// MMPerInch is the exact millimeters-per-inch conversion factor.
const MMPerInch = 25.4

// Unit identifies a display unit for measurements.
type Unit string

// Supported display units.
const (
	Inches      Unit = "in"
	Millimeters Unit = "mm"
)

// String returns the canonical short form ("in" or "mm").
func (u Unit) String() string { return string(u) }

// Label returns the long-form name used in settings and backup files.
func (u Unit) Label() string {
	if u == Millimeters {
		return "mm"
	}
	return "inches"
}

// Suffix returns the symbol appended to formatted values.
func (u Unit) Suffix() string {
	if u == Millimeters {
		return " mm"
	}
	return "\""
}

// ParseUnit parses a unit name. It accepts the canonical short forms as
// well as the long forms found in settings files and user input.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inch", "inches", "\"":
		return Inches, nil
	case "mm", "millimeter", "millimeters":
		return Millimeters, nil
	}
	return "", errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q (expected \"in\" or \"mm\")", s)
}

// InchesToMM converts inches to millimeters.
func InchesToMM(v float64) float64 { return v * MMPerInch }

// MMToInches converts millimeters to inches.
func MMToInches(v float64) float64 { return v / MMPerInch }

// Convert converts v between units. Converting a unit to itself returns v
// unchanged.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	if to == Millimeters {
		return InchesToMM(v)
	}
	return MMToInches(v)
}

// RoundToStep rounds a value to the nearest step increment. This keeps
// repeated unit conversions from accumulating floating-point drift.
// A step of zero or less returns the value unchanged.
func RoundToStep(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}

// RoundDecimals rounds a value to the given number of decimal places.
func RoundDecimals(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}

// Step increments that input fields snap to, per field class. Values
// entered in millimeters snap to these when converted back to inches so
// repeated unit toggles do not drift.
const (
	StepArtwork   = 0.25  // artwork height and width
	StepBorder    = 0.125 // mat width, frame width, rabbet depth
	StepThickness = 0.01  // glazing, matboard, artwork, backing
)

// Display rounding for millimeter values, in decimal places.
const (
	MMDecimalsCoarse = 1 // artwork, mat, and frame widths
	MMDecimalsFine   = 2 // thicknesses and rabbet depth
)

// DisplayMM converts an inch value to millimeters rounded for form display.
func DisplayMM(inches float64, decimals int) float64 {
	return RoundDecimals(InchesToMM(inches), decimals)
}

// SnapInches converts a millimeter value to inches snapped to the given
// field step.
func SnapInches(mm, step float64) float64 {
	return RoundToStep(MMToInches(mm), step)
}
