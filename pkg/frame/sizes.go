package frame

import (
	"fmt"
	"math"
	"strconv"

	"github.com/framewright/framewright/pkg/errors"
)

// =============================================================================
// Size - Named Frame Sizes
// =============================================================================

// Size is a named (label, height, width) artwork size in inches.
// Sizes compare by value: two sizes with the same fields are the same
// size.
type Size struct {
	Name   string  `json:"name" bson:"name"`
	Height float64 `json:"height" bson:"height"`
	Width  float64 `json:"width" bson:"width"`
}

// String renders the size as `4×6 (4.0" × 6.0")`. Dimensions keep at
// least one decimal so whole and fractional sizes line up in lists.
func (s Size) String() string {
	return fmt.Sprintf("%s (%s\" × %s\")", s.Name, formatEdge(s.Height), formatEdge(s.Width))
}

// formatEdge renders an edge length with one decimal minimum:
// 8 → "8.0", 8.5 → "8.5", 8.25 → "8.25".
func formatEdge(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatSizeLabel renders a label component: integers bare, everything
// else with one decimal.
func formatSizeLabel(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// StandardSizes returns the classic print sizes offered by default.
func StandardSizes() []Size {
	return []Size{
		{Name: "4×6", Height: 4, Width: 6},
		{Name: "5×7", Height: 5, Width: 7},
		{Name: "8×10", Height: 8, Width: 10},
		{Name: "11×14", Height: 11, Width: 14},
		{Name: "12×18", Height: 12, Width: 18},
		{Name: "16×20", Height: 16, Width: 20},
		{Name: "18×24", Height: 18, Width: 24},
		{Name: "20×30", Height: 20, Width: 30},
	}
}

// GenerateSizes produces an ascending series of sizes sharing the
// aspectH:aspectW ratio. The scale factor starts at max(1,
// minLong/longEdge) and grows by increment while the long edge stays
// within maxLong. Names follow the `H×W` convention of the standard
// catalog.
func GenerateSizes(aspectH, aspectW, minLong, maxLong, increment float64) ([]Size, error) {
	if aspectH <= 0 || aspectW <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"aspect edges must be positive, got %v×%v", aspectH, aspectW)
	}
	if increment <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"scale increment must be positive, got %v", increment)
	}

	base := math.Max(aspectH, aspectW)
	factor := math.Max(1, minLong/base)

	var sizes []Size
	for base*factor <= maxLong {
		height := aspectH * factor
		width := aspectW * factor
		sizes = append(sizes, Size{
			Name:   formatSizeLabel(height) + "×" + formatSizeLabel(width),
			Height: height,
			Width:  width,
		})
		factor += increment
	}
	return sizes, nil
}
