package format

import (
	"testing"

	"github.com/framewright/framewright/pkg/units"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{1.000, 3, "1"},
		{0.015, 3, "0.015"},
		{4.72, 3, "4.72"},
		{4.719, 3, "4.719"},
		{10.0, 1, "10"},
		{44.75, 3, "44.75"},
		{0.0, 3, "0"},
		{25.4, 1, "25.4"},
	}

	for _, tt := range tests {
		if got := Float(tt.value, tt.decimals); got != tt.want {
			t.Errorf("Float(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
		}
	}
}

func TestValueInches(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"whole inch", 4.0, `4"`},
		{"zero", 0.0, `0"`},
		{"half with decimal note", 0.5, `1/2" (0.5")`},
		{"mixed number", 4.75, `4 3/4" (4.75")`},
		{"segmented adjustment", 4.72, `4 3/4 - 1/32" (4.72")`},
		{"rolls up to whole", 4.99, `5" (4.99")`},
		{"tiny remainder", 0.015, `1/32" (0.015")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Value(tt.value, units.Inches); got != tt.want {
				t.Errorf("Value(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValueMillimeters(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1.0, "25.4 mm"},
		{2.0, "50.8 mm"},
		{4.72, "119.9 mm"},
		{0.093, "2.4 mm"},
		{0.0, "0 mm"},
	}

	for _, tt := range tests {
		if got := Value(tt.value, units.Millimeters); got != tt.want {
			t.Errorf("Value(%v, mm) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValuePlainDecimal(t *testing.T) {
	opts := DefaultOptions(units.Inches)
	opts.TapeFractions = false

	if got := opts.Value(4.72); got != `4.72"` {
		t.Errorf("plain Value(4.72) = %q, want %q", got, `4.72"`)
	}
	if got := opts.Value(4.0); got != `4"` {
		t.Errorf("plain Value(4.0) = %q, want %q", got, `4"`)
	}
}

func TestValueCustomDenominators(t *testing.T) {
	opts := DefaultOptions(units.Inches)
	opts.Denominators = []int{2, 4}

	if got := opts.Value(4.375); got != `4 1/2" (4.375")` {
		t.Errorf("Value(4.375) over (2,4) = %q, want %q", got, `4 1/2" (4.375")`)
	}
}

func TestPair(t *testing.T) {
	got := Pair("Frame Inside", 13.75, 11.75, units.Inches)
	want := `**Frame Inside:** 13 3/4" (13.75") × 11 3/4" (11.75")`
	if got != want {
		t.Errorf("Pair() = %q, want %q", got, want)
	}

	got = Pair("Artwork", 1.0, 2.0, units.Millimeters)
	want = `**Artwork:** 25.4 mm × 50.8 mm`
	if got != want {
		t.Errorf("Pair() = %q, want %q", got, want)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		h, w float64
		want string
	}{
		{"five four", 10, 8, "5:4"},
		{"four five", 8, 10, "4:5"},
		{"common landscape print", 12.5, 18.75, "2:3"},
		{"square", 6, 6, "1:1"},
		{"sixteen nine", 32, 18, "16:9"},
		{"decimal fallback", 7, 2, "3.50:1"},
		{"whole fallback", 9, 3, "3:1"},
		{"inverted fallback", 2, 7, "1:3.50"},
		{"zero width", 10, 0, "—"},
		{"zero height", 0, 10, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.h, tt.w); got != tt.want {
				t.Errorf("Ratio(%v, %v) = %q, want %q", tt.h, tt.w, got, tt.want)
			}
		})
	}
}

func TestRatioValue(t *testing.T) {
	if got := RatioValue(0); got != "—" {
		t.Errorf("RatioValue(0) = %q, want —", got)
	}
	if got := RatioValue(1.25); got != "5:4" {
		t.Errorf("RatioValue(1.25) = %q, want 5:4", got)
	}
}
