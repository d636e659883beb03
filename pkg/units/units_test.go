package units

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"in", Inches, false},
		{"inch", Inches, false},
		{"inches", Inches, false},
		{"\"", Inches, false},
		{"IN", Inches, false},
		{"mm", Millimeters, false},
		{"millimeters", Millimeters, false},
		{"  mm  ", Millimeters, false},

		{"", "", true},
		{"cm", "", true},
		{"furlongs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnitLabels(t *testing.T) {
	if Inches.Label() != "inches" {
		t.Errorf("Inches.Label() = %q, want %q", Inches.Label(), "inches")
	}
	if Millimeters.Label() != "mm" {
		t.Errorf("Millimeters.Label() = %q, want %q", Millimeters.Label(), "mm")
	}
	if Inches.Suffix() != "\"" {
		t.Errorf("Inches.Suffix() = %q, want %q", Inches.Suffix(), "\"")
	}
	if Millimeters.Suffix() != " mm" {
		t.Errorf("Millimeters.Suffix() = %q, want %q", Millimeters.Suffix(), " mm")
	}
}

func TestConversions(t *testing.T) {
	if got := InchesToMM(1); math.Abs(got-25.4) > eps {
		t.Errorf("InchesToMM(1) = %v, want 25.4", got)
	}
	if got := MMToInches(25.4); math.Abs(got-1) > eps {
		t.Errorf("MMToInches(25.4) = %v, want 1", got)
	}

	// Round trip
	for _, v := range []float64{0.125, 4.72, 12.5, 18.75} {
		back := MMToInches(InchesToMM(v))
		if math.Abs(back-v) > eps {
			t.Errorf("round trip of %v = %v", v, back)
		}
	}

	if got := Convert(10, Inches, Inches); got != 10 {
		t.Errorf("Convert same unit = %v, want 10", got)
	}
	if got := Convert(1, Inches, Millimeters); math.Abs(got-25.4) > eps {
		t.Errorf("Convert in->mm = %v, want 25.4", got)
	}
	if got := Convert(50.8, Millimeters, Inches); math.Abs(got-2) > eps {
		t.Errorf("Convert mm->in = %v, want 2", got)
	}
}

func TestRoundToStep(t *testing.T) {
	tests := []struct {
		value float64
		step  float64
		want  float64
	}{
		{10.1, 0.25, 10.0},
		{10.13, 0.25, 10.25},
		{12.5, 0.25, 12.5},
		{0.51, 0.125, 0.5},
		{0.57, 0.125, 0.625},
		{2.004, 0.01, 2.0},
		{7.3, 0, 7.3},  // zero step: unchanged
		{7.3, -1, 7.3}, // negative step: unchanged
	}

	for _, tt := range tests {
		if got := RoundToStep(tt.value, tt.step); math.Abs(got-tt.want) > eps {
			t.Errorf("RoundToStep(%v, %v) = %v, want %v", tt.value, tt.step, got, tt.want)
		}
	}
}

func TestRoundDecimals(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{25.4001, 1, 25.4},
		{2.3649, 2, 2.36},
		{2.365, 2, 2.37},
		{317.5, 1, 317.5},
	}

	for _, tt := range tests {
		if got := RoundDecimals(tt.value, tt.places); math.Abs(got-tt.want) > eps {
			t.Errorf("RoundDecimals(%v, %d) = %v, want %v", tt.value, tt.places, got, tt.want)
		}
	}
}

func TestSnapHelpers(t *testing.T) {
	// 318 mm is 12.51968...", snaps to the artwork grid
	if got := SnapInches(318, StepArtwork); math.Abs(got-12.5) > eps {
		t.Errorf("SnapInches(318, StepArtwork) = %v, want 12.5", got)
	}
	// 12.5" displays as 317.5 mm at coarse rounding
	if got := DisplayMM(12.5, MMDecimalsCoarse); math.Abs(got-317.5) > eps {
		t.Errorf("DisplayMM(12.5, coarse) = %v, want 317.5", got)
	}
	// 0.093" glazing displays as 2.36 mm at fine rounding
	if got := DisplayMM(0.093, MMDecimalsFine); math.Abs(got-2.36) > eps {
		t.Errorf("DisplayMM(0.093, fine) = %v, want 2.36", got)
	}
}
