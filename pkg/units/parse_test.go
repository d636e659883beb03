package units

import (
	"math"
	"testing"
)

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     Unit
		want    float64
		wantErr bool
	}{
		{"decimal", "4.72", Inches, 4.72, false},
		{"whole", "12", Inches, 12, false},
		{"fraction", "3/4", Inches, 0.75, false},
		{"thirty-second", "1/32", Inches, 0.03125, false},
		{"whole and fraction", "4 3/4", Inches, 4.75, false},
		{"dashed whole and fraction", "4-3/4", Inches, 4.75, false},
		{"inch mark", "4 3/4\"", Inches, 4.75, false},
		{"inch word", "3/8 in", Inches, 0.375, false},
		{"inches word", "2 inches", Inches, 2, false},
		{"explicit mm", "120 mm", Inches, 120 / 25.4, false},
		{"mm no space", "25.4mm", Inches, 1, false},
		{"mm uppercase", "50.8 MM", Inches, 2, false},
		{"default mm", "120", Millimeters, 120 / 25.4, false},
		{"unit overrides default", "1 in", Millimeters, 1, false},

		{"empty", "", Inches, 0, true},
		{"negative", "-4", Inches, 0, true},
		{"zero denominator", "1/0", Inches, 0, true},
		{"garbage", "about four", Inches, 0, true},
		{"unit only", "mm", Inches, 0, true},
		{"trailing junk", "4.72 bananas", Inches, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMeasurement(tt.input, tt.def)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMeasurement(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got-tt.want) > eps {
				t.Errorf("ParseMeasurement(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
