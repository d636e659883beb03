package frame

import (
	"testing"

	"github.com/framewright/framewright/pkg/errors"
)

func TestSizeString(t *testing.T) {
	tests := []struct {
		size Size
		want string
	}{
		{Size{Name: "8×10", Height: 8, Width: 10}, `8×10 (8.0" × 10.0")`},
		{Size{Name: "Letter", Height: 8.5, Width: 11}, `Letter (8.5" × 11.0")`},
		{Size{Name: "odd", Height: 8.25, Width: 10.125}, `odd (8.25" × 10.125")`},
	}
	for _, tt := range tests {
		if got := tt.size.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStandardSizes(t *testing.T) {
	sizes := StandardSizes()
	if len(sizes) != 8 {
		t.Fatalf("len(StandardSizes) = %d, want 8", len(sizes))
	}
	if sizes[0].Name != "4×6" || sizes[len(sizes)-1].Name != "20×30" {
		t.Errorf("catalog bounds = %q..%q, want 4×6..20×30", sizes[0].Name, sizes[len(sizes)-1].Name)
	}
	for _, s := range sizes {
		if s.Height >= s.Width {
			t.Errorf("%s: height %v not below width %v", s.Name, s.Height, s.Width)
		}
	}
}

func TestGenerateSizes(t *testing.T) {
	tests := []struct {
		name                                     string
		aspectH, aspectW, minLong, maxLong, step float64
		want                                     []Size
	}{
		{
			name:    "four by six defaults",
			aspectH: 4, aspectW: 6, minLong: 6, maxLong: 20, step: 0.5,
			want: []Size{
				{Name: "4×6", Height: 4, Width: 6},
				{Name: "6×9", Height: 6, Width: 9},
				{Name: "8×12", Height: 8, Width: 12},
				{Name: "10×15", Height: 10, Width: 15},
				{Name: "12×18", Height: 12, Width: 18},
			},
		},
		{
			name:    "five by seven keeps fractional labels",
			aspectH: 5, aspectW: 7, minLong: 6, maxLong: 20, step: 0.5,
			want: []Size{
				{Name: "5×7", Height: 5, Width: 7},
				{Name: "7.5×10.5", Height: 7.5, Width: 10.5},
				{Name: "10×14", Height: 10, Width: 14},
				{Name: "12.5×17.5", Height: 12.5, Width: 17.5},
			},
		},
		{
			name:    "empty when bounds exclude everything",
			aspectH: 4, aspectW: 6, minLong: 30, maxLong: 20, step: 0.5,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSizes(tt.aspectH, tt.aspectW, tt.minLong, tt.maxLong, tt.step)
			if err != nil {
				t.Fatalf("GenerateSizes error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (got %v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Name != tt.want[i].Name ||
					!near(got[i].Height, tt.want[i].Height) ||
					!near(got[i].Width, tt.want[i].Width) {
					t.Errorf("size[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateSizesScalesMinimum(t *testing.T) {
	// A long-edge floor above the base aspect scales the first entry up.
	sizes, err := GenerateSizes(4, 6, 8, 20, 1)
	if err != nil {
		t.Fatalf("GenerateSizes error = %v", err)
	}
	if len(sizes) == 0 {
		t.Fatal("GenerateSizes returned no sizes")
	}
	first := sizes[0]
	if first.Name != "5.3×8" {
		t.Errorf("first size name = %q, want 5.3×8", first.Name)
	}
	if !near(first.Width, 8) {
		t.Errorf("first size width = %v, want 8", first.Width)
	}
}

func TestGenerateSizesValidation(t *testing.T) {
	if _, err := GenerateSizes(0, 6, 6, 20, 0.5); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("zero aspect: error = %v, want %s", err, errors.ErrCodeInvalidDimension)
	}
	if _, err := GenerateSizes(4, 6, 6, 20, 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero increment: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
