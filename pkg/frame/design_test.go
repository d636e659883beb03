package frame

import (
	"math"
	"testing"

	"github.com/framewright/framewright/pkg/errors"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func mustNew(t *testing.T, d Design) Design {
	t.Helper()
	out, err := New(d)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return out
}

func TestNewNormalization(t *testing.T) {
	tests := []struct {
		name  string
		in    Design
		check func(t *testing.T, d Design)
	}{
		{
			name: "zero frame width inherits stock depth",
			in:   Design{ArtworkHeight: 8, ArtworkWidth: 10, FrameMaterialDepth: 0.75},
			check: func(t *testing.T, d Design) {
				if !near(d.FrameMaterialWidth, 0.75) {
					t.Errorf("FrameMaterialWidth = %v, want 0.75", d.FrameMaterialWidth)
				}
			},
		},
		{
			name: "symmetrical mat forces sides to top bottom",
			in: Design{
				ArtworkHeight: 8, ArtworkWidth: 10,
				MatWidthTopBottom: 2, MatWidthSides: 3,
				SymmetricalMat: true,
			},
			check: func(t *testing.T, d Design) {
				if !near(d.MatWidthSides, 2) {
					t.Errorf("MatWidthSides = %v, want 2", d.MatWidthSides)
				}
			},
		},
		{
			name: "asymmetric mat kept when flag off",
			in: Design{
				ArtworkHeight: 8, ArtworkWidth: 10,
				MatWidthTopBottom: 2, MatWidthSides: 3,
			},
			check: func(t *testing.T, d Design) {
				if !near(d.MatWidthSides, 3) {
					t.Errorf("MatWidthSides = %v, want 3", d.MatWidthSides)
				}
			},
		},
		{
			name: "no artwork margin zeroes the overlap",
			in: Design{
				ArtworkHeight: 8, ArtworkWidth: 10,
				MatOverlap: 0.125, NoArtworkMargin: true,
			},
			check: func(t *testing.T, d Design) {
				if d.MatOverlap != 0 {
					t.Errorf("MatOverlap = %v, want 0", d.MatOverlap)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, mustNew(t, tt.in))
		})
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		in   Design
	}{
		{"zero artwork height", Design{ArtworkHeight: 0, ArtworkWidth: 10}},
		{"negative artwork width", Design{ArtworkHeight: 8, ArtworkWidth: -1}},
		{"negative mat width", Design{ArtworkHeight: 8, ArtworkWidth: 10, MatWidthTopBottom: -2}},
		{"negative rabbet", Design{ArtworkHeight: 8, ArtworkWidth: 10, RabbetDepth: -0.375}},
		{"nan thickness", Design{ArtworkHeight: 8, ArtworkWidth: 10, GlazingThickness: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.in); !errors.Is(err, errors.ErrCodeInvalidDimension) {
				t.Errorf("New() error = %v, want code %s", err, errors.ErrCodeInvalidDimension)
			}
		})
	}
}

func TestDefaultDesignDerivations(t *testing.T) {
	d := mustNew(t, Default())

	checkPair := func(what string, gotH, gotW, wantH, wantW float64) {
		t.Helper()
		if !near(gotH, wantH) || !near(gotW, wantW) {
			t.Errorf("%s = (%v, %v), want (%v, %v)", what, gotH, gotW, wantH, wantW)
		}
	}

	h, w := d.MatOpening()
	checkPair("MatOpening", h, w, 12.25, 18.5)

	h, w = d.VisibleDimensions()
	checkPair("VisibleDimensions", h, w, 16.25, 22.5)

	h, w = d.InsideDimensions()
	checkPair("InsideDimensions", h, w, 16.25, 22.5)

	h, w = d.OutsideDimensions()
	checkPair("OutsideDimensions", h, w, 17.75, 24.0)

	h, w = d.MatboardDimensions()
	checkPair("MatboardDimensions", h, w, 17.0, 23.25)

	tb, sides := d.MatboardCutWidths()
	checkPair("MatboardCutWidths", tb, sides, 2.375, 2.375)

	if got := d.RabbetZRequired(); !near(got, 0.406) {
		t.Errorf("RabbetZRequired = %v, want 0.406", got)
	}
	if got := d.DepthClearance(); !near(got, 0.344) {
		t.Errorf("DepthClearance = %v, want 0.344", got)
	}
	if !d.HasMat() {
		t.Error("HasMat = false, want true")
	}
}

func TestNoMatDerivations(t *testing.T) {
	d := mustNew(t, Design{
		ArtworkHeight:      10,
		ArtworkWidth:       8,
		MatOverlap:         0.125,
		RabbetDepth:        0.375,
		FrameMaterialWidth: 1,
		FrameMaterialDepth: 0.75,
		GlazingThickness:   DefaultGlazingThickness,
		MatboardThickness:  DefaultMatboardThickness,
		ArtworkThickness:   DefaultArtworkThickness,
		BackingThickness:   DefaultBackingThickness,
		AssemblyMargin:     DefaultAssemblyMargin,
	})

	if d.HasMat() {
		t.Fatal("HasMat = true, want false")
	}

	h, w := d.VisibleDimensions()
	if !near(h, 10) || !near(w, 8) {
		t.Errorf("VisibleDimensions = (%v, %v), want artwork (10, 8)", h, w)
	}

	h, w = d.OutsideDimensions()
	if !near(h, 12) || !near(w, 10) {
		t.Errorf("OutsideDimensions = (%v, %v), want (12, 10)", h, w)
	}

	// Matboard thickness drops out of the stack without a mat.
	want := DefaultGlazingThickness + DefaultArtworkThickness + DefaultBackingThickness + DefaultAssemblyMargin
	if got := d.RabbetZRequired(); !near(got, want) {
		t.Errorf("RabbetZRequired = %v, want %v", got, want)
	}
}

func TestNoArtworkMarginOpening(t *testing.T) {
	d := mustNew(t, Design{
		ArtworkHeight: 10, ArtworkWidth: 8,
		MatWidthTopBottom: 2, MatWidthSides: 2,
		MatOverlap: 0.125, NoArtworkMargin: true,
		FrameMaterialDepth: 0.75,
	})

	h, w := d.MatOpening()
	if !near(h, 10) || !near(w, 8) {
		t.Errorf("MatOpening = (%v, %v), want exact artwork (10, 8)", h, w)
	}
	h, w = d.VisibleDimensions()
	if !near(h, 14) || !near(w, 12) {
		t.Errorf("VisibleDimensions = (%v, %v), want (14, 12)", h, w)
	}
}

func TestCutList(t *testing.T) {
	d := mustNew(t, Default())
	cl := d.CutList()

	if len(cl.Horizontal) != 1 || len(cl.Vertical) != 1 {
		t.Fatalf("cut list groups = (%d, %d), want (1, 1)", len(cl.Horizontal), len(cl.Vertical))
	}

	hp, vp := cl.Horizontal[0], cl.Vertical[0]
	if hp.Quantity != 2 || vp.Quantity != 2 {
		t.Errorf("quantities = (%d, %d), want (2, 2)", hp.Quantity, vp.Quantity)
	}
	if !near(hp.InsideLength, 22.5) || !near(hp.OutsideLength, 24.0) {
		t.Errorf("horizontal lengths = (%v, %v), want (22.5, 24)", hp.InsideLength, hp.OutsideLength)
	}
	if !near(vp.InsideLength, 16.25) || !near(vp.OutsideLength, 17.75) {
		t.Errorf("vertical lengths = (%v, %v), want (16.25, 17.75)", vp.InsideLength, vp.OutsideLength)
	}
	if !near(hp.Width, 0.75) || !near(vp.Width, 0.75) {
		t.Errorf("piece widths = (%v, %v), want moulding face 0.75", hp.Width, vp.Width)
	}
}

func TestTotalWoodLength(t *testing.T) {
	// 10×8 artwork, no mat, 1" moulding: perimeter 44 plus 0.75 margin.
	d := mustNew(t, Design{
		ArtworkHeight:      10,
		ArtworkWidth:       8,
		FrameMaterialWidth: 1,
		FrameMaterialDepth: 0.75,
	})

	if got := d.TotalWoodLength(DefaultSawMargin, DefaultErrorMargin); !near(got, 44.75) {
		t.Errorf("TotalWoodLength = %v, want 44.75", got)
	}
	if got := d.TotalWoodLength(0, 0); !near(got, 44) {
		t.Errorf("TotalWoodLength(0, 0) = %v, want bare perimeter 44", got)
	}
}

func TestDimensionsInMM(t *testing.T) {
	d := mustNew(t, Default())
	mm := d.DimensionsInMM()

	if !near(mm.Artwork.Height, 317.5) || !near(mm.Artwork.Width, 476.25) {
		t.Errorf("Artwork = %+v, want (317.5, 476.25)", mm.Artwork)
	}
	if !near(mm.FrameInside.Height, 412.75) || !near(mm.FrameInside.Width, 571.5) {
		t.Errorf("FrameInside = %+v, want (412.75, 571.5)", mm.FrameInside)
	}
	if mm.Matboard == nil || mm.MatOpening == nil {
		t.Fatal("Matboard/MatOpening nil for a matted design")
	}
	if !near(mm.MatOpening.Height, 311.15) {
		t.Errorf("MatOpening.Height = %v, want 311.15", mm.MatOpening.Height)
	}

	bare := mustNew(t, Design{ArtworkHeight: 10, ArtworkWidth: 8, FrameMaterialDepth: 0.75})
	mm = bare.DimensionsInMM()
	if mm.Matboard != nil || mm.MatOpening != nil {
		t.Error("Matboard/MatOpening set for a design with no mat")
	}
}

func TestDepthClearanceShortfall(t *testing.T) {
	d := mustNew(t, Design{
		ArtworkHeight: 10, ArtworkWidth: 8,
		MatWidthTopBottom: 2, MatWidthSides: 2, SymmetricalMat: true,
		FrameMaterialDepth: 0.25,
		GlazingThickness:   DefaultGlazingThickness,
		MatboardThickness:  DefaultMatboardThickness,
		ArtworkThickness:   DefaultArtworkThickness,
		BackingThickness:   DefaultBackingThickness,
		AssemblyMargin:     DefaultAssemblyMargin,
	})

	if got := d.DepthClearance(); got >= 0 {
		t.Errorf("DepthClearance = %v, want negative for shallow stock", got)
	}
}
