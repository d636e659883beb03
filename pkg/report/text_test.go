package report

import (
	"strings"
	"testing"

	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// testDesign is an 8x10 print behind a 2" mat in 3/4" moulding.
func testDesign(t *testing.T) frame.Design {
	t.Helper()
	d, err := frame.New(frame.Design{
		ArtworkHeight:      8,
		ArtworkWidth:       10,
		MatWidthTopBottom:  2,
		MatWidthSides:      2,
		MatOverlap:         0.125,
		RabbetDepth:        0.375,
		FrameMaterialWidth: 0.75,
		FrameMaterialDepth: 0.75,
		GlazingThickness:   0.093,
		MatboardThickness:  0.055,
		ArtworkThickness:   0.008,
		BackingThickness:   0.125,
		AssemblyMargin:     0.125,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return d
}

const wantSummary = `==================================================
FRAME DESIGN SUMMARY
==================================================

ARTWORK DIMENSIONS
------------------------------
  Height: 8"
  Width:  10"

CUT LIST
------------------------------
  Top & Bottom: 2x 15 1/4" (15.25") (inside: 13 3/4" (13.75"))
  Left & Right: 2x 13 1/4" (13.25") (inside: 11 3/4" (11.75"))

MATERIAL REQUIREMENTS
------------------------------
  Total Wood Length: 57 3/4" (57.75")
    (includes 1/8" (0.125") blade kerf + 1/16" (0.062") error margin per piece)

FRAME DIMENSIONS
------------------------------
  Inside:  11 3/4" (11.75") H x 13 3/4" (13.75") W
  Outside: 13 1/4" (13.25") H x 15 1/4" (15.25") W

MATBOARD DETAILS
------------------------------
  Matboard Size: 12 1/2" (12.5") H x 14 1/2" (14.5") W
  Mat Opening:   7 3/4" (7.75") H x 9 3/4" (9.75") W
  Visual Mat Width: 2"
  Mat Border Cut Width: 2 3/8" (2.375") (visual + 3/8" (0.375") rabbet)

DEPTH REQUIREMENTS (Z-AXIS)
------------------------------
  Required Depth: 3/8 + 1/32" (0.406")
  Available Depth: 3/4" (0.75")
  Clearance: 3/8 - 1/32" (0.344")

SPECIFICATIONS
------------------------------
  Frame Material Width: 3/4" (0.75")
  Frame Material Depth: 3/4" (0.75")
  Rabbet Depth (x/y): 3/8" (0.375")
  Mat Overlap: 1/8" (0.125")
  Assembly Margin: 1/8" (0.125")
  Blade Width (kerf): 1/8" (0.125")

  Material Thicknesses:
    Glazing:  1/8 - 1/32" (0.093")
    Matboard: 1/16" (0.055")
    Artwork:  1/32" (0.008")
    Backing:  1/8" (0.125")

==================================================`

func TestTextSummary(t *testing.T) {
	got := Build(testDesign(t), Options{}).Text()

	gotLines := strings.Split(got, "\n")
	wantLines := strings.Split(wantSummary, "\n")
	for i := range wantLines {
		if i >= len(gotLines) {
			t.Fatalf("output truncated at line %d, want %q", i, wantLines[i])
		}
		if gotLines[i] != wantLines[i] {
			t.Fatalf("line %d:\ngot  %q\nwant %q", i, gotLines[i], wantLines[i])
		}
	}
	if len(gotLines) != len(wantLines) {
		t.Fatalf("got %d lines, want %d", len(gotLines), len(wantLines))
	}
}

func TestTextNoMatOmitsMatboardSection(t *testing.T) {
	d := testDesign(t)
	d.MatWidthTopBottom = 0
	d.MatWidthSides = 0

	got := Build(d, Options{}).Text()
	if strings.Contains(got, "MATBOARD DETAILS") {
		t.Error("unmatted design still renders MATBOARD DETAILS")
	}
	if !strings.Contains(got, "DEPTH REQUIREMENTS (Z-AXIS)") {
		t.Error("depth section missing")
	}
}

func TestTextDepthWarning(t *testing.T) {
	d := testDesign(t)
	d.MatWidthTopBottom = 0
	d.MatWidthSides = 0
	d.FrameMaterialDepth = 0.25

	got := Build(d, Options{}).Text()
	want := `  *** WARNING: Frame is 1/8 - 1/32" (0.101") too shallow! ***`
	if !strings.Contains(got, want) {
		t.Errorf("missing warning line %q in:\n%s", want, got)
	}
	if strings.Contains(got, "Clearance:") {
		t.Error("shallow frame still renders a clearance line")
	}
}

func TestTextAsymmetricMat(t *testing.T) {
	d := testDesign(t)
	d.MatWidthSides = 1.5

	got := Build(d, Options{}).Text()
	wantVisual := `  Visual Mat Width: 2" top/bottom, 1 1/2" (1.5") sides`
	wantCut := `  Mat Border Cut Width: 2 3/8" (2.375") top/bottom, 1 7/8" (1.875") sides (visual + 3/8" (0.375") rabbet)`
	if !strings.Contains(got, wantVisual) {
		t.Errorf("missing %q in:\n%s", wantVisual, got)
	}
	if !strings.Contains(got, wantCut) {
		t.Errorf("missing %q in:\n%s", wantCut, got)
	}
}

func TestTextMillimeters(t *testing.T) {
	got := Build(testDesign(t), Options{Unit: units.Millimeters}).Text()

	for _, want := range []string{
		"  Height: 203.2 mm",
		"  Width:  254 mm",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\"") {
		t.Error("millimeter summary still contains inch marks")
	}
}
