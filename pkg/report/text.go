package report

import (
	"fmt"
	"strings"

	"github.com/framewright/framewright/pkg/format"
)

const (
	bannerWidth = 50
	ruleWidth   = 30
)

// Text renders the cut sheet with the default display settings for the
// report's unit.
func (r Report) Text() string {
	return r.Render(format.DefaultOptions(r.Unit))
}

// Render produces the printable cut sheet using fo for every measurement.
//
// Sections appear in shop order: artwork, cut list, material totals,
// frame dimensions, matboard details for matted designs, the depth
// check, and the full specification block. A design whose contents
// stack deeper than the rabbet gets a warning in the depth section in
// place of the clearance line.
func (r Report) Render(fo format.Options) string {
	v := fo.Value
	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("-", ruleWidth)

	var lines []string
	add := func(s string) { lines = append(lines, s) }
	addf := func(f string, args ...any) { lines = append(lines, fmt.Sprintf(f, args...)) }

	add(banner)
	add("FRAME DESIGN SUMMARY")
	add(banner)
	add("")

	add("ARTWORK DIMENSIONS")
	add(rule)
	addf("  Height: %s", v(r.Artwork.Height))
	addf("  Width:  %s", v(r.Artwork.Width))
	add("")

	add("CUT LIST")
	add(rule)
	for _, p := range r.CutList.Horizontal {
		addf("  Top & Bottom: %dx %s (inside: %s)", p.Quantity, v(p.OutsideLength), v(p.InsideLength))
	}
	for _, p := range r.CutList.Vertical {
		addf("  Left & Right: %dx %s (inside: %s)", p.Quantity, v(p.OutsideLength), v(p.InsideLength))
	}
	add("")

	add("MATERIAL REQUIREMENTS")
	add(rule)
	addf("  Total Wood Length: %s", v(r.TotalWoodLength))
	addf("    (includes %s blade kerf + %s error margin per piece)", v(r.BladeWidth), v(r.ErrorMargin))
	add("")

	add("FRAME DIMENSIONS")
	add(rule)
	addf("  Inside:  %s H x %s W", v(r.FrameInside.Height), v(r.FrameInside.Width))
	addf("  Outside: %s H x %s W", v(r.FrameOutside.Height), v(r.FrameOutside.Width))
	add("")

	if mb := r.Matboard; mb != nil {
		add("MATBOARD DETAILS")
		add(rule)
		addf("  Matboard Size: %s H x %s W", v(mb.Board.Height), v(mb.Board.Width))
		addf("  Mat Opening:   %s H x %s W", v(mb.Opening.Height), v(mb.Opening.Width))
		if mb.VisualWidthTopBottom == mb.VisualWidthSides {
			addf("  Visual Mat Width: %s", v(mb.VisualWidthTopBottom))
			addf("  Mat Border Cut Width: %s (visual + %s rabbet)",
				v(mb.CutWidthTopBottom), v(r.Design.RabbetDepth))
		} else {
			addf("  Visual Mat Width: %s top/bottom, %s sides",
				v(mb.VisualWidthTopBottom), v(mb.VisualWidthSides))
			addf("  Mat Border Cut Width: %s top/bottom, %s sides (visual + %s rabbet)",
				v(mb.CutWidthTopBottom), v(mb.CutWidthSides), v(r.Design.RabbetDepth))
		}
		add("")
	}

	add("DEPTH REQUIREMENTS (Z-AXIS)")
	add(rule)
	addf("  Required Depth: %s", v(r.RequiredDepth))
	addf("  Available Depth: %s", v(r.AvailableDepth))
	if r.RequiredDepth > r.AvailableDepth {
		addf("  *** WARNING: Frame is %s too shallow! ***", v(r.RequiredDepth-r.AvailableDepth))
	} else {
		addf("  Clearance: %s", v(r.DepthClearance))
	}
	add("")

	add("SPECIFICATIONS")
	add(rule)
	addf("  Frame Material Width: %s", v(r.Design.FrameMaterialWidth))
	addf("  Frame Material Depth: %s", v(r.Design.FrameMaterialDepth))
	addf("  Rabbet Depth (x/y): %s", v(r.Design.RabbetDepth))
	addf("  Mat Overlap: %s", v(r.Design.MatOverlap))
	addf("  Assembly Margin: %s", v(r.Design.AssemblyMargin))
	addf("  Blade Width (kerf): %s", v(r.BladeWidth))
	add("")
	add("  Material Thicknesses:")
	addf("    Glazing:  %s", v(r.Design.GlazingThickness))
	addf("    Matboard: %s", v(r.Design.MatboardThickness))
	addf("    Artwork:  %s", v(r.Design.ArtworkThickness))
	addf("    Backing:  %s", v(r.Design.BackingThickness))
	add("")
	add(banner)

	return strings.Join(lines, "\n")
}
