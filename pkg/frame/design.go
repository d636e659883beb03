package frame

import (
	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/units"
)

// =============================================================================
// Defaults - Single Source of Truth
// =============================================================================

// Default dimensions in inches: a 12.5×18.75 print behind a 2" mat in
// 3/4" moulding stock.
const (
	DefaultArtworkHeight = 12.5
	DefaultArtworkWidth  = 18.75
	DefaultMatWidth      = 2.0
	DefaultMatOverlap    = 0.125
	DefaultFrameWidth    = 0.75  // moulding face width
	DefaultFrameDepth    = 0.75  // moulding stock depth (z-axis)
	DefaultRabbetDepth   = 0.375 // rabbet extension in the x/y plane
)

// Default material thicknesses along the z-axis, in inches.
const (
	DefaultGlazingThickness  = 0.093 // ~3/32" glass or acrylic
	DefaultMatboardThickness = 0.055 // 4-ply matboard
	DefaultArtworkThickness  = 0.008 // photo paper or thin print
	DefaultBackingThickness  = 0.125 // 1/8" foam core or hardboard
	DefaultAssemblyMargin    = 0.125 // z-axis clearance for fitting
)

// Cutting allowances in inches.
const (
	DefaultBladeWidth  = 0.125  // 1/8" saw kerf
	DefaultSawMargin   = 0.125  // stock lost to the blade per piece
	DefaultErrorMargin = 0.0625 // 1/16" fitting margin per piece
)

// =============================================================================
// Design - Frame Design Value Object
// =============================================================================

// Design describes one frame build: the artwork it holds, the mat
// around it, and the moulding stock it is cut from. All dimensions are
// inches; height always comes before width.
//
// Construct designs with [New], which normalizes and validates the
// fields. A Design returned by New is treated as immutable and every
// derivation is a pure function of its fields.
type Design struct {
	ArtworkHeight float64 `json:"artwork_height" bson:"artwork_height" toml:"artwork_height"`
	ArtworkWidth  float64 `json:"artwork_width" bson:"artwork_width" toml:"artwork_width"`

	// Visible mat borders. Zero on both axes means no mat at all.
	MatWidthTopBottom float64 `json:"mat_width_top_bottom" bson:"mat_width_top_bottom" toml:"mat_width_top_bottom"`
	MatWidthSides     float64 `json:"mat_width_sides" bson:"mat_width_sides" toml:"mat_width_sides"`

	// MatOverlap is how far the mat covers the artwork edge on each side.
	MatOverlap float64 `json:"mat_overlap" bson:"mat_overlap" toml:"mat_overlap"`

	// RabbetDepth is the rabbet extension in the x/y plane on each side.
	RabbetDepth float64 `json:"rabbet_depth" bson:"rabbet_depth" toml:"rabbet_depth"`

	// FrameMaterialWidth is the visible moulding face width. Zero means
	// "use FrameMaterialDepth".
	FrameMaterialWidth float64 `json:"frame_material_width" bson:"frame_material_width" toml:"frame_material_width"`

	// FrameMaterialDepth is the moulding stock depth along the z-axis.
	FrameMaterialDepth float64 `json:"frame_material_depth" bson:"frame_material_depth" toml:"frame_material_depth"`

	// Material thicknesses along the z-axis.
	GlazingThickness  float64 `json:"glazing_thickness" bson:"glazing_thickness" toml:"glazing_thickness"`
	MatboardThickness float64 `json:"matboard_thickness" bson:"matboard_thickness" toml:"matboard_thickness"`
	ArtworkThickness  float64 `json:"artwork_thickness" bson:"artwork_thickness" toml:"artwork_thickness"`
	BackingThickness  float64 `json:"backing_thickness" bson:"backing_thickness" toml:"backing_thickness"`

	// AssemblyMargin is extra z-axis clearance for fitting the stack.
	AssemblyMargin float64 `json:"assembly_margin" bson:"assembly_margin" toml:"assembly_margin"`

	// SymmetricalMat forces MatWidthSides to follow MatWidthTopBottom.
	SymmetricalMat bool `json:"symmetrical_mat" bson:"symmetrical_mat" toml:"symmetrical_mat"`

	// NoArtworkMargin cuts the mat opening to the exact artwork size
	// instead of overlapping the artwork edge.
	NoArtworkMargin bool `json:"no_artwork_margin" bson:"no_artwork_margin" toml:"no_artwork_margin"`
}

// Default returns a fully populated design with common moulding and
// material defaults.
func Default() Design {
	return Design{
		ArtworkHeight:      DefaultArtworkHeight,
		ArtworkWidth:       DefaultArtworkWidth,
		MatWidthTopBottom:  DefaultMatWidth,
		MatWidthSides:      DefaultMatWidth,
		MatOverlap:         DefaultMatOverlap,
		RabbetDepth:        DefaultRabbetDepth,
		FrameMaterialWidth: DefaultFrameWidth,
		FrameMaterialDepth: DefaultFrameDepth,
		GlazingThickness:   DefaultGlazingThickness,
		MatboardThickness:  DefaultMatboardThickness,
		ArtworkThickness:   DefaultArtworkThickness,
		BackingThickness:   DefaultBackingThickness,
		AssemblyMargin:     DefaultAssemblyMargin,
		SymmetricalMat:     true,
	}
}

// New normalizes and validates a design:
//
//   - FrameMaterialWidth of zero falls back to FrameMaterialDepth.
//   - SymmetricalMat forces MatWidthSides to MatWidthTopBottom.
//   - NoArtworkMargin zeroes MatOverlap.
//
// Artwork dimensions must be positive; every other dimension must be
// non-negative.
func New(d Design) (Design, error) {
	if d.FrameMaterialWidth <= 0 {
		d.FrameMaterialWidth = d.FrameMaterialDepth
	}

	if err := errors.ValidateDimension("artwork_height", d.ArtworkHeight); err != nil {
		return Design{}, err
	}
	if err := errors.ValidateDimension("artwork_width", d.ArtworkWidth); err != nil {
		return Design{}, err
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"mat_width_top_bottom", d.MatWidthTopBottom},
		{"mat_width_sides", d.MatWidthSides},
		{"mat_overlap", d.MatOverlap},
		{"rabbet_depth", d.RabbetDepth},
		{"frame_material_width", d.FrameMaterialWidth},
		{"frame_material_depth", d.FrameMaterialDepth},
		{"glazing_thickness", d.GlazingThickness},
		{"matboard_thickness", d.MatboardThickness},
		{"artwork_thickness", d.ArtworkThickness},
		{"backing_thickness", d.BackingThickness},
		{"assembly_margin", d.AssemblyMargin},
	}
	for _, f := range nonNegative {
		if err := errors.ValidateNonNegative(f.field, f.value); err != nil {
			return Design{}, err
		}
	}

	if d.SymmetricalMat {
		d.MatWidthSides = d.MatWidthTopBottom
	}
	if d.NoArtworkMargin {
		d.MatOverlap = 0
	}

	return d, nil
}

// HasMat reports whether the design includes a mat on either axis.
func (d Design) HasMat() bool {
	return d.MatWidthSides > 0 || d.MatWidthTopBottom > 0
}

// addBorder grows both dimensions by the border width on each side.
func addBorder(height, width, border float64) (float64, float64) {
	return height + 2*border, width + 2*border
}

// =============================================================================
// Derived Dimensions
// =============================================================================

// MatOpening returns the dimensions of the window cut into the
// matboard. The opening undercuts the artwork by MatOverlap on each
// side so the mat holds the artwork edge, unless NoArtworkMargin is
// set, in which case it matches the artwork exactly.
func (d Design) MatOpening() (height, width float64) {
	if d.NoArtworkMargin {
		return d.ArtworkHeight, d.ArtworkWidth
	}
	return d.ArtworkHeight - 2*d.MatOverlap, d.ArtworkWidth - 2*d.MatOverlap
}

// VisibleDimensions returns the face opening seen from the front:
// the mat opening plus the visible mat borders, or the bare artwork
// dimensions when the design has no mat.
func (d Design) VisibleDimensions() (height, width float64) {
	if !d.HasMat() {
		return d.ArtworkHeight, d.ArtworkWidth
	}
	oh, ow := d.MatOpening()
	return oh + 2*d.MatWidthTopBottom, ow + 2*d.MatWidthSides
}

// InsideDimensions returns the frame's inside (cut) dimensions, which
// match the visible face opening.
func (d Design) InsideDimensions() (height, width float64) {
	return d.VisibleDimensions()
}

// OutsideDimensions returns the finished outer frame dimensions: the
// inside opening plus the moulding face on each side.
func (d Design) OutsideDimensions() (height, width float64) {
	h, w := d.InsideDimensions()
	return addBorder(h, w, d.FrameMaterialWidth)
}

// MatboardDimensions returns the physical matboard size. The board
// extends into the rabbet on every side.
func (d Design) MatboardDimensions() (height, width float64) {
	h, w := d.InsideDimensions()
	return addBorder(h, w, d.RabbetDepth)
}

// MatboardCutWidths returns the mat border strip widths as cut: the
// visible border plus the rabbet portion hidden under the frame. The
// border meets the rabbet on its outer edge only, so the rabbet depth
// is added once.
func (d Design) MatboardCutWidths() (topBottom, sides float64) {
	return d.MatWidthTopBottom + d.RabbetDepth, d.MatWidthSides + d.RabbetDepth
}

// RabbetZRequired returns the z-axis depth the rabbet must provide to
// hold the full material stack: glazing, artwork, backing, the
// matboard when present, plus the assembly margin.
func (d Design) RabbetZRequired() float64 {
	total := d.GlazingThickness + d.ArtworkThickness + d.BackingThickness
	if d.HasMat() {
		total += d.MatboardThickness
	}
	return total + d.AssemblyMargin
}

// DepthClearance returns how much moulding stock depth remains after
// the material stack: FrameMaterialDepth minus [Design.RabbetZRequired].
// Negative means the stock is too shallow for the build.
func (d Design) DepthClearance() float64 {
	return d.FrameMaterialDepth - d.RabbetZRequired()
}

// =============================================================================
// Millimeter Summary
// =============================================================================

// MMPair holds one height/width pair in millimeters.
type MMPair struct {
	Height float64 `json:"height" bson:"height"`
	Width  float64 `json:"width" bson:"width"`
}

// MMDimensions collects the key design dimensions converted to
// millimeters. Matboard and MatOpening are nil when the design has no
// mat.
type MMDimensions struct {
	Artwork      MMPair  `json:"artwork" bson:"artwork"`
	FrameInside  MMPair  `json:"frame_inside" bson:"frame_inside"`
	FrameOutside MMPair  `json:"frame_outside" bson:"frame_outside"`
	Matboard     *MMPair `json:"matboard,omitempty" bson:"matboard,omitempty"`
	MatOpening   *MMPair `json:"mat_opening,omitempty" bson:"mat_opening,omitempty"`
}

// DimensionsInMM converts the key derived dimensions to millimeters.
func (d Design) DimensionsInMM() MMDimensions {
	toMM := func(h, w float64) MMPair {
		return MMPair{Height: units.InchesToMM(h), Width: units.InchesToMM(w)}
	}

	out := MMDimensions{
		Artwork:      toMM(d.ArtworkHeight, d.ArtworkWidth),
		FrameInside:  toMM(d.InsideDimensions()),
		FrameOutside: toMM(d.OutsideDimensions()),
	}
	if d.HasMat() {
		matboard := toMM(d.MatboardDimensions())
		opening := toMM(d.MatOpening())
		out.Matboard = &matboard
		out.MatOpening = &opening
	}
	return out
}
