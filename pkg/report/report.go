// Package report assembles complete cut sheets for a frame design.
//
// A Report captures every derived dimension for one design at one set of
// shop parameters (blade kerf, error margin, display unit), ready for
// JSON serialization or text rendering:
//
//	rep := report.Build(design, report.Options{Unit: units.Inches})
//	fmt.Println(rep.Text())
package report

import (
	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// Options configure how a report is computed and displayed.
// The zero value means inches with the standard shop allowances.
type Options struct {
	// Unit selects the display unit for text renderings.
	Unit units.Unit `json:"unit,omitempty"`

	// BladeWidth is the saw kerf consumed by each cut, in inches.
	BladeWidth float64 `json:"blade_width,omitempty"`

	// ErrorMargin is the per-piece cutting allowance, in inches.
	ErrorMargin float64 `json:"error_margin,omitempty"`
}

// SetDefaults fills unset fields with the standard shop values.
func (o *Options) SetDefaults() {
	if o.Unit == "" {
		o.Unit = units.Inches
	}
	if o.BladeWidth == 0 {
		o.BladeWidth = frame.DefaultBladeWidth
	}
	if o.ErrorMargin == 0 {
		o.ErrorMargin = frame.DefaultErrorMargin
	}
}

// Pair is a height and width in inches.
type Pair struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Matboard describes the mat cuts for a matted design.
type Matboard struct {
	// Board is the full matboard blank, sized to the rabbet opening.
	Board Pair `json:"board"`

	// Opening is the window cut into the board.
	Opening Pair `json:"opening"`

	// Visual widths are the exposed mat borders seen from the front.
	VisualWidthTopBottom float64 `json:"visual_width_top_bottom"`
	VisualWidthSides     float64 `json:"visual_width_sides"`

	// Cut widths are the border widths marked on the board itself,
	// visual width plus the rabbet lip the frame covers.
	CutWidthTopBottom float64 `json:"cut_width_top_bottom"`
	CutWidthSides     float64 `json:"cut_width_sides"`
}

// Report is a complete cut sheet for one frame design.
type Report struct {
	Unit   units.Unit   `json:"unit"`
	Design frame.Design `json:"design"`

	Artwork      Pair `json:"artwork"`
	FrameInside  Pair `json:"frame_inside"`
	FrameOutside Pair `json:"frame_outside"`

	Matboard *Matboard `json:"matboard,omitempty"`

	CutList         frame.CutList `json:"cut_list"`
	TotalWoodLength float64       `json:"total_wood_length"`
	BladeWidth      float64       `json:"blade_width"`
	ErrorMargin     float64       `json:"error_margin"`

	RequiredDepth  float64 `json:"required_depth"`
	AvailableDepth float64 `json:"available_depth"`
	DepthClearance float64 `json:"depth_clearance"`

	AspectRatio       string         `json:"aspect_ratio"`
	SuggestedMatWidth float64        `json:"suggested_mat_width"`
	SuggestedMatBasis frame.MatBasis `json:"suggested_mat_basis"`

	DimensionsMM frame.MMDimensions `json:"dimensions_mm"`
}

// Build derives the full cut sheet for d.
//
// d is taken as already normalized; run user input through [frame.New]
// first.
func Build(d frame.Design, opts Options) Report {
	opts.SetDefaults()

	r := Report{
		Unit:            opts.Unit,
		Design:          d,
		BladeWidth:      opts.BladeWidth,
		ErrorMargin:     opts.ErrorMargin,
		CutList:         d.CutList(),
		TotalWoodLength: d.TotalWoodLength(opts.BladeWidth, opts.ErrorMargin),
		RequiredDepth:   d.RabbetZRequired(),
		AvailableDepth:  d.FrameMaterialDepth,
		DepthClearance:  d.DepthClearance(),
		AspectRatio:     format.Ratio(d.ArtworkHeight, d.ArtworkWidth),
		DimensionsMM:    d.DimensionsInMM(),
	}
	r.Artwork = Pair{Height: d.ArtworkHeight, Width: d.ArtworkWidth}
	r.FrameInside.Height, r.FrameInside.Width = d.InsideDimensions()
	r.FrameOutside.Height, r.FrameOutside.Width = d.OutsideDimensions()
	r.SuggestedMatWidth, r.SuggestedMatBasis = frame.SuggestMatWidth(d)

	if d.HasMat() {
		mb := Matboard{
			VisualWidthTopBottom: d.MatWidthTopBottom,
			VisualWidthSides:     d.MatWidthSides,
		}
		mb.Board.Height, mb.Board.Width = d.MatboardDimensions()
		mb.Opening.Height, mb.Opening.Width = d.MatOpening()
		mb.CutWidthTopBottom, mb.CutWidthSides = d.MatboardCutWidths()
		r.Matboard = &mb
	}

	return r
}
