package frame

// =============================================================================
// Cut List - Moulding Pieces
// =============================================================================

// CutPiece describes one group of identical moulding pieces. Lengths
// are the long edges of the mitred piece: InsideLength along the frame
// opening, OutsideLength along the finished outer edge.
type CutPiece struct {
	Quantity      int     `json:"quantity" bson:"quantity"`
	InsideLength  float64 `json:"inside_length" bson:"inside_length"`
	OutsideLength float64 `json:"outside_length" bson:"outside_length"`
	Width         float64 `json:"width" bson:"width"`
}

// CutList groups the moulding pieces for one frame. A frame is always
// a four-piece rectangular build: two horizontal rails and two
// vertical stiles.
type CutList struct {
	Horizontal []CutPiece `json:"horizontal_pieces" bson:"horizontal_pieces"`
	Vertical   []CutPiece `json:"vertical_pieces" bson:"vertical_pieces"`
}

// CutList returns the moulding pieces needed to build the frame.
// Horizontal pieces run along the width axis, vertical pieces along
// the height axis.
func (d Design) CutList() CutList {
	ih, iw := d.InsideDimensions()
	oh, ow := d.OutsideDimensions()
	return CutList{
		Horizontal: []CutPiece{{
			Quantity:      2,
			InsideLength:  iw,
			OutsideLength: ow,
			Width:         d.FrameMaterialWidth,
		}},
		Vertical: []CutPiece{{
			Quantity:      2,
			InsideLength:  ih,
			OutsideLength: oh,
			Width:         d.FrameMaterialWidth,
		}},
	}
}

// TotalWoodLength estimates the moulding stock needed to build the
// frame: the outer perimeter plus a saw and error margin for each of
// the four pieces. [DefaultSawMargin] and [DefaultErrorMargin] are the
// usual allowances.
func (d Design) TotalWoodLength(sawMargin, errorMargin float64) float64 {
	oh, ow := d.OutsideDimensions()
	return 2*(ow+oh) + 4*(sawMargin+errorMargin)
}
