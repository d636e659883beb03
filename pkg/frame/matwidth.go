package frame

import "math"

// =============================================================================
// Visual Mat Width Suggestion
// =============================================================================

// Mat suggestion tuning. The ratios encode what tends to look
// balanced: roughly 2" of mat on a 15" print, 2.5" on a 20" frame.
const (
	artworkMatRatio = 2.0 / 15.0
	frameMatRatio   = 2.5 / 20.0
	minSuggestedMat = 0.5
	maxSuggestedMat = 10.0
	matWidthStep    = 0.25
)

// MatBasis identifies which rule drove a suggested mat width.
type MatBasis string

// Suggestion sources.
const (
	MatBasisFrame   MatBasis = "frame"
	MatBasisArtwork MatBasis = "artwork"
)

// SuggestMatWidth proposes a visually balanced mat width for the
// design. It sizes one candidate from the artwork's long edge and one
// from the frame's outside long edge, clamps both to [0.5, 10] inches,
// rounds half-up to quarter inches, and returns the larger together
// with the rule that produced it. The frame rule wins ties.
//
// A mat proportional only to the artwork can look too thin against a
// large physical frame, so the frame candidate acts as a floor.
func SuggestMatWidth(d Design) (float64, MatBasis) {
	oh, ow := d.OutsideDimensions()
	frameEdge := math.Max(oh, ow)
	artworkEdge := math.Max(d.ArtworkHeight, d.ArtworkWidth)
	return suggestFromEdges(artworkEdge, frameEdge)
}

// SuggestMatWidthFor proposes a mat width for raw artwork dimensions.
// The frame edge is estimated by dressing the artwork in the default
// mat and moulding.
func SuggestMatWidthFor(height, width float64) (float64, MatBasis, error) {
	d := Default()
	d.ArtworkHeight = height
	d.ArtworkWidth = width
	d, err := New(d)
	if err != nil {
		return 0, "", err
	}
	suggested, basis := SuggestMatWidth(d)
	return suggested, basis, nil
}

func suggestFromEdges(artworkEdge, frameEdge float64) (float64, MatBasis) {
	artworkMat := clamp(artworkEdge*artworkMatRatio, minSuggestedMat, maxSuggestedMat)
	frameMat := clamp(frameEdge*frameMatRatio, minSuggestedMat, maxSuggestedMat)

	artworkMat = roundHalfUpToStep(artworkMat, matWidthStep)
	frameMat = roundHalfUpToStep(frameMat, matWidthStep)

	if frameMat >= artworkMat {
		return frameMat, MatBasisFrame
	}
	return artworkMat, MatBasisArtwork
}

// roundHalfUpToStep rounds to the nearest step multiple with halves
// rounding up, so 0.625 snaps to 0.75 rather than 0.5.
func roundHalfUpToStep(v, step float64) float64 {
	return math.Floor(v/step+0.5) * step
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
