// Package frame models a picture frame build and derives every
// dimension needed to construct it.
//
// # Overview
//
// A [Design] captures the inputs a framer actually controls: artwork
// size, mat borders, moulding stock, rabbet, and the material stack
// thicknesses. Everything else is derived from those fields by pure
// methods, so a single Design yields a consistent, non-contradictory
// set of build dimensions:
//
//   - [Design.MatOpening]: the window cut into the matboard
//   - [Design.VisibleDimensions]: the face opening seen from the front
//   - [Design.InsideDimensions], [Design.OutsideDimensions]: frame cut sizes
//   - [Design.MatboardDimensions]: physical matboard size (into the rabbet)
//   - [Design.RabbetZRequired]: cavity depth needed for the material stack
//   - [Design.CutList], [Design.TotalWoodLength]: moulding pieces and stock
//
// All dimensions are inches, and height always comes before width.
//
// # Construction
//
// Build designs through [New], which normalizes the fields (symmetrical
// mat, zero moulding width falling back to stock depth) and validates
// them. A Design returned by New is treated as immutable: derivations
// never mutate it, and the same Design always derives the same values.
//
//	d, err := frame.New(frame.Design{
//		ArtworkHeight:     8,
//		ArtworkWidth:      10,
//		MatWidthTopBottom: 2,
//		SymmetricalMat:    true,
//	})
//
// [Default] returns a fully populated starting point with common
// moulding and material thicknesses.
//
// # Sizes and Mat Suggestions
//
// The package also carries the standard print size catalog ([Size],
// [StandardSizes], [GenerateSizes]) and the visual mat width heuristic
// ([SuggestMatWidth]), which proposes a mat border proportional to the
// artwork or the finished frame, whichever looks heavier.
//
// # Concurrency
//
// Designs are plain values and derivations are pure functions. Any
// number of goroutines may derive from the same Design concurrently.
package frame
