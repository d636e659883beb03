// Package render draws frame designs as vector graphics.
//
// # Overview
//
// This package turns a [frame.Design] into visual outputs. It provides:
//
//   - A scaled front view of the assembled frame ([FaceSVG])
//   - An assembly diagram of the material stack ([AssemblyDOT])
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Face View
//
// [FaceSVG] renders the frame as seen from the front, to scale: moulding,
// matboard, mat window, and artwork, with the rabbet overlaps drawn as
// translucent strips so the hidden material edges stay visible. Dimension
// callouts label the outside, inside, mat, and rabbet measurements.
//
//	svg := render.FaceSVG(d, render.WithScale(60))
//
// # Assembly Diagram
//
// [AssemblyDOT] emits a Graphviz DOT digraph of the physical stack held
// by the rabbet: glazing over mat over artwork over backing. The DOT
// string renders to SVG with [RenderSVG].
//
//	dot := render.AssemblyDOT(d, render.DOTOptions{Detailed: true})
//	svg, err := render.RenderSVG(dot)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg). They work on the
// output of both renderers.
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
