// Package pkg provides the core libraries for Framewright picture frame planning.
//
// # Overview
//
// Framewright turns an artwork measurement into a woodworking cut sheet: the
// moulding lengths, matboard dimensions, and stock requirements for building
// a picture frame around it. The pkg directory is organized into four main
// areas:
//
//  1. Measurement core - parsing, converting, and formatting shop measurements
//  2. Frame geometry - the dimension calculations themselves
//  3. Workbench - persistence for designs, sizes, and settings
//  4. Pipeline - orchestration (design → report → artifacts)
//
// # Architecture
//
// The typical data flow through Framewright:
//
//	Measurement input ("8 1/2", "450mm", "6-3/4")
//	         ↓
//	    [units] package (parse + convert)
//	         ↓
//	    [frame] package (normalize design, derive geometry)
//	         ↓
//	    [report] package (assemble the cut sheet)
//	         ↓
//	    [format] / [render] packages (tape text, SVG, DOT)
//	         ↓
//	    text/JSON/SVG/PDF/PNG output
//
// # Quick Start
//
// Describe the artwork and build a cut sheet:
//
//	import (
//	    "github.com/framewright/framewright/pkg/format"
//	    "github.com/framewright/framewright/pkg/frame"
//	    "github.com/framewright/framewright/pkg/report"
//	    "github.com/framewright/framewright/pkg/units"
//	)
//
//	// 1. Describe the artwork
//	d := frame.Default()
//	d.ArtworkHeight, _ = units.ParseMeasurement("8 1/2", units.Inches)
//	d.ArtworkWidth, _ = units.ParseMeasurement("11", units.Inches)
//	d, _ = frame.New(d)
//
//	// 2. Assemble the report
//	rep := report.Build(d, report.Options{})
//
//	// 3. Print it as a tape-measure cut sheet
//	fmt.Print(rep.Render(format.DefaultOptions(units.Inches)))
//
// # Main Packages
//
// ## Measurement Core
//
// [units] - Measurement parsing and unit conversion. Accepts decimals,
// fractions, mixed numbers, and dashed carpenter notation, in inches or
// millimeters, and rounds values onto measurement grids.
//
// [tape] - Rational approximation for tape measures. Converts decimal inches
// into the nearest fraction over the standard graduations (1/2 through 1/32)
// and splits awkward readings into a friendly base plus a small adjustment.
//
// [format] - Display formatting: plain decimals, tape fractions, dimension
// pairs, and aspect ratios, honoring per-unit precision.
//
// [aspect] - The aspect ratio lock that keeps height and width synchronized
// while one of them is edited.
//
// ## Frame Geometry
//
// [frame] - The domain core. Normalizes a [frame.Design], derives mat
// opening, matboard, glass, frame sides, and depth clearance, produces the
// 45° miter cut list, and estimates total stock. Also carries the standard
// print size catalog and the visual mat width suggestion.
//
// [report] - Assembles the full cut sheet from a design: every derived
// dimension plus warnings, with text rendering.
//
// ## Visualization
//
// [render] - Vector output. [render.FaceSVG] draws the assembled frame to
// scale from the front; [render.AssemblyDOT] emits a Graphviz diagram of the
// material stack, rasterized through [render.RenderSVG]. SVG converts to
// PDF/PNG via librsvg.
//
// ## Workbench
//
// [workbench] - Persistence for saved designs, custom sizes, and session
// settings. Three backends: file (per-item JSON documents), Redis, and
// MongoDB, plus portable backup export/import.
//
// [config] - TOML configuration (~/.config/framewright/config.toml) for
// preferred units, tape graduations, blade width, and storage backend.
//
// [share] - Compact design codes. Packs a design into a base64 string that
// round-trips through a share link.
//
// ## Orchestration
//
// [pipeline] - The calculate-and-render pipeline used by the CLI and the
// HTTP API: resolve the design source, build the report, render the
// requested artifact formats, persist to the workbench.
//
// [io] - JSON import/export for designs and reports.
//
// ## Shared Infrastructure
//
// [errors] - Coded errors (INVALID_MEASUREMENT, NOT_FOUND, ...) carrying
// user-facing messages across package boundaries.
//
// [observability] - Hook points for instrumenting workbench and pipeline
// operations.
//
// [buildinfo] - Build-time version metadata set via ldflags.
//
// # Common Workflows
//
// Read a measurement off the tape:
//
//	inches, _ := units.ParseMeasurement("4.72", units.Inches)
//	m := tape.Approximate(inches, nil, true)
//	fmt.Println(m) // 4 3/4 - 1/32
//
// Share a design:
//
//	code, _ := share.Encode(share.FromDesign(d, 0.125, units.Inches))
//	link := share.EncodeURL(payload, "")
//
// Run the whole pipeline:
//
//	runner := pipeline.NewRunner(store, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Design:  &d,
//	    Formats: []string{"text", "svg", "json"},
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/frame/...    # Specific package
//	go test -run Example       # Examples only
//
// [units]: https://pkg.go.dev/github.com/framewright/framewright/pkg/units
// [tape]: https://pkg.go.dev/github.com/framewright/framewright/pkg/tape
// [format]: https://pkg.go.dev/github.com/framewright/framewright/pkg/format
// [aspect]: https://pkg.go.dev/github.com/framewright/framewright/pkg/aspect
// [frame]: https://pkg.go.dev/github.com/framewright/framewright/pkg/frame
// [report]: https://pkg.go.dev/github.com/framewright/framewright/pkg/report
// [render]: https://pkg.go.dev/github.com/framewright/framewright/pkg/render
// [workbench]: https://pkg.go.dev/github.com/framewright/framewright/pkg/workbench
// [config]: https://pkg.go.dev/github.com/framewright/framewright/pkg/config
// [share]: https://pkg.go.dev/github.com/framewright/framewright/pkg/share
// [pipeline]: https://pkg.go.dev/github.com/framewright/framewright/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/framewright/framewright/pkg/io
// [errors]: https://pkg.go.dev/github.com/framewright/framewright/pkg/errors
// [observability]: https://pkg.go.dev/github.com/framewright/framewright/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/framewright/framewright/pkg/buildinfo
package pkg
