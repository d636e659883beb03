// Package io provides file import and export for frame designs.
//
// # Overview
//
// This package serializes designs to and from flat documents. The
// format is designed for:
//
//   - Saving a design to disk and reloading it later
//   - Passing designs between the CLI, the API, and external tools
//   - Round-trip preservation: export, edit, and re-import identically
//
// # File Format
//
// A design file is a single flat object of measurements in inches:
//
//	{
//	  "artwork_height": 8,
//	  "artwork_width": 10,
//	  "mat_width_top_bottom": 2,
//	  "mat_width_sides": 2,
//	  "mat_overlap": 0.125,
//	  "rabbet_depth": 0.375,
//	  "frame_material_width": 0.75,
//	  "frame_material_depth": 0.75
//	}
//
// Omitted fields default to zero, so a minimal file needs only the
// artwork dimensions. Material thicknesses, margins, and the mat flags
// follow the field names of [frame.Design]. The same keys work as a
// TOML document for hand-edited design files:
//
//	artwork_height = 8
//	artwork_width = 10
//	mat_width_top_bottom = 2
//
// # Import
//
// Use [ImportDesign] to read a design from a file path ( .toml decodes
// as TOML, everything else as JSON), or [ReadDesignJSON] and
// [ReadDesignTOML] to read one codec from any io.Reader:
//
//	d, err := io.ImportDesign("poster.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every import validates the decoded design through [frame.New], so the
// returned value is already normalized: a zero frame width inherits the
// depth, and a symmetrical design carries one mat width on both axes.
// Errors are wrapped with context about the file and the failing field.
//
// # Export
//
// Use [ExportDesignJSON] to write a design to a file, or
// [WriteDesignJSON] to write to any io.Writer. Full cut sheets export
// one way with [WriteReportJSON] and [ExportReportJSON]; a report embeds
// its design, so the design portion of an exported report can always be
// loaded back.
package io
