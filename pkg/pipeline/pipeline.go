// Package pipeline provides the core calculation pipeline for Framewright.
//
// This package implements the complete resolve → report → render pipeline
// shared by the CLI and the HTTP API. By centralizing this logic, both entry
// points produce identical cut sheets and artifacts for the same design.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Obtain a validated design from inline parameters, a design
//     file, the workbench, or a share code
//  2. Report: Derive the complete cut sheet for the design
//  3. Render: Produce artifacts in the requested output formats
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(store, logger)
//	opts := pipeline.Options{
//	    Name:    "Living Room Print",
//	    Formats: []string{"text", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/report"
	"github.com/framewright/framewright/pkg/tape"
	"github.com/framewright/framewright/pkg/units"
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// DefaultFormat is used when no formats are requested.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the calculation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Design sources. Exactly one is used, in this order of precedence:
	// an inline design, a design file, a saved design, a share code.
	Design *frame.Design `json:"design,omitempty"`
	File   string        `json:"file,omitempty"`  // design file path (JSON or TOML)
	Name   string        `json:"name,omitempty"`  // saved design in the workbench
	Share  string        `json:"share,omitempty"` // share code or link

	// Display options
	Unit         string  `json:"unit,omitempty"`
	Denominators []int   `json:"denominators,omitempty"`
	BladeWidth   float64 `json:"blade_width,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`     // face view pixels per inch
	NoLabels bool     `json:"no_labels,omitempty"` // omit dimension callouts from the face view
	Detailed bool     `json:"detailed,omitempty"`  // dimension labels on the assembly diagram

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Design is the resolved, validated design.
	Design frame.Design

	// Report is the complete cut sheet.
	Report report.Report

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Source identifies where the design came from
	// ("inline", "file", "store", "share").
	Source string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(f string) error {
	if !ValidFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, json, svg, dot, png, pdf)", f)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Design == nil && o.File == "" && o.Name == "" && o.Share == "" {
		return errors.New(errors.ErrCodeInvalidInput, "a design, file, name, or share code is required")
	}

	if o.Unit == "" {
		o.Unit = string(units.Inches)
	}
	if _, err := units.ParseUnit(o.Unit); err != nil {
		return err
	}

	if len(o.Denominators) == 0 {
		o.Denominators = tape.DefaultDenominators
	}
	if err := errors.ValidateDenominators(o.Denominators); err != nil {
		return err
	}

	if o.BladeWidth == 0 {
		o.BladeWidth = frame.DefaultBladeWidth
	}
	if err := errors.ValidateNonNegative("blade_width", o.BladeWidth); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// DisplayUnit returns the validated display unit.
func (o *Options) DisplayUnit() units.Unit {
	u, err := units.ParseUnit(o.Unit)
	if err != nil {
		return units.Inches
	}
	return u
}

// FormatOptions returns the measurement formatting for text output and
// drawing labels.
func (o *Options) FormatOptions() format.Options {
	fo := format.DefaultOptions(o.DisplayUnit())
	if len(o.Denominators) > 0 {
		fo.Denominators = o.Denominators
	}
	return fo
}

// ReportOptions returns the cut sheet options.
func (o *Options) ReportOptions() report.Options {
	return report.Options{
		Unit:       o.DisplayUnit(),
		BladeWidth: o.BladeWidth,
	}
}

// Source identifies where the design will come from.
func (o *Options) Source() string {
	switch {
	case o.Design != nil:
		return "inline"
	case o.File != "":
		return "file"
	case o.Name != "":
		return "store"
	default:
		return "share"
	}
}
