package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/framewright/framewright/pkg/observability"
	"github.com/framewright/framewright/pkg/report"
	"github.com/framewright/framewright/pkg/workbench"
)

// Runner encapsulates pipeline execution.
// Both CLI and API use this to avoid duplicating resolution and render logic.
//
// The Runner is stateless except for the store and logger - it doesn't
// retain pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Store  workbench.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given store.
// If store is nil, a NullStore is used (saved-design lookups fail).
func NewRunner(st workbench.Store, logger *log.Logger) *Runner {
	if st == nil {
		st = workbench.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Store:  st,
		Logger: logger,
	}
}

// Execute runs the complete resolve → report → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Source: opts.Source(),
	}

	// Stage 1: Resolve
	resolveStart := time.Now()
	observability.Design().OnCalcStart(ctx, result.Source)
	d, err := r.ResolveDesign(ctx, opts)
	result.Stats.ResolveTime = time.Since(resolveStart)
	observability.Design().OnCalcComplete(ctx, result.Source, result.Stats.ResolveTime, err)
	if err != nil {
		return nil, err
	}
	result.Design = d

	r.Logger.Info("resolved design",
		"source", result.Source,
		"artwork_height", d.ArtworkHeight,
		"artwork_width", d.ArtworkWidth)

	// Stage 2: Report
	result.Report = report.Build(d, opts.ReportOptions())

	// Stage 3: Render
	renderStart := time.Now()
	observability.Design().OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.renderFormats(d, result.Report, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Design().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
