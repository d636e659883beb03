package pipeline

import (
	"context"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
	pkgio "github.com/framewright/framewright/pkg/io"
	"github.com/framewright/framewright/pkg/share"
)

// ResolveDesign obtains a validated design from the options' source.
// Precedence follows Options: inline design, design file, saved design,
// share code.
func (r *Runner) ResolveDesign(ctx context.Context, opts Options) (frame.Design, error) {
	switch {
	case opts.Design != nil:
		return frame.New(*opts.Design)
	case opts.File != "":
		return pkgio.ImportDesign(opts.File)
	case opts.Name != "":
		return r.resolveSaved(ctx, opts.Name)
	case opts.Share != "":
		return resolveShare(opts.Share)
	default:
		return frame.Design{}, errors.New(errors.ErrCodeInvalidInput,
			"a design, file, name, or share code is required")
	}
}

// resolveSaved loads a saved design from the workbench and re-validates it.
func (r *Runner) resolveSaved(ctx context.Context, name string) (frame.Design, error) {
	sd, err := r.Store.GetDesign(ctx, name)
	if err != nil {
		return frame.Design{}, err
	}
	return frame.New(sd.Design)
}

// resolveShare decodes a share code or link into a design.
func resolveShare(code string) (frame.Design, error) {
	p, err := share.Decode(code)
	if err != nil {
		return frame.Design{}, err
	}
	return p.Design()
}
