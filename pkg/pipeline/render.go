package pipeline

import (
	"bytes"

	"github.com/framewright/framewright/pkg/frame"
	pkgio "github.com/framewright/framewright/pkg/io"
	"github.com/framewright/framewright/pkg/render"
	"github.com/framewright/framewright/pkg/report"
)

// pngZoom is the supersampling factor for PNG export.
const pngZoom = 2.0

// renderFormats produces every requested artifact for the design.
// The face view SVG is rendered once and reused for PNG and PDF export.
func (r *Runner) renderFormats(d frame.Design, rep report.Report, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	fo := opts.FormatOptions()

	var face []byte
	faceSVG := func() []byte {
		if face == nil {
			face = render.FaceSVG(d, svgOptions(opts)...)
		}
		return face
	}

	for _, f := range opts.Formats {
		var data []byte
		var err error

		switch f {
		case FormatText:
			data = []byte(rep.Render(fo))
		case FormatJSON:
			var buf bytes.Buffer
			if err = pkgio.WriteReportJSON(rep, &buf); err == nil {
				data = buf.Bytes()
			}
		case FormatSVG:
			data = faceSVG()
		case FormatDOT:
			data = []byte(render.AssemblyDOT(d, render.DOTOptions{
				Detailed: opts.Detailed,
				Format:   fo,
			}))
		case FormatPNG:
			data, err = render.ToPNG(faceSVG(), pngZoom)
		case FormatPDF:
			data, err = render.ToPDF(faceSVG())
		default:
			return nil, ValidateFormat(f)
		}

		if err != nil {
			return nil, err
		}
		artifacts[f] = data
	}

	return artifacts, nil
}

// svgOptions converts pipeline options to face view render options.
func svgOptions(opts Options) []render.SVGOption {
	svgOpts := []render.SVGOption{render.WithFormat(opts.FormatOptions())}
	if opts.Scale > 0 {
		svgOpts = append(svgOpts, render.WithScale(opts.Scale))
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, render.WithoutLabels())
	}
	return svgOpts
}
