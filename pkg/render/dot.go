package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// DOTOptions configures assembly diagram rendering.
type DOTOptions struct {
	// Detailed includes cut dimensions and thicknesses in layer labels.
	// When false, only the layer names are shown.
	Detailed bool

	// Format controls measurement formatting in detailed labels. The
	// zero value renders inches with short decimals.
	Format format.Options
}

// AssemblyDOT converts a design to Graphviz DOT format showing the
// material stack the rabbet holds, front to back: glazing, mat (when
// present), artwork, backing. The resulting DOT string can be rendered
// using [RenderSVG], or converted onward with [ToPDF] and [ToPNG].
func AssemblyDOT(d frame.Design, opts DOTOptions) string {
	fo := opts.Format
	if fo.Unit == "" {
		fo = format.DefaultOptions(units.Inches)
		fo.PrecisionIn = 2
	}

	var buf bytes.Buffer
	buf.WriteString("digraph assembly {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	layers := assemblyLayers(d, fo, opts.Detailed)
	for _, l := range layers {
		fmt.Fprintf(&buf, "  %q [%s];\n", l.id, strings.Join(l.attrs(), ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(layers); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", layers[i-1].id, layers[i].id)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type layer struct {
	id        string
	label     string
	fill      string
	fontcolor string
}

func (l layer) attrs() []string {
	attrs := []string{
		fmt.Sprintf("label=%q", l.label),
		fmt.Sprintf("fillcolor=%q", l.fill),
	}
	if l.fontcolor != "" {
		attrs = append(attrs, fmt.Sprintf("fontcolor=%q", l.fontcolor))
	}
	return attrs
}

// assemblyLayers builds the stack in front-to-back order. The frame
// leads: it is the piece everything else drops into.
func assemblyLayers(d frame.Design, fo format.Options, detailed bool) []layer {
	v := fo.Value
	dims := func(h, w float64) string {
		return fmt.Sprintf("%s × %s", v(h), v(w))
	}

	outH, outW := d.OutsideDimensions()
	inH, inW := d.InsideDimensions()
	boardH, boardW := d.MatboardDimensions()

	frameLayer := layer{id: "frame", label: "Frame", fill: colorFrame, fontcolor: "white"}
	glazing := layer{id: "glazing", label: "Glazing", fill: "#D6EAF8"}
	artwork := layer{id: "artwork", label: "Artwork", fill: colorArtwork, fontcolor: "white"}
	backing := layer{id: "backing", label: "Backing", fill: "lightgrey"}

	if detailed {
		frameLayer.label = fmt.Sprintf("Frame\noutside %s\ninside %s", dims(outH, outW), dims(inH, inW))
		glazing.label = fmt.Sprintf("Glazing\n%s\n%s thick", dims(boardH, boardW), v(d.GlazingThickness))
		artwork.label = fmt.Sprintf("Artwork\n%s\n%s thick", dims(d.ArtworkHeight, d.ArtworkWidth), v(d.ArtworkThickness))
		backing.label = fmt.Sprintf("Backing\n%s\n%s thick", dims(boardH, boardW), v(d.BackingThickness))
	}

	layers := []layer{frameLayer, glazing}
	if d.HasMat() {
		mat := layer{id: "mat", label: "Matboard", fill: colorMat}
		if detailed {
			opH, opW := d.MatOpening()
			mat.label = fmt.Sprintf("Matboard\nboard %s\nopening %s\n%s thick",
				dims(boardH, boardW), dims(opH, opW), v(d.MatboardThickness))
		}
		layers = append(layers, mat)
	}
	return append(layers, artwork, backing)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [ToPDF] or [ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg tag so the drawing scales
// from origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
