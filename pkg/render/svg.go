package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// Face view palette, shared with the assembly diagram.
const (
	colorFrame   = "#8B6F47" // moulding
	colorMat     = "#FEFEFE" // matboard
	colorArtwork = "#5B9BD5" // artwork
	colorWindow  = "#DDDDDD" // mat window stroke
	colorAccent  = "#D2691E" // frame-width callout
	colorRabbet  = "#009688" // rabbet callout
)

const (
	defaultScale = 48.0 // pixels per inch of frame
	marginFactor = 0.15 // whitespace around the frame, relative to its larger edge
	rabbetAlpha  = 0.7  // moulding lip over the content
	overlapAlpha = 0.8  // mat lip over the artwork
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	labels bool
	format format.Options
}

// WithScale sets the pixel density of the drawing in pixels per inch
// of frame.
func WithScale(pxPerInch float64) SVGOption {
	return func(r *svgRenderer) {
		if pxPerInch > 0 {
			r.scale = pxPerInch
		}
	}
}

// WithoutLabels omits the dimension callouts, leaving only the scaled
// drawing.
func WithoutLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = false }
}

// WithFormat sets the measurement formatting used in dimension labels.
func WithFormat(fo format.Options) SVGOption {
	return func(r *svgRenderer) { r.format = fo }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		scale:  defaultScale,
		labels: true,
		format: format.DefaultOptions(units.Inches),
	}
	// Callouts read better with short decimals.
	r.format.PrecisionIn = 2
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// FaceSVG renders a design as a scaled front view. The drawing shows
// the moulding, the matboard with its window, and the artwork; the
// moulding lip over the content and the mat lip over the artwork are
// drawn as translucent strips. d is taken as already normalized; run
// user input through [frame.New] first.
func FaceSVG(d frame.Design, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	outH, outW := d.OutsideDimensions()
	visH, visW := d.VisibleDimensions()
	margin := max(outW, outH) * marginFactor

	totalW := outW + 2*margin
	totalH := outH + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		totalW*r.scale, totalH*r.scale, totalW*r.scale, totalH*r.scale)

	// Moulding, drawn as the solid outer slab. Everything inside is
	// painted over it.
	rect(&buf, r.scale, margin, margin, outW, outH, colorFrame, "", 0)

	fw := d.FrameMaterialWidth
	rb := d.RabbetDepth

	// The visible opening sits one moulding face in from the outer
	// edge; the content under the lip starts a rabbet before it.
	visX := margin + fw
	visY := margin + fw
	contentX := visX - rb
	contentY := visY - rb

	if d.HasMat() {
		r.drawMatted(&buf, d, visX, visY, contentX, contentY, visW, visH)
	} else {
		r.drawUnmatted(&buf, d, visX, visY)
	}

	if r.labels {
		r.drawLabels(&buf, d, margin, totalW, totalH, outW, outH, visX, visY, visW, contentX)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// drawMatted paints the matboard (extending under the lip), the rabbet
// strips over its edges, the window, and the artwork under the window.
func (r *svgRenderer) drawMatted(buf *bytes.Buffer, d frame.Design, visX, visY, contentX, contentY, visW, visH float64) {
	rb := d.RabbetDepth
	boardW := visW + 2*rb
	boardH := visH + 2*rb

	rect(buf, r.scale, contentX, contentY, boardW, boardH, colorMat, "", 0)

	// Moulding lip over the matboard edges.
	strip(buf, r.scale, contentX, contentY, boardW, rb, colorFrame, rabbetAlpha)
	strip(buf, r.scale, contentX, visY+visH, boardW, rb, colorFrame, rabbetAlpha)
	strip(buf, r.scale, contentX, contentY+rb, rb, visH, colorFrame, rabbetAlpha)
	strip(buf, r.scale, visX+visW, contentY+rb, rb, visH, colorFrame, rabbetAlpha)

	// Mat window.
	opH, opW := d.MatOpening()
	winX := visX + d.MatWidthSides
	winY := visY + d.MatWidthTopBottom
	rect(buf, r.scale, winX, winY, opW, opH, "white", colorWindow, 0.75)

	// Artwork under the window, offset by the overlap the mat holds.
	artX := winX - d.MatOverlap
	artY := winY - d.MatOverlap
	rect(buf, r.scale, artX, artY, d.ArtworkWidth, d.ArtworkHeight, colorArtwork, "", 0)

	// Mat lip over the artwork edges.
	if ov := d.MatOverlap; ov > 0 {
		strip(buf, r.scale, artX, artY, d.ArtworkWidth, ov, colorMat, overlapAlpha)
		strip(buf, r.scale, artX, artY+d.ArtworkHeight-ov, d.ArtworkWidth, ov, colorMat, overlapAlpha)
		strip(buf, r.scale, artX, artY+ov, ov, d.ArtworkHeight-2*ov, colorMat, overlapAlpha)
		strip(buf, r.scale, artX+d.ArtworkWidth-ov, artY+ov, ov, d.ArtworkHeight-2*ov, colorMat, overlapAlpha)
	}
}

// drawUnmatted paints the bare artwork extending under the lip and the
// rabbet strips over its edges.
func (r *svgRenderer) drawUnmatted(buf *bytes.Buffer, d frame.Design, visX, visY float64) {
	rb := d.RabbetDepth
	artX := visX - rb
	artY := visY - rb

	rect(buf, r.scale, artX, artY, d.ArtworkWidth, d.ArtworkHeight, colorArtwork, "", 0)

	strip(buf, r.scale, artX, artY, d.ArtworkWidth, rb, colorFrame, rabbetAlpha)
	strip(buf, r.scale, artX, artY+d.ArtworkHeight-rb, d.ArtworkWidth, rb, colorFrame, rabbetAlpha)
	strip(buf, r.scale, artX, artY+rb, rb, d.ArtworkHeight-2*rb, colorFrame, rabbetAlpha)
	strip(buf, r.scale, artX+d.ArtworkWidth-rb, artY+rb, rb, d.ArtworkHeight-2*rb, colorFrame, rabbetAlpha)
}

// drawLabels writes the dimension callouts: outside and frame width
// along the top edge, rabbet, inside, and mat along the bottom.
func (r *svgRenderer) drawLabels(buf *bytes.Buffer, d frame.Design, margin, totalW, totalH, outW, outH, visX, visY, visW, contentX float64) {
	v := r.format.Value
	fontSize := labelFontSize(r.scale)
	topY := margin * 0.5
	bottomY := totalH - margin*0.55

	inH, inW := d.InsideDimensions()

	// Frame width dimension line, from the visible opening to the
	// outer edge along the top.
	dimY := margin * 0.85
	dimLeft := visX + visW
	dimRight := margin + outW
	line(buf, r.scale, dimLeft, dimY, dimRight, dimY, colorAccent, 1.2)
	tick(buf, r.scale, dimLeft, dimY, colorAccent)
	tick(buf, r.scale, dimRight, dimY, colorAccent)

	text(buf, r.scale, margin+outW*0.25, topY, fontSize, "#333333", "middle",
		fmt.Sprintf("Outside: %s × %s", v(outH), v(outW)))
	text(buf, r.scale, margin+outW*0.82, topY, fontSize, colorAccent, "middle",
		fmt.Sprintf("Frame: %s", v(d.FrameMaterialWidth)))

	// Rabbet dimension line, from the content edge to the visible
	// opening along the bottom.
	rdimY := totalH - margin*0.9
	line(buf, r.scale, contentX, rdimY, visX, rdimY, colorRabbet, 1.2)
	tick(buf, r.scale, contentX, rdimY, colorRabbet)
	tick(buf, r.scale, visX, rdimY, colorRabbet)

	text(buf, r.scale, margin+outW*0.16, bottomY, fontSize, colorRabbet, "middle",
		fmt.Sprintf("Rabbet: %s", v(d.RabbetDepth)))
	text(buf, r.scale, margin+outW*0.72, bottomY, fontSize, "#333333", "middle",
		fmt.Sprintf("Inside: %s × %s", v(inH), v(inW)))

	if d.HasMat() {
		cutTB, cutS := d.MatboardCutWidths()
		label := fmt.Sprintf("Mat: %s (%s visible)", v(cutTB), v(d.MatWidthTopBottom))
		if d.MatWidthSides != d.MatWidthTopBottom {
			label = fmt.Sprintf("Mat: %s / %s (visible %s / %s)",
				v(cutTB), v(cutS), v(d.MatWidthTopBottom), v(d.MatWidthSides))
		}
		text(buf, r.scale, totalW/2, totalH-margin*0.15, fontSize, "#555555", "middle", label)
	}
}

func labelFontSize(scale float64) float64 {
	return max(10, min(18, scale*0.3))
}

// rect writes a filled rectangle, with an optional stroke.
func rect(buf *bytes.Buffer, scale, x, y, w, h float64, fill, stroke string, strokeWidth float64) {
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"`,
		x*scale, y*scale, w*scale, h*scale, fill)
	if stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.2f"`, stroke, strokeWidth)
	}
	buf.WriteString("/>\n")
}

// strip writes a translucent overlap rectangle.
func strip(buf *bytes.Buffer, scale, x, y, w, h float64, fill string, alpha float64) {
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
		x*scale, y*scale, w*scale, h*scale, fill, alpha)
}

func line(buf *bytes.Buffer, scale, x1, y1, x2, y2 float64, color string, width float64) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x1*scale, y1*scale, x2*scale, y2*scale, color, width)
}

// tick writes a short dashed vertical mark across a dimension line.
func tick(buf *bytes.Buffer, scale, x, y float64, color string) {
	half := 0.06
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.8" stroke-dasharray="3 2"/>`+"\n",
		x*scale, (y-half)*scale, x*scale, (y+half)*scale, color)
}

func text(buf *bytes.Buffer, scale, x, y, size float64, color, anchor, s string) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-family="sans-serif" fill="%s" text-anchor="%s">%s</text>`+"\n",
		x*scale, y*scale, size, color, anchor, escapeXML(s))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
