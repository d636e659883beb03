// Package share encodes frame designs into compact shareable links.
//
// A share code is a fixed 28-byte payload rendered as URL-safe base64
// without padding (38 characters). Measurements are stored in inches as
// fixed-point integers with four decimal places:
//
//	5 x uint24 big-endian: artwork height, artwork width, mat width,
//	                       frame width, frame depth
//	6 x uint16 big-endian: glazing, matboard, artwork, backing
//	                       thickness, rabbet depth, blade width
//	1 x flags byte:        bit 0 = mat included, bit 1 = display in mm
//
// The format carries a single mat width, so an asymmetric design shares
// its top/bottom width. Fields the wire format omits (mat overlap,
// assembly margin) are restored from the standard defaults on decode.
package share

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"net/url"
	"strings"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// DefaultBaseURL is the link prefix used when no base URL is configured.
const DefaultBaseURL = "https://framewright.app/"

const (
	payloadSize = 28
	scale       = 10000

	maxUint24Field = float64(1<<24-1) / scale
	maxUint16Field = float64(1<<16-1) / scale

	flagMat = 1 << 0
	flagMM  = 1 << 1
)

// Payload is the decoded contents of a share code.
type Payload struct {
	ArtworkHeight float64
	ArtworkWidth  float64
	MatWidth      float64
	FrameWidth    float64
	FrameDepth    float64

	GlazingThickness  float64
	MatboardThickness float64
	ArtworkThickness  float64
	BackingThickness  float64
	RabbetDepth       float64
	BladeWidth        float64

	// IncludeMat records whether the shared design had a mat, even when
	// MatWidth is carried for re-enabling it later.
	IncludeMat bool

	// Unit is the display unit the sender was working in.
	Unit units.Unit
}

// FromDesign builds a share payload for d.
//
// The wire format has one mat width slot; an asymmetric design shares
// its top/bottom width.
func FromDesign(d frame.Design, bladeWidth float64, unit units.Unit) Payload {
	return Payload{
		ArtworkHeight:     d.ArtworkHeight,
		ArtworkWidth:      d.ArtworkWidth,
		MatWidth:          d.MatWidthTopBottom,
		FrameWidth:        d.FrameMaterialWidth,
		FrameDepth:        d.FrameMaterialDepth,
		GlazingThickness:  d.GlazingThickness,
		MatboardThickness: d.MatboardThickness,
		ArtworkThickness:  d.ArtworkThickness,
		BackingThickness:  d.BackingThickness,
		RabbetDepth:       d.RabbetDepth,
		BladeWidth:        bladeWidth,
		IncludeMat:        d.HasMat(),
		Unit:              unit,
	}
}

// Design reconstructs a normalized design from the payload.
//
// The mat width applies to both axes when the payload includes a mat;
// mat overlap and assembly margin come from the standard defaults
// because the wire format does not carry them.
func (p Payload) Design() (frame.Design, error) {
	d := frame.Design{
		ArtworkHeight:      p.ArtworkHeight,
		ArtworkWidth:       p.ArtworkWidth,
		MatOverlap:         frame.DefaultMatOverlap,
		RabbetDepth:        p.RabbetDepth,
		FrameMaterialWidth: p.FrameWidth,
		FrameMaterialDepth: p.FrameDepth,
		GlazingThickness:   p.GlazingThickness,
		MatboardThickness:  p.MatboardThickness,
		ArtworkThickness:   p.ArtworkThickness,
		BackingThickness:   p.BackingThickness,
		AssemblyMargin:     frame.DefaultAssemblyMargin,
	}
	if p.IncludeMat {
		// The wire format carries one width, so a decoded mat is
		// symmetrical by construction.
		d.MatWidthTopBottom = p.MatWidth
		d.MatWidthSides = p.MatWidth
		d.SymmetricalMat = true
	}
	return frame.New(d)
}

func quantize(field string, v, max float64) (uint32, error) {
	// The negated comparison also rejects NaN.
	if !(v >= 0 && v <= max) {
		return 0, errors.New(errors.ErrCodeOutOfRange,
			"%s %v is outside the shareable range [0, %v]", field, v, max)
	}
	return uint32(math.Round(v * scale)), nil
}

// Encode packs the payload into a URL-safe base64 share code.
//
// Every measurement must fit its fixed-point slot: the five primary
// dimensions allow up to 1677.7215", the six fine measurements up to
// 6.5535". Violations return an OUT_OF_RANGE error naming the field.
func Encode(p Payload) (string, error) {
	raw := make([]byte, 0, payloadSize)

	wide := []struct {
		name string
		v    float64
	}{
		{"artwork height", p.ArtworkHeight},
		{"artwork width", p.ArtworkWidth},
		{"mat width", p.MatWidth},
		{"frame width", p.FrameWidth},
		{"frame depth", p.FrameDepth},
	}
	for _, f := range wide {
		q, err := quantize(f.name, f.v, maxUint24Field)
		if err != nil {
			return "", err
		}
		raw = append(raw, byte(q>>16), byte(q>>8), byte(q))
	}

	narrow := []struct {
		name string
		v    float64
	}{
		{"glazing thickness", p.GlazingThickness},
		{"matboard thickness", p.MatboardThickness},
		{"artwork thickness", p.ArtworkThickness},
		{"backing thickness", p.BackingThickness},
		{"rabbet depth", p.RabbetDepth},
		{"blade width", p.BladeWidth},
	}
	for _, f := range narrow {
		q, err := quantize(f.name, f.v, maxUint16Field)
		if err != nil {
			return "", err
		}
		raw = binary.BigEndian.AppendUint16(raw, uint16(q))
	}

	var flags byte
	if p.IncludeMat {
		flags |= flagMat
	}
	if p.Unit == units.Millimeters {
		flags |= flagMM
	}
	raw = append(raw, flags)

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// EncodeURL packs the payload and appends it to baseURL as the d query
// parameter. An empty baseURL uses [DefaultBaseURL].
func EncodeURL(p Payload, baseURL string) (string, error) {
	code, err := Encode(p)
	if err != nil {
		return "", err
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "base URL %q", baseURL)
	}
	q := u.Query()
	q.Set("d", code)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Decode unpacks a share code back into a payload.
//
// s may be a bare code, a padded code, or a full link carrying the code
// in its d query parameter.
func Decode(s string) (Payload, error) {
	code := extractCode(s)
	if code == "" {
		return Payload{}, errors.New(errors.ErrCodeInvalidShareCode, "empty share code")
	}

	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return Payload{}, errors.Wrap(errors.ErrCodeInvalidShareCode, err, "share code %q", code)
	}
	if len(raw) != payloadSize {
		return Payload{}, errors.New(errors.ErrCodeInvalidShareCode,
			"share payload is %d bytes, want %d", len(raw), payloadSize)
	}

	field := func(i int) float64 {
		off := i * 3
		q := uint32(raw[off])<<16 | uint32(raw[off+1])<<8 | uint32(raw[off+2])
		return float64(q) / scale
	}
	fine := func(i int) float64 {
		off := 15 + i*2
		return float64(binary.BigEndian.Uint16(raw[off:])) / scale
	}

	p := Payload{
		ArtworkHeight:     field(0),
		ArtworkWidth:      field(1),
		MatWidth:          field(2),
		FrameWidth:        field(3),
		FrameDepth:        field(4),
		GlazingThickness:  fine(0),
		MatboardThickness: fine(1),
		ArtworkThickness:  fine(2),
		BackingThickness:  fine(3),
		RabbetDepth:       fine(4),
		BladeWidth:        fine(5),
		Unit:              units.Inches,
	}

	flags := raw[payloadSize-1]
	p.IncludeMat = flags&flagMat != 0
	if flags&flagMM != 0 {
		p.Unit = units.Millimeters
	}
	return p, nil
}

// extractCode pulls the d parameter out of a link, or returns the input
// stripped of base64 padding when it is already a bare code.
func extractCode(s string) string {
	if u, err := url.Parse(s); err == nil {
		if d := u.Query().Get("d"); d != "" {
			return d
		}
	}
	return strings.TrimRight(s, "=")
}
