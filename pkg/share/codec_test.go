package share

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func testPayload() Payload {
	return Payload{
		ArtworkHeight:     8,
		ArtworkWidth:      10,
		MatWidth:          2,
		FrameWidth:        0.75,
		FrameDepth:        0.75,
		GlazingThickness:  0.093,
		MatboardThickness: 0.055,
		ArtworkThickness:  0.008,
		BackingThickness:  0.125,
		RabbetDepth:       0.375,
		BladeWidth:        0.125,
		IncludeMat:        true,
		Unit:              units.Inches,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Payload)
	}{
		{"matted inches", func(p *Payload) {}},
		{"unmatted", func(p *Payload) { p.IncludeMat = false; p.MatWidth = 0 }},
		{"millimeter display", func(p *Payload) { p.Unit = units.Millimeters }},
		{"awkward decimals", func(p *Payload) { p.ArtworkHeight = 9.1235; p.MatWidth = 0.7 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := testPayload()
			tt.mod(&want)

			code, err := Encode(want)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			got, err := Decode(code)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}

			pairs := []struct {
				field    string
				got, want float64
			}{
				{"ArtworkHeight", got.ArtworkHeight, want.ArtworkHeight},
				{"ArtworkWidth", got.ArtworkWidth, want.ArtworkWidth},
				{"MatWidth", got.MatWidth, want.MatWidth},
				{"FrameWidth", got.FrameWidth, want.FrameWidth},
				{"FrameDepth", got.FrameDepth, want.FrameDepth},
				{"GlazingThickness", got.GlazingThickness, want.GlazingThickness},
				{"MatboardThickness", got.MatboardThickness, want.MatboardThickness},
				{"ArtworkThickness", got.ArtworkThickness, want.ArtworkThickness},
				{"BackingThickness", got.BackingThickness, want.BackingThickness},
				{"RabbetDepth", got.RabbetDepth, want.RabbetDepth},
				{"BladeWidth", got.BladeWidth, want.BladeWidth},
			}
			for _, p := range pairs {
				if !near(p.got, p.want) {
					t.Errorf("%s = %v, want %v", p.field, p.got, p.want)
				}
			}
			if got.IncludeMat != want.IncludeMat {
				t.Errorf("IncludeMat = %v, want %v", got.IncludeMat, want.IncludeMat)
			}
			if got.Unit != want.Unit {
				t.Errorf("Unit = %q, want %q", got.Unit, want.Unit)
			}
		})
	}
}

func TestEncodeCodeShape(t *testing.T) {
	code, err := Encode(testPayload())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	// 28 bytes is 38 unpadded base64 characters.
	if len(code) != 38 {
		t.Errorf("len(code) = %d, want 38", len(code))
	}
	if strings.ContainsAny(code, "=+/") {
		t.Errorf("code %q is not URL-safe unpadded base64", code)
	}
}

func TestDecodeWireImage(t *testing.T) {
	raw := make([]byte, 0, 28)
	put24 := func(v uint32) { raw = append(raw, byte(v>>16), byte(v>>8), byte(v)) }
	put24(80000)  // 8"
	put24(100000) // 10"
	put24(20000)  // 2"
	put24(7500)   // 0.75"
	put24(7500)
	for _, v := range []uint16{930, 550, 80, 1250, 3750, 1250} {
		raw = binary.BigEndian.AppendUint16(raw, v)
	}
	raw = append(raw, 0x03) // mat + mm

	got, err := Decode(base64.RawURLEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !near(got.ArtworkHeight, 8) || !near(got.ArtworkWidth, 10) {
		t.Errorf("artwork = %v x %v, want 8 x 10", got.ArtworkHeight, got.ArtworkWidth)
	}
	if !near(got.MatWidth, 2) || !near(got.FrameWidth, 0.75) || !near(got.FrameDepth, 0.75) {
		t.Errorf("mat/frame = %v, %v, %v", got.MatWidth, got.FrameWidth, got.FrameDepth)
	}
	if !near(got.GlazingThickness, 0.093) || !near(got.ArtworkThickness, 0.008) {
		t.Errorf("thicknesses = %v, %v, want 0.093, 0.008", got.GlazingThickness, got.ArtworkThickness)
	}
	if !near(got.RabbetDepth, 0.375) || !near(got.BladeWidth, 0.125) {
		t.Errorf("rabbet/blade = %v, %v, want 0.375, 0.125", got.RabbetDepth, got.BladeWidth)
	}
	if !got.IncludeMat || got.Unit != units.Millimeters {
		t.Errorf("flags decoded as mat=%v unit=%q, want mat on, mm", got.IncludeMat, got.Unit)
	}
}

func TestDecodeAcceptsLinksAndPadding(t *testing.T) {
	p := testPayload()
	code, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	link, err := EncodeURL(p, "")
	if err != nil {
		t.Fatalf("EncodeURL() error: %v", err)
	}
	if !strings.HasPrefix(link, DefaultBaseURL) {
		t.Errorf("link %q does not use the default base", link)
	}

	for _, in := range []string{
		code,
		code + "==",
		link,
		"https://example.com/frames?d=" + code,
	} {
		got, err := Decode(in)
		if err != nil {
			t.Errorf("Decode(%q) error: %v", in, err)
			continue
		}
		if !near(got.ArtworkHeight, 8) {
			t.Errorf("Decode(%q).ArtworkHeight = %v, want 8", in, got.ArtworkHeight)
		}
	}
}

func TestEncodeURLCustomBase(t *testing.T) {
	link, err := EncodeURL(testPayload(), "https://example.com/frame")
	if err != nil {
		t.Fatalf("EncodeURL() error: %v", err)
	}
	if !strings.HasPrefix(link, "https://example.com/frame?d=") {
		t.Errorf("link = %q", link)
	}
}

func TestEncodeRangeErrors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Payload)
	}{
		{"artwork too large", func(p *Payload) { p.ArtworkHeight = 1700 }},
		{"negative mat", func(p *Payload) { p.MatWidth = -0.5 }},
		{"glazing over uint16", func(p *Payload) { p.GlazingThickness = 7 }},
		{"NaN", func(p *Payload) { p.FrameDepth = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPayload()
			tt.mod(&p)
			if _, err := Encode(p); !errors.Is(err, errors.ErrCodeOutOfRange) {
				t.Errorf("Encode() error = %v, want OUT_OF_RANGE", err)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	short := base64.RawURLEncoding.EncodeToString(make([]byte, 20))
	for _, in := range []string{"", "!!!not base64!!!", short} {
		if _, err := Decode(in); !errors.Is(err, errors.ErrCodeInvalidShareCode) {
			t.Errorf("Decode(%q) error = %v, want INVALID_SHARE_CODE", in, err)
		}
	}
}

func TestFromDesignAndBack(t *testing.T) {
	d := frame.Default()
	p := FromDesign(d, 0.125, units.Inches)

	if !p.IncludeMat {
		t.Error("IncludeMat = false for the default matted design")
	}
	if !near(p.MatWidth, d.MatWidthTopBottom) {
		t.Errorf("MatWidth = %v, want %v", p.MatWidth, d.MatWidthTopBottom)
	}

	got, err := p.Design()
	if err != nil {
		t.Fatalf("Design() error: %v", err)
	}
	if got != d {
		t.Errorf("round trip changed design:\ngot  %+v\nwant %+v", got, d)
	}
}

func TestPayloadDesignWithoutMat(t *testing.T) {
	p := testPayload()
	p.IncludeMat = false

	d, err := p.Design()
	if err != nil {
		t.Fatalf("Design() error: %v", err)
	}
	if d.HasMat() {
		t.Errorf("design has a mat: %+v", d)
	}
	// The carried width only applies when the mat is enabled.
	if d.MatWidthTopBottom != 0 || d.MatWidthSides != 0 {
		t.Errorf("mat widths = %v, %v, want 0, 0", d.MatWidthTopBottom, d.MatWidthSides)
	}
}

func TestPayloadDesignValidates(t *testing.T) {
	p := testPayload()
	p.ArtworkHeight = 0
	if _, err := p.Design(); err == nil {
		t.Fatal("Design() = nil error for zero artwork height")
	}
}
