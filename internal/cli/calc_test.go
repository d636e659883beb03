package cli

import (
	"reflect"
	"testing"

	"github.com/framewright/framewright/pkg/config"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/pipeline"
)

func TestCalcOptionsFlagsWinOverConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Unit = "mm"
	cfg.BladeWidth = 0.125
	cfg.Denominators = []int{16, 8}

	opts, err := calcOptions(&designFlags{}, cfg, calcInputs{
		unit:         "in",
		blade:        "1/4",
		denominators: "32",
	})
	if err != nil {
		t.Fatalf("calcOptions: %v", err)
	}

	if opts.Unit != "in" {
		t.Errorf("Unit = %q, want flag override %q", opts.Unit, "in")
	}
	if opts.BladeWidth != 0.25 {
		t.Errorf("BladeWidth = %g, want 0.25", opts.BladeWidth)
	}
	if !reflect.DeepEqual(opts.Denominators, []int{32}) {
		t.Errorf("Denominators = %v, want [32]", opts.Denominators)
	}
	if opts.Design == nil {
		t.Fatal("Design = nil, want inline design from defaults")
	}
}

func TestCalcOptionsConfigFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Unit = "mm"
	cfg.BladeWidth = 0.0625
	cfg.Denominators = []int{8}

	opts, err := calcOptions(&designFlags{}, cfg, calcInputs{})
	if err != nil {
		t.Fatalf("calcOptions: %v", err)
	}

	if opts.Unit != "mm" {
		t.Errorf("Unit = %q, want config value %q", opts.Unit, "mm")
	}
	if opts.BladeWidth != 0.0625 {
		t.Errorf("BladeWidth = %g, want config value 0.0625", opts.BladeWidth)
	}
	if !reflect.DeepEqual(opts.Denominators, []int{8}) {
		t.Errorf("Denominators = %v, want config value [8]", opts.Denominators)
	}
}

func TestCalcOptionsNamedSourceSkipsInline(t *testing.T) {
	opts, err := calcOptions(&designFlags{}, config.Default(), calcInputs{name: "Hallway Print"})
	if err != nil {
		t.Fatalf("calcOptions: %v", err)
	}

	if opts.Design != nil {
		t.Error("Design should be nil when a saved design is named")
	}
	if opts.Name != "Hallway Print" {
		t.Errorf("Name = %q, want %q", opts.Name, "Hallway Print")
	}
}

func TestCalcOptionsRejectsBadUnit(t *testing.T) {
	if _, err := calcOptions(&designFlags{}, config.Default(), calcInputs{unit: "cubits"}); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestArtifactBase(t *testing.T) {
	tests := []struct {
		name   string
		output string
		file   string
		want   string
	}{
		{"output strips extension", "plan.svg", "", "plan"},
		{"output without extension", "plan", "", "plan"},
		{"file fallback drops directory and extension", "", "designs/hallway.json", "hallway"},
		{"output wins over file", "plan.png", "designs/hallway.json", "plan"},
		{"bare fallback", "", "", "frame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactBase(tt.output, tt.file); got != tt.want {
				t.Errorf("artifactBase(%q, %q) = %q, want %q", tt.output, tt.file, got, tt.want)
			}
		})
	}
}

func TestArtifactExt(t *testing.T) {
	if got := artifactExt(pipeline.FormatText); got != "txt" {
		t.Errorf("artifactExt(text) = %q, want %q", got, "txt")
	}
	if got := artifactExt(pipeline.FormatSVG); got != "svg" {
		t.Errorf("artifactExt(svg) = %q, want %q", got, "svg")
	}
}

func TestCutPieceCount(t *testing.T) {
	cl := frame.Default().CutList()
	if got := cutPieceCount(cl); got != 4 {
		t.Errorf("cutPieceCount = %d, want 4", got)
	}
}
