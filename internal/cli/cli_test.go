package cli

import (
	"io"
	"reflect"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{
		"backup", "calc", "completion", "config", "design", "designs",
		"mat", "serve", "share", "sizes", "tape",
	}

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range want {
		if !names[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommandMetadata(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "framewright" {
		t.Errorf("Use = %q, want %q", root.Use, "framewright")
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("root command missing --config flag")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty defaults to text", "", []string{"text"}},
		{"single", "svg", []string{"svg"}},
		{"multiple", "text,json,svg", []string{"text", "json", "svg"}},
		{"spaces trimmed", " text , svg ", []string{"text", "svg"}},
		{"blank entries dropped", "text,,svg", []string{"text", "svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDenominators(t *testing.T) {
	got, err := parseDenominators("32, 16,8")
	if err != nil {
		t.Fatalf("parseDenominators: %v", err)
	}
	if !reflect.DeepEqual(got, []int{32, 16, 8}) {
		t.Errorf("parseDenominators = %v, want [32 16 8]", got)
	}
}

func TestParseDenominatorsEmpty(t *testing.T) {
	got, err := parseDenominators("  ")
	if err != nil {
		t.Fatalf("parseDenominators: %v", err)
	}
	if got != nil {
		t.Errorf("parseDenominators(blank) = %v, want nil", got)
	}
}

func TestParseDenominatorsRejectsGarbage(t *testing.T) {
	if _, err := parseDenominators("16,eight"); err == nil {
		t.Error("expected error for non-numeric graduation")
	}
}
