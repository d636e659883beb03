package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/report"
)

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func exportJSON(v any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(v, f)
}

// WriteDesignJSON encodes a design as indented JSON and writes it to w.
// The output can be re-imported with [ReadDesignJSON] for round-trip
// editing.
func WriteDesignJSON(d frame.Design, w io.Writer) error {
	return writeJSON(d, w)
}

// ExportDesignJSON writes a design to a JSON file at path.
// This is a convenience wrapper around [WriteDesignJSON] for file-based
// output.
func ExportDesignJSON(d frame.Design, path string) error {
	return exportJSON(d, path)
}

// WriteReportJSON encodes a full cut sheet as indented JSON and writes
// it to w. Reports export one way; the embedded design is the part that
// round-trips.
func WriteReportJSON(r report.Report, w io.Writer) error {
	return writeJSON(r, w)
}

// ExportReportJSON writes a cut sheet to a JSON file at path.
func ExportReportJSON(r report.Report, path string) error {
	return exportJSON(r, path)
}
