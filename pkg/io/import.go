package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/framewright/framewright/pkg/frame"
)

// ReadDesignJSON decodes a JSON design from r.
//
// The input must be a JSON object whose keys follow [frame.Design]
// field names; unknown keys are ignored and missing keys default to
// zero. The decoded design is validated and normalized through
// [frame.New], so ReadDesignJSON returns an error if:
//
//   - The JSON is malformed
//   - An artwork dimension is missing, zero, or negative
//   - Any measurement is negative or not a finite number
//
// The returned design is independent of r and can be modified safely
// after ReadDesignJSON returns. ReadDesignJSON does not close r.
func ReadDesignJSON(r io.Reader) (frame.Design, error) {
	var d frame.Design
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return frame.Design{}, fmt.Errorf("decode: %w", err)
	}
	return frame.New(d)
}

// ReadDesignTOML decodes a TOML design from r.
//
// The document uses the same keys as the JSON format
// (artwork_height = 8.5, mat_width_top_bottom = 2, ...). Like
// [ReadDesignJSON], the result is validated and normalized through
// [frame.New].
func ReadDesignTOML(r io.Reader) (frame.Design, error) {
	var d frame.Design
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return frame.Design{}, fmt.Errorf("decode: %w", err)
	}
	return frame.New(d)
}

// ImportDesignJSON reads a JSON file at path and returns the decoded,
// normalized design.
//
// ImportDesignJSON opens the file, decodes it using [ReadDesignJSON],
// and closes the file. Errors wrap the underlying cause with the file
// path for context.
func ImportDesignJSON(path string) (frame.Design, error) {
	return importDesign(path, ReadDesignJSON)
}

// ImportDesignTOML reads a TOML file at path and returns the decoded,
// normalized design.
func ImportDesignTOML(path string) (frame.Design, error) {
	return importDesign(path, ReadDesignTOML)
}

// ImportDesign reads a design file at path, choosing the codec by
// extension: .toml decodes as TOML, everything else as JSON.
func ImportDesign(path string) (frame.Design, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ImportDesignTOML(path)
	}
	return ImportDesignJSON(path)
}

func importDesign(path string, read func(io.Reader) (frame.Design, error)) (frame.Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return frame.Design{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := read(f)
	if err != nil {
		return frame.Design{}, fmt.Errorf("import %s: %w", path, err)
	}
	return d, nil
}
