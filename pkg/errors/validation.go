package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateDimension validates a linear dimension in inches.
// Dimensions must be finite and strictly positive.
func ValidateDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number", field)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %v", field, v)
	}
	return nil
}

// ValidateNonNegative validates a measurement that may be zero
// (mat widths, overlaps, margins, thicknesses).
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s cannot be negative, got %v", field, v)
	}
	return nil
}

// ValidateDenominators validates a tape-measure denominator set.
// Denominators must be positive and the set non-empty.
func ValidateDenominators(denoms []int) error {
	if len(denoms) == 0 {
		return New(ErrCodeInvalidInput, "denominator set cannot be empty")
	}
	for _, d := range denoms {
		if d <= 0 {
			return New(ErrCodeInvalidInput, "denominator must be positive, got %d", d)
		}
	}
	return nil
}

// ValidateDesignName validates a saved-design name for safety and correctness.
// Names are used as storage keys (and as file names in the file-backed store),
// so the rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateDesignName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "design name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "design name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "design name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "design name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
