package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// ValidatePath validates a dataset or output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateOneOf checks that value is one of allowed, reporting what was
// being validated in the message.
func ValidateOneOf(code Code, what, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(code, "invalid %s: %q (must be one of %s)", what, value, strings.Join(allowed, ", "))
}

// ValidateFormats checks every requested output format against allowed.
func ValidateFormats(formats, allowed []string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "no output format requested")
	}
	for _, f := range formats {
		if err := ValidateOneOf(ErrCodeInvalidFormat, "format", f, allowed); err != nil {
			return err
		}
	}
	return nil
}

// ValidateItemPoints checks that a connector geometry has two endpoints and
// at most one control point, all finite.
func ValidateItemPoints(idx int, points [][2]float64) error {
	if len(points) < 2 || len(points) > 3 {
		return New(ErrCodeInvalidDataset, "link %d: expected 2 or 3 points, got %d", idx, len(points))
	}
	for _, p := range points {
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return New(ErrCodeInvalidDataset, "link %d: non-finite coordinate", idx)
			}
		}
	}
	return nil
}

// ValidateProgress checks a draw progress value.
func ValidateProgress(p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return New(ErrCodeInvalidInput, "progress must be within [0, 1], got %v", p)
	}
	return nil
}

// ValidateFormat checks a single output format against allowed.
func ValidateFormat(format string, allowed []string) error {
	return ValidateOneOf(ErrCodeInvalidFormat, "format", format, allowed)
}

// ValidateLabelPosition checks a label placement policy. An empty position
// is accepted and means the default.
func ValidateLabelPosition(pos string, allowed []string) error {
	if pos == "" {
		return nil
	}
	return ValidateOneOf(ErrCodeInvalidPosition, "label position", pos, allowed)
}

// ValidateSymbolKind checks a marker kind with known. Empty kinds and the
// "none" sentinel are always accepted.
func ValidateSymbolKind(kind string, known func(string) bool) error {
	if kind == "" || kind == "none" || known(kind) {
		return nil
	}
	return New(ErrCodeInvalidSymbol, "unknown symbol kind %q", kind)
}
