package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateRatio checks that a connectivity ratio lies in the closed interval [0, 1].
// NaN is rejected.
func ValidateRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return New(ErrCodeInvalidInput, "connectivity ratio must be bounded between [0, 1], given %v", ratio)
	}
	return nil
}

// ValidateWorldName validates a world name for use as an output file stem.
// The name ends up joined to an output directory, so it must be a plain
// basename.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 128 characters
//   - No control characters
//   - No path separators or traversal sequences
//   - No leading dot
func ValidateWorldName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "world name cannot be empty")
	}

	const maxNameLength = 128
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "world name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "world name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "world name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "world name cannot contain path traversal sequences (..)")
	}
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "world name cannot start with a dot")
	}

	return nil
}

// ValidateFormats checks each requested output format against the allowed set.
func ValidateFormats(formats []string, allowed map[string]bool) error {
	for _, f := range formats {
		if !allowed[f] {
			return New(ErrCodeInvalidFormat, "invalid format: %s", f)
		}
	}
	return nil
}
