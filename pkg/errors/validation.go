package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates an output or input file path given on the command
// line or in a chart definition.
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

// ValidateDataKey validates a dataset key referenced from a definition file.
// Keys are plain identifiers and must not look like paths.
func ValidateDataKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "data key cannot be empty")
	}
	if strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return New(ErrCodeInvalidInput, "data key contains invalid characters: %q", key)
	}
	return nil
}

// chartIDRegex matches the canonical textual form of a UUID.
var chartIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateChartID validates a stored chart identifier.
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "chart id cannot be empty")
	}
	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid chart id: %q", id)
	}
	return nil
}

// ValidateFormat checks an output format name against the supported set.
func ValidateFormat(format string, supported ...string) error {
	for _, f := range supported {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of: %s)", format, strings.Join(supported, ", "))
}
