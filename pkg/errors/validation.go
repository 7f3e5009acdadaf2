package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// maxColumnName bounds column and index names.
const maxColumnName = 256

// ValidateColumnName validates a table column or index name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTable, "column name cannot be empty")
	}

	if len(name) > maxColumnName {
		return New(ErrCodeInvalidTable, "column name too long (max %d characters)", maxColumnName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTable, "column name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateFileExtension checks that path ends in one of the allowed
// extensions (compared case-insensitively, with the leading dot).
func ValidateFileExtension(path string, allowed ...string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(allowed, ext) {
		return New(ErrCodeInvalidPath, "unsupported file extension %q (must be one of: %s)", ext, strings.Join(allowed, ", "))
	}

	return nil
}
