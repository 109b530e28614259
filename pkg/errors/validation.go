package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputName validates a generated file name for safety. Names are
// joined under the destination directory, so anything that could escape it
// is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPath, "output name too long (max 256 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "output name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "output name cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateManifestFilename validates a manifest file argument. Unlike output
// names it may carry a path, but not traversal or null bytes.
func ValidateManifestFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidManifest, "manifest path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidManifest, "manifest path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "manifest path contains invalid characters")
		}
	}

	return nil
}

// ValidateDestDir validates a destination directory argument.
func ValidateDestDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "destination directory cannot be empty")
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "destination directory contains invalid characters")
		}
	}

	return nil
}
