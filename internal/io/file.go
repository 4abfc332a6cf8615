// Package ioutils provides file system helpers for the artwork cache:
// filename sanitization, directory creation, and image processing.
package ioutils

import (
	"os"
	"regexp"
	"strings"
)

// EnsureDir creates a directory and all parent directories if they don't
// exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names. Cache keys are derived from album names supplied by
// humans and remote catalogs, so anything can show up here.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Best: Disc 1/2")  // Returns "Best_ Disc 1_2"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
