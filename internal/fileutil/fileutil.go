// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTitle is used when no title can be derived from a path.
const DefaultTitle = "Untitled"

// TitleFromPath derives a document title from a file path: the base name
// with its extension stripped, split on hyphens, each segment capitalized,
// rejoined with spaces.
//
// Examples:
//   - "docs/my-api.restdown" -> "My Api"
//   - "sshkeys.md"           -> "Sshkeys"
//   - ""                     -> "Untitled"
func TitleFromPath(path string) string {
	if path == "" {
		return DefaultTitle
	}

	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return DefaultTitle
	}

	segments := strings.Split(base, "-")
	for i, seg := range segments {
		segments[i] = capitalize(seg)
	}
	return strings.Join(segments, " ")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "joyent"       -> false (name)
//   - "./brands/api" -> true (relative path)
//   - "my-brand"     -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
