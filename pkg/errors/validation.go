package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateHexColor checks that s is a "#rrggbb" colour.
func ValidateHexColor(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return New(ErrCodeInvalidDeck, "colour %q must have the form #rrggbb", s)
	}
	for _, r := range s[1:] {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return New(ErrCodeInvalidDeck, "colour %q contains a non-hex digit %q", s, r)
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output path.
// Empty means stdout and is accepted.
func ValidateOutputPath(path string) error {
	if path == "" {
		return nil
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}
	return nil
}
