package naming

import (
	"fmt"
	"strings"
	"unicode"
)

// Sanitize replaces every whitespace or punctuation rune in s with an
// underscore. Each offending rune becomes exactly one underscore and nothing
// is trimmed, so "a, b" becomes "a__b".
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			return '_'
		}
		return r
	}, s)
}

// FormatScreenSize renders a screen size as "<width>x<height>" with both
// dimensions rounded to whole points.
func FormatScreenSize(width, height float64) string {
	return fmt.Sprintf("%.0fx%.0f", width, height)
}
