package textutil

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis marks text that was cut by Clip.
const Ellipsis = "…"

// Truncate returns at most limit runes of s. No marker is added.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// Clip trims s, keeps its first limit runes, folds line breaks into spaces
// and trims again. Ellipsis is appended when the trimmed input was longer than
// limit, so the result holds at most limit runes of text plus the marker.
func Clip(s string, limit int) string {
	text := strings.TrimSpace(s)
	cut := Truncate(text, limit)
	clipped := strings.TrimSpace(foldLines(cut))
	if utf8.RuneCountInString(text) > limit {
		clipped += Ellipsis
	}
	return clipped
}

// Bound leaves s untouched when it already fits in limit runes and applies
// Clip otherwise.
func Bound(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return Clip(s, limit)
}

// foldLines replaces every line break with a single space. CRLF counts as one
// break.
func foldLines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
