// Package xstr holds the UTF-8 aware string helpers the table renderer is
// built on. Widths are counted in code points: combining marks and wide
// East-Asian glyphs are not treated specially.
package xstr

import (
	"strings"
	"unicode/utf8"
)

// Len returns the number of code points in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Offset returns the byte offset at which the n:th code point of s starts.
// Offsets past the end of s are clamped to len(s); n <= 0 yields 0.
func Offset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// Truncate returns the longest prefix of s holding at most n code points.
// It never splits a multi-byte sequence.
func Truncate(s string, n int) string {
	return s[:Offset(s, n)]
}

// Spaces returns a run of n spaces (empty for n <= 0).
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
