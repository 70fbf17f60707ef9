// Package vibe turns a free-text mood into a deterministic two-stop HSL
// palette and formats it as CSS.
//
// The pipeline is: mood -> Normalize -> Hash (FNV-1a 32) -> Random
// (xorshift32) -> FromMood. Every step is pure, so the same normalized mood
// always yields the same Palette.
package vibe

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NeutralMood replaces a mood that is empty after normalization.
const NeutralMood = "neutral"

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// Normalize trims and lowercases a mood, substituting NeutralMood for an
// empty result. Trimming and case mapping follow the browser's String
// trim and toLowerCase, so non-ASCII moods normalize the same way.
func Normalize(mood string) string {
	n := Key(mood)
	if n == "" {
		return NeutralMood
	}
	return n
}

// Key is Normalize without the neutral fallback: the case-insensitive
// identity of a mood.
func Key(mood string) string {
	return Lower(Trim(mood))
}

// Trim removes leading and trailing whitespace and line terminators as
// ECMAScript defines them. Unlike strings.TrimSpace it strips U+FEFF and
// keeps U+0085.
func Trim(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}

func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Lower applies full Unicode lowercasing: final sigma becomes ς and İ
// becomes i followed by a combining dot.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upper applies full Unicode uppercasing, so ß becomes SS.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Hash returns the 32-bit FNV-1a seed for a mood. The mood is normalized
// first and hashed over its UTF-16 code units, so "Café" hashes the same
// way a browser's charCodeAt loop would.
func Hash(mood string) uint32 {
	h := fnvOffsetBasis
	for _, unit := range utf16.Encode([]rune(Normalize(mood))) {
		h ^= uint32(unit)
		h *= fnvPrime
	}
	return h
}
