// Package strings provides small string and slice helpers shared across services
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Digits returns only the decimal digits of s
// Used for price coercion ("£1,200" -> "1200") and wa.me phone numbers
func Digits(s string) string {
	var b std.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Fold trims and lowercases s for loose comparisons (header names, filter values)
func Fold(s string) string { return std.ToLower(std.TrimSpace(s)) }

// Blank reports whether s is empty after trimming
func Blank(s string) bool { return std.TrimSpace(s) == "" }
