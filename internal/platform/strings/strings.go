// Package strings provides small string helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// FirstNonEmpty returns the first argument with non-whitespace content
func FirstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if std.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// MustPrefix normalizes and asserts a route prefix like /estimate.
// It ensures a single leading slash and no trailing slash and panics on an empty prefix
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Mask hides all but the last keep bytes of a secret, e.g. for logging bot tokens.
// Secrets no longer than keep*2 are fully masked
func Mask(secret string, keep int) string {
	if secret == "" {
		return ""
	}
	if keep < 0 || len(secret) <= keep*2 {
		return "***"
	}
	return "***" + secret[len(secret)-keep:]
}

// Redact replaces every occurrence of secret in s with a masked form
func Redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return std.ReplaceAll(s, secret, Mask(secret, 4))
}
