// Package handle canonicalizes Telegram usernames taken from request paths
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove format chars (ZWJ ZWNJ FEFF etc)
// 4 Width fold fullwidth to ASCII
// 5 Trim surrounding whitespace and strip one leading "@"
//
// Case is preserved: the username classifier is case sensitive
package handle

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// MaxLen bounds canonical usernames in runes
const MaxLen = 64

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Canonical returns the canonical form of raw, "" when nothing is left
func Canonical(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToValidUTF8(raw, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}

	ns = strings.TrimSpace(ns)
	return strings.TrimPrefix(ns, "@")
}

// Valid reports whether s is a usable canonical username: 1..MaxLen printable
// runes without whitespace or path separators
func Valid(s string) bool {
	n := 0
	for _, r := range s {
		n++
		if n > MaxLen || !unicode.IsPrint(r) || unicode.IsSpace(r) || r == '/' || r == '\\' {
			return false
		}
	}
	return n > 0
}
