package estimate

import (
	"math/big"
	"strings"
	"time"
)

// SentinelIdentifier is what callers pass when no account id was resolved
const SentinelIdentifier = "0"

// parseIdentifier accepts base-10 digits only, surrounding whitespace allowed
func parseIdentifier(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return n, true
}

// IsSentinel reports whether id carries no real account: empty, zero, or unparseable
func IsSentinel(id string) bool {
	n, ok := parseIdentifier(id)
	return !ok || n.Sign() == 0
}

// EstimateFromIdentifier linearly interpolates a creation date between the two
// anchors bracketing id. ok is false for malformed ids and for ids outside
// [first anchor, last anchor)
func (t *AnchorTable) EstimateFromIdentifier(id string) (time.Time, bool) {
	n, ok := parseIdentifier(id)
	if !ok {
		return time.Time{}, false
	}
	for i := 0; i < len(t.anchors)-1; i++ {
		lo, hi := t.anchors[i], t.anchors[i+1]
		loID := new(big.Int).SetUint64(lo.ID)
		hiID := new(big.Int).SetUint64(hi.ID)
		if n.Cmp(loID) < 0 || n.Cmp(hiID) >= 0 {
			continue
		}
		est := interpolate(n, loID, hiID, lo.Date, hi.Date)
		if est.After(t.cutoff) {
			return t.cutoff, true
		}
		return est, true
	}
	return time.Time{}, false
}

// interpolate keeps the id differences exact and only drops to float64 for the ratio
func interpolate(n, loID, hiID *big.Int, loDate, hiDate time.Time) time.Time {
	num := new(big.Int).Sub(n, loID)
	den := new(big.Int).Sub(hiID, loID)
	fraction, _ := new(big.Rat).SetFrac(num, den).Float64()

	start := loDate.UnixMilli()
	span := hiDate.UnixMilli() - start
	return time.UnixMilli(start + int64(fraction*float64(span))).UTC()
}
