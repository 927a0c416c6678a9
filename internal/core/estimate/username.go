package estimate

import (
	"regexp"
	"strings"
	"time"
)

// PatternRule maps a username shape to the era that shape was typical of
type PatternRule struct {
	Name    string
	Pattern *regexp.Regexp
	Era     time.Time
}

func mustDate(s string) time.Time {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// defaultRules are evaluated top to bottom and the first match wins.
// Tighter shapes come first; moving a looser rule up shadows the ones below it
var defaultRules = []PatternRule{
	{Name: "default_handle", Pattern: regexp.MustCompile(`^user\d{7,9}$`), Era: mustDate("2013-08-01")},
	{Name: "early_adopter", Pattern: regexp.MustCompile(`^[a-z]{3,8}\d{2,4}$`), Era: mustDate("2014-06-01")},
	{Name: "generic", Pattern: regexp.MustCompile(`^\w{3,8}$`), Era: mustDate("2015-06-01")},
	// overlaps generic for len <= 8; order decides which era wins
	{Name: "short_custom", Pattern: regexp.MustCompile(`^.{1,8}$`), Era: mustDate("2016-01-01")},
}

// DefaultRules returns a copy of the built-in ordered rule list
func DefaultRules() []PatternRule {
	out := make([]PatternRule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// Classifier matches usernames against an ordered rule list
type Classifier struct {
	rules []PatternRule
}

// NewClassifier copies rules, preserving their order
func NewClassifier(rules []PatternRule) *Classifier {
	cp := make([]PatternRule, len(rules))
	copy(cp, rules)
	return &Classifier{rules: cp}
}

// Rules returns the rule list in evaluation order
func (c *Classifier) Rules() []PatternRule {
	out := make([]PatternRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// StripHandle removes a single leading "@"
func StripHandle(name string) string { return strings.TrimPrefix(name, "@") }

// Match returns the first rule matching name
func (c *Classifier) Match(name string) (PatternRule, bool) {
	if name == "" {
		return PatternRule{}, false
	}
	n := StripHandle(name)
	for _, r := range c.rules {
		if r.Pattern.MatchString(n) {
			return r, true
		}
	}
	return PatternRule{}, false
}

// EstimateFromUsername returns the era of the first matching rule
func (c *Classifier) EstimateFromUsername(name string) (time.Time, bool) {
	r, ok := c.Match(name)
	if !ok {
		return time.Time{}, false
	}
	return r.Era, true
}
