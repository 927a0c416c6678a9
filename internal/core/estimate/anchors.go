// Package estimate infers when a Telegram account was created from two weak
// signals: the numeric user id and the shape of the username.
// Everything here is pure and safe for concurrent use once constructed
package estimate

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed anchors.yaml
var embeddedAnchors []byte

const dateLayout = "2006-01-02"

// AnchorPoint pins a user id to the calendar date it was handed out around
type AnchorPoint struct {
	ID   uint64    `json:"id"`
	Date time.Time `json:"date"`
	Note string    `json:"note,omitempty"`
}

// AnchorTable is an ordered, read-only list of anchors plus the date the
// table was last calibrated. Interpolated dates never exceed the cutoff
type AnchorTable struct {
	anchors []AnchorPoint
	cutoff  time.Time
}

type rawAnchor struct {
	ID   uint64 `yaml:"id"`
	Date string `yaml:"date"`
	Note string `yaml:"note,omitempty"`
}

type rawAnchorFile struct {
	Cutoff  string      `yaml:"cutoff"`
	Anchors []rawAnchor `yaml:"anchors"`
}

// NewAnchorTable validates points and returns a table that owns a copy of them.
// A zero cutoff defaults to the last anchor's date
func NewAnchorTable(points []AnchorPoint, cutoff time.Time) (*AnchorTable, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("estimate: anchor table needs at least 2 points, got %d", len(points))
	}
	cp := make([]AnchorPoint, len(points))
	for i, p := range points {
		cp[i] = AnchorPoint{ID: p.ID, Date: p.Date.UTC(), Note: p.Note}
		if i == 0 {
			continue
		}
		prev := cp[i-1]
		if cp[i].ID <= prev.ID {
			return nil, fmt.Errorf("estimate: anchor %d id %d not above previous id %d", i, cp[i].ID, prev.ID)
		}
		if !cp[i].Date.After(prev.Date) {
			return nil, fmt.Errorf("estimate: anchor %d date %s not after previous date %s",
				i, cp[i].Date.Format(dateLayout), prev.Date.Format(dateLayout))
		}
	}
	if cutoff.IsZero() {
		cutoff = cp[len(cp)-1].Date
	}
	return &AnchorTable{anchors: cp, cutoff: cutoff.UTC()}, nil
}

// ParseAnchors decodes a YAML anchor document
func ParseAnchors(b []byte) (*AnchorTable, error) {
	var raw rawAnchorFile
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("estimate: parse anchors: %w", err)
	}
	points := make([]AnchorPoint, 0, len(raw.Anchors))
	for i, a := range raw.Anchors {
		d, err := time.Parse(dateLayout, a.Date)
		if err != nil {
			return nil, fmt.Errorf("estimate: anchor %d date %q: %w", i, a.Date, err)
		}
		points = append(points, AnchorPoint{ID: a.ID, Date: d, Note: a.Note})
	}
	var cutoff time.Time
	if raw.Cutoff != "" {
		c, err := time.Parse(dateLayout, raw.Cutoff)
		if err != nil {
			return nil, fmt.Errorf("estimate: cutoff %q: %w", raw.Cutoff, err)
		}
		cutoff = c
	}
	return NewAnchorTable(points, cutoff)
}

// LoadAnchorsFile reads and parses an anchor override file
func LoadAnchorsFile(path string) (*AnchorTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("estimate: read anchors %s: %w", path, err)
	}
	return ParseAnchors(b)
}

// DefaultAnchors returns the embedded calibration table
func DefaultAnchors() *AnchorTable {
	t, err := ParseAnchors(embeddedAnchors)
	if err != nil {
		panic(err)
	}
	return t
}

// Anchors returns a copy of the table rows in order
func (t *AnchorTable) Anchors() []AnchorPoint {
	out := make([]AnchorPoint, len(t.anchors))
	copy(out, t.anchors)
	return out
}

// Cutoff is the latest date an interpolation may return
func (t *AnchorTable) Cutoff() time.Time { return t.cutoff }

// Len returns the number of anchors
func (t *AnchorTable) Len() int { return len(t.anchors) }

// Ceiling is the first identifier the table no longer covers
func (t *AnchorTable) Ceiling() uint64 { return t.anchors[len(t.anchors)-1].ID }
