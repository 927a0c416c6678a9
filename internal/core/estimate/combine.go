package estimate

import (
	"regexp"
	"strconv"
	"time"
)

// Confidence is an ordinal weight attached to a single estimate
type Confidence int

const (
	// ConfidenceLow is the weakest signal weight
	ConfidenceLow Confidence = 1
	// ConfidenceMedium is used for username shape estimates
	ConfidenceMedium Confidence = 2
	// ConfidenceHigh is used for identifier interpolation
	ConfidenceHigh Confidence = 3
)

// Label is the confidence rating reported for a combined result
type Label string

const (
	LabelVeryLow Label = "very_low"
	LabelLow     Label = "low"
	LabelMedium  Label = "medium"
	LabelHigh    Label = "high"
)

// Method names reported as estimate provenance
const (
	MethodIdentifier = "User ID Analysis"
	MethodUsername   = "Username Pattern"
	MethodDefault    = "Default"
	MethodCombined   = "Combined"
)

// Accuracy radius labels
const (
	Accuracy3Months  = "±3 months"
	Accuracy6Months  = "±6 months"
	Accuracy12Months = "±12 months"
)

// WeightedEstimate is one signal's date with its weight and provenance
type WeightedEstimate struct {
	Date       time.Time  `json:"date"`
	Confidence Confidence `json:"confidence"`
	Method     string     `json:"method"`
}

// DateRange holds human-readable bounds around an estimate
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Result is the fused answer for one lookup
type Result struct {
	EstimatedDate time.Time          `json:"estimated_date"`
	Confidence    Label              `json:"confidence"`
	Method        string             `json:"method"`
	Accuracy      string             `json:"accuracy"`
	DateRange     DateRange          `json:"date_range"`
	AllEstimates  []WeightedEstimate `json:"all_estimates,omitempty"`
}

// FuseFunc collapses non-empty estimates into one date
type FuseFunc func([]WeightedEstimate) time.Time

// LabelFunc picks the confidence label and primary method for non-empty estimates
type LabelFunc func([]WeightedEstimate) (Label, string)

// AccuracyFunc maps a confidence label to an accuracy radius label
type AccuracyFunc func(Label) string

// Combiner fuses weighted estimates. Each policy can be swapped independently
type Combiner struct {
	Fuse     FuseFunc
	Label    LabelFunc
	Accuracy AccuracyFunc
}

// DefaultCombiner is weighted mean, max-weight labelling, fixed radius table
func DefaultCombiner() Combiner {
	return Combiner{Fuse: WeightedMean, Label: MaxWeightLabel, Accuracy: AccuracyFor}
}

// Combine fuses the non-nil estimates. With none it falls back to now with very low confidence
func (c Combiner) Combine(now time.Time, in ...*WeightedEstimate) Result {
	ests := make([]WeightedEstimate, 0, len(in))
	for _, e := range in {
		if e != nil {
			ests = append(ests, *e)
		}
	}
	if len(ests) == 0 {
		return Result{
			EstimatedDate: now,
			Confidence:    LabelVeryLow,
			Method:        MethodDefault,
			Accuracy:      Accuracy12Months,
			DateRange:     RangeAround(now, Accuracy12Months),
		}
	}

	c = c.withDefaults()
	final := c.Fuse(ests)
	label, method := c.Label(ests)
	acc := c.Accuracy(label)
	return Result{
		EstimatedDate: final,
		Confidence:    label,
		Method:        method,
		Accuracy:      acc,
		DateRange:     RangeAround(final, acc),
		AllEstimates:  ests,
	}
}

func (c Combiner) withDefaults() Combiner {
	if c.Fuse == nil {
		c.Fuse = WeightedMean
	}
	if c.Label == nil {
		c.Label = MaxWeightLabel
	}
	if c.Accuracy == nil {
		c.Accuracy = AccuracyFor
	}
	return c
}

// WeightedMean is sum(ms_i * w_i) / sum(w_i), truncated to the millisecond
func WeightedMean(ests []WeightedEstimate) time.Time {
	var sum, total int64
	for _, e := range ests {
		sum += e.Date.UnixMilli() * int64(e.Confidence)
		total += int64(e.Confidence)
	}
	if total <= 0 {
		return ests[0].Date
	}
	return time.UnixMilli(sum / total).UTC()
}

// MaxWeightLabel labels by the strongest weight present and reports the
// method of the first estimate carrying it
func MaxWeightLabel(ests []WeightedEstimate) (Label, string) {
	top := ests[0].Confidence
	for _, e := range ests[1:] {
		if e.Confidence > top {
			top = e.Confidence
		}
	}
	method := MethodCombined
	for _, e := range ests {
		if e.Confidence == top {
			method = e.Method
			break
		}
	}
	switch top {
	case ConfidenceHigh:
		return LabelHigh, method
	case ConfidenceMedium:
		return LabelMedium, method
	default:
		return LabelLow, method
	}
}

// AccuracyFor maps high to ±3, medium to ±6 and anything else to ±12 months
func AccuracyFor(l Label) string {
	switch l {
	case LabelHigh:
		return Accuracy3Months
	case LabelMedium:
		return Accuracy6Months
	default:
		return Accuracy12Months
	}
}

var monthsRe = regexp.MustCompile(`(\d+)\s*months?`)

// AccuracyMonths extracts the month count from an accuracy label, 0 if absent
func AccuracyMonths(accuracy string) int {
	m := monthsRe.FindStringSubmatch(accuracy)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// RangeAround returns date minus and plus the accuracy radius as formatted dates
func RangeAround(date time.Time, accuracy string) DateRange {
	n := AccuracyMonths(accuracy)
	return DateRange{
		Start: FormatDate(date.AddDate(0, -n, 0)),
		End:   FormatDate(date.AddDate(0, n, 0)),
	}
}
