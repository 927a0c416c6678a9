package estimate

import (
	"sync"
	"time"
)

// Estimator runs both signals through the combiner
type Estimator struct {
	anchors    *AnchorTable
	classifier *Classifier
	combiner   Combiner
}

// Option customizes an Estimator
type Option func(*Estimator)

// WithAnchors swaps the anchor table
func WithAnchors(t *AnchorTable) Option {
	return func(e *Estimator) {
		if t != nil {
			e.anchors = t
		}
	}
}

// WithClassifier swaps the username rules
func WithClassifier(c *Classifier) Option {
	return func(e *Estimator) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithCombiner swaps the fusion policy
func WithCombiner(c Combiner) Option {
	return func(e *Estimator) { e.combiner = c }
}

// New builds an Estimator on the embedded anchors and default rules
func New(opts ...Option) *Estimator {
	e := &Estimator{
		anchors:    DefaultAnchors(),
		classifier: NewClassifier(defaultRules),
		combiner:   DefaultCombiner(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

var (
	defOnce sync.Once
	def     *Estimator
)

// Default returns a process-wide Estimator with built-in tables
func Default() *Estimator {
	defOnce.Do(func() { def = New() })
	return def
}

// Anchors exposes the anchor table
func (e *Estimator) Anchors() *AnchorTable { return e.anchors }

// Classifier exposes the username rules
func (e *Estimator) Classifier() *Classifier { return e.classifier }

// IdentifierEstimate returns the high-confidence estimate for id, nil when the
// id is the sentinel or outside the table
func (e *Estimator) IdentifierEstimate(identifier string) *WeightedEstimate {
	if IsSentinel(identifier) {
		return nil
	}
	d, ok := e.anchors.EstimateFromIdentifier(identifier)
	if !ok {
		return nil
	}
	return &WeightedEstimate{Date: d, Confidence: ConfidenceHigh, Method: MethodIdentifier}
}

// UsernameEstimate returns the medium-confidence estimate for name, nil when no rule matches
func (e *Estimator) UsernameEstimate(username string) *WeightedEstimate {
	d, ok := e.classifier.EstimateFromUsername(username)
	if !ok {
		return nil
	}
	return &WeightedEstimate{Date: d, Confidence: ConfidenceMedium, Method: MethodUsername}
}

// Estimate always returns a complete result; missing signals only lower the confidence
func (e *Estimator) Estimate(identifier, username string, now time.Time) Result {
	return e.combiner.Combine(now, e.IdentifierEstimate(identifier), e.UsernameEstimate(username))
}
