// Package service runs offline estimates without calling Telegram
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tgage/internal/core/estimate"
	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/metrics"
	"tgage/internal/services/api/estimate/domain"
)

const isoDate = "2006-01-02"

// Service defines the estimate service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the estimate service
type Svc struct {
	est     *estimate.Estimator
	now     func() time.Time
	metrics *metrics.Metrics
}

// New constructs an estimate service; now and m may be nil
func New(est *estimate.Estimator, now func() time.Time, m *metrics.Metrics) *Svc {
	if est == nil {
		panic("estimate.Service requires a non nil Estimator")
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Svc{est: est, now: now, metrics: m}
}

// Estimate fuses whichever signals q carries
func (s *Svc) Estimate(ctx context.Context, q domain.Query) (domain.View, error) {
	if err := ctx.Err(); err != nil {
		return domain.View{}, err
	}
	id := strings.TrimSpace(q.UserID)
	name := estimate.StripHandle(q.Username)
	if id == "" && name == "" {
		return domain.View{}, perr.WithField(perr.Validationf("user_id or username is required"), "user_id")
	}
	if id == "" {
		id = estimate.SentinelIdentifier
	}

	now := s.now()
	res := s.est.Estimate(id, name, now)
	s.metrics.ObserveEstimate(string(res.Confidence))

	all := res.AllEstimates
	if all == nil {
		all = []estimate.WeightedEstimate{}
	}
	return domain.View{
		UserID:        strings.TrimSpace(q.UserID),
		Username:      name,
		EstimatedAt:   res.EstimatedDate,
		EstimatedDate: estimate.FormatDate(res.EstimatedDate),
		DateRange:     res.DateRange,
		AccountAge:    estimate.HumanAge(res.EstimatedDate, now),
		Confidence:    res.Confidence,
		Method:        res.Method,
		Accuracy:      res.Accuracy,
		AllEstimates:  all,
	}, nil
}

// Batch estimates each item in order; the first invalid item fails the batch
func (s *Svc) Batch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	if len(in.Items) > domain.MaxBatch {
		return domain.BatchOutput{}, perr.WithField(perr.Validationf("items must be at most %d", domain.MaxBatch), "items")
	}
	out := domain.BatchOutput{Items: make([]domain.View, 0, len(in.Items))}
	for i, q := range in.Items {
		v, err := s.Estimate(ctx, q)
		if err != nil {
			field := "items[" + strconv.Itoa(i) + "]"
			if e, ok := perr.As(err); ok && e.Field() != "" {
				field += "." + e.Field()
			}
			return domain.BatchOutput{}, perr.WithField(err, field)
		}
		out.Items = append(out.Items, v)
	}
	return out, nil
}

// Tables lists the anchors and username rules in evaluation order
func (s *Svc) Tables(context.Context) domain.Tables {
	anchors := s.est.Anchors()
	t := domain.Tables{
		Cutoff:  anchors.Cutoff().Format(isoDate),
		Ceiling: anchors.Ceiling(),
	}
	for _, a := range anchors.Anchors() {
		t.Anchors = append(t.Anchors, domain.Anchor{ID: a.ID, Date: a.Date.Format(isoDate), Note: a.Note})
	}
	for _, r := range s.est.Classifier().Rules() {
		t.Rules = append(t.Rules, domain.Rule{Name: r.Name, Pattern: r.Pattern.String(), Era: r.Era.Format(isoDate)})
	}
	return t
}
