// Package service contains the lookup workflow
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tgage/internal/adapters/telegram"
	"tgage/internal/core/estimate"
	"tgage/internal/core/handle"
	"tgage/internal/platform/config"
	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/logger"
	"tgage/internal/platform/metrics"
	pstrings "tgage/internal/platform/strings"
	"tgage/internal/services/api/lookup/domain"
)

// DefaultDelay is the pause before each upstream resolution
const DefaultDelay = time.Second

// Options tunes the lookup workflow
type Options struct {
	// Delay is waited before resolving, 0 disables it
	Delay   time.Duration
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// OptionsFromEnv reads TELEGRAM_LOOKUP_DELAY
func OptionsFromEnv(cfg config.Conf) Options {
	return Options{Delay: cfg.Prefix("TELEGRAM_").MayDuration("LOOKUP_DELAY", DefaultDelay)}
}

// Service defines the lookup service contract
type Service interface {
	domain.ServicePort
}

// Svc resolves a username upstream and estimates its age, falling back to the
// username alone when Telegram cannot answer
type Svc struct {
	up      domain.Upstream
	est     *estimate.Estimator
	opts    Options
	metrics *metrics.Metrics
	now     func() time.Time
	sleep   func(context.Context, time.Duration) error
}

// New constructs a lookup service. up may be nil, in which case every lookup falls back
func New(up domain.Upstream, est *estimate.Estimator, opts Options) *Svc {
	if est == nil {
		panic("lookup.Service requires a non nil Estimator")
	}
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Svc{
		up:      up,
		est:     est,
		opts:    opts,
		metrics: opts.Metrics,
		now:     now,
		sleep:   sleepCtx,
	}
}

// Lookup returns the profile and age estimate for a username. Upstream
// failures never surface; only cancellation does. The classifier sees raw with
// one leading "@" removed, the canonical form is only used to ask Telegram
func (s *Svc) Lookup(ctx context.Context, raw string) (domain.Profile, error) {
	name := estimate.StripHandle(raw)
	canon := handle.Canonical(raw)
	if !handle.Valid(canon) {
		return s.fallback(name, metrics.LookupInvalid), nil
	}
	ctx = logger.WithUsername(ctx, canon)
	log := logger.C(ctx)

	if s.opts.Delay > 0 {
		if err := s.sleep(ctx, s.opts.Delay); err != nil {
			s.metrics.ObserveLookup(metrics.LookupError)
			return domain.Profile{}, perr.Wrap(err, perr.CodeOf(err), "lookup canceled")
		}
	}

	if s.up == nil {
		return s.fallback(name, metrics.LookupFallback), nil
	}

	chat, err := s.up.ChatByUsername(ctx, canon)
	if err != nil || chat.ID == 0 {
		if cerr := ctx.Err(); cerr != nil {
			s.metrics.ObserveLookup(metrics.LookupError)
			return domain.Profile{}, perr.Wrap(cerr, perr.CodeOf(cerr), "lookup canceled")
		}
		log.Warn().Err(err).Msg("telegram resolution failed, falling back to username estimate")
		return s.fallback(name, metrics.LookupFallback), nil
	}

	return s.resolved(ctx, name, chat), nil
}

func (s *Svc) resolved(ctx context.Context, name string, chat telegram.Chat) domain.Profile {
	username := strings.TrimPrefix(chat.Username, "@")
	if username == "" {
		username = name
	}
	id := strconv.FormatInt(chat.ID, 10)
	now := s.now()
	res := s.est.Estimate(id, username, now)
	s.observe(metrics.LookupResolved, res)

	return domain.Profile{
		Username:          username,
		Nickname:          strings.TrimSpace(chat.FirstName + " " + chat.LastName),
		Avatar:            s.avatar(ctx, chat.ID),
		Followers:         chat.ParticipantCount,
		Verified:          chat.Verified,
		Description:       pstrings.FirstNonEmpty(chat.Description, chat.Bio),
		Region:            domain.UnknownRegion,
		UserID:            id,
		FirstName:         chat.FirstName,
		LastName:          chat.LastName,
		EstimatedDate:     estimate.FormatDate(res.EstimatedDate),
		EstimatedRange:    res.DateRange,
		AccountAge:        estimate.HumanAge(res.EstimatedDate, now),
		Confidence:        res.Confidence,
		Method:            res.Method,
		Accuracy:          res.Accuracy,
		EstimationDetails: details(res, domain.NoteResolved),
		Resolved:          true,
	}
}

func (s *Svc) fallback(name, outcome string) domain.Profile {
	now := s.now()
	res := s.est.Estimate(estimate.SentinelIdentifier, name, now)
	s.observe(outcome, res)

	return domain.Profile{
		Username:          name,
		Region:            domain.UnknownRegion,
		UserID:            estimate.SentinelIdentifier,
		EstimatedDate:     estimate.FormatDate(res.EstimatedDate),
		EstimatedRange:    res.DateRange,
		AccountAge:        estimate.HumanAge(res.EstimatedDate, now),
		Confidence:        res.Confidence,
		Method:            res.Method,
		Accuracy:          res.Accuracy,
		EstimationDetails: details(res, domain.NoteFallback),
	}
}

// avatar resolves the first profile photo; failures leave it empty
func (s *Svc) avatar(ctx context.Context, userID int64) string {
	log := logger.C(ctx)
	photos, err := s.up.GetUserProfilePhotos(ctx, userID, 1)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("profile photos unavailable")
		return ""
	}
	fileID := photos.FirstFileID()
	if fileID == "" {
		return ""
	}
	f, err := s.up.GetFile(ctx, fileID)
	if err != nil {
		log.Warn().Err(err).Str("file_id", fileID).Msg("profile photo file unavailable")
		return ""
	}
	return s.up.FileURL(f.FilePath)
}

func (s *Svc) observe(outcome string, res estimate.Result) {
	s.metrics.ObserveLookup(outcome)
	s.metrics.ObserveEstimate(string(res.Confidence))
}

func details(res estimate.Result, note string) domain.EstimationDetails {
	all := res.AllEstimates
	if all == nil {
		all = []estimate.WeightedEstimate{}
	}
	return domain.EstimationDetails{AllEstimates: all, Note: note}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
