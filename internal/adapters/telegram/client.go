// Package telegram provides a paced, retrying Telegram Bot API client
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tgage/internal/platform/config"
	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/logger"
	"tgage/internal/platform/metrics"
	pstrings "tgage/internal/platform/strings"
)

const (
	baseURLDefault   = "https://api.telegram.org"
	defaultTimeout   = 10 * time.Second
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
	defaultMaxWait   = 30 * time.Second
	defaultRPS       = 20
	defaultBurst     = 5
	maxBody          = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// Retry config for 429 and 5xx responses and transport errors
	MaxRetries int
	RetryBase  time.Duration
	// MaxWait caps a single backoff; a larger retry_after fails fast instead
	MaxWait time.Duration

	// RPS and Burst feed a shared token bucket. RPS <= 0 disables pacing
	RPS   float64
	Burst int

	HTTPClient *http.Client
	Metrics    *metrics.Metrics
}

// OptionsFromEnv reads TELEGRAM_* keys. The token is required
func OptionsFromEnv(cfg config.Conf) Options {
	c := cfg.Prefix("TELEGRAM_")
	return Options{
		BaseURL:    c.MayURL("BASE_URL", baseURLDefault).String(),
		Token:      c.MustString("BOT_TOKEN"),
		Timeout:    c.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries: c.MayInt("MAX_RETRIES", defaultMaxRetry),
		RetryBase:  c.MayDuration("RETRY_BASE", defaultRetryBase),
		MaxWait:    c.MayDuration("MAX_WAIT", defaultMaxWait),
		RPS:        c.MayFloat64("RPS", defaultRPS),
		Burst:      c.MayInt("BURST", defaultBurst),
	}
}

// Client is a minimal Bot API client. It never logs or returns the token
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	sleep   func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.MaxWait <= 0 {
		o.MaxWait = defaultMaxWait
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	var lim *rate.Limiter
	if o.RPS > 0 {
		if o.Burst <= 0 {
			o.Burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(o.RPS), o.Burst)
	}
	c := &Client{
		http:    hc,
		opts:    o,
		limiter: lim,
		log:     *logger.Named("telegram"),
		metrics: o.Metrics,
		now:     time.Now,
		sleep:   sleepCtx,
	}
	c.log.Debug().
		Str("base_url", o.BaseURL).
		Str("token", pstrings.Mask(o.Token, 4)).
		Int("max_retries", o.MaxRetries).
		Float64("rps", o.RPS).
		Msg("telegram client ready")
	return c
}

// envelope is the Bot API response wrapper
type envelope struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result"`
	Description string              `json:"description"`
	ErrorCode   int                 `json:"error_code"`
	Parameters  *ResponseParameters `json:"parameters"`
}

// Call invokes a Bot API method with params and decodes the result into out.
// 429, 5xx and transport failures are retried with exponential backoff,
// honouring retry_after when Telegram sends one
func (c *Client) Call(ctx context.Context, method string, params url.Values, out any) error {
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				if cerr := ctx.Err(); cerr != nil {
					return cerr
				}
				return perr.Wrapf(err, perr.ErrorCodeTimeout, "telegram %s pacing", method)
			}
		}

		start := c.now()
		err := c.once(ctx, method, params, out)
		elapsed := c.now().Sub(start)
		c.metrics.ObserveUpstream(method, outcome(err), elapsed)

		if err == nil {
			c.log.Debug().Str("method", method).Int("attempt", attempts).Dur("latency", elapsed).Msg("telegram call ok")
			return nil
		}
		if !perr.Retryable(err) || ctx.Err() != nil {
			return err
		}
		wait := perr.RetryAfterOf(err)
		if wait <= 0 {
			wait = c.backoff(attempts)
		}
		if attempts >= c.opts.MaxRetries || wait > c.opts.MaxWait {
			return perr.WithRetryAfter(err, wait)
		}
		c.log.Warn().
			Err(err).
			Str("method", method).
			Int("attempt", attempts).
			Dur("retry_in", wait).
			Msg("telegram call failed retrying")
		c.metrics.ObserveRetry(method)
		if serr := c.sleep(ctx, wait); serr != nil {
			return serr
		}
		attempts++
	}
}

// once performs one HTTP round trip and classifies the outcome
func (c *Client) once(ctx context.Context, method string, params url.Values, out any) error {
	endpoint := c.opts.BaseURL + "/bot" + c.opts.Token + "/" + method
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return perr.Newf(perr.ErrorCodeUnknown, "telegram %s new request failed: %s", method, c.redact(err.Error()))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		return perr.Newf(perr.ErrorCodeUnavailable, "telegram %s transport: %s", method, c.redact(err.Error()))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("method", method).Msg("telegram close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Newf(perr.ErrorCodeUnavailable, "telegram %s read body: %s", method, c.redact(err.Error()))
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return perr.Newf(perr.ErrorCodeUnavailable, "telegram %s status %d", method, resp.StatusCode)
		}
		return perr.Newf(perr.ErrorCodeUpstream, "telegram %s undecodable response (status %d)", method, resp.StatusCode)
	}
	if resp.StatusCode == http.StatusOK && env.OK {
		if out == nil || len(env.Result) == 0 {
			return nil
		}
		if err := json.Unmarshal(env.Result, out); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUpstream, "telegram %s decode result", method)
		}
		return nil
	}

	apiErr := &APIError{
		Method:      method,
		Status:      resp.StatusCode,
		Code:        env.ErrorCode,
		Description: env.Description,
	}
	if env.Parameters != nil && env.Parameters.RetryAfter > 0 {
		apiErr.RetryAfter = time.Duration(env.Parameters.RetryAfter) * time.Second
	}
	return apiErr.toPerr()
}

// redact strips the token out of messages that embed the request URL
func (c *Client) redact(s string) string { return pstrings.Redact(s, c.opts.Token) }

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > c.opts.MaxWait {
		return c.opts.MaxWait
	}
	return d
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return perr.CodeOf(err).String()
	}
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
