// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"tgage/internal/adapters/telegram"
	"tgage/internal/core/estimate"
	"tgage/internal/platform/config"
	"tgage/internal/platform/logger"
	"tgage/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log       logger.Logger
	Cfg       config.Conf
	Estimator *estimate.Estimator
	Telegram  *telegram.Client
	Metrics   *metrics.Metrics

	// Now is the clock; nil means time.Now in UTC
	Now func() time.Time
}

// Clock returns Now or a UTC wall clock
func (d Deps) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return func() time.Time { return time.Now().UTC() }
}

// Engine returns the configured estimator or the process default
func (d Deps) Engine() *estimate.Estimator {
	if d.Estimator != nil {
		return d.Estimator
	}
	return estimate.Default()
}
