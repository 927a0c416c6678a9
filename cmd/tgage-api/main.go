// @title         Telegram Account Age API
// @version       1.0
// @description   Estimates when a Telegram account was created

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tgage/internal/adapters/telegram"
	"tgage/internal/core/estimate"
	"tgage/internal/platform/config"
	"tgage/internal/platform/logger"
	"tgage/internal/platform/metrics"
	phttp "tgage/internal/platform/net/http"

	"tgage/internal/services/api"
)

func main() {
	// .env first so every prefixed view below sees it
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Panic().Err(err).Msg("dotenv load failed")
	}

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	est := estimate.Default()
	if path := root.Prefix("ESTIMATOR_").MayString("ANCHORS_FILE", ""); path != "" {
		t, err := estimate.LoadAnchorsFile(path)
		if err != nil {
			l.Panic().Err(err).Str("path", path).Msg("anchor table override failed")
		}
		est = estimate.New(estimate.WithAnchors(t))
		l.Info().Str("path", path).Int("anchors", t.Len()).Msg("anchor table override loaded")
	}

	m := metrics.New(metrics.DefaultNamespace)

	tgOpts := telegram.OptionsFromEnv(root)
	tgOpts.Metrics = m
	tg := telegram.NewClient(tgOpts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_PORT, falls back to PORT)
	srv := phttp.NewServer(apiCfg)

	opts := api.OptionsFromEnv(apiCfg)
	opts.Telegram = tg
	opts.Estimator = est
	opts.Metrics = m
	api.Mount(srv.Router(), opts)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
