// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"tgage/internal/adapters/telegram"
	"tgage/internal/core/estimate"
	"tgage/internal/platform/config"
	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/metrics"
	phttp "tgage/internal/platform/net/http"

	"tgage/internal/modkit"
	"tgage/internal/modkit/httpkit"
	"tgage/internal/modkit/module"
	"tgage/internal/modkit/swaggerkit"

	estimatemod "tgage/internal/services/api/estimate/module"
	lookupmod "tgage/internal/services/api/lookup/module"
	metamod "tgage/internal/services/api/meta/module"
)

// Banner is the plain text body of GET /
const Banner = "Telegram Account Age Checker API is running"

// Options are the API options
type Options struct {
	Config    config.Conf
	Telegram  *telegram.Client
	Estimator *estimate.Estimator
	Metrics   *metrics.Metrics
	Now       func() time.Time

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
	CORSOrigins    []string
	SlowRequest    time.Duration
	RequestTimeout time.Duration
	DocsSuffix     string
}

// OptionsFromEnv reads the CORE_API_ toggles; adapters and the clock are left to the caller
func OptionsFromEnv(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		EnableMetrics:  cfg.MayBool("METRICS", true),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		SlowRequest:    cfg.MayDuration("SLOW_REQUEST", 0),
		RequestTimeout: cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		DocsSuffix:     cfg.MayString("DOCS_TITLE_SUFFIX", ""),
	}
}

// HealthResponse is the body of the unversioned GET /health
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2025-07-18T12:00:00.000Z"`
}

// isoMillis matches the timestamp shape existing health checkers parse
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:       opt.Config,
		Estimator: opt.Estimator,
		Telegram:  opt.Telegram,
		Metrics:   opt.Metrics,
		Now:       opt.Now,
	}
	now := deps.Clock()

	var observe func(method, route string, status int, elapsed time.Duration)
	if opt.Metrics != nil {
		observe = opt.Metrics.ObserveHTTP
	}
	r.Use(httpkit.BaseStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		SlowRequest: opt.SlowRequest,
		Observe:     observe,
	})...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		phttp.RespondError(w, req, perr.NotFoundf("no route for %s %s", req.Method, req.URL.Path))
	})

	// unversioned endpoints kept for existing clients
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpkit.Text(w, http.StatusOK, Banner)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpkit.JSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: now().UTC().Format(isoMillis),
		})
	})

	lookup := lookupmod.New(deps, modkit.WithMiddlewares(httpkit.Timeout(opt.RequestTimeout)))
	versioned := []module.Module{
		metamod.New(deps),
		estimatemod.New(deps),
	}

	for _, m := range append([]module.Module{lookup}, versioned...) {
		// register each module's ports under its own name for cross-module lookups
		module.Register(m.Name(), m.Ports())
	}

	lookup.MountRoutes(r)
	httpkit.MountAPIV1(r, httpkit.APIStack(opt.RequestTimeout), func(api httpkit.Router) {
		for _, m := range versioned {
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.Options{TitleSuffix: opt.DocsSuffix})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
}
