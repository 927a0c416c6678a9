package api

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"tgage/internal/modkit/module"
	"tgage/internal/platform/config"
	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/metrics"
	phttp "tgage/internal/platform/net/http"
	"tgage/internal/platform/testkit"
)

var testNow = time.Date(2025, 7, 18, 12, 0, 0, 0, time.UTC)

func newAPI(t *testing.T, mut func(*Options)) *chi.Mux {
	t.Helper()
	t.Setenv("TELEGRAM_LOOKUP_DELAY", "0")
	module.Reset()
	t.Cleanup(module.Reset)

	opt := OptionsFromEnv(config.New().Prefix("CORE_API_"))
	opt.Now = testkit.Clock(testNow)
	if mut != nil {
		mut(&opt)
	}
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), opt)
	return mux
}

func get(mux stdhttp.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	return rr
}

func TestRootAndHealth(t *testing.T) {
	mux := newAPI(t, nil)

	rr := get(mux, "/")
	if rr.Code != 200 || rr.Body.String() != Banner {
		t.Fatalf("root: %d %q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Powered-By") != "TelegramAgeChecker" {
		t.Fatalf("powered by = %q", rr.Header().Get("X-Powered-By"))
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id")
	}

	h := testkit.DecodeJSON[HealthResponse](t, get(mux, "/health"))
	if h.Status != "healthy" || h.Timestamp != "2025-07-18T12:00:00.000Z" {
		t.Fatalf("health = %+v", h)
	}
}

func TestCompatLookupWithoutTelegram(t *testing.T) {
	rr := get(newAPI(t, nil), "/api/user/@user1234567")
	if rr.Code != 200 {
		t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	testkit.MustContain(t, body, `"user_id":"0"`)
	testkit.MustContain(t, body, `"estimated_creation_date":"August 1, 2013"`)
	testkit.MustNotContain(t, body, `"status_code"`)
}

func TestVersionedRoutes(t *testing.T) {
	mux := newAPI(t, nil)

	rr := get(mux, "/api/v1/estimate?user_id=1500000")
	if rr.Code != 200 {
		t.Fatalf("estimate status %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `"confidence":"high"`)
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("api stack should set no-cache headers")
	}

	rr = get(mux, "/api/v1/meta/service")
	testkit.MustContain(t, rr.Body.String(), `"modules":["estimate","lookup","meta"]`)
}

func TestNotFoundIsJSON(t *testing.T) {
	mux := newAPI(t, nil)
	for _, path := range []string{"/nope", "/api/v1/nope"} {
		rr := get(mux, path)
		if rr.Code != stdhttp.StatusNotFound {
			t.Fatalf("%s: status %d", path, rr.Code)
		}
		env := testkit.DecodeJSON[phttp.Envelope](t, rr)
		if env.Code != perr.ErrorCodeNotFound {
			t.Fatalf("%s: envelope %+v", path, env)
		}
	}
}

func TestToggles(t *testing.T) {
	m := metrics.New("tgage")
	mux := newAPI(t, func(o *Options) {
		o.Metrics = m
		o.EnableSwagger = false
	})

	get(mux, "/api/v1/estimate?username=durov")

	rr := get(mux, "/metrics")
	if rr.Code != 200 {
		t.Fatalf("metrics status %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `tgage_http_requests_total{method="GET",route="/api/v1/estimate`)
	testkit.MustContain(t, rr.Body.String(), `tgage_estimates_total{confidence="medium"} 1`)

	if rr := get(mux, "/api/docs/doc.json"); rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("docs should be off, got %d", rr.Code)
	}
	if rr := get(mux, "/debug/pprof/"); rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("profiler should be off, got %d", rr.Code)
	}
}

func TestSwaggerOnByDefault(t *testing.T) {
	rr := get(newAPI(t, nil), "/api/docs/doc.json")
	if rr.Code != 200 {
		t.Fatalf("status %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `"/estimate/batch"`)
}
