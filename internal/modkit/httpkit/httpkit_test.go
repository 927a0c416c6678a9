package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	perr "tgage/internal/platform/errors"
	pnet "tgage/internal/platform/net"
	"tgage/internal/platform/testkit"
)

func newRouter() (*chi.Mux, Router) {
	m := chi.NewRouter()
	return m, AdaptChi(m)
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCall_EnvelopesDataAndErrors(t *testing.T) {
	mux, r := newRouter()
	Get(r, "/ok", func(*http.Request) (any, error) { return map[string]int{"n": 1}, nil })
	Get(r, "/nf", func(*http.Request) (any, error) { return nil, perr.NotFoundf("nothing here") })
	Get(r, "/raw", func(*http.Request) (any, error) { return NoContent(), nil })

	rr := serve(mux, http.MethodGet, "/ok", "")
	env := testkit.DecodeJSON[Envelope](t, rr)
	if rr.Code != 200 || env.StatusCode != 200 || env.Data == nil {
		t.Fatalf("ok: code=%d env=%+v", rr.Code, env)
	}

	rr = serve(mux, http.MethodGet, "/nf", "")
	env = testkit.DecodeJSON[Envelope](t, rr)
	if rr.Code != 404 || env.Error != "nothing here" || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("nf: code=%d env=%+v", rr.Code, env)
	}

	if rr = serve(mux, http.MethodGet, "/raw", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("raw: code=%d", rr.Code)
	}
}

type batchIn struct {
	Items []string `json:"items" validate:"required,min=1,max=2,dive,handle"`
}

func TestPostJSON_BindsAndValidates(t *testing.T) {
	mux, r := newRouter()
	PostJSON(r, "/batch", func(_ *http.Request, in batchIn) (any, error) { return len(in.Items), nil })

	if rr := serve(mux, http.MethodPost, "/batch", `{"items":["durov"]}`); rr.Code != 200 {
		t.Fatalf("valid body: %d %s", rr.Code, rr.Body.String())
	}
	if rr := serve(mux, http.MethodPost, "/batch", `{"items":[]}`); rr.Code != 400 {
		t.Fatalf("empty items: %d", rr.Code)
	}
	if rr := serve(mux, http.MethodPost, "/batch", `{"items":["a b"]}`); rr.Code != 400 {
		t.Fatalf("bad handle: %d", rr.Code)
	}
	if rr := serve(mux, http.MethodPost, "/batch", `{"items":["a"],"extra":1}`); rr.Code != 400 {
		t.Fatalf("unknown field: %d", rr.Code)
	}
}

func TestFailAndText(t *testing.T) {
	rr := httptest.NewRecorder()
	Fail(rr, "Failed to fetch user info from Telegram API", errors.New("boom"))
	body := testkit.DecodeJSON[pnet.Failure](t, rr)
	if rr.Code != 500 || body.Details != "boom" {
		t.Fatalf("code=%d body=%+v", rr.Code, body)
	}

	rr = httptest.NewRecorder()
	Text(rr, 200, "running")
	if rr.Body.String() != "running" {
		t.Fatalf("text = %q", rr.Body.String())
	}
}

func TestMountAPIV1_AppliesScopeMiddleware(t *testing.T) {
	mux, r := newRouter()
	MountAPIV1(r, APIStack(time.Second), func(api Router) {
		Get(api, "/meta/health", func(*http.Request) (any, error) { return "ok", nil })
	})

	rr := serve(mux, http.MethodGet, "/api/v1/meta/health/", "")
	if rr.Code != 200 {
		t.Fatalf("expected trailing slash to be stripped, got %d", rr.Code)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("expected NoCache headers on the API scope")
	}
}

func TestBaseStack_StampsHeadersAndObserves(t *testing.T) {
	var observed []string
	mux, r := newRouter()
	r.Use(BaseStack(StackOptions{Observe: func(method, route string, status int, _ time.Duration) {
		observed = append(observed, route)
	}})...)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) })
	r.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("x") })

	rr := serve(mux, http.MethodGet, "/health", "")
	if rr.Header().Get("X-Powered-By") != PoweredBy {
		t.Fatalf("X-Powered-By = %q", rr.Header().Get("X-Powered-By"))
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}

	if rr = serve(mux, http.MethodGet, "/panic", ""); rr.Code != 500 {
		t.Fatalf("panic: code=%d", rr.Code)
	}
	if len(observed) != 2 || observed[0] != "/health" || observed[1] != "/panic" {
		t.Fatalf("observed = %v", observed)
	}
}

func TestMountUnder_RejectsRoot(t *testing.T) {
	_, r := newRouter()
	testkit.MustPanic(t, func() { MountUnder(r, "/", nil, func(Router) {}) })
}

func TestURLParam(t *testing.T) {
	mux, r := newRouter()
	var got string
	r.Get("/api/user/{username}", func(w http.ResponseWriter, req *http.Request) { got = URLParam(req, "username") })
	serve(mux, http.MethodGet, "/api/user/@durov", "")
	if got != "@durov" {
		t.Fatalf("param = %q", got)
	}
}
