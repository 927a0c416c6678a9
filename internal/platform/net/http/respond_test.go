package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "tgage/internal/platform/errors"
	pnet "tgage/internal/platform/net"
	phttp "tgage/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSONAndText(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type %q", ct)
	}

	rec2 := httptest.NewRecorder()
	phttp.Text(rec2, http.StatusOK, "Telegram Account Age Checker API is running")
	if rec2.Body.String() != "Telegram Account Age Checker API is running" {
		t.Fatalf("text body %q", rec2.Body.String())
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithReqID("GET", "/x", "rid-1"), map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/err", "rid-3"), perr.NotFoundf("chat not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeNotFound || env.Error != "chat not found" || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}
}

func TestRespondFailure_FlatBody(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondFailure(rec, "Failed to fetch user info from Telegram API", errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code %d", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Failed to fetch user info from Telegram API" || body["details"] != "boom" {
		t.Fatalf("body %v", body)
	}
	if _, ok := body["status_code"]; ok {
		t.Fatalf("flat body must not carry envelope fields")
	}
}

func TestReturnStyle(t *testing.T) {
	cases := []struct {
		name   string
		resp   phttp.Response
		status int
	}{
		{"ok", phttp.OK(map[string]any{"x": 1}), http.StatusOK},
		{"no content", phttp.NoContent(), http.StatusNoContent},
		{"project error", phttp.Error(perr.New(perr.ErrorCodeTooManyRequests, "slow down")), http.StatusTooManyRequests},
		{"generic error", phttp.Error(errors.New("boom")), http.StatusInternalServerError},
		{"zero status", phttp.Response{Body: "hello"}, http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := c.resp
			h := phttp.Handle(func(*http.Request) phttp.Response { return resp })
			rec := httptest.NewRecorder()
			h(rec, reqWithReqID("GET", "/", "rid"))
			if rec.Code != c.status {
				t.Fatalf("code %d want %d", rec.Code, c.status)
			}
			if c.status == http.StatusNoContent && rec.Body.Len() != 0 {
				t.Fatalf("204 wrote a body: %q", rec.Body.String())
			}
		})
	}
}

func TestReturnStyle_Headers(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		resp := phttp.OK("hello")
		resp.Header = http.Header{}
		resp.Header.Set("Cache-Control", "no-store")
		return resp
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/hdr", "rid-8"))
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected header, got %q", got)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if s, ok := env.Data.(string); !ok || s != "hello" {
		t.Fatalf("data %#v", env.Data)
	}
}
