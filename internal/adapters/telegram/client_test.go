package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/metrics"
	"tgage/internal/platform/testkit"
)

const testToken = "123456:TEST-token-value"

// newTestClient points a client at h with pacing off and sleeps recorded
func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewClient(Options{BaseURL: srv.URL, Token: testToken, MaxRetries: 3, RetryBase: 10 * time.Millisecond})
	var waits []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return c, &waits
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}

func TestGetChat_DecodesResult(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bot"+testToken+"/getChat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("chat_id"); got != "@durov" {
			t.Errorf("chat_id = %q", got)
		}
		writeJSON(w, 200, `{"ok":true,"result":{"id":1234567,"type":"private","username":"durov","first_name":"Pavel","bio":"hi"}}`)
	})

	chat, err := c.ChatByUsername(context.Background(), "@durov")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if chat.ID != 1234567 || chat.Username != "durov" || chat.Bio != "hi" {
		t.Fatalf("chat = %+v", chat)
	}
}

func TestCall_RetriesOn429WithRetryAfter(t *testing.T) {
	var calls atomic.Int32
	c, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, 429, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 2","parameters":{"retry_after":2}}`)
			return
		}
		writeJSON(w, 200, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bot"}}`)
	})

	me, err := c.GetMe(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !me.IsBot || calls.Load() != 2 {
		t.Fatalf("me=%+v calls=%d", me, calls.Load())
	}
	if len(*waits) != 1 || (*waits)[0] != 2*time.Second {
		t.Fatalf("expected one 2s wait, got %v", *waits)
	}
}

func TestCall_RetriesOn5xxWithBackoff(t *testing.T) {
	var calls atomic.Int32
	c, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			writeJSON(w, 502, `<html>bad gateway</html>`)
			return
		}
		writeJSON(w, 200, `{"ok":true,"result":{"file_id":"f","file_unique_id":"u","file_path":"photos/a.jpg"}}`)
	})

	f, err := c.GetFile(context.Background(), "f")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.FilePath != "photos/a.jpg" {
		t.Fatalf("file = %+v", f)
	}
	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}
	if len(*waits) != 2 || (*waits)[0] != want[0] || (*waits)[1] != want[1] {
		t.Fatalf("waits = %v, want %v", *waits, want)
	}
}

func TestCall_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, 500, `{"ok":false,"error_code":500,"description":"Internal Server Error"}`)
	})

	_, err := c.GetMe(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if calls.Load() != 4 {
		t.Fatalf("expected 1 call plus 3 retries, got %d", calls.Load())
	}
}

func TestCall_RetryAfterAboveMaxWaitFailsFast(t *testing.T) {
	var calls atomic.Int32
	c, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, 429, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 600","parameters":{"retry_after":600}}`)
	})

	_, err := c.GetMe(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("expected too many requests, got %v", err)
	}
	if perr.RetryAfterOf(err) != 600*time.Second {
		t.Fatalf("retry after = %v", perr.RetryAfterOf(err))
	}
	if calls.Load() != 1 || len(*waits) != 0 {
		t.Fatalf("expected no retry, calls=%d waits=%v", calls.Load(), *waits)
	}
}

func TestCall_ClassifiesNonRetryable(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		code   perr.ErrorCode
	}{
		{"chat not found", 400, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, perr.ErrorCodeNotFound},
		{"bad token", 401, `{"ok":false,"error_code":401,"description":"Unauthorized"}`, perr.ErrorCodeUnauthorized},
		{"other 400", 400, `{"ok":false,"error_code":400,"description":"Bad Request: invalid user_id specified"}`, perr.ErrorCodeUnknown},
		{"garbage", 200, `not json`, perr.ErrorCodeUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				writeJSON(w, tc.status, tc.body)
			})
			_, err := c.GetChat(context.Background(), "@nobody")
			if got := perr.CodeOf(err); got != tc.code {
				t.Fatalf("code = %v, want %v (err %v)", got, tc.code, err)
			}
			if calls.Load() != 1 {
				t.Fatalf("non-retryable must not retry, calls=%d", calls.Load())
			}
		})
	}
}

func TestAPIErrorIsReachable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 400, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	})
	_, err := c.GetChat(context.Background(), "@ghost")
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Method != "getChat" || apiErr.Code != 400 {
		t.Fatalf("api error = %+v ok=%v", apiErr, ok)
	}
}

func TestTransportErrorNeverLeaksToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(Options{BaseURL: base, Token: testToken, MaxRetries: 0})
	_, err := c.GetMe(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	testkit.MustNotContain(t, err.Error(), "TEST-token")
}

func TestCall_ContextCanceledDuringBackoff(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 503, `{"ok":false,"error_code":503,"description":"Service Unavailable"}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	c.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}
	_, err := c.GetMe(ctx)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCall_ObservesMetrics(t *testing.T) {
	m := metrics.New("test")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bot"}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Options{BaseURL: srv.URL, Token: testToken, Metrics: m})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	testkit.MustContain(t, rr.Body.String(), `test_telegram_call_duration_seconds_count{method="getMe",outcome="ok"} 1`)
}

func TestLimiterPacesCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bot"}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Options{BaseURL: srv.URL, Token: testToken, RPS: 20, Burst: 1})
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := c.Ping(context.Background()); err != nil {
			t.Fatalf("ping %d: %v", i, err)
		}
	}
	// burst 1 at 20 rps leaves two 50ms gaps
	if el := time.Since(start); el < 90*time.Millisecond {
		t.Fatalf("expected pacing, took %v", el)
	}
}

func TestFileURL(t *testing.T) {
	c := NewClient(Options{BaseURL: "https://api.telegram.org/", Token: "T"})
	if got := c.FileURL("photos/file_1.jpg"); got != "https://api.telegram.org/file/botT/photos/file_1.jpg" {
		t.Fatalf("FileURL = %q", got)
	}
	if c.FileURL("") != "" {
		t.Fatal("empty path must yield empty url")
	}
}

func TestFirstFileID(t *testing.T) {
	p := UserProfilePhotos{TotalCount: 1, Photos: [][]PhotoSize{{{FileID: "small"}, {FileID: "big"}}}}
	if p.FirstFileID() != "small" {
		t.Fatalf("got %q", p.FirstFileID())
	}
	if (UserProfilePhotos{}).FirstFileID() != "" {
		t.Fatal("empty photos must yield empty id")
	}
}

func TestInvalidArgsShortCircuit(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1", Token: "T"})
	if _, err := c.GetChat(context.Background(), " "); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("GetChat err = %v", err)
	}
	if _, err := c.GetFile(context.Background(), ""); !strings.Contains(err.Error(), "file id") {
		t.Fatalf("GetFile err = %v", err)
	}
}
