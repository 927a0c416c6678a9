package testkit

import (
	"net/http/httptest"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "estimated_creation_date", "creation")
	MustNotContain(t, "estimated_creation_date", "token")
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	rr := httptest.NewRecorder()
	_, _ = rr.WriteString(`{"status":"healthy","n":3}`)
	got := DecodeJSON[map[string]any](t, rr)
	if got["status"] != "healthy" || got["n"].(float64) != 3 {
		t.Fatalf("decoded %v", got)
	}
}

func TestClip(t *testing.T) {
	t.Parallel()
	if got := clip("abc", 8); got != "abc" {
		t.Fatalf("clip short = %q", got)
	}
	if got := clip("abcdef", 2); got != "ab\n... (4 more bytes)" {
		t.Fatalf("clip long = %q", got)
	}
}
