package net_test

import (
	"context"
	"testing"

	pnet "tgage/internal/platform/net"
)

func TestWithRequest_RequestID(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}

	if pnet.WithRequest(base, "") != base {
		t.Fatalf("expected ctx to be unchanged for empty id")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}
