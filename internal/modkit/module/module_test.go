package module

import (
	"context"
	"testing"

	phttp "tgage/internal/platform/net/http"
)

type pinger interface{ Ping(context.Context) error }

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type lookupPorts struct {
	Upstream pinger
	hidden   pinger
	Count    int
}

type stubModule struct {
	name    string
	ports   any
	mounted bool
}

func (s *stubModule) MountRoutes(phttp.Router) { s.mounted = true }
func (s *stubModule) Ports() any               { return s.ports }
func (s *stubModule) Name() string             { return s.name }

var _ Module = (*stubModule)(nil)

func TestPortsOf_DirectAndField(t *testing.T) {
	direct := &stubModule{name: "direct", ports: okPinger{}}
	if _, ok := PortsOf[pinger](direct); !ok {
		t.Fatal("expected direct implementation to be found")
	}

	bundle := &stubModule{name: "lookup", ports: lookupPorts{Upstream: okPinger{}}}
	p, ok := PortsOf[pinger](bundle)
	if !ok || p == nil {
		t.Fatal("expected field implementation to be found")
	}

	ptr := &stubModule{name: "lookup", ports: &lookupPorts{Upstream: okPinger{}}}
	if _, ok := PortsOf[pinger](ptr); !ok {
		t.Fatal("expected pointer bundle to be walked")
	}
}

func TestPortsOf_Missing(t *testing.T) {
	for _, m := range []*stubModule{
		{name: "nil"},
		{name: "unexported", ports: lookupPorts{hidden: okPinger{}}},
		{name: "nilptr", ports: (*lookupPorts)(nil)},
		{name: "scalar", ports: 42},
	} {
		if _, ok := PortsOf[pinger](m); ok {
			t.Fatalf("%s: expected no port", m.name)
		}
	}
}

func TestMustPortsOf(t *testing.T) {
	m := &stubModule{name: "estimate", ports: 1}
	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected panic")
		}
		if s, _ := v.(string); s != "module: requested port not found on module estimate" {
			t.Fatalf("panic = %v", v)
		}
	}()
	_ = MustPortsOf[pinger](m)
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("lookup", lookupPorts{Count: 3})
	Register("estimate", okPinger{})

	got, ok := PortsAs[lookupPorts]("lookup")
	if !ok || got.Count != 3 {
		t.Fatalf("PortsAs = %+v ok=%v", got, ok)
	}
	if _, ok := PortsAs[lookupPorts]("estimate"); ok {
		t.Fatal("type mismatch must report false")
	}
	if _, ok := PortsAs[pinger]("missing"); ok {
		t.Fatal("unknown name must report false")
	}
	names := Names()
	if len(names) != 2 || names[0] != "estimate" || names[1] != "lookup" {
		t.Fatalf("Names = %v", names)
	}
}
