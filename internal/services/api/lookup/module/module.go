// Package module wires the username lookup into the API using modkit
package module

import (
	modkit "tgage/internal/modkit"
	"tgage/internal/modkit/httpkit"
	str "tgage/internal/platform/strings"
	lookuphttp "tgage/internal/services/api/lookup/http"
	lookupsvc "tgage/internal/services/api/lookup/service"

	"tgage/internal/services/api/lookup/domain"
)

// Ports is what the lookup module exposes to other modules
type Ports struct {
	Lookup   domain.ServicePort
	Upstream domain.Pinger
}

// Module implements the lookup module
type Module struct {
	built modkit.Built
	ports Ports
	svc   lookupsvc.Service
}

// New constructs the lookup module. It mounts at /api/user outside the
// versioned API so existing clients keep working
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	var up domain.Upstream
	if deps.Telegram != nil {
		up = deps.Telegram
	}
	so := lookupsvc.OptionsFromEnv(deps.Cfg)
	so.Metrics = deps.Metrics
	so.Now = deps.Clock()
	svc := lookupsvc.New(up, deps.Engine(), so)

	m := &Module{svc: svc, ports: Ports{Lookup: svc}}
	if up != nil {
		m.ports.Upstream = up
	}

	base := []modkit.Option{
		modkit.WithName("lookup"),
		modkit.WithPrefix("/api/user"),
	}
	b := modkit.Build(append(base, opts...)...)
	external := b.Register
	b.Register = func(r httpkit.Router) {
		lookuphttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.FirstNonEmpty(m.built.Name, "lookup") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
