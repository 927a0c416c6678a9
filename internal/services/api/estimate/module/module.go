// Package module wires offline estimation into the versioned API using modkit
package module

import (
	modkit "tgage/internal/modkit"
	"tgage/internal/modkit/httpkit"
	str "tgage/internal/platform/strings"
	"tgage/internal/services/api/estimate/domain"
	esthttp "tgage/internal/services/api/estimate/http"
	estsvc "tgage/internal/services/api/estimate/service"
)

// Module implements the estimate module
type Module struct {
	built modkit.Built
	svc   estsvc.Service
}

// New constructs the estimate module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	svc := estsvc.New(deps.Engine(), deps.Clock(), deps.Metrics)
	m := &Module{svc: svc}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("estimate"),
		modkit.WithPrefix("/estimate"),
		modkit.WithPorts[domain.ServicePort](svc),
	}, opts...)...)
	external := b.Register
	b.Register = func(r httpkit.Router) {
		esthttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.FirstNonEmpty(m.built.Name, "estimate") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the estimate service port
func (m *Module) Ports() any { return m.built.Ports }
