// Package module wires meta endpoints into the API using a tiny module
package module

import (
	modkit "tgage/internal/modkit"
	"tgage/internal/modkit/httpkit"
	"tgage/internal/modkit/module"
	str "tgage/internal/platform/strings"

	metahttp "tgage/internal/services/api/meta/http"
)

// ServiceName is reported by health, version and service endpoints
const ServiceName = "tgage-api"

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	now := deps.Clock()
	md := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   now(),
		Now:         now,
		Checks:      []metahttp.Check{{Name: "telegram"}},
		Modules:     module.Names,
	}
	// a nil *Client must stay an untyped nil so the check reports skipped
	if deps.Telegram != nil {
		md.Checks[0].Pinger = deps.Telegram
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, md)
		external(r)
	}
	return &Module{built: b}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.FirstNonEmpty(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
