// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"listingseo/internal/core/version"
	modkit "listingseo/internal/modkit"
	"listingseo/internal/modkit/httpkit"
	"listingseo/internal/modkit/module"
	"listingseo/internal/modkit/repokit"
	metahttp "listingseo/internal/services/api/meta/http"
	seodomain "listingseo/internal/services/api/seo/domain"
)

// Name is the registry name of the meta module
const Name = "meta"

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module. Scorer info is served when a module registered as
// scorer exports domain.InfoPort; build that module first
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName(Name),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}

	hd := metahttp.Deps{
		ServiceName: deps.Cfg.MayString("SERVICE_NAME", version.Service),
		StartedAt:   m.startedAt,
		PG:          pinger(deps.PG),
		CH:          pinger(deps.CH),
	}
	if p, ok := module.PortsAs[seodomain.InfoPort](ScorerModule); ok {
		hd.Scorer = p.ScorerInfo
	}

	m.Base = modkit.NewBase(b, func(r httpkit.Router) { metahttp.Register(r, hd) })
	return m
}

// ScorerModule is the registry name scorer info is looked up under
const ScorerModule = "seo"

func pinger(v any) repokit.Pinger {
	if p, ok := v.(repokit.Pinger); ok {
		return p
	}
	return nil
}
