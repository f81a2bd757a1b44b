// Package module wires seo into the API using modkit
package module

import (
	"context"
	"time"

	"listingseo/internal/core/scorer"
	"listingseo/internal/core/tipcopy"
	modkit "listingseo/internal/modkit"
	"listingseo/internal/modkit/httpkit"
	"listingseo/internal/platform/net/middleware"
	seohttp "listingseo/internal/services/api/seo/http"
	seorepo "listingseo/internal/services/api/seo/repo"
	seosvc "listingseo/internal/services/api/seo/service"
)

// Name is the registry name of the seo module
const Name = "seo"

// Module implements the seo module
type Module struct {
	modkit.Base
	svc seosvc.Service
}

// New constructs the seo module. The default tip locale comes from DEFAULT_LOCALE;
// MAX_INFLIGHT > 0 caps concurrent seo requests, queueing as many more for THROTTLE_WAIT
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	catalog := tipcopy.Default()
	locale := deps.Cfg.MayEnum("DEFAULT_LOCALE", catalog.Fallback(), catalog.Supported()...)
	engine := scorer.New(scorer.WithCatalog(catalog), scorer.WithLocale(locale))

	svc := seosvc.New(engine, deps.PG, seorepo.NewPG(), seorepo.NewCH(deps.CH),
		seosvc.WithLogger(deps.Logger(Name)))

	base := []modkit.Option{
		modkit.WithName(Name),
		modkit.WithPrefix("/seo"),
		modkit.WithPorts(adaptSEOPort{svc: svc}),
	}
	if n := deps.Cfg.MayInt("MAX_INFLIGHT", 0); n > 0 {
		wait := deps.Cfg.MayDuration("THROTTLE_WAIT", 5*time.Second)
		base = append(base, modkit.WithMiddlewares(middleware.Throttle(n, n, wait)))
	}

	m := &Module{svc: svc}
	b := modkit.Build(append(base, opts...)...)
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { seohttp.Register(r, m.svc) })
	return m
}

// Migrate applies the report and event schemas to whichever backends are configured
func Migrate(ctx context.Context, deps modkit.Deps) error {
	if deps.PG != nil {
		if err := seorepo.Migrate(ctx, deps.PG); err != nil {
			return err
		}
	}
	if deps.CH != nil {
		if err := seorepo.MigrateCH(ctx, deps.CH); err != nil {
			return err
		}
	}
	return nil
}
