// Package api composes the HTTP API from its modules
package api

import (
	"context"
	"time"

	"listingseo/internal/core/tipcopy"
	"listingseo/internal/modkit"
	"listingseo/internal/modkit/httpkit"
	"listingseo/internal/modkit/module"
	"listingseo/internal/modkit/swaggerkit"
	"listingseo/internal/platform/config"
	"listingseo/internal/platform/logger"
	phttp "listingseo/internal/platform/net/http"
	"listingseo/internal/platform/store"

	metamod "listingseo/internal/services/api/meta/module"
	seomod "listingseo/internal/services/api/seo/module"
)

// Options are the API options. Config is the CORE_API_ view
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Version        string
	EnableSwagger  bool
	EnableProfiler bool
}

// FromConfig reads the API switches from the CORE_API_ view
func FromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
	}
}

func (opt Options) deps() modkit.Deps {
	d := modkit.Deps{Log: opt.Logger, Cfg: opt.Config, Version: opt.Version}
	if opt.Store != nil {
		d.PG, d.CH = opt.Store.PG, opt.Store.CH
	}
	return d
}

// Migrate applies every module's schema to the configured backends
func Migrate(ctx context.Context, opt Options) error {
	return seomod.Migrate(ctx, opt.deps())
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := opt.deps()

	// modules are built in order; later ones may look up the ports of earlier ones
	builders := []modkit.Builder{seomod.New, metamod.New}
	mods := make([]module.Module, 0, len(builders))
	for _, b := range builders {
		m := b(deps)
		module.Register(m.Name(), m.Ports())
		mods = append(mods, m)
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     opt.Config.MayDuration("TIMEOUT", 30*time.Second),
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		SlowRequest: opt.Config.MayDuration("SLOW_REQUEST", time.Second),
		Locales:     tipcopy.Default(),
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, swaggerkit.Options{
		Enabled:     opt.EnableSwagger,
		TitleSuffix: opt.Config.MayString("DOCS_TITLE_SUFFIX", ""),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
}
