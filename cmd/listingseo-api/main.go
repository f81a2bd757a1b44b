package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listingseo/internal/core/version"
	"listingseo/internal/platform/config"
	"listingseo/internal/platform/logger"
	phttp "listingseo/internal/platform/net/http"
	"listingseo/internal/platform/store"

	"listingseo/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// CORE_API_ drives http and modules, the SERVICE_ views the backends
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	// root logger from LOG_*
	logger.Init(logger.FromEnv())
	l := logger.Get()
	info := version.Info()

	// backends are optional; an unset DBURL leaves that one disabled
	sc := store.LoadConfig(pgCfg, chCfg)
	sc.AppName, sc.Role, sc.Version = info.Service, "api", info.Version
	st, err := store.Open(ctx, sc, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	opts := api.FromConfig(apiCfg)
	opts.Store, opts.Logger, opts.Version = st, l, info.Version

	if apiCfg.MayBool("MIGRATE", false) {
		mctx, cancel := context.WithTimeout(ctx, time.Minute)
		err := api.Migrate(mctx, opts)
		cancel()
		if err != nil {
			l.Fatal().Err(err).Msg("migrate failed")
		}
		l.Info().Msg("schema migrated")
	}

	// PORT, READ_HEADER_TIMEOUT, SHUTDOWN_TIMEOUT
	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), opts)

	l.Info().Str("version", info.Version).Str("commit", info.Commit).Msg("listingseo api starting")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
