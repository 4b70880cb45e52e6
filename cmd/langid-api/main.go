// @title         Langid API
// @version       0.1.0
// @description   Heuristic language identification endpoints

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"langid/internal/modkit/repokit"
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
	phttp "langid/internal/platform/net/http"
	"langid/internal/platform/store"

	"langid/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (LANGID_API_*)
	root := config.New()
	apiCfg := root.Prefix("LANGID_API_")

	pgCfg := root.Prefix("LANGID_PGSQL_") // pgCfg lives under LANGID_PGSQL_*
	// bring up logging early
	l := logger.Get()

	// open the platform store; the postgres seam stays nil unless enabled
	pg := store.PGConfig{Enabled: pgCfg.MayBool("ENABLED", false)}
	if pg.Enabled {
		pg.URL = pgCfg.MustString("DBURL")
		pg.MaxConns = int32(pgCfg.MayInt("MAX_CONNS", 4))
		pg.SlowQueryMs = pgCfg.MayInt("SLOW_MS", 500)
		pg.LogSQL = pgCfg.MayBool("LOG_SQL", false)
	}

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "langid-api",
			PG:      pg,
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail at boot, not on the first query, when a backend is unreachable
	repokit.MustGuard(context.Background(), st)

	// http server (reads LANGID_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// drain in-flight requests on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			l.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
