package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/internal/config"
	"github.com/katalvlaran/lodgenet/network"
)

// app carries resolved configuration, flag values and open resources for
// one command invocation.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	year    int
	jsonOut bool
	closers []func() error
}

// openCatalog selects the backend from cfg.Catalog and wraps it with the
// Redis lodge cache when REDIS_HOST is set.
func (a *app) openCatalog(ctx context.Context) (catalog.Catalog, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	var cat catalog.Catalog
	switch a.cfg.Catalog {
	case config.CatalogFile:
		m, err := catalog.LoadFile(a.cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		cat = m
	case config.CatalogPostgres:
		pg, err := a.openPostgres(ctx)
		if err != nil {
			return nil, err
		}
		cat = pg
	}

	if a.cfg.Redis.Enabled() {
		rdb := redis.NewClient(a.cfg.Redis.Options())
		a.closers = append(a.closers, rdb.Close)
		a.log.Debug("redis_cache_enabled", "addr", a.cfg.Redis.Addr(), "ttl", a.cfg.CacheTTL)
		cat = catalog.NewCached(cat, rdb,
			catalog.WithCacheTTL(a.cfg.CacheTTL),
			catalog.WithCacheLogger(a.log),
		)
	}

	return cat, nil
}

// openPostgres connects and pings with a short deadline.
func (a *app) openPostgres(ctx context.Context) (*catalog.Postgres, error) {
	pg, err := catalog.OpenPostgres(a.cfg.PG.DSN(), a.cfg.PG.MaxOpen, a.cfg.PG.MaxIdle)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, pg.Close)

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pg.Ping(pctx); err != nil {
		return nil, fmt.Errorf("catalog: ping postgres %s:%s: %w", a.cfg.PG.Host, a.cfg.PG.Port, err)
	}

	return pg, nil
}

// engine opens the catalog and returns an engine; when build is true the
// network is built for a.year.
func (a *app) engine(ctx context.Context, reg prometheus.Registerer, build bool) (*network.Engine, error) {
	cat, err := a.openCatalog(ctx)
	if err != nil {
		return nil, err
	}
	eng := network.New(ctx, cat, network.WithLogger(a.log), network.WithRegisterer(reg))
	if !build {
		return eng, nil
	}
	if err = eng.Build(ctx, a.year); err != nil {
		return nil, err
	}

	return eng, nil
}

// close releases resources in reverse order.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close_error", "err", err)
		}
	}
	a.closers = nil
}
