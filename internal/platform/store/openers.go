package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	chx "listingseo/internal/platform/store/ch"
	"listingseo/internal/platform/store/pg"
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// sleep is swapped in tests
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var (
	openPool   = pg.Open
	pingPool   = func(ctx context.Context, p *pg.PG) error { return p.Pool.Ping(ctx) }
	openCHConn = chx.Open
)

// openPG opens the pool and pings it with backoff, publishing the adapter only once healthy
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pgx.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log, cfg.PG.Slow)
	}
	p, err := openPool(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
	}, tracer, s.poolMut)
	if err != nil {
		return nil, err
	}

	attempts := max(cfg.PG.ConnectRetries, 1)
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	backoff := backoffStart
	var lastErr error
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = pingPool(pctx, p)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Int("of", attempts).Msg("postgres not ready")
		if i == attempts-1 {
			break
		}
		if err := sleep(ctx, backoff); err != nil {
			p.Close()
			return nil, err
		}
		backoff = min(backoff*2, backoffCeiling)
	}
	p.Close()
	return nil, fmt.Errorf("ping failed after %d attempts: %w", attempts, lastErr)
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := openCHConn(ctx, chx.Config{
		URL:         cfg.CH.URL,
		Role:        cfg.Role,
		Version:     cfg.Version,
		DialTimeout: cfg.CH.DialTimeout,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
