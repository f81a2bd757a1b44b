package store

import (
	"time"

	"listingseo/internal/platform/config"
)

// Config aggregates backend configuration
type Config struct {
	// AppName is the Postgres application_name, Role the ClickHouse client role
	AppName string
	Role    string
	Version string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures Postgres. An empty URL disables it
type PGConfig struct {
	URL      string
	MaxConns int32
	LogSQL   bool
	Slow     time.Duration

	// ConnectRetries bounds the boot ping loop
	ConnectRetries int
	PingTimeout    time.Duration
}

// Enabled reports whether a URL is set
func (c PGConfig) Enabled() bool { return c.URL != "" }

// CHConfig configures ClickHouse. An empty URL disables it
type CHConfig struct {
	URL         string
	DialTimeout time.Duration
}

// Enabled reports whether a URL is set
func (c CHConfig) Enabled() bool { return c.URL != "" }

// LoadConfig reads the SERVICE_PGSQL_ and SERVICE_CLICKHOUSE_ style views
func LoadConfig(pg, ch config.Conf) Config {
	return Config{
		PG: PGConfig{
			URL:            pg.MayString("DBURL", ""),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 8)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			Slow:           time.Duration(pg.MayInt("SLOW_MS", 200)) * time.Millisecond,
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 10),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			URL:         ch.MayString("DBURL", ""),
			DialTimeout: ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
		},
	}
}
