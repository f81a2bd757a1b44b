package modkit

import (
	"listingseo/internal/platform/config"
	"listingseo/internal/platform/logger"
	"listingseo/internal/platform/store"
)

// Deps are handed to every module. PG and CH are nil when their backend is disabled
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	PG      store.TxRunner
	CH      store.Clickhouse
	Version string
}

// Logger returns Log, or a component logger from the root when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
