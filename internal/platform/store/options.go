package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"listingseo/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger handed to backends
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithPoolConfig lets callers tune the pgx pool before it is created
func WithPoolConfig(fn func(*pgxpool.Config)) Option {
	return func(s *Store) error {
		s.poolMut = fn
		return nil
	}
}
