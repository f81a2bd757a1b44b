// Package config reads application settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"listingseo/internal/platform/logger"
)

// Conf is a namespaced view over environment variables, e.g. Prefix("CORE_API_").
// Must* accessors panic through the logger when a value is missing or malformed,
// May* accessors fall back to a default and warn when a value is malformed
type Conf struct {
	prefix string
	env    func(string) string
}

// New returns a root Conf reading the process environment
func New() Conf { return Conf{env: os.Getenv} }

// FromMap returns a root Conf over a fixed set of values
func FromMap(m map[string]string) Conf {
	return Conf{env: func(k string) string { return m[k] }}
}

// Prefix returns a child Conf with an extra prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, env: c.env} }

// Key is the fully qualified variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) get(k string) string {
	if c.env == nil {
		return strings.TrimSpace(os.Getenv(c.Key(k)))
	}
	return strings.TrimSpace(c.env(c.Key(k)))
}

func (c Conf) missing(k string) {
	logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
}

func (c Conf) invalid(k, v, want string) {
	logger.Get().Panic().Str("key", c.Key(k)).Str("value", v).Msg("invalid " + want)
}

func (c Conf) fallback(k, v string) *zerolog.Event {
	return logger.Get().Warn().Str("key", c.Key(k)).Str("value", v)
}

// MustString returns a required value
func (c Conf) MustString(k string) string {
	v := c.get(k)
	if v == "" {
		c.missing(k)
	}
	return v
}

// MustInt returns a required integer
func (c Conf) MustInt(k string) int {
	s := c.MustString(k)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(k, s, "int value")
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(k, def string) string {
	if v := c.get(k); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def; malformed values warn and yield def
func (c Conf) MayInt(k string, def int) int {
	s := c.get(k)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.fallback(k, s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayBool returns the value or def; malformed values warn and yield def
func (c Conf) MayBool(k string, def bool) bool {
	s := c.get(k)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.fallback(k, s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value or def; malformed values warn and yield def
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	s := c.get(k)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		c.fallback(k, s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(k string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.get(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the lower-cased value when it is one of allowed, def when unset.
// Any other value panics
func (c Conf) MayEnum(k, def string, allowed ...string) string {
	v := strings.ToLower(c.MayString(k, def))
	for _, a := range allowed {
		if v == strings.ToLower(a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.Key(k)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayAddr returns a listen address. A bare port such as "4000" becomes ":4000";
// port 0 picks a free port, values outside 0..65535 panic
func (c Conf) MayAddr(k, def string) string {
	v := c.MayString(k, def)
	host, port := "", v
	if i := strings.LastIndex(v, ":"); i >= 0 {
		host, port = v[:i], v[i+1:]
	}
	if p, err := strconv.Atoi(port); err != nil || p < 0 || p > 65535 {
		c.invalid(k, v, "TCP port; expected 0..65535")
	}
	return host + ":" + port
}
