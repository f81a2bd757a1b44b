// Package raw reads environment variables during bootstrap, before the logger exists.
// It must not import the logger
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables, e.g. Prefix("LOG_")
type Conf struct{ prefix string }

// New returns a root Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an extra prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.prefix + k)) }

// Get returns the value or def
func (c Conf) Get(k, def string) string {
	if v := c.lookup(k); v != "" {
		return v
	}
	return def
}

// GetBool treats 1, true, yes and on as true and anything else set as false
func (c Conf) GetBool(k string, def bool) bool {
	switch strings.ToLower(c.lookup(k)) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt returns a non-negative integer or def
func (c Conf) GetInt(k string, def int) int {
	n, err := strconv.Atoi(c.lookup(k))
	if err != nil || n < 0 {
		return def
	}
	return n
}
