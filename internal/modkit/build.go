package modkit

import (
	"net/http"

	phttp "listingseo/internal/platform/net/http"
	pstrings "listingseo/internal/platform/strings"
)

// Option mutates module build configuration
type Option func(*Built)

// Built is the resolved configuration a module mounts with
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// WithName sets the module name used in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the mount path, e.g. "/seo"
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends per module middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts sets the module's exported ports
func WithPorts(p any) Option { return func(b *Built) { b.Ports = p } }

// Build applies opts in order over an empty Built
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// Base implements Module for a Built and a route registration func. Modules embed it
type Base struct {
	built    Built
	register func(phttp.Router)
}

// NewBase pairs b with register. Name and Prefix are required
func NewBase(b Built, register func(phttp.Router)) Base {
	if b.Name == "" {
		panic("modkit: module name is required")
	}
	b.Prefix = pstrings.MustPrefix(b.Prefix)
	return Base{built: b, register: register}
}

// MountRoutes mounts the module's routes under its prefix
func (m Base) MountRoutes(r phttp.Router) {
	r.Route(m.built.Prefix, func(sub phttp.Router) {
		if len(m.built.Mw) > 0 {
			sub.Use(m.built.Mw...)
		}
		if m.register != nil {
			m.register(sub)
		}
	})
}

// Name is the module name
func (m Base) Name() string { return m.built.Name }

// Prefix is the normalized mount path
func (m Base) Prefix() string { return m.built.Prefix }

// Ports are the module's exported ports, or nil
func (m Base) Ports() any { return m.built.Ports }
