// Package modkit wires API modules: shared deps, build options and a route mounting base
package modkit

import "listingseo/internal/modkit/module"

// Module is what the API composes
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
