// Package module is the contract between modkit and API modules, plus the port registry
package module

import phttp "listingseo/internal/platform/net/http"

// Module mounts routes and exposes ports to other modules
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
