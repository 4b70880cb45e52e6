package modkit

import (
	phttp "langid/internal/platform/net/http"
)

// Module is the common surface for modules that mount routes and expose ports
// kept tiny so modules stay decoupled from each other
type Module interface {
	// MountRoutes attaches the module's HTTP routes to the router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross module wiring
	Ports() any

	// Name returns the module name
	Name() string
}
