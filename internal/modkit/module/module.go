// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "langid/internal/platform/net/http"
)

// Module is the contract modkit composition works against
// kept as a sibling package so a module can export its own ports type
// without an import knot
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
