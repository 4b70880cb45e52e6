package http

import (
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts /docs if enabled by caller
func MountSwagger(r Router, enabled bool) {
	if !enabled {
		return
	}
	r.Handle("/docs/*", httpSwagger.WrapHandler)
}
