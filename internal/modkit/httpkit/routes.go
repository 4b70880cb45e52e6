package httpkit

import "net/http"

// MountUnder routes a subrouter at prefix, applying per-module middleware
// before mount registers its handlers
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
