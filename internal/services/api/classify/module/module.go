// Package module wires classify into the API using modkit
package module

import (
	"net/http"

	modkit "langid/internal/modkit"
	"langid/internal/modkit/httpkit"
	str "langid/internal/platform/strings"

	chttp "langid/internal/services/api/classify/http"
	csvc "langid/internal/services/api/classify/service"
	clsdom "langid/internal/services/classifier/domain"
	samplesdom "langid/internal/services/samples/domain"
)

// Module implements the classify API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc csvc.Service
}

// Ports declares the required injected worker port(s) for this API module
// Recorder may stay nil when the audit trail is disabled
type Ports struct {
	Detector clsdom.DetectorPort
	Recorder samplesdom.RecorderPort
}

// New constructs a classify module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("classify"),
		modkit.WithPrefix("/classify"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Detector == nil {
		panic("classify API module requires Detector port (from services/classifier)")
	}

	svc := csvc.New(injected.Detector, injected.Recorder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptClassifyPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		chttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
