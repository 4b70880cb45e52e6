// Package module wires the classifier service as a modkit module
package module

import (
	modkit "langid/internal/modkit"
	"langid/internal/modkit/httpkit"

	"langid/internal/core/langpack"
	"langid/internal/services/classifier/domain"
	"langid/internal/services/classifier/service"
)

// Ports exposed by the classifier module
type Ports struct {
	Detector domain.DetectorPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the classifier module
// the embedded pack is the only pack; a load failure is a build defect
func New(deps modkit.Deps) *Module {
	p, err := langpack.Load()
	if err != nil {
		panic(err)
	}

	log := deps.Log.With().Str("component", "classifier").Logger()
	svc := service.New(log, p)

	m := &Module{deps: deps}
	m.ports = Ports{Detector: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "classifier" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
