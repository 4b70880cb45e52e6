// Package module implements the samples service module
package module

import (
	"langid/internal/modkit"
	"langid/internal/modkit/httpkit"
	"langid/internal/modkit/repokit"
	"langid/internal/services/samples/domain"
	"langid/internal/services/samples/repo"
	"langid/internal/services/samples/service"
)

// Ports exposed by the samples module
type Ports struct {
	Recorder domain.RecorderPort
	Reader   domain.ReaderPort
}

// Module implements the samples service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new samples module
func New(deps modkit.Deps) *Module {
	log := deps.Log.With().Str("component", "samples").Logger()
	svc := service.New(log, repokit.TxRunner(deps.PG), repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{
		Recorder: svc,
		Reader:   svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "samples" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
