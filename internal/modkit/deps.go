// Package modkit provides module wiring and core deps
package modkit

import (
	"langid/internal/modkit/repokit"
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
)

// Deps holds the core dependencies handed to every module
// wiring only, no behavior
// PG stays nil when the process runs without Postgres; modules that
// require it must check at construction time
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
