package league

import (
	core "github.com/movieboyz/league-dashboard/components/league"
)

// Service exposes the underlying components/league.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}
