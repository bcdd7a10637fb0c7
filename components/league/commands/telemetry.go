package commands

import (
	"context"

	"github.com/movieboyz/league-dashboard/components/league"
)

// Telemetry is the service-level telemetry seam; commands emit their events
// through the same sink the service uses.
type Telemetry = league.Telemetry

type discardTelemetry struct{}

func (discardTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return discardTelemetry{}
	}
	return t
}
