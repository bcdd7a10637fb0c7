package league

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// Telemetry receives structured events emitted by the service as snapshots
// load and filters change. Implementations must be safe for concurrent use.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// LogTelemetry writes events through a standard logger, one line per event
// with payload keys in stable order.
type LogTelemetry struct {
	Logger *log.Logger
}

func (t LogTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	logger := t.Logger
	if logger == nil {
		logger = log.Default()
	}
	if len(payload) == 0 {
		logger.Printf("%s", event)
		return
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, payload[k])
	}
	logger.Printf("%s%s", event, b.String())
}
