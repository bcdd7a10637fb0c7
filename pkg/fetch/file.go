package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	league "github.com/movieboyz/league-dashboard/components/league"
)

// FileSource reads a snapshot from a local JSON file. Useful for
// development and for the leaguectl tooling.
type FileSource struct {
	Path string
}

var _ league.SnapshotSource = (*FileSource)(nil)

// FetchSnapshot reads and decodes the file.
func (f *FileSource) FetchSnapshot(ctx context.Context) (*league.Snapshot, error) {
	if f.Path == "" {
		return nil, fmt.Errorf("fetch: snapshot path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("fetch: read snapshot file: %w", err)
	}
	var snap league.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("fetch: decode snapshot file: %w", err)
	}
	return &snap, nil
}
