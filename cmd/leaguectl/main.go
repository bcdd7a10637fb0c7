package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	league "github.com/movieboyz/league-dashboard/components/league"
	"github.com/movieboyz/league-dashboard/pkg/fetch"
)

type cli struct {
	Validate  validateCmd  `cmd:"" help:"Validate a snapshot file against the expected shape."`
	Standings standingsCmd `cmd:"" help:"Print ranked owner standings from a snapshot file."`
	Digest    digestCmd    `cmd:"" help:"Write a YAML digest of a snapshot for downstream tooling."`
}

type validateCmd struct {
	Snapshot string `arg:"" type:"path" help:"Path to the snapshot JSON file."`
}

type standingsCmd struct {
	Snapshot string `arg:"" type:"path" help:"Path to the snapshot JSON file."`
	AsOf     string `help:"Reference date (YYYY-MM-DD); defaults to the latest recorded gross date."`
}

type digestCmd struct {
	Snapshot string `arg:"" type:"path" help:"Path to the snapshot JSON file."`
	Out      string `type:"path" help:"Output path; defaults to stdout."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Snapshot tooling for the league dashboard."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func loadSnapshot(ctx context.Context, path string) (*league.Snapshot, error) {
	source := &fetch.FileSource{Path: path}
	return source.FetchSnapshot(ctx)
}

func (cmd *validateCmd) Run(ctx context.Context) error {
	snap, err := loadSnapshot(ctx, cmd.Snapshot)
	if err != nil {
		return err
	}
	if err := league.NewJSONSchemaValidator().Validate(snap); err != nil {
		return fmt.Errorf("leaguectl: snapshot invalid: %w", err)
	}
	owners := snap.SortedOwners()
	fmt.Fprintf(os.Stdout, "✓ %s: %s, %s, latest gross %s\n",
		cmd.Snapshot,
		league.Pluralize(len(snap.Movies), "Movie"),
		league.Pluralize(len(owners), "Owner"),
		orDash(snap.LatestGrossDate()),
	)
	return nil
}

func (cmd *standingsCmd) Run(ctx context.Context) error {
	snap, err := loadSnapshot(ctx, cmd.Snapshot)
	if err != nil {
		return err
	}
	reference := cmd.AsOf
	if reference == "" {
		reference = snap.LatestProfitDate()
	}
	owners := snap.SortedOwners()
	colors := league.BuildColorMap(owners)
	entries := league.BuildLeaderboard(snap, owners, colors, reference, nil)
	fmt.Fprintf(os.Stdout, "Standings as of %s\n", orDash(reference))
	for _, entry := range entries {
		fmt.Fprintf(os.Stdout, "%s %s  %s\n", entry.Rank, entry.Owner, entry.ProfitLabel())
	}
	return nil
}

type digestOwner struct {
	Profit float64 `yaml:"profit"`
	Movies int     `yaml:"movies"`
}

func (cmd *digestCmd) Run(ctx context.Context) error {
	snap, err := loadSnapshot(ctx, cmd.Snapshot)
	if err != nil {
		return err
	}
	reference := snap.LatestProfitDate()
	owners := snap.SortedOwners()
	colors := league.BuildColorMap(owners)
	entries := league.BuildLeaderboard(snap, owners, colors, reference, nil)

	digest := map[string]any{
		"as_of":  reference,
		"movies": len(snap.Movies),
		"owners": map[string]digestOwner{},
	}
	slugged := digest["owners"].(map[string]digestOwner)
	for _, entry := range entries {
		profit := 0.0
		if entry.Profit != nil {
			profit = *entry.Profit
		}
		slugged[strcase.ToSnake(entry.Owner)] = digestOwner{
			Profit: profit,
			Movies: countOwned(snap, entry.Owner),
		}
	}

	out := os.Stdout
	if cmd.Out != "" {
		file, err := os.Create(cmd.Out)
		if err != nil {
			return fmt.Errorf("leaguectl: create digest: %w", err)
		}
		defer file.Close()
		out = file
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(digest); err != nil {
		return fmt.Errorf("leaguectl: write digest: %w", err)
	}
	return nil
}

func countOwned(snap *league.Snapshot, owner string) int {
	count := 0
	for _, movie := range snap.Movies {
		if movie.Owner == owner {
			count++
		}
	}
	return count
}

func orDash(value string) string {
	if value == "" {
		return league.Placeholder
	}
	return value
}
