package main

import (
	"context"
	"fmt"
	"io"
	"path"
	"text/tabwriter"
	"time"
)

// runMigrationCommand executes one goose command against db and writes a
// short report to out.
func runMigrationCommand(ctx context.Context, db *database, command string, out io.Writer) error {
	provider, err := db.migrationProvider()
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up failed: %w", err)
		}
		if len(results) == 0 {
			_, _ = fmt.Fprintln(out, "no pending migrations")
		}
		for _, r := range results {
			_, _ = fmt.Fprintf(out, "applied %d %s (%s)\n",
				r.Source.Version, path.Base(r.Source.Path), r.Duration.Round(time.Millisecond))
		}

	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down failed: %w", err)
		}
		_, _ = fmt.Fprintf(out, "rolled back %d %s\n", result.Source.Version, path.Base(result.Source.Path))

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status failed: %w", err)
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
		for _, s := range statuses {
			applied := "-"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.UTC().Format(time.RFC3339)
			}
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, path.Base(s.Source.Path))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to write status: %w", err)
		}

	case "version":
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("migrate version failed: %w", err)
		}
		_, _ = fmt.Fprintf(out, "version %d\n", version)

	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	return nil
}
