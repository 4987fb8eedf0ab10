// Package migrate applies the embedded goose migrations of a store adapter.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

type Runner struct {
	p   *goose.Provider
	log logrus.FieldLogger
}

func New(dialect goose.Dialect, db *sql.DB, fsys fs.FS, log logrus.FieldLogger) (*Runner, error) {
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Runner{p: p, log: log}, nil
}

// Up applies every pending migration.
func (r *Runner) Up(ctx context.Context) error {
	results, err := r.p.Up(ctx)
	for _, res := range results {
		r.logResult(res)
	}
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	v, err := r.p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("migrate version: %w", err)
	}
	r.log.WithFields(logrus.Fields{"version": v, "applied": len(results)}).Info("schema up to date")
	return nil
}

// Down rolls back the most recent migration.
func (r *Runner) Down(ctx context.Context) error {
	res, err := r.p.Down(ctx)
	if res != nil {
		r.logResult(res)
	}
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Status writes one line per known migration.
func (r *Runner) Status(ctx context.Context, w io.Writer) error {
	statuses, err := r.p.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}

func (r *Runner) logResult(res *goose.MigrationResult) {
	entry := r.log.WithFields(logrus.Fields{
		"version":   res.Source.Version,
		"file":      res.Source.Path,
		"direction": res.Direction,
		"duration":  res.Duration,
	})
	if res.Error != nil {
		entry.WithError(res.Error).Error("migration failed")
		return
	}
	entry.Info("migration applied")
}
