package main

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/Jauphraux/SoBApp/internal/database"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations (up, down, status)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE:  runMigrateUp,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE:  runMigrateDown,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether each is applied",
		Args:  cobra.NoArgs,
		RunE:  runMigrateStatus,
	})
	return cmd
}

func withProvider(cmd *cobra.Command, fn func(*goose.Provider) error) error {
	_, db, err := openConfigured(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := database.NewMigrationProvider(db)
	if err != nil {
		return err
	}
	return fn(provider)
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withProvider(cmd, func(p *goose.Provider) error {
		results, err := p.Up(cmd.Context())
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		if len(results) == 0 {
			printInfo(out, "No pending migrations")
			return nil
		}
		for _, r := range results {
			printSuccess(out, "Applied %d %s (%v)", r.Source.Version, r.Source.Path, r.Duration)
		}
		return nil
	})
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withProvider(cmd, func(p *goose.Provider) error {
		r, err := p.Down(cmd.Context())
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		printSuccess(out, "Rolled back %d %s", r.Source.Version, r.Source.Path)
		return nil
	})
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withProvider(cmd, func(p *goose.Provider) error {
		statuses, err := p.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		printHeader(out, "Migration status")
		for _, s := range statuses {
			if s.State == goose.StateApplied {
				printSuccess(out, "%d %s applied %s", s.Source.Version, s.Source.Path, s.AppliedAt.Format("2006-01-02 15:04:05"))
			} else {
				printWarning(out, "%d %s %s", s.Source.Version, s.Source.Path, s.State)
			}
		}
		return nil
	})
}
