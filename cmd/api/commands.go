package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ecobrands/internal/database"
	"ecobrands/internal/database/migration"
	"ecobrands/internal/repository/airtable"
)

func (c *cli) migrate(ctx context.Context) error {
	if !c.cfg.Database.Enabled() {
		return fmt.Errorf("migrate: %w", database.ErrDisabled)
	}
	db, err := database.NewPostgres(ctx, c.cfg.Database, c.log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	return migration.EnsureMigrated(ctx, db, c.log, c.cfg.Database.HostName())
}

func (c *cli) airtableCheck(ctx context.Context, cmd *cobra.Command) error {
	repo, err := airtable.NewBrandAirtable(c.cfg.Airtable, c.log)
	if err != nil {
		return err
	}
	n, err := repo.Ping(ctx)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Connection successful, %d record(s) read\n", n)
	return nil
}
