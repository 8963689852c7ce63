package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ecobrands/internal/config"
	"ecobrands/internal/logging"
)

// cli carries the state shared by every subcommand.
type cli struct {
	cfg *config.AppConfig
	log *zap.Logger
}

// @title EcoBrands API
// @version 1.0
// @description Directory of sustainable brands backed by Airtable.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "ecobrands",
		Short:         "Sustainable brand directory API",
		Long:          "ecobrands serves the sustainable brand directory stored in Airtable.\n\nRun without a subcommand to start the HTTP server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration from environment variables (.env auto-loaded if present)
			c.cfg = config.Load()
			log, err := logging.New(c.cfg.LogLevel, logging.Location(c.cfg.Timezone))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.log = log.With(zap.String("env", c.cfg.Env))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runE(cmd.Context(), c.serve)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runE(cmd.Context(), c.serve)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the suggestion log schema if it is missing",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runE(cmd.Context(), c.migrate)
			},
		},
		&cobra.Command{
			Use:   "airtable-check",
			Short: "Read one brand record to verify Airtable credentials",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runE(cmd.Context(), func(ctx context.Context) error {
					return c.airtableCheck(ctx, cmd)
				})
			},
		},
	)
	return root
}

// runE logs a command failure once before handing it back to cobra.
func (c *cli) runE(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		c.log.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}
