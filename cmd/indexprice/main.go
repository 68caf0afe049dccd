package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"indexprice/internal/adapter/storage"
	"indexprice/internal/infrastructure/config"
	"indexprice/internal/infrastructure/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	root := &cobra.Command{
		Use:          "indexprice",
		Short:        "Deribit index price ingestion and query service",
		Long:         `indexprice polls the Deribit index price for configured currencies, stores every observation and serves them over HTTP.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file.")
	root.PersistentFlags().IntVarP(&port, "port", "p", 0, "HTTP port, overrides server.port.")

	// setup loads config and opens the stores shared by every command.
	setup := func(cmd *cobra.Command) (*App, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if port != 0 {
			cfg.Server.Port = port
		}

		log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
		log.Info("starting indexprice", "command", cmd.Name(), "version", serviceVersion)

		ctx, cancel := context.WithTimeout(cmd.Context(), startupTimeout)
		defer cancel()
		return newApp(ctx, cfg, log)
	}

	serve := func(withAPI, withIngestion bool) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			return app.run(cmd.Context(), withAPI, withIngestion)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the ingestion scheduler",
			RunE:  serve(true, true),
		},
		&cobra.Command{
			Use:   "api",
			Short: "Run only the HTTP API",
			RunE:  serve(true, false),
		},
		&cobra.Command{
			Use:   "worker",
			Short: "Run only the ingestion scheduler",
			RunE:  serve(false, true),
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the price_ticks schema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				// newApp runs InitSchema for the postgres store
				app, err := setup(cmd)
				if err != nil {
					return err
				}
				defer app.close()
				if _, ok := app.repo.(*storage.PostgresAdapter); !ok {
					app.logger.Info("nothing to migrate for the configured store", "store", app.config.Database.Store)
				}
				return nil
			},
		},
		newFetchCmd(setup),
	)

	return root
}

func newFetchCmd(setup func(*cobra.Command) (*App, error)) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one ingestion for a currency and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			result := app.ingestionService().RunOnce(cmd.Context(), currency)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			if !result.Succeeded() {
				return fmt.Errorf("ingestion %s: %w", result.Outcome, errors.New(result.Error))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "btc", "Currency code to ingest, e.g. btc.")
	return cmd
}

const serviceVersion = "1.0.0"
