package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hellod/internal/api"
	"hellod/internal/config"
	"hellod/internal/slogutil"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. This is also what hellod does when run with no
subcommand. The process exits non-zero if the listen address cannot be bound.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	result, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg := result.Config

	logger, closer, err := slogutil.New(cfg.Logging, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	if result.ConfigPath != "" {
		logger.Debug("Loaded config", "path", result.ConfigPath)
	}

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", "error", err)
			return err
		}
	case sig := <-shutdown:
		logger.Info("Received shutdown signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout(cfg.Server.ShutdownTimeoutMs))
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during shutdown", "error", err)
			return err
		}
		if err := <-serverErr; err != nil {
			logger.Error("Server error", "error", err)
			return err
		}
		logger.Info("Server stopped gracefully")
	}

	return nil
}
