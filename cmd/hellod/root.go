package main

import (
	"hellod/internal/config"
	"hellod/internal/version"

	"github.com/spf13/cobra"
)

var (
	configDirFlag string
	hostFlag      string
	portFlag      int
	logLevelFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "hellod",
	Short: "hellod - a small HTTP demonstration server",
	Long: `hellod serves a handful of demonstration routes: a greeting, an echo
endpoint, parameterized text and JSON handlers, and a handler that answers
with one of two response shapes. With no arguments it serves on 127.0.0.1:8080.`,
	Version:      version.Info(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.SetVersionTemplate("hellod version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", ".",
		"Directory searched for hellod.toml, hellod.json or hellod.yaml")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "Host to bind to (overrides config)")
	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "Port to listen on (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error, silent (overrides config)")
}

// loadConfig resolves the effective configuration.
// Precedence: CLI flag > HELLOD_* env var > config file > defaults
func loadConfig(cmd *cobra.Command) (*config.LoadResult, error) {
	result, err := config.LoadConfig(configDirFlag)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	cfg := result.Config
	if flags.Changed("host") {
		cfg.Server.Host = hostFlag
	}
	if flags.Changed("port") {
		cfg.Server.Port = portFlag
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}
