package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hellod/internal/config"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFormat    string
	configInitForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hellod configuration",
	Long:  "View and create the hellod configuration file (hellod.toml in --config-dir)",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Display the effective configuration after defaults, the config file,
HELLOD_* environment variables and command-line flags are applied.

Examples:
  hellod config show                 # Human-readable, changed values highlighted
  hellod config show --format json
  hellod config show --format yaml
  hellod config show --format toml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default hellod.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "human", "Output format (human, json, yaml, toml)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing hellod.toml")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	result, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), result, configFormat)
}

func writeConfig(w io.Writer, result *config.LoadResult, format string) error {
	cfg := result.Config

	var (
		out []byte
		err error
	)
	switch format {
	case "human":
		writeConfigHuman(w, result)
		return nil
	case "json":
		out, err = json.MarshalIndent(cfg, "", "  ")
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(cfg)
	case "toml":
		out, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("unknown format %q (want human, json, yaml or toml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = w.Write(out)
	return err
}

func writeConfigHuman(w io.Writer, result *config.LoadResult) {
	cfg := result.Config
	defaults := config.DefaultConfig()

	fmt.Fprintln(w, "hellod Configuration")
	fmt.Fprintln(w, strings.Repeat("─", 50))
	if result.UsedDefaults {
		fmt.Fprintln(w, "Source: defaults (no config file found)")
	} else {
		fmt.Fprintf(w, "Source: %s\n", result.ConfigPath)
	}

	fmt.Fprintln(w, "\nserver:")
	printConfigSection(w, "  host", cfg.Server.Host, defaults.Server.Host)
	printConfigSection(w, "  port", cfg.Server.Port, defaults.Server.Port)
	printConfigSection(w, "  readTimeoutMs", cfg.Server.ReadTimeoutMs, defaults.Server.ReadTimeoutMs)
	printConfigSection(w, "  writeTimeoutMs", cfg.Server.WriteTimeoutMs, defaults.Server.WriteTimeoutMs)
	printConfigSection(w, "  idleTimeoutMs", cfg.Server.IdleTimeoutMs, defaults.Server.IdleTimeoutMs)
	printConfigSection(w, "  shutdownTimeoutMs", cfg.Server.ShutdownTimeoutMs, defaults.Server.ShutdownTimeoutMs)

	fmt.Fprintln(w, "\nlogging:")
	printConfigSection(w, "  level", cfg.Logging.Level, defaults.Logging.Level)
	printConfigSection(w, "  file", cfg.Logging.File, defaults.Logging.File)
	printConfigSection(w, "  maxSize", cfg.Logging.MaxSize, defaults.Logging.MaxSize)
	printConfigSection(w, "  maxBackups", cfg.Logging.MaxBackups, defaults.Logging.MaxBackups)

	fmt.Fprintln(w, "\ncompression:")
	printConfigSection(w, "  enabled", cfg.Compression.Enabled, defaults.Compression.Enabled)
	printConfigSection(w, "  level", cfg.Compression.Level, defaults.Compression.Level)
	printConfigSection(w, "  minSize", cfg.Compression.MinSize, defaults.Compression.MinSize)
}

var modified = color.New(color.FgYellow).SprintFunc()

func printConfigSection(w io.Writer, name string, value, defaultValue interface{}) {
	if fmt.Sprint(value) == fmt.Sprint(defaultValue) {
		fmt.Fprintf(w, "%s: %v\n", name, value)
		return
	}
	fmt.Fprintf(w, "%s: %s (default: %v)\n", name, modified(value), defaultValue)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(configDirFlag, config.FileName+".toml")
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	written, err := config.DefaultConfig().Save(configDirFlag)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
	return nil
}
