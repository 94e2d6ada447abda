package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file base name; viper accepts .toml, .json and .yaml.
	FileName = "hellod"
	// EnvPrefix prefixes environment overrides, e.g. HELLOD_SERVER_PORT.
	EnvPrefix = "HELLOD"
	// CurrentVersion is the only supported config schema version
	CurrentVersion = 1
)

// Config represents the complete hellod configuration
type Config struct {
	Version     int               `json:"version" mapstructure:"version" toml:"version" yaml:"version"`
	Server      ServerConfig      `json:"server" mapstructure:"server" toml:"server" yaml:"server"`
	Logging     LoggingConfig     `json:"logging" mapstructure:"logging" toml:"logging" yaml:"logging"`
	Compression CompressionConfig `json:"compression" mapstructure:"compression" toml:"compression" yaml:"compression"`
}

// ServerConfig contains listener and timeout settings
type ServerConfig struct {
	Host              string `json:"host" mapstructure:"host" toml:"host" yaml:"host"`
	Port              int    `json:"port" mapstructure:"port" toml:"port" yaml:"port"`
	ReadTimeoutMs     int    `json:"readTimeoutMs" mapstructure:"readTimeoutMs" toml:"readTimeoutMs" yaml:"readTimeoutMs"`
	WriteTimeoutMs    int    `json:"writeTimeoutMs" mapstructure:"writeTimeoutMs" toml:"writeTimeoutMs" yaml:"writeTimeoutMs"`
	IdleTimeoutMs     int    `json:"idleTimeoutMs" mapstructure:"idleTimeoutMs" toml:"idleTimeoutMs" yaml:"idleTimeoutMs"`
	ShutdownTimeoutMs int    `json:"shutdownTimeoutMs" mapstructure:"shutdownTimeoutMs" toml:"shutdownTimeoutMs" yaml:"shutdownTimeoutMs"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level" mapstructure:"level" toml:"level" yaml:"level"`
	File       string `json:"file,omitempty" mapstructure:"file" toml:"file,omitempty" yaml:"file,omitempty"`
	MaxSize    string `json:"maxSize,omitempty" mapstructure:"maxSize" toml:"maxSize,omitempty" yaml:"maxSize,omitempty"`
	MaxBackups int    `json:"maxBackups" mapstructure:"maxBackups" toml:"maxBackups" yaml:"maxBackups"`
}

// CompressionConfig contains response compression settings
type CompressionConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled" toml:"enabled" yaml:"enabled"`
	// Level is a gzip level: -3 (stateless) through 9 (best); -1 is the library default.
	Level int `json:"level" mapstructure:"level" toml:"level" yaml:"level"`
	// MinSize is the smallest body, in bytes, that gets compressed.
	MinSize int `json:"minSize" mapstructure:"minSize" toml:"minSize" yaml:"minSize"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Server: ServerConfig{
			Host:              "127.0.0.1",
			Port:              8080,
			ReadTimeoutMs:     15000,
			WriteTimeoutMs:    15000,
			IdleTimeoutMs:     60000,
			ShutdownTimeoutMs: 10000,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxBackups: 3,
		},
		Compression: CompressionConfig{
			Enabled: true,
			Level:   -1,
			MinSize: 0,
		},
	}
}

// LoadResult is a loaded config together with where it came from
type LoadResult struct {
	Config       *Config
	ConfigPath   string
	UsedDefaults bool
}

// LoadConfig loads configuration from dir/hellod.{toml,json,yaml}, layered
// over DefaultConfig and under HELLOD_* environment variables. A missing file
// is not an error.
func LoadConfig(dir string) (*LoadResult, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	result := &LoadResult{}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		result.UsedDefaults = true
	} else {
		result.ConfigPath = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result.Config = &cfg
	return result, nil
}

// setDefaults registers every key so AutomaticEnv can override keys absent from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.readTimeoutMs", d.Server.ReadTimeoutMs)
	v.SetDefault("server.writeTimeoutMs", d.Server.WriteTimeoutMs)
	v.SetDefault("server.idleTimeoutMs", d.Server.IdleTimeoutMs)
	v.SetDefault("server.shutdownTimeoutMs", d.Server.ShutdownTimeoutMs)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.maxSize", d.Logging.MaxSize)
	v.SetDefault("logging.maxBackups", d.Logging.MaxBackups)
	v.SetDefault("compression.enabled", d.Compression.Enabled)
	v.SetDefault("compression.level", d.Compression.Level)
	v.SetDefault("compression.minSize", d.Compression.MinSize)
}

// Save writes the configuration to dir/hellod.toml and returns the path written.
func (c *Config) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, FileName+".toml")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return path, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return &ConfigError{Field: "version", Message: "unsupported config version " + strconv.Itoa(c.Version)}
	}
	if c.Server.Host == "" {
		return &ConfigError{Field: "server.host", Message: "must not be empty"}
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "must be between 0 and 65535"}
	}
	if c.Server.ReadTimeoutMs < 0 || c.Server.WriteTimeoutMs < 0 || c.Server.IdleTimeoutMs < 0 || c.Server.ShutdownTimeoutMs < 0 {
		return &ConfigError{Field: "server", Message: "timeouts must be non-negative"}
	}
	if c.Logging.MaxBackups < 0 {
		return &ConfigError{Field: "logging.maxBackups", Message: "must be non-negative"}
	}
	if c.Compression.Level < -3 || c.Compression.Level > 9 {
		return &ConfigError{Field: "compression.level", Message: "must be between -3 and 9"}
	}
	if c.Compression.MinSize < 0 {
		return &ConfigError{Field: "compression.minSize", Message: "must be non-negative"}
	}
	return nil
}

// Addr returns the host:port listen address
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Timeout converts a millisecond setting to a duration
func Timeout(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
