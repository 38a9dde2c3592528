// Package config loads config.yaml from the configuration directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/estatebook/internal/logging"
	"github.com/mesh-intelligence/estatebook/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// FileName is the configuration file inside the config directory.
	FileName = "config.yaml"
)

// Book storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Backend validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// Config keys.
const (
	KeyBackend   = "backend"
	KeyDataDir   = "data_dir"
	KeyLogLevel  = "log_level"
	KeyPrefsFile = "prefs_file"
)

// Defaults.
const (
	DefaultBackend   = BackendJSON
	DefaultLogLevel  = "warn"
	DefaultPrefsFile = paths.PrefsFile
)

// Environment overrides for single keys. Directory overrides live in
// internal/paths.
const (
	EnvBackend  = "ESTATEBOOK_BACKEND"
	EnvLogLevel = "ESTATEBOOK_LOG_LEVEL"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# estatebook configuration

# Book storage backend: json or sqlite
backend: json

# Log level: debug, info, warn or error
log_level: warn

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Preferences file name inside the data directory
# prefs_file: preferences.json
`

// Config is the loaded configuration.
type Config struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	PrefsFile string `yaml:"prefs_file,omitempty"`
}

// Default returns the configuration used when config.yaml sets nothing.
func Default() Config {
	return Config{
		Backend:   DefaultBackend,
		LogLevel:  DefaultLogLevel,
		PrefsFile: DefaultPrefsFile,
	}
}

// ValidateBackend reports whether name selects a known book storage.
func ValidateBackend(name string) error {
	switch name {
	case "":
		return ErrBackendEmpty
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("backend %q: %w", name, ErrBackendUnknown)
	}
}

// Validate checks the backend, log level and prefs file.
func (c Config) Validate() error {
	if err := ValidateBackend(c.Backend); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.PrefsFile == "" {
		return errors.New("prefs_file must not be empty")
	}
	return nil
}

// Load reads config.yaml from configDir using Viper. It creates the config
// directory and a default config.yaml on first run. A missing config.yaml
// is not an error.
func Load(configDir string) (Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyPrefsFile, def.PrefsFile)
	_ = v.BindEnv(KeyBackend, EnvBackend)
	_ = v.BindEnv(KeyLogLevel, EnvLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Backend:   v.GetString(KeyBackend),
		DataDir:   v.GetString(KeyDataDir),
		LogLevel:  v.GetString(KeyLogLevel),
		PrefsFile: v.GetString(KeyPrefsFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in configDir.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, FileName)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// Write marshals cfg to path as YAML, replacing any existing file.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile reads config.yaml at path without defaults or environment
// overrides. A missing file yields the zero Config.
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
