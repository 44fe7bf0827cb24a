// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	apperrors "kingshot-calc/internal/errors"
	"kingshot-calc/internal/logging"
)

// Environment overrides, read after the config file.
const (
	EnvLogLevel   = "KSCALC_LOG_LEVEL"
	EnvStorageDir = "KSCALC_STORAGE_DIR"
	EnvFormat     = "KSCALC_FORMAT"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" validate:"required"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Storage contains persistence configuration
	Storage StorageConfig `json:"storage"`

	// Tables lists cost table definition files that replace built-in data
	Tables TablesConfig `json:"tables"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default export format
	DefaultFormat string `json:"default_format" validate:"oneof=text csv json"`

	// ShowBreakdown includes the per-step breakdown in text reports
	ShowBreakdown bool `json:"show_breakdown"`

	// Locale drives number formatting in text reports (BCP 47 tag)
	Locale string `json:"locale" validate:"required,bcp47_language_tag"`
}

// StorageConfig contains persistence settings
type StorageConfig struct {
	// Backend is file or memory
	Backend string `json:"backend" validate:"oneof=file memory"`

	// Directory holds one JSON file per calculator
	Directory string `json:"directory" validate:"required_if=Backend file"`
}

// TablesConfig contains table definition settings
type TablesConfig struct {
	// Files are .hcl or .toml table definitions
	Files []string `json:"files,omitempty" validate:"dive,required"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "text",
			ShowBreakdown: true,
			Locale:        "en",
		},
		Storage: StorageConfig{
			Backend:   "file",
			Directory: filepath.Join(homeDir, ".kscalc", "data"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, then applies .env and environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, apperrors.Config("read config", err)
		default:
			if err := json.Unmarshal(data, config); err != nil {
				return nil, apperrors.Config("parse config "+path, err)
			}
		}
	}

	// .env is optional; real environment variables work without it
	_ = godotenv.Load()
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvStorageDir); ok && v != "" {
		c.Storage.Directory = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration's struct constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apperrors.Config("invalid configuration", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
