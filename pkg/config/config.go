package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/empmanag/pkg/persistence"
	"github.com/xiaomi388/empmanag/pkg/recordstore"
	"github.com/xiaomi388/empmanag/pkg/types"
	"gopkg.in/yaml.v3"
)

var ConfigPath = persistence.DefaultConfigPath

// EnvFile is the dotenv file read on Load, if present.
var EnvFile = ".env"

// Command line overrides, applied after the environment.
var (
	BackendOverride string
	PathOverride    string
	Verbose         bool
)

// Environment variables that override the config file.
const (
	EnvStorageBackend = "EMP_STORAGE_BACKEND"
	EnvStoragePath    = "EMP_STORAGE_PATH"
	EnvIDScheme       = "EMP_ID_SCHEME"
	EnvLogLevel       = "EMP_LOG_LEVEL"
)

type Config struct {
	Storage  types.StorageConfig `yaml:"storage"`
	IDs      string              `yaml:"ids"`
	LogLevel string              `yaml:"logLevel"`
}

func Default() *Config {
	return &Config{
		Storage: types.StorageConfig{
			Backend: persistence.BackendJSON,
			Path:    persistence.DefaultRecordPath,
		},
		IDs:      string(recordstore.IDSchemePositional),
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads the config file at configPath on top of the defaults, then applies
// any overrides from .env and the environment. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", configPath).Debug("config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		var fromFile Config
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		config.merge(fromFile)
	}

	if err := loadDotEnv(EnvFile); err != nil {
		return nil, err
	}
	config.applyEnv()
	config.applyFlags()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to load %s: %w", path, err)
}

func (c *Config) merge(o Config) {
	if o.Storage.Backend != "" {
		if o.Storage.Backend != c.Storage.Backend {
			c.Storage.Path = ""
		}
		c.Storage.Backend = o.Storage.Backend
	}
	if o.Storage.Path != "" {
		c.Storage.Path = o.Storage.Path
	}
	if o.IDs != "" {
		c.IDs = o.IDs
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func (c *Config) applyEnv() {
	backendOverride := false
	if v, ok := os.LookupEnv(EnvStorageBackend); ok && v != "" {
		backendOverride = v != c.Storage.Backend
		c.Storage.Backend = v
	}
	if v, ok := os.LookupEnv(EnvStoragePath); ok && v != "" {
		c.Storage.Path = v
	} else if backendOverride {
		// the configured path belongs to the other backend
		c.Storage.Path = ""
	}
	if v, ok := os.LookupEnv(EnvIDScheme); ok && v != "" {
		c.IDs = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

func (c *Config) applyFlags() {
	if BackendOverride != "" && BackendOverride != c.Storage.Backend {
		c.Storage.Backend = BackendOverride
		c.Storage.Path = ""
	}
	if PathOverride != "" {
		c.Storage.Path = PathOverride
	}
	if Verbose {
		c.LogLevel = logrus.DebugLevel.String()
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "", persistence.BackendJSON, persistence.BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	if _, err := recordstore.ParseIDScheme(c.IDs); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

func (c *Config) IDScheme() recordstore.IDScheme {
	scheme, _ := recordstore.ParseIDScheme(c.IDs)
	return scheme
}

func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func Dump(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	return nil
}
