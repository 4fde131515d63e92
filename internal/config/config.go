package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Supported storage drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// DefaultStorageKey is the key the task list is stored under.
const DefaultStorageKey = "modernTodoItems"

// Config holds all configuration options for the to-do application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Validation  ValidationConfig  `toml:"validation"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
	Logging     LoggingConfig     `toml:"logging"`
}

// StorageConfig holds key-value store configuration
type StorageConfig struct {
	Driver         string        `toml:"driver" env:"TD_DB_DRIVER"`
	Dir            string        `toml:"dir" env:"TD_DB_DIR"`
	Filename       string        `toml:"filename" env:"TD_DB_FILENAME"`
	DSN            string        `toml:"dsn" env:"TD_DB_DSN"`
	Key            string        `toml:"key" env:"TD_STORAGE_KEY"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TD_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TD_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TD_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TextMaxLength int `toml:"text_max_length" env:"TD_VALIDATION_TEXT_MAX"`
}

// DisplayConfig holds display configuration
type DisplayConfig struct {
	Locale  string `toml:"locale" env:"TD_DISPLAY_LOCALE"`
	Color   bool   `toml:"color" env:"TD_DISPLAY_COLOR"`
	ShowIDs bool   `toml:"show_ids" env:"TD_DISPLAY_SHOW_IDS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TD_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TD_APP_VERBOSE"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `toml:"level" env:"TD_LOG_LEVEL"`
	Format string `toml:"format" env:"TD_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:         DriverSQLite,
			Dir:            DefaultDir(),
			Filename:       "td.db",
			Key:            DefaultStorageKey,
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TextMaxLength: 500,
		},
		Display: DisplayConfig{
			Locale: "en",
			Color:  true,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultDir returns ~/.td, or .td when the home directory is unknown
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".td"
	}
	return filepath.Join(homeDir, ".td")
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	if c.Storage.Filename == ":memory:" {
		return c.Storage.Filename
	}
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetQueryTimeout returns the store read timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Storage.QueryTimeout
}

// GetWriteTimeout returns the store write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if driver := os.Getenv("TD_DB_DRIVER"); driver != "" {
		c.Storage.Driver = driver
	}
	if dir := os.Getenv("TD_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TD_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if dsn := os.Getenv("TD_DB_DSN"); dsn != "" {
		c.Storage.DSN = dsn
	}
	if key := os.Getenv("TD_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if timeout := os.Getenv("TD_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if timeout := os.Getenv("TD_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("TD_DB_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Validation configuration
	if maxLen := os.Getenv("TD_VALIDATION_TEXT_MAX"); maxLen != "" {
		c.Validation.TextMaxLength = ParseIntWithFallback(maxLen, c.Validation.TextMaxLength)
	}

	// Display configuration
	if locale := os.Getenv("TD_DISPLAY_LOCALE"); locale != "" {
		c.Display.Locale = locale
	}
	if color := os.Getenv("TD_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}
	if showIDs := os.Getenv("TD_DISPLAY_SHOW_IDS"); showIDs != "" {
		c.Display.ShowIDs = ParseBoolWithFallback(showIDs, c.Display.ShowIDs)
	}

	// Application configuration
	if timeout := os.Getenv("TD_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TD_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Logging configuration
	if level := os.Getenv("TD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TD_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
		}
		if c.Storage.Dir == "" && c.Storage.Filename != ":memory:" {
			return &ConfigError{Field: "storage.dir", Message: "database directory cannot be empty"}
		}
	case DriverMySQL:
		if c.Storage.DSN == "" {
			return &ConfigError{Field: "storage.dsn", Message: "a DSN is required for the mysql driver"}
		}
	default:
		return &ConfigError{Field: "storage.driver", Message: "unsupported driver " + strconv.Quote(c.Storage.Driver)}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TextMaxLength < 1 {
		return &ConfigError{Field: "validation.text_max_length", Message: "text maximum length must be at least 1"}
	}

	if c.Display.Locale == "" {
		return &ConfigError{Field: "display.locale", Message: "locale cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Logging.Format {
	case "text", "json", "logfmt":
	default:
		return &ConfigError{Field: "logging.format", Message: "format must be one of text, json, logfmt"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
