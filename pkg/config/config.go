package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("CLEANSTREAM")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		// Database is optional (the convert command runs without one),
		// so this is only a warning.
		fmt.Println("Warning: No database path configured")
	}

	threshold := viper.GetString("addon.default_threshold")
	switch threshold {
	case "off", "low", "medium", "high":
	default:
		return fmt.Errorf("invalid addon.default_threshold: %q", threshold)
	}

	// Auto-correct invalid cache sizing
	if viper.GetInt("cache.max_entries") <= 0 {
		viper.Set("cache.max_entries", 1000)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Addon.DefaultThreshold {
	case "off", "low", "medium", "high":
	default:
		return fmt.Errorf("invalid addon.default_threshold: %q", c.Addon.DefaultThreshold)
	}

	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = 1000
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 7000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/cleanstream.db")
	viper.SetDefault("database.verbose", false)

	// Cache defaults
	viper.SetDefault("cache.default_ttl", 10*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 5*time.Minute)
	viper.SetDefault("cache.max_entries", 1000)

	// Metadata (Cinemeta) defaults
	viper.SetDefault("metadata.base_url", "https://v3-cinemeta.strem.io")
	viper.SetDefault("metadata.timeout", 10*time.Second)
	viper.SetDefault("metadata.user_agent", "CleanStream/1.0")

	// Addon defaults
	viper.SetDefault("addon.id", "org.cleanstream.skips")
	viper.SetDefault("addon.name", "CleanStream")
	viper.SetDefault("addon.description", "Skip markers for sensitive content, filtered to your preferences")
	viper.SetDefault("addon.base_url", "http://localhost:7000")
	viper.SetDefault("addon.default_threshold", "high")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
