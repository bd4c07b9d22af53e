package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerHost string `mapstructure:"host"`
	ServerPort string `mapstructure:"port"`

	// Database configuration
	DBPath string `mapstructure:"db_path"`

	// Static dashboard assets
	StaticDir string `mapstructure:"static_dir"`

	// Seed the demo dataset on startup
	SeedOnStart bool `mapstructure:"seed_on_start"`

	// Timeouts
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load loads configuration from defaults, an optional config file, and
// LOGIDASH_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LOGIDASH")
	v.AutomaticEnv()
	for _, key := range []string{
		"host", "port", "db_path", "static_dir", "seed_on_start",
		"read_timeout", "write_timeout", "idle_timeout", "shutdown_timeout",
	} {
		v.BindEnv(key)
	}

	// Optional config file in the working directory
	v.SetConfigName("dashboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "localhost")
	v.SetDefault("port", "8080")
	v.SetDefault("db_path", "./dashboard.db")
	v.SetDefault("static_dir", "./web/static")
	v.SetDefault("seed_on_start", false)
	v.SetDefault("read_timeout", "15s")
	v.SetDefault("write_timeout", "15s")
	v.SetDefault("idle_timeout", "60s")
	v.SetDefault("shutdown_timeout", "30s")
}

// validate checks if the configuration is valid
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid server port: %s", c.ServerPort)
	}
	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}
