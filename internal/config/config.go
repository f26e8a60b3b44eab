// Package config defines the campusnav configuration, its defaults and the
// viper wiring that fills it from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/campusnav/navigator"
)

// EnvPrefix prefixes environment overrides, e.g. CAMPUSNAV_SERVER_ADDR.
const EnvPrefix = "CAMPUSNAV"

var (
	instance *Config
	mu       sync.RWMutex
	validate = validator.New()
)

// Config is the top-level configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Search SearchConfig `mapstructure:"search" yaml:"search"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// ColorConfig defines the color of each log level in console output.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format      string      `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// DataConfig locates the edge CSV and the optional location catalog.
// An empty CatalogFile selects the built-in campus map.
type DataConfig struct {
	GraphFile   string `mapstructure:"graph_file" yaml:"graph_file" validate:"required"`
	CatalogFile string `mapstructure:"catalog_file" yaml:"catalog_file"`
}

// SearchConfig holds route defaults used when a request does not choose.
type SearchConfig struct {
	DefaultAlgorithm string `mapstructure:"default_algorithm" yaml:"default_algorithm" validate:"required"`
	AccessibleOnly   bool   `mapstructure:"accessible_only" yaml:"accessible_only"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr" validate:"required"`
	AllowOrigins    []string      `mapstructure:"allow_origins" yaml:"allow_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "campusnav")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	v.SetDefault("data.graph_file", "data/campus.csv")
	v.SetDefault("data.catalog_file", "")

	v.SetDefault("search.default_algorithm", string(navigator.Dijkstra))
	v.SetDefault("search.accessible_only", false)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allow_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
}

// NewViper returns a viper instance with defaults, the CAMPUSNAV_ env
// prefix and, when cfgFile is empty, a search for ./config.yaml.
// Values from a .env file in the working directory are exported first;
// a missing .env is not an error.
func NewViper(cfgFile string) (*viper.Viper, error) {
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return v, nil
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags and the default algorithm name.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	if _, err := navigator.ParseAlgorithm(c.Search.DefaultAlgorithm); err != nil {
		return fmt.Errorf("config: search.default_algorithm: %w", err)
	}
	return nil
}

// DefaultAlgorithm returns the parsed search.default_algorithm.
func (c *Config) DefaultAlgorithm() navigator.Algorithm {
	a, err := navigator.ParseAlgorithm(c.Search.DefaultAlgorithm)
	if err != nil {
		return navigator.Dijkstra
	}
	return a
}

// Set stores cfg as the process-wide configuration.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// Get returns the process-wide configuration.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("Configuration not initialized. Call config.Set() in the root command.")
	}
	return instance
}
