// Package config loads the hardhat configuration from an optional yaml file,
// a .env file and HARDHAT_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/swdee/go-hardhat"
	"github.com/swdee/go-hardhat/logger"
	"io/fs"
	"strings"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// eg: HARDHAT_PARAMS_ACCEPTANCE_THRESHOLD
const EnvPrefix = "HARDHAT"

// ErrInvalidConfig is returned when the server or log settings fail
// validation
var ErrInvalidConfig = errors.New("invalid config")

// ServerConfig defines the HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `mapstructure:"addr" validate:"required"`
	// BodyLimit is the maximum request body size in bytes
	BodyLimit int `mapstructure:"body_limit" validate:"gt=0"`
}

// Config is the complete application configuration
type Config struct {
	Params hardhat.Params `mapstructure:"params"`
	Log    logger.Config  `mapstructure:"log"`
	Server ServerConfig   `mapstructure:"server"`
}

// setDefaults registers the default value of every key so environment
// variables can override keys missing from the config file
func setDefaults(v *viper.Viper) {

	p := hardhat.DefaultParams()
	v.SetDefault("params.acceptance_threshold", p.AcceptanceThreshold)
	v.SetDefault("params.overlap_threshold", p.OverlapThreshold)
	v.SetDefault("params.confidence_factor", p.ConfidenceFactor)
	v.SetDefault("params.min_head_area_ratio", p.MinHeadAreaRatio)

	l := logger.DefaultConfig()
	v.SetDefault("log.level", l.Level)
	v.SetDefault("log.dir", l.Dir)
	v.SetDefault("log.max_size_mb", l.MaxSizeMB)
	v.SetDefault("log.max_backups", l.MaxBackups)
	v.SetDefault("log.max_age_days", l.MaxAgeDays)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.body_limit", 8*1024*1024)
}

// Load reads the configuration.  A .env file in the working directory is
// loaded first when present, then the yaml file at path if given, with
// environment variables taking precedence over both
func Load(path string) (*Config, error) {

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}
