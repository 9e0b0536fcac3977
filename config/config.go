package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values for a harness run.
type Config struct {
	BaseURL        string `mapstructure:"BASE_URL"`
	Username       string `mapstructure:"USERNAME"`
	Password       string `mapstructure:"PASSWORD"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`
}

// Timeout is the per-call HTTP timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from environment variables and, if present, a config.yaml
// in the current directory. If path is non-empty that file is used instead and must
// exist. Command-line flags are applied on top by the caller.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("BASE_URL", "https://restful-booker.herokuapp.com")
	v.SetDefault("USERNAME", "admin")
	v.SetDefault("PASSWORD", "password123")
	v.SetDefault("TIMEOUT_SECONDS", 5)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
