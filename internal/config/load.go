package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "YON"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path searches
// for config.yaml in the working directory.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so keys
	// without a default need an explicit binding.
	for _, key := range []string{
		"database.url",
		"auth.jwt_secret",
		"llm.gemini_api_key",
	} {
		envVar := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)

	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)

	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.retry_delay_seconds", 1)
	v.SetDefault("llm.timeout_seconds", 20)

	v.SetDefault("analysis.accuracy_weight", 0.6)
	v.SetDefault("analysis.omission_weight", 0.2)
	v.SetDefault("analysis.error_weight", 0.2)
	v.SetDefault("analysis.low_accuracy_band", 0.30)
	v.SetDefault("analysis.high_accuracy_band", 0.60)
	v.SetDefault("analysis.hours_per_topic", 5)
	v.SetDefault("analysis.top_n", 5)
	v.SetDefault("analysis.topics_per_week", 3)
	v.SetDefault("analysis.weak_subject_threshold", 60.0)
	v.SetDefault("analysis.strong_subject_threshold", 80.0)

	v.SetDefault("srs.pass_quality", 3)
	v.SetDefault("srs.min_ease_factor", 1.3)
	v.SetDefault("srs.first_interval", 1)
	v.SetDefault("srs.second_interval", 6)
}
