package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/spf13/viper"
)

// DataForSEOConfig holds the provider credentials. They are injected into the
// client at construction time, never read from the environment at call time.
type DataForSEOConfig struct {
	Login    string `mapstructure:"login"`
	Password string `mapstructure:"password"`
	BaseURL  string `mapstructure:"base_url"`
}

type Config struct {
	HTTPAddr     string           `mapstructure:"http_addr"`
	PostgresDSN  string           `mapstructure:"postgres_dsn"`
	AllowOrigins []string         `mapstructure:"allow_origins"`
	LogLevel     string           `mapstructure:"log_level"`
	CacheTTL     time.Duration    `mapstructure:"cache_ttl"`
	AuthSecret   string           `mapstructure:"auth_secret"`
	DataForSEO   DataForSEOConfig `mapstructure:"dataforseo"`
}

// Load reads config from an optional config.yaml next to the binary and from
// BLOOMDAY_* environment variables, env taking precedence.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("bloomday")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about, so every key has
	// to be bound explicitly or env-only deployments would come up empty.
	for _, key := range []string{
		"http_addr", "postgres_dsn", "allow_origins", "log_level",
		"cache_ttl", "auth_secret",
		"dataforseo.login", "dataforseo.password", "dataforseo.base_url",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("viper.BindEnv %s: %w", key, err)
		}
	}

	viper.SetDefault("http_addr", ":8080")
	viper.SetDefault("allow_origins", []string{"http://localhost:3000"})
	viper.SetDefault("log_level", "info")
	viper.SetDefault("cache_ttl", 14*24*time.Hour)
	viper.SetDefault("dataforseo.base_url", "https://api.dataforseo.com")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = viper.GetString("database_url")
	}

	// Keep the token secret reachable for utils.ParseAuthToken.
	viper.Set(constants.ViperAuthSecret, cfg.AuthSecret)

	return &cfg, nil
}
