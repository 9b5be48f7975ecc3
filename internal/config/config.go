package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the storefront backend.
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	Storefront      StorefrontConfig      `mapstructure:"storefront"`
	Cache           CacheConfig           `mapstructure:"cache"`
	Database        DatabaseConfig        `mapstructure:"database"`
	Log             LogConfig             `mapstructure:"log"`
	Recommendations RecommendationsConfig `mapstructure:"recommendations"`
	Quiz            QuizConfig            `mapstructure:"quiz"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	AllowOrigins string `mapstructure:"allow_origins"`
	JWTSecret    string `mapstructure:"jwt_secret"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorefrontConfig holds the commerce Storefront API settings.
type StorefrontConfig struct {
	Domain               string `mapstructure:"domain"`
	APIVersion           string `mapstructure:"api_version"`
	AccessToken          string `mapstructure:"access_token"`
	Endpoint             string `mapstructure:"endpoint"` // overrides Domain/APIVersion when set
	Timeout              int    `mapstructure:"timeout"`  // seconds
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	Country              string `mapstructure:"country"`
	Language             string `mapstructure:"language"`
}

// GraphQLURL returns the Storefront GraphQL endpoint.
func (s StorefrontConfig) GraphQLURL() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	return fmt.Sprintf("https://%s/api/%s/graphql.json", s.Domain, s.APIVersion)
}

// CacheConfig controls the API response cache.
type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	TTL     int         `mapstructure:"ttl"` // seconds
	Redis   RedisConfig `mapstructure:"redis"`
}

// TTLDuration converts TTL seconds to a time.Duration.
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// RedisConfig holds Redis connection details. An empty Host selects the in-process cache.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// DatabaseConfig holds the Postgres connection string. Empty URL means in-memory data.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

type RecommendationsConfig struct {
	Count int `mapstructure:"count"`
}

type QuizConfig struct {
	ProductsFirst int `mapstructure:"products_first"`
	TaxonomyFirst int `mapstructure:"taxonomy_first"`
}

// Load reads configuration from an optional config.yaml with environment variable overrides.
// A .env file, when present, is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Storefront.Endpoint == "" && c.Storefront.Domain == "" {
		errs = append(errs, errors.New("storefront.domain is required"))
	}
	if c.Storefront.AccessToken == "" {
		errs = append(errs, errors.New("storefront.access_token is required"))
	}
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("server.jwt_secret", "")

	v.SetDefault("storefront.domain", "")
	v.SetDefault("storefront.api_version", "2023-01")
	v.SetDefault("storefront.access_token", "")
	v.SetDefault("storefront.endpoint", "")
	v.SetDefault("storefront.timeout", 30)
	v.SetDefault("storefront.max_retries", 3)
	v.SetDefault("storefront.max_requests_per_second", 20)
	v.SetDefault("storefront.country", "US")
	v.SetDefault("storefront.language", "EN")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 60)
	v.SetDefault("cache.redis.host", "")
	v.SetDefault("cache.redis.port", 6379)
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.database", 0)

	v.SetDefault("database.url", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("recommendations.count", 12)

	v.SetDefault("quiz.products_first", 100)
	v.SetDefault("quiz.taxonomy_first", 100)
}
