package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all Enterprise Hub server configuration.
type Config struct {
	AppEnv   string         `yaml:"app_env"`
	LogLevel string         `yaml:"log_level"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Cache    CacheConfig    `yaml:"cache"`
}

type HTTPConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig selects the relational store. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SQLitePath string `yaml:"sqlite_path"`
}

// RedisConfig is optional; an empty Host selects the in-memory cache.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTL  string `yaml:"token_ttl"`
}

type CacheConfig struct {
	DashboardTTL  string `yaml:"dashboard_ttl"`
	PermissionTTL string `yaml:"permission_ttl"`

	// "0" or "off" disables the dashboard warmer.
	RefreshInterval string `yaml:"refresh_interval"`
}

// DefaultConfig returns the configuration used for local development.
func DefaultConfig() *Config {
	return &Config{
		AppEnv: "development",
		HTTP: HTTPConfig{
			Port:           8080,
			AllowedOrigins: []string{"https://*", "http://localhost:5173"},
		},
		Database: DatabaseConfig{
			Driver:     "postgres",
			Host:       "localhost",
			Port:       "5432",
			User:       "hub",
			Name:       "enterprisehub",
			SQLitePath: "data/enterprisehub.db",
		},
		Redis: RedisConfig{
			Port: "6379",
		},
		Auth: AuthConfig{
			TokenTTL: "12h",
		},
		Cache: CacheConfig{
			DashboardTTL:    "60s",
			PermissionTTL:   "5m",
			RefreshInterval: "5m",
		},
	}
}

// Load reads the YAML file at path (missing file means defaults) and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.AppEnv, "APP_ENV")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Host, "PG_HOST")
	setString(&c.Database.Port, "PG_PORT")
	setString(&c.Database.User, "PG_USER")
	setString(&c.Database.Name, "PG_DB")
	setString(&c.Database.Password, "PG_PASSWORD")
	setString(&c.Database.SQLitePath, "SQLITE_PATH")
	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Auth.TokenTTL, "JWT_TTL")

	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.HTTP.Port = port
		}
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	if c.AppEnv == "production" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes in production")
	}
	return nil
}

// PostgresDSN builds the connection string the same way for sqlx and GORM.
func (c *Config) PostgresDSN() string {
	d := c.Database
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.Name)
}

func (c *Config) TokenTTL() time.Duration {
	return parseDuration(c.Auth.TokenTTL, 12*time.Hour)
}

func (c *Config) DashboardTTL() time.Duration {
	return parseDuration(c.Cache.DashboardTTL, time.Minute)
}

func (c *Config) PermissionTTL() time.Duration {
	return parseDuration(c.Cache.PermissionTTL, 5*time.Minute)
}

// DashboardRefresh is the warmer interval, 0 when disabled.
func (c *Config) DashboardRefresh() time.Duration {
	switch c.Cache.RefreshInterval {
	case "0", "off":
		return 0
	}
	return parseDuration(c.Cache.RefreshInterval, 5*time.Minute)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
