// Package config loads settings from file and environment.
// Env var overrides use prefix BETLEDGER_, e.g. BETLEDGER_SERVER_PORT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Backup   BackupConfig
	Slack    SlackConfig
	Slipscan SlipscanConfig
	Log      LogConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port        int
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DBConfig selects and configures the storage backend
type DBConfig struct {
	// Driver is "sqlite" or "postgres"
	Driver string
	// Path is the database file for the sqlite driver
	Path string
	// DSN is the connection string for the postgres driver
	DSN string
	// Migrations is the directory holding sqlite migration files
	Migrations string
}

// RedisConfig holds snapshot mirror settings. An empty Addr disables
// the mirror and scheduled backups.
type RedisConfig struct {
	Addr string
	Key  string
	TTL  time.Duration
}

// BackupConfig schedules snapshot backups. An empty Schedule disables
// them; backups also need a Redis mirror to write to.
type BackupConfig struct {
	// Schedule is a cron expression, nightly by default
	Schedule string
}

// SlackConfig holds settlement notification settings
type SlackConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// SlipscanConfig points at the vision model used for slip extraction.
// An empty Endpoint disables scanning.
type SlipscanConfig struct {
	Endpoint string
	APIKey   string `mapstructure:"api_key"`
	Model    string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from file and env
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8084)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "betledger", "betledger.db"))
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.migrations", "internal/store/migrations")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.key", "betledger:snapshot")
	v.SetDefault("redis.ttl", time.Duration(0))
	v.SetDefault("backup.schedule", "0 3 * * *")
	v.SetDefault("slack.webhook_url", "")
	v.SetDefault("slipscan.endpoint", "")
	v.SetDefault("slipscan.api_key", "")
	v.SetDefault("slipscan.model", "gpt-4o-mini")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BETLEDGER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "betledger"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BETLEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
