// Package config loads and validates the application configuration from an
// optional YAML file and environment variables. Environment values override
// file values, which keeps the container deployment (.env driven) and local
// development (config.yml driven) on the same code path.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Logging controls the log output.
	Logging struct {
		// Level is the minimum level to emit. One of DEBUG, INFO, WARNING.
		Level string `env:"LOG_LEVEL" env-default:"INFO" yaml:"level"`
	} `yaml:"logging"`

	// Telegram contains the chat transport settings.
	Telegram struct {
		// Token is the bot API token. Mandatory.
		Token string `env:"TOKEN" yaml:"token"`
		// OwnerID is the user ID of the bot owner. Informational; 0 when unset.
		OwnerID int64 `env:"OWNER_ID" env-default:"0" yaml:"ownerId"`
		// PollTimeout is the long-polling timeout for fetching updates.
		PollTimeout time.Duration `env:"POLL_TIMEOUT" env-default:"10s" yaml:"pollTimeout"`
	} `yaml:"telegram"`

	// Database contains the PostgreSQL connection settings. The env names
	// follow the deployment contract (PG_*).
	Database struct {
		// Username for database authentication
		Username string `env:"PG_USER" env-default:"commandhotline" yaml:"username"`
		// Password for database authentication
		Password string `env:"PG_PASSWORD" env-default:"" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"PG_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"PG_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"PG_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"PG_DATABASE" env-default:"commandhotline" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"PG_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"PG_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"PG_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"PG_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Birthday tunes the birthday feature and its background jobs.
	Birthday struct {
		// NotifyInterval is how often due birthdays are checked and announced.
		NotifyInterval time.Duration `env:"BIRTHDAY_NOTIFY_INTERVAL" env-default:"4h" yaml:"notifyInterval"`
		// PurgeInterval is how often stale disabled records are purged.
		PurgeInterval time.Duration `env:"BIRTHDAY_PURGE_INTERVAL" env-default:"24h" yaml:"purgeInterval"`
		// RetentionDays is how long a disabled record is kept before purging.
		RetentionDays int `env:"BIRTHDAY_RETENTION_DAYS" env-default:"90" yaml:"retentionDays"`
		// QueueMaxWorkers limits concurrent background jobs.
		QueueMaxWorkers int `env:"BIRTHDAY_QUEUE_MAX_WORKERS" env-default:"10" yaml:"queueMaxWorkers"`
	} `yaml:"birthday"`

	// HTTP contains the operational HTTP server (metrics, health, pprof) settings.
	HTTP struct {
		// Addr is the address and port the ops server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for in-flight work to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// validLogLevels mirrors the levels the bot has always accepted.
var validLogLevels = map[string]struct{}{ //nolint: gochecknoglobals
	"DEBUG":   {},
	"INFO":    {},
	"WARNING": {},
}

// Validate checks mandatory values and reports all problems in one error, so
// a misconfigured container fails fast with a complete list.
func (c *Config) Validate() error {
	var missing []string

	if c.Telegram.Token == "" {
		missing = append(missing, "telegram.token")
	}
	if c.Database.DatabaseName == "" {
		missing = append(missing, "database.name")
	}
	if c.Database.Username == "" {
		missing = append(missing, "database.username")
	}
	if len(missing) > 0 {
		return fmt.Errorf("the following config values are missing: %s", strings.Join(missing, ", "))
	}

	if _, ok := validLogLevels[strings.ToUpper(c.Logging.Level)]; !ok {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}

// Load reads the config from the given YAML file path (when the file exists)
// and the environment, then validates it. A missing file is not an error: the
// container deployment configures everything through the environment.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
