// Package config loads service configuration from defaults, an optional
// YAML file, a .env file, and SHIP_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SHIP_SERVER_PORT
const EnvPrefix = "SHIP"

// Config is the root configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	RollLog RollLogConfig `mapstructure:"roll_log"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
	Reflection      bool          `mapstructure:"reflection"`
}

// RedisConfig selects and configures the document store connection
type RedisConfig struct {
	// Mode is single, cluster, or failover
	Mode     string   `mapstructure:"mode" validate:"required,oneof=single cluster failover"`
	Addr     string   `mapstructure:"addr" validate:"required_if=Mode single"`
	Addrs    []string `mapstructure:"addrs" validate:"required_unless=Mode single"`
	Master   string   `mapstructure:"master" validate:"required_if=Mode failover"`
	Password string   `mapstructure:"password"`
	DB       int      `mapstructure:"db" validate:"min=0,max=15"`
	PoolSize int      `mapstructure:"pool_size" validate:"min=0"`
	UseTLS   bool     `mapstructure:"use_tls"`

	PingTimeout time.Duration `mapstructure:"ping_timeout" validate:"min=0"`
}

// LedgerConfig locates the SQLite credit ledger
type LedgerConfig struct {
	// DSN is a file path or ":memory:"
	DSN string `mapstructure:"dsn" validate:"required"`
}

// RollLogConfig bounds the per-ship roll history
type RollLogConfig struct {
	TTL        time.Duration `mapstructure:"ttl" validate:"min=0"`
	MaxEntries int64         `mapstructure:"max_entries" validate:"min=1"`
}

// RulesConfig tunes the rules engine
type RulesConfig struct {
	// HullTablePath overrides the built-in hull templates when set
	HullTablePath string `mapstructure:"hull_table_path" validate:"omitempty,file"`
}

// LoggingConfig configures the slog handler
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.reflection", true)

	v.SetDefault("redis.mode", "single")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.addrs", []string{})
	v.SetDefault("redis.master", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("redis.ping_timeout", 5*time.Second)

	v.SetDefault("ledger.dsn", "ship-ledger.db")

	v.SetDefault("roll_log.ttl", 24*time.Hour)
	v.SetDefault("roll_log.max_entries", 50)

	v.SetDefault("rules.hull_table_path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Load reads configuration with priority, highest first:
// environment variables, the config file, then defaults.
// An empty configPath searches ./config.yaml and ./configs/config.yaml.
func Load(configPath string) (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
