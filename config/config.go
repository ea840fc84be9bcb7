package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	dbm "github.com/cometbft/cometbft-db"
	pruningtypes "github.com/cosmos/cosmos-sdk/store/pruning/types"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	errors2 "github.com/axelarnetwork/polls/utils/errors"
)

// EnvPrefix is the prefix of environment variables that override config values
const EnvPrefix = "POLLSD"

// log formats
const (
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// AppConfig contains all pollsd configurations
type AppConfig struct {
	// Owner is the identity of the account hosting the poll store
	Owner     string          `mapstructure:"owner"`
	DBBackend dbm.BackendType `mapstructure:"db_backend"`
	LogLevel  string          `mapstructure:"log_level"`
	LogFormat string          `mapstructure:"log_format"`

	Store     StoreConfig     `mapstructure:"store"`
	REST      RESTConfig      `mapstructure:"rest"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// StoreConfig is the configuration of the committed poll store
type StoreConfig struct {
	// Pruning is one of default, everything, nothing or custom
	Pruning           string `mapstructure:"pruning"`
	PruningKeepRecent uint64 `mapstructure:"pruning_keep_recent"` // only used with custom pruning
	PruningInterval   uint64 `mapstructure:"pruning_interval"`    // only used with custom pruning
}

// PruningOptions returns the pruning options of the store, or an error if they are invalid
func (c StoreConfig) PruningOptions() (pruningtypes.PruningOptions, error) {
	var opts pruningtypes.PruningOptions
	switch c.Pruning {
	case pruningtypes.PruningOptionDefault:
		opts = pruningtypes.NewPruningOptions(pruningtypes.PruningDefault)
	case pruningtypes.PruningOptionEverything:
		opts = pruningtypes.NewPruningOptions(pruningtypes.PruningEverything)
	case pruningtypes.PruningOptionNothing:
		opts = pruningtypes.NewPruningOptions(pruningtypes.PruningNothing)
	case pruningtypes.PruningOptionCustom:
		opts = pruningtypes.NewCustomPruningOptions(c.PruningKeepRecent, c.PruningInterval)
	default:
		return pruningtypes.PruningOptions{}, fmt.Errorf("unknown pruning strategy %s", c.Pruning)
	}

	if err := opts.Validate(); err != nil {
		return pruningtypes.PruningOptions{}, fmt.Errorf("invalid pruning options: %w", err)
	}

	return opts, nil
}

// RESTConfig is the configuration of the REST server
type RESTConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	RateLimit    float64       `mapstructure:"rate_limit"` // requests per second per caller, 0 disables limiting
	RateBurst    int           `mapstructure:"rate_burst"`
	// RateLimitCallers is the number of callers whose rate is tracked at the same time
	RateLimitCallers int `mapstructure:"rate_limit_callers"`
}

// TelemetryConfig is the configuration of the metrics sink
type TelemetryConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Retention time.Duration `mapstructure:"retention"`
}

// DefaultConfig returns a configuration populated with default values
func DefaultConfig() AppConfig {
	return AppConfig{
		Owner:     "polls",
		DBBackend: dbm.GoLevelDBBackend,
		LogLevel:  zerolog.InfoLevel.String(),
		LogFormat: LogFormatPlain,
		Store: StoreConfig{
			Pruning: pruningtypes.PruningOptionEverything,
		},
		REST: RESTConfig{
			Address:      "localhost:1317",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit:    10,
			RateBurst:    20,

			RateLimitCallers: 10000,
		},
		Telemetry: TelemetryConfig{
			Enabled:   true,
			Retention: time.Minute,
		},
	}
}

// SetDefaults registers the default value of every config key with the given viper instance
func SetDefaults(v *viper.Viper) {
	cfg := DefaultConfig()

	v.SetDefault("owner", cfg.Owner)
	v.SetDefault("db_backend", string(cfg.DBBackend))
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("store.pruning", cfg.Store.Pruning)
	v.SetDefault("store.pruning_keep_recent", cfg.Store.PruningKeepRecent)
	v.SetDefault("store.pruning_interval", cfg.Store.PruningInterval)
	v.SetDefault("rest.address", cfg.REST.Address)
	v.SetDefault("rest.read_timeout", cfg.REST.ReadTimeout)
	v.SetDefault("rest.write_timeout", cfg.REST.WriteTimeout)
	v.SetDefault("rest.rate_limit", cfg.REST.RateLimit)
	v.SetDefault("rest.rate_burst", cfg.REST.RateBurst)
	v.SetDefault("rest.rate_limit_callers", cfg.REST.RateLimitCallers)
	v.SetDefault("telemetry.enabled", cfg.Telemetry.Enabled)
	v.SetDefault("telemetry.retention", cfg.Telemetry.Retention)
}

// Dir returns the config directory below the given home directory
func Dir(home string) string {
	return filepath.Join(home, "config")
}

// ReadConfig reads app.toml from the config directory below home. Environment variables prefixed with POLLSD_ take precedence,
// missing keys and a missing file fall back to the defaults.
func ReadConfig(v *viper.Viper, home string) (AppConfig, error) {
	SetDefaults(v)

	v.SetConfigName("app")
	v.SetConfigType("toml")
	v.AddConfigPath(Dir(home))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return AppConfig{}, errors2.With(err, "home", home)
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, AddDecodeHooks); err != nil {
		return AppConfig{}, errors2.With(err, "home", home)
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// WriteConfig writes the current values of the given viper instance to app.toml in the config directory below home
func WriteConfig(v *viper.Viper, home string) error {
	path := filepath.Join(Dir(home), "app.toml")
	if err := v.WriteConfigAs(path); err != nil {
		return errors2.With(err, "path", path)
	}

	return nil
}

// Validate returns an error if the config is unusable
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.Owner) == "" {
		return fmt.Errorf("owner must not be empty")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %s: %w", c.LogLevel, err)
	}

	switch c.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %s", c.LogFormat)
	}

	if _, err := c.Store.PruningOptions(); err != nil {
		return err
	}

	if c.REST.RateLimit < 0 || c.REST.RateBurst < 0 {
		return fmt.Errorf("rate limit and burst must not be negative")
	}

	if c.REST.RateLimit > 0 && c.REST.RateLimitCallers <= 0 {
		return fmt.Errorf("rate_limit_callers must be positive when rate limiting is enabled")
	}

	return nil
}

// TelemetryConfig returns the metrics configuration for the given service
func (c AppConfig) TelemetryConfig(serviceName string) telemetry.Config {
	return telemetry.Config{
		ServiceName:             serviceName,
		Enabled:                 c.Telemetry.Enabled,
		EnableHostnameLabel:     false,
		EnableServiceLabel:      false,
		PrometheusRetentionTime: int64(c.Telemetry.Retention.Seconds()),
	}
}
