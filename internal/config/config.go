package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "TODO"

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
	Shell   ShellConfig   `mapstructure:"shell"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// RatePerSec <= 0 disables request rate limiting.
	RatePerSec float64 `mapstructure:"rate_per_sec"`
	Burst      int     `mapstructure:"burst"`
}

type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format"`
}

type ShellConfig struct {
	// Output is the list format in the shell: "table", "json" or "yaml".
	Output string `mapstructure:"output"`
}

func New() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: time.Second * 10,
			RatePerSec:      50,
			Burst:           100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Shell: ShellConfig{
			Output: "table",
		},
	}
}

// SetDefaults registers the New() values on v so they apply even without a
// config file.
func SetDefaults(v *viper.Viper) {
	d := New()
	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.shutdown_timeout", d.HTTP.ShutdownTimeout)
	v.SetDefault("http.rate_per_sec", d.HTTP.RatePerSec)
	v.SetDefault("http.burst", d.HTTP.Burst)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("shell.output", d.Shell.Output)
}

// Load merges flags bound on v, TODO_* environment variables, the optional
// config file and defaults, highest precedence first.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// http.addr is read from TODO_HTTP_ADDR
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("%w: http.addr is empty", ErrInvalidConfig)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: http.shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.HTTP.RatePerSec > 0 && c.HTTP.Burst <= 0 {
		return fmt.Errorf("%w: http.burst must be positive when rate limiting is on", ErrInvalidConfig)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	switch c.Shell.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: shell.output %q", ErrInvalidConfig, c.Shell.Output)
	}

	return nil
}
