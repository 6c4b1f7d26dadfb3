package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr=%q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Fatalf("HTTP.ShutdownTimeout=%v, want 10s", cfg.HTTP.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() err=%v, want nil", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg != New() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, New())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	body := []byte("http:\n  addr: \":9090\"\n  shutdown_timeout: 3s\nlogging:\n  level: debug\n  format: json\nshell:\n  output: yaml\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("WriteFile err=%v", err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("HTTP.Addr=%q, want :9090", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 3*time.Second {
		t.Fatalf("HTTP.ShutdownTimeout=%v, want 3s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("Logging=%+v, want debug/json", cfg.Logging)
	}
	if cfg.Shell.Output != "yaml" {
		t.Fatalf("Shell.Output=%q, want yaml", cfg.Shell.Output)
	}
	// untouched keys keep defaults
	if cfg.HTTP.Burst != 100 {
		t.Fatalf("HTTP.Burst=%d, want 100", cfg.HTTP.Burst)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TODO_HTTP_ADDR", ":7070")
	t.Setenv("TODO_LOGGING_LEVEL", "warn")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("HTTP.Addr=%q, want :7070", cfg.HTTP.Addr)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Logging.Level=%q, want warn", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("Load() err=nil, want non-nil")
	}
}

func TestValidate_Invalid(t *testing.T) {
	cases := map[string]func(*Config){
		"empty addr":   func(c *Config) { c.HTTP.Addr = " " },
		"zero timeout": func(c *Config) { c.HTTP.ShutdownTimeout = 0 },
		"zero burst":   func(c *Config) { c.HTTP.Burst = 0 },
		"bad format":   func(c *Config) { c.Logging.Format = "xml" },
		"bad output":   func(c *Config) { c.Shell.Output = "csv" },
	}

	for name, mutate := range cases {
		cfg := New()
		mutate(&cfg)

		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: Validate() err=%v, want %v", name, err, ErrInvalidConfig)
		}
	}
}

func TestValidate_RateLimitOff(t *testing.T) {
	cfg := New()
	cfg.HTTP.RatePerSec = 0
	cfg.HTTP.Burst = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() err=%v, want nil", err)
	}
}
