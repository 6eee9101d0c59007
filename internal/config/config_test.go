package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Source.Provider != "espn" || cfg.Source.TimezoneOffset != -5 {
		t.Fatalf("unexpected source defaults %+v", cfg.Source)
	}
	if cfg.Poll.Fast != 30*time.Second || cfg.Poll.Slow != 5*time.Minute {
		t.Fatalf("unexpected poll defaults %+v", cfg.Poll)
	}
	if cfg.Poll.IdleRetry != 10*time.Second || cfg.Poll.IdleRetryLimit != 3 {
		t.Fatalf("unexpected idle retry defaults %+v", cfg.Poll)
	}
	e := cfg.Engine
	if e.DisplayInterval != 5*time.Second || e.DebounceWindow != 300*time.Millisecond || e.ModeAckHold != 1500*time.Millisecond {
		t.Fatalf("unexpected engine defaults %+v", e)
	}
	if e.AlertFlashes != 3 || e.AlertOn != 500*time.Millisecond || e.AlertOff != 200*time.Millisecond || e.AlertHold != 2*time.Second {
		t.Fatalf("unexpected alert defaults %+v", e)
	}
	if cfg.Display.Backend != "web" || cfg.Runtime.RestartMode != "engine" || cfg.Runtime.MemoryLimitMB != 0 {
		t.Fatalf("unexpected runtime defaults %+v %+v", cfg.Display, cfg.Runtime)
	}
	if cfg.Metrics.ServiceName != defaultServiceName || !cfg.Metrics.Enabled {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envFastPoll, "15s")
	t.Setenv(envIdleRetryLimit, "0")
	t.Setenv(envTimezoneOffset, "+2")
	t.Setenv(envAlertFlashes, "5")
	t.Setenv(envMemoryLimitMB, "256")
	t.Setenv(envRestartMode, "PROCESS")
	t.Setenv(envDisplayBackend, "terminal")
	t.Setenv(envSourceRate, "0.5")
	t.Setenv(envLogFile, "/var/log/ticker.log")

	cfg := Load()

	if cfg.Log.File != "/var/log/ticker.log" {
		t.Fatalf("expected log file override, got %q", cfg.Log.File)
	}

	if cfg.Port != "5000" || cfg.Source.Provider != "fixture" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.Poll.Fast != 15*time.Second || cfg.Poll.IdleRetryLimit != 0 {
		t.Fatalf("unexpected poll overrides %+v", cfg.Poll)
	}
	if cfg.Source.TimezoneOffset != 2 || cfg.Source.RateLimit != 0.5 {
		t.Fatalf("unexpected source overrides %+v", cfg.Source)
	}
	if cfg.Engine.AlertFlashes != 5 || cfg.Runtime.MemoryLimitMB != 256 || cfg.Runtime.RestartMode != "process" {
		t.Fatalf("unexpected engine/runtime overrides %+v %+v", cfg.Engine, cfg.Runtime)
	}
	if cfg.Display.Backend != "terminal" {
		t.Fatalf("expected terminal backend, got %s", cfg.Display.Backend)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envFastPoll, "soon")
	t.Setenv(envSlowPoll, "-1m")
	t.Setenv(envAlertFlashes, "0")
	t.Setenv(envTimezoneOffset, "99")
	t.Setenv(envProvider, "carrier-pigeon")
	t.Setenv(envRestartMode, "reboot")
	t.Setenv(envMemoryLimitMB, "-4")

	cfg := Load()

	if cfg.Poll.Fast != defaultFastPoll || cfg.Poll.Slow != defaultSlowPoll {
		t.Fatalf("expected poll defaults, got %+v", cfg.Poll)
	}
	if cfg.Engine.AlertFlashes != defaultAlertFlashes {
		t.Fatalf("expected default flashes, got %d", cfg.Engine.AlertFlashes)
	}
	if cfg.Source.TimezoneOffset != defaultTimezoneOffset || cfg.Source.Provider != defaultProvider {
		t.Fatalf("expected source defaults, got %+v", cfg.Source)
	}
	if cfg.Runtime.RestartMode != defaultRestartMode || cfg.Runtime.MemoryLimitMB != 0 {
		t.Fatalf("expected runtime defaults, got %+v", cfg.Runtime)
	}
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticker.env")
	if err := os.WriteFile(path, []byte("SLOW_POLL_INTERVAL=2m\nPORT=7000\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envDotEnvFile, path)
	t.Setenv(envPort, "6000")
	t.Setenv(envSlowPoll, "")
	os.Unsetenv(envSlowPoll)

	cfg := Load()

	if cfg.Poll.Slow != 2*time.Minute {
		t.Fatalf("expected slow poll from .env, got %s", cfg.Poll.Slow)
	}
	if cfg.Port != "6000" {
		t.Fatalf("expected environment to win over .env, got %s", cfg.Port)
	}
}

func TestLoadDotEnvErrors(t *testing.T) {
	if err := LoadDotEnv(""); err != nil {
		t.Fatalf("empty path should be a no-op, got %v", err)
	}
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
	if err := LoadDotEnv(t.TempDir()); err == nil {
		t.Fatalf("expected error reading a directory")
	}
}

func TestLoadReportsUnreadableDotEnv(t *testing.T) {
	t.Setenv(envDotEnvFile, t.TempDir())
	cfg := Load()
	if cfg.DotEnvErr == nil {
		t.Fatalf("expected DotEnvErr for an unreadable .env")
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected defaults despite the broken .env, got port %s", cfg.Port)
	}
}

func TestLoadIgnoresMissingDotEnv(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	if cfg := Load(); cfg.DotEnvErr != nil {
		t.Fatalf("missing .env should not be reported, got %v", cfg.DotEnvErr)
	}
}
