package config

// Config holds runtime configuration for the ticker.
type Config struct {
	Port        string
	AdminToken  string
	LeaguesFile string
	Log         LogConfig
	Source      SourceConfig
	Poll        PollConfig
	Engine      EngineConfig
	Display     DisplayConfig
	Runtime     RuntimeConfig
	Metrics     MetricsConfig

	// DotEnvErr is set when the .env file exists but could not be read or parsed.
	DotEnvErr error
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
	// File, when set, receives logs instead of stdout.
	File string
}

// SourceConfig controls where scores come from and how hard the upstream is hit.
type SourceConfig struct {
	Provider       string
	ESPNBaseURL    string
	RateLimit      float64
	RateBurst      int
	RetryAttempts  int
	RetryBackoff   Duration
	TimezoneOffset int
	TimezoneLabel  string
}

// PollConfig is the poll cadence.
type PollConfig struct {
	Fast           Duration
	Slow           Duration
	IdleRetry      Duration
	IdleRetryLimit int
}

// EngineConfig is the display loop timing.
type EngineConfig struct {
	TickInterval    Duration
	DisplayInterval Duration
	DebounceWindow  Duration
	ModeAckHold     Duration
	StartupHold     Duration
	AlertFlashes    int
	AlertOn         Duration
	AlertOff        Duration
	AlertHold       Duration
}

// DisplayConfig picks the output backend and logo folder.
type DisplayConfig struct {
	Backend string
	LogoDir string
}

// RuntimeConfig governs memory limits and restart behavior.
type RuntimeConfig struct {
	MemoryLimitMB int
	RestartMode   string
}

// Load reads configuration from environment variables with sensible defaults,
// after pre-loading the .env file named by TICKER_ENV_FILE (default ".env").
// Invalid values fall back to their defaults; Load never fails, but a broken
// .env file is reported through DotEnvErr.
func Load() Config {
	dotEnvErr := LoadDotEnv(envOrDefault(envDotEnvFile, defaultDotEnvFile))

	return Config{
		DotEnvErr:   dotEnvErr,
		Port:        envOrDefault(envPort, defaultPort),
		AdminToken:  envOrDefault(envAdminToken, ""),
		LeaguesFile: envOrDefault(envLeaguesFile, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
			File:   envOrDefault(envLogFile, ""),
		},
		Source:  loadSource(),
		Poll:    loadPoll(),
		Engine:  loadEngine(),
		Display: loadDisplay(),
		Runtime: RuntimeConfig{
			MemoryLimitMB: nonNegativeIntEnvOrDefault(envMemoryLimitMB, 0),
			RestartMode:   oneOfEnvOrDefault(envRestartMode, defaultRestartMode, "engine", "process"),
		},
		Metrics: loadMetrics(),
	}
}

func loadSource() SourceConfig {
	return SourceConfig{
		Provider:       oneOfEnvOrDefault(envProvider, defaultProvider, "espn", "fixture"),
		ESPNBaseURL:    envOrDefault(envESPNBaseURL, ""),
		RateLimit:      floatEnvOrDefault(envSourceRate, defaultSourceRate),
		RateBurst:      intEnvOrDefault(envSourceBurst, defaultSourceBurst),
		RetryAttempts:  intEnvOrDefault(envSourceRetries, defaultSourceRetries),
		RetryBackoff:   durationEnvOrDefault(envSourceBackoff, defaultSourceBackoff),
		TimezoneOffset: offsetEnvOrDefault(envTimezoneOffset, defaultTimezoneOffset),
		TimezoneLabel:  envOrDefault(envTimezoneLabel, defaultTimezoneLabel),
	}
}

func loadPoll() PollConfig {
	return PollConfig{
		Fast:           durationEnvOrDefault(envFastPoll, defaultFastPoll),
		Slow:           durationEnvOrDefault(envSlowPoll, defaultSlowPoll),
		IdleRetry:      durationEnvOrDefault(envIdleRetry, defaultIdleRetry),
		IdleRetryLimit: nonNegativeIntEnvOrDefault(envIdleRetryLimit, defaultIdleRetryLimit),
	}
}

func loadEngine() EngineConfig {
	return EngineConfig{
		TickInterval:    durationEnvOrDefault(envTickInterval, defaultTickInterval),
		DisplayInterval: durationEnvOrDefault(envDisplayInterval, defaultDisplayInterval),
		DebounceWindow:  durationEnvOrDefault(envDebounceWindow, defaultDebounceWindow),
		ModeAckHold:     durationEnvOrDefault(envModeAckHold, defaultModeAckHold),
		StartupHold:     durationEnvOrDefault(envStartupHold, defaultStartupHold),
		AlertFlashes:    intEnvOrDefault(envAlertFlashes, defaultAlertFlashes),
		AlertOn:         durationEnvOrDefault(envAlertOn, defaultAlertOn),
		AlertOff:        durationEnvOrDefault(envAlertOff, defaultAlertOff),
		AlertHold:       durationEnvOrDefault(envAlertHold, defaultAlertHold),
	}
}

func loadDisplay() DisplayConfig {
	return DisplayConfig{
		Backend: oneOfEnvOrDefault(envDisplayBackend, defaultDisplayBackend, "web", "terminal"),
		LogoDir: envOrDefault(envLogoDir, ""),
	}
}
