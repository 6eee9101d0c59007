package config

import "time"

const (
	envDotEnvFile = "TICKER_ENV_FILE"
	envPort       = "PORT"
	envProvider   = "PROVIDER"
	envLogLevel   = "LOG_LEVEL"
	envLogFormat  = "LOG_FORMAT"
	envLogFile    = "LOG_FILE"
	envAdminToken = "ADMIN_TOKEN"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envLeaguesFile     = "TICKER_LEAGUES_FILE"
	envLogoDir         = "TICKER_LOGO_DIR"
	envDisplayBackend  = "DISPLAY_BACKEND"
	envESPNBaseURL     = "ESPN_BASE_URL"
	envSourceRate      = "SOURCE_RATE_LIMIT"
	envSourceBurst     = "SOURCE_RATE_BURST"
	envSourceRetries   = "SOURCE_RETRY_ATTEMPTS"
	envSourceBackoff   = "SOURCE_RETRY_BACKOFF"
	envTimezoneOffset  = "TIMEZONE_OFFSET_HOURS"
	envTimezoneLabel   = "TIMEZONE_LABEL"
	envFastPoll        = "FAST_POLL_INTERVAL"
	envSlowPoll        = "SLOW_POLL_INTERVAL"
	envIdleRetry       = "IDLE_RETRY_INTERVAL"
	envIdleRetryLimit  = "IDLE_RETRY_LIMIT"
	envDisplayInterval = "DISPLAY_INTERVAL"
	envDebounceWindow  = "DEBOUNCE_WINDOW"
	envTickInterval    = "TICK_INTERVAL"
	envModeAckHold     = "MODE_ACK_HOLD"
	envStartupHold     = "STARTUP_HOLD"
	envAlertFlashes    = "ALERT_FLASHES"
	envAlertOn         = "ALERT_ON"
	envAlertOff        = "ALERT_OFF"
	envAlertHold       = "ALERT_HOLD"
	envMemoryLimitMB   = "MEMORY_LIMIT_MB"
	envRestartMode     = "RESTART_MODE"

	defaultDotEnvFile     = ".env"
	defaultPort           = "4000"
	defaultProvider       = "espn"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "sports-ticker"
	defaultDisplayBackend = "web"
	defaultRestartMode    = "engine"
	defaultTimezoneOffset = -5
	defaultTimezoneLabel  = "EST"

	// ESPN's public scoreboard has no published quota; two requests per
	// second with a burst of one league sweep stays well clear of throttling.
	defaultSourceRate    = 2.0
	defaultSourceBurst   = 7
	defaultSourceRetries = 2
	defaultSourceBackoff = 500 * time.Millisecond

	defaultFastPoll        = 30 * time.Second
	defaultSlowPoll        = 5 * time.Minute
	defaultIdleRetry       = 10 * time.Second
	defaultIdleRetryLimit  = 3
	defaultDisplayInterval = 5 * time.Second
	defaultDebounceWindow  = 300 * time.Millisecond
	defaultTickInterval    = 100 * time.Millisecond
	defaultModeAckHold     = 1500 * time.Millisecond
	defaultStartupHold     = 2 * time.Second
	defaultAlertFlashes    = 3
	defaultAlertOn         = 500 * time.Millisecond
	defaultAlertOff        = 200 * time.Millisecond
	defaultAlertHold       = 2 * time.Second
)
