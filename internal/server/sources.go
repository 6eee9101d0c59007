package server

import (
	"log/slog"

	"github.com/preston-bernstein/sports-ticker/internal/config"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
	"github.com/preston-bernstein/sports-ticker/internal/providers"
	"github.com/preston-bernstein/sports-ticker/internal/providers/espn"
	"github.com/preston-bernstein/sports-ticker/internal/providers/fixture"
)

// sourceFactory assembles the score source with the shared wrappers: the
// upstream is rate limited and every league fetch is retried with backoff.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, recorder *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: recorder}
}

func (f sourceFactory) build(cfg config.SourceConfig) providers.GameSource {
	name, base := selectSource(cfg, f.logger)
	var source providers.GameSource = base
	if name == "espn" {
		source = providers.NewRateLimitedProvider(source, cfg.RateLimit, cfg.RateBurst, f.logger)
	}
	return providers.NewRetryingProvider(source, f.logger, f.metrics, name, cfg.RetryAttempts, cfg.RetryBackoff)
}

func selectSource(cfg config.SourceConfig, logger *slog.Logger) (string, providers.GameSource) {
	switch cfg.Provider {
	case "espn":
		offset := cfg.TimezoneOffset
		return "espn", espn.NewClient(espn.Config{
			BaseURL:     cfg.ESPNBaseURL,
			OffsetHours: &offset,
		})
	case "fixture", "":
		return "fixture", fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return "fixture", fixture.New()
	}
}
