package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

// rateLimitedProvider wraps a GameSource and spaces out upstream calls.
type rateLimitedProvider struct {
	next    GameSource
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a GameSource allowing perSecond calls with the given burst.
// Calls block until a token is available, so a poll cycle over every league stays
// under the upstream quota.
func NewRateLimitedProvider(next GameSource, perSecond float64, burst int, logger *slog.Logger) GameSource {
	if perSecond <= 0 {
		perSecond = 2
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled",
			slog.String("league", string(league.Code)))
		return nil, err
	}
	if waited := time.Since(start); waited > 0 {
		logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch",
			slog.String("league", string(league.Code)),
			slog.Int64("wait_ms", waited.Milliseconds()))
	}
	return p.next.FetchGames(ctx, league)
}
