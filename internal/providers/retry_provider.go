package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 200 * time.Millisecond
	// Upper bound on honoring Retry-After; the whole loop waits on this call.
	maxRetryAfter = 5 * time.Second
)

// retryingProvider wraps a GameSource with bounded retries and per-attempt metrics.
type retryingProvider struct {
	inner        GameSource
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given source with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner GameSource, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) GameSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = 4 * initial
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error) {
	if r == nil || r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	source := r.sourceName(league)

	var (
		result  []games.Game
		attempt int
	)
	policy := &retryAfterBackOff{inner: r.newBackOff()}
	bounded := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	op := func() error {
		attempt++
		start := time.Now()
		got, err := r.inner.FetchGames(ctx, league)
		r.metrics.RecordProviderAttempt(source, time.Since(start), err)
		if err == nil {
			result = got
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(source, rl.RetryAfter)
			policy.pending = min(rl.RetryAfter, maxRetryAfter)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "source fetch retry",
			slog.String(logging.FieldLeague, string(league.Code)),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Int64("delay_ms", delay.Milliseconds()),
			"error", err,
		)
	}

	if err := backoff.RetryNotify(op, bounded, notify); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = ctxErr
		}
		return nil, &FetchError{League: league.Code, Err: err}
	}
	return result, nil
}

func (r *retryingProvider) sourceName(league leagues.League) string {
	if r.providerName == "" {
		return string(league.Code)
	}
	return r.providerName + ":" + string(league.Code)
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, r.logger), msg, args...)
}

// retryAfterBackOff prefers an upstream Retry-After hint over the computed delay once.
type retryAfterBackOff struct {
	inner   backoff.BackOff
	pending time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.inner.NextBackOff()
	if b.pending > 0 && next != backoff.Stop {
		next = b.pending
	}
	b.pending = 0
	return next
}

func (b *retryAfterBackOff) Reset() {
	b.pending = 0
	b.inner.Reset()
}
