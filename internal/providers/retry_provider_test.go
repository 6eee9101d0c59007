package providers

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
)

var nhl, _ = leagues.Lookup(leagues.NHL)

type flakeyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakeyProvider) FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return nil, f.err
		}
		return nil, errors.New("boom")
	}
	return []games.Game{{League: league.Code, HomeTeam: "BOS", AwayTeam: "NYR"}}, nil
}

func zeroBackOff(rp GameSource) *retryingProvider {
	r := rp.(*retryingProvider)
	r.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return r
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := zeroBackOff(NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, time.Millisecond))

	got, err := rp.FetchGames(context.Background(), nhl)
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(got) != 1 || got[0].HomeTeam != "BOS" {
		t.Fatalf("unexpected games %+v", got)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := zeroBackOff(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond))

	_, err := rp.FetchGames(context.Background(), nhl)
	if err == nil {
		t.Fatal("expected error after retries")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.League != leagues.NHL {
		t.Fatalf("expected FetchError for NHL, got %v", err)
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchGames(ctx, nhl)
	if err == nil {
		t.Fatal("expected context error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1, err: &RateLimitError{StatusCode: 429, RetryAfter: time.Millisecond}}
	rp := zeroBackOff(NewRetryingProvider(fp, nil, rec, "rl", 2, time.Millisecond))

	if _, err := rp.FetchGames(context.Background(), nhl); err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}

	if got := rec.RateLimitHits("rl:NHL"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.ProviderCalls("rl:NHL"); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
	if got := rec.ProviderErrors("rl:NHL"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
}

func TestRetryingProviderNilInner(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, nil, "", 1, 0)
	if _, err := rp.FetchGames(context.Background(), nhl); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRetryAfterBackOffPrefersHintOnce(t *testing.T) {
	b := &retryAfterBackOff{inner: backoff.NewConstantBackOff(time.Second), pending: 3 * time.Second}
	if got := b.NextBackOff(); got != 3*time.Second {
		t.Fatalf("expected retry-after hint, got %s", got)
	}
	if got := b.NextBackOff(); got != time.Second {
		t.Fatalf("expected computed delay after hint consumed, got %s", got)
	}
}
