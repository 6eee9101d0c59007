package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

func TestRateLimitedProviderPassesThrough(t *testing.T) {
	calls := 0
	inner := SourceFunc(func(ctx context.Context, league leagues.League) ([]games.Game, error) {
		calls++
		return []games.Game{{League: league.Code}}, nil
	})
	p := NewRateLimitedProvider(inner, 1000, 10, nil)

	for i := 0; i < 3; i++ {
		got, err := p.FetchGames(context.Background(), nhl)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if len(got) != 1 || got[0].League != leagues.NHL {
			t.Fatalf("unexpected games %+v", got)
		}
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRateLimitedProviderHonorsCanceledContext(t *testing.T) {
	inner := SourceFunc(func(ctx context.Context, league leagues.League) ([]games.Game, error) {
		t.Fatal("inner source should not be called")
		return nil, nil
	})
	p := NewRateLimitedProvider(inner, 0.001, 1, nil)
	// Drain the only token.
	p.(*rateLimitedProvider).limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.FetchGames(ctx, nhl); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestRateLimitedProviderNilNext(t *testing.T) {
	p := NewRateLimitedProvider(nil, 1, 1, nil)
	if _, err := p.FetchGames(context.Background(), nhl); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
