package providers

import (
	"context"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

// GameSource fetches one league's scoreboard and normalizes it into games.
// Implementations return a non-nil error when the league could not be read;
// a malformed single event is skipped rather than failing the whole league.
type GameSource interface {
	FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error)
}

// SourceFunc adapts a function to GameSource.
type SourceFunc func(ctx context.Context, league leagues.League) ([]games.Game, error)

// FetchGames calls f.
func (f SourceFunc) FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error) {
	return f(ctx, league)
}
