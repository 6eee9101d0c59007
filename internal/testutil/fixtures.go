package testutil

import (
	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

// LiveGame returns an in-progress game with the given textual score.
func LiveGame(code leagues.Code, home, away, homeScore, awayScore string) games.Game {
	return games.Game{
		League:     code,
		HomeTeam:   home,
		AwayTeam:   away,
		Score:      games.Score{Home: homeScore, Away: awayScore},
		Status:     games.StatusLive,
		StatusText: "1st 10:00",
	}
}

// ScheduledGame returns a game that has not started.
func ScheduledGame(code leagues.Code, home, away string) games.Game {
	return games.Game{
		League:     code,
		HomeTeam:   home,
		AwayTeam:   away,
		Score:      games.Score{Home: "0", Away: "0"},
		Status:     games.StatusScheduled,
		StatusText: "1/2 7:30PM",
	}
}

// FinalGame returns a completed game.
func FinalGame(code leagues.Code, home, away, homeScore, awayScore string) games.Game {
	return games.Game{
		League:     code,
		HomeTeam:   home,
		AwayTeam:   away,
		Score:      games.Score{Home: homeScore, Away: awayScore},
		Status:     games.StatusFinal,
		StatusText: "FINAL",
	}
}

// MustLeague looks up a catalog league or panics; intended for tests.
func MustLeague(code leagues.Code) leagues.League {
	l, ok := leagues.Lookup(code)
	if !ok {
		panic("unknown league " + string(code))
	}
	return l
}

// Leagues looks up several catalog leagues in order.
func Leagues(codes ...leagues.Code) []leagues.League {
	out := make([]leagues.League, 0, len(codes))
	for _, c := range codes {
		out = append(out, MustLeague(c))
	}
	return out
}
