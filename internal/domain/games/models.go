package games

import "github.com/preston-bernstein/sports-ticker/internal/domain/leagues"

// GameStatus is the lifecycle phase of a contest.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
	StatusPostponed GameStatus = "POSTPONED"
	StatusCanceled  GameStatus = "CANCELED"
	StatusOther     GameStatus = "OTHER"
)

// Identity correlates the same matchup across polls.
// Two same-day meetings of one pair collapse onto a single identity.
type Identity struct {
	League   leagues.Code
	HomeTeam string
	AwayTeam string
}

func (id Identity) String() string {
	return string(id.League) + "-" + id.HomeTeam + "-" + id.AwayTeam
}

// Score holds the textual score of each side exactly as the feed reported it.
type Score struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Game is one normalized contest. Values are replaced, never mutated, between polls.
type Game struct {
	EventID    string       `json:"eventId,omitempty"`
	League     leagues.Code `json:"league"`
	HomeTeam   string       `json:"homeTeam"`
	AwayTeam   string       `json:"awayTeam"`
	Score      Score        `json:"score"`
	Status     GameStatus   `json:"status"`
	StatusText string       `json:"statusText"`
}

// Identity returns the (league, home, away) key.
func (g Game) Identity() Identity {
	return Identity{League: g.League, HomeTeam: g.HomeTeam, AwayTeam: g.AwayTeam}
}

// IsLive reports whether the game is in progress.
func (g Game) IsLive() bool { return g.Status == StatusLive }

// IsScheduled reports whether the game has not started yet.
func (g Game) IsScheduled() bool { return g.Status == StatusScheduled }

// Matchup renders "AWAY @ HOME" for logs.
func (g Game) Matchup() string {
	return g.AwayTeam + " @ " + g.HomeTeam
}

// Scoreline renders "home - away".
func (g Game) Scoreline() string {
	return g.Score.Home + " - " + g.Score.Away
}

// AnyLive reports whether at least one game is in progress.
func AnyLive(list []Game) bool {
	for _, g := range list {
		if g.IsLive() {
			return true
		}
	}
	return false
}
