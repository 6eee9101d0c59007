package fixture

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/timeutil"
)

// scoreEvery is how many fetches of a league pass between simulated scores.
const scoreEvery = 3

type matchup struct {
	home, away string
	status     games.GameStatus
	home0      int
	away0      int
	detail     string
}

var slates = map[leagues.Code][]matchup{
	leagues.NHL: {
		{home: "BOS", away: "NYR", status: games.StatusLive, home0: 1, away0: 1, detail: "2nd 08:12"},
		{home: "TOR", away: "MTL", status: games.StatusScheduled},
	},
	leagues.NFL: {
		{home: "KC", away: "BUF", status: games.StatusLive, home0: 14, away0: 10, detail: "3rd 04:51"},
		{home: "SF", away: "GB", status: games.StatusFinal, home0: 24, away0: 21},
	},
	leagues.MLB: {
		{home: "NYY", away: "BOS", status: games.StatusScheduled},
	},
	leagues.NBA: {
		{home: "LAL", away: "GSW", status: games.StatusLive, home0: 88, away0: 90, detail: "4th 05:40"},
	},
}

// Provider serves a deterministic slate per league. Live games gain a point
// on alternating sides every scoreEvery fetches so alerts can be exercised
// without network access.
type Provider struct {
	now   func() time.Time
	mu    sync.Mutex
	calls map[leagues.Code]int
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now:   time.Now,
		calls: make(map[leagues.Code]int),
	}
}

// FetchGames returns the league's slate with scores advanced by call count.
func (p *Provider) FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.calls[league.Code]++
	n := p.calls[league.Code]
	p.mu.Unlock()

	slate := slates[league.Code]
	start := p.now().UTC().Truncate(time.Hour).Add(2 * time.Hour)
	out := make([]games.Game, 0, len(slate))
	for i, m := range slate {
		home, away := m.home0, m.away0
		text := m.detail
		switch m.status {
		case games.StatusLive:
			goals := (n - 1) / scoreEvery
			home += (goals + 1) / 2
			away += goals / 2
		case games.StatusScheduled:
			text = timeutil.FormatClock(start.Add(time.Duration(i) * time.Hour))
		case games.StatusFinal:
			text = "FINAL"
		}
		out = append(out, games.Game{
			EventID:  "fixture-" + string(league.Code) + "-" + strconv.Itoa(i+1),
			League:   league.Code,
			HomeTeam: m.home,
			AwayTeam: m.away,
			Score: games.Score{
				Home: strconv.Itoa(home),
				Away: strconv.Itoa(away),
			},
			Status:     m.status,
			StatusText: text,
		})
	}
	return out, nil
}
