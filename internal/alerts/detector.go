package alerts

import (
	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

// DefaultAlertable lists leagues where scoring is rare enough to flash.
// Basketball is left out; its score changes on almost every poll.
var DefaultAlertable = []leagues.Code{leagues.NHL, leagues.MLB, leagues.NFL, leagues.NCAAF, leagues.NCAAH}

// Detector finds live games whose score moved between two polls.
type Detector struct {
	alertable map[leagues.Code]struct{}
}

// NewDetector builds a detector for the given alertable leagues.
func NewDetector(alertable []leagues.Code) Detector {
	set := make(map[leagues.Code]struct{}, len(alertable))
	for _, code := range alertable {
		set[code] = struct{}{}
	}
	return Detector{alertable: set}
}

// Alertable reports whether score changes in the league raise alerts.
func (d Detector) Alertable(code leagues.Code) bool {
	_, ok := d.alertable[code]
	return ok
}

// Change pairs a changed game with the score it had on the previous poll.
type Change struct {
	Game     games.Game
	Previous games.Score
}

// Detect returns the live, alertable games in next whose identity was live in
// prev with a different score. Order follows next. Games missing from next
// and games seen live for the first time never alert.
func (d Detector) Detect(prev, next []games.Game) []Change {
	lookup := make(map[games.Identity]games.Score, len(prev))
	for _, g := range prev {
		if g.IsLive() && d.Alertable(g.League) {
			lookup[g.Identity()] = g.Score
		}
	}
	if len(lookup) == 0 {
		return nil
	}

	var changed []Change
	for _, g := range next {
		if !g.IsLive() || !d.Alertable(g.League) {
			continue
		}
		old, ok := lookup[g.Identity()]
		if ok && old != g.Score {
			changed = append(changed, Change{Game: g, Previous: old})
		}
	}
	return changed
}

// Games strips the previous scores from a change list.
func Games(changes []Change) []games.Game {
	out := make([]games.Game, len(changes))
	for i, c := range changes {
		out[i] = c.Game
	}
	return out
}
