package filter

import (
	"slices"
	"sort"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

// AllModeName is the name of the mode that shows every league.
const AllModeName = "ALL"

// Mode is one entry of the league cycle driven by the up button.
// An empty Leagues list means every league.
type Mode struct {
	Name    string
	Leagues []leagues.Code
}

// Favorites maps a league to the team abbreviations followed in it.
type Favorites map[leagues.Code][]string

// Filter is the resolved league/team restriction applied to a poll.
// Empty slices mean "all".
type Filter struct {
	Leagues []leagues.Code
	Teams   []string
}

// AllLeagues reports whether the filter admits every league.
func (f Filter) AllLeagues() bool { return len(f.Leagues) == 0 }

// AllTeams reports whether the filter admits every team.
func (f Filter) AllTeams() bool { return len(f.Teams) == 0 }

// AllowsLeague reports whether games of the league pass the filter.
func (f Filter) AllowsLeague(code leagues.Code) bool {
	return f.AllLeagues() || slices.Contains(f.Leagues, code)
}

// Allows reports whether a game passes both the league and team restriction.
// A game passes the team restriction when either side is followed.
func (f Filter) Allows(g games.Game) bool {
	if !f.AllowsLeague(g.League) {
		return false
	}
	if f.AllTeams() {
		return true
	}
	return slices.Contains(f.Teams, g.HomeTeam) || slices.Contains(f.Teams, g.AwayTeam)
}

// Apply returns the games that pass the filter, preserving order.
func (f Filter) Apply(list []games.Game) []games.Game {
	out := make([]games.Game, 0, len(list))
	for _, g := range list {
		if f.Allows(g) {
			out = append(out, g)
		}
	}
	return out
}

// State tracks the current league mode and the favorites-only toggle.
// It is owned by the engine loop and never shared across goroutines.
type State struct {
	modes         []Mode
	favorites     Favorites
	index         int
	favoritesOnly bool
}

// NewState builds a filter state starting at the first mode with favorites off.
// When no modes are given a single ALL mode is used.
func NewState(modes []Mode, favorites Favorites) *State {
	if len(modes) == 0 {
		modes = []Mode{{Name: AllModeName}}
	}
	if favorites == nil {
		favorites = Favorites{}
	}
	return &State{modes: modes, favorites: favorites}
}

// DefaultModes returns ALL followed by one mode per league, in the given order.
func DefaultModes(enabled []leagues.League) []Mode {
	modes := make([]Mode, 0, len(enabled)+1)
	modes = append(modes, Mode{Name: AllModeName})
	for _, l := range enabled {
		modes = append(modes, Mode{Name: string(l.Code), Leagues: []leagues.Code{l.Code}})
	}
	return modes
}

// AdvanceMode moves to the next mode, wrapping after the last one.
func (s *State) AdvanceMode() Mode {
	s.index = (s.index + 1) % len(s.modes)
	return s.modes[s.index]
}

// ToggleFavorites flips the favorites-only flag and returns the new value.
func (s *State) ToggleFavorites() bool {
	s.favoritesOnly = !s.favoritesOnly
	return s.favoritesOnly
}

// Mode returns the active mode.
func (s *State) Mode() Mode { return s.modes[s.index] }

// ModeCount returns the number of modes in the cycle.
func (s *State) ModeCount() int { return len(s.modes) }

// FavoritesOnly reports whether the favorites toggle is on.
func (s *State) FavoritesOnly() bool { return s.favoritesOnly }

// Resolve derives the league and team filter from the current state.
func (s *State) Resolve() Filter {
	mode := s.Mode()
	f := Filter{Leagues: slices.Clone(mode.Leagues)}
	if !s.favoritesOnly {
		return f
	}

	seen := make(map[string]struct{})
	add := func(teams []string) {
		for _, t := range teams {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			f.Teams = append(f.Teams, t)
		}
	}

	if f.AllLeagues() {
		codes := make([]string, 0, len(s.favorites))
		for code := range s.favorites {
			codes = append(codes, string(code))
		}
		sort.Strings(codes)
		for _, code := range codes {
			add(s.favorites[leagues.Code(code)])
		}
		return f
	}
	for _, code := range f.Leagues {
		add(s.favorites[code])
	}
	return f
}

// TeamsLabel is the acknowledgment caption for the favorites toggle.
// It only reads "MY TEAMS" when the toggle actually narrows the team set.
func (s *State) TeamsLabel() string {
	if s.favoritesOnly && !s.Resolve().AllTeams() {
		return "MY TEAMS"
	}
	return "ALL TEAMS"
}
