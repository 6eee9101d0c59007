package teststubs

import (
	"context"
	"sync"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

// StubSource is a test double for providers.GameSource with per-league answers.
type StubSource struct {
	mu     sync.Mutex
	Games  map[leagues.Code][]games.Game
	Errs   map[leagues.Code]error
	calls  map[leagues.Code]int
	Notify chan struct{}
}

// NewStubSource returns a source with empty answers for every league.
func NewStubSource() *StubSource {
	return &StubSource{
		Games: make(map[leagues.Code][]games.Game),
		Errs:  make(map[leagues.Code]error),
	}
}

// Set replaces the answer for one league.
func (s *StubSource) Set(code leagues.Code, list []games.Game, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Games == nil {
		s.Games = make(map[leagues.Code][]games.Game)
	}
	if s.Errs == nil {
		s.Errs = make(map[leagues.Code]error)
	}
	s.Games[code] = list
	s.Errs[code] = err
}

// FetchGames returns the configured answer for the league while tracking calls.
func (s *StubSource) FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[leagues.Code]int)
	}
	s.calls[league.Code]++
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if err := s.Errs[league.Code]; err != nil {
		return nil, err
	}
	return append([]games.Game(nil), s.Games[league.Code]...), nil
}

// Calls returns how many times the league was fetched.
func (s *StubSource) Calls(code leagues.Code) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[code]
}

// TotalCalls returns fetches across every league.
func (s *StubSource) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}
