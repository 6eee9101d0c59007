package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/input"
)

func TestStubSourceTracksCalls(t *testing.T) {
	nhl, _ := leagues.Lookup(leagues.NHL)
	err := errors.New("boom")
	s := NewStubSource()
	s.Set(leagues.NHL, nil, err)
	if _, got := s.FetchGames(context.Background(), nhl); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	s.Set(leagues.NHL, []games.Game{{HomeTeam: "BOS"}}, nil)
	list, _ := s.FetchGames(context.Background(), nhl)
	if len(list) != 1 {
		t.Fatalf("expected 1 game, got %d", len(list))
	}
	if s.Calls(leagues.NHL) != 2 || s.TotalCalls() != 2 {
		t.Fatalf("expected 2 calls, got %d", s.Calls(leagues.NHL))
	}
}

func TestScriptedButtons(t *testing.T) {
	b := &ScriptedButtons{}
	b.Press(input.ButtonUp)
	if b.Edge(input.ButtonDown) {
		t.Fatal("expected no down edge")
	}
	if !b.Edge(input.ButtonUp) || b.Edge(input.ButtonUp) {
		t.Fatal("expected exactly one up edge")
	}
}
