package games

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

func TestGameStatusValues(t *testing.T) {
	expected := map[GameStatus]string{
		StatusScheduled: "SCHEDULED",
		StatusLive:      "LIVE",
		StatusFinal:     "FINAL",
		StatusPostponed: "POSTPONED",
		StatusCanceled:  "CANCELED",
		StatusOther:     "OTHER",
	}

	for status, want := range expected {
		if string(status) != want {
			t.Fatalf("expected %q got %q", want, status)
		}
	}
}

func TestGameJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	gameType := reflect.TypeOf(Game{})
	fields := []fieldCheck{
		{"League", "league"},
		{"HomeTeam", "homeTeam"},
		{"AwayTeam", "awayTeam"},
		{"Score", "score"},
		{"Status", "status"},
		{"StatusText", "statusText"},
	}

	for _, fc := range fields {
		field, ok := gameType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestIdentityIgnoresScoreAndStatus(t *testing.T) {
	a := Game{League: leagues.NHL, HomeTeam: "BOS", AwayTeam: "NYR", Score: Score{"1", "0"}, Status: StatusLive}
	b := Game{League: leagues.NHL, HomeTeam: "BOS", AwayTeam: "NYR", Score: Score{"2", "0"}, Status: StatusFinal}

	if a.Identity() != b.Identity() {
		t.Fatalf("expected identical identities, got %v and %v", a.Identity(), b.Identity())
	}
	if got := a.Identity().String(); got != "NHL-BOS-NYR" {
		t.Fatalf("unexpected identity string %s", got)
	}
}

func TestAnyLive(t *testing.T) {
	if AnyLive(nil) {
		t.Fatal("expected no live games in empty list")
	}
	list := []Game{{Status: StatusFinal}, {Status: StatusLive}}
	if !AnyLive(list) {
		t.Fatal("expected live game detected")
	}
}

func TestMatchupAndScoreline(t *testing.T) {
	g := Game{HomeTeam: "BOS", AwayTeam: "NYR", Score: Score{Home: "3", Away: "2"}}
	if g.Matchup() != "NYR @ BOS" {
		t.Fatalf("unexpected matchup %s", g.Matchup())
	}
	if g.Scoreline() != "3 - 2" {
		t.Fatalf("unexpected scoreline %s", g.Scoreline())
	}
}
