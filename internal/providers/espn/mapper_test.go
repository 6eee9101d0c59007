package espn

import (
	"testing"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

func TestParseScoreboardStatuses(t *testing.T) {
	body := []byte(`{"events": [
		{"date": "2024-01-03T00:30Z", "status": {"type": {"name": "STATUS_SCHEDULED"}},
		 "competitions": [{"competitors": [{"team": {"abbreviation": "KC"}}, {"team": {"abbreviation": "BUF"}}]}]},
		{"status": {"type": {"name": "STATUS_FINAL", "shortDetail": "Final/OT"}},
		 "competitions": [{"competitors": [{"score": "24", "team": {"abbreviation": "SF"}}, {"score": "27", "team": {"abbreviation": "GB"}}]}]},
		{"status": {"type": {"name": "STATUS_POSTPONED"}},
		 "competitions": [{"competitors": [{"team": {"abbreviation": "NE"}}, {"team": {"abbreviation": "BAL"}}]}]},
		{"status": {"type": {"name": "STATUS_CANCELED"}},
		 "competitions": [{"competitors": [{"team": {"abbreviation": "DAL"}}, {"team": {"abbreviation": "NYG"}}]}]},
		{"status": {"type": {"name": "STATUS_DELAYED", "shortDetail": "Delayed"}},
		 "competitions": [{"competitors": [{"team": {"abbreviation": "MIA"}}, {"team": {"abbreviation": "NYJ"}}]}]},
		{"status": {"type": {"name": "STATUS_WHATEVER"}},
		 "competitions": [{"competitors": [{"team": {"abbreviation": "LV"}}, {"team": {"abbreviation": "DEN"}}]}]}
	]}`)

	got, err := parseScoreboard(body, leagues.NFL, -5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []struct {
		status games.GameStatus
		text   string
	}{
		{games.StatusScheduled, "1/2 7:30PM"},
		{games.StatusFinal, "FINAL"},
		{games.StatusPostponed, "POSTPONED"},
		{games.StatusCanceled, "CANCELED"},
		{games.StatusOther, "Delayed"},
		{games.StatusOther, "SCHEDULED"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d games, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Status != w.status || got[i].StatusText != w.text {
			t.Fatalf("game %d: expected %s/%q, got %s/%q", i, w.status, w.text, got[i].Status, got[i].StatusText)
		}
	}
	if got[0].Score.Home != "0" || got[0].Score.Away != "0" {
		t.Fatalf("expected missing scores to default to 0, got %+v", got[0].Score)
	}
	if got[1].Score.Home != "24" || got[1].Score.Away != "27" {
		t.Fatalf("unexpected final score %+v", got[1].Score)
	}
}

func TestParseScoreboardSkipsMalformedEvents(t *testing.T) {
	body := []byte(`{"events": [
		{"status": {"type": {"name": "STATUS_FINAL"}}, "competitions": [{"competitors": [{"team": {"abbreviation": "A"}}]}]},
		{"status": {"type": {"name": "STATUS_FINAL"}}, "competitions": []},
		{"status": {"type": {"name": "STATUS_FINAL"}}, "competitions": [{"competitors": [{"team": {}}, {"team": {"abbreviation": "B"}}]}]},
		{"competitions": [{"competitors": [{"team": {"abbreviation": "C"}}, {"team": {"abbreviation": "D"}}]}]}
	]}`)

	got, err := parseScoreboard(body, leagues.NHL, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving game, got %d", len(got))
	}
	if got[0].HomeTeam != "C" || got[0].Status != games.StatusScheduled || got[0].StatusText != "TBD" {
		t.Fatalf("expected missing status to default to scheduled with TBD, got %+v", got[0])
	}
}

func TestParseScoreboardNoEvents(t *testing.T) {
	got, err := parseScoreboard([]byte(`{"leagues": []}`), leagues.NBA, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no games, got %d", len(got))
	}
}

func TestParseScoreboardRejectsNonObject(t *testing.T) {
	for _, body := range []string{"", "[]", "{broken"} {
		if _, err := parseScoreboard([]byte(body), leagues.NBA, 0); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}
