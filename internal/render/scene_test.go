package render

import (
	"testing"

	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/engine"
	"github.com/preston-bernstein/sports-ticker/internal/testutil"
)

func findText(t *testing.T, s Scene, value string) Text {
	t.Helper()
	for _, txt := range s.Texts {
		if txt.Value == value {
			return txt
		}
	}
	t.Fatalf("text %q not found in %+v", value, s.Texts)
	return Text{}
}

func TestGameSceneNilShowsNoGames(t *testing.T) {
	s := GameScene(nil)
	txt := findText(t, s, NoGamesMessage)
	if !txt.Centered || txt.Color != Yellow {
		t.Fatalf("unexpected no-games text %+v", txt)
	}
	if len(s.Marks) != 0 {
		t.Fatalf("expected no marks")
	}
}

func TestGameSceneScheduledShowsVS(t *testing.T) {
	g := testutil.ScheduledGame("NHL", "BOS", "NYR")
	s := GameScene(&g)

	if header := s.Texts[0]; header.Value != "NHL" || header.Y != headerY {
		t.Fatalf("expected league header first, got %+v", header)
	}
	if vs := findText(t, s, "VS"); vs.Color != White || vs.Y != scoreY {
		t.Fatalf("unexpected VS text %+v", vs)
	}
	if status := findText(t, s, g.StatusText); status.Color != Dim {
		t.Fatalf("expected dim status, got %+v", status)
	}
	if len(s.Marks) != 2 || s.Marks[0].X != homeX || s.Marks[1].X != awayX {
		t.Fatalf("unexpected marks %+v", s.Marks)
	}
}

func TestGameSceneLiveHighlightsScore(t *testing.T) {
	g := testutil.LiveGame("NHL", "BOS", "NYR", "3", "2")
	s := GameScene(&g)

	if score := findText(t, s, g.Scoreline()); score.Color != Green {
		t.Fatalf("expected green score, got %+v", score)
	}
	if status := findText(t, s, g.StatusText); status.Color != Red {
		t.Fatalf("expected red status, got %+v", status)
	}
	home := findText(t, s, "BOS")
	if home.X != homeX+(MarkSize-3*GlyphWidth)/2 || home.Y != abbrY {
		t.Fatalf("home abbreviation not centered under logo: %+v", home)
	}
}

func TestGameSceneFinalUsesWhiteScore(t *testing.T) {
	g := testutil.FinalGame("NBA", "LAL", "BOS", "101", "99")
	s := GameScene(&g)
	if score := findText(t, s, g.Scoreline()); score.Color != White {
		t.Fatalf("expected white final score, got %+v", score)
	}
}

func TestAlertSceneHeaderBySport(t *testing.T) {
	cases := map[leagues.Code]string{
		leagues.NHL: "GOAL!",
		leagues.NFL: "SCORE!",
		leagues.MLB: "RUN SCORED!",
	}
	for league, header := range cases {
		g := testutil.LiveGame(league, "AAA", "BBB", "1", "0")
		s := AlertScene(g)
		if s.Texts[0].Value != header {
			t.Fatalf("%s: expected %q, got %q", league, header, s.Texts[0].Value)
		}
	}
}

func TestModeScene(t *testing.T) {
	s := ModeScene(engine.ModeAck{Mode: "NHL", FavoritesOnly: true, TeamsLabel: "MY TEAMS"})
	if name := findText(t, s, "NHL"); name.Y != modeNameY || name.Color != Yellow {
		t.Fatalf("unexpected mode name %+v", name)
	}
	if label := findText(t, s, "MY TEAMS"); label.Y != modeTeamY || label.Color != Green {
		t.Fatalf("unexpected teams label %+v", label)
	}
}

func TestBlankAndCentering(t *testing.T) {
	if !BlankScene().Empty() {
		t.Fatalf("blank scene should be empty")
	}
	if got := CenterX("NHL"); got != (Width-21)/2 {
		t.Fatalf("CenterX = %d", got)
	}
	if got := TextWidth("ÉÉ"); got != 2*GlyphWidth {
		t.Fatalf("TextWidth should count runes, got %d", got)
	}
}

func TestMessageSceneSingleLine(t *testing.T) {
	s := MessageScene(NoGamesMessage, "")
	if len(s.Texts) != 1 {
		t.Fatalf("expected one line, got %+v", s.Texts)
	}
	if txt := s.Texts[0]; txt.Y != messageY || !txt.Centered || txt.Color != Yellow {
		t.Fatalf("unexpected message %+v", txt)
	}
}

func TestMessageSceneTitleAndSubtitle(t *testing.T) {
	s := MessageScene("SPORTS TICKER", "Loading...")
	if len(s.Texts) != 2 {
		t.Fatalf("expected title and subtitle, got %+v", s.Texts)
	}
	title := findText(t, s, "SPORTS TICKER")
	sub := findText(t, s, "Loading...")
	if title.Color != Yellow || sub.Color != White {
		t.Fatalf("unexpected colours %+v %+v", title, sub)
	}
	if !title.Centered || !sub.Centered || title.Y >= sub.Y {
		t.Fatalf("expected centered title above subtitle, got %+v %+v", title, sub)
	}
}
