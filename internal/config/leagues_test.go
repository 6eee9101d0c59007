package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/filter"
)

func modeNames(modes []filter.Mode) []string {
	out := make([]string, 0, len(modes))
	for _, m := range modes {
		out = append(out, m.Name)
	}
	return out
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()

	want := []string{"ALL", "NHL", "NBA", "NFL", "MLB", "NCAAF", "NCAAB", "NCAAH"}
	if got := modeNames(layout.Modes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected modes %v, got %v", want, got)
	}
	if len(layout.Enabled) != 7 || layout.Enabled[0].Code != leagues.NHL {
		t.Fatalf("unexpected enabled leagues %+v", layout.Enabled)
	}
	if got := layout.Favorites[leagues.NHL]; !reflect.DeepEqual(got, []string{"BOS", "NYR"}) {
		t.Fatalf("unexpected NHL favorites %v", got)
	}
	if len(layout.Alertable) == 0 {
		t.Fatalf("expected default alertable leagues")
	}
}

func TestLoadLeaguesMissingFileUsesDefaults(t *testing.T) {
	layout, err := LoadLeagues(filepath.Join(t.TempDir(), "leagues.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if len(layout.Modes) != 8 {
		t.Fatalf("expected default modes, got %v", modeNames(layout.Modes))
	}
	if _, err := LoadLeagues(""); err != nil {
		t.Fatalf("empty path should not error, got %v", err)
	}
}

func TestLoadLeaguesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.yaml")
	body := `
leagues: [nhl, nfl, cfb]
favorites:
  nhl: [bos, " nyr "]
  NFL: [NE]
modes:
  - all
  - nhl
  - cfb
  - name: Football
    leagues: [nfl, cfb]
alertable: [nhl]
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	layout, err := LoadLeagues(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(layout.Enabled) != 3 || layout.Enabled[2].Code != leagues.NCAAF {
		t.Fatalf("unexpected enabled %+v", layout.Enabled)
	}
	if got := modeNames(layout.Modes); !reflect.DeepEqual(got, []string{"ALL", "NHL", "NCAAF", "FOOTBALL"}) {
		t.Fatalf("unexpected modes %v", got)
	}
	if got := layout.Modes[3].Leagues; !reflect.DeepEqual(got, []leagues.Code{leagues.NFL, leagues.NCAAF}) {
		t.Fatalf("unexpected football leagues %v", got)
	}
	if layout.Modes[0].Leagues != nil {
		t.Fatalf("ALL mode should have no league restriction")
	}
	if got := layout.Favorites[leagues.NHL]; !reflect.DeepEqual(got, []string{"BOS", "NYR"}) {
		t.Fatalf("unexpected favorites %v", got)
	}
	if !reflect.DeepEqual(layout.Alertable, []leagues.Code{leagues.NHL}) {
		t.Fatalf("unexpected alertable %v", layout.Alertable)
	}
}

func TestParseLayoutLeaguesOnlyRebuildsModes(t *testing.T) {
	layout, err := ParseLayout([]byte("leagues: [nba, nba, mlb]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := modeNames(layout.Modes); !reflect.DeepEqual(got, []string{"ALL", "NBA", "MLB"}) {
		t.Fatalf("unexpected modes %v", got)
	}
}

func TestParseLayoutEmptyAlertableDisablesAlerts(t *testing.T) {
	layout, err := ParseLayout([]byte("alertable: []\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(layout.Alertable) != 0 {
		t.Fatalf("expected no alertable leagues, got %v", layout.Alertable)
	}
}

func TestLoadLeaguesInvalidFileFallsBack(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "leagues: [nhl",
		"unknown league":  "leagues: [xfl]",
		"unknown fav":     "favorites:\n  xfl: [A]\n",
		"unnamed multi":   "modes:\n  - leagues: [nhl, nba]\n",
		"unknown alerter": "alertable: [xfl]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "leagues.yaml")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatalf("write layout: %v", err)
			}
			layout, err := LoadLeagues(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if len(layout.Modes) != len(DefaultLayout().Modes) {
				t.Fatalf("expected defaults on error")
			}
		})
	}
}
