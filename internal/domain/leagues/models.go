package leagues

import (
	"fmt"
	"strings"
)

// Code is the display tag of a supported league (e.g. "NHL").
type Code string

const (
	NFL   Code = "NFL"
	MLB   Code = "MLB"
	NHL   Code = "NHL"
	NBA   Code = "NBA"
	NCAAF Code = "NCAAF"
	NCAAB Code = "NCAAB"
	NCAAH Code = "NCAAH"
)

// Sport groups leagues that share scoring semantics.
type Sport string

const (
	Football   Sport = "football"
	Baseball   Sport = "baseball"
	Hockey     Sport = "hockey"
	Basketball Sport = "basketball"
)

// League describes one supported competition and where its scoreboard lives.
type League struct {
	Code    Code   `json:"code" yaml:"code"`
	Key     string `json:"key" yaml:"key"`
	Sport   Sport  `json:"sport" yaml:"sport"`
	Slug    string `json:"slug" yaml:"slug"`
	LogoDir string `json:"logoDir" yaml:"logo_dir"`
}

// ScoreboardPath is the sport/slug pair appended to the scoreboard base URL.
func (l League) ScoreboardPath() string {
	return l.Sport.String() + "/" + l.Slug + "/scoreboard"
}

// AlertText is the header flashed when a team in this league scores.
func (l League) AlertText() string {
	switch l.Sport {
	case Hockey:
		return "GOAL!"
	case Football:
		return "SCORE!"
	default:
		return "RUN SCORED!"
	}
}

func (s Sport) String() string { return string(s) }

var catalog = []League{
	{Code: NFL, Key: "nfl", Sport: Football, Slug: "nfl", LogoDir: "team0_logos"},
	{Code: MLB, Key: "mlb", Sport: Baseball, Slug: "mlb", LogoDir: "team1_logos"},
	{Code: NHL, Key: "nhl", Sport: Hockey, Slug: "nhl", LogoDir: "team2_logos"},
	{Code: NBA, Key: "nba", Sport: Basketball, Slug: "nba", LogoDir: "team3_logos"},
	{Code: NCAAF, Key: "cfb", Sport: Football, Slug: "college-football", LogoDir: "team4_logos"},
	{Code: NCAAB, Key: "cbb", Sport: Basketball, Slug: "mens-college-basketball", LogoDir: "team5_logos"},
	{Code: NCAAH, Key: "chk", Sport: Hockey, Slug: "mens-college-hockey", LogoDir: "team6_logos"},
}

// All returns the supported leagues in their canonical order.
func All() []League {
	out := make([]League, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for a code.
func Lookup(code Code) (League, bool) {
	for _, l := range catalog {
		if l.Code == code {
			return l, true
		}
	}
	return League{}, false
}

// Parse accepts either the display code ("NCAAF") or the short key ("cfb"), case-insensitively.
func Parse(raw string) (League, error) {
	needle := strings.TrimSpace(raw)
	for _, l := range catalog {
		if strings.EqualFold(needle, string(l.Code)) || strings.EqualFold(needle, l.Key) {
			return l, nil
		}
	}
	return League{}, fmt.Errorf("unknown league %q", raw)
}
