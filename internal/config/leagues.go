package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/sports-ticker/internal/alerts"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/filter"
)

// defaultOrder is the league order used for polling and the mode cycle when
// no layout file is present.
var defaultOrder = []leagues.Code{
	leagues.NHL, leagues.NBA, leagues.NFL, leagues.MLB,
	leagues.NCAAF, leagues.NCAAB, leagues.NCAAH,
}

// Layout is the league arrangement: which leagues are polled and in what
// order, followed teams, the mode cycle and the leagues that raise alerts.
type Layout struct {
	Enabled   []leagues.League
	Favorites filter.Favorites
	Modes     []filter.Mode
	Alertable []leagues.Code
}

// DefaultLayout returns every league, NHL favorites BOS and NYR, ALL followed
// by one mode per league and the default alertable set.
func DefaultLayout() Layout {
	enabled := make([]leagues.League, 0, len(defaultOrder))
	for _, code := range defaultOrder {
		l, _ := leagues.Lookup(code)
		enabled = append(enabled, l)
	}
	return Layout{
		Enabled:   enabled,
		Favorites: filter.Favorites{leagues.NHL: {"BOS", "NYR"}},
		Modes:     filter.DefaultModes(enabled),
		Alertable: append([]leagues.Code(nil), alerts.DefaultAlertable...),
	}
}

type layoutFile struct {
	Leagues   []string            `yaml:"leagues"`
	Favorites map[string][]string `yaml:"favorites"`
	Modes     []modeEntry         `yaml:"modes"`
	Alertable []string            `yaml:"alertable"`
}

// modeEntry accepts either a league key ("nhl") or a mapping with a name and
// a list of leagues.
type modeEntry struct {
	Name    string   `yaml:"name"`
	Leagues []string `yaml:"leagues"`
}

func (m *modeEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		m.Name = node.Value
		m.Leagues = nil
		if !strings.EqualFold(node.Value, filter.AllModeName) {
			m.Leagues = []string{node.Value}
		}
		return nil
	}
	type plain modeEntry
	return node.Decode((*plain)(m))
}

// LoadLeagues reads the layout file at path. A missing path or file yields
// DefaultLayout with a nil error; an unreadable or invalid file yields
// DefaultLayout and the error so the caller can log it.
func LoadLeagues(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultLayout(), nil
	}
	if err != nil {
		return DefaultLayout(), fmt.Errorf("read league layout: %w", err)
	}
	layout, err := ParseLayout(raw)
	if err != nil {
		return DefaultLayout(), fmt.Errorf("league layout %s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes a YAML layout. Omitted sections take their defaults.
func ParseLayout(raw []byte) (Layout, error) {
	var file layoutFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Layout{}, err
	}

	layout := DefaultLayout()
	if len(file.Leagues) > 0 {
		enabled, err := parseLeagueList(file.Leagues)
		if err != nil {
			return Layout{}, fmt.Errorf("leagues: %w", err)
		}
		layout.Enabled = enabled
		layout.Modes = filter.DefaultModes(enabled)
	}
	if file.Favorites != nil {
		favorites := filter.Favorites{}
		for key, teams := range file.Favorites {
			l, err := leagues.Parse(key)
			if err != nil {
				return Layout{}, fmt.Errorf("favorites: %w", err)
			}
			favorites[l.Code] = normalizeTeams(teams)
		}
		layout.Favorites = favorites
	}
	if len(file.Modes) > 0 {
		modes, err := parseModes(file.Modes)
		if err != nil {
			return Layout{}, fmt.Errorf("modes: %w", err)
		}
		layout.Modes = modes
	}
	if file.Alertable != nil {
		alertable, err := parseLeagueList(file.Alertable)
		if err != nil {
			return Layout{}, fmt.Errorf("alertable: %w", err)
		}
		layout.Alertable = make([]leagues.Code, 0, len(alertable))
		for _, l := range alertable {
			layout.Alertable = append(layout.Alertable, l.Code)
		}
	}
	return layout, nil
}

func parseLeagueList(keys []string) ([]leagues.League, error) {
	out := make([]leagues.League, 0, len(keys))
	seen := make(map[leagues.Code]bool, len(keys))
	for _, key := range keys {
		l, err := leagues.Parse(key)
		if err != nil {
			return nil, err
		}
		if seen[l.Code] {
			continue
		}
		seen[l.Code] = true
		out = append(out, l)
	}
	return out, nil
}

func parseModes(entries []modeEntry) ([]filter.Mode, error) {
	modes := make([]filter.Mode, 0, len(entries))
	for i, entry := range entries {
		list, err := parseLeagueList(entry.Leagues)
		if err != nil {
			return nil, fmt.Errorf("mode %d: %w", i, err)
		}
		mode := filter.Mode{Name: strings.ToUpper(strings.TrimSpace(entry.Name))}
		for _, l := range list {
			mode.Leagues = append(mode.Leagues, l.Code)
		}
		if len(list) == 1 && (mode.Name == "" || strings.EqualFold(mode.Name, list[0].Key)) {
			mode.Name = string(list[0].Code)
		}
		if mode.Name == "" {
			if len(list) != 0 {
				return nil, fmt.Errorf("mode %d: name is required for multi-league modes", i)
			}
			mode.Name = filter.AllModeName
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func normalizeTeams(teams []string) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
