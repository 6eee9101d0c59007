package espn

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/timeutil"
)

var (
	errInvalidPayload = errors.New("espn: invalid scoreboard payload")
	errBodyTooLarge   = errors.New("espn: scoreboard body too large")
)

// parseScoreboard maps a scoreboard document to games.
// Events missing competitors or abbreviations are dropped.
func parseScoreboard(body []byte, code leagues.Code, offsetHours int) ([]games.Game, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidPayload
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, errInvalidPayload
	}

	events := doc.Get("events").Array()
	out := make([]games.Game, 0, len(events))
	for _, event := range events {
		if g, ok := mapEvent(event, code, offsetHours); ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func mapEvent(event gjson.Result, code leagues.Code, offsetHours int) (games.Game, bool) {
	competitors := event.Get("competitions.0.competitors").Array()
	if len(competitors) != 2 {
		return games.Game{}, false
	}
	home, away := competitors[0], competitors[1]

	homeAbbr := home.Get("team.abbreviation").String()
	awayAbbr := away.Get("team.abbreviation").String()
	if homeAbbr == "" || awayAbbr == "" {
		return games.Game{}, false
	}

	name := event.Get("status.type.name").String()
	if name == "" {
		name = statusScheduled
	}
	detail := event.Get("status.type.shortDetail").String()
	status, text := mapStatus(name, detail, event.Get("date").String(), offsetHours)

	return games.Game{
		EventID:  event.Get("id").String(),
		League:   code,
		HomeTeam: homeAbbr,
		AwayTeam: awayAbbr,
		Score: games.Score{
			Home: scoreText(home),
			Away: scoreText(away),
		},
		Status:     status,
		StatusText: text,
	}, true
}

func scoreText(competitor gjson.Result) string {
	score := competitor.Get("score")
	if !score.Exists() || score.String() == "" {
		return "0"
	}
	return score.String()
}

func mapStatus(name, detail, date string, offsetHours int) (games.GameStatus, string) {
	switch name {
	case statusFinal:
		return games.StatusFinal, "FINAL"
	case statusInProgress:
		return games.StatusLive, detail
	case statusScheduled:
		return games.StatusScheduled, timeutil.FormatKickoff(date, offsetHours)
	case statusPostponed:
		return games.StatusPostponed, "POSTPONED"
	case statusCanceled:
		return games.StatusCanceled, "CANCELED"
	default:
		if detail == "" {
			detail = "SCHEDULED"
		}
		return games.StatusOther, detail
	}
}
