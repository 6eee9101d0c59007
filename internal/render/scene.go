// Package render turns ticker states into resolution-specific scenes. A scene
// is a flat list of text runs and team marks positioned on the 128x64 panel;
// backends rasterize it.
package render

import (
	"image/color"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/engine"
)

// Panel geometry.
const (
	Width      = 128
	Height     = 64
	GlyphWidth = 7
	LineHeight = 13
	MarkSize   = 24
)

// Layout rows and columns, measured from the top-left corner.
const (
	headerY   = 1
	markY     = 10
	homeX     = 4
	awayX     = 100
	scoreY    = 20
	abbrY     = 36
	statusY   = Height - LineHeight
	messageY  = Height/2 - 5
	modeNameY = 20
	modeTeamY = 38
	titleY    = 14
	subtitleY = 34
)

// NoGamesMessage is shown when the filtered collection is empty.
const NoGamesMessage = "NO GAMES TODAY"

var (
	White  = color.RGBA{255, 255, 255, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Dim    = color.RGBA{120, 120, 120, 255}
)

// Text is one run of glyphs; Y is the top of the line.
type Text struct {
	Value    string
	X, Y     int
	Centered bool
	Color    color.RGBA
}

// Mark is a team logo slot.
type Mark struct {
	League leagues.Code
	Team   string
	X, Y   int
	Size   int
}

// Scene is everything drawn on one frame, back to front.
type Scene struct {
	Texts []Text
	Marks []Mark
}

// Empty reports whether nothing is drawn.
func (s Scene) Empty() bool { return len(s.Texts) == 0 && len(s.Marks) == 0 }

// TextWidth is the pixel width of value in the panel font.
func TextWidth(value string) int {
	return len([]rune(value)) * GlyphWidth
}

// CenterX is the left edge that centers value on the panel.
func CenterX(value string) int {
	return (Width - TextWidth(value)) / 2
}

// GameScene lays out one game, or the no-games screen for nil.
func GameScene(g *games.Game) Scene {
	if g == nil {
		return MessageScene(NoGamesMessage, "")
	}
	s := matchupScene(*g)
	s.Texts = append([]Text{{Value: string(g.League), Y: headerY, Centered: true, Color: Yellow}}, s.Texts...)

	score, scoreColor := g.Scoreline(), White
	switch {
	case g.IsScheduled():
		score = "VS"
	case g.IsLive():
		scoreColor = Green
	}
	statusColor := Dim
	if g.IsLive() {
		statusColor = Red
	}
	s.Texts = append(s.Texts,
		Text{Value: score, Y: scoreY, Centered: true, Color: scoreColor},
		Text{Value: g.StatusText, Y: statusY, Centered: true, Color: statusColor},
	)
	return s
}

// AlertScene lays out a score alert for g.
func AlertScene(g games.Game) Scene {
	header := "SCORE!"
	if l, ok := leagues.Lookup(g.League); ok {
		header = l.AlertText()
	}
	s := matchupScene(g)
	s.Texts = append([]Text{{Value: header, Y: headerY, Centered: true, Color: Yellow}}, s.Texts...)
	s.Texts = append(s.Texts,
		Text{Value: g.Scoreline(), Y: scoreY, Centered: true, Color: Green},
		Text{Value: g.StatusText, Y: statusY, Centered: true, Color: Red},
	)
	return s
}

// ModeScene shows the active mode name and team caption.
func ModeScene(ack engine.ModeAck) Scene {
	return Scene{Texts: []Text{
		{Value: ack.Mode, Y: modeNameY, Centered: true, Color: Yellow},
		{Value: ack.TeamsLabel, Y: modeTeamY, Centered: true, Color: Green},
	}}
}

// MessageScene centers a title, or a title over a subtitle when one is given.
func MessageScene(title, subtitle string) Scene {
	if subtitle == "" {
		return Scene{Texts: []Text{{Value: title, Y: messageY, Centered: true, Color: Yellow}}}
	}
	return Scene{Texts: []Text{
		{Value: title, Y: titleY, Centered: true, Color: Yellow},
		{Value: subtitle, Y: subtitleY, Centered: true, Color: White},
	}}
}

// BlankScene draws nothing.
func BlankScene() Scene { return Scene{} }

func matchupScene(g games.Game) Scene {
	return Scene{
		Marks: []Mark{
			{League: g.League, Team: g.HomeTeam, X: homeX, Y: markY, Size: MarkSize},
			{League: g.League, Team: g.AwayTeam, X: awayX, Y: markY, Size: MarkSize},
		},
		Texts: []Text{
			{Value: g.HomeTeam, X: homeX + (MarkSize-TextWidth(g.HomeTeam))/2, Y: abbrY, Color: White},
			{Value: g.AwayTeam, X: awayX + (MarkSize-TextWidth(g.AwayTeam))/2, Y: abbrY, Color: White},
		},
	}
}
