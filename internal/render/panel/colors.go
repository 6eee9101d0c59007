package panel

import "image/color"

// fallbackGray colors marks for teams missing from teamColors.
var fallbackGray = color.RGBA{100, 100, 100, 255}

// teamColors are primary colors used for the placeholder mark when no logo file exists.
var teamColors = map[string]color.RGBA{
	// NHL
	"BOS": {252, 186, 3, 255}, "TOR": {0, 32, 159, 255}, "NYR": {0, 56, 168, 255},
	"MTL": {175, 30, 45, 255}, "DET": {206, 17, 38, 255}, "CHI": {207, 10, 44, 255},
	"PIT": {252, 186, 3, 255}, "WSH": {200, 16, 46, 255}, "PHI": {247, 73, 2, 255},
	"TB": {0, 40, 104, 255}, "FLA": {200, 16, 46, 255}, "CAR": {206, 17, 38, 255},
	"CBJ": {0, 38, 84, 255}, "NJ": {206, 17, 38, 255}, "NYI": {0, 83, 155, 255},
	"OTT": {200, 16, 46, 255}, "BUF": {0, 38, 84, 255}, "COL": {111, 38, 61, 255},
	"DAL": {0, 104, 71, 255}, "MIN": {2, 73, 48, 255}, "STL": {0, 47, 135, 255},
	"WPG": {4, 30, 66, 255}, "NSH": {255, 184, 28, 255}, "ARI": {140, 38, 51, 255},
	"CGY": {210, 0, 28, 255}, "EDM": {4, 30, 66, 255}, "VAN": {0, 32, 91, 255},
	"SEA": {0, 72, 90, 255}, "VGK": {185, 151, 91, 255}, "SJ": {0, 109, 117, 255},
	"LA": {162, 170, 173, 255}, "ANA": {252, 76, 2, 255}, "UTA": {105, 160, 205, 255},
	// NBA
	"LAL": {85, 37, 130, 255}, "GSW": {29, 66, 138, 255}, "MIL": {0, 71, 27, 255},
	"PHX": {29, 17, 96, 255}, "DEN": {13, 34, 64, 255}, "MIA": {152, 0, 46, 255},
	"CLE": {134, 0, 56, 255}, "ATL": {225, 68, 52, 255}, "SAC": {91, 43, 130, 255},
	"IND": {0, 45, 98, 255}, "OKC": {0, 125, 195, 255}, "MEM": {93, 118, 169, 255},
	"CHA": {29, 17, 96, 255}, "ORL": {0, 125, 197, 255}, "SAS": {196, 206, 211, 255},
	"POR": {224, 58, 62, 255}, "HOU": {206, 17, 65, 255}, "NO": {0, 22, 65, 255},
	"LAC": {200, 16, 46, 255}, "BKN": {0, 0, 0, 255},
	// NFL
	"KC": {227, 24, 55, 255}, "SF": {170, 0, 0, 255}, "BAL": {36, 23, 115, 255},
	"GB": {24, 48, 40, 255}, "NE": {0, 34, 68, 255},
	// MLB
	"NYY": {0, 48, 135, 255}, "LAD": {0, 90, 156, 255},
}

// TeamColor returns the placeholder color for a team.
func TeamColor(team string) color.RGBA {
	if c, ok := teamColors[team]; ok {
		return c
	}
	return fallbackGray
}
