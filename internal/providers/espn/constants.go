package espn

import "time"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second
	defaultOffsetHours = -5
	providerName       = "espn"
	maxErrorBody       = 512
)

// maxScoreboardBody caps a successful scoreboard read; a var for tests.
var maxScoreboardBody int64 = 8 << 20

const (
	statusScheduled  = "STATUS_SCHEDULED"
	statusInProgress = "STATUS_IN_PROGRESS"
	statusFinal      = "STATUS_FINAL"
	statusPostponed  = "STATUS_POSTPONED"
	statusCanceled   = "STATUS_CANCELED"
)
