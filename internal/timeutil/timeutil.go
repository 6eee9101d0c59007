package timeutil

import (
	"fmt"
	"time"
)

// FeedLayout is the minute-precision prefix of feed timestamps (e.g. "2024-01-02T00:30Z").
const FeedLayout = "2006-01-02T15:04"

// Unknown is shown when a kickoff time cannot be read.
const Unknown = "TBD"

// ParseFeedTime parses the leading minute-precision UTC timestamp of a feed date.
func ParseFeedTime(value string) (time.Time, error) {
	if len(value) < len(FeedLayout) {
		return time.Time{}, fmt.Errorf("timeutil: short timestamp %q", value)
	}
	return time.Parse(FeedLayout, value[:len(FeedLayout)])
}

// FormatKickoff renders a feed timestamp shifted by offsetHours as "M/D h:mmAM".
// Anything unparseable renders as Unknown.
func FormatKickoff(value string, offsetHours int) string {
	t, err := ParseFeedTime(value)
	if err != nil {
		return Unknown
	}
	return FormatClock(t.Add(time.Duration(offsetHours) * time.Hour))
}

// FormatClock renders t as "M/D h:mmAM" without a leading zero on month, day, or hour.
func FormatClock(t time.Time) string {
	return t.Format("1/2 3:04PM")
}
