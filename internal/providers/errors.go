package providers

import (
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

// ErrProviderUnavailable is returned when no upstream source is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError reports that one league's fetch or parse failed.
type FetchError struct {
	League leagues.Code
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.League, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
