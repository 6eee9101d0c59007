package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/providers"
)

// Config controls how the ESPN client reaches the public scoreboard API.
type Config struct {
	BaseURL     string
	HTTPClient  *http.Client
	OffsetHours *int
}

// Client fetches league scoreboards and maps them to games.
type Client struct {
	baseURL     string
	httpClient  httpDoer
	offsetHours int
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	offset := defaultOffsetHours
	if cfg.OffsetHours != nil {
		offset = *cfg.OffsetHours
	}
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		offsetHours: offset,
	}
}

// FetchGames retrieves the current scoreboard for one league.
func (c *Client) FetchGames(ctx context.Context, league leagues.League) ([]games.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+league.ScoreboardPath(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
			Message:    "espn: rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScoreboardBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxScoreboardBody {
		return nil, fmt.Errorf("%w: over %d bytes", errBodyTooLarge, maxScoreboardBody)
	}
	return parseScoreboard(body, league.Code, c.offsetHours)
}
