package nbastats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com and the live data CDN.
type Config struct {
	BaseURL     string
	LiveBaseURL string
	HTTPClient  *http.Client
	Timeout     time.Duration
	UserAgent   string
}

// Client fetches result-set responses from stats.nba.com and the live scoreboard from cdn.nba.com.
type Client struct {
	baseURL     string
	liveBaseURL string
	userAgent   string
	httpClient  httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		liveBaseURL: normalizeBaseURL(cfg.LiveBaseURL, defaultLiveBaseURL),
		userAgent:   cfg.UserAgent,
		httpClient:  resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the client in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchStats calls one stats endpoint with the request parameters as given.
func (c *Client) FetchStats(ctx context.Context, req stats.Request) (stats.Response, error) {
	if strings.TrimSpace(req.Endpoint) == "" {
		return stats.Response{}, fmt.Errorf("%s: endpoint is required", providerName)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+req.Endpoint, nil)
	if err != nil {
		return stats.Response{}, err
	}
	httpReq.URL.RawQuery = req.Query().Encode()

	var payload stats.Response
	if err := c.do(httpReq, req.Endpoint, &payload); err != nil {
		return stats.Response{}, err
	}
	return payload, nil
}

// FetchLiveScoreboard retrieves today's scoreboard from the live data feed.
func (c *Client) FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.liveBaseURL+liveScoreboardPath, nil)
	if err != nil {
		return live.Scoreboard{}, err
	}

	var payload liveScoreboardResponse
	if err := c.do(httpReq, "todaysScoreboard", &payload); err != nil {
		return live.Scoreboard{}, err
	}
	if payload.Scoreboard.Games == nil {
		payload.Scoreboard.Games = []map[string]any{}
	}
	return payload.Scoreboard, nil
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	setBrowserHeaders(req, c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &providers.UpstreamError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, msg),
		}
	}

	if err := jsonAPI.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", providerName, endpoint, err)
	}
	return nil
}
