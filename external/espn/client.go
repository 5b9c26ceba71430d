package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/ruckdata/rugby-crawler/internal/domain/scorecard"
	"github.com/ruckdata/rugby-crawler/internal/platform/logging"
	"github.com/ruckdata/rugby-crawler/internal/usecase"
)

const (
	defaultBaseURL   = "http://site.web.api.espn.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:62.0) Gecko/20100101 Firefox/62.0"

	scorePanelPath = "/apis/site/v2/sports/rugby/scorepanel"

	maxBodyBytes = 6 << 20
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	// Timeout zero means no per-request timeout; a hung request hangs the run.
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

// Client consumes the two site API endpoints: the day-scoped score panel and
// the per-match summary.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// FetchScorePanel retrieves the day panel listing every league's matches for
// the given date.
func (c *Client) FetchScorePanel(ctx context.Context, date time.Time) (ScorePanel, error) {
	query := map[string]string{
		"lang":   "en",
		"region": "gb",
		"dates":  date.Format(usecase.DayFormat),
	}

	var panel ScorePanel
	if err := c.doJSON(ctx, scorePanelPath, query, &panel); err != nil {
		return ScorePanel{}, fmt.Errorf("fetch score panel dates=%s: %w", date.Format(usecase.DayFormat), err)
	}
	return panel, nil
}

// FetchSummary retrieves one match's detail payload by league slug and event id.
func (c *Client) FetchSummary(ctx context.Context, leagueSlug, eventID string) (Summary, error) {
	path := fmt.Sprintf("/apis/site/v2/sports/rugby/%s/summary", url.PathEscape(leagueSlug))
	query := map[string]string{"event": eventID}

	var sum Summary
	if err := c.doJSON(ctx, path, query, &sum); err != nil {
		return Summary{}, fmt.Errorf("fetch summary league=%s event=%s: %w", leagueSlug, eventID, err)
	}
	return sum, nil
}

// DayScoreboards implements usecase.MatchSource. Every score block maps to
// one scoreboard; blocks without a usable league descriptor keep a zero-value
// league so the caller's allow-list filter drops them.
func (c *Client) DayScoreboards(ctx context.Context, date time.Time) ([]usecase.DayScoreboard, error) {
	panel, err := c.FetchScorePanel(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.DayScoreboard, 0, len(panel.Scores))
	for _, block := range panel.Scores {
		board := usecase.DayScoreboard{
			Events: make([]usecase.EventStub, 0, len(block.Events)),
		}
		if len(block.Leagues) > 0 && strings.TrimSpace(block.Leagues[0].Slug) != "" {
			board.League = usecase.League{
				Slug:         block.Leagues[0].Slug,
				Abbreviation: block.Leagues[0].Abbreviation,
				Name:         block.Leagues[0].Name,
			}
		}
		for _, event := range block.Events {
			board.Events = append(board.Events, usecase.EventStub{ID: event.ID, Name: event.Name})
		}
		out = append(out, board)
	}
	return out, nil
}

// MatchRecord implements usecase.MatchSource: fetch the summary and flatten
// it against the query date and league metadata.
func (c *Client) MatchRecord(ctx context.Context, date time.Time, league usecase.League, event usecase.EventStub) (scorecard.Match, error) {
	sum, err := c.FetchSummary(ctx, league.Slug, event.ID)
	if err != nil {
		return scorecard.Match{}, err
	}
	return ExtractMatch(sum, date, league, event)
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	c.logger.DebugContext(ctx, "requesting", "url", fullURL)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "*/*")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errESPNTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errESPNTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				lastErr = fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				if !isRetryableStatus(resp.StatusCode) {
					return nil, lastErr
				}
				lastErr = fmt.Errorf("%w: %v", errESPNTransient, lastErr)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
