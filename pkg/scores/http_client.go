package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is a Store backed by the game server's score API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a score API client. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) GetHighScore(ctx context.Context) (int64, error) {
	var resp HighScoreResponse
	if err := c.do(ctx, http.MethodGet, "/api/scores/high", nil, &resp); err != nil {
		return 0, err
	}
	return resp.HighScore, nil
}

func (c *Client) UpdateScore(ctx context.Context, candidate int64) (int64, error) {
	if candidate < 0 {
		return 0, ErrNegativeScore
	}
	var resp HighScoreResponse
	if err := c.do(ctx, http.MethodPost, "/api/scores", ScoreRequest{Score: &candidate}, &resp); err != nil {
		return 0, err
	}
	return resp.HighScore, nil
}

func (c *Client) ClearScores(ctx context.Context) error {
	var resp ClearScoresResponse
	if err := c.do(ctx, http.MethodDelete, "/api/scores", nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("clear scores: server reported failure")
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, errResp.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
