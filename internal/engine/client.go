package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrUnexpectedStatus = errors.New("unexpected engine status")

type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// Client talks to the engine sidecar over HTTP. Timeout bounds search and
// status calls; cache generation is bounded only by the caller's context.
type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

type searchResponse struct {
	Results []Hit `json:"results"`
}

type cacheStatusResponse struct {
	Exists bool `json:"exists"`
}

type generateCacheRequest struct {
	Credentials Credentials `json:"credentials"`
}

func (c *Client) Search(ctx context.Context, params SearchParams) ([]Hit, error) {
	if params.ResourcePackUUIDs == nil {
		params.ResourcePackUUIDs = []string{}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var response searchResponse
	if err := c.do(ctx, http.MethodPost, "/search", params, &response); err != nil {
		return nil, fmt.Errorf("engine search failed: %w", err)
	}

	return response.Results, nil
}

func (c *Client) HasCache(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var response cacheStatusResponse
	if err := c.do(ctx, http.MethodGet, "/cache", nil, &response); err != nil {
		return false, fmt.Errorf("engine cache status failed: %w", err)
	}

	return response.Exists, nil
}

// GenerateCache blocks until the engine has finished building its cache.
func (c *Client) GenerateCache(ctx context.Context, creds Credentials) error {
	if err := c.do(ctx, http.MethodPost, "/cache", generateCacheRequest{Credentials: creds}, nil); err != nil {
		return fmt.Errorf("engine cache generation failed: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode engine response: %w", err)
	}

	return nil
}
