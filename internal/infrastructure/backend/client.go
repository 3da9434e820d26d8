// Package backend is the agent's client for the hosted LedgerPOS functions.
package backend

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

	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

const (
	adminPath        = "/functions/v1/admin"
	syncPath         = "/functions/v1/sync"
	subscriptionPath = "/functions/v1/subscription"
	healthPath       = "/healthz"

	// maxResponseSize caps every response body read from the backend.
	maxResponseSize = 1 << 20
)

var (
	ErrNotConfigured = errors.New("backend base url is not configured")
	ErrNotFound      = errors.New("backend resource not found")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	ProbeTimeout time.Duration
}

type Client struct {
	baseURL      string
	apiKey       string
	probeTimeout time.Duration
	httpClient   *http.Client
	logger       logger.Interface
}

func NewClient(cfg Config, log logger.Interface) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		probeTimeout: probeTimeout,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       log,
	}
}

// Configured reports whether a backend URL was set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Reachable probes the backend health endpoint. An unconfigured backend is
// never reachable.
func (c *Client) Reachable(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugw("backend probe failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	return resp.StatusCode < http.StatusInternalServerError
}

// do sends body as JSON and decodes a 2xx response into out. bearer, when
// set, replaces the API key.
func (c *Client) do(ctx context.Context, method, path, bearer string, body, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case bearer != "":
		req.Header.Set("Authorization", "Bearer "+bearer)
	case c.apiKey != "":
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
