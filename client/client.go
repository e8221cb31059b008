package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/alphahuman-xyz/alphahuman-go/models"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second

	ingestPath = "api/v1/memory/ingest"
	readPath   = "api/v1/memory/read"
	deletePath = "api/v1/memory/delete"
	pingPath   = "api/v1/ping"
)

// Config describes how to reach the Alphahuman Memory API. Token is the
// only required field; BaseURL falls back to the staging endpoint.
type Config struct {
	Token      string
	BaseURL    string
	SkipVerify bool
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Client is the API client for the Alphahuman Memory service. Credentials
// are captured at construction and never leave the client; the struct is
// immutable after NewClient and safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
	logger     *slog.Logger
}

// NewClient creates a new memory API client. No network I/O is performed.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: token cannot be empty", ErrValidation)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clientLogger := logger.WithGroup("alphahuman_client")

	baseURLStr := cfg.BaseURL
	if baseURLStr == "" {
		baseURLStr = DefaultBaseURL
	}
	baseURL, err := url.Parse(baseURLStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL '%s': %w", baseURLStr, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: base URL '%s' must include scheme and host", ErrValidation, baseURLStr)
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.SkipVerify,
		},
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	clientLogger.Debug("alphahuman client initialized", "base_url", baseURL.String(), "tls_skip_verify", cfg.SkipVerify)

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		token:      cfg.Token,
		logger:     clientLogger,
	}, nil
}

// BaseURL returns the resolved endpoint the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// internal request helper. Performs exactly one logical request; redirects
// are followed manually so the method and body survive them, but failures
// are never retried.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, target interface{}) error {
	currentReqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reqBodyBytes []byte
	var err error
	if body != nil {
		reqBodyBytes, err = json.Marshal(body)
		if err != nil {
			c.logger.Error("failed to marshal request body", "path", path, "method", method, "error", err)
			return fmt.Errorf("failed to marshal request body for %s %s: %w", method, path, err)
		}
	}

	requestID := uuid.NewString()

	for redirects := 0; redirects < 10; redirects++ {
		req, err := http.NewRequestWithContext(ctx, method, currentReqURL.String(), bytes.NewReader(reqBodyBytes))
		if err != nil {
			return fmt.Errorf("failed to create request %s %s: %w", method, currentReqURL.String(), err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("X-Request-Id", requestID)

		c.logger.Debug("sending request", "method", method, "url", currentReqURL.String(), "request_id", requestID)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error("http request failed", "method", method, "url", currentReqURL.String(), "error", err)
			return fmt.Errorf("http request %s %s failed: %w", method, currentReqURL.String(), err)
		}

		switch resp.StatusCode {
		case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
			http.StatusTemporaryRedirect, http.StatusPermanentRedirect:

			loc := resp.Header.Get("Location")
			resp.Body.Close()
			if loc == "" {
				return fmt.Errorf("redirect (status %d) missing Location header from %s", resp.StatusCode, currentReqURL.String())
			}
			redirectURL, err := currentReqURL.Parse(loc)
			if err != nil {
				return fmt.Errorf("failed to parse redirect Location '%s': %w", loc, err)
			}
			c.logger.Debug("request redirected", "from_url", currentReqURL.String(), "to_url", redirectURL.String(), "status_code", resp.StatusCode)
			currentReqURL = redirectURL
			continue
		}

		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.logger.Warn("received non-2xx status code", "method", method, "url", currentReqURL.String(), "status_code", resp.StatusCode)
			return c.translateErrorResponse(resp)
		}

		if target != nil {
			if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
				return fmt.Errorf("failed to decode response body for %s %s (status %d): %w", method, currentReqURL.String(), resp.StatusCode, err)
			}
		}
		c.logger.Debug("request successful", "method", method, "url", currentReqURL.String(), "status_code", resp.StatusCode)
		return nil
	}

	return fmt.Errorf("stopped after 10 redirects, last URL: %s", currentReqURL.String())
}

// translateErrorResponse maps a non-2xx response to the client's error
// kinds. The body is best-effort JSON; anything unrecognized becomes an
// *APIError carrying the status code.
func (c *Client) translateErrorResponse(resp *http.Response) error {
	var errorResp ErrorResponse
	if bodyBytes, readErr := io.ReadAll(resp.Body); readErr == nil {
		_ = json.Unmarshal(bodyBytes, &errorResp)
	}

	if resp.StatusCode == http.StatusUnauthorized ||
		errorResp.ErrorType == "API_KEY_NOT_FOUND" || errorResp.ErrorType == "API_KEY_INVALID" {
		if errorResp.Message != "" {
			return fmt.Errorf("%w: %s", ErrAPIKeyInvalid, errorResp.Message)
		}
		return ErrAPIKeyInvalid
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := time.Duration(errorResp.RetryAfterSeconds * float64(time.Second))
		return &ErrRateLimited{
			Message:    errorResp.Message,
			RetryAfter: retryAfter,
			Limit:      errorResp.Limit,
			Burst:      errorResp.Burst,
		}
	}

	if errorResp.ErrorType == "KEY_NOT_FOUND" {
		if errorResp.Message != "" {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, errorResp.Message)
		}
		return ErrKeyNotFound
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		ErrorType:  errorResp.ErrorType,
		Message:    errorResp.Message,
	}
}

// --- Memory Operations ---

// IngestMemory upserts a batch of memory items in a single call and
// returns the server's acknowledgement unchanged.
func (c *Client) IngestMemory(ctx context.Context, items []models.MemoryItem) (*models.IngestResponse, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items cannot be empty", ErrValidation)
	}
	for i, item := range items {
		if item.Key == "" {
			return nil, fmt.Errorf("%w: item %d has an empty key", ErrValidation, i)
		}
		if item.Content == "" {
			return nil, fmt.Errorf("%w: item %q has no content", ErrValidation, item.Key)
		}
	}

	payload := models.IngestRequest{Items: items}
	var response models.IngestResponse
	if err := c.doRequest(ctx, http.MethodPost, ingestPath, payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ReadMemory retrieves items matching the request filters. Items come back
// in whatever order the server reports; the client does not reorder or
// paginate. At least one of Key, Keys, or Namespace must be set.
func (c *Client) ReadMemory(ctx context.Context, req models.ReadRequest) (*models.ReadResponse, error) {
	if req.Key == "" && len(req.Keys) == 0 && req.Namespace == "" {
		return nil, fmt.Errorf("%w: at least one of key, keys, or namespace must be provided", ErrValidation)
	}

	var response models.ReadResponse
	if err := c.doRequest(ctx, http.MethodPost, readPath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteMemory removes items matching the request selector. One of Key,
// Keys, or DeleteAll is required; a bare Namespace is rejected so an
// ambiguous request cannot wipe a namespace by accident.
func (c *Client) DeleteMemory(ctx context.Context, req models.DeleteRequest) (*models.DeleteResponse, error) {
	if req.Key == "" && len(req.Keys) == 0 && !req.DeleteAll {
		return nil, fmt.Errorf("%w: provide key, keys, or delete_all", ErrValidation)
	}

	var response models.DeleteResponse
	if err := c.doRequest(ctx, http.MethodPost, deletePath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Ping sends an authenticated health check and returns the server's status
// map.
func (c *Client) Ping(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	if err := c.doRequest(ctx, http.MethodGet, pingPath, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}
