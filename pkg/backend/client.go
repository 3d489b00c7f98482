// Package backend is the HTTP client for the companion backend API that
// owns points, short links, wallets and characters.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/internal/metrics"
	"github.com/fineai/miniapp-gateway/pkg/points"
)

const (
	defaultHTTPTimeout = 10 * time.Second

	// Limit error-body reads so we don't slurp huge responses.
	maxErrBodyBytes = 4096
)

// ErrNotFound is returned when the backend answers 404.
var ErrNotFound = errors.New("backend resource not found")

// StatusError is a non-2xx backend response.
type StatusError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend %s returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("backend %s returned status %d: %s", e.Operation, e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client calls the companion backend on behalf of a Telegram user.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
}

// NewClient creates a backend client. httpClient may be nil.
func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// GetUserPoints fetches the points record of a user.
func (c *Client) GetUserPoints(ctx context.Context, telegramID int64) (*points.UserPoints, error) {
	var out points.UserPoints
	if err := c.do(ctx, "get_user_points", http.MethodGet, "/api/user/points", telegramID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimFreePoints credits the free points balance and returns the updated record.
func (c *Client) ClaimFreePoints(ctx context.Context, telegramID int64) (*points.UserPoints, error) {
	var out points.UserPoints
	if err := c.do(ctx, "claim_free_points", http.MethodPost, "/api/user/points/claim-free", telegramID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveShortURL returns the in-app path a short link id points to.
func (c *Client) ResolveShortURL(ctx context.Context, telegramID int64, id string) (string, error) {
	var out ShortURL
	if err := c.do(ctx, "resolve_short_url", http.MethodGet, "/api/short-url/"+url.PathEscape(id), telegramID, &out); err != nil {
		return "", err
	}
	return out.Path, nil
}

// GetCharacterListBrief lists the characters the user talked to.
func (c *Client) GetCharacterListBrief(ctx context.Context, telegramID int64) ([]CharacterBrief, error) {
	var out []CharacterBrief
	if err := c.do(ctx, "get_character_list_brief", http.MethodGet, "/api/characters/brief", telegramID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAddresses returns the user's wallet addresses.
func (c *Client) GetAddresses(ctx context.Context, telegramID int64) (*Addresses, error) {
	var out Addresses
	if err := c.do(ctx, "get_addresses", http.MethodGet, "/api/wallet/address", telegramID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTokenInfo returns the app token description.
func (c *Client) GetTokenInfo(ctx context.Context, telegramID int64) (*TokenInfo, error) {
	var out TokenInfo
	if err := c.do(ctx, "get_token_info", http.MethodGet, "/api/token/info", telegramID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, telegramID int64, out any) error {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.BackendRequestDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
	}()

	token, err := c.tokens.Token(telegramID)
	if err != nil {
		return fmt.Errorf("failed to mint backend token: %w", err)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Telegram-User-Id", strconv.FormatInt(telegramID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		serr := &StatusError{Operation: op, StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			serr.Message = eb.Error
			if serr.Message == "" {
				serr.Message = eb.Message
			}
		}
		if serr.Message == "" {
			serr.Message = strings.TrimSpace(string(body))
		}
		c.logger.Debug("Backend returned error status",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", serr.Message))
		return serr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend %s response: %w", op, err)
	}
	return nil
}
