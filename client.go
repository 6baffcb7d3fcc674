package ondilo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultHost is the Ondilo customer platform host.
	DefaultHost = "https://interop.ondilo.com"

	// apiPrefix is the versioned path prefix of the customer API.
	apiPrefix = "/api/customer/v1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// TokenUpdater is called every time the client obtains or refreshes a token.
// It can be used to persist tokens outside of a TokenStore.
type TokenUpdater func(*oauth2.Token)

// Client is an Ondilo customer API client. It holds the OAuth2 client
// identity, the current token, and performs the refresh-and-retry cycle
// on unauthorized responses.
//
// A Client is not safe for concurrent use from multiple goroutines.
type Client struct {
	host         string
	baseURL      string
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       []string

	httpClient   *http.Client
	logger       *slog.Logger
	tokenStore   TokenStore
	tokenUpdater TokenUpdater

	rateLimitCallback RateLimitCallback
	lastRateLimit     *RateLimitInfo
	rateLimitMu       sync.RWMutex

	token   *oauth2.Token
	tokenMu sync.RWMutex
}

// Option configures a Client.
type Option func(*Client)

// WithClientCredentials overrides the vendor-published default client
// identity.
func WithClientCredentials(clientID, clientSecret string) Option {
	return func(c *Client) {
		c.clientID = clientID
		c.clientSecret = clientSecret
	}
}

// WithRedirectURI sets the redirect URI for the authorization code flow.
// Required before AuthURL or RequestToken are called.
func WithRedirectURI(uri string) Option {
	return func(c *Client) {
		c.redirectURI = uri
	}
}

// WithScopes overrides the default OAuth scopes.
func WithScopes(scopes ...string) Option {
	return func(c *Client) {
		c.scopes = scopes
	}
}

// WithToken seeds the client with a previously obtained token, skipping
// the authorization flow.
func WithToken(token *oauth2.Token) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTokenStore sets a store used to persist tokens across process runs.
// A token already present in the store is loaded at construction.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.tokenStore = store
	}
}

// WithTokenUpdater sets a callback invoked on every token change.
func WithTokenUpdater(updater TokenUpdater) Option {
	return func(c *Client) {
		c.tokenUpdater = updater
	}
}

// WithHost points the client at a different platform host. Both the OAuth
// endpoints and the customer API move with it. Mostly useful for testing.
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = host
		c.baseURL = host + apiPrefix
	}
}

// WithBaseURL sets a custom base URL for the customer API only, leaving
// the OAuth endpoints on the configured host.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout.
// This option can be applied in any order relative to other options.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimitCallback sets a callback that is invoked when rate limit
// headers are received. This can be used for monitoring or preemptive
// throttling; the client itself never waits or retries on rate limits.
func WithRateLimitCallback(callback RateLimitCallback) Option {
	return func(c *Client) {
		c.rateLimitCallback = callback
	}
}

// NewClient creates a new Ondilo API client. With no options it uses the
// vendor-published customer credentials and is ready to begin the
// authorization code flow once a redirect URI is configured.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		host:         DefaultHost,
		baseURL:      DefaultHost + apiPrefix,
		clientID:     DefaultClientID,
		clientSecret: DefaultClientSecret,
		scopes:       []string{DefaultScope},
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				DisableKeepAlives:   false,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.clientID == "" {
		return nil, fmt.Errorf("ondilo: client ID cannot be empty")
	}

	// Restore a persisted token if the store has one and no token was
	// passed explicitly.
	if c.token == nil && c.tokenStore != nil {
		if tok, err := c.tokenStore.LoadToken(context.Background()); err == nil {
			c.token = tok
		}
	}

	return c, nil
}

// Token returns a copy of the current token, or nil if the client is
// unauthenticated.
func (c *Client) Token() *oauth2.Token {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()

	if c.token == nil {
		return nil
	}
	tok := *c.token
	return &tok
}

// SetToken replaces the current token and persists it to the token store,
// if one is configured.
func (c *Client) SetToken(ctx context.Context, token *oauth2.Token) error {
	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()

	if c.tokenUpdater != nil {
		c.tokenUpdater(token)
	}
	if c.tokenStore != nil {
		if err := c.tokenStore.SaveToken(ctx, token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
	}
	return nil
}

// setToken updates the token like SetToken but never fails the calling
// request over a persistence error; the error is logged instead.
func (c *Client) setToken(ctx context.Context, token *oauth2.Token) {
	if err := c.SetToken(ctx, token); err != nil && c.logger != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "token_persist_failed",
			slog.String("error", err.Error()),
		)
	}
}

// accessToken returns the current bearer token value, or "" if none.
func (c *Client) accessToken() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()

	if c.token == nil {
		return ""
	}
	return c.token.AccessToken
}

// Request performs an authenticated call against the customer API and
// returns the raw response body. On an unauthorized response it refreshes
// the token exactly once using the stored refresh token and retries the
// original request; a second unauthorized response surfaces an AuthError
// and the caller must rerun the authorization flow. Every endpoint method
// is a composition of Request with a fixed path and JSON decoding.
func (c *Client) Request(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.accessToken() == "" {
		return nil, ErrNoToken
	}

	data, err := c.do(ctx, method, path, body)
	if err == nil || !IsUnauthorized(err) {
		return data, err
	}

	if _, err := c.RefreshToken(ctx); err != nil {
		return nil, err
	}

	data, err = c.do(ctx, method, path, body)
	if err != nil && IsUnauthorized(err) {
		return nil, &AuthError{Op: "retry", Err: err}
	}
	return data, err
}

// do performs a single HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	c.logRequest(ctx, method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logResponse(ctx, method, path, 0, time.Since(start), err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.parseRateLimitHeaders(resp.Header)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode >= 400 {
		return nil, c.handleError(resp.StatusCode, resp.Header, respBody)
	}

	return respBody, nil
}

// handleError converts HTTP error responses to appropriate errors.
func (c *Client) handleError(statusCode int, header http.Header, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return &RateLimitError{
			RetryAfter: parseRetryAfter(header.Get("Retry-After")),
			Info:       c.RateLimitInfo(),
		}
	default:
		return &APIError{
			StatusCode: statusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}
}

// get performs an authenticated GET request.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

// put performs an authenticated PUT request.
func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Request(ctx, http.MethodPut, path, body)
}
