package ondilo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

const (
	// DefaultClientID and DefaultClientSecret are the vendor-published
	// credentials of the shared customer API application. Override them
	// with WithClientCredentials when using a dedicated application.
	DefaultClientID     = "customer_api"
	DefaultClientSecret = ""

	// DefaultScope is the only scope the customer API exposes.
	DefaultScope = "api"

	// OAuth endpoint paths, relative to the platform host.
	authorizePath = "/oauth2/authorize"
	tokenPath     = "/oauth2/token"
)

// oauthConfig assembles the OAuth2 configuration for the configured host
// and client identity. The customer API expects client credentials in the
// request parameters rather than a Basic auth header.
func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  c.redirectURI,
		Scopes:       c.scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.host + authorizePath,
			TokenURL:  c.host + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// oauthContext routes the oauth2 package's token requests through the
// client's HTTP client.
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// AuthURL returns the URL the user must visit to authorize the client.
// The optional state parameter is echoed back on the redirect and should
// be verified by the caller; pass "" to omit it. The URL embeds the
// configured client ID and redirect URI; building it has no side effects.
func (c *Client) AuthURL(state string) (string, error) {
	if c.redirectURI == "" {
		return "", ErrMissingRedirectURI
	}
	return c.oauthConfig().AuthCodeURL(state), nil
}

// RequestToken exchanges an authorization response for a token and stores
// it on the client. It accepts either the full redirect URL received from
// the authorization server or a bare authorization code. A rejected
// exchange (invalid or expired code, mismatched redirect URI) surfaces
// an AuthError.
func (c *Client) RequestToken(ctx context.Context, authorizationResponse string) (*oauth2.Token, error) {
	if c.redirectURI == "" {
		return nil, ErrMissingRedirectURI
	}

	code, err := parseAuthorizationResponse(authorizationResponse)
	if err != nil {
		return nil, err
	}

	tok, err := c.oauthConfig().Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, &AuthError{Op: "exchange", Err: err}
	}

	c.setToken(ctx, tok)
	return tok, nil
}

// RefreshToken refreshes the access token using the stored refresh token,
// stores the new token on the client and returns it. A missing or
// rejected refresh token surfaces an AuthError.
func (c *Client) RefreshToken(ctx context.Context) (*oauth2.Token, error) {
	cur := c.Token()
	if cur == nil {
		return nil, &AuthError{Op: "refresh", Err: ErrNoToken}
	}
	if cur.RefreshToken == "" {
		return nil, &AuthError{Op: "refresh", Err: ErrNoRefreshToken}
	}

	// Seed the token source with only the refresh token so it performs a
	// refresh round trip even if the recorded expiry has not passed. The
	// API signals expiry with a 401, which may precede local bookkeeping.
	seed := &oauth2.Token{RefreshToken: cur.RefreshToken}
	tok, err := c.oauthConfig().TokenSource(c.oauthContext(ctx), seed).Token()
	if err != nil {
		return nil, &AuthError{Op: "refresh", Err: err}
	}

	c.setToken(ctx, tok)
	return tok, nil
}

// parseAuthorizationResponse extracts the authorization code from a full
// redirect URL, or passes a bare code through unchanged.
func parseAuthorizationResponse(response string) (string, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return "", ErrMissingCode
	}

	if !strings.Contains(response, "://") {
		// Bare authorization code.
		return response, nil
	}

	u, err := url.Parse(response)
	if err != nil {
		return "", fmt.Errorf("failed to parse authorization response: %w", err)
	}

	q := u.Query()
	if errCode := q.Get("error"); errCode != "" {
		desc := q.Get("error_description")
		if desc == "" {
			desc = errCode
		} else {
			desc = errCode + ": " + desc
		}
		return "", &AuthError{Op: "exchange", Err: fmt.Errorf("authorization denied: %s", desc)}
	}

	code := q.Get("code")
	if code == "" {
		return "", ErrMissingCode
	}
	return code, nil
}
