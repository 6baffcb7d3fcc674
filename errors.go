package ondilo

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Ondilo client.
// All errors are defined here for easy discovery and consistent organization.
var (
	// Authentication errors
	ErrUnauthorized       = errors.New("ondilo: unauthorized (invalid or expired token)")
	ErrNoToken            = errors.New("ondilo: no token available, run the authorization flow first")
	ErrNoRefreshToken     = errors.New("ondilo: token has no refresh token")
	ErrMissingRedirectURI = errors.New("ondilo: redirect URI is required for the authorization flow")
	ErrMissingCode        = errors.New("ondilo: authorization response contains no code")

	// Resource errors
	ErrNotFound = errors.New("ondilo: resource not found")

	// Rate limiting
	ErrRateLimited = errors.New("ondilo: rate limited (too many requests)")

	// Validation errors
	ErrInvalidPoolID           = errors.New("ondilo: pool ID must be positive")
	ErrInvalidRecommendationID = errors.New("ondilo: recommendation ID must be positive")
	ErrEmptyMeasureType        = errors.New("ondilo: measure type cannot be empty")
	ErrEmptyPeriod             = errors.New("ondilo: period cannot be empty")
)

// APIError represents a non-success response from the Ondilo API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("ondilo: API error %d: %s", e.StatusCode, e.Message)
}

// AuthError represents a failure of the OAuth2 flow itself: a rejected
// code-for-token exchange, a rejected refresh, or a request that stayed
// unauthorized after one refresh-and-retry cycle. The caller must restart
// the authorization code flow.
type AuthError struct {
	// Op is the lifecycle step that failed: "exchange", "refresh" or "retry".
	Op  string
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("ondilo: authentication failed during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error { return e.Err }

// IsAuthError returns true if the error means the authorization flow must be rerun.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsUnauthorized returns true if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsNotFound returns true if the error indicates the resource was not found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsTimeout returns true if the error indicates a timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
