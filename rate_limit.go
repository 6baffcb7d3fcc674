package ondilo

import (
	"net/http"
	"strconv"
	"time"
)

// RateLimitInfo contains rate limit information from API response headers.
// The customer API enforces both per-second and per-hour quotas.
type RateLimitInfo struct {
	Limit     int       // Maximum requests allowed in the window
	Remaining int       // Requests remaining in current window
	Reset     time.Time // When the rate limit window resets
}

// RateLimitCallback is called when rate limit headers are received.
// Can be used for monitoring or preemptive throttling.
type RateLimitCallback func(RateLimitInfo)

// RateLimitError provides detailed information about a rate limit response.
// It includes the recommended wait time from the Retry-After header if
// available. The client never retries rate-limited requests itself.
type RateLimitError struct {
	// RetryAfter is the recommended wait duration from the Retry-After header.
	// Zero if the header was not present.
	RetryAfter time.Duration

	// Info contains the rate limit headers from the response.
	Info *RateLimitInfo
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return "ondilo: rate limited (retry after " + e.RetryAfter.String() + ")"
	}
	return "ondilo: rate limited"
}

// Is allows errors.Is() to match ErrRateLimited.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// parseRetryAfter parses the Retry-After header value.
// It handles both delta-seconds (e.g., "120") and HTTP-date formats.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	// Try parsing as seconds first (most common)
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 1123)
	if t, err := time.Parse(time.RFC1123, value); err == nil {
		delta := time.Until(t)
		if delta > 0 {
			return delta
		}
	}

	return 0
}

// parseRateLimitHeaders extracts rate limit information from response headers.
func (c *Client) parseRateLimitHeaders(header http.Header) {
	limit := header.Get("X-RateLimit-Limit")
	remaining := header.Get("X-RateLimit-Remaining")
	reset := header.Get("X-RateLimit-Reset")

	// Only process if at least one header is present
	if limit == "" && remaining == "" && reset == "" {
		return
	}

	info := RateLimitInfo{}

	if limit != "" {
		if v, err := strconv.Atoi(limit); err == nil {
			info.Limit = v
		}
	}

	if remaining != "" {
		if v, err := strconv.Atoi(remaining); err == nil {
			info.Remaining = v
		}
	}

	if reset != "" {
		if v, err := strconv.ParseInt(reset, 10, 64); err == nil {
			info.Reset = time.Unix(v, 0)
		}
	}

	c.rateLimitMu.Lock()
	c.lastRateLimit = &info
	c.rateLimitMu.Unlock()

	if c.rateLimitCallback != nil {
		c.rateLimitCallback(info)
	}
}

// RateLimitInfo returns the most recent rate limit information from API
// responses. Returns nil if no rate limit headers have been received yet.
func (c *Client) RateLimitInfo() *RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	if c.lastRateLimit == nil {
		return nil
	}
	// Return a copy to prevent race conditions
	info := *c.lastRateLimit
	return &info
}
