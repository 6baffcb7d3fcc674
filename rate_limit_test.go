package ondilo

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"empty", "", 0},
		{"seconds", "120", 120 * time.Second},
		{"zero seconds", "0", 0},
		{"negative", "-5", 0},
		{"garbage", "soon", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRetryAfter(tt.value); got != tt.want {
				t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	t.Run("HTTP date in the future", func(t *testing.T) {
		future := time.Now().Add(2 * time.Minute).UTC().Format(time.RFC1123)
		got := parseRetryAfter(future)
		if got <= 0 || got > 2*time.Minute {
			t.Errorf("parseRetryAfter(%q) = %v, want a positive duration up to 2m", future, got)
		}
	})
}

func TestRateLimitHeaders(t *testing.T) {
	t.Run("parsed and exposed", func(t *testing.T) {
		var observed *RateLimitInfo
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", "30")
			w.Header().Set("X-RateLimit-Remaining", "29")
			w.Header().Set("X-RateLimit-Reset", "1700000000")
			w.Write([]byte(`[]`))
		}))
		client.rateLimitCallback = func(info RateLimitInfo) { observed = &info }

		if _, err := client.ListPools(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info := client.RateLimitInfo()
		if info == nil {
			t.Fatal("RateLimitInfo() is nil")
		}
		if info.Limit != 30 || info.Remaining != 29 {
			t.Errorf("info = %+v, want limit=30 remaining=29", info)
		}
		if info.Reset != time.Unix(1700000000, 0) {
			t.Errorf("reset = %v", info.Reset)
		}
		if observed == nil || observed.Remaining != 29 {
			t.Errorf("callback got %+v, want remaining=29", observed)
		}
	})

	t.Run("no headers leaves info nil", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))

		if _, err := client.ListPools(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.RateLimitInfo() != nil {
			t.Error("RateLimitInfo() should be nil without headers")
		}
	})
}

func TestRateLimitError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.ListPools(context.Background())
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("error = %v, want rate-limited", err)
	}

	var rlErr *RateLimitError
	if !errors.As(err, &rlErr) {
		t.Fatalf("error = %v, want RateLimitError", err)
	}
	if rlErr.RetryAfter != 60*time.Second {
		t.Errorf("RetryAfter = %v, want 60s", rlErr.RetryAfter)
	}
	if rlErr.Info == nil || rlErr.Info.Remaining != 0 {
		t.Errorf("Info = %+v, want remaining=0", rlErr.Info)
	}
}
