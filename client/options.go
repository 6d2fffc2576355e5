package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option mutates the Client during construction.
type Option func(*Client) error

// WithHTTPTimeout overrides the default 30s request timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be positive, got %v", d)
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client. The bearer token
// transport is still installed on top of it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = h
		return nil
	}
}

// WithLogger attaches a logger; the SDK is silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithDebugLogging wraps the transport so every request and response is
// logged. Also enabled by the BETTER_BITES_DEBUG environment variable.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.http.Transport = &debugTransport{base: base}
		return nil
	}
}
