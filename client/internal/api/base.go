// Package api contains the raw HTTP wrappers the SDK stores are built on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	sdkerrors "github.com/SamratSK/better-bites/client/internal/errors"
)

// Caller issues JSON requests against the tracker service. Authentication is
// handled by the http.Client's transport.
type Caller struct {
	HTTP    *http.Client
	BaseURL string
}

// Do sends method path with an optional JSON body and decodes the response
// into out when out is non-nil. Non-2xx statuses map to the SDK error
// taxonomy.
func (c *Caller) Do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var rd *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewBuffer(b)
	} else {
		rd = &bytes.Buffer{}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return sdkerrors.FromStatus(resp.StatusCode)
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func userPath(userID, suffix string) string {
	return "/api/users/" + url.PathEscape(userID) + suffix
}
