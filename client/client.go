// Package client is the Go SDK for the tracker service. It wraps the HTTP
// API with day-partitioned entry caches for meals, water and activity, a
// timed cache for admin aggregates and a reconciler that keeps derived
// summaries fresh without redundant fetches.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/client/internal/api"
	"github.com/SamratSK/better-bites/client/internal/types"
)

// Client is the SDK entry point. Construct one per process and share it; all
// stores hang off it.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	api     *api.Caller
	logger  zerolog.Logger

	meals    *MealStore
	water    *WaterStore
	activity *ActivityStore
	admin    *AdminView
}

// New constructs a Client for baseURL authenticating with the given bearer
// token.
func New(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if token == "" {
		panic("token cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  zerolog.Nop(),
	}

	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	c.wrapTransportWithToken()

	c.api = &api.Caller{HTTP: c.http, BaseURL: c.baseURL}
	c.meals = newMealStore(c.api, c.logger)
	c.water = newWaterStore(c.api, c.logger)
	c.activity = newActivityStore(c.api, c.logger)
	c.admin = newAdminView(c.api, c.logger)
	return c
}

// wrapTransportWithToken installs the Authorization header on every request.
func (c *Client) wrapTransportWithToken() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{base: base, token: c.token}
}

type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// Meals returns the cached meal store.
func (c *Client) Meals() *MealStore { return c.meals }

// Water returns the cached water store.
func (c *Client) Water() *WaterStore { return c.water }

// Activity returns the cached activity store.
func (c *Client) Activity() *ActivityStore { return c.activity }

// Admin returns the timed-cache view over the admin aggregates.
func (c *Client) Admin() *AdminView { return c.admin }

// NewSummaryReconciler builds a reconciler over this client's three entry
// stores for the given user and date.
func (c *Client) NewSummaryReconciler(userID, date string) *SummaryReconciler {
	return newSummaryReconciler(c.api, c.logger, c.meals, c.water, c.activity, userID, date)
}

// Profile fetches the user's profile.
func (c *Client) Profile(ctx context.Context, userID string) (types.Profile, error) {
	return c.api.GetProfile(ctx, userID)
}

// SaveProfile creates or updates the profile.
func (c *Client) SaveProfile(ctx context.Context, userID string, p types.Profile) (types.Profile, error) {
	return c.api.PutProfile(ctx, userID, p)
}

// Goals fetches the user's daily targets.
func (c *Client) Goals(ctx context.Context, userID string) (types.Goals, error) {
	return c.api.GetGoals(ctx, userID)
}

// SaveGoals creates or updates the daily targets.
func (c *Client) SaveGoals(ctx context.Context, userID string, g types.Goals) (types.Goals, error) {
	return c.api.PutGoals(ctx, userID, g)
}

// Streaks lists the user's streak counters.
func (c *Client) Streaks(ctx context.Context, userID string) ([]types.Streak, error) {
	return c.api.ListStreaks(ctx, userID)
}

// Summary fetches the server-computed aggregate for one date without any
// client-side caching. Cached consumers go through the reconciler.
func (c *Client) Summary(ctx context.Context, userID, date string) (types.Summary, error) {
	return c.api.GetSummary(ctx, userID, date)
}

// Report assembles the user's shareable report.
func (c *Client) Report(ctx context.Context, userID string) (types.Report, error) {
	return c.api.GetReport(ctx, userID)
}

// Share returns the user's share record, creating a disabled one on first
// use.
func (c *Client) Share(ctx context.Context, userID string) (types.ReportShare, error) {
	return c.api.GetShare(ctx, userID)
}

// SetShareEnabled toggles public access to the report.
func (c *Client) SetShareEnabled(ctx context.Context, userID string, enabled bool) (types.ReportShare, error) {
	return c.api.SetShareEnabled(ctx, userID, enabled)
}

// PublicReport fetches a shared report by token.
func (c *Client) PublicReport(ctx context.Context, shareToken string) (types.Report, error) {
	return c.api.GetPublicReport(ctx, shareToken)
}

// Motivation fetches one random motivational message.
func (c *Client) Motivation(ctx context.Context) (string, error) {
	return c.api.GetMotivation(ctx)
}

// FlagItem files a content report for the admin moderation queue.
func (c *Client) FlagItem(ctx context.Context, userID, itemType, reason string) (types.FlaggedItem, error) {
	return c.api.FlagItem(ctx, userID, itemType, reason)
}

// AdminDeleteUser removes a member account and all of its data.
func (c *Client) AdminDeleteUser(ctx context.Context, targetUserID string) error {
	return c.api.AdminDeleteUser(ctx, targetUserID)
}

// AdminReport builds a report for any user. Admin role required.
func (c *Client) AdminReport(ctx context.Context, targetUserID string) (types.Report, error) {
	return c.api.AdminReport(ctx, targetUserID)
}
