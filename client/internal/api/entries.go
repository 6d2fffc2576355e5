package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/SamratSK/better-bites/client/internal/types"
)

// CreateMeal persists a meal and returns the canonical server row.
func (c *Caller) CreateMeal(ctx context.Context, userID string, req types.CreateMealRequest) (types.Meal, error) {
	var out types.Meal
	err := c.Do(ctx, http.MethodPost, userPath(userID, "/meals"), req, &out)
	return out, err
}

// ListMeals returns the meals logged on date, newest first.
func (c *Caller) ListMeals(ctx context.Context, userID, date string) ([]types.Meal, error) {
	var out []types.Meal
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/meals?date="+url.QueryEscape(date)), nil, &out)
	return out, err
}

func (c *Caller) DeleteMeal(ctx context.Context, userID, entryID string) error {
	return c.Do(ctx, http.MethodDelete, userPath(userID, "/meals/"+url.PathEscape(entryID)), nil, nil)
}

func (c *Caller) CreateWater(ctx context.Context, userID string, req types.CreateWaterRequest) (types.Water, error) {
	var out types.Water
	err := c.Do(ctx, http.MethodPost, userPath(userID, "/water"), req, &out)
	return out, err
}

// ListWater returns water entries with logged_at in the half-open interval
// [from, to). Bounds are sent explicitly so the caller controls the day
// anchoring.
func (c *Caller) ListWater(ctx context.Context, userID string, from, to time.Time) ([]types.Water, error) {
	q := url.Values{}
	q.Set("from", from.UTC().Format(time.RFC3339))
	q.Set("to", to.UTC().Format(time.RFC3339))
	var out []types.Water
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/water?"+q.Encode()), nil, &out)
	return out, err
}

func (c *Caller) DeleteWater(ctx context.Context, userID, entryID string) error {
	return c.Do(ctx, http.MethodDelete, userPath(userID, "/water/"+url.PathEscape(entryID)), nil, nil)
}

func (c *Caller) CreateActivity(ctx context.Context, userID string, req types.CreateActivityRequest) (types.Activity, error) {
	var out types.Activity
	err := c.Do(ctx, http.MethodPost, userPath(userID, "/activity"), req, &out)
	return out, err
}

func (c *Caller) ListActivities(ctx context.Context, userID, date string) ([]types.Activity, error) {
	var out []types.Activity
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/activity?date="+url.QueryEscape(date)), nil, &out)
	return out, err
}

func (c *Caller) DeleteActivity(ctx context.Context, userID, entryID string) error {
	return c.Do(ctx, http.MethodDelete, userPath(userID, "/activity/"+url.PathEscape(entryID)), nil, nil)
}

// GetSummary fetches the server-computed aggregate for one date.
func (c *Caller) GetSummary(ctx context.Context, userID, date string) (types.Summary, error) {
	var out types.Summary
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/summary?date="+url.QueryEscape(date)), nil, &out)
	return out, err
}
