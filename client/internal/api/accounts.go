package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SamratSK/better-bites/client/internal/types"
)

func (c *Caller) GetProfile(ctx context.Context, userID string) (types.Profile, error) {
	var out types.Profile
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/profile"), nil, &out)
	return out, err
}

func (c *Caller) PutProfile(ctx context.Context, userID string, p types.Profile) (types.Profile, error) {
	var out types.Profile
	err := c.Do(ctx, http.MethodPut, userPath(userID, "/profile"), p, &out)
	return out, err
}

func (c *Caller) GetGoals(ctx context.Context, userID string) (types.Goals, error) {
	var out types.Goals
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/goals"), nil, &out)
	return out, err
}

func (c *Caller) PutGoals(ctx context.Context, userID string, g types.Goals) (types.Goals, error) {
	var out types.Goals
	err := c.Do(ctx, http.MethodPut, userPath(userID, "/goals"), g, &out)
	return out, err
}

func (c *Caller) ListStreaks(ctx context.Context, userID string) ([]types.Streak, error) {
	var out []types.Streak
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/streaks"), nil, &out)
	return out, err
}

func (c *Caller) GetReport(ctx context.Context, userID string) (types.Report, error) {
	var out types.Report
	err := c.Do(ctx, http.MethodGet, userPath(userID, "/report"), nil, &out)
	return out, err
}

func (c *Caller) GetShare(ctx context.Context, userID string) (types.ReportShare, error) {
	var out types.ReportShare
	err := c.Do(ctx, http.MethodPost, userPath(userID, "/report/share"), nil, &out)
	return out, err
}

func (c *Caller) SetShareEnabled(ctx context.Context, userID string, enabled bool) (types.ReportShare, error) {
	var out types.ReportShare
	body := map[string]bool{"enabled": enabled}
	err := c.Do(ctx, http.MethodPatch, userPath(userID, "/report/share"), body, &out)
	return out, err
}

// GetPublicReport fetches a shared report by token. It needs no
// authentication but sending the bearer token is harmless.
func (c *Caller) GetPublicReport(ctx context.Context, shareToken string) (types.Report, error) {
	var out types.Report
	err := c.Do(ctx, http.MethodGet, "/api/reports/"+url.PathEscape(shareToken), nil, &out)
	return out, err
}

func (c *Caller) AdminOverview(ctx context.Context) (types.AdminOverview, error) {
	var out types.AdminOverview
	err := c.Do(ctx, http.MethodGet, "/api/admin/overview", nil, &out)
	return out, err
}

func (c *Caller) AdminFlagged(ctx context.Context, limit int) ([]types.FlaggedItem, error) {
	var out []types.FlaggedItem
	err := c.Do(ctx, http.MethodGet, "/api/admin/flagged?limit="+strconv.Itoa(limit), nil, &out)
	return out, err
}

func (c *Caller) AdminReport(ctx context.Context, targetUserID string) (types.Report, error) {
	var out types.Report
	body := map[string]string{"userId": targetUserID}
	err := c.Do(ctx, http.MethodPost, "/api/admin/report", body, &out)
	return out, err
}

func (c *Caller) AdminDeleteUser(ctx context.Context, targetUserID string) error {
	return c.Do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(targetUserID), nil, nil)
}

func (c *Caller) GetMotivation(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.Do(ctx, http.MethodGet, "/api/motivation", nil, &out)
	return out.Message, err
}

func (c *Caller) FlagItem(ctx context.Context, userID, itemType, reason string) (types.FlaggedItem, error) {
	body := map[string]string{"itemType": itemType, "reason": reason}
	var out types.FlaggedItem
	err := c.Do(ctx, http.MethodPost, userPath(userID, "/flags"), body, &out)
	return out, err
}
