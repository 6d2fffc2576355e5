package client

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/client/internal/api"
	"github.com/SamratSK/better-bites/client/internal/daycache"
	"github.com/SamratSK/better-bites/client/internal/pulse"
	"github.com/SamratSK/better-bites/client/internal/types"
)

// WaterStore caches per-day water entries. Unlike meals and activity, water
// rows carry a full timestamp, so the store derives each day's UTC window
// itself and queries the backend by range.
type WaterStore struct {
	cache *daycache.Store[types.Water]
	api   *api.Caller
}

func newWaterStore(a *api.Caller, logger zerolog.Logger) *WaterStore {
	fetch := func(ctx context.Context, key daycache.Key) ([]types.Water, error) {
		from, to := DayBounds(key.Date)
		return a.ListWater(ctx, key.UserID, from, to)
	}
	return &WaterStore{
		cache: daycache.New(fetch,
			func(w types.Water) string { return w.ID },
			daycache.WithLogger[types.Water](logger.With().Str("store", "water").Logger()),
			daycache.WithInstrument[types.Water](storeMetrics{store: "water"})),
		api: a,
	}
}

// DayBounds returns the half-open UTC window [dateT00:00:00Z, +24h) for a
// YYYY-MM-DD date. An absent or malformed date falls back to today's UTC
// midnight.
func DayBounds(date string) (from, to time.Time) {
	from, err := time.Parse(time.DateOnly, date)
	if err != nil {
		now := time.Now().UTC()
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return from, from.Add(24 * time.Hour)
}

// ListByDate returns the user's water entries logged within date's UTC
// window, newest first.
func (s *WaterStore) ListByDate(ctx context.Context, userID, date string, force bool) []types.Water {
	return s.cache.ListByDate(ctx, daycache.Key{UserID: userID, Date: date}, force)
}

// Log records a water entry under date's cache partition. A nil LoggedAt
// defaults to the start of that UTC day so the row lands in the window it was
// logged against.
func (s *WaterStore) Log(ctx context.Context, userID, date string, req types.CreateWaterRequest) (types.Water, bool) {
	if req.LoggedAt == nil {
		start, _ := DayBounds(date)
		req.LoggedAt = &start
	}
	key := daycache.Key{UserID: userID, Date: date}
	return s.cache.Insert(ctx, key, func(ctx context.Context) (types.Water, error) {
		return s.api.CreateWater(ctx, userID, req)
	})
}

// Delete removes a water entry and bumps the version on server success.
func (s *WaterStore) Delete(ctx context.Context, userID, date, entryID string) bool {
	return s.cache.Remove(ctx, daycache.Key{UserID: userID, Date: date}, entryID, func(ctx context.Context) error {
		return s.api.DeleteWater(ctx, userID, entryID)
	})
}

// Version returns the store's mutation counter.
func (s *WaterStore) Version() uint64 { return s.cache.Version() }

// Changed exposes the store's change broadcaster.
func (s *WaterStore) Changed() *pulse.Broadcaster { return s.cache.Changed() }
