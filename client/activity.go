package client

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/client/internal/api"
	"github.com/SamratSK/better-bites/client/internal/daycache"
	"github.com/SamratSK/better-bites/client/internal/pulse"
	"github.com/SamratSK/better-bites/client/internal/types"
)

// ActivityStore caches per-day workout entries and tracks a mutation version.
type ActivityStore struct {
	cache *daycache.Store[types.Activity]
	api   *api.Caller
}

func newActivityStore(a *api.Caller, logger zerolog.Logger) *ActivityStore {
	fetch := func(ctx context.Context, key daycache.Key) ([]types.Activity, error) {
		return a.ListActivities(ctx, key.UserID, key.Date)
	}
	return &ActivityStore{
		cache: daycache.New(fetch,
			func(a types.Activity) string { return a.ID },
			daycache.WithLogger[types.Activity](logger.With().Str("store", "activity").Logger()),
			daycache.WithInstrument[types.Activity](storeMetrics{store: "activity"})),
		api: a,
	}
}

// ListByDate returns the user's activities for date, newest first.
func (s *ActivityStore) ListByDate(ctx context.Context, userID, date string, force bool) []types.Activity {
	return s.cache.ListByDate(ctx, daycache.Key{UserID: userID, Date: date}, force)
}

// Log records an activity entry.
func (s *ActivityStore) Log(ctx context.Context, userID string, req types.CreateActivityRequest) (types.Activity, bool) {
	key := daycache.Key{UserID: userID, Date: req.LogDate}
	return s.cache.Insert(ctx, key, func(ctx context.Context) (types.Activity, error) {
		return s.api.CreateActivity(ctx, userID, req)
	})
}

// Delete removes an activity entry and bumps the version on server success.
func (s *ActivityStore) Delete(ctx context.Context, userID, date, entryID string) bool {
	return s.cache.Remove(ctx, daycache.Key{UserID: userID, Date: date}, entryID, func(ctx context.Context) error {
		return s.api.DeleteActivity(ctx, userID, entryID)
	})
}

// Version returns the store's mutation counter.
func (s *ActivityStore) Version() uint64 { return s.cache.Version() }

// Changed exposes the store's change broadcaster.
func (s *ActivityStore) Changed() *pulse.Broadcaster { return s.cache.Changed() }
