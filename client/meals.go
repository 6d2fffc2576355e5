package client

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/client/internal/api"
	"github.com/SamratSK/better-bites/client/internal/daycache"
	"github.com/SamratSK/better-bites/client/internal/pulse"
	"github.com/SamratSK/better-bites/client/internal/types"
)

// MealStore caches per-day meal lists and tracks a mutation version.
type MealStore struct {
	cache *daycache.Store[types.Meal]
	api   *api.Caller
}

func newMealStore(a *api.Caller, logger zerolog.Logger) *MealStore {
	fetch := func(ctx context.Context, key daycache.Key) ([]types.Meal, error) {
		return a.ListMeals(ctx, key.UserID, key.Date)
	}
	return &MealStore{
		cache: daycache.New(fetch,
			func(m types.Meal) string { return m.ID },
			daycache.WithLogger[types.Meal](logger.With().Str("store", "meals").Logger()),
			daycache.WithInstrument[types.Meal](storeMetrics{store: "meals"})),
		api: a,
	}
}

// ListByDate returns the user's meals for date, newest first. Cached days are
// served locally unless force is set; failures fall back to the last cached
// list and never surface as errors.
func (s *MealStore) ListByDate(ctx context.Context, userID, date string, force bool) []types.Meal {
	return s.cache.ListByDate(ctx, daycache.Key{UserID: userID, Date: date}, force)
}

// Log records a meal. ok is false when the server rejected it, in which case
// cache and version are untouched.
func (s *MealStore) Log(ctx context.Context, userID string, req types.CreateMealRequest) (types.Meal, bool) {
	key := daycache.Key{UserID: userID, Date: req.LogDate}
	return s.cache.Insert(ctx, key, func(ctx context.Context) (types.Meal, error) {
		return s.api.CreateMeal(ctx, userID, req)
	})
}

// Delete removes a meal entry. The version bumps on server success even when
// the id was not in the local cache.
func (s *MealStore) Delete(ctx context.Context, userID, date, entryID string) bool {
	return s.cache.Remove(ctx, daycache.Key{UserID: userID, Date: date}, entryID, func(ctx context.Context) error {
		return s.api.DeleteMeal(ctx, userID, entryID)
	})
}

// Version returns the store's mutation counter.
func (s *MealStore) Version() uint64 { return s.cache.Version() }

// Changed exposes the store's change broadcaster.
func (s *MealStore) Changed() *pulse.Broadcaster { return s.cache.Changed() }
