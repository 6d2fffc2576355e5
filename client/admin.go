package client

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/client/internal/api"
	"github.com/SamratSK/better-bites/client/internal/timedcache"
	"github.com/SamratSK/better-bites/client/internal/types"
)

// adminFlagLimit caps the flagged-item feed the dashboard shows.
const adminFlagLimit = 50

// AdminView serves the admin dashboard aggregates from timed caches. Values
// are reused for the cache TTL and refetched after it lapses; a failed
// refetch keeps serving the previous value.
type AdminView struct {
	overview *timedcache.Cache[types.AdminOverview]
	flagged  *timedcache.Cache[[]types.FlaggedItem]
	logger   zerolog.Logger
}

func newAdminView(a *api.Caller, logger zerolog.Logger) *AdminView {
	return &AdminView{
		overview: timedcache.New(func(ctx context.Context) (types.AdminOverview, error) {
			return a.AdminOverview(ctx)
		}),
		flagged: timedcache.New(func(ctx context.Context) ([]types.FlaggedItem, error) {
			return a.AdminFlagged(ctx, adminFlagLimit)
		}),
		logger: logger.With().Str("component", "admin_view").Logger(),
	}
}

// Overview returns the user counts and activity totals. ok is false only
// when the fetch failed and no earlier value exists.
func (v *AdminView) Overview(ctx context.Context, force bool) (types.AdminOverview, bool) {
	out, err := v.overview.Get(ctx, force)
	if err == nil {
		return out, true
	}
	v.logger.Warn().Err(err).Msg("overview fetch failed")
	return v.overview.Cached()
}

// Flagged returns the recent flagged items, empty when nothing was ever
// fetched successfully.
func (v *AdminView) Flagged(ctx context.Context, force bool) []types.FlaggedItem {
	out, err := v.flagged.Get(ctx, force)
	if err == nil {
		return out
	}
	v.logger.Warn().Err(err).Msg("flagged fetch failed")
	cached, ok := v.flagged.Cached()
	if !ok {
		return []types.FlaggedItem{}
	}
	return cached
}
