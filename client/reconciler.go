package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/client/internal/api"
	"github.com/SamratSK/better-bites/client/internal/pulse"
	"github.com/SamratSK/better-bites/client/internal/types"
)

// versioned is the slice of an entry store the reconciler depends on.
type versioned interface {
	Version() uint64
	Changed() *pulse.Broadcaster
}

// summaryKey identifies one reconciliation input state. Two recomputes with
// the same key are the same work; the second is skipped.
type summaryKey struct {
	userID    string
	date      string
	mealV     uint64
	waterV    uint64
	activityV uint64
}

// SummaryReconciler keeps the daily summary for one (user, date) pair in
// step with the three entry stores. It subscribes to their change
// broadcasters and refetches the server aggregate only when a store's
// version actually moved, so a burst of notifications for the same state
// costs one fetch.
type SummaryReconciler struct {
	mu      sync.Mutex
	api     *api.Caller
	logger  zerolog.Logger
	meals   versioned
	water   versioned
	act     versioned
	changed *pulse.Broadcaster
	cancels []func()

	userID  string
	date    string
	lastKey summaryKey
	applied bool
	seq     uint64
	latest  *types.Summary
}

func newSummaryReconciler(a *api.Caller, logger zerolog.Logger, meals, water, act versioned, userID, date string) *SummaryReconciler {
	r := &SummaryReconciler{
		api:     a,
		logger:  logger.With().Str("component", "summary_reconciler").Logger(),
		meals:   meals,
		water:   water,
		act:     act,
		changed: pulse.NewBroadcaster(),
		userID:  userID,
		date:    date,
	}
	for _, src := range []versioned{meals, water, act} {
		r.cancels = append(r.cancels, src.Changed().Subscribe(func() {
			r.Recompute(context.Background())
		}))
	}
	r.Recompute(context.Background())
	return r
}

// SetUser switches the reconciled user. An empty id signs out: the last
// summary stays visible and fetching stops until a user is set again.
func (r *SummaryReconciler) SetUser(ctx context.Context, userID string) {
	r.mu.Lock()
	r.userID = userID
	r.mu.Unlock()
	r.Recompute(ctx)
}

// SetDate switches the reconciled date.
func (r *SummaryReconciler) SetDate(ctx context.Context, date string) {
	r.mu.Lock()
	r.date = date
	r.mu.Unlock()
	r.Recompute(ctx)
}

// Recompute refetches the summary if the input state moved since the last
// applied key. The key is recorded before the fetch; a failed fetch keeps
// the previous summary and is not retried until the state moves again.
//
// Each fetch takes a completion token; a result that lost to a newer
// recompute is discarded instead of overwriting the fresher summary.
func (r *SummaryReconciler) Recompute(ctx context.Context) {
	r.mu.Lock()
	if r.userID == "" || r.date == "" {
		r.mu.Unlock()
		return
	}
	key := summaryKey{
		userID:    r.userID,
		date:      r.date,
		mealV:     r.meals.Version(),
		waterV:    r.water.Version(),
		activityV: r.act.Version(),
	}
	if r.applied && key == r.lastKey {
		r.mu.Unlock()
		return
	}
	r.lastKey = key
	r.applied = true
	r.seq++
	token := r.seq
	r.mu.Unlock()

	sum, err := r.api.GetSummary(ctx, key.userID, key.date)
	if err != nil {
		r.logger.Warn().Err(err).Str("user_id", key.userID).Str("date", key.date).Msg("summary fetch failed, keeping previous")
		return
	}

	r.mu.Lock()
	if r.seq != token {
		// a newer recompute already ran
		r.mu.Unlock()
		return
	}
	r.latest = &sum
	r.mu.Unlock()
	r.changed.Publish()
}

// Latest returns the most recent successfully fetched summary, nil before
// the first success.
func (r *SummaryReconciler) Latest() *types.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}

// Changed exposes the reconciler's own broadcaster; it fires once per
// applied summary.
func (r *SummaryReconciler) Changed() *pulse.Broadcaster { return r.changed }

// Close unsubscribes from the entry stores.
func (r *SummaryReconciler) Close() {
	for _, cancel := range r.cancels {
		cancel()
	}
	r.cancels = nil
}
