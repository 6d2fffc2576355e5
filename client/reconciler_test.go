package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamratSK/better-bites/client/internal/api"
	"github.com/SamratSK/better-bites/client/internal/pulse"
)

// fakeSource stands in for an entry store: a version counter and a
// broadcaster that can be bumped independently.
type fakeSource struct {
	mu sync.Mutex
	v  uint64
	b  *pulse.Broadcaster
}

func newFakeSource() *fakeSource { return &fakeSource{b: pulse.NewBroadcaster()} }

func (f *fakeSource) Version() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v
}

func (f *fakeSource) Changed() *pulse.Broadcaster { return f.b }

func (f *fakeSource) bump() {
	f.mu.Lock()
	f.v++
	f.mu.Unlock()
	f.b.Publish()
}

// notifyOnly publishes without moving the version, like a change event for
// state the reconciler already applied.
func (f *fakeSource) notifyOnly() { f.b.Publish() }

type reconcilerFixture struct {
	meals, water, act *fakeSource
	fetches           int
	fail              bool
	srv               *httptest.Server
	rec               *SummaryReconciler
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()
	fx := &reconcilerFixture{meals: newFakeSource(), water: newFakeSource(), act: newFakeSource()}
	fx.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fx.fetches++
		if fx.fail {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":"u1","logDate":"2024-03-10","caloriesConsumed":420}`))
	}))
	t.Cleanup(fx.srv.Close)

	caller := &api.Caller{HTTP: fx.srv.Client(), BaseURL: fx.srv.URL}
	fx.rec = newSummaryReconciler(caller, zerolog.Nop(), fx.meals, fx.water, fx.act, "u1", "2024-03-10")
	t.Cleanup(fx.rec.Close)
	return fx
}

func TestReconcilerFetchesOncePerInputState(t *testing.T) {
	fx := newReconcilerFixture(t)
	require.Equal(t, 1, fx.fetches)
	require.NotNil(t, fx.rec.Latest())
	assert.Equal(t, 420.0, fx.rec.Latest().CaloriesConsumed)

	fx.rec.Recompute(context.Background())
	fx.rec.Recompute(context.Background())
	fx.meals.notifyOnly()
	assert.Equal(t, 1, fx.fetches, "same input state must not refetch")
}

func TestReconcilerFetchesPerVersionComponent(t *testing.T) {
	fx := newReconcilerFixture(t)
	require.Equal(t, 1, fx.fetches)

	fx.meals.bump()
	assert.Equal(t, 2, fx.fetches)
	fx.water.bump()
	assert.Equal(t, 3, fx.fetches)
	fx.act.bump()
	assert.Equal(t, 4, fx.fetches)

	fx.act.notifyOnly()
	assert.Equal(t, 4, fx.fetches)
}

func TestReconcilerSignedOutRetainsLastSummary(t *testing.T) {
	fx := newReconcilerFixture(t)
	require.NotNil(t, fx.rec.Latest())

	fx.rec.SetUser(context.Background(), "")
	fx.meals.bump()
	fx.water.bump()
	assert.Equal(t, 1, fx.fetches, "signed-out reconciler must not fetch")
	assert.NotNil(t, fx.rec.Latest(), "last summary stays visible after sign-out")

	fx.rec.SetUser(context.Background(), "u1")
	assert.Equal(t, 2, fx.fetches)
}

func TestReconcilerFailedFetchKeepsPreviousAndWaitsForChange(t *testing.T) {
	fx := newReconcilerFixture(t)
	require.Equal(t, 1, fx.fetches)
	before := fx.rec.Latest()
	require.NotNil(t, before)

	fx.fail = true
	fx.meals.bump()
	assert.Equal(t, 2, fx.fetches)
	assert.Equal(t, before, fx.rec.Latest())

	// the failed state was applied; only new input triggers another try
	fx.rec.Recompute(context.Background())
	assert.Equal(t, 2, fx.fetches)

	fx.fail = false
	fx.water.bump()
	assert.Equal(t, 3, fx.fetches)
}

func TestReconcilerSupersededFetchDoesNotOverwriteNewer(t *testing.T) {
	meals := newFakeSource()
	water := newFakeSource()
	act := newFakeSource()

	var (
		mu      sync.Mutex
		fetches int
		rec     *SummaryReconciler
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		fetches++
		n := fetches
		mu.Unlock()
		calories := `420`
		if n == 2 {
			// trigger a newer recompute while the first fetch is in flight,
			// then answer the first fetch with the older aggregate
			meals.bump()
			calories = `100`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":"u1","logDate":"2024-03-10","caloriesConsumed":` + calories + `}`))
	}))
	defer srv.Close()

	caller := &api.Caller{HTTP: srv.Client(), BaseURL: srv.URL}
	rec = newSummaryReconciler(caller, zerolog.Nop(), meals, water, act, "u1", "2024-03-10")
	defer rec.Close()

	act.bump()

	mu.Lock()
	assert.Equal(t, 3, fetches)
	mu.Unlock()
	require.NotNil(t, rec.Latest())
	assert.Equal(t, 420.0, rec.Latest().CaloriesConsumed, "superseded fetch must not overwrite the newer summary")
}

func TestReconcilerPublishesPerAppliedSummary(t *testing.T) {
	fx := newReconcilerFixture(t)
	var notified int
	cancel := fx.rec.Changed().Subscribe(func() { notified++ })
	defer cancel()

	fx.meals.bump()
	assert.Equal(t, 1, notified)

	fx.fail = true
	fx.water.bump()
	assert.Equal(t, 1, notified, "failed fetch must not publish")
}
