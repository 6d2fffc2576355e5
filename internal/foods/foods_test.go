package foods

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/platform/logger"
	"github.com/SamratSK/better-bites/internal/store"
	"github.com/SamratSK/better-bites/internal/store/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	return st
}

func offStub(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/api/v2/product/737628064502.json":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{
                "status": 1,
                "product": {
                    "product_name": "Rice Noodles",
                    "brands": "Thai Kitchen",
                    "serving_size": "55 g",
                    "nutriments": {
                        "energy-kcal_100g": 385,
                        "proteins_100g": 7.1,
                        "carbohydrates_100g": 83.9,
                        "fat_100g": 1.8,
                        "sodium_100g": 0.6
                    }
                }
            }`)
		case "/api/v2/product/000.json":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"status": 0, "product": {}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOFFClientFetch(t *testing.T) {
	var hits atomic.Int64
	srv := offStub(t, &hits)
	c := NewOFFClient(srv.URL, logger.New("test"))

	p, err := c.Fetch(context.Background(), "737628064502")
	require.NoError(t, err)
	assert.Equal(t, "Rice Noodles", p.Name)
	require.NotNil(t, p.Brand)
	assert.Equal(t, "Thai Kitchen", *p.Brand)
	require.NotNil(t, p.Calories)
	assert.Equal(t, 385.0, *p.Calories)
	assert.Equal(t, 7.1, p.Macros["protein"])
	assert.Equal(t, 83.9, p.Macros["carbs"])
	assert.Equal(t, 0.6, p.Micros["sodium"])
	assert.Equal(t, "open_food_facts", p.Source)
}

func TestOFFClientNotFoundIsNotRetried(t *testing.T) {
	var hits atomic.Int64
	srv := offStub(t, &hits)
	c := NewOFFClient(srv.URL, logger.New("test"))

	_, err := c.Fetch(context.Background(), "000")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, int64(1), hits.Load())

	hits.Store(0)
	_, err = c.Fetch(context.Background(), "999")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, int64(1), hits.Load())
}

func TestServiceCachesWithinTTL(t *testing.T) {
	var hits atomic.Int64
	srv := offStub(t, &hits)
	st := newTestStore(t)
	svc := NewService(st, NewOFFClient(srv.URL, logger.New("test")), 24, logger.New("test"))

	ctx := context.Background()
	p, err := svc.Get(ctx, "737628064502")
	require.NoError(t, err)
	assert.Equal(t, "Rice Noodles", p.Name)
	assert.Equal(t, int64(1), hits.Load())

	// second read inside the window is served from the cache
	_, err = svc.Get(ctx, "737628064502")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestServiceRefetchesWhenStale(t *testing.T) {
	var hits atomic.Int64
	srv := offStub(t, &hits)
	st := newTestStore(t)
	svc := NewService(st, NewOFFClient(srv.URL, logger.New("test")), 24, logger.New("test"))

	ctx := context.Background()
	_, err := svc.Get(ctx, "737628064502")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	_, err = svc.Get(ctx, "737628064502")
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestServiceServesStaleOnUpstreamFailure(t *testing.T) {
	var hits atomic.Int64
	srv := offStub(t, &hits)
	st := newTestStore(t)
	svc := NewService(st, NewOFFClient(srv.URL, logger.New("test")), 24, logger.New("test"))

	ctx := context.Background()
	_, err := svc.Get(ctx, "737628064502")
	require.NoError(t, err)

	srv.Close()
	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	p, err := svc.Get(ctx, "737628064502")
	require.NoError(t, err)
	assert.Equal(t, "Rice Noodles", p.Name)
}

func TestServiceRefreshAndSearchAndBulk(t *testing.T) {
	var hits atomic.Int64
	srv := offStub(t, &hits)
	st := newTestStore(t)
	svc := NewService(st, NewOFFClient(srv.URL, logger.New("test")), 24, logger.New("test"))
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "737628064502")
	require.NoError(t, err)
	_, err = svc.Refresh(ctx, "737628064502")
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())

	got, err := svc.Search(ctx, "noodle", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rice Noodles", got[0].Name)

	_, err = svc.Search(ctx, "", 10)
	assert.ErrorIs(t, err, model.ErrValidation)

	n, err := svc.Bulk(ctx, []model.FoodProduct{
		{Barcode: "111", Name: "Oats", Macros: map[string]float64{"protein": 13}},
		{Barcode: "", Name: "skipped"},
		{Barcode: "222", Name: "Milk", Macros: map[string]float64{}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	oats, err := svc.Get(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 13.0, oats.Macros["protein"])
}
