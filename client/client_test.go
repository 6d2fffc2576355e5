package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamratSK/better-bites/client/internal/types"
)

func TestNewPanicsOnMissingArgs(t *testing.T) {
	assert.Panics(t, func() { New("", "tok") })
	assert.Panics(t, func() { New("http://localhost", "") })
}

func TestBearerTokenAttachedToEveryRequest(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "dev:u1")
	_ = c.Meals().ListByDate(context.Background(), "u1", "2024-03-10", false)
	assert.Equal(t, "Bearer dev:u1", got)
}

func TestMealStoreLifecycle(t *testing.T) {
	var lists int
	entries := []types.Meal{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			lists++
			_ = json.NewEncoder(w).Encode(entries)
		case http.MethodPost:
			var req types.CreateMealRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			m := types.Meal{ID: "m-1", UserID: "u1", LogDate: req.LogDate, MealType: req.MealType, Calories: req.Calories}
			entries = append([]types.Meal{m}, entries...)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(m)
		case http.MethodDelete:
			entries = entries[:0]
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "dev:u1")
	ctx := context.Background()
	meals := c.Meals()
	require.Equal(t, uint64(0), meals.Version())

	require.Empty(t, meals.ListByDate(ctx, "u1", "2024-03-10", false))
	require.Empty(t, meals.ListByDate(ctx, "u1", "2024-03-10", false))
	assert.Equal(t, 1, lists, "second read must come from cache")

	created, ok := meals.Log(ctx, "u1", types.CreateMealRequest{LogDate: "2024-03-10", MealType: "lunch", Calories: 600})
	require.True(t, ok)
	assert.Equal(t, "m-1", created.ID)
	assert.Equal(t, uint64(1), meals.Version())

	cached := meals.ListByDate(ctx, "u1", "2024-03-10", false)
	require.Len(t, cached, 1)
	assert.Equal(t, 1, lists, "insert must update the cache in place")

	require.True(t, meals.Delete(ctx, "u1", "2024-03-10", "m-1"))
	assert.Equal(t, uint64(2), meals.Version())
	assert.Empty(t, meals.ListByDate(ctx, "u1", "2024-03-10", false))
	assert.Equal(t, 1, lists)

	forced := meals.ListByDate(ctx, "u1", "2024-03-10", true)
	assert.Empty(t, forced)
	assert.Equal(t, 2, lists)
}

func TestAdminViewFallsBackToCachedValue(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, `{"error":"down"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"counts":{"totalUsers":3,"memberCount":2,"adminCount":1},"users":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "dev:root:admin")
	ctx := context.Background()

	first, ok := c.Admin().Overview(ctx, false)
	require.True(t, ok)
	assert.Equal(t, 3, first.Counts.TotalUsers)

	fail = true
	second, ok := c.Admin().Overview(ctx, true)
	require.True(t, ok, "failed refetch serves the previous value")
	assert.Equal(t, first, second)
}
