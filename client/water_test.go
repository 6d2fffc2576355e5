package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamratSK/better-bites/client/internal/types"
)

func TestDayBoundsAreUTC(t *testing.T) {
	from, to := DayBounds("2024-03-10")
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), to)
	assert.Equal(t, time.UTC, from.Location())
}

func TestDayBoundsFallBackToToday(t *testing.T) {
	for _, bad := range []string{"", "not-a-date", "2024-13-40"} {
		from, to := DayBounds(bad)
		now := time.Now().UTC()
		want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, from, "input %q", bad)
		assert.Equal(t, want.Add(24*time.Hour), to, "input %q", bad)
	}
}

func TestWaterListSendsUTCWindow(t *testing.T) {
	var gotFrom, gotTo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "dev:u1")
	out := c.Water().ListByDate(context.Background(), "u1", "2024-03-10", false)
	require.Empty(t, out)
	assert.Equal(t, "2024-03-10T00:00:00Z", gotFrom)
	assert.Equal(t, "2024-03-11T00:00:00Z", gotTo)
}

func TestWaterLogDefaultsTimestampToDayStart(t *testing.T) {
	var got types.CreateWaterRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.Water{ID: "w-1", UserID: "u1", VolumeMl: got.VolumeMl, LoggedAt: *got.LoggedAt})
	}))
	defer srv.Close()

	c := New(srv.URL, "dev:u1")
	entry, ok := c.Water().Log(context.Background(), "u1", "2024-03-10", types.CreateWaterRequest{VolumeMl: 250})
	require.True(t, ok)
	assert.Equal(t, "w-1", entry.ID)
	require.NotNil(t, got.LoggedAt)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got.LoggedAt.UTC())
	assert.Equal(t, uint64(1), c.Water().Version())
}
