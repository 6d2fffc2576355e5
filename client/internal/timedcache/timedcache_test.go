package timedcache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFreshnessWindow(t *testing.T) {
	base := time.Unix(1700000000, 0)
	now := base
	fetches := 0
	c := New(func(context.Context) (int, error) {
		fetches++
		return fetches, nil
	}, WithClock[int](func() time.Time { return now }))

	ctx := context.Background()

	v, err := c.Get(ctx, false)
	if err != nil || v != 1 {
		t.Fatalf("first get: %d, %v", v, err)
	}

	// one millisecond inside the window: no new fetch
	now = base.Add(29999 * time.Millisecond)
	v, _ = c.Get(ctx, false)
	if v != 1 || fetches != 1 {
		t.Fatalf("read at 29999ms refetched: v=%d fetches=%d", v, fetches)
	}

	// just past the window: a fresh fetch
	now = base.Add(30001 * time.Millisecond)
	v, _ = c.Get(ctx, false)
	if v != 2 || fetches != 2 {
		t.Fatalf("read at 30001ms served stale: v=%d fetches=%d", v, fetches)
	}
}

func TestForceBypassesWindow(t *testing.T) {
	fetches := 0
	c := New(func(context.Context) (int, error) {
		fetches++
		return fetches, nil
	})
	ctx := context.Background()

	_, _ = c.Get(ctx, false)
	v, _ := c.Get(ctx, true)
	if v != 2 || fetches != 2 {
		t.Fatalf("force did not refetch: v=%d fetches=%d", v, fetches)
	}
}

func TestFailedFetchKeepsPreviousValue(t *testing.T) {
	fail := false
	c := New(func(context.Context) (string, error) {
		if fail {
			return "", errors.New("backend down")
		}
		return "ok", nil
	})
	ctx := context.Background()

	if _, err := c.Get(ctx, false); err != nil {
		t.Fatal(err)
	}

	fail = true
	if _, err := c.Get(ctx, true); err == nil {
		t.Fatal("expected error")
	}
	v, ok := c.Cached()
	if !ok || v != "ok" {
		t.Fatalf("previous value lost: %q %v", v, ok)
	}
}

func TestEmptyCacheAlwaysFetches(t *testing.T) {
	fetches := 0
	c := New(func(context.Context) (int, error) {
		fetches++
		return 0, errors.New("down")
	})
	ctx := context.Background()

	_, _ = c.Get(ctx, false)
	_, _ = c.Get(ctx, false)
	if fetches != 2 {
		t.Fatalf("failed fetch was cached: %d", fetches)
	}
}
