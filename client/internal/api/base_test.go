package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkerrors "github.com/SamratSK/better-bites/client/internal/errors"
	"github.com/SamratSK/better-bites/client/internal/types"
)

func newTestCaller(handler http.HandlerFunc) (*Caller, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Caller{HTTP: srv.Client(), BaseURL: srv.URL}, srv
}

func TestDoMapsStatusCodes(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, sdkerrors.ErrInvalidRequest},
		{http.StatusUnauthorized, sdkerrors.ErrUnauthorized},
		{http.StatusForbidden, sdkerrors.ErrForbidden},
		{http.StatusNotFound, sdkerrors.ErrNotFound},
	}
	for _, tc := range cases {
		c, srv := newTestCaller(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"nope"}`, tc.status)
		})
		_, err := c.GetProfile(context.Background(), "u1")
		srv.Close()
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: got %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestDoDecodesBody(t *testing.T) {
	c, srv := newTestCaller(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/u1/profile" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":"u1","displayName":"Sam"}`))
	})
	defer srv.Close()

	p, err := c.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.DisplayName != "Sam" {
		t.Fatalf("got display name %q", p.DisplayName)
	}
}

func TestDoSkipsDecodeOnNoContent(t *testing.T) {
	c, srv := newTestCaller(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	if err := c.DeleteMeal(context.Background(), "u1", "m-1"); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}
}

func TestDoHonorsCancelledContext(t *testing.T) {
	called := false
	c, srv := newTestCaller(func(w http.ResponseWriter, r *http.Request) { called = true })
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.CreateMeal(ctx, "u1", types.CreateMealRequest{LogDate: "2024-03-10", MealType: "lunch"})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if called {
		t.Fatal("request must not reach the server")
	}
}
