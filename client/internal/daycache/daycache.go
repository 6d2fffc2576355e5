// Package daycache implements the day-partitioned, versioned entry cache
// shared by the meal, water and activity stores.
//
// Each store caches per-day entry lists keyed by (user, date), bumps a
// monotonic version counter on every successful mutation and broadcasts the
// change. Reads never fail: a backend error falls back to the previous
// cached list or an empty one.
package daycache

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/client/internal/pulse"
)

// Key partitions the cache: one entry list per user per calendar date.
// Caching is never global and never per-user only.
type Key struct {
	UserID string
	Date   string
}

func (k Key) valid() bool { return k.UserID != "" && k.Date != "" }

// Fetcher loads the backend's entry list for one day, newest first.
type Fetcher[T any] func(ctx context.Context, key Key) ([]T, error)

// Instrument receives cache events. Implementations must be cheap.
type Instrument interface {
	Hit()
	Miss()
	Failure()
}

type nopInstrument struct{}

func (nopInstrument) Hit()     {}
func (nopInstrument) Miss()    {}
func (nopInstrument) Failure() {}

// Store is the generic day-partitioned cache for one entity type.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[Key][]T
	gen     map[Key]uint64
	version uint64

	fetch   Fetcher[T]
	idOf    func(T) string
	changed *pulse.Broadcaster
	logger  zerolog.Logger
	inst    Instrument
}

// Option configures a Store during construction.
type Option[T any] func(*Store[T])

func WithLogger[T any](l zerolog.Logger) Option[T] {
	return func(s *Store[T]) { s.logger = l }
}

func WithInstrument[T any](i Instrument) Option[T] {
	return func(s *Store[T]) { s.inst = i }
}

// New builds a store over a backend fetcher and an id extractor.
func New[T any](fetch Fetcher[T], idOf func(T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		entries: map[Key][]T{},
		gen:     map[Key]uint64{},
		fetch:   fetch,
		idOf:    idOf,
		changed: pulse.NewBroadcaster(),
		inst:    nopInstrument{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Version returns the mutation counter. It starts at 0 and increases by
// exactly 1 per successful create or delete.
func (s *Store[T]) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Changed exposes the store's change broadcaster.
func (s *Store[T]) Changed() *pulse.Broadcaster { return s.changed }

// Snapshot returns a copy of the cached list for key without touching the
// backend. ok is false when the day was never loaded.
func (s *Store[T]) Snapshot(key Key) ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cached, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return append([]T(nil), cached...), true
}

// ListByDate returns the entry list for key. Without force, a cached day is
// served locally. A backend failure logs and falls back to the previous
// cached list, or an empty one; the call never returns an error.
//
// Each fetch takes a per-key generation token; a completion that lost to a
// newer fetch for the same key does not overwrite the fresher result.
func (s *Store[T]) ListByDate(ctx context.Context, key Key, force bool) []T {
	if !key.valid() {
		s.logger.Warn().Str("user_id", key.UserID).Str("date", key.Date).Msg("list skipped, incomplete day key")
		return []T{}
	}

	s.mu.Lock()
	if cached, ok := s.entries[key]; ok && !force {
		out := append([]T(nil), cached...)
		s.mu.Unlock()
		s.inst.Hit()
		return out
	}
	s.gen[key]++
	token := s.gen[key]
	s.mu.Unlock()
	s.inst.Miss()

	rows, err := s.fetch(ctx, key)
	if rows == nil {
		rows = []T{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.inst.Failure()
		s.logger.Warn().Err(err).Str("user_id", key.UserID).Str("date", key.Date).Msg("list fetch failed, serving cached")
		if cached, ok := s.entries[key]; ok {
			return append([]T(nil), cached...)
		}
		return []T{}
	}
	if s.gen[key] != token {
		// a newer fetch for this key already completed
		if cached, ok := s.entries[key]; ok {
			return append([]T(nil), cached...)
		}
		return []T{}
	}
	s.entries[key] = rows
	return append([]T(nil), rows...)
}

// Insert persists a new entry through create and, on success, prepends the
// returned canonical row to key's cached list and bumps the version. A
// failed create leaves cache and version untouched and reports ok=false.
func (s *Store[T]) Insert(ctx context.Context, key Key, create func(ctx context.Context) (T, error)) (T, bool) {
	var zero T
	if !key.valid() {
		s.logger.Warn().Msg("insert skipped, incomplete day key")
		return zero, false
	}
	entry, err := create(ctx)
	if err != nil {
		s.inst.Failure()
		s.logger.Warn().Err(err).Str("user_id", key.UserID).Str("date", key.Date).Msg("insert failed")
		return zero, false
	}

	s.mu.Lock()
	s.entries[key] = append([]T{entry}, s.entries[key]...)
	s.version++
	s.mu.Unlock()
	s.changed.Publish()
	return entry, true
}

// Remove deletes an entry through del and, on success, drops id from key's
// cached list and bumps the version. The version bump happens on backend
// success even when id was not cached under key: the backend row set may
// have changed in ways the local cache cannot see, so dependents re-fetch.
func (s *Store[T]) Remove(ctx context.Context, key Key, id string, del func(ctx context.Context) error) bool {
	if err := del(ctx); err != nil {
		s.inst.Failure()
		s.logger.Warn().Err(err).Str("entry_id", id).Msg("delete failed")
		return false
	}

	s.mu.Lock()
	if cached, ok := s.entries[key]; ok {
		kept := cached[:0:0]
		for _, e := range cached {
			if s.idOf(e) != id {
				kept = append(kept, e)
			}
		}
		s.entries[key] = kept
	}
	s.version++
	s.mu.Unlock()
	s.changed.Publish()
	return true
}
