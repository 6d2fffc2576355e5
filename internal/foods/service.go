package foods

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

// Fetcher is the upstream product source. Satisfied by OFFClient.
type Fetcher interface {
	Fetch(ctx context.Context, barcode string) (*model.FoodProduct, error)
}

// Service serves products cache-first. Cached products older than the
// staleness window are refetched; if the refetch fails the stale copy is
// served rather than an error.
type Service struct {
	store   store.Store
	fetcher Fetcher
	ttl     time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

func NewService(st store.Store, fetcher Fetcher, ttlHours int, logger zerolog.Logger) *Service {
	return &Service{
		store:   st,
		fetcher: fetcher,
		ttl:     time.Duration(ttlHours) * time.Hour,
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns the product for barcode, fetching from upstream on a cache
// miss or when the cached copy is stale.
func (s *Service) Get(ctx context.Context, barcode string) (*model.FoodProduct, error) {
	cached, err := s.store.Foods().GetByBarcode(ctx, barcode)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	if cached != nil && !cached.IsStale(s.ttl, s.now().UTC()) {
		return cached, nil
	}

	fresh, err := s.fetcher.Fetch(ctx, barcode)
	if err != nil {
		if cached != nil {
			s.logger.Warn().Err(err).Str("barcode", barcode).Msg("refresh failed, serving stale product")
			return cached, nil
		}
		return nil, err
	}
	return s.store.Foods().Upsert(ctx, fresh)
}

// Refresh bypasses the staleness window and refetches unconditionally.
func (s *Service) Refresh(ctx context.Context, barcode string) (*model.FoodProduct, error) {
	fresh, err := s.fetcher.Fetch(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return s.store.Foods().Upsert(ctx, fresh)
}

// Search queries the cache only; it never goes upstream.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]model.FoodProduct, error) {
	if query == "" {
		return nil, model.ErrValidation
	}
	return s.store.Foods().Search(ctx, query, limit)
}

// Bulk upserts externally sourced products, skipping invalid rows.
func (s *Service) Bulk(ctx context.Context, products []model.FoodProduct) (int, error) {
	var n int
	for i := range products {
		p := products[i]
		if p.Barcode == "" || p.Name == "" {
			continue
		}
		if _, err := s.store.Foods().Upsert(ctx, &p); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
