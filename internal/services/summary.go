package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

// SummaryService computes per-day aggregates from the persisted logs. There
// is no stored summary row; every read recomputes.
type SummaryService struct {
	store store.Store
}

func NewSummaryService(st store.Store) *SummaryService {
	return &SummaryService{store: st}
}

func (s *SummaryService) Get(ctx context.Context, userID, date string) (*model.DailySummary, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", model.ErrValidation)
	}
	return s.store.Summaries().Get(ctx, userID, date)
}

// Range returns one summary per day in [start, end], inclusive, capped at 92
// days to bound the scan.
func (s *SummaryService) Range(ctx context.Context, userID, start, end string) ([]model.DailySummary, error) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("%w: start must be YYYY-MM-DD", model.ErrValidation)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("%w: end must be YYYY-MM-DD", model.ErrValidation)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end precedes start", model.ErrValidation)
	}
	if to.Sub(from) > 92*24*time.Hour {
		return nil, fmt.Errorf("%w: range exceeds 92 days", model.ErrValidation)
	}
	return s.store.Summaries().Range(ctx, userID, start, end)
}
