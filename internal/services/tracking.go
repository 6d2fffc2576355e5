// Package services holds the thin domain layer between HTTP handlers and the
// store.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

var mealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true,
}

// TrackingService persists meal, water and activity logs and refreshes
// streaks after each successful write.
type TrackingService struct {
	store   store.Store
	streaks *StreakService
}

func NewTrackingService(st store.Store, streaks *StreakService) *TrackingService {
	return &TrackingService{store: st, streaks: streaks}
}

func (s *TrackingService) CreateMeal(ctx context.Context, in *model.MealEntry) (*model.MealEntry, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", in.LogDate); err != nil {
		return nil, fmt.Errorf("%w: logDate must be YYYY-MM-DD", model.ErrValidation)
	}
	if !mealTypes[in.MealType] {
		return nil, fmt.Errorf("%w: unknown mealType %q", model.ErrValidation, in.MealType)
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return nil, fmt.Errorf("%w: nutrition values must be non-negative", model.ErrValidation)
	}
	out, err := s.store.Meals().Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.refreshStreaks(ctx, out.UserID, out.LogDate)
	return out, nil
}

func (s *TrackingService) ListMeals(ctx context.Context, userID, logDate string) ([]model.MealEntry, error) {
	if _, err := time.Parse("2006-01-02", logDate); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", model.ErrValidation)
	}
	return s.store.Meals().ListByDate(ctx, userID, logDate)
}

func (s *TrackingService) DeleteMeal(ctx context.Context, entryID string) error {
	return s.store.Meals().Delete(ctx, entryID)
}

func (s *TrackingService) CreateWater(ctx context.Context, in *model.WaterEntry) (*model.WaterEntry, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if in.VolumeMl <= 0 {
		return nil, fmt.Errorf("%w: volumeMl must be positive", model.ErrValidation)
	}
	out, err := s.store.Water().Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.refreshStreaks(ctx, out.UserID, out.LoggedAt.UTC().Format("2006-01-02"))
	return out, nil
}

// ListWater returns entries whose logged_at falls inside the UTC day of
// date, i.e. [date T00:00:00Z, date+1d).
func (s *TrackingService) ListWater(ctx context.Context, userID, date string) ([]model.WaterEntry, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", model.ErrValidation)
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return s.store.Water().ListByRange(ctx, userID, from, from.Add(24*time.Hour))
}

// ListWaterRange returns entries with logged_at in the half-open interval
// [from, to). Callers that derive their own day bounds use this instead of
// ListWater.
func (s *TrackingService) ListWaterRange(ctx context.Context, userID string, from, to time.Time) ([]model.WaterEntry, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: to must be after from", model.ErrValidation)
	}
	return s.store.Water().ListByRange(ctx, userID, from, to)
}

func (s *TrackingService) DeleteWater(ctx context.Context, entryID string) error {
	return s.store.Water().Delete(ctx, entryID)
}

func (s *TrackingService) CreateActivity(ctx context.Context, in *model.ActivityEntry) (*model.ActivityEntry, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", in.LogDate); err != nil {
		return nil, fmt.Errorf("%w: logDate must be YYYY-MM-DD", model.ErrValidation)
	}
	if in.ActivityType == "" {
		return nil, fmt.Errorf("%w: activityType is required", model.ErrValidation)
	}
	if in.DurationMin < 0 || in.CaloriesBurned < 0 || in.Steps < 0 {
		return nil, fmt.Errorf("%w: activity values must be non-negative", model.ErrValidation)
	}
	out, err := s.store.Activities().Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.refreshStreaks(ctx, out.UserID, out.LogDate)
	return out, nil
}

func (s *TrackingService) ListActivities(ctx context.Context, userID, logDate string) ([]model.ActivityEntry, error) {
	if _, err := time.Parse("2006-01-02", logDate); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", model.ErrValidation)
	}
	return s.store.Activities().ListByDate(ctx, userID, logDate)
}

func (s *TrackingService) DeleteActivity(ctx context.Context, entryID string) error {
	return s.store.Activities().Delete(ctx, entryID)
}

// refreshStreaks is best-effort: a streak bookkeeping failure must not fail
// the write that triggered it.
func (s *TrackingService) refreshStreaks(ctx context.Context, userID, logDate string) {
	if err := s.streaks.Refresh(ctx, userID, logDate); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Str("log_date", logDate).Msg("streak refresh failed")
	}
}
