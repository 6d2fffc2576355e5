package services

import (
	"context"
	"errors"
	"time"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

const (
	StreakOverall = "overall"
	StreakWater   = "water"
	StreakWorkout = "workout"
)

// StreakService maintains the consecutive-day counters. A day "meets" a
// streak when the relevant goal target is reached; days without a goal set
// count whenever anything was logged.
type StreakService struct {
	store store.Store
}

func NewStreakService(st store.Store) *StreakService {
	return &StreakService{store: st}
}

func (s *StreakService) List(ctx context.Context, userID string) ([]model.Streak, error) {
	return s.store.Streaks().List(ctx, userID)
}

// Refresh re-evaluates all streak types for userID on logDate against the
// day's aggregate and the user's goals.
func (s *StreakService) Refresh(ctx context.Context, userID, logDate string) error {
	sum, err := s.store.Summaries().Get(ctx, userID, logDate)
	if err != nil {
		return err
	}
	goals, err := s.store.Goals().Get(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}

	met := map[string]bool{
		StreakWater:   metTarget(sum.WaterMl, goalOf(goals, func(g *model.DailyGoals) *int { return g.WaterMlTarget })),
		StreakWorkout: sum.ActiveMinutes > 0 || metTarget(sum.Steps, goalOf(goals, func(g *model.DailyGoals) *int { return g.StepsTarget })),
	}
	met[StreakOverall] = met[StreakWater] || met[StreakWorkout] ||
		metTarget(sum.CaloriesConsumed, goalOf(goals, func(g *model.DailyGoals) *int { return g.CaloriesTarget }))

	existing, err := s.store.Streaks().List(ctx, userID)
	if err != nil {
		return err
	}
	byType := make(map[string]model.Streak, len(existing))
	for _, st := range existing {
		byType[st.StreakType] = st
	}

	for _, typ := range []string{StreakOverall, StreakWater, StreakWorkout} {
		if !met[typ] {
			continue
		}
		st := byType[typ]
		st.UserID = userID
		st.StreakType = typ
		if st.LastMetDate == logDate {
			continue
		}
		if st.LastMetDate == previousDay(logDate) {
			st.CurrentStreak++
		} else {
			st.CurrentStreak = 1
		}
		if st.CurrentStreak > st.BestStreak {
			st.BestStreak = st.CurrentStreak
		}
		st.LastMetDate = logDate
		if _, err := s.store.Streaks().Upsert(ctx, &st); err != nil {
			return err
		}
	}
	return nil
}

// metTarget treats a missing target as met as soon as anything was logged.
func metTarget(value float64, target *int) bool {
	if target == nil {
		return value > 0
	}
	return value >= float64(*target)
}

func goalOf(g *model.DailyGoals, pick func(*model.DailyGoals) *int) *int {
	if g == nil {
		return nil
	}
	return pick(g)
}

func previousDay(logDate string) string {
	d, err := time.Parse("2006-01-02", logDate)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format("2006-01-02")
}
