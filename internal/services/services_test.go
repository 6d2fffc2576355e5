package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamratSK/better-bites/internal/auth"
	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
	"github.com/SamratSK/better-bites/internal/store/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	return st
}

func seedProfile(t *testing.T, st store.Store, userID, role string) {
	t.Helper()
	_, err := st.Profiles().Upsert(context.Background(), &model.Profile{UserID: userID, DisplayName: userID, Role: role})
	require.NoError(t, err)
}

func intp(v int) *int { return &v }

func TestTrackingValidation(t *testing.T) {
	st := newTestStore(t)
	svc := NewTrackingService(st, NewStreakService(st))
	ctx := context.Background()

	_, err := svc.CreateMeal(ctx, &model.MealEntry{UserID: "u1", LogDate: "not-a-date", MealType: "lunch"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.CreateMeal(ctx, &model.MealEntry{UserID: "u1", LogDate: "2025-03-10", MealType: "elevenses"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.CreateWater(ctx, &model.WaterEntry{UserID: "u1", VolumeMl: 0})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.CreateActivity(ctx, &model.ActivityEntry{UserID: "u1", LogDate: "2025-03-10"})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestTrackingRoundTrip(t *testing.T) {
	st := newTestStore(t)
	svc := NewTrackingService(st, NewStreakService(st))
	ctx := context.Background()

	meal, err := svc.CreateMeal(ctx, &model.MealEntry{
		UserID: "u1", LogDate: "2025-03-10", MealType: "lunch",
		Description: "salad", Calories: 420, Protein: 18,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, meal.ID)

	meals, err := svc.ListMeals(ctx, "u1", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "salad", meals[0].Description)

	require.NoError(t, svc.DeleteMeal(ctx, meal.ID))
	// deleting an unknown id is a no-op
	require.NoError(t, svc.DeleteMeal(ctx, "missing"))

	meals, err = svc.ListMeals(ctx, "u1", "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestListWaterUsesUTCDayBounds(t *testing.T) {
	st := newTestStore(t)
	svc := NewTrackingService(st, NewStreakService(st))
	ctx := context.Background()

	mk := func(ts time.Time) {
		_, err := st.Water().Create(ctx, &model.WaterEntry{UserID: "u1", VolumeMl: 250, LoggedAt: ts})
		require.NoError(t, err)
	}
	mk(time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC))
	mk(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	mk(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC))
	mk(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))

	got, err := svc.ListWater(ctx, "u1", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStreakRefresh(t *testing.T) {
	st := newTestStore(t)
	streaks := NewStreakService(st)
	ctx := context.Background()

	_, err := st.Goals().Upsert(ctx, &model.DailyGoals{UserID: "u1", WaterMlTarget: intp(500)})
	require.NoError(t, err)

	logWater := func(day string, ml float64) {
		ts, perr := time.Parse("2006-01-02", day)
		require.NoError(t, perr)
		_, werr := st.Water().Create(ctx, &model.WaterEntry{UserID: "u1", VolumeMl: ml, LoggedAt: ts.Add(10 * time.Hour)})
		require.NoError(t, werr)
		require.NoError(t, streaks.Refresh(ctx, "u1", day))
	}

	logWater("2025-03-10", 600)
	logWater("2025-03-11", 700)

	got, err := streaks.List(ctx, "u1")
	require.NoError(t, err)
	byType := map[string]model.Streak{}
	for _, s := range got {
		byType[s.StreakType] = s
	}
	assert.Equal(t, 2, byType[StreakWater].CurrentStreak)
	assert.Equal(t, 2, byType[StreakWater].BestStreak)
	assert.Equal(t, "2025-03-11", byType[StreakWater].LastMetDate)

	// below target on a later day leaves the counter untouched
	logWater("2025-03-13", 100)
	got, err = streaks.List(ctx, "u1")
	require.NoError(t, err)
	for _, s := range got {
		if s.StreakType == StreakWater {
			assert.Equal(t, 2, s.CurrentStreak)
		}
	}

	// a gap resets to 1 on the next met day
	logWater("2025-03-14", 900)
	got, err = streaks.List(ctx, "u1")
	require.NoError(t, err)
	for _, s := range got {
		if s.StreakType == StreakWater {
			assert.Equal(t, 1, s.CurrentStreak)
			assert.Equal(t, 2, s.BestStreak)
		}
	}
}

func TestStreakRefreshIdempotentPerDay(t *testing.T) {
	st := newTestStore(t)
	streaks := NewStreakService(st)
	ctx := context.Background()

	_, err := st.Water().Create(ctx, &model.WaterEntry{UserID: "u1", VolumeMl: 300, LoggedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.NoError(t, streaks.Refresh(ctx, "u1", "2025-03-10"))
	require.NoError(t, streaks.Refresh(ctx, "u1", "2025-03-10"))

	got, err := streaks.List(ctx, "u1")
	require.NoError(t, err)
	for _, s := range got {
		assert.Equal(t, 1, s.CurrentStreak, s.StreakType)
	}
}

// wrappedGoalsStore decorates Goals().Get errors the way a caller adding
// context would.
type wrappedGoalsStore struct{ store.Store }

func (s wrappedGoalsStore) Goals() store.Goals { return wrappedGoals{s.Store.Goals()} }

type wrappedGoals struct{ inner store.Goals }

func (g wrappedGoals) Upsert(ctx context.Context, in *model.DailyGoals) (*model.DailyGoals, error) {
	return g.inner.Upsert(ctx, in)
}

func (g wrappedGoals) Get(ctx context.Context, userID string) (*model.DailyGoals, error) {
	out, err := g.inner.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	return out, nil
}

func TestStreakRefreshTreatsWrappedMissingGoalsAsUnset(t *testing.T) {
	st := newTestStore(t)
	streaks := NewStreakService(wrappedGoalsStore{st})
	ctx := context.Background()

	_, err := st.Water().Create(ctx, &model.WaterEntry{UserID: "u1", VolumeMl: 300, LoggedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.NoError(t, streaks.Refresh(ctx, "u1", "2025-03-10"))

	got, err := streaks.List(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.Equal(t, 1, s.CurrentStreak, s.StreakType)
	}
}

func TestSummaryService(t *testing.T) {
	st := newTestStore(t)
	svc := NewSummaryService(st)
	ctx := context.Background()

	_, err := st.Meals().Create(ctx, &model.MealEntry{UserID: "u1", LogDate: "2025-03-10", MealType: "lunch", Calories: 500, Protein: 20})
	require.NoError(t, err)
	_, err = st.Meals().Create(ctx, &model.MealEntry{UserID: "u1", LogDate: "2025-03-10", MealType: "dinner", Calories: 700, Fat: 30})
	require.NoError(t, err)
	_, err = st.Water().Create(ctx, &model.WaterEntry{UserID: "u1", VolumeMl: 250, LoggedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = st.Activities().Create(ctx, &model.ActivityEntry{UserID: "u1", LogDate: "2025-03-10", ActivityType: "run", DurationMin: 30, Steps: 4000})
	require.NoError(t, err)

	sum, err := svc.Get(ctx, "u1", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, sum.CaloriesConsumed)
	assert.Equal(t, 20.0, sum.ProteinGrams)
	assert.Equal(t, 30.0, sum.FatGrams)
	assert.Equal(t, 250.0, sum.WaterMl)
	assert.Equal(t, 4000.0, sum.Steps)
	assert.Equal(t, 30.0, sum.ActiveMinutes)

	_, err = svc.Get(ctx, "u1", "10-03-2025")
	assert.ErrorIs(t, err, model.ErrValidation)

	rng, err := svc.Range(ctx, "u1", "2025-03-09", "2025-03-11")
	require.NoError(t, err)
	require.Len(t, rng, 3)
	assert.Zero(t, rng[0].CaloriesConsumed)
	assert.Equal(t, 1200.0, rng[1].CaloriesConsumed)

	_, err = svc.Range(ctx, "u1", "2025-03-11", "2025-03-09")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestReportServiceBuildAndShare(t *testing.T) {
	st := newTestStore(t)
	svc := NewReportService(st, NewSummaryService(st))
	ctx := context.Background()

	_, err := svc.Build(ctx, "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)

	seedProfile(t, st, "u1", auth.RoleMember)
	_, err = st.Measurements().Create(ctx, &model.BodyMeasurement{UserID: "u1", HeightCm: 180, WeightKg: 75})
	require.NoError(t, err)

	rep, err := svc.Build(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", rep.Profile.UserID)
	assert.Nil(t, rep.Goals)
	require.NotNil(t, rep.Measurement)
	assert.Len(t, rep.RecentLogs, 7)
	assert.InDelta(t, 23.1, BMI(rep.Measurement), 0.1)

	share, err := svc.Share(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, share.ShareEnabled)
	assert.NotEmpty(t, share.ShareToken)

	// token is stable across calls
	again, err := svc.Share(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, share.ShareToken, again.ShareToken)

	_, err = svc.BuildPublic(ctx, share.ShareToken)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.SetShareEnabled(ctx, "u1", true)
	require.NoError(t, err)
	pub, err := svc.BuildPublic(ctx, share.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", pub.Profile.UserID)

	_, err = svc.BuildPublic(ctx, "bogus-token")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContentService(t *testing.T) {
	st := newTestStore(t)
	svc := NewContentService(st)
	ctx := context.Background()

	// empty table falls back instead of erroring
	msg, err := svc.RandomMotivation(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	_, err = svc.AddMotivation(ctx, "")
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = svc.AddMotivation(ctx, "One more rep.")
	require.NoError(t, err)

	msg, err = svc.RandomMotivation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "One more rep.", msg)

	_, err = svc.Flag(ctx, "u1", "spaceship", "")
	assert.ErrorIs(t, err, model.ErrValidation)

	flag, err := svc.Flag(ctx, "u1", "meal", "")
	require.NoError(t, err)
	assert.Equal(t, "open", flag.Status)
	assert.NotEmpty(t, flag.Reason)

	listed, err := st.Flagged().ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, flag.ID, listed[0].ID)
}

func TestAdminService(t *testing.T) {
	st := newTestStore(t)
	report := NewReportService(st, NewSummaryService(st))
	svc := NewAdminService(st, report)
	ctx := context.Background()

	seedProfile(t, st, "root", auth.RoleAdmin)
	seedProfile(t, st, "u1", auth.RoleMember)
	seedProfile(t, st, "u2", auth.RoleMember)
	_, err := st.Motivations().Create(ctx, "keep going")
	require.NoError(t, err)

	require.NoError(t, svc.Authorize(ctx, &auth.Actor{UserID: "root", Role: auth.RoleAdmin}))
	assert.ErrorIs(t, svc.Authorize(ctx, &auth.Actor{UserID: "u1", Role: auth.RoleAdmin}), model.ErrForbidden)
	assert.ErrorIs(t, svc.Authorize(ctx, &auth.Actor{UserID: "ghost"}), model.ErrForbidden)
	require.NoError(t, svc.Authorize(ctx, &auth.Actor{UserID: "service", Role: auth.RoleService}))

	ov, err := svc.Overview(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, 3, ov.Counts.TotalUsers)
	assert.Equal(t, 2, ov.Counts.MemberCount)
	assert.Equal(t, 1, ov.Counts.AdminCount)
	assert.Equal(t, 1, ov.Counts.MotivationCount)
	assert.Len(t, ov.Users, 2)

	err = svc.DeleteUser(ctx, "root", "root")
	assert.ErrorIs(t, err, model.ErrForbidden)

	err = svc.DeleteUser(ctx, "root", "u2")
	require.NoError(t, err)
	_, err = st.Profiles().Get(ctx, "u2")
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = svc.DeleteUser(ctx, "root", "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
