package store

import (
	"context"
	"time"

	"github.com/SamratSK/better-bites/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Profiles() Profiles
	Goals() Goals
	Measurements() Measurements
	Meals() Meals
	Water() Water
	Activities() Activities
	Summaries() Summaries
	Streaks() Streaks
	Flagged() Flagged
	Motivations() Motivations
	Foods() Foods
	ReportShares() ReportShares

	// HealthPing verifies database connectivity.
	HealthPing(ctx context.Context) error
}

type Profiles interface {
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)
	Get(ctx context.Context, userID string) (*model.Profile, error)
	List(ctx context.Context, excludeUserID string) ([]model.Profile, error)
	CountByRole(ctx context.Context, role string) (int, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, userID string) error
}

type Goals interface {
	Upsert(ctx context.Context, g *model.DailyGoals) (*model.DailyGoals, error)
	Get(ctx context.Context, userID string) (*model.DailyGoals, error)
}

type Measurements interface {
	Create(ctx context.Context, m *model.BodyMeasurement) (*model.BodyMeasurement, error)
	Latest(ctx context.Context, userID string) (*model.BodyMeasurement, error)
	List(ctx context.Context, userID string, limit int) ([]model.BodyMeasurement, error)
}

type Meals interface {
	Create(ctx context.Context, e *model.MealEntry) (*model.MealEntry, error)
	ListByDate(ctx context.Context, userID, logDate string) ([]model.MealEntry, error)
	Delete(ctx context.Context, entryID string) error
}

// Water lists by a half-open UTC timestamp range [from, to) because water
// rows persist only a logged_at timestamp, not a date column.
type Water interface {
	Create(ctx context.Context, e *model.WaterEntry) (*model.WaterEntry, error)
	ListByRange(ctx context.Context, userID string, from, to time.Time) ([]model.WaterEntry, error)
	Delete(ctx context.Context, entryID string) error
}

type Activities interface {
	Create(ctx context.Context, e *model.ActivityEntry) (*model.ActivityEntry, error)
	ListByDate(ctx context.Context, userID, logDate string) ([]model.ActivityEntry, error)
	Delete(ctx context.Context, entryID string) error
}

// Summaries computes daily aggregates from the persisted entry tables.
type Summaries interface {
	Get(ctx context.Context, userID, logDate string) (*model.DailySummary, error)
	Range(ctx context.Context, userID, startDate, endDate string) ([]model.DailySummary, error)
}

type Streaks interface {
	List(ctx context.Context, userID string) ([]model.Streak, error)
	Upsert(ctx context.Context, s *model.Streak) (*model.Streak, error)
}

type Flagged interface {
	Create(ctx context.Context, f *model.FlaggedItem) (*model.FlaggedItem, error)
	ListRecent(ctx context.Context, limit int) ([]model.FlaggedItem, error)
}

type Motivations interface {
	Create(ctx context.Context, message string) (string, error)
	Random(ctx context.Context) (string, error)
	Count(ctx context.Context) (int, error)
}

type Foods interface {
	GetByBarcode(ctx context.Context, barcode string) (*model.FoodProduct, error)
	Upsert(ctx context.Context, f *model.FoodProduct) (*model.FoodProduct, error)
	Search(ctx context.Context, query string, limit int) ([]model.FoodProduct, error)
	Count(ctx context.Context) (int, error)
}

type ReportShares interface {
	GetOrCreate(ctx context.Context, userID string) (*model.ReportShare, error)
	SetEnabled(ctx context.Context, userID string, enabled bool) (*model.ReportShare, error)
	GetByToken(ctx context.Context, token string) (*model.ReportShare, error)
}
