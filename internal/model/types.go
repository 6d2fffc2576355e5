package model

import "time"

// Profile represents an account profile row. Role is either "member" or
// "admin"; admin-only endpoints check it server-side.
type Profile struct {
	UserID        string    `json:"userId"`
	DisplayName   string    `json:"displayName"`
	Role          string    `json:"role"`
	Gender        string    `json:"gender,omitempty"`
	Timezone      string    `json:"timezone,omitempty"`
	ActivityLevel string    `json:"activityLevel,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DailyGoals holds per-user daily targets. Nil pointers mean "no target set".
type DailyGoals struct {
	UserID         string `json:"userId"`
	CaloriesTarget *int   `json:"caloriesTarget,omitempty"`
	ProteinTarget  *int   `json:"proteinTarget,omitempty"`
	CarbsTarget    *int   `json:"carbsTarget,omitempty"`
	FatTarget      *int   `json:"fatTarget,omitempty"`
	WaterMlTarget  *int   `json:"waterMlTarget,omitempty"`
	StepsTarget    *int   `json:"stepsTarget,omitempty"`
}

// BodyMeasurement is one recorded measurement (latest wins for reports).
type BodyMeasurement struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	RecordedAt time.Time `json:"recordedAt"`
	HeightCm   float64   `json:"heightCm"`
	WeightKg   float64   `json:"weightKg"`
	BodyFatPct *float64  `json:"bodyFatPct,omitempty"`
	WaistCm    *float64  `json:"waistCm,omitempty"`
}

// MealEntry is one logged meal. Entries are immutable once created; the only
// mutation is deletion.
type MealEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	LogDate     string    `json:"logDate"`
	MealType    string    `json:"mealType"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Source      string    `json:"source"`
	FoodRefID   *string   `json:"foodRefId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WaterEntry is one logged water intake. It carries only a timestamp; the
// calendar day is derived from LoggedAt in UTC.
type WaterEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	VolumeMl float64   `json:"volumeMl"`
	LoggedAt time.Time `json:"loggedAt"`
}

// ActivityEntry is one logged workout or activity session.
type ActivityEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	LogDate        string    `json:"logDate"`
	LoggedAt       time.Time `json:"loggedAt"`
	ActivityType   string    `json:"activityType"`
	DurationMin    float64   `json:"durationMin"`
	Intensity      string    `json:"intensity,omitempty"`
	CaloriesBurned float64   `json:"caloriesBurned"`
	Steps          float64   `json:"steps"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DailySummary is the server-computed aggregate for one user on one date.
// It is derived from persisted logs on every read, never stored.
type DailySummary struct {
	UserID           string  `json:"userId"`
	LogDate          string  `json:"logDate"`
	CaloriesConsumed float64 `json:"caloriesConsumed"`
	ProteinGrams     float64 `json:"proteinGrams"`
	CarbsGrams       float64 `json:"carbsGrams"`
	FatGrams         float64 `json:"fatGrams"`
	WaterMl          float64 `json:"waterMl"`
	Steps            float64 `json:"steps"`
	ActiveMinutes    float64 `json:"activeMinutes"`
}

// Streak tracks consecutive goal-met days for one streak type
// ("overall", "water" or "workout").
type Streak struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	StreakType    string `json:"streakType"`
	CurrentStreak int    `json:"currentStreak"`
	BestStreak    int    `json:"bestStreak"`
	LastMetDate   string `json:"lastMetDate,omitempty"`
}

// FlaggedItem is a content report awaiting moderation.
type FlaggedItem struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	ItemType  string     `json:"itemType"`
	Reason    string     `json:"reason"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	HandledAt *time.Time `json:"handledAt,omitempty"`
	HandledBy *string    `json:"handledBy,omitempty"`
}

// AdminCounts are the aggregate numbers shown on the admin dashboard.
type AdminCounts struct {
	TotalUsers      int `json:"totalUsers"`
	MemberCount     int `json:"memberCount"`
	AdminCount      int `json:"adminCount"`
	MotivationCount int `json:"motivationCount"`
	CachedFoodCount int `json:"cachedFoodCount"`
}

// AdminOverview bundles counts with the member list for the admin dashboard.
type AdminOverview struct {
	Counts AdminCounts `json:"counts"`
	Users  []Profile   `json:"users"`
}

// ReportShare controls public access to a user's shareable report.
type ReportShare struct {
	UserID       string `json:"userId"`
	ShareToken   string `json:"shareToken"`
	ShareEnabled bool   `json:"shareEnabled"`
}

// Report is the shareable report payload: profile, goals, latest measurement,
// streaks and the last seven days of summaries.
type Report struct {
	Profile     *Profile         `json:"profile"`
	Goals       *DailyGoals      `json:"goals"`
	Measurement *BodyMeasurement `json:"measurement"`
	Streaks     []Streak         `json:"streaks"`
	RecentLogs  []DailySummary   `json:"recentLogs"`
}

// FoodProduct is a cached Open Food Facts product keyed by barcode.
type FoodProduct struct {
	Barcode      string             `json:"barcode"`
	Name         string             `json:"name"`
	Brand        *string            `json:"brand,omitempty"`
	ServingSize  *string            `json:"servingSize,omitempty"`
	Calories     *float64           `json:"calories,omitempty"`
	Macros       map[string]float64 `json:"macros"`
	Micros       map[string]float64 `json:"micros,omitempty"`
	Source       string             `json:"source"`
	LastSyncedAt time.Time          `json:"lastSyncedAt"`
}

// IsStale reports whether the product has not been synced within ttl.
func (f *FoodProduct) IsStale(ttl time.Duration, now time.Time) bool {
	return now.Sub(f.LastSyncedAt) >= ttl
}
