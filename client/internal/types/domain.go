// Package types holds the SDK's wire shapes. They mirror the service's JSON
// contract; server-assigned fields (ids, timestamps) are authoritative.
package types

import "time"

// Meal is one logged meal, immutable once created.
type Meal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	LogDate     string    `json:"logDate"`
	MealType    string    `json:"mealType"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Source      string    `json:"source,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Water is one logged intake. The calendar day is derived from LoggedAt in
// UTC; no date field is persisted.
type Water struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	VolumeMl float64   `json:"volumeMl"`
	LoggedAt time.Time `json:"loggedAt"`
}

// Activity is one logged workout or activity session.
type Activity struct {
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

// Summary is the server-computed aggregate for one user on one date.
type Summary struct {
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

type Profile struct {
	UserID        string    `json:"userId"`
	DisplayName   string    `json:"displayName"`
	Role          string    `json:"role"`
	Gender        string    `json:"gender,omitempty"`
	Timezone      string    `json:"timezone,omitempty"`
	ActivityLevel string    `json:"activityLevel,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Goals struct {
	UserID         string `json:"userId"`
	CaloriesTarget *int   `json:"caloriesTarget,omitempty"`
	ProteinTarget  *int   `json:"proteinTarget,omitempty"`
	CarbsTarget    *int   `json:"carbsTarget,omitempty"`
	FatTarget      *int   `json:"fatTarget,omitempty"`
	WaterMlTarget  *int   `json:"waterMlTarget,omitempty"`
	StepsTarget    *int   `json:"stepsTarget,omitempty"`
}

type Measurement struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	RecordedAt time.Time `json:"recordedAt"`
	HeightCm   float64   `json:"heightCm"`
	WeightKg   float64   `json:"weightKg"`
	BodyFatPct *float64  `json:"bodyFatPct,omitempty"`
	WaistCm    *float64  `json:"waistCm,omitempty"`
}

type Streak struct {
	StreakType    string `json:"streakType"`
	CurrentStreak int    `json:"currentStreak"`
	BestStreak    int    `json:"bestStreak"`
	LastMetDate   string `json:"lastMetDate,omitempty"`
}

type Report struct {
	Profile     *Profile     `json:"profile"`
	Goals       *Goals       `json:"goals"`
	Measurement *Measurement `json:"measurement"`
	Streaks     []Streak     `json:"streaks"`
	RecentLogs  []Summary    `json:"recentLogs"`
}

type ReportShare struct {
	UserID       string `json:"userId"`
	ShareToken   string `json:"shareToken"`
	ShareEnabled bool   `json:"shareEnabled"`
}

type FlaggedItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ItemType  string    `json:"itemType"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminCounts struct {
	TotalUsers      int `json:"totalUsers"`
	MemberCount     int `json:"memberCount"`
	AdminCount      int `json:"adminCount"`
	MotivationCount int `json:"motivationCount"`
	CachedFoodCount int `json:"cachedFoodCount"`
}

type AdminOverview struct {
	Counts AdminCounts `json:"counts"`
	Users  []Profile   `json:"users"`
}
