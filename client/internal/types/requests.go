package types

import "time"

// CreateMealRequest carries the client-supplied meal fields; the server
// assigns id and createdAt.
type CreateMealRequest struct {
	LogDate     string  `json:"logDate"`
	MealType    string  `json:"mealType"`
	Description string  `json:"description,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

type CreateWaterRequest struct {
	VolumeMl float64    `json:"volumeMl"`
	LoggedAt *time.Time `json:"loggedAt,omitempty"`
}

type CreateActivityRequest struct {
	LogDate        string  `json:"logDate"`
	ActivityType   string  `json:"activityType"`
	DurationMin    float64 `json:"durationMin"`
	Intensity      string  `json:"intensity,omitempty"`
	CaloriesBurned float64 `json:"caloriesBurned"`
	Steps          float64 `json:"steps"`
	Notes          string  `json:"notes,omitempty"`
}
