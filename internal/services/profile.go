package services

import (
	"context"
	"fmt"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

// ProfileService covers profiles, daily goals and body measurements.
type ProfileService struct {
	store store.Store
}

func NewProfileService(st store.Store) *ProfileService {
	return &ProfileService{store: st}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	return s.store.Profiles().Get(ctx, userID)
}

// Upsert creates or updates the profile. Role changes are not accepted from
// this surface; the stored role always wins.
func (s *ProfileService) Upsert(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if len(in.DisplayName) > 100 {
		return nil, fmt.Errorf("%w: displayName exceeds 100 characters", model.ErrValidation)
	}
	return s.store.Profiles().Upsert(ctx, in)
}

func (s *ProfileService) GetGoals(ctx context.Context, userID string) (*model.DailyGoals, error) {
	return s.store.Goals().Get(ctx, userID)
}

func (s *ProfileService) UpsertGoals(ctx context.Context, in *model.DailyGoals) (*model.DailyGoals, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	for name, v := range map[string]*int{
		"caloriesTarget": in.CaloriesTarget,
		"proteinTarget":  in.ProteinTarget,
		"carbsTarget":    in.CarbsTarget,
		"fatTarget":      in.FatTarget,
		"waterMlTarget":  in.WaterMlTarget,
		"stepsTarget":    in.StepsTarget,
	} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("%w: %s must be non-negative", model.ErrValidation, name)
		}
	}
	return s.store.Goals().Upsert(ctx, in)
}

func (s *ProfileService) AddMeasurement(ctx context.Context, in *model.BodyMeasurement) (*model.BodyMeasurement, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if in.HeightCm <= 0 || in.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: heightCm and weightKg must be positive", model.ErrValidation)
	}
	return s.store.Measurements().Create(ctx, in)
}

func (s *ProfileService) ListMeasurements(ctx context.Context, userID string, limit int) ([]model.BodyMeasurement, error) {
	return s.store.Measurements().List(ctx, userID, limit)
}

// BMI derives body mass index from the latest measurement.
func BMI(m *model.BodyMeasurement) float64 {
	if m == nil || m.HeightCm <= 0 {
		return 0
	}
	h := m.HeightCm / 100
	return m.WeightKg / (h * h)
}
