package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

// fallbackMotivation is served while no messages are seeded yet.
const fallbackMotivation = "Small steps every day add up. Keep going!"

var flagItemTypes = map[string]bool{
	"meal":       true,
	"water":      true,
	"activity":   true,
	"profile":    true,
	"motivation": true,
	"other":      true,
}

// ContentService serves motivational messages to users and takes content
// reports for the admin moderation queue.
type ContentService struct {
	store store.Store
}

func NewContentService(st store.Store) *ContentService {
	return &ContentService{store: st}
}

// RandomMotivation picks one seeded message at random. An empty table falls
// back to a built-in message so the surface never errors on a fresh install.
func (s *ContentService) RandomMotivation(ctx context.Context) (string, error) {
	msg, err := s.store.Motivations().Random(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return fallbackMotivation, nil
	}
	if err != nil {
		return "", err
	}
	return msg, nil
}

// AddMotivation seeds a new message and returns its id.
func (s *ContentService) AddMotivation(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("%w: message is required", model.ErrValidation)
	}
	return s.store.Motivations().Create(ctx, message)
}

// Flag records a content report from userID for the moderation queue.
func (s *ContentService) Flag(ctx context.Context, userID, itemType, reason string) (*model.FlaggedItem, error) {
	if !flagItemTypes[itemType] {
		return nil, fmt.Errorf("%w: itemType must be one of meal, water, activity, profile, motivation, other", model.ErrValidation)
	}
	if len(reason) > 500 {
		return nil, fmt.Errorf("%w: reason must be at most 500 characters", model.ErrValidation)
	}
	return s.store.Flagged().Create(ctx, &model.FlaggedItem{
		UserID:   userID,
		ItemType: itemType,
		Reason:   reason,
	})
}
