package services

import (
	"context"
	"errors"
	"time"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

// ReportService assembles the shareable report and manages share tokens.
type ReportService struct {
	store   store.Store
	summary *SummaryService
}

func NewReportService(st store.Store, summary *SummaryService) *ReportService {
	return &ReportService{store: st, summary: summary}
}

// Build assembles profile, goals, latest measurement, streaks and the last
// seven days of summaries. Missing goals or measurements leave nil fields;
// a missing profile is a hard not-found.
func (s *ReportService) Build(ctx context.Context, userID string) (*model.Report, error) {
	profile, err := s.store.Profiles().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &model.Report{Profile: profile}

	if goals, err := s.store.Goals().Get(ctx, userID); err == nil {
		out.Goals = goals
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	if m, err := s.store.Measurements().Latest(ctx, userID); err == nil {
		out.Measurement = m
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	if out.Streaks, err = s.store.Streaks().List(ctx, userID); err != nil {
		return nil, err
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -6)
	out.RecentLogs, err = s.store.Summaries().Range(ctx, userID,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Share returns the user's share record, creating a disabled one on first
// use.
func (s *ReportService) Share(ctx context.Context, userID string) (*model.ReportShare, error) {
	return s.store.ReportShares().GetOrCreate(ctx, userID)
}

func (s *ReportService) SetShareEnabled(ctx context.Context, userID string, enabled bool) (*model.ReportShare, error) {
	if _, err := s.store.ReportShares().GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ReportShares().SetEnabled(ctx, userID, enabled)
}

// BuildPublic resolves a share token to a report. Disabled or unknown tokens
// both surface as not-found so the token stays unguessable.
func (s *ReportService) BuildPublic(ctx context.Context, token string) (*model.Report, error) {
	share, err := s.store.ReportShares().GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !share.ShareEnabled {
		return nil, model.ErrNotFound
	}
	return s.Build(ctx, share.UserID)
}
