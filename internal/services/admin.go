package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SamratSK/better-bites/internal/auth"
	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

// AdminService backs the admin dashboard: aggregate counts, the member list,
// recent flags, per-user reports and account deletion.
type AdminService struct {
	store  store.Store
	report *ReportService
}

func NewAdminService(st store.Store, report *ReportService) *AdminService {
	return &AdminService{store: st, report: report}
}

// Authorize checks the actor against the stored profile role. The token role
// alone is not trusted for the admin surface.
func (s *AdminService) Authorize(ctx context.Context, actor *auth.Actor) error {
	if actor == nil {
		return model.ErrForbidden
	}
	if actor.Role == auth.RoleService {
		return nil
	}
	p, err := s.store.Profiles().Get(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrForbidden
		}
		return err
	}
	if p.Role != auth.RoleAdmin {
		return model.ErrForbidden
	}
	return nil
}

// Overview returns dashboard counts plus every profile except the caller's.
func (s *AdminService) Overview(ctx context.Context, actorID string) (*model.AdminOverview, error) {
	var out model.AdminOverview
	var err error
	if out.Counts.TotalUsers, err = s.store.Profiles().Count(ctx); err != nil {
		return nil, err
	}
	if out.Counts.MemberCount, err = s.store.Profiles().CountByRole(ctx, auth.RoleMember); err != nil {
		return nil, err
	}
	if out.Counts.AdminCount, err = s.store.Profiles().CountByRole(ctx, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if out.Counts.MotivationCount, err = s.store.Motivations().Count(ctx); err != nil {
		return nil, err
	}
	if out.Counts.CachedFoodCount, err = s.store.Foods().Count(ctx); err != nil {
		return nil, err
	}
	if out.Users, err = s.store.Profiles().List(ctx, actorID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) RecentFlags(ctx context.Context, limit int) ([]model.FlaggedItem, error) {
	return s.store.Flagged().ListRecent(ctx, limit)
}

func (s *AdminService) ReportFor(ctx context.Context, targetUserID string) (*model.Report, error) {
	if targetUserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	return s.report.Build(ctx, targetUserID)
}

// DeleteUser removes the target account and all of its data. Admin accounts
// cannot be deleted from this surface.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, targetUserID string) error {
	if targetUserID == "" {
		return fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if targetUserID == actorID {
		return fmt.Errorf("%w: cannot delete own account", model.ErrForbidden)
	}
	target, err := s.store.Profiles().Get(ctx, targetUserID)
	if err != nil {
		return err
	}
	if target.Role == auth.RoleAdmin {
		return fmt.Errorf("%w: cannot delete an admin account", model.ErrForbidden)
	}
	return s.store.Profiles().Delete(ctx, targetUserID)
}
