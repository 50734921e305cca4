package service

import (
	"context"
	"fmt"

	"task-manager-backend/internal/changes"
	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/repository"
	"task-manager-backend/internal/visibility"
)

// UpdateCheckService answers the polling checks. Each check is a single
// aggregate query scoped the same way the matching page is.
type UpdateCheckService struct {
	taskRepo repository.TaskRepositoryInterface
	userRepo repository.UserRepositoryInterface
}

// NewUpdateCheckService creates a new update check service
func NewUpdateCheckService(taskRepo repository.TaskRepositoryInterface, userRepo repository.UserRepositoryInterface) *UpdateCheckService {
	return &UpdateCheckService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CheckTasks watches the newest change among the tasks the actor can see
func (s *UpdateCheckService) CheckTasks(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error) {
	known, err := changes.ParseWatermark(lastKnown)
	if err != nil {
		return nil, err
	}
	current, err := s.taskRepo.MaxUpdatedAt(ctx, visibility.TaskScope(actor))
	if err != nil {
		return nil, fmt.Errorf("failed to check tasks: %w", err)
	}
	res := changes.CompareTimestamp(current, known)
	return &res, nil
}

// CheckDashboard uses the same statistic as CheckTasks
func (s *UpdateCheckService) CheckDashboard(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error) {
	return s.CheckTasks(ctx, actor, lastKnown)
}

// CheckUnread watches the member's unread count. Managers have nothing to read.
func (s *UpdateCheckService) CheckUnread(ctx context.Context, actor policy.Actor, lastCount string) (*changes.CountResult, error) {
	known, err := changes.ParseCount(lastCount)
	if err != nil {
		return nil, err
	}
	if actor.IsManager() {
		return &changes.CountResult{}, nil
	}
	count, err := s.taskRepo.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread tasks: %w", err)
	}
	res := changes.CompareCount(count, known)
	return &res, nil
}

// CheckUsers watches the approved members of the actor's team
func (s *UpdateCheckService) CheckUsers(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error) {
	known, err := changes.ParseWatermark(lastKnown)
	if err != nil {
		return nil, err
	}
	if actor.TeamID == nil {
		res := changes.NoUpdate()
		return &res, nil
	}
	current, err := s.userRepo.MaxUpdatedAt(ctx, *actor.TeamID, models.MembershipApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to check users: %w", err)
	}
	res := changes.CompareTimestamp(current, known)
	return &res, nil
}

// CheckPendingMembers watches membership requests on the manager's team
func (s *UpdateCheckService) CheckPendingMembers(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error) {
	known, err := changes.ParseWatermark(lastKnown)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager() || actor.TeamID == nil {
		res := changes.NoUpdate()
		return &res, nil
	}
	current, err := s.userRepo.MaxUpdatedAt(ctx, *actor.TeamID, models.MembershipPending)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending members: %w", err)
	}
	res := changes.CompareTimestamp(current, known)
	return &res, nil
}
