package service

import (
	"context"
	"errors"
	"fmt"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// OnboardingService walks a new user through role choice and team setup
type OnboardingService struct {
	userRepo  repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *OnboardingService {
	return &OnboardingService{
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// SelectRoleRequest is the first onboarding choice
type SelectRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=pm member"`
}

// StageOf tells which onboarding step a user is on
func StageOf(actor policy.Actor) OnboardingStage {
	switch {
	case actor.Kind == policy.Unassigned:
		return StageRoleSelection
	case actor.TeamID == nil && actor.IsManager():
		return StageCreateTeam
	case actor.TeamID == nil:
		return StageJoinTeam
	case actor.Membership != nil && *actor.Membership == models.MembershipPending:
		return StagePendingApproval
	}
	return StageReady
}

// GateError returns the reason a user may not use the task features yet, or nil
func GateError(actor policy.Actor) error {
	switch StageOf(actor) {
	case StageRoleSelection:
		return apperrors.ErrRoleSelectionRequired
	case StageCreateTeam, StageJoinTeam:
		return apperrors.ErrTeamRequired
	case StagePendingApproval:
		return apperrors.ErrMembershipPending
	}
	return nil
}

// Profile returns the actor's profile and onboarding stage
func (s *OnboardingService) Profile(ctx context.Context, actor policy.Actor) (*ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	current := policy.ActorFromUser(user)

	resp := &ProfileResponse{
		User:           *toUserResponse(user),
		CanManageTasks: current.IsManager(),
		Stage:          StageOf(current),
	}
	if user.TeamID != nil {
		team, err := s.teamRepo.GetByID(ctx, *user.TeamID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
		if team != nil {
			resp.Team = &TeamSummary{ID: team.ID, Name: team.Name, Photo: team.Photo}
		}
	}
	return resp, nil
}

// SelectRole records the manager or member choice. Only allowed before the
// user belongs to a team.
func (s *OnboardingService) SelectRole(ctx context.Context, actor policy.Actor, req *SelectRoleRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if actor.TeamID != nil {
		return nil, apperrors.ErrAlreadyInTeam
	}

	role := models.RoleMemberPendingAssignment
	if req.Role == "pm" {
		role = models.RoleProjectManager
	}
	if err := s.userRepo.Update(ctx, actor.ID, map[string]interface{}{"role": role}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to set role: %w", err)
	}
	return s.Profile(ctx, actor)
}

// Cancel clears a role chosen during onboarding so the user can choose again.
// Users already in a team keep their role.
func (s *OnboardingService) Cancel(ctx context.Context, actor policy.Actor) (*ProfileResponse, error) {
	if actor.TeamID != nil {
		return nil, apperrors.ErrAlreadyInTeam
	}
	if actor.Kind != policy.Unassigned {
		if err := s.userRepo.Update(ctx, actor.ID, map[string]interface{}{"role": nil}); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to clear role: %w", err)
		}
	}
	return s.Profile(ctx, actor)
}
