package service

import (
	"context"
	"errors"
	"fmt"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/logger"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateRoleRequest represents the request to change a user's role
type UpdateRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=superadmin project_manager frontend_developer backend_developer technical_writer system_analyst member_pending_assignment"`
}

func (s *UserService) getUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// LoadActor resolves the token subject into the actor a request runs as
func (s *UserService) LoadActor(ctx context.Context, userID uuid.UUID) (policy.Actor, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return policy.Actor{}, err
	}
	return policy.ActorFromUser(user), nil
}

// ListUsers returns every user for the assignment dropdown
func (s *UserService) ListUsers(ctx context.Context, actor policy.Actor) ([]UserSummary, error) {
	if err := policy.CanListUsers(actor).Err(); err != nil {
		return nil, err
	}
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, *toUserSummary(&users[i]))
	}
	return out, nil
}

// ListTeamMembers returns the approved members of the actor's team
func (s *UserService) ListTeamMembers(ctx context.Context, actor policy.Actor) ([]UserResponse, error) {
	if actor.TeamID == nil {
		return []UserResponse{}, nil
	}
	users, err := s.repo.ListByTeam(ctx, *actor.TeamID, models.MembershipApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return toUserResponses(users), nil
}

// UpdateRole changes another user's role within the actor's authority
func (s *UserService) UpdateRole(ctx context.Context, actor policy.Actor, targetID uuid.UUID, req *UpdateRoleRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	target, err := s.getUser(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanUpdateUserRole(actor, target, req.Role).Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, target.ID, map[string]interface{}{"role": req.Role}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"target":   target.ID,
		"new_role": req.Role,
	}).Info("User role updated")

	updated, err := s.getUser(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}
