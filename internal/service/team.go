package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/logger"
	"task-manager-backend/internal/notify"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const teamCodeAttempts = 10

// TeamService handles teams and membership requests
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	outbox    notify.Outbox
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, outbox notify.Outbox, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		outbox:    outbox,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Photo       *string `json:"photo" validate:"omitnil,max=2048"`
}

// UpdateTeamRequest represents a partial team update. The join code cannot be changed.
type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Photo       *string `json:"photo" validate:"omitnil,max=2048"`
}

// JoinTeamRequest represents a request to join a team with its code
type JoinTeamRequest struct {
	TeamID   uuid.UUID `json:"team_id" validate:"required"`
	TeamCode string    `json:"team_code" validate:"required,max=8"`
}

// randomTeamCode returns 8 uppercase hex characters
func randomTeamCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

func (s *TeamService) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < teamCodeAttempts; i++ {
		code, err := randomTeamCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate team code: %w", err)
		}
		taken, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check team code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", apperrors.ErrTeamCodeExhausted
}

func (s *TeamService) getTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) getUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// push delivers a notification; a failed push is logged, not returned
func (s *TeamService) push(ctx context.Context, userID uuid.UUID, n notify.Notification) {
	if err := s.outbox.Push(ctx, userID, n); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("kind", n.Kind).Warn("Failed to queue notification")
	}
}

// Create makes a new team owned by the acting manager
func (s *TeamService) Create(ctx context.Context, actor policy.Actor, req *CreateTeamRequest) (*TeamResponse, error) {
	if !actor.IsManager() {
		return nil, apperrors.NewAuthorizationError("only managers can create teams")
	}
	if actor.TeamID != nil {
		return nil, apperrors.ErrAlreadyInTeam
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	team := &models.Team{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Code:        code,
		Photo:       req.Photo,
		CreatedBy:   actor.ID,
	}
	if err := s.repo.CreateWithOwner(ctx, team, actor.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("Team created")
	s.push(ctx, actor.ID, notify.New(notify.KindTeamCreated, notify.LevelSuccess,
		fmt.Sprintf("Team %q created. Share the code %s with your members.", team.Name, team.Code),
		map[string]string{"team_id": team.ID.String(), "code": team.Code}))

	return toTeamResponse(team), nil
}

// List returns every team for the join screen
func (s *TeamService) List(ctx context.Context) ([]TeamSummary, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	out := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamSummary{ID: t.ID, Name: t.Name, Photo: t.Photo})
	}
	return out, nil
}

// Get returns a team to its members. Only managers see the join code.
func (s *TeamService) Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanViewTeam(actor, team).Err(); err != nil {
		return nil, err
	}
	resp := toTeamResponse(team)
	if !actor.IsManager() {
		resp.Code = ""
	}
	return resp, nil
}

// Update changes the team's name, description or photo
func (s *TeamService) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanUpdateTeam(actor, team).Err(); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if len(updates) == 0 {
		return toTeamResponse(team), nil
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	updated, err := s.getTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(updated), nil
}

// Join files a membership request. A wrong code is reported like a missing
// team so callers cannot tell which part was wrong.
func (s *TeamService) Join(ctx context.Context, actor policy.Actor, req *JoinTeamRequest) (*UserResponse, error) {
	if actor.Kind == policy.Unassigned {
		return nil, apperrors.ErrRoleSelectionRequired
	}
	if actor.IsManager() {
		return nil, apperrors.ErrManagerCannotJoin
	}
	if actor.IsApprovedMember() {
		return nil, apperrors.ErrAlreadyInTeam
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	team, err := s.getTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(req.TeamCode), team.Code) {
		return nil, apperrors.ErrTeamNotFound
	}

	if err := s.userRepo.Update(ctx, actor.ID, map[string]interface{}{
		"team_id":           team.ID,
		"membership_status": models.MembershipPending,
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to request membership: %w", err)
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("Membership requested")

	user, err := s.getUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// PendingMembers lists the membership requests waiting on the manager's team
func (s *TeamService) PendingMembers(ctx context.Context, actor policy.Actor) ([]UserResponse, error) {
	if !actor.IsManager() {
		return nil, apperrors.NewAuthorizationError("only managers can review memberships")
	}
	if actor.TeamID == nil {
		return nil, apperrors.ErrTeamRequired
	}
	users, err := s.userRepo.ListByTeam(ctx, *actor.TeamID, models.MembershipPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending members: %w", err)
	}
	return toUserResponses(users), nil
}

// reviewTarget loads a pending request the manager may review. Users of other
// teams are reported as missing.
func (s *TeamService) reviewTarget(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*models.User, error) {
	if !actor.IsManager() {
		return nil, apperrors.NewAuthorizationError("only managers can review memberships")
	}
	if !actor.IsApprovedMember() {
		return nil, apperrors.ErrTeamRequired
	}
	if userID == actor.ID {
		return nil, apperrors.ErrSelfReview
	}
	target, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanReviewMembership(actor, target).Err(); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if target.MembershipStatus == nil || *target.MembershipStatus != models.MembershipPending {
		return nil, apperrors.ErrRequestNotFound
	}
	return target, nil
}

// Approve accepts a pending membership request
func (s *TeamService) Approve(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*UserResponse, error) {
	target, err := s.reviewTarget(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, target.ID, map[string]interface{}{
		"membership_status": models.MembershipApproved,
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to approve member: %w", err)
	}

	logger.WithContext(ctx).WithField("member", target.ID).Info("Membership approved")
	s.push(ctx, target.ID, notify.New(notify.KindMembershipApproved, notify.LevelSuccess,
		"Your membership request was approved.", map[string]string{"team_id": actor.TeamID.String()}))

	updated, err := s.getUser(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}

// Reject declines a pending membership request and detaches the user from the team
func (s *TeamService) Reject(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*UserResponse, error) {
	target, err := s.reviewTarget(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, target.ID, map[string]interface{}{
		"team_id":           nil,
		"membership_status": nil,
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to reject member: %w", err)
	}

	logger.WithContext(ctx).WithField("member", target.ID).Info("Membership rejected")
	s.push(ctx, target.ID, notify.New(notify.KindMembershipRejected, notify.LevelWarning,
		"Your membership request was rejected.", nil))

	updated, err := s.getUser(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}
