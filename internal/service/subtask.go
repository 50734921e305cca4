package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubtaskService handles business logic for subtasks. Every operation is
// gated by the update rule of the parent task.
type SubtaskService struct {
	repo      repository.SubtaskRepositoryInterface
	taskRepo  repository.TaskRepositoryInterface
	validator *validator.Validate
}

// NewSubtaskService creates a new subtask service
func NewSubtaskService(repo repository.SubtaskRepositoryInterface, taskRepo repository.TaskRepositoryInterface, validator *validator.Validate) *SubtaskService {
	return &SubtaskService{
		repo:      repo,
		taskRepo:  taskRepo,
		validator: validator,
	}
}

// CreateSubtaskRequest represents the request to create a subtask
type CreateSubtaskRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description"`
	EstimatedTime *int   `json:"estimated_time" validate:"omitnil,gte=1"`
}

// UpdateSubtaskRequest represents a partial subtask update
type UpdateSubtaskRequest struct {
	TaskID        *uuid.UUID            `json:"task_id"`
	Title         *string               `json:"title" validate:"omitnil,min=1,max=255"`
	Description   *string               `json:"description"`
	Status        *models.SubtaskStatus `json:"status" validate:"omitnil,oneof=pending in_progress completed"`
	Order         *int                  `json:"order" validate:"omitnil,gte=0"`
	EstimatedTime *int                  `json:"estimated_time" validate:"omitnil,gte=1"`
}

// SubtaskOrder is one entry of a reorder request
type SubtaskOrder struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Order *int      `json:"order" validate:"required,gte=0"`
}

// ReorderSubtasksRequest represents the request to reorder subtasks
type ReorderSubtasksRequest struct {
	Subtasks []SubtaskOrder `json:"subtasks" validate:"required,min=1,dive"`
}

// authorizeParent loads the parent task and checks the actor may update it.
// A task the actor cannot see is reported as missing.
func (s *SubtaskService) authorizeParent(ctx context.Context, actor policy.Actor, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !policy.CanViewTask(actor, task).Allowed {
		return nil, apperrors.ErrTaskNotFound
	}
	if err := policy.CanUpdateTask(actor, task).Err(); err != nil {
		return nil, err
	}
	return task, nil
}

// getOwned loads a subtask and makes sure it belongs to the task. A subtask
// of another task is reported as missing.
func (s *SubtaskService) getOwned(ctx context.Context, taskID, subtaskID uuid.UUID) (*models.Subtask, error) {
	subtask, err := s.repo.GetByID(ctx, subtaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubtaskNotFound
		}
		return nil, fmt.Errorf("failed to get subtask: %w", err)
	}
	if subtask.TaskID != taskID {
		return nil, apperrors.ErrSubtaskNotFound
	}
	return subtask, nil
}

// List returns the task's subtasks in order
func (s *SubtaskService) List(ctx context.Context, actor policy.Actor, taskID uuid.UUID) ([]SubtaskResponse, error) {
	if _, err := s.authorizeParent(ctx, actor, taskID); err != nil {
		return nil, err
	}
	subtasks, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return toSubtaskResponses(subtasks), nil
}

// Create appends a subtask to the task
func (s *SubtaskService) Create(ctx context.Context, actor policy.Actor, taskID uuid.UUID, req *CreateSubtaskRequest) (*SubtaskResponse, error) {
	if _, err := s.authorizeParent(ctx, actor, taskID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	subtask := &models.Subtask{
		TaskID:        taskID,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Status:        models.SubtaskStatusPending,
		EstimatedTime: req.EstimatedTime,
	}
	if err := s.repo.Append(ctx, subtask); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}
	return toSubtaskResponse(subtask), nil
}

// Update changes a subtask of the task
func (s *SubtaskService) Update(ctx context.Context, actor policy.Actor, taskID, subtaskID uuid.UUID, req *UpdateSubtaskRequest) (*SubtaskResponse, error) {
	if _, err := s.authorizeParent(ctx, actor, taskID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	subtask, err := s.getOwned(ctx, taskID, subtaskID)
	if err != nil {
		return nil, err
	}
	if req.TaskID != nil && *req.TaskID != taskID {
		return nil, apperrors.ErrSubtaskParentChange
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
		subtask.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		subtask.Description = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		subtask.Status = *req.Status
	}
	if req.Order != nil {
		updates["order"] = *req.Order
		subtask.Order = *req.Order
	}
	if req.EstimatedTime != nil {
		updates["estimated_time"] = *req.EstimatedTime
		subtask.EstimatedTime = req.EstimatedTime
	}
	if len(updates) == 0 {
		return toSubtaskResponse(subtask), nil
	}

	if err := s.repo.Update(ctx, subtask, updates); err != nil {
		return nil, fmt.Errorf("failed to update subtask: %w", err)
	}
	return toSubtaskResponse(subtask), nil
}

// Delete removes a subtask of the task
func (s *SubtaskService) Delete(ctx context.Context, actor policy.Actor, taskID, subtaskID uuid.UUID) error {
	if _, err := s.authorizeParent(ctx, actor, taskID); err != nil {
		return err
	}
	subtask, err := s.getOwned(ctx, taskID, subtaskID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, subtask); err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	return nil
}

// Reorder sets new positions for the task's subtasks. Every id must belong
// to the task; otherwise nothing is written.
func (s *SubtaskService) Reorder(ctx context.Context, actor policy.Actor, taskID uuid.UUID, req *ReorderSubtasksRequest) error {
	if _, err := s.authorizeParent(ctx, actor, taskID); err != nil {
		return err
	}
	if err := s.validator.Struct(req); err != nil {
		return apperrors.FromValidator(err)
	}

	orders := make(map[uuid.UUID]int, len(req.Subtasks))
	ids := make([]uuid.UUID, 0, len(req.Subtasks))
	for _, item := range req.Subtasks {
		if _, dup := orders[item.ID]; !dup {
			ids = append(ids, item.ID)
		}
		orders[item.ID] = *item.Order
	}

	owned, err := s.repo.CountOwned(ctx, taskID, ids)
	if err != nil {
		return fmt.Errorf("failed to verify subtasks: %w", err)
	}
	if owned != int64(len(ids)) {
		return apperrors.ErrSubtaskForeignParent
	}

	if err := s.repo.SetOrder(ctx, taskID, orders); err != nil {
		return fmt.Errorf("failed to reorder subtasks: %w", err)
	}
	return nil
}
