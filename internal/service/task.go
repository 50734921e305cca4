package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/logger"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/repository"
	"task-manager-backend/internal/visibility"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title            string              `json:"title" validate:"required,max=255"`
	Description      string              `json:"description"`
	Priority         models.TaskPriority `json:"priority" validate:"required,oneof=low medium high urgent"`
	DueDate          *string             `json:"due_date"`
	EstimatedTime    *int                `json:"estimated_time" validate:"omitnil,gte=1"`
	AssignedToUserID uuid.UUID           `json:"assigned_to_user_id" validate:"required"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title            *string              `json:"title" validate:"omitnil,min=1,max=255"`
	Description      *string              `json:"description"`
	Priority         *models.TaskPriority `json:"priority" validate:"omitnil,oneof=low medium high urgent"`
	Status           *models.TaskStatus   `json:"status" validate:"omitnil,oneof=pending in_progress completed cancelled"`
	DueDate          *string              `json:"due_date"`
	EstimatedTime    *int                 `json:"estimated_time" validate:"omitnil,gte=1"`
	ActualTime       *int                 `json:"actual_time" validate:"omitnil,gte=0"`
	AssignedToUserID *uuid.UUID           `json:"assigned_to_user_id"`
}

// RestrictTo drops the fields the actor may not change. Members may only
// move status and log actual time.
func (r *UpdateTaskRequest) RestrictTo(actor policy.Actor) {
	if actor.IsManager() {
		return
	}
	r.Title = nil
	r.Description = nil
	r.Priority = nil
	r.DueDate = nil
	r.EstimatedTime = nil
	r.AssignedToUserID = nil
}

var dueDateLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(*raw), time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError("due_date", "must be a date (YYYY-MM-DD) or an RFC3339 timestamp")
}

func (s *TaskService) getTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// getVisibleTask loads a task the actor may view. Tasks outside the actor's
// view are reported as missing so their existence does not leak.
func (s *TaskService) getVisibleTask(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.Task, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewTask(actor, task).Allowed {
		return nil, apperrors.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) ensureUserExists(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("assigned_to_user_id", "user does not exist")
		}
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	return nil
}

// ListTasks returns the actor's visible tasks without side effects
func (s *TaskService) ListTasks(ctx context.Context, actor policy.Actor, filters visibility.Filters) (*TaskListResponse, error) {
	plan, err := visibility.PlanTaskList(actor, filters)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, actor, plan)
}

// ListAndAcknowledge returns the visible tasks and, for members, marks the
// listed unread tasks as viewed. Only tasks unchanged since the list snapshot
// are acknowledged.
func (s *TaskService) ListAndAcknowledge(ctx context.Context, actor policy.Actor, filters visibility.Filters) (*TaskListResponse, error) {
	plan, err := visibility.PlanTaskList(actor, filters)
	if err != nil {
		return nil, err
	}

	snapshot := time.Now()
	resp, err := s.list(ctx, actor, plan)
	if err != nil {
		return nil, err
	}

	if plan.Acknowledge {
		marked, err := s.repo.MarkAssignedAsRead(ctx, actor.ID, snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to mark tasks as read: %w", err)
		}
		if marked > 0 {
			logger.WithContext(ctx).WithField("count", marked).Debug("Marked assigned tasks as read")
		}
	}
	return resp, nil
}

func (s *TaskService) list(ctx context.Context, actor policy.Actor, plan visibility.Plan) (*TaskListResponse, error) {
	resp := &TaskListResponse{Kind: plan.Kind, CanManageTasks: actor.IsManager()}
	for _, part := range plan.Partitions {
		tasks, err := s.repo.ListPartition(ctx, part, plan.Conditions, plan.OrderBy)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s tasks: %w", part.Name, err)
		}
		assignPartition(resp, part.Name, toTaskResponses(tasks))
	}
	return resp, nil
}

// UnreadCount counts the actor's unread assigned tasks; managers always have none
func (s *TaskService) UnreadCount(ctx context.Context, actor policy.Actor) (int64, error) {
	if actor.IsManager() {
		return 0, nil
	}
	count, err := s.repo.CountUnread(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread tasks: %w", err)
	}
	return count, nil
}

// GetTask returns a task the actor may view
func (s *TaskService) GetTask(ctx context.Context, actor policy.Actor, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.getVisibleTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// CreateTask creates a task assigned to an existing user
func (s *TaskService) CreateTask(ctx context.Context, actor policy.Actor, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := policy.CanCreateTask(actor).Err(); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(ctx, req.AssignedToUserID); err != nil {
		return nil, err
	}

	assignee := req.AssignedToUserID
	task := &models.Task{
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Priority:         req.Priority,
		Status:           models.TaskStatusPending,
		DueDate:          dueDate,
		EstimatedTime:    req.EstimatedTime,
		AssignedToUserID: &assignee,
		CreatedByUserID:  actor.ID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"task_id":  task.ID,
		"assignee": assignee,
	}).Info("Task created")

	return s.reload(ctx, task.ID)
}

// UpdateTask applies the fields the actor is allowed to change
func (s *TaskService) UpdateTask(ctx context.Context, actor policy.Actor, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	task, err := s.getVisibleTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanUpdateTask(actor, task).Err(); err != nil {
		return nil, err
	}

	req.RestrictTo(actor)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		updates["due_date"] = dueDate
	}
	if req.EstimatedTime != nil {
		updates["estimated_time"] = *req.EstimatedTime
	}
	if req.ActualTime != nil {
		updates["actual_time"] = *req.ActualTime
	}
	if req.AssignedToUserID != nil && !task.IsAssignedTo(*req.AssignedToUserID) {
		if err := policy.CanAssignTasks(actor).Err(); err != nil {
			return nil, err
		}
		if err := s.ensureUserExists(ctx, *req.AssignedToUserID); err != nil {
			return nil, err
		}
		updates["assigned_to_user_id"] = *req.AssignedToUserID
		// the new assignee has not seen it yet
		updates["viewed_at"] = nil
	}

	if len(updates) == 0 {
		return toTaskResponse(task), nil
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return s.reload(ctx, id)
}

// DeleteTask soft-deletes a task created by the acting manager
func (s *TaskService) DeleteTask(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	task, err := s.getVisibleTask(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := policy.CanDeleteTask(actor, task).Err(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	logger.WithContext(ctx).WithField("task_id", id).Info("Task deleted")
	return nil
}

// RestoreTask brings back a soft-deleted task
func (s *TaskService) RestoreTask(ctx context.Context, actor policy.Actor, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetDeletedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get deleted task: %w", err)
	}
	if err := policy.CanRestoreTask(actor, task).Err(); err != nil {
		return nil, err
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotDeleted
		}
		return nil, fmt.Errorf("failed to restore task: %w", err)
	}
	return s.reload(ctx, id)
}

func (s *TaskService) reload(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}
