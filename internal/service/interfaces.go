package service

import (
	"context"

	"task-manager-backend/internal/changes"
	"task-manager-backend/internal/notify"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/visibility"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	ListTasks(ctx context.Context, actor policy.Actor, filters visibility.Filters) (*TaskListResponse, error)
	ListAndAcknowledge(ctx context.Context, actor policy.Actor, filters visibility.Filters) (*TaskListResponse, error)
	UnreadCount(ctx context.Context, actor policy.Actor) (int64, error)
	GetTask(ctx context.Context, actor policy.Actor, id uuid.UUID) (*TaskResponse, error)
	CreateTask(ctx context.Context, actor policy.Actor, req *CreateTaskRequest) (*TaskResponse, error)
	UpdateTask(ctx context.Context, actor policy.Actor, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, actor policy.Actor, id uuid.UUID) error
	RestoreTask(ctx context.Context, actor policy.Actor, id uuid.UUID) (*TaskResponse, error)
}

// SubtaskServiceInterface defines the interface for subtask service
type SubtaskServiceInterface interface {
	List(ctx context.Context, actor policy.Actor, taskID uuid.UUID) ([]SubtaskResponse, error)
	Create(ctx context.Context, actor policy.Actor, taskID uuid.UUID, req *CreateSubtaskRequest) (*SubtaskResponse, error)
	Update(ctx context.Context, actor policy.Actor, taskID, subtaskID uuid.UUID, req *UpdateSubtaskRequest) (*SubtaskResponse, error)
	Delete(ctx context.Context, actor policy.Actor, taskID, subtaskID uuid.UUID) error
	Reorder(ctx context.Context, actor policy.Actor, taskID uuid.UUID, req *ReorderSubtasksRequest) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	LoadActor(ctx context.Context, userID uuid.UUID) (policy.Actor, error)
	ListUsers(ctx context.Context, actor policy.Actor) ([]UserSummary, error)
	ListTeamMembers(ctx context.Context, actor policy.Actor) ([]UserResponse, error)
	UpdateRole(ctx context.Context, actor policy.Actor, targetID uuid.UUID, req *UpdateRoleRequest) (*UserResponse, error)
}

// OnboardingServiceInterface defines the interface for onboarding service
type OnboardingServiceInterface interface {
	Profile(ctx context.Context, actor policy.Actor) (*ProfileResponse, error)
	SelectRole(ctx context.Context, actor policy.Actor, req *SelectRoleRequest) (*ProfileResponse, error)
	Cancel(ctx context.Context, actor policy.Actor) (*ProfileResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, actor policy.Actor, req *CreateTeamRequest) (*TeamResponse, error)
	List(ctx context.Context) ([]TeamSummary, error)
	Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*TeamResponse, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Join(ctx context.Context, actor policy.Actor, req *JoinTeamRequest) (*UserResponse, error)
	PendingMembers(ctx context.Context, actor policy.Actor) ([]UserResponse, error)
	Approve(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*UserResponse, error)
	Reject(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*UserResponse, error)
}

// UpdateCheckServiceInterface defines the interface for the change-detection checks
type UpdateCheckServiceInterface interface {
	CheckTasks(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error)
	CheckDashboard(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error)
	CheckUnread(ctx context.Context, actor policy.Actor, lastCount string) (*changes.CountResult, error)
	CheckUsers(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error)
	CheckPendingMembers(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Get(ctx context.Context, actor policy.Actor) (*DashboardResponse, error)
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Drain(ctx context.Context, actor policy.Actor) ([]notify.Notification, error)
}
