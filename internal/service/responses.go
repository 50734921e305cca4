package service

import (
	"encoding/json"
	"time"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/visibility"

	"github.com/google/uuid"
)

// UserSummary is the short user shape used in dropdowns and on tasks
type UserSummary struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Role  *models.Role `json:"role"`
}

// UserResponse represents a user with team membership
type UserResponse struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	Email            string                   `json:"email"`
	Role             *models.Role             `json:"role"`
	RoleLabel        string                   `json:"role_label"`
	TeamID           *uuid.UUID               `json:"team_id"`
	MembershipStatus *models.MembershipStatus `json:"membership_status"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// SubtaskResponse represents a subtask
type SubtaskResponse struct {
	ID            uuid.UUID            `json:"id"`
	TaskID        uuid.UUID            `json:"task_id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Status        models.SubtaskStatus `json:"status"`
	Order         int                  `json:"order"`
	EstimatedTime *int                 `json:"estimated_time"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// TaskResponse represents a task with its subtasks and derived progress
type TaskResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Priority           models.TaskPriority `json:"priority"`
	Status             models.TaskStatus   `json:"status"`
	DueDate            *time.Time          `json:"due_date"`
	EstimatedTime      *int                `json:"estimated_time"`
	ActualTime         *int                `json:"actual_time"`
	ViewedAt           *time.Time          `json:"viewed_at"`
	IsUnread           bool                `json:"is_unread"`
	ProgressPercentage int                 `json:"progress_percentage"`
	AssignedToUserID   *uuid.UUID          `json:"assigned_to_user_id"`
	CreatedByUserID    uuid.UUID           `json:"created_by_user_id"`
	AssignedTo         *UserSummary        `json:"assigned_to"`
	CreatedBy          *UserSummary        `json:"created_by"`
	Subtasks           []SubtaskResponse   `json:"subtasks"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// TaskListResponse is either a partitioned list (managers) or a flat one (members)
type TaskListResponse struct {
	Kind           visibility.PlanKind
	MyTasks        []TaskResponse
	TeamTasks      []TaskResponse
	Data           []TaskResponse
	CanManageTasks bool
}

// MarshalJSON emits only the fields of the active variant
func (r TaskListResponse) MarshalJSON() ([]byte, error) {
	if r.Kind == visibility.Partitioned {
		return json.Marshal(struct {
			Kind           visibility.PlanKind `json:"kind"`
			MyTasks        []TaskResponse      `json:"myTasks"`
			TeamTasks      []TaskResponse      `json:"teamTasks"`
			CanManageTasks bool                `json:"canManageTasks"`
		}{r.Kind, nonNil(r.MyTasks), nonNil(r.TeamTasks), r.CanManageTasks})
	}
	return json.Marshal(struct {
		Kind           visibility.PlanKind `json:"kind"`
		Data           []TaskResponse      `json:"data"`
		CanManageTasks bool                `json:"canManageTasks"`
	}{visibility.Flat, nonNil(r.Data), r.CanManageTasks})
}

func nonNil(tasks []TaskResponse) []TaskResponse {
	if tasks == nil {
		return []TaskResponse{}
	}
	return tasks
}

// TeamSummary is the short team shape shown on the join screen
type TeamSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Photo *string   `json:"photo"`
}

// TeamResponse represents a team
type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	Photo       *string   `json:"photo"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OnboardingStage is where a user is in the role/team setup flow
type OnboardingStage string

const (
	StageRoleSelection   OnboardingStage = "role_selection"
	StageCreateTeam      OnboardingStage = "create_team"
	StageJoinTeam        OnboardingStage = "join_team"
	StagePendingApproval OnboardingStage = "pending_approval"
	StageReady           OnboardingStage = "ready"
)

// ProfileResponse is the current user's profile and onboarding state
type ProfileResponse struct {
	User           UserResponse    `json:"user"`
	Team           *TeamSummary    `json:"team"`
	CanManageTasks bool            `json:"can_manage_tasks"`
	Stage          OnboardingStage `json:"stage"`
}

// DashboardResponse holds scoped statistics and short task lists
type DashboardResponse struct {
	Stats          DashboardStats    `json:"stats"`
	Recent         *TaskListResponse `json:"recent"`
	Upcoming       *TaskListResponse `json:"upcoming"`
	CanManageTasks bool              `json:"canManageTasks"`
}

// DashboardStats are the dashboard counters
type DashboardStats struct {
	Total      int64            `json:"total"`
	Completed  int64            `json:"completed"`
	Pending    int64            `json:"pending"`
	InProgress int64            `json:"in_progress"`
	Urgent     int64            `json:"urgent"`
	Overdue    int64            `json:"overdue"`
	ByPriority map[string]int64 `json:"by_priority"`
}

func toUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func toUserResponse(u *models.User) *UserResponse {
	label := "Unknown"
	if u.Role != nil {
		label = u.Role.Label()
	}
	return &UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		RoleLabel:        label,
		TeamID:           u.TeamID,
		MembershipStatus: u.MembershipStatus,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out
}

func toSubtaskResponse(s *models.Subtask) *SubtaskResponse {
	return &SubtaskResponse{
		ID:            s.ID,
		TaskID:        s.TaskID,
		Title:         s.Title,
		Description:   s.Description,
		Status:        s.Status,
		Order:         s.Order,
		EstimatedTime: s.EstimatedTime,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toSubtaskResponses(subtasks []models.Subtask) []SubtaskResponse {
	out := make([]SubtaskResponse, 0, len(subtasks))
	for i := range subtasks {
		out = append(out, *toSubtaskResponse(&subtasks[i]))
	}
	return out
}

func toTaskResponse(t *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Priority:           t.Priority,
		Status:             t.Status,
		DueDate:            t.DueDate,
		EstimatedTime:      t.EstimatedTime,
		ActualTime:         t.ActualTime,
		ViewedAt:           t.ViewedAt,
		IsUnread:           t.IsUnread(),
		ProgressPercentage: t.ProgressPercentage(),
		AssignedToUserID:   t.AssignedToUserID,
		CreatedByUserID:    t.CreatedByUserID,
		AssignedTo:         toUserSummary(t.AssignedTo),
		CreatedBy:          toUserSummary(t.CreatedBy),
		Subtasks:           toSubtaskResponses(t.Subtasks),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func toTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *toTaskResponse(&tasks[i]))
	}
	return out
}

func toTeamResponse(t *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Code:        t.Code,
		Photo:       t.Photo,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
