package testutils

import (
	"fmt"
	"time"

	"task-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a user without a role or team, as after sign-up
func (f *UserFactory) Create() *models.User {
	f.seq++
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      fmt.Sprintf("Test User %d", f.seq),
		Email:     fmt.Sprintf("user%d-%s@example.com", f.seq, uuid.NewString()[:8]),
	}
}

// WithRole creates a user holding role and no team
func (f *UserFactory) WithRole(role models.Role) *models.User {
	u := f.Create()
	u.Role = &role
	return u
}

// InTeam creates a user holding role with the given membership of teamID
func (f *UserFactory) InTeam(role models.Role, teamID uuid.UUID, status models.MembershipStatus) *models.User {
	u := f.WithRole(role)
	u.TeamID = &teamID
	u.MembershipStatus = &status
	return u
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	seq int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a team owned by createdBy with a unique code
func (f *TeamFactory) Create(createdBy uuid.UUID) *models.Team {
	f.seq++
	return &models.Team{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        fmt.Sprintf("Test Team %d", f.seq),
		Description: "A test team",
		Code:        fmt.Sprintf("T%07X", uint32(uuid.New().ID())&0xFFFFFFF),
		CreatedBy:   createdBy,
	}
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct {
	seq int
}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a pending medium priority task
func (f *TaskFactory) Create(createdBy, assignee uuid.UUID) *models.Task {
	f.seq++
	return &models.Task{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Title:            fmt.Sprintf("Test Task %d", f.seq),
		Description:      "A test task",
		Priority:         models.PriorityMedium,
		Status:           models.TaskStatusPending,
		AssignedToUserID: &assignee,
		CreatedByUserID:  createdBy,
	}
}

// Due creates a task due at the given time with the given status
func (f *TaskFactory) Due(createdBy, assignee uuid.UUID, due time.Time, status models.TaskStatus) *models.Task {
	t := f.Create(createdBy, assignee)
	t.DueDate = &due
	t.Status = status
	return t
}

// SubtaskFactory provides methods to create test Subtask data
type SubtaskFactory struct{}

// NewSubtaskFactory creates a new SubtaskFactory
func NewSubtaskFactory() *SubtaskFactory {
	return &SubtaskFactory{}
}

// Create creates a pending subtask of taskID at position order
func (f *SubtaskFactory) Create(taskID uuid.UUID, order int) *models.Subtask {
	return &models.Subtask{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TaskID:    taskID,
		Title:     fmt.Sprintf("Step %d", order+1),
		Status:    models.SubtaskStatusPending,
		Order:     order,
	}
}

// Insert persists every record in order and fails on the first error
func Insert(db *gorm.DB, records ...interface{}) error {
	for _, r := range records {
		if err := db.Create(r).Error; err != nil {
			return fmt.Errorf("insert %T: %w", r, err)
		}
	}
	return nil
}
