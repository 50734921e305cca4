package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a unit of work created by a manager and assigned to one user
type Task struct {
	BaseModel
	Title            string         `json:"title" gorm:"not null;size:255"`
	Description      string         `json:"description" gorm:"type:text"`
	Priority         TaskPriority   `json:"priority" gorm:"type:varchar(20);not null;default:'medium';index"`
	Status           TaskStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate          *time.Time     `json:"due_date"`
	EstimatedTime    *int           `json:"estimated_time"`
	ActualTime       *int           `json:"actual_time"`
	ViewedAt         *time.Time     `json:"viewed_at"`
	AssignedToUserID *uuid.UUID     `json:"assigned_to_user_id" gorm:"type:uuid;index"`
	CreatedByUserID  uuid.UUID      `json:"created_by_user_id" gorm:"type:uuid;not null;index"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	AssignedTo *User     `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToUserID;constraint:OnDelete:SET NULL"`
	CreatedBy  *User     `json:"created_by,omitempty" gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:CASCADE"`
	Subtasks   []Subtask `json:"subtasks,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsUnread reports whether the assignee has not opened the task yet
func (t *Task) IsUnread() bool {
	return t.AssignedToUserID != nil && t.ViewedAt == nil
}

// IsAssignedTo reports whether the task is assigned to the given user
func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssignedToUserID != nil && *t.AssignedToUserID == userID
}

// ProgressPercentage derives completion from the loaded subtasks. Without
// subtasks a task is either done (100) or not (0).
func (t *Task) ProgressPercentage() int {
	total := len(t.Subtasks)
	if total == 0 {
		if t.Status == TaskStatusCompleted {
			return 100
		}
		return 0
	}
	completed := 0
	for _, s := range t.Subtasks {
		if s.Status == SubtaskStatusCompleted {
			completed++
		}
	}
	return completed * 100 / total
}
