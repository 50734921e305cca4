package models

import (
	"github.com/google/uuid"
)

// Subtask is an ordered checklist item of a task
type Subtask struct {
	BaseModel
	TaskID        uuid.UUID     `json:"task_id" gorm:"type:uuid;not null;index"`
	Title         string        `json:"title" gorm:"not null;size:255"`
	Description   string        `json:"description" gorm:"type:text"`
	Status        SubtaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Order         int           `json:"order" gorm:"column:order;not null;default:0"`
	EstimatedTime *int          `json:"estimated_time"`
}

// TableName returns the table name for Subtask
func (Subtask) TableName() string {
	return "subtasks"
}
