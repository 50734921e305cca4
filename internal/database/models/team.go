package models

import (
	"github.com/google/uuid"
)

// Team groups a manager with the members working on their tasks
type Team struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Description string    `json:"description" gorm:"size:1000" validate:"max=1000"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null;size:8"`
	Photo       *string   `json:"photo,omitempty" gorm:"size:2048"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index"`

	// Relationships
	Members []User `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
