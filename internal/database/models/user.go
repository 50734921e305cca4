package models

import (
	"github.com/google/uuid"
)

// User is an account known to the task manager. Credentials live with the
// auth provider; the token subject is the user's ID.
type User struct {
	BaseModel
	Name             string            `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Email            string            `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role             *Role             `json:"role" gorm:"type:varchar(50);index"`
	TeamID           *uuid.UUID        `json:"team_id,omitempty" gorm:"type:uuid;index"`
	MembershipStatus *MembershipStatus `json:"membership_status,omitempty" gorm:"type:varchar(20);index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasRole reports whether a role has been chosen
func (u *User) HasRole() bool {
	return u.Role != nil && *u.Role != ""
}

// IsApprovedMember reports whether the user is an approved member of a team
func (u *User) IsApprovedMember() bool {
	return u.TeamID != nil && u.MembershipStatus != nil && *u.MembershipStatus == MembershipApproved
}

// HasPendingMembership reports whether the user is waiting for team approval
func (u *User) HasPendingMembership() bool {
	return u.TeamID != nil && u.MembershipStatus != nil && *u.MembershipStatus == MembershipPending
}
