package models

// Role is the concrete role a user holds. A nil *Role on User means the user
// has not chosen a role yet.
type Role string

const (
	RoleSuperadmin              Role = "superadmin"
	RoleProjectManager          Role = "project_manager"
	RoleFrontendDeveloper       Role = "frontend_developer"
	RoleBackendDeveloper        Role = "backend_developer"
	RoleTechnicalWriter         Role = "technical_writer"
	RoleSystemAnalyst           Role = "system_analyst"
	RoleMemberPendingAssignment Role = "member_pending_assignment"
)

// AllRoles lists every role in display order
var AllRoles = []Role{
	RoleSuperadmin,
	RoleProjectManager,
	RoleFrontendDeveloper,
	RoleBackendDeveloper,
	RoleTechnicalWriter,
	RoleSystemAnalyst,
	RoleMemberPendingAssignment,
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperadmin, RoleProjectManager, RoleFrontendDeveloper, RoleBackendDeveloper,
		RoleTechnicalWriter, RoleSystemAnalyst, RoleMemberPendingAssignment:
		return true
	}
	return false
}

// Label is the human readable name of a role
func (r Role) Label() string {
	switch r {
	case RoleSuperadmin, RoleProjectManager:
		return "Project Manager"
	case RoleFrontendDeveloper:
		return "Frontend Developer"
	case RoleBackendDeveloper:
		return "Backend Developer"
	case RoleTechnicalWriter:
		return "Technical Writer"
	case RoleSystemAnalyst:
		return "System Analyst"
	case RoleMemberPendingAssignment:
		return "Team Member"
	}
	return "Unknown"
}

// MembershipStatus is the state of a user's request to join a team
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipRejected MembershipStatus = "rejected"
)

// IsValid checks if the MembershipStatus is valid
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipPending, MembershipApproved, MembershipRejected:
		return true
	}
	return false
}

// TaskPriority defines how urgent a task is
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskStatus defines the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the task still needs work
func (s TaskStatus) IsOpen() bool {
	return s != TaskStatusCompleted && s != TaskStatusCancelled
}

// SubtaskStatus defines the lifecycle state of a subtask
type SubtaskStatus string

const (
	SubtaskStatusPending    SubtaskStatus = "pending"
	SubtaskStatusInProgress SubtaskStatus = "in_progress"
	SubtaskStatusCompleted  SubtaskStatus = "completed"
)

// IsValid checks if the SubtaskStatus is valid
func (s SubtaskStatus) IsValid() bool {
	switch s {
	case SubtaskStatusPending, SubtaskStatusInProgress, SubtaskStatusCompleted:
		return true
	}
	return false
}
