package policy

import (
	"task-manager-backend/internal/database/models"
)

const (
	reasonViewTask    = "you are not allowed to view this task"
	reasonCreateTask  = "only managers can create tasks"
	reasonUpdateTask  = "you are not allowed to update this task"
	reasonDeleteTask  = "only the manager who created this task can delete it"
	reasonRestoreTask = "only the manager who created this task can restore it"
	reasonAssignTasks = "only managers can assign tasks"
)

// CanViewTask: managers see every task, members only their own
func CanViewTask(actor Actor, task *models.Task) Decision {
	if actor.IsManager() {
		return Allow()
	}
	return allowIf(task.IsAssignedTo(actor.ID), reasonViewTask)
}

// CanCreateTask allows managers only
func CanCreateTask(actor Actor) Decision {
	return allowIf(actor.IsManager(), reasonCreateTask)
}

// CanUpdateTask: managers may update every task, members only their own.
// Which fields a member may touch is decided by the caller.
func CanUpdateTask(actor Actor, task *models.Task) Decision {
	if actor.IsManager() {
		return Allow()
	}
	return allowIf(task.IsAssignedTo(actor.ID), reasonUpdateTask)
}

// CanDeleteTask requires a manager who also created the task. Being the
// assignee is never enough.
func CanDeleteTask(actor Actor, task *models.Task) Decision {
	return allowIf(actor.IsManager() && task.CreatedByUserID == actor.ID, reasonDeleteTask)
}

// CanRestoreTask follows the delete rule
func CanRestoreTask(actor Actor, task *models.Task) Decision {
	return allowIf(actor.IsManager() && task.CreatedByUserID == actor.ID, reasonRestoreTask)
}

// CanAssignTasks allows managers only
func CanAssignTasks(actor Actor) Decision {
	return allowIf(actor.IsManager(), reasonAssignTasks)
}
