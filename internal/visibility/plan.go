// Package visibility turns an actor and list filters into a query plan that
// scopes task lists to what the actor may see.
package visibility

import (
	"fmt"
	"strings"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/policy"

	"github.com/google/uuid"
)

// PlanKind tells the presentation layer how to render a list
type PlanKind string

const (
	Partitioned PlanKind = "partitioned"
	Flat        PlanKind = "flat"
)

// PartitionName identifies one section of a list
type PartitionName string

const (
	Mine     PartitionName = "mine"
	Team     PartitionName = "team"
	Assigned PartitionName = "assigned"
)

// Predicate is a parameterised SQL condition over the tasks table
type Predicate struct {
	SQL  string
	Args []interface{}
}

// Partition is one independently queried section of a task list
type Partition struct {
	Name  PartitionName
	Scope Predicate
}

// Filters are the raw list parameters a client sends
type Filters struct {
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	AssignedTo string `form:"assigned_to"`
	Search     string `form:"search"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
}

// Plan is the query specification for one task list request
type Plan struct {
	Kind       PlanKind
	Partitions []Partition
	// Conditions are ANDed onto every partition
	Conditions []Predicate
	OrderBy    string
	// Acknowledge marks the actor's unread tasks as viewed once served
	Acknowledge bool
}

// Partition returns the named partition
func (p Plan) Partition(name PartitionName) (Partition, bool) {
	for _, part := range p.Partitions {
		if part.Name == name {
			return part, true
		}
	}
	return Partition{}, false
}

const (
	DefaultSortColumn = "created_at"
	DefaultSortOrder  = "desc"
)

var sortColumns = map[string]struct{}{
	"id":             {},
	"title":          {},
	"description":    {},
	"priority":       {},
	"status":         {},
	"due_date":       {},
	"estimated_time": {},
	"actual_time":    {},
	"viewed_at":      {},
	"created_at":     {},
	"updated_at":     {},
}

// AssignedTo scopes tasks to the given assignee
func AssignedTo(userID uuid.UUID) Predicate {
	return Predicate{SQL: "assigned_to_user_id = ?", Args: []interface{}{userID}}
}

// NotAssignedTo matches tasks assigned to someone else or to nobody.
// Parenthesised so further conditions AND onto the whole disjunction.
func NotAssignedTo(userID uuid.UUID) Predicate {
	return Predicate{SQL: "(assigned_to_user_id <> ? OR assigned_to_user_id IS NULL)", Args: []interface{}{userID}}
}

// TaskScope is the set of tasks an actor's aggregate statistics range over.
// Nil means every task.
func TaskScope(actor policy.Actor) *Predicate {
	if actor.IsManager() {
		return nil
	}
	p := AssignedTo(actor.ID)
	return &p
}

// PlanTaskList builds the list plan for an actor
func PlanTaskList(actor policy.Actor, f Filters) (Plan, error) {
	plan := Plan{}

	if actor.IsManager() {
		plan.Kind = Partitioned
		plan.Partitions = []Partition{
			{Name: Mine, Scope: AssignedTo(actor.ID)},
			{Name: Team, Scope: NotAssignedTo(actor.ID)},
		}
	} else {
		plan.Kind = Flat
		plan.Partitions = []Partition{{Name: Assigned, Scope: AssignedTo(actor.ID)}}
		plan.Acknowledge = true
	}

	if s := strings.TrimSpace(f.Status); s != "" {
		status := models.TaskStatus(s)
		if !status.IsValid() {
			return Plan{}, apperrors.NewValidationError("status", "must be one of pending, in_progress, completed, cancelled")
		}
		plan.Conditions = append(plan.Conditions, Predicate{SQL: "status = ?", Args: []interface{}{status}})
	}

	if p := strings.TrimSpace(f.Priority); p != "" {
		priority := models.TaskPriority(p)
		if !priority.IsValid() {
			return Plan{}, apperrors.NewValidationError("priority", "must be one of low, medium, high, urgent")
		}
		plan.Conditions = append(plan.Conditions, Predicate{SQL: "priority = ?", Args: []interface{}{priority}})
	}

	// Members only ever see their own tasks, so the assignee filter is ignored for them.
	if a := strings.TrimSpace(f.AssignedTo); a != "" && actor.IsManager() {
		assignee, err := uuid.Parse(a)
		if err != nil {
			return Plan{}, apperrors.NewValidationError("assigned_to", "must be a valid UUID")
		}
		plan.Conditions = append(plan.Conditions, AssignedTo(assignee))
	}

	if q := strings.TrimSpace(f.Search); q != "" {
		pattern := "%" + EscapeLike(q) + "%"
		plan.Conditions = append(plan.Conditions, Predicate{
			SQL:  `(title ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\')`,
			Args: []interface{}{pattern, pattern},
		})
	}

	plan.OrderBy = orderBy(f.SortBy, f.SortOrder)
	return plan, nil
}

// EscapeLike neutralises LIKE wildcards so user input matches literally
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func orderBy(sortBy, sortOrder string) string {
	column := DefaultSortColumn
	if _, ok := sortColumns[strings.ToLower(strings.TrimSpace(sortBy))]; ok {
		column = strings.ToLower(strings.TrimSpace(sortBy))
	}
	direction := DefaultSortOrder
	switch strings.ToLower(strings.TrimSpace(sortOrder)) {
	case "asc":
		direction = "asc"
	case "desc":
		direction = "desc"
	}
	return fmt.Sprintf("%s %s", column, direction)
}
