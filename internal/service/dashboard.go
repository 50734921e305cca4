package service

import (
	"context"
	"fmt"
	"time"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/repository"
	"task-manager-backend/internal/visibility"
)

const dashboardListLimit = 5

// DashboardService builds the dashboard summary
type DashboardService struct {
	taskRepo repository.TaskRepositoryInterface
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(taskRepo repository.TaskRepositoryInterface) *DashboardService {
	return &DashboardService{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// Get returns the actor's counters plus recent and upcoming tasks, split into
// mine/team for managers
func (s *DashboardService) Get(ctx context.Context, actor policy.Actor) (*DashboardResponse, error) {
	now := s.now()

	stats, err := s.taskRepo.Stats(ctx, visibility.TaskScope(actor), now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	plan, err := visibility.PlanTaskList(actor, visibility.Filters{})
	if err != nil {
		return nil, err
	}

	recent := &TaskListResponse{Kind: plan.Kind, CanManageTasks: actor.IsManager()}
	upcoming := &TaskListResponse{Kind: plan.Kind, CanManageTasks: actor.IsManager()}
	for _, part := range plan.Partitions {
		scope := part.Scope

		recentTasks, err := s.taskRepo.Recent(ctx, &scope, dashboardListLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to list recent tasks: %w", err)
		}
		upcomingTasks, err := s.taskRepo.Upcoming(ctx, &scope, now, dashboardListLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to list upcoming tasks: %w", err)
		}
		assignPartition(recent, part.Name, toTaskResponses(recentTasks))
		assignPartition(upcoming, part.Name, toTaskResponses(upcomingTasks))
	}

	return &DashboardResponse{
		Stats: DashboardStats{
			Total:      stats.Total,
			Completed:  stats.Completed,
			Pending:    stats.Pending,
			InProgress: stats.InProgress,
			Urgent:     stats.Urgent,
			Overdue:    stats.Overdue,
			ByPriority: map[string]int64{
				string(models.PriorityLow):    stats.OpenLow,
				string(models.PriorityMedium): stats.OpenMedium,
				string(models.PriorityHigh):   stats.OpenHigh,
				string(models.PriorityUrgent): stats.OpenUrgent,
			},
		},
		Recent:         recent,
		Upcoming:       upcoming,
		CanManageTasks: actor.IsManager(),
	}, nil
}

func assignPartition(resp *TaskListResponse, name visibility.PartitionName, tasks []TaskResponse) {
	switch name {
	case visibility.Mine:
		resp.MyTasks = tasks
	case visibility.Team:
		resp.TeamTasks = tasks
	default:
		resp.Data = tasks
	}
}
