package repository

import (
	"context"
	"time"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/visibility"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, status models.MembershipStatus) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	MaxUpdatedAt(ctx context.Context, teamID uuid.UUID, status models.MembershipStatus) (*time.Time, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithOwner(ctx context.Context, team *models.Team, ownerID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	CodeExists(ctx context.Context, code string) (bool, error)
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetDeletedByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	ListPartition(ctx context.Context, partition visibility.Partition, conditions []visibility.Predicate, orderBy string) ([]models.Task, error)
	MarkAssignedAsRead(ctx context.Context, userID uuid.UUID, snapshot time.Time) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MaxUpdatedAt(ctx context.Context, scope *visibility.Predicate) (*time.Time, error)
	Stats(ctx context.Context, scope *visibility.Predicate, now time.Time) (*TaskStats, error)
	Recent(ctx context.Context, scope *visibility.Predicate, limit int) ([]models.Task, error)
	Upcoming(ctx context.Context, scope *visibility.Predicate, now time.Time, limit int) ([]models.Task, error)
}

// SubtaskRepositoryInterface defines the interface for subtask repository operations
type SubtaskRepositoryInterface interface {
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Subtask, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Subtask, error)
	Append(ctx context.Context, subtask *models.Subtask) error
	Update(ctx context.Context, subtask *models.Subtask, updates map[string]interface{}) error
	Delete(ctx context.Context, subtask *models.Subtask) error
	CountOwned(ctx context.Context, taskID uuid.UUID, ids []uuid.UUID) (int64, error)
	SetOrder(ctx context.Context, taskID uuid.UUID, orders map[uuid.UUID]int) error
}
