package repository

import (
	"context"
	"time"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/visibility"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStats are the dashboard counters over a set of tasks
type TaskStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Urgent     int64 `json:"urgent"`
	Overdue    int64 `json:"overdue"`
	OpenLow    int64 `json:"open_low"`
	OpenMedium int64 `json:"open_medium"`
	OpenHigh   int64 `json:"open_high"`
	OpenUrgent int64 `json:"open_urgent"`
}

const openTask = `status NOT IN ('completed', 'cancelled')`

const statsSelect = `COUNT(*) AS total,
	COUNT(*) FILTER (WHERE status = 'completed') AS completed,
	COUNT(*) FILTER (WHERE status = 'pending') AS pending,
	COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress,
	COUNT(*) FILTER (WHERE priority = 'urgent' AND ` + openTask + `) AS urgent,
	COUNT(*) FILTER (WHERE due_date < ? AND ` + openTask + `) AS overdue,
	COUNT(*) FILTER (WHERE priority = 'low' AND ` + openTask + `) AS open_low,
	COUNT(*) FILTER (WHERE priority = 'medium' AND ` + openTask + `) AS open_medium,
	COUNT(*) FILTER (WHERE priority = 'high' AND ` + openTask + `) AS open_high,
	COUNT(*) FILTER (WHERE priority = 'urgent' AND ` + openTask + `) AS open_urgent`

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// withRelations loads subtasks in display order plus both users
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" asc`)
		}).
		Preload("AssignedTo").
		Preload("CreatedBy")
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a live task with its subtasks and users
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := withRelations(r.db.WithContext(ctx)).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetDeletedByID retrieves a soft-deleted task
func (r *TaskRepository) GetDeletedByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial update to a live task
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	result := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft-deletes a task
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Restore clears deleted_at and bumps updated_at so watermarks move
func (r *TaskRepository) Restore(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Unscoped().Model(&models.Task{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(map[string]interface{}{"deleted_at": nil, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPartition returns one partition of a task list with every filter applied
func (r *TaskRepository) ListPartition(ctx context.Context, partition visibility.Partition, conditions []visibility.Predicate, orderBy string) ([]models.Task, error) {
	query := withRelations(r.db.WithContext(ctx)).Where(partition.Scope.SQL, partition.Scope.Args...)
	for _, c := range conditions {
		query = query.Where(c.SQL, c.Args...)
	}
	if orderBy == "" {
		orderBy = visibility.DefaultSortColumn + " " + visibility.DefaultSortOrder
	}

	tasks := []models.Task{}
	if err := query.Order(orderBy).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// MarkAssignedAsRead sets viewed_at on the user's unread tasks that have not
// changed since snapshot. Tasks assigned or edited after the snapshot stay unread.
func (r *TaskRepository) MarkAssignedAsRead(ctx context.Context, userID uuid.UUID, snapshot time.Time) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("assigned_to_user_id = ? AND viewed_at IS NULL AND updated_at <= ?", userID, snapshot).
		Updates(map[string]interface{}{"viewed_at": now, "updated_at": now})
	return result.RowsAffected, result.Error
}

// CountUnread counts the user's assigned tasks not yet viewed
func (r *TaskRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("assigned_to_user_id = ? AND viewed_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

// MaxUpdatedAt is the newest updated_at over the scoped live tasks
func (r *TaskRepository) MaxUpdatedAt(ctx context.Context, scope *visibility.Predicate) (*time.Time, error) {
	return maxUpdatedAt(withScope(r.db.WithContext(ctx).Model(&models.Task{}), scope))
}

// Stats computes every dashboard counter in one aggregate query
func (r *TaskRepository) Stats(ctx context.Context, scope *visibility.Predicate, now time.Time) (*TaskStats, error) {
	var stats TaskStats
	err := withScope(r.db.WithContext(ctx).Model(&models.Task{}), scope).
		Select(statsSelect, now).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Recent returns the newest scoped tasks
func (r *TaskRepository) Recent(ctx context.Context, scope *visibility.Predicate, limit int) ([]models.Task, error) {
	tasks := []models.Task{}
	err := withScope(withRelations(r.db.WithContext(ctx)), scope).
		Order("created_at desc").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

// Upcoming returns the next open scoped tasks due from now on
func (r *TaskRepository) Upcoming(ctx context.Context, scope *visibility.Predicate, now time.Time, limit int) ([]models.Task, error) {
	tasks := []models.Task{}
	err := withScope(withRelations(r.db.WithContext(ctx)), scope).
		Where("due_date >= ? AND "+openTask, now).
		Order("due_date asc").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}
