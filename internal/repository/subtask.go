package repository

import (
	"context"
	"time"

	"task-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubtaskRepository handles database operations for subtasks. Every write
// also bumps the parent task's updated_at.
type SubtaskRepository struct {
	db *gorm.DB
}

// NewSubtaskRepository creates a new subtask repository
func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func touchTask(tx *gorm.DB, taskID uuid.UUID) error {
	return tx.Model(&models.Task{}).Where("id = ?", taskID).Update("updated_at", time.Now()).Error
}

// ListByTask returns a task's subtasks in display order
func (r *SubtaskRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Subtask, error) {
	subtasks := []models.Subtask{}
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order(`"order" asc`).Find(&subtasks).Error
	return subtasks, err
}

// GetByID retrieves a subtask by ID
func (r *SubtaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Subtask, error) {
	var subtask models.Subtask
	err := r.db.WithContext(ctx).First(&subtask, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

// Append inserts the subtask after the task's last one (order 0 for the
// first). The parent row is locked so concurrent appends get distinct orders.
func (r *SubtaskRepository) Append(ctx context.Context, subtask *models.Subtask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent models.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&parent, "id = ?", subtask.TaskID).Error; err != nil {
			return err
		}

		var next int
		if err := tx.Model(&models.Subtask{}).
			Select(`COALESCE(MAX("order"), -1) + 1`).
			Where("task_id = ?", subtask.TaskID).
			Row().Scan(&next); err != nil {
			return err
		}
		subtask.Order = next

		if err := tx.Create(subtask).Error; err != nil {
			return err
		}
		return touchTask(tx, subtask.TaskID)
	})
}

// Update applies a partial update to a subtask
func (r *SubtaskRepository) Update(ctx context.Context, subtask *models.Subtask, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(subtask).Updates(updates).Error; err != nil {
			return err
		}
		return touchTask(tx, subtask.TaskID)
	})
}

// Delete removes a subtask
func (r *SubtaskRepository) Delete(ctx context.Context, subtask *models.Subtask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Subtask{}, "id = ?", subtask.ID).Error; err != nil {
			return err
		}
		return touchTask(tx, subtask.TaskID)
	})
}

// CountOwned counts how many of ids belong to the task
func (r *SubtaskRepository) CountOwned(ctx context.Context, taskID uuid.UUID, ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subtask{}).
		Where("task_id = ? AND id IN ?", taskID, ids).
		Count(&count).Error
	return count, err
}

// SetOrder writes each (id, order) pair as its own single-row update, then
// bumps the parent. Pairs are not applied atomically.
func (r *SubtaskRepository) SetOrder(ctx context.Context, taskID uuid.UUID, orders map[uuid.UUID]int) error {
	db := r.db.WithContext(ctx)
	for id, order := range orders {
		err := db.Model(&models.Subtask{}).
			Where("id = ? AND task_id = ?", id, taskID).
			Updates(map[string]interface{}{"order": order, "updated_at": time.Now()}).Error
		if err != nil {
			return err
		}
	}
	return touchTask(db, taskID)
}
