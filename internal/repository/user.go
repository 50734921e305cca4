package repository

import (
	"context"
	"time"

	"task-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll returns every user ordered by name
func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("name asc").Find(&users).Error
	return users, err
}

// ListByTeam returns the team's users with the given membership status, ordered by name
func (r *UserRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, status models.MembershipStatus) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND membership_status = ?", teamID, status).
		Order("name asc").
		Find(&users).Error
	return users, err
}

// Update applies a partial update and bumps updated_at
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MaxUpdatedAt is the newest updated_at among the team's users with the given
// status; nil when there are none.
func (r *UserRepository) MaxUpdatedAt(ctx context.Context, teamID uuid.UUID, status models.MembershipStatus) (*time.Time, error) {
	return maxUpdatedAt(r.db.WithContext(ctx).Model(&models.User{}).
		Where("team_id = ? AND membership_status = ?", teamID, status))
}
