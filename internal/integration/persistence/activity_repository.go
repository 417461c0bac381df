// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
	"github.com/spendlite/backend/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create creates a new activity in the database.
func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	result := r.db.WithContext(ctx).Create(activityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an activity by its ID.
func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityModel model.ActivityModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActivityNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity(), nil
}

// FindByUser retrieves all activities for a given user, newest first.
func (r *activityRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("spent_at DESC, created_at DESC").
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.Activity, len(activityModels))
	for i, am := range activityModels {
		activities[i] = am.ToEntity()
	}
	return activities, nil
}

// Update updates an existing activity in the database.
func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	result := r.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"name":       activityModel.Name,
			"amount":     activityModel.Amount,
			"category":   activityModel.Category,
			"spent_at":   activityModel.SpentAt,
			"updated_at": activityModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrActivityNotFound
	}
	return nil
}

// Delete soft-deletes an activity from the database.
func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ActivityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrActivityNotFound
	}
	return nil
}
