package repository

import (
	"context"
	"encoding/json"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLogRepository is the append-only audit sink. Callers treat writes
// as best-effort.
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) LogActivity(ctx context.Context, userID, action, resource string, resourceID uuid.UUID, details map[string]interface{}) error {
	entry := models.ActivityLog{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
	}

	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return err
		}
		entry.Details = datatypes.JSON(raw)
	}

	return r.db.WithContext(ctx).Create(&entry).Error
}
