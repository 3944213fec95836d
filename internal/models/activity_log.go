package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLog is the append-only audit trail written after each state
// transition. Writes are best-effort; readers live outside this service.
type ActivityLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     string         `gorm:"size:64;index"`
	Action     string         `gorm:"size:64"`
	Resource   string         `gorm:"size:64"`
	ResourceID uuid.UUID      `gorm:"type:uuid;index"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time
}
