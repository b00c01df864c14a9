package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is created only as a side effect of application status
// changes or payment confirmation, never directly by users.
type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"` // "application_received", "status_change", "hire_success"
	Message string         `gorm:"not null" json:"message"`
	Link    string         `json:"link,omitempty"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"job_id": "...", "application_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}
