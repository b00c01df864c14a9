package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// AgentProfile is created lazily on the first profile update; all
// fields except the user reference are optional.
type AgentProfile struct {
	ID         string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID     string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name       string         `json:"name"`
	Title      string         `json:"title"` // e.g. "Senior React Developer"
	Bio        string         `json:"bio"`
	Skills     pq.StringArray `gorm:"type:text[]" json:"skills"`
	HourlyRate float64        `json:"hourly_rate"`
	Location   string         `json:"location"`
	Image      string         `json:"image"` // URL to profile image
	CV         string         `json:"cv"`    // URL to CV PDF
	Rating     float64        `gorm:"default:0" json:"rating"`
	Reviews    int            `gorm:"default:0" json:"reviews"`
	Experience datatypes.JSON `gorm:"type:jsonb" json:"experience,omitempty"` // [{title, company, period, description}]
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
