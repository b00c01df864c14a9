package models

import (
	"github.com/lib/pq"
)

// Job is immutable once posted; there is no update endpoint.
type Job struct {
	BaseModel
	EmployerID  string         `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title       string         `gorm:"not null" json:"title"`
	Company     string         `json:"company"`
	Type        string         `json:"type"` // "Contract", "Full-time", ...
	Budget      string         `json:"budget"`
	Description string         `json:"description"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	Location    string         `json:"location"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}
