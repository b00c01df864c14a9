package models

import "time"

type EmployerProfile struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"` // URL to logo
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
