package models

import "time"

// PaymentOrder records a gateway order created for an application hire.
// OrderID is the gateway-side identifier; the unique index doubles as
// the dedup key that keeps a replayed callback from producing a second
// hire notification.
type PaymentOrder struct {
	BaseModel
	ApplicationID string        `gorm:"type:uuid;not null;index" json:"application_id"`
	OrderID       string        `gorm:"uniqueIndex;not null" json:"order_id"`
	Amount        int64         `gorm:"not null" json:"amount"` // minor currency units
	Currency      string        `gorm:"type:varchar(10);not null" json:"currency"`
	Receipt       string        `json:"receipt"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'created'" json:"status"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}
