package payments

import (
	"time"

	"github.com/google/uuid"
)

// Status is the payment lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}

// Payment records a charge settled through the external payment provider.
// Only the provider's payment reference is stored; card details never
// touch this system.
type Payment struct {
	ID              uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID          uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	AppointmentID   *uuid.UUID `json:"appointment_id,omitempty" gorm:"type:uuid;index"`
	StripePaymentID string     `json:"stripe_payment_id" gorm:"uniqueIndex;not null"`
	Amount          int64      `json:"amount" gorm:"not null"` // minor units (cents)
	Currency        string     `json:"currency" gorm:"not null;default:'eur'"`
	Status          Status     `json:"status" gorm:"not null;default:'pending'"`
	Description     string     `json:"description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
