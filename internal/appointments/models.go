package appointments

import (
	"time"

	"github.com/google/uuid"
)

// Status is the appointment lifecycle state
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Appointment links a client and a therapist at a scheduled time and place.
type Appointment struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	TherapistID uuid.UUID `json:"therapist_id" gorm:"type:uuid;not null;index"`
	Location    string    `json:"location" gorm:"not null"`
	ScheduledAt time.Time `json:"scheduled_at" gorm:"not null;index"`
	Status      Status    `json:"status" gorm:"not null;default:'scheduled'"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`
	CalendlyURL string    `json:"calendly_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
