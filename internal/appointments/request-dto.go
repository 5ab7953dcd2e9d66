package appointments

import "time"

type CreateAppointmentRequest struct {
	UserID      string    `json:"user_id" binding:"required,uuid"`
	TherapistID string    `json:"therapist_id" binding:"required,uuid"`
	Location    string    `json:"location" binding:"required,min=2,max=255"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Notes       string    `json:"notes" binding:"omitempty,max=2000"`
	CalendlyURL string    `json:"calendly_url" binding:"omitempty,url"`
}

type UpdateAppointmentRequest struct {
	Location    *string    `json:"location" binding:"omitempty,min=2,max=255"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes       *string    `json:"notes" binding:"omitempty,max=2000"`
	CalendlyURL *string    `json:"calendly_url" binding:"omitempty,url"`
}
