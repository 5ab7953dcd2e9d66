package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies an appointment lifecycle transition
type EventType string

const (
	EventAppointmentBooked    EventType = "appointment.booked"
	EventAppointmentCancelled EventType = "appointment.cancelled"
	EventAppointmentCompleted EventType = "appointment.completed"
)

// AppointmentEvent is the message published to Kafka whenever an
// appointment is booked, cancelled or completed. The consumer turns it into
// a client-facing email.
type AppointmentEvent struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	UserID        uuid.UUID `json:"user_id"`
	TherapistID   uuid.UUID `json:"therapist_id"`
	Location      string    `json:"location"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewAppointmentEvent(eventType EventType, appointmentID, userID, therapistID uuid.UUID, location string, scheduledAt time.Time) *AppointmentEvent {
	return &AppointmentEvent{
		ID:            uuid.New(),
		Type:          eventType,
		AppointmentID: appointmentID,
		UserID:        userID,
		TherapistID:   therapistID,
		Location:      location,
		ScheduledAt:   scheduledAt,
		OccurredAt:    time.Now().UTC(),
	}
}

func (e *AppointmentEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func EventFromJSON(data []byte) (*AppointmentEvent, error) {
	var e AppointmentEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// PartitionKey routes every event for one appointment to the same partition
// so per-appointment ordering holds.
func (e *AppointmentEvent) PartitionKey() string {
	return e.AppointmentID.String()
}
