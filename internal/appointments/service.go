package appointments

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"praxis/internal/notifications"
	"praxis/pkg/logger"
)

var (
	ErrInvalidStatus          = errors.New("invalid appointment status")
	ErrInvalidTransition      = errors.New("invalid appointment status transition")
	ErrScheduledInPast        = errors.New("appointment must be scheduled in the future")
	ErrSelfBooking            = errors.New("client and therapist must be different users")
	ErrAppointmentNotEditable = errors.New("cancelled appointments cannot be modified")
)

// EventPublisher is the slice of the notification pipeline the service
// needs. Publish failures never fail the booking itself.
type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *notifications.AppointmentEvent) error
}

type Service interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListAppointments(ctx context.Context) ([]Appointment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Appointment, error)
	ListByTherapist(ctx context.Context, therapistID uuid.UUID) ([]Appointment, error)
	ListUpcoming(ctx context.Context) ([]Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req UpdateAppointmentRequest) (*Appointment, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	log       *logger.Logger
}

func NewService(repo Repository, publisher EventPublisher, log *logger.Logger) Service {
	return &service{repo: repo, publisher: publisher, log: log}
}

func (s *service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, err
	}
	therapistID, err := uuid.Parse(req.TherapistID)
	if err != nil {
		return nil, err
	}
	if userID == therapistID {
		return nil, ErrSelfBooking
	}
	if req.ScheduledAt.Before(time.Now()) {
		return nil, ErrScheduledInPast
	}

	appointment := &Appointment{
		UserID:      userID,
		TherapistID: therapistID,
		Location:    req.Location,
		ScheduledAt: req.ScheduledAt.UTC(),
		Status:      StatusScheduled,
		Notes:       req.Notes,
		CalendlyURL: req.CalendlyURL,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.publish(ctx, notifications.EventAppointmentBooked, appointment)
	return appointment, nil
}

func (s *service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListAppointments(ctx context.Context) ([]Appointment, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]Appointment, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) ListByTherapist(ctx context.Context, therapistID uuid.UUID) ([]Appointment, error) {
	return s.repo.GetByTherapist(ctx, therapistID)
}

func (s *service) ListUpcoming(ctx context.Context) ([]Appointment, error) {
	return s.repo.GetUpcoming(ctx, time.Now().UTC())
}

func (s *service) UpdateAppointment(ctx context.Context, id uuid.UUID, req UpdateAppointmentRequest) (*Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status == StatusCancelled {
		return nil, ErrAppointmentNotEditable
	}

	previousStatus := appointment.Status

	if req.Location != nil {
		appointment.Location = *req.Location
	}
	if req.ScheduledAt != nil {
		appointment.ScheduledAt = req.ScheduledAt.UTC()
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.CalendlyURL != nil {
		appointment.CalendlyURL = *req.CalendlyURL
	}
	if req.Status != nil {
		next := Status(*req.Status)
		if !next.IsValid() {
			return nil, ErrInvalidStatus
		}
		if !validTransition(appointment.Status, next) {
			return nil, ErrInvalidTransition
		}
		appointment.Status = next
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	if previousStatus != appointment.Status {
		switch appointment.Status {
		case StatusCancelled:
			s.publish(ctx, notifications.EventAppointmentCancelled, appointment)
		case StatusCompleted:
			s.publish(ctx, notifications.EventAppointmentCompleted, appointment)
		}
	}

	return appointment, nil
}

func (s *service) CancelAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status == StatusCancelled {
		return appointment, nil
	}
	if !validTransition(appointment.Status, StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	appointment.Status = StatusCancelled
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.publish(ctx, notifications.EventAppointmentCancelled, appointment)
	return appointment, nil
}

func (s *service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validTransition enforces the appointment lifecycle: a scheduled
// appointment may complete, cancel or no-show; terminal states stay put.
func validTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusScheduled:
		return to == StatusCompleted || to == StatusCancelled || to == StatusNoShow
	default:
		return false
	}
}

func (s *service) publish(ctx context.Context, eventType notifications.EventType, a *Appointment) {
	event := notifications.NewAppointmentEvent(eventType, a.ID, a.UserID, a.TherapistID, a.Location, a.ScheduledAt)
	if err := s.publisher.PublishAppointmentEvent(ctx, event); err != nil {
		s.log.Error("failed to publish appointment event",
			slog.Any("error", err),
			slog.String("event_type", string(eventType)),
			slog.String("appointment_id", a.ID.String()),
		)
	}
}
