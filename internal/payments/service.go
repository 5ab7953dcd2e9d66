package payments

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidStatusChange = errors.New("invalid payment status change")

type Service interface {
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context) ([]Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Payment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*Payment, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, err
	}

	var appointmentID *uuid.UUID
	if req.AppointmentID != "" {
		parsed, err := uuid.Parse(req.AppointmentID)
		if err != nil {
			return nil, err
		}
		appointmentID = &parsed
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "eur"
	}

	payment := &Payment{
		UserID:          userID,
		AppointmentID:   appointmentID,
		StripePaymentID: req.StripePaymentID,
		Amount:          req.Amount,
		Currency:        currency,
		Status:          StatusPending,
		Description:     req.Description,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *service) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPayments(ctx context.Context) ([]Payment, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]Payment, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Payment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatusChange
	}

	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !validStatusChange(payment.Status, status) {
		return nil, ErrInvalidStatusChange
	}

	payment.Status = status
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// validStatusChange keeps settled payments settled: pending may move
// anywhere, completed may only be refunded.
func validStatusChange(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return true
	case StatusCompleted:
		return to == StatusRefunded
	default:
		return false
	}
}
