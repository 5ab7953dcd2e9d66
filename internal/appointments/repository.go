package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	GetAll(ctx context.Context) ([]Appointment, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Appointment, error)
	GetByTherapist(ctx context.Context, therapistID uuid.UUID) ([]Appointment, error)
	GetUpcoming(ctx context.Context, from time.Time) ([]Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	var a Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Appointment, error) {
	var list []Appointment
	if err := r.db.WithContext(ctx).Order("scheduled_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Appointment, error) {
	var list []Appointment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByTherapist(ctx context.Context, therapistID uuid.UUID) ([]Appointment, error) {
	var list []Appointment
	err := r.db.WithContext(ctx).
		Where("therapist_id = ?", therapistID).
		Order("scheduled_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetUpcoming(ctx context.Context, from time.Time) ([]Appointment, error) {
	var list []Appointment
	err := r.db.WithContext(ctx).
		Where("scheduled_at >= ? AND status = ?", from, StatusScheduled).
		Order("scheduled_at asc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, a *Appointment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
