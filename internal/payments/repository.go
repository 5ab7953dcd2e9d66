package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePayment = errors.New("payment with this provider reference already exists")
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetByStripeID(ctx context.Context, stripeID string) (*Payment, error)
	GetAll(ctx context.Context) ([]Payment, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Payment, error)
	Update(ctx context.Context, p *Payment) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePayment
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByStripeID(ctx context.Context, stripeID string) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).Where("stripe_payment_id = ?", stripeID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Payment, error) {
	var list []Payment
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Payment, error) {
	var list []Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}
