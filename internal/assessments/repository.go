package assessments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type Repository interface {
	Create(ctx context.Context, a *UserAssessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*UserAssessment, error)
	GetAll(ctx context.Context) ([]UserAssessment, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]UserAssessment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *UserAssessment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*UserAssessment, error) {
	var a UserAssessment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetAll(ctx context.Context) ([]UserAssessment, error) {
	var list []UserAssessment
	if err := r.db.WithContext(ctx).Order("submitted_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]UserAssessment, error) {
	var list []UserAssessment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&UserAssessment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssessmentNotFound
	}
	return nil
}
