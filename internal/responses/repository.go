package responses

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrResponseNotFound = errors.New("questionnaire response not found")

type Repository interface {
	Create(ctx context.Context, resp *QuestionnaireResponse) error
	GetByID(ctx context.Context, id uuid.UUID) (*QuestionnaireResponse, error)
	GetAll(ctx context.Context) ([]QuestionnaireResponse, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]QuestionnaireResponse, error)
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]QuestionnaireResponse, error)
	ExistsForPair(ctx context.Context, appointmentID, questionnaireID uuid.UUID) (bool, error)
	Update(ctx context.Context, resp *QuestionnaireResponse) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, resp *QuestionnaireResponse) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*QuestionnaireResponse, error) {
	var resp QuestionnaireResponse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (r *repository) GetAll(ctx context.Context) ([]QuestionnaireResponse, error) {
	var list []QuestionnaireResponse
	if err := r.db.WithContext(ctx).Order("submitted_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]QuestionnaireResponse, error) {
	var list []QuestionnaireResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]QuestionnaireResponse, error) {
	var list []QuestionnaireResponse
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("submitted_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ExistsForPair(ctx context.Context, appointmentID, questionnaireID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&QuestionnaireResponse{}).
		Where("appointment_id = ? AND questionnaire_id = ?", appointmentID, questionnaireID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(ctx context.Context, resp *QuestionnaireResponse) error {
	return r.db.WithContext(ctx).Save(resp).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&QuestionnaireResponse{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResponseNotFound
	}
	return nil
}
