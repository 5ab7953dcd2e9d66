package questionnaires

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrQuestionnaireNotFound = errors.New("questionnaire not found")

type Repository interface {
	Create(ctx context.Context, q *Questionnaire) error
	GetByID(ctx context.Context, id uuid.UUID) (*Questionnaire, error)
	GetAll(ctx context.Context) ([]Questionnaire, error)
	GetByCreator(ctx context.Context, createdBy uuid.UUID) ([]Questionnaire, error)
	Update(ctx context.Context, q *Questionnaire) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, q *Questionnaire) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Questionnaire, error) {
	var q Questionnaire
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionnaireNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Questionnaire, error) {
	var list []Questionnaire
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByCreator(ctx context.Context, createdBy uuid.UUID) ([]Questionnaire, error) {
	var list []Questionnaire
	err := r.db.WithContext(ctx).
		Where("created_by = ?", createdBy).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, q *Questionnaire) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Questionnaire{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionnaireNotFound
	}
	return nil
}
