package questionnaires

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"praxis/pkg/cache"
)

var ErrInvalidSchema = errors.New("invalid questionnaire schema")

type Service interface {
	CreateQuestionnaire(ctx context.Context, createdBy uuid.UUID, req CreateQuestionnaireRequest) (*Questionnaire, error)
	GetQuestionnaire(ctx context.Context, id uuid.UUID) (*Questionnaire, error)
	ListQuestionnaires(ctx context.Context) ([]Questionnaire, error)
	ListByCreator(ctx context.Context, createdBy uuid.UUID) ([]Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, id uuid.UUID, req UpdateQuestionnaireRequest) (*Questionnaire, error)
	DeleteQuestionnaire(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService builds the questionnaire service. The cache is optional; pass
// nil to read straight from the database.
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("questionnaires:%s", id)
}

func (s *service) CreateQuestionnaire(ctx context.Context, createdBy uuid.UUID, req CreateQuestionnaireRequest) (*Questionnaire, error) {
	if errs := CheckSchema(req.Questions); len(errs) > 0 {
		return nil, schemaError(errs)
	}

	q := &Questionnaire{
		Title:       req.Title,
		Description: req.Description,
		Questions:   datatypes.NewJSONSlice(req.Questions),
		CreatedBy:   createdBy,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// GetQuestionnaire serves reads through the cache; responses hit this path
// on every create and update, and questionnaires change rarely.
func (s *service) GetQuestionnaire(ctx context.Context, id uuid.UUID) (*Questionnaire, error) {
	if s.cache == nil {
		return s.repo.GetByID(ctx, id)
	}

	var q Questionnaire
	err := s.cache.GetOrSet(ctx, cacheKey(id), s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetByID(ctx, id)
	}, &q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *service) ListQuestionnaires(ctx context.Context) ([]Questionnaire, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByCreator(ctx context.Context, createdBy uuid.UUID) ([]Questionnaire, error) {
	return s.repo.GetByCreator(ctx, createdBy)
}

func (s *service) UpdateQuestionnaire(ctx context.Context, id uuid.UUID, req UpdateQuestionnaireRequest) (*Questionnaire, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		q.Title = *req.Title
	}
	if req.Description != nil {
		q.Description = *req.Description
	}
	if req.Questions != nil {
		if errs := CheckSchema(req.Questions); len(errs) > 0 {
			return nil, schemaError(errs)
		}
		q.Questions = datatypes.NewJSONSlice(req.Questions)
	}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return q, nil
}

func (s *service) DeleteQuestionnaire(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		// Best effort; a stale entry ages out with the TTL.
		_ = s.cache.Delete(ctx, cacheKey(id))
	}
}

func schemaError(errs []string) error {
	return fmt.Errorf("%w: %d problem(s), first: %s", ErrInvalidSchema, len(errs), errs[0])
}
