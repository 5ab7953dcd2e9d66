package responses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"praxis/internal/questionnaires"
)

var ErrDuplicateResponse = errors.New("a response already exists for this appointment and questionnaire")

// ValidationError carries the itemized validator output to the HTTP layer.
type ValidationError struct {
	Result questionnaires.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer set failed validation with %d error(s)", len(e.Result.Errors))
}

// QuestionnaireGetter is the slice of the questionnaire service this package
// needs: resolving the question list an answer set is validated against.
type QuestionnaireGetter interface {
	GetQuestionnaire(ctx context.Context, id uuid.UUID) (*questionnaires.Questionnaire, error)
}

type Service interface {
	CreateResponse(ctx context.Context, req CreateResponseRequest) (*QuestionnaireResponse, error)
	GetResponse(ctx context.Context, id uuid.UUID) (*QuestionnaireResponse, error)
	ListResponses(ctx context.Context) ([]QuestionnaireResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]QuestionnaireResponse, error)
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]QuestionnaireResponse, error)
	UpdateResponse(ctx context.Context, id uuid.UUID, req UpdateResponseRequest) (*QuestionnaireResponse, error)
	DeleteResponse(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo           Repository
	questionnaires QuestionnaireGetter
}

func NewService(repo Repository, questionnaireService QuestionnaireGetter) Service {
	return &service{
		repo:           repo,
		questionnaires: questionnaireService,
	}
}

// CreateResponse validates the submitted answer set against the referenced
// questionnaire's question list before anything is stored.
func (s *service) CreateResponse(ctx context.Context, req CreateResponseRequest) (*QuestionnaireResponse, error) {
	q, err := s.questionnaires.GetQuestionnaire(ctx, req.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	if result := questionnaires.ValidateAnswers(q.Questions, req.Answers); !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	exists, err := s.repo.ExistsForPair(ctx, req.AppointmentID, req.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateResponse
	}

	resp := &QuestionnaireResponse{
		AppointmentID:   req.AppointmentID,
		UserID:          req.UserID,
		QuestionnaireID: req.QuestionnaireID,
		Answers:         req.Answers,
		SubmittedAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) GetResponse(ctx context.Context, id uuid.UUID) (*QuestionnaireResponse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListResponses(ctx context.Context) ([]QuestionnaireResponse, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]QuestionnaireResponse, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]QuestionnaireResponse, error) {
	return s.repo.GetByAppointment(ctx, appointmentID)
}

// UpdateResponse replaces the stored answer set wholesale. The replacement
// is validated exactly like a fresh submission; a previously valid stored
// set never grandfathers an invalid update through.
func (s *service) UpdateResponse(ctx context.Context, id uuid.UUID, req UpdateResponseRequest) (*QuestionnaireResponse, error) {
	resp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	q, err := s.questionnaires.GetQuestionnaire(ctx, resp.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	if result := questionnaires.ValidateAnswers(q.Questions, req.Answers); !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	resp.Answers = req.Answers
	resp.SubmittedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) DeleteResponse(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
