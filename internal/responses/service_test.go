package responses

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"praxis/internal/questionnaires"
)

type fakeResponseRepo struct {
	byID map[uuid.UUID]*QuestionnaireResponse
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{byID: make(map[uuid.UUID]*QuestionnaireResponse)}
}

func (f *fakeResponseRepo) Create(_ context.Context, resp *QuestionnaireResponse) error {
	resp.ID = uuid.New()
	f.byID[resp.ID] = resp
	return nil
}

func (f *fakeResponseRepo) GetByID(_ context.Context, id uuid.UUID) (*QuestionnaireResponse, error) {
	resp, ok := f.byID[id]
	if !ok {
		return nil, ErrResponseNotFound
	}
	return resp, nil
}

func (f *fakeResponseRepo) GetAll(_ context.Context) ([]QuestionnaireResponse, error) {
	var list []QuestionnaireResponse
	for _, resp := range f.byID {
		list = append(list, *resp)
	}
	return list, nil
}

func (f *fakeResponseRepo) GetByUser(_ context.Context, userID uuid.UUID) ([]QuestionnaireResponse, error) {
	var list []QuestionnaireResponse
	for _, resp := range f.byID {
		if resp.UserID == userID {
			list = append(list, *resp)
		}
	}
	return list, nil
}

func (f *fakeResponseRepo) GetByAppointment(_ context.Context, appointmentID uuid.UUID) ([]QuestionnaireResponse, error) {
	var list []QuestionnaireResponse
	for _, resp := range f.byID {
		if resp.AppointmentID == appointmentID {
			list = append(list, *resp)
		}
	}
	return list, nil
}

func (f *fakeResponseRepo) ExistsForPair(_ context.Context, appointmentID, questionnaireID uuid.UUID) (bool, error) {
	for _, resp := range f.byID {
		if resp.AppointmentID == appointmentID && resp.QuestionnaireID == questionnaireID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeResponseRepo) Update(_ context.Context, resp *QuestionnaireResponse) error {
	f.byID[resp.ID] = resp
	return nil
}

func (f *fakeResponseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return ErrResponseNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeQuestionnaireGetter struct {
	byID map[uuid.UUID]*questionnaires.Questionnaire
}

func (f *fakeQuestionnaireGetter) GetQuestionnaire(_ context.Context, id uuid.UUID) (*questionnaires.Questionnaire, error) {
	q, ok := f.byID[id]
	if !ok {
		return nil, questionnaires.ErrQuestionnaireNotFound
	}
	return q, nil
}

func setupResponseService(t *testing.T) (Service, *fakeResponseRepo, uuid.UUID) {
	t.Helper()
	repo := newFakeResponseRepo()

	q := &questionnaires.Questionnaire{
		ID:    uuid.New(),
		Title: "Intake",
		Questions: datatypes.NewJSONSlice([]questionnaires.Question{
			{Text: "Why are you here?", Type: questionnaires.QuestionText, Required: true},
			{Text: "Been in therapy before?", Type: questionnaires.QuestionMultipleChoice, Required: true, Options: []string{"Yes", "No"}},
		}),
	}
	getter := &fakeQuestionnaireGetter{byID: map[uuid.UUID]*questionnaires.Questionnaire{q.ID: q}}

	return NewService(repo, getter), repo, q.ID
}

func validAnswers() datatypes.JSONMap {
	return datatypes.JSONMap{
		"question_0": "Trouble sleeping",
		"question_1": "No",
	}
}

func TestCreateResponseValid(t *testing.T) {
	svc, repo, questionnaireID := setupResponseService(t)

	resp, err := svc.CreateResponse(context.Background(), CreateResponseRequest{
		AppointmentID:   uuid.New(),
		UserID:          uuid.New(),
		QuestionnaireID: questionnaireID,
		Answers:         validAnswers(),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.False(t, resp.SubmittedAt.IsZero())
	assert.Len(t, repo.byID, 1)
}

func TestCreateResponseInvalidAnswersNotStored(t *testing.T) {
	svc, repo, questionnaireID := setupResponseService(t)

	_, err := svc.CreateResponse(context.Background(), CreateResponseRequest{
		AppointmentID:   uuid.New(),
		UserID:          uuid.New(),
		QuestionnaireID: questionnaireID,
		Answers:         datatypes.JSONMap{"question_1": "Maybe"},
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Result.Errors, 2) // missing required text, invalid choice
	assert.Empty(t, repo.byID, "invalid submission must not be persisted")
}

func TestCreateResponseUnknownQuestionnaire(t *testing.T) {
	svc, _, _ := setupResponseService(t)

	_, err := svc.CreateResponse(context.Background(), CreateResponseRequest{
		AppointmentID:   uuid.New(),
		UserID:          uuid.New(),
		QuestionnaireID: uuid.New(),
		Answers:         validAnswers(),
	})
	assert.ErrorIs(t, err, questionnaires.ErrQuestionnaireNotFound)
}

func TestCreateResponseDuplicatePair(t *testing.T) {
	svc, _, questionnaireID := setupResponseService(t)
	appointmentID := uuid.New()

	req := CreateResponseRequest{
		AppointmentID:   appointmentID,
		UserID:          uuid.New(),
		QuestionnaireID: questionnaireID,
		Answers:         validAnswers(),
	}
	_, err := svc.CreateResponse(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateResponse(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateResponse)
}

func TestUpdateResponseRevalidates(t *testing.T) {
	svc, _, questionnaireID := setupResponseService(t)

	created, err := svc.CreateResponse(context.Background(), CreateResponseRequest{
		AppointmentID:   uuid.New(),
		UserID:          uuid.New(),
		QuestionnaireID: questionnaireID,
		Answers:         validAnswers(),
	})
	require.NoError(t, err)

	// A previously valid stored set does not excuse an invalid replacement.
	_, err = svc.UpdateResponse(context.Background(), created.ID, UpdateResponseRequest{
		Answers: datatypes.JSONMap{"question_0": "still here"},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	stored, err := svc.GetResponse(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "No", stored.Answers["question_1"], "stored answers unchanged after failed update")

	updated, err := svc.UpdateResponse(context.Background(), created.ID, UpdateResponseRequest{
		Answers: datatypes.JSONMap{"question_0": "better now", "question_1": "Yes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Yes", updated.Answers["question_1"])
}

func TestUpdateResponseNotFound(t *testing.T) {
	svc, _, _ := setupResponseService(t)

	_, err := svc.UpdateResponse(context.Background(), uuid.New(), UpdateResponseRequest{
		Answers: validAnswers(),
	})
	assert.ErrorIs(t, err, ErrResponseNotFound)
}

func TestDeleteResponse(t *testing.T) {
	svc, _, questionnaireID := setupResponseService(t)

	created, err := svc.CreateResponse(context.Background(), CreateResponseRequest{
		AppointmentID:   uuid.New(),
		UserID:          uuid.New(),
		QuestionnaireID: questionnaireID,
		Answers:         validAnswers(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResponse(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteResponse(context.Background(), created.ID), ErrResponseNotFound)
}
