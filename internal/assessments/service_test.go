package assessments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/roles"
	"praxis/internal/users"
)

type fakeAssessmentRepo struct {
	byID map[uuid.UUID]*UserAssessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{byID: make(map[uuid.UUID]*UserAssessment)}
}

func (f *fakeAssessmentRepo) Create(_ context.Context, a *UserAssessment) error {
	a.ID = uuid.New()
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAssessmentRepo) GetByID(_ context.Context, id uuid.UUID) (*UserAssessment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, ErrAssessmentNotFound
	}
	return a, nil
}

func (f *fakeAssessmentRepo) GetAll(_ context.Context) ([]UserAssessment, error) {
	var list []UserAssessment
	for _, a := range f.byID {
		list = append(list, *a)
	}
	return list, nil
}

func (f *fakeAssessmentRepo) GetByUser(_ context.Context, userID uuid.UUID) ([]UserAssessment, error) {
	var list []UserAssessment
	for _, a := range f.byID {
		if a.UserID == userID {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (f *fakeAssessmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return ErrAssessmentNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]*users.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *users.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*users.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]users.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByRole(_ context.Context, _ uuid.UUID) ([]users.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ *users.User) error { return nil }

func (f *fakeUserRepo) Deactivate(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

type fakeRoleRepo struct {
	byName map[string]*roles.Role
}

func (f *fakeRoleRepo) Create(_ context.Context, _ *roles.Role) error { return nil }

func (f *fakeRoleRepo) GetByID(_ context.Context, _ uuid.UUID) (*roles.Role, error) {
	return nil, roles.ErrRoleNotFound
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*roles.Role, error) {
	role, ok := f.byName[name]
	if !ok {
		return nil, roles.ErrRoleNotFound
	}
	return role, nil
}

func (f *fakeRoleRepo) GetAll(_ context.Context) ([]roles.Role, error) { return nil, nil }

func (f *fakeRoleRepo) Update(_ context.Context, _ *roles.Role) error { return nil }

func (f *fakeRoleRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func setupIntakeService(t *testing.T) (Service, *fakeAssessmentRepo, *fakeUserRepo) {
	t.Helper()
	repo := newFakeAssessmentRepo()
	userRepo := &fakeUserRepo{byEmail: make(map[string]*users.User)}
	roleRepo := &fakeRoleRepo{byName: map[string]*roles.Role{
		roles.RoleClient: {ID: uuid.New(), Name: roles.RoleClient},
	}}
	return NewService(repo, userRepo, roleRepo, 10), repo, userRepo
}

func intakeRequest() IntakeRequest {
	return IntakeRequest{
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "Anna.Berg@Example.com",
		Phone:     "+49 30 1234567",
		Answers: map[string]interface{}{
			"reason":       "stress at work",
			"availability": "evenings",
		},
	}
}

func TestSubmitIntakeProvisionsClient(t *testing.T) {
	svc, repo, userRepo := setupIntakeService(t)

	result, err := svc.SubmitIntake(context.Background(), intakeRequest())
	require.NoError(t, err)
	assert.True(t, result.UserCreated)
	assert.Len(t, repo.byID, 1)

	// Email is normalized before the account is created.
	user, err := userRepo.GetByEmail(context.Background(), "anna.berg@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.Password, "provisioned account still needs a placeholder hash")
}

func TestSubmitIntakeReusesExistingUser(t *testing.T) {
	svc, _, userRepo := setupIntakeService(t)
	existing := &users.User{Email: "anna.berg@example.com"}
	require.NoError(t, userRepo.Create(context.Background(), existing))

	result, err := svc.SubmitIntake(context.Background(), intakeRequest())
	require.NoError(t, err)
	assert.False(t, result.UserCreated)
	assert.Equal(t, existing.ID, result.UserID)
}

func TestSubmitIntakeStripsCardFields(t *testing.T) {
	svc, _, _ := setupIntakeService(t)

	req := intakeRequest()
	req.Answers["card_number"] = "4111111111111111"
	req.Answers["Card_CVC"] = "123"

	result, err := svc.SubmitIntake(context.Background(), req)
	require.NoError(t, err)

	assert.NotContains(t, result.Assessment.Answers, "card_number")
	assert.NotContains(t, result.Assessment.Answers, "Card_CVC")
	assert.Contains(t, result.Assessment.Answers, "reason")
}

func TestSubmitIntakeEmptyAfterStripping(t *testing.T) {
	svc, _, _ := setupIntakeService(t)

	req := intakeRequest()
	req.Answers = map[string]interface{}{"card_number": "4111111111111111"}

	_, err := svc.SubmitIntake(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmptyAnswers)
}

func TestSubmitIntakeMissingClientRole(t *testing.T) {
	repo := newFakeAssessmentRepo()
	userRepo := &fakeUserRepo{byEmail: make(map[string]*users.User)}
	roleRepo := &fakeRoleRepo{byName: map[string]*roles.Role{}}
	svc := NewService(repo, userRepo, roleRepo, 10)

	_, err := svc.SubmitIntake(context.Background(), intakeRequest())
	assert.ErrorIs(t, err, ErrClientRoleMissing)
}
