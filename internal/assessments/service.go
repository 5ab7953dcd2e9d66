package assessments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"praxis/internal/roles"
	"praxis/internal/users"
)

var (
	ErrEmptyAnswers      = errors.New("assessment answers must not be empty")
	ErrClientRoleMissing = errors.New("client role is not provisioned")
)

// cardFields lists legacy intake form keys that are silently dropped
// before persisting. Raw card data must never reach the database.
var cardFields = map[string]struct{}{
	"card_number": {},
	"card_expiry": {},
	"card_cvc":    {},
	"card_holder": {},
}

type IntakeResult struct {
	Assessment  *UserAssessment `json:"assessment"`
	UserID      uuid.UUID       `json:"user_id"`
	UserCreated bool            `json:"user_created"`
}

type Service interface {
	SubmitIntake(ctx context.Context, req IntakeRequest) (*IntakeResult, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (*UserAssessment, error)
	ListAssessments(ctx context.Context) ([]UserAssessment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]UserAssessment, error)
	DeleteAssessment(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	userRepo  users.Repository
	roleRepo  roles.Repository
	hashCost  int
}

func NewService(repo Repository, userRepo users.Repository, roleRepo roles.Repository, hashCost int) Service {
	if hashCost < bcrypt.DefaultCost {
		hashCost = bcrypt.DefaultCost
	}
	return &service{
		repo:     repo,
		userRepo: userRepo,
		roleRepo: roleRepo,
		hashCost: hashCost,
	}
}

// SubmitIntake stores the intake assessment, provisioning a client account
// for the submitter when one does not exist yet. Provisioned accounts get
// an unguessable placeholder password; the client sets a real one through
// the usual reset flow.
func (s *service) SubmitIntake(ctx context.Context, req IntakeRequest) (*IntakeResult, error) {
	answers := stripCardFields(req.Answers)
	if len(answers) == 0 {
		return nil, ErrEmptyAnswers
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var userID uuid.UUID
	var created bool
	existing, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		userID = existing.ID
	case errors.Is(err, users.ErrUserNotFound):
		user, err := s.provisionClient(ctx, email, req)
		if err != nil {
			return nil, err
		}
		userID = user.ID
		created = true
	default:
		return nil, err
	}

	assessment := &UserAssessment{
		UserID:      userID,
		Answers:     datatypes.JSONMap(answers),
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}

	return &IntakeResult{Assessment: assessment, UserID: userID, UserCreated: created}, nil
}

func (s *service) provisionClient(ctx context.Context, email string, req IntakeRequest) (*users.User, error) {
	role, err := s.roleRepo.GetByName(ctx, roles.RoleClient)
	if err != nil {
		if errors.Is(err, roles.ErrRoleNotFound) {
			return nil, ErrClientRoleMissing
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.hashCost)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Username:  email,
		Email:     email,
		Password:  string(hash),
		RoleID:    role.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Message:   req.Message,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) GetAssessment(ctx context.Context, id uuid.UUID) (*UserAssessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListAssessments(ctx context.Context) ([]UserAssessment, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]UserAssessment, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func stripCardFields(answers map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(answers))
	for key, value := range answers {
		if _, blocked := cardFields[strings.ToLower(key)]; blocked {
			continue
		}
		cleaned[key] = value
	}
	return cleaned
}
