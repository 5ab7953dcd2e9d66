package users

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, roleID uuid.UUID) ([]User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByRole(ctx context.Context, roleID uuid.UUID) ([]User, error) {
	return s.repo.GetByRole(ctx, roleID)
}

func (s *service) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Message != nil {
		user.Message = *req.Message
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser soft-disables the account. Records referencing the user
// (appointments, payments, responses) stay intact.
func (s *service) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}
