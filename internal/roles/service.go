package roles

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrBuiltinRoleImmutable = errors.New("built-in roles cannot be deleted")

type Service interface {
	CreateRole(ctx context.Context, req CreateRoleRequest) (*Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*Role, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	ListRoles(ctx context.Context) ([]Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, req UpdateRoleRequest) (*Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (*Role, error) {
	role := &Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *service) GetRole(ctx context.Context, id uuid.UUID) (*Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) ListRoles(ctx context.Context) ([]Role, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) UpdateRole(ctx context.Context, id uuid.UUID, req UpdateRoleRequest) (*Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.Permissions != nil {
		role.Permissions = req.Permissions
	}
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *service) DeleteRole(ctx context.Context, id uuid.UUID) error {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if IsBuiltinRole(role.Name) {
		return ErrBuiltinRoleImmutable
	}
	return s.repo.Delete(ctx, id)
}
