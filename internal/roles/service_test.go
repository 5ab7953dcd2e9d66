package roles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeRoleRepo struct {
	byID map[uuid.UUID]*Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{byID: make(map[uuid.UUID]*Role)}
}

func (f *fakeRoleRepo) Create(_ context.Context, role *Role) error {
	role.ID = uuid.New()
	f.byID[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id uuid.UUID) (*Role, error) {
	role, ok := f.byID[id]
	if !ok {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*Role, error) {
	for _, role := range f.byID {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, ErrRoleNotFound
}

func (f *fakeRoleRepo) GetAll(_ context.Context) ([]Role, error) {
	var list []Role
	for _, role := range f.byID {
		list = append(list, *role)
	}
	return list, nil
}

func (f *fakeRoleRepo) Update(_ context.Context, role *Role) error {
	f.byID[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return ErrRoleNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestDeleteBuiltinRoleRejected(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewService(repo)
	ctx := context.Background()

	admin, err := svc.CreateRole(ctx, CreateRoleRequest{Name: RoleAdmin})
	require.NoError(t, err)

	err = svc.DeleteRole(ctx, admin.ID)
	assert.ErrorIs(t, err, ErrBuiltinRoleImmutable)

	_, err = svc.GetRole(ctx, admin.ID)
	assert.NoError(t, err, "built-in role must survive the delete attempt")
}

func TestDeleteCustomRole(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewService(repo)
	ctx := context.Background()

	custom, err := svc.CreateRole(ctx, CreateRoleRequest{Name: "Supervisor"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRole(ctx, custom.ID))
	_, err = svc.GetRole(ctx, custom.ID)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestUpdateRolePartial(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewService(repo)
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, CreateRoleRequest{
		Name:        "Supervisor",
		Description: "old",
		Permissions: datatypes.JSONMap{"view_responses": true},
	})
	require.NoError(t, err)

	desc := "reviews therapist notes"
	updated, err := svc.UpdateRole(ctx, role.ID, UpdateRoleRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
	assert.Equal(t, datatypes.JSONMap{"view_responses": true}, updated.Permissions, "untouched fields persist")
}

func TestIsBuiltinRole(t *testing.T) {
	assert.True(t, IsBuiltinRole(RoleAdmin))
	assert.True(t, IsBuiltinRole(RoleTherapist))
	assert.True(t, IsBuiltinRole(RoleClient))
	assert.False(t, IsBuiltinRole("Supervisor"))
	assert.False(t, IsBuiltinRole("admin"))
}
