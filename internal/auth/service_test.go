package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/roles"
	"praxis/internal/shared/config"
	"praxis/internal/users"
)

// fakeRepository backs the auth service with in-memory maps.
type fakeRepository struct {
	usersByEmail map[string]*users.User
	rolesByName  map[string]*roles.Role
}

func newFakeRepository() *fakeRepository {
	clientRole := &roles.Role{ID: uuid.New(), Name: roles.RoleClient}
	adminRole := &roles.Role{ID: uuid.New(), Name: roles.RoleAdmin}
	return &fakeRepository{
		usersByEmail: make(map[string]*users.User),
		rolesByName: map[string]*roles.Role{
			roles.RoleClient: clientRole,
			roles.RoleAdmin:  adminRole,
		},
	}
}

func (f *fakeRepository) CreateUser(_ context.Context, user *users.User) error {
	user.ID = uuid.New()
	for _, role := range f.rolesByName {
		if role.ID == user.RoleID {
			user.Role = *role
		}
	}
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeRepository) GetUserByEmail(_ context.Context, email string) (*users.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeRepository) GetUserByID(_ context.Context, id uuid.UUID) (*users.User, error) {
	for _, user := range f.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeRepository) FindRoleByName(_ context.Context, name string) (*roles.Role, error) {
	role, ok := f.rolesByName[name]
	if !ok {
		return nil, ErrUnknownRole
	}
	return role, nil
}

func (f *fakeRepository) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.usersByEmail[email]
	return ok, nil
}

func newTestService(t *testing.T) (Service, *fakeRepository, *MemoryTokenStore, *TokenManager) {
	t.Helper()
	repo := newFakeRepository()
	tokens := NewTokenManager(testJWTConfig())
	store := NewMemoryTokenStore()
	cfg := &config.Config{Auth: config.AuthConfig{BcryptCost: 10}}
	return NewService(repo, tokens, store, cfg), repo, store, tokens
}

func registerClient(t *testing.T, svc Service, email, password string) *RegisterResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Username:  strings.Split(email, "@")[0],
		Email:     email,
		Password:  password,
		Role:      roles.RoleClient,
		FirstName: "Test",
		LastName:  "Client",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _, tokens := newTestService(t)
	ctx := context.Background()

	resp := registerClient(t, svc, "anna@example.com", "secret123")
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, roles.RoleClient, resp.Role)

	result, err := svc.Login(ctx, &LoginRequest{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, roles.RoleClient, result.Role)
	assert.Equal(t, int64(15*60), result.ExpiresIn)

	claims, err := tokens.VerifyAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, roles.RoleClient, claims.Role)
}

func TestRegisterUnknownRole(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Username:  "bob",
		Email:     "bob@example.com",
		Password:  "secret123",
		Role:      "Receptionist",
		FirstName: "Bob",
		LastName:  "B",
	})
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	registerClient(t, svc, "anna@example.com", "secret123")

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Username:  "anna2",
		Email:     "anna@example.com",
		Password:  "secret123",
		Role:      roles.RoleClient,
		FirstName: "Anna",
		LastName:  "Again",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

// Unknown email, wrong password and a deactivated account must be
// indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()
	registerClient(t, svc, "anna@example.com", "secret123")

	_, err := svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "anna@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	repo.usersByEmail["anna@example.com"].IsActive = false
	_, err = svc.Login(ctx, &LoginRequest{Email: "anna@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshLifecycle(t *testing.T) {
	svc, _, _, tokens := newTestService(t)
	ctx := context.Background()
	resp := registerClient(t, svc, "anna@example.com", "secret123")

	result, err := svc.Login(ctx, &LoginRequest{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)

	accessToken, err := svc.Refresh(ctx, result.RefreshToken)
	require.NoError(t, err)

	claims, err := tokens.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
}

func TestRefreshWithoutToken(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc, _, _, tokens := newTestService(t)

	// Valid signature but never registered in the store.
	stray, err := tokens.IssueRefreshToken(uuid.NewString(), roles.RoleClient)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), stray)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshMalformedStoredToken(t *testing.T) {
	svc, _, store, _ := newTestService(t)
	ctx := context.Background()

	// Present in the store but fails signature verification.
	require.NoError(t, store.Add(ctx, "tampered-token"))

	_, err := svc.Refresh(ctx, "tampered-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()
	registerClient(t, svc, "anna@example.com", "secret123")

	result, err := svc.Login(ctx, &LoginRequest{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RefreshToken))

	_, err = svc.Refresh(ctx, result.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Logout is idempotent.
	assert.NoError(t, svc.Logout(ctx, result.RefreshToken))
	assert.NoError(t, svc.Logout(ctx, ""))
}
