package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/auth"
	"praxis/internal/roles"
	"praxis/internal/shared/config"
	"praxis/internal/users"
)

type fakeDirectory struct {
	byID map[uuid.UUID]*users.User
}

func (f *fakeDirectory) GetByID(_ context.Context, id uuid.UUID) (*users.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(config.JWTConfig{
		AccessSecret:     "test-access-secret",
		RefreshSecret:    "test-refresh-secret",
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	})
}

func setupGate(t *testing.T, requiredRoles ...string) (*gin.Engine, *fakeDirectory, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := testTokenManager()
	directory := &fakeDirectory{byID: make(map[uuid.UUID]*users.User)}
	m := NewAuthMiddleware(tokens, directory)

	engine := gin.New()
	handlers := []gin.HandlerFunc{m.Authenticate()}
	if len(requiredRoles) > 0 {
		handlers = append(handlers, m.RequireRoles(requiredRoles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString("user_id"),
			"user_role": c.GetString("user_role"),
		})
	})
	engine.GET("/protected", handlers...)

	return engine, directory, tokens
}

func addUser(directory *fakeDirectory, roleName string, active bool) *users.User {
	user := &users.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		Role:     roles.Role{ID: uuid.New(), Name: roleName},
		IsActive: active,
	}
	directory.byID[user.ID] = user
	return user
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	engine, _, _ := setupGate(t)

	w := doRequest(engine, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	engine, _, _ := setupGate(t)

	for _, header := range []string{"Token abc", "Bearer"} {
		w := doRequest(engine, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	engine, _, _ := setupGate(t)

	w := doRequest(engine, "Bearer not.a.real.token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthenticateVanishedUser(t *testing.T) {
	engine, _, tokens := setupGate(t)

	// Token verifies but its subject no longer exists.
	token, err := tokens.IssueAccessToken(uuid.NewString(), roles.RoleClient)
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	engine, directory, tokens := setupGate(t)
	user := addUser(directory, roles.RoleClient, false)

	token, err := tokens.IssueAccessToken(user.ID.String(), roles.RoleClient)
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticateSuccessUsesLiveRole(t *testing.T) {
	engine, directory, tokens := setupGate(t)
	user := addUser(directory, roles.RoleTherapist, true)

	// Claim says Client; the live record has since been promoted.
	token, err := tokens.IssueAccessToken(user.ID.String(), roles.RoleClient)
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.String())
	assert.Contains(t, w.Body.String(), roles.RoleTherapist)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	engine, directory, tokens := setupGate(t, roles.RoleAdmin, roles.RoleTherapist)
	user := addUser(directory, roles.RoleTherapist, true)

	token, err := tokens.IssueAccessToken(user.ID.String(), roles.RoleTherapist)
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	engine, directory, tokens := setupGate(t, roles.RoleAdmin)
	user := addUser(directory, roles.RoleClient, true)

	token, err := tokens.IssueAccessToken(user.ID.String(), roles.RoleClient)
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden: insufficient privileges")
}

// RequireRoles wired without Authenticate reports the missing identity as
// 401, not 403.
func TestRequireRolesWithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(testTokenManager(), &fakeDirectory{byID: map[uuid.UUID]*users.User{}})

	engine := gin.New()
	engine.GET("/miswired", m.RequireRoles(roles.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/miswired", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authenticated")
}
