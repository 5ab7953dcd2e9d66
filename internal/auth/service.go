package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"praxis/internal/shared/config"
	"praxis/internal/users"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUnauthorized       = errors.New("unauthorized")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type service struct {
	repo   Repository
	tokens *TokenManager
	store  RefreshTokenStore
	cost   int
}

func NewService(repo Repository, tokens *TokenManager, store RefreshTokenStore, cfg *config.Config) Service {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}
	return &service{
		repo:   repo,
		tokens: tokens,
		store:  store,
		cost:   cost,
	}
}

// Register creates a user under an existing role. The response never carries
// the password or its hash.
func (s *service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	role, err := s.repo.FindRoleByName(ctx, req.Role)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		RoleID:    role.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Role:     role.Name,
	}, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password produce the same error so callers cannot enumerate accounts.
func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID.String(), user.Role.Name)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID.String(), user.Role.Name)
	if err != nil {
		return nil, err
	}

	if err := s.store.Add(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         user.Role.Name,
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}

// Refresh mints a new access token from a still-registered refresh token.
// A token absent from the store is treated the same as a missing cookie;
// a token that fails verification surfaces as ErrInvalidToken. The refresh
// token itself is not rotated.
func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrUnauthorized
	}

	ok, err := s.store.Contains(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrUnauthorized
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	return s.tokens.IssueAccessToken(claims.UserID, claims.Role)
}

// Logout revokes the refresh token. Revoking an unknown token is a no-op,
// so repeated logouts succeed.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.store.Remove(ctx, refreshToken)
}
