package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"praxis/internal/shared/config"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carried by both token classes. The type claim prevents a refresh
// token from being replayed as an access token and vice versa.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies access and refresh tokens. Access tokens
// are short-lived and stateless; refresh tokens are long-lived and only
// trusted while present in the RefreshTokenStore. Distinct secrets keep the
// two classes independently rotatable.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration

	now func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessExpiresIn,
		refreshTTL:    cfg.RefreshExpiresIn,
		now:           time.Now,
	}
}

// IssueAccessToken produces a signed assertion of {identity, role} valid for
// the access window (15 minutes by default).
func (tm *TokenManager) IssueAccessToken(userID, role string) (string, error) {
	return tm.issue(userID, role, tokenTypeAccess, tm.accessSecret, tm.accessTTL)
}

// IssueRefreshToken produces the long-lived counterpart (7 days by default),
// signed with the refresh secret.
func (tm *TokenManager) IssueRefreshToken(userID, role string) (string, error) {
	return tm.issue(userID, role, tokenTypeRefresh, tm.refreshSecret, tm.refreshTTL)
}

func (tm *TokenManager) VerifyAccessToken(tokenString string) (*Claims, error) {
	return tm.verify(tokenString, tokenTypeAccess, tm.accessSecret)
}

func (tm *TokenManager) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return tm.verify(tokenString, tokenTypeRefresh, tm.refreshSecret)
}

// RefreshTTL exposes the refresh lifetime for cookie max-age and store expiry.
func (tm *TokenManager) RefreshTTL() time.Duration {
	return tm.refreshTTL
}

// AccessTTL exposes the access lifetime for expires_in style responses.
func (tm *TokenManager) AccessTTL() time.Duration {
	return tm.accessTTL
}

func (tm *TokenManager) issue(userID, role, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := tm.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "praxis",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (tm *TokenManager) verify(tokenString, wantType string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Type != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
