package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"praxis/internal/shared/config"
	"praxis/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	cfg       *config.Config
	validator *validator.Validate
}

func NewController(service Service, cfg *config.Config) *Controller {
	return &Controller{
		service:   service,
		cfg:       cfg,
		validator: validator.New(),
	}
}

func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrUnknownRole:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid role", nil, nil)
		case ErrUserAlreadyExists:
			response.RespondJSON(ctx, "error", http.StatusConflict, "User with this email already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to register user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User registered successfully", resp, nil)
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid credentials", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to login", nil, nil)
		return
	}

	c.setRefreshCookie(ctx, result.RefreshToken)
	response.RespondJSON(ctx, "success", http.StatusOK, "Login successful", result, nil)
}

func (c *Controller) Refresh(ctx *gin.Context) {
	token, err := ctx.Cookie(c.cfg.Auth.CookieName)
	if err != nil || token == "" {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Unauthorized", nil, nil)
		return
	}

	accessToken, err := c.service.Refresh(ctx.Request.Context(), token)
	if err != nil {
		switch err {
		case ErrUnauthorized:
			response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Unauthorized", nil, nil)
		case ErrInvalidToken:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Invalid refresh token", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to refresh token", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Token refreshed successfully", RefreshResponse{AccessToken: accessToken}, nil)
}

func (c *Controller) Logout(ctx *gin.Context) {
	token, _ := ctx.Cookie(c.cfg.Auth.CookieName)

	if err := c.service.Logout(ctx.Request.Context(), token); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to logout", nil, nil)
		return
	}

	c.clearRefreshCookie(ctx)
	response.RespondJSON(ctx, "success", http.StatusOK, "Logged out", nil, nil)
}

func (c *Controller) GetMe(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Not authenticated", nil, nil)
		return
	}

	email, _ := ctx.Get("user_email")
	role, _ := ctx.Get("user_role")

	response.RespondJSON(ctx, "success", http.StatusOK, "User data retrieved successfully", gin.H{
		"id":    userID,
		"email": email,
		"role":  role,
	}, nil)
}

func (c *Controller) setRefreshCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(
		c.cfg.Auth.CookieName,
		token,
		int(c.cfg.JWT.RefreshExpiresIn.Seconds()),
		"/",
		c.cfg.Auth.CookieDomain,
		c.cfg.Auth.CookieSecure,
		c.cfg.Auth.CookieHTTPOnly,
	)
}

func (c *Controller) clearRefreshCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(
		c.cfg.Auth.CookieName,
		"",
		-1,
		"/",
		c.cfg.Auth.CookieDomain,
		c.cfg.Auth.CookieSecure,
		c.cfg.Auth.CookieHTTPOnly,
	)
}
