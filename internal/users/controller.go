package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"praxis/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) ListUsers(ctx *gin.Context) {
	list, err := c.service.ListUsers(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch users", nil, nil)
		return
	}

	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, ToResponse(&list[i]))
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Users retrieved successfully", out, nil)
}

func (c *Controller) GetUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	user, err := c.service.GetUser(ctx.Request.Context(), id)
	if err != nil {
		if err == ErrUserNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch user", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User retrieved successfully", ToResponse(user), nil)
}

func (c *Controller) UpdateUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	user, err := c.service.UpdateUser(ctx.Request.Context(), id, req)
	if err != nil {
		if err == ErrUserNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update user", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User updated successfully", ToResponse(user), nil)
}

func (c *Controller) DeactivateUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	if err := c.service.DeactivateUser(ctx.Request.Context(), id); err != nil {
		if err == ErrUserNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to deactivate user", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User deactivated successfully", nil, nil)
}
