package roles

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

func (c *Controller) CreateRole(ctx *gin.Context) {
	var req CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	role, err := c.service.CreateRole(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create role", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Role created successfully", role, nil)
}

func (c *Controller) GetRole(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid role ID", nil, nil)
		return
	}

	role, err := c.service.GetRole(ctx.Request.Context(), id)
	if err != nil {
		if err == ErrRoleNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Role not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch role", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Role retrieved successfully", role, nil)
}

func (c *Controller) ListRoles(ctx *gin.Context) {
	list, err := c.service.ListRoles(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch roles", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Roles retrieved successfully", list, nil)
}

func (c *Controller) UpdateRole(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid role ID", nil, nil)
		return
	}

	var req UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	role, err := c.service.UpdateRole(ctx.Request.Context(), id, req)
	if err != nil {
		if err == ErrRoleNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Role not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update role", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Role updated successfully", role, nil)
}

func (c *Controller) DeleteRole(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid role ID", nil, nil)
		return
	}

	if err := c.service.DeleteRole(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrRoleNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Role not found", nil, nil)
		case ErrBuiltinRoleImmutable:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Built-in roles cannot be deleted", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete role", nil, nil)
		}
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Role deleted successfully", nil, nil)
}
