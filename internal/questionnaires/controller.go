package questionnaires

import (
	"errors"
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

func (c *Controller) CreateQuestionnaire(ctx *gin.Context) {
	var req CreateQuestionnaireRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	creatorID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Not authenticated", nil, nil)
		return
	}
	creatorUUID, err := uuid.Parse(creatorID.(string))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return
	}

	q, err := c.service.CreateQuestionnaire(ctx.Request.Context(), creatorUUID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidSchema) {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create questionnaire", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Questionnaire created successfully", q, nil)
}

func (c *Controller) GetQuestionnaire(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid questionnaire ID", nil, nil)
		return
	}

	q, err := c.service.GetQuestionnaire(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionnaireNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Questionnaire not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch questionnaire", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire retrieved successfully", q, nil)
}

func (c *Controller) ListQuestionnaires(ctx *gin.Context) {
	list, err := c.service.ListQuestionnaires(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch questionnaires", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaires retrieved successfully", list, nil)
}

func (c *Controller) ListByCreator(ctx *gin.Context) {
	createdBy, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	list, err := c.service.ListByCreator(ctx.Request.Context(), createdBy)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch questionnaires", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaires retrieved successfully", list, nil)
}

func (c *Controller) UpdateQuestionnaire(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid questionnaire ID", nil, nil)
		return
	}

	var req UpdateQuestionnaireRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	q, err := c.service.UpdateQuestionnaire(ctx.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuestionnaireNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Questionnaire not found", nil, nil)
		case errors.Is(err, ErrInvalidSchema):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update questionnaire", nil, nil)
		}
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire updated successfully", q, nil)
}

func (c *Controller) DeleteQuestionnaire(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid questionnaire ID", nil, nil)
		return
	}

	if err := c.service.DeleteQuestionnaire(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionnaireNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Questionnaire not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete questionnaire", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire deleted successfully", nil, nil)
}
