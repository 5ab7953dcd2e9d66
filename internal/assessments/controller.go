package assessments

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

func (c *Controller) SubmitIntake(ctx *gin.Context) {
	var req IntakeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.SubmitIntake(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyAnswers):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		case errors.Is(err, ErrClientRoleMissing):
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Intake is not available", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to submit assessment", nil, nil)
		}
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Assessment submitted successfully", result, nil)
}

func (c *Controller) GetAssessment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid assessment ID", nil, nil)
		return
	}

	assessment, err := c.service.GetAssessment(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAssessmentNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Assessment not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch assessment", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Assessment retrieved successfully", assessment, nil)
}

func (c *Controller) ListAssessments(ctx *gin.Context) {
	list, err := c.service.ListAssessments(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch assessments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Assessments retrieved successfully", list, nil)
}

func (c *Controller) ListByUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	list, err := c.service.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch assessments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Assessments retrieved successfully", list, nil)
}

func (c *Controller) DeleteAssessment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid assessment ID", nil, nil)
		return
	}

	if err := c.service.DeleteAssessment(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrAssessmentNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Assessment not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete assessment", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Assessment deleted successfully", nil, nil)
}
