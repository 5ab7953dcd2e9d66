package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"praxis/internal/questionnaires"
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

func (c *Controller) CreateResponse(ctx *gin.Context) {
	var req CreateResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.CreateResponse(ctx.Request.Context(), req)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Questionnaire response created successfully", resp, nil)
}

func (c *Controller) GetResponse(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid response ID", nil, nil)
		return
	}

	resp, err := c.service.GetResponse(ctx.Request.Context(), id)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire response retrieved successfully", resp, nil)
}

func (c *Controller) ListResponses(ctx *gin.Context) {
	list, err := c.service.ListResponses(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch questionnaire responses", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire responses retrieved successfully", list, nil)
}

func (c *Controller) ListByUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	list, err := c.service.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch questionnaire responses", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire responses retrieved successfully", list, nil)
}

func (c *Controller) ListByAppointment(ctx *gin.Context) {
	appointmentID, err := uuid.Parse(ctx.Param("appointmentId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid appointment ID", nil, nil)
		return
	}

	list, err := c.service.ListByAppointment(ctx.Request.Context(), appointmentID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch questionnaire responses", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire responses retrieved successfully", list, nil)
}

func (c *Controller) UpdateResponse(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid response ID", nil, nil)
		return
	}

	var req UpdateResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.UpdateResponse(ctx.Request.Context(), id, req)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire response updated successfully", resp, nil)
}

func (c *Controller) DeleteResponse(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid response ID", nil, nil)
		return
	}

	if err := c.service.DeleteResponse(ctx.Request.Context(), id); err != nil {
		c.respondServiceError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Questionnaire response deleted successfully", nil, nil)
}

func (c *Controller) respondServiceError(ctx *gin.Context, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.ValidationFailed(ctx, "Answer set failed validation", validationErr.Result.Errors)
	case errors.Is(err, ErrResponseNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Questionnaire response not found", nil, nil)
	case errors.Is(err, questionnaires.ErrQuestionnaireNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Questionnaire not found", nil, nil)
	case errors.Is(err, ErrDuplicateResponse):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Response already exists for this appointment and questionnaire", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Internal server error", nil, nil)
	}
}
