package appointments

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

func (c *Controller) CreateAppointment(ctx *gin.Context) {
	var req CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	appointment, err := c.service.CreateAppointment(ctx.Request.Context(), req)
	if err != nil {
		c.respondServiceError(ctx, err, "Failed to create appointment")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Appointment created successfully", appointment, nil)
}

func (c *Controller) GetAppointment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid appointment ID", nil, nil)
		return
	}

	appointment, err := c.service.GetAppointment(ctx.Request.Context(), id)
	if err != nil {
		c.respondServiceError(ctx, err, "Failed to fetch appointment")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointment retrieved successfully", appointment, nil)
}

func (c *Controller) ListAppointments(ctx *gin.Context) {
	list, err := c.service.ListAppointments(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch appointments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointments retrieved successfully", list, nil)
}

func (c *Controller) ListByUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	list, err := c.service.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch appointments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointments retrieved successfully", list, nil)
}

func (c *Controller) ListByTherapist(ctx *gin.Context) {
	therapistID, err := uuid.Parse(ctx.Param("therapistId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid therapist ID", nil, nil)
		return
	}

	list, err := c.service.ListByTherapist(ctx.Request.Context(), therapistID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch appointments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointments retrieved successfully", list, nil)
}

func (c *Controller) ListUpcoming(ctx *gin.Context) {
	list, err := c.service.ListUpcoming(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch appointments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointments retrieved successfully", list, nil)
}

func (c *Controller) UpdateAppointment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid appointment ID", nil, nil)
		return
	}

	var req UpdateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	appointment, err := c.service.UpdateAppointment(ctx.Request.Context(), id, req)
	if err != nil {
		c.respondServiceError(ctx, err, "Failed to update appointment")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointment updated successfully", appointment, nil)
}

func (c *Controller) CancelAppointment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid appointment ID", nil, nil)
		return
	}

	appointment, err := c.service.CancelAppointment(ctx.Request.Context(), id)
	if err != nil {
		c.respondServiceError(ctx, err, "Failed to cancel appointment")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointment cancelled successfully", appointment, nil)
}

func (c *Controller) DeleteAppointment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid appointment ID", nil, nil)
		return
	}

	if err := c.service.DeleteAppointment(ctx.Request.Context(), id); err != nil {
		c.respondServiceError(ctx, err, "Failed to delete appointment")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Appointment deleted successfully", nil, nil)
}

func (c *Controller) respondServiceError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Appointment not found", nil, nil)
	case errors.Is(err, ErrScheduledInPast),
		errors.Is(err, ErrSelfBooking),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrAppointmentNotEditable):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
