package payments

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

func (c *Controller) RecordPayment(ctx *gin.Context) {
	var req RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	payment, err := c.service.RecordPayment(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicatePayment) {
			response.RespondJSON(ctx, "error", http.StatusConflict, "Payment already recorded", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to record payment", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Payment recorded successfully", payment, nil)
}

func (c *Controller) GetPayment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid payment ID", nil, nil)
		return
	}

	payment, err := c.service.GetPayment(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Payment not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch payment", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Payment retrieved successfully", payment, nil)
}

func (c *Controller) ListPayments(ctx *gin.Context) {
	list, err := c.service.ListPayments(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch payments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", list, nil)
}

func (c *Controller) ListByUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	list, err := c.service.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch payments", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", list, nil)
}

func (c *Controller) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid payment ID", nil, nil)
		return
	}

	var req UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	payment, err := c.service.UpdateStatus(ctx.Request.Context(), id, Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Payment not found", nil, nil)
		case errors.Is(err, ErrInvalidStatusChange):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update payment", nil, nil)
		}
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Payment updated successfully", payment, nil)
}
