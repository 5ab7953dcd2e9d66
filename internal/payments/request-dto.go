package payments

type RecordPaymentRequest struct {
	UserID          string `json:"user_id" binding:"required,uuid"`
	AppointmentID   string `json:"appointment_id" binding:"omitempty,uuid"`
	StripePaymentID string `json:"stripe_payment_id" binding:"required,min=3,max=255"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	Currency        string `json:"currency" binding:"omitempty,len=3"`
	Description     string `json:"description" binding:"omitempty,max=500"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed failed refunded"`
}
