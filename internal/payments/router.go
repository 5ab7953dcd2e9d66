package payments

import "github.com/gin-gonic/gin"

// SetupPaymentRoutes mounts payment routes. Recording a payment is open to
// authenticated users (the client confirms their own charge); everything
// else is admin bookkeeping.
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller, authenticate gin.HandlerFunc, adminOnly gin.HandlerFunc) {
	payments := rg.Group("/payments")
	payments.Use(authenticate)
	{
		payments.POST("", controller.RecordPayment)

		admin := payments.Group("")
		admin.Use(adminOnly)
		{
			admin.GET("", controller.ListPayments)
			admin.GET("/:id", controller.GetPayment)
			admin.GET("/user/:userId", controller.ListByUser)
			admin.PATCH("/:id/status", controller.UpdateStatus)
		}
	}
}
