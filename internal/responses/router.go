package responses

import "github.com/gin-gonic/gin"

// SetupResponseRoutes registers questionnaire-response routes. Submission is
// open to clients and admins; reading across users is staff-only.
func SetupResponseRoutes(rg *gin.RouterGroup, controller *Controller, submitRoles gin.HandlerFunc, staffRoles gin.HandlerFunc, authenticate gin.HandlerFunc) {
	group := rg.Group("/questionnaire-responses")
	group.Use(authenticate)
	{
		group.POST("", submitRoles, controller.CreateResponse)
		group.PUT("/:id", submitRoles, controller.UpdateResponse)

		group.GET("", staffRoles, controller.ListResponses)
		group.GET("/:id", staffRoles, controller.GetResponse)
		group.GET("/user/:userId", staffRoles, controller.ListByUser)
		group.GET("/appointment/:appointmentId", staffRoles, controller.ListByAppointment)
		group.DELETE("/:id", staffRoles, controller.DeleteResponse)
	}
}
