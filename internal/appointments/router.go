package appointments

import "github.com/gin-gonic/gin"

// SetupAppointmentRoutes mounts booking routes. Clients may book and see
// their own schedule; staff chains guard the wider listings and lifecycle
// operations.
func SetupAppointmentRoutes(rg *gin.RouterGroup, controller *Controller, authenticate gin.HandlerFunc, staffOnly gin.HandlerFunc, adminOnly gin.HandlerFunc) {
	appointments := rg.Group("/appointments")
	appointments.Use(authenticate)
	{
		appointments.POST("", controller.CreateAppointment)
		appointments.GET("/user/:userId", controller.ListByUser)
		appointments.GET("/:id", controller.GetAppointment)
		appointments.POST("/:id/cancel", controller.CancelAppointment)

		staff := appointments.Group("")
		staff.Use(staffOnly)
		{
			staff.GET("", controller.ListAppointments)
			staff.GET("/upcoming", controller.ListUpcoming)
			staff.GET("/therapist/:therapistId", controller.ListByTherapist)
			staff.PUT("/:id", controller.UpdateAppointment)
		}

		admin := appointments.Group("")
		admin.Use(adminOnly)
		{
			admin.DELETE("/:id", controller.DeleteAppointment)
		}
	}
}
