package users

import "github.com/gin-gonic/gin"

// SetupUserRoutes registers user administration routes behind the supplied
// admin middleware chain.
func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller, adminOnly ...gin.HandlerFunc) {
	admin := rg.Group("/admin/users")
	admin.Use(adminOnly...)
	{
		admin.GET("", controller.ListUsers)
		admin.GET("/:id", controller.GetUser)
		admin.PUT("/:id", controller.UpdateUser)
		admin.DELETE("/:id", controller.DeactivateUser)
	}
}
