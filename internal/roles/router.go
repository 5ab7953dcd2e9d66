package roles

import "github.com/gin-gonic/gin"

// SetupRoleRoutes registers role management routes. The middleware chain is
// supplied by the caller so this package stays free of auth dependencies.
func SetupRoleRoutes(rg *gin.RouterGroup, controller *Controller, adminOnly ...gin.HandlerFunc) {
	admin := rg.Group("/admin/roles")
	admin.Use(adminOnly...)
	{
		admin.POST("", controller.CreateRole)
		admin.GET("", controller.ListRoles)
		admin.GET("/:id", controller.GetRole)
		admin.PUT("/:id", controller.UpdateRole)
		admin.DELETE("/:id", controller.DeleteRole)
	}
}
