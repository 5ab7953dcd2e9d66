package auth

import "github.com/gin-gonic/gin"

// SetupAuthRoutes registers the auth endpoints. The authenticate middleware
// and optional throttle are passed in by the caller; this package never
// imports the middleware package, which keeps the dependency graph acyclic.
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller, authenticate gin.HandlerFunc, throttle ...gin.HandlerFunc) {
	auth := rg.Group("/auth")
	auth.Use(throttle...)
	{
		// Public routes
		auth.POST("/register", controller.Register)
		auth.POST("/login", controller.Login)
		auth.POST("/refresh", controller.Refresh)
		auth.POST("/logout", controller.Logout)

		// Protected routes
		protected := auth.Group("")
		protected.Use(authenticate)
		{
			protected.GET("/me", controller.GetMe)
		}
	}
}
