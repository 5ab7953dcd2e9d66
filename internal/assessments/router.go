package assessments

import "github.com/gin-gonic/gin"

// SetupAssessmentRoutes mounts intake routes. Submission is public so
// prospective clients can reach the practice without an account; reading
// and pruning intake data is admin-only.
func SetupAssessmentRoutes(rg *gin.RouterGroup, controller *Controller, adminOnly ...gin.HandlerFunc) {
	assessments := rg.Group("/assessments")
	{
		assessments.POST("", controller.SubmitIntake)

		admin := assessments.Group("")
		admin.Use(adminOnly...)
		{
			admin.GET("", controller.ListAssessments)
			admin.GET("/:id", controller.GetAssessment)
			admin.GET("/user/:userId", controller.ListByUser)
			admin.DELETE("/:id", controller.DeleteAssessment)
		}
	}
}
