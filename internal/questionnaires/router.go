package questionnaires

import "github.com/gin-gonic/gin"

// SetupQuestionnaireRoutes registers questionnaire routes. Reads are open to
// any authenticated caller; management is restricted by the adminOnly chain.
func SetupQuestionnaireRoutes(rg *gin.RouterGroup, controller *Controller, authenticate gin.HandlerFunc, adminOnly ...gin.HandlerFunc) {
	questionnaires := rg.Group("/questionnaires")
	questionnaires.Use(authenticate)
	{
		questionnaires.GET("", controller.ListQuestionnaires)
		questionnaires.GET("/:id", controller.GetQuestionnaire)
		questionnaires.GET("/creator/:userId", controller.ListByCreator)
	}

	admin := rg.Group("/admin/questionnaires")
	admin.Use(authenticate)
	admin.Use(adminOnly...)
	{
		admin.POST("", controller.CreateQuestionnaire)
		admin.PUT("/:id", controller.UpdateQuestionnaire)
		admin.DELETE("/:id", controller.DeleteQuestionnaire)
	}
}
