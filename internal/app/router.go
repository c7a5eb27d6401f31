package app

import (
	"mvcc_assessment_backend/docs"
	"mvcc_assessment_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Questionnaire
		api.GET("/questions", c.assessment.GetQuestions)
		api.GET("/attributes", c.assessment.GetAttributes)
		api.POST("/submit", c.assessment.Submit)
		api.GET("/results/:id", c.assessment.GetResults)

		// Staff dashboard
		admin := api.Group("/admin")
		{
			admin.GET("/assessments", c.admin.ListAssessments)
			admin.GET("/assessments/export", c.admin.ExportAssessments)
			admin.GET("/assessments/:id", c.admin.GetAssessmentDetail)
		}
	}
}
