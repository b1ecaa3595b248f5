package app

import (
	"github.com/Saurabh6266/Python-Learning-Platform/docs"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/monitoring"
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
		api.GET("/health", c.health.Check)
		api.POST("/login", c.user.Login)

		// Catalogs. The fixed paths must be registered before the :id route.
		api.GET("/resources/types", c.content.ListResourceTypes)
		api.GET("/resources/tags", c.content.ListTags)
		api.GET("/resources", c.content.ListResources)
		api.GET("/resources/:id", c.content.GetResource)
		api.GET("/projects", c.content.ListProjects)
		api.GET("/projects/:id", c.content.GetProject)

		users := api.Group("/users/:username")
		{
			users.GET("/progress", c.progress.GetProgress)
			users.PUT("/progress", c.progress.ReplaceProgress)
			users.POST("/progress/complete", c.progress.MarkCompleted)
			users.POST("/progress/uncomplete", c.progress.UnmarkCompleted)
			users.POST("/level-up", c.progress.LevelUp)
			users.PUT("/level", c.user.SetLevel)
			users.GET("/recommendations", c.progress.GetRecommendations)
			users.GET("/streak", c.progress.GetStreak)
			users.POST("/streak", c.progress.RecordActivity)
		}

		community := api.Group("/community")
		{
			community.GET("/categories", c.community.ListCategories)
			community.GET("/topics", c.community.ListTopics)
			community.POST("/topics", c.community.CreateTopic)
			community.POST("/topics/:id/replies", c.community.AddReply)
		}

		practice := api.Group("/practice")
		{
			practice.GET("/problems", c.practice.ListProblems)
			practice.GET("/users/:username/problems", c.practice.ListProblemsForUser)
			practice.GET("/users/:username/recommendations", c.practice.Recommend)
			practice.GET("/users/:username/completed", c.practice.ListCompleted)
			practice.POST("/users/:username/completed", c.practice.MarkCompleted)
			practice.DELETE("/users/:username/completed/:problem_id", c.practice.UnmarkCompleted)
			practice.GET("/users/:username/stats", c.practice.GetStats)
		}
	}
}
