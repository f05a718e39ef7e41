package route

import (
	"net/http"

	"TripWeaver/controllers"
	"TripWeaver/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	planController := controllers.NewPlanController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterPlanRoutes(v1Routes, planController)

		v1Routes.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}
