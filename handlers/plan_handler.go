package handlers

import (
	"TripWeaver/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlanRoutes(router *gin.RouterGroup, planController *controllers.PlanController) {
	planGroup := router.Group("/plans")
	{
		planGroup.POST("/", planController.CreatePlan)

		planGroup.POST("/swap", planController.SwapStop)
	}
}
