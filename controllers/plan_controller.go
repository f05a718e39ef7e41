package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"TripWeaver/models"
	"TripWeaver/services"
	"TripWeaver/utils"
)

type PlanController struct {
	PlanService *services.PlanService
}

func NewPlanController() *PlanController {
	return &PlanController{
		PlanService: services.NewPlanService(),
	}
}

// CreatePlan builds a fresh itinerary. Regenerate is the same call
// with exclude_ids carrying the previous plan's place ids.
func (pc *PlanController) CreatePlan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid plan request: "+err.Error())
		return
	}

	plan, err := pc.PlanService.BuildPlan(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan generated successfully", plan)
}

// SwapStop replaces a single stop in an existing plan.
func (pc *PlanController) SwapStop(c *gin.Context) {
	var req models.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid swap request: "+err.Error())
		return
	}

	plan, err := pc.PlanService.SwapStop(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stop swapped successfully", plan)
}
