package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type ItineraryController struct {
	plannerService services.PlannerServiceInterface
	promptService  services.PromptServiceInterface
}

func NewItineraryController(
	plannerService services.PlannerServiceInterface,
	promptService services.PromptServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		plannerService: plannerService,
		promptService:  promptService,
	}
}

// PlanTrip godoc
// @Summary Generate an itinerary
// @Description Generates a day-by-day itinerary and looks up the places it mentions.
// @Description A failed generation still returns 200 with generation_error set.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip preferences"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries [post]
func (i *ItineraryController) PlanTrip(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	plan := i.plannerService.PlanTrip(c.Request.Context(), req)

	message := "Itinerary generated successfully"
	if plan.Trip == nil {
		message = "Itinerary could not be generated"
	}
	utils.RespondSuccess(c, plan, message)
}

// PreviewPrompt godoc
// @Summary Preview the generation prompt
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip preferences"
// @Success 200 {object} response_models.PromptResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/prompt [post]
func (i *ItineraryController) PreviewPrompt(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	prompt := i.promptService.BuildPrompt(req.Destination, req.Days, req.Budget, req.TravelerType, req.Interests)
	utils.RespondSuccess(c, response_models.PromptResponse{Prompt: prompt}, "")
}
