package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

// GetTopPlaces godoc
// @Summary Top places at a destination
// @Tags Places
// @Produce json
// @Param destination query string true "Destination"
// @Param category query string false "Places type" default(tourist_attraction)
// @Param limit query int false "Max results" default(5) minimum(1) maximum(20)
// @Success 200 {object} response_models.PlaceSearchResponse
// @Failure 400 {object} utils.APIResponse
// @Router /places/top [get]
func (p *PlacesController) GetTopPlaces(c *gin.Context) {
	var query request_models.TopPlacesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}

	result := p.placeService.SearchTopPlaces(c.Request.Context(), query.Destination, query.Category, query.Limit)
	utils.RespondSuccess(c, response_models.PlaceSearchResponse{
		Places:  result.Places,
		Warning: result.Warning,
	}, "")
}

// SearchPlace godoc
// @Summary Look up one place by name
// @Tags Places
// @Produce json
// @Param name query string true "Place name"
// @Param destination query string true "Destination"
// @Success 200 {object} response_models.PlaceLookupResponse
// @Failure 400 {object} utils.APIResponse
// @Router /places/search [get]
func (p *PlacesController) SearchPlace(c *gin.Context) {
	var query request_models.PlaceByNameQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}

	result := p.placeService.SearchPlaceByName(c.Request.Context(), query.Name, query.Destination)
	utils.RespondSuccess(c, response_models.PlaceLookupResponse{
		Place:   result.Place,
		Warning: result.Warning,
	}, "")
}
