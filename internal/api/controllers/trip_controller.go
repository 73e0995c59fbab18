package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"roamio/internal/models/db_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// SaveTrip godoc
// @Summary Save a generated trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body db_models.TripRecord true "Trip to save"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	var trip db_models.TripRecord
	if err := c.ShouldBindJSON(&trip); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	saved, err := t.tripService.SaveTrip(c.Request.Context(), trip)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, toTripResponse(saved), "Trip saved")
}

// ListTrips godoc
// @Summary List saved trips, most recent first
// @Tags Trips
// @Produce json
// @Param limit query int false "Max trips; omit for all" minimum(1)
// @Success 200 {array} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			utils.HandleServiceError(c, utils.ErrInvalidPageSize)
			return
		}
		limit = n
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lo.Map(trips, func(trip db_models.TripRecord, _ int) response_models.TripResponse {
		return toTripResponse(trip)
	}), "")
}

// GetTrip godoc
// @Summary Get a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toTripResponse(trip), "")
}

func toTripResponse(trip db_models.TripRecord) response_models.TripResponse {
	return response_models.TripResponse{
		TripRecord:   trip,
		Title:        trip.Title(),
		GeneratedISO: utils.FormatRFC3339(utils.FromEpochSeconds(trip.GeneratedAt)),
		Failed:       services.IsFailedItineraryText(trip.ItineraryText),
	}
}
