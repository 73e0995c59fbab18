package controllers

import (
	"github.com/gin-gonic/gin"

	"roamio/internal/config"
	"roamio/pkg/utils"
)

type HealthController struct {
	cfg config.Config
}

func NewHealthController(cfg config.Config) *HealthController {
	return &HealthController{cfg: cfg}
}

type healthResponse struct {
	Provider           string   `json:"itinerary_provider"`
	MissingCredentials []string `json:"missing_credentials"`
}

// Health reports liveness plus which credentials are absent, so a running
// but unconfigured server is easy to spot.
func (h *HealthController) Health(c *gin.Context) {
	missing := h.cfg.MissingCredentials()
	if missing == nil {
		missing = []string{}
	}
	utils.RespondSuccess(c, healthResponse{
		Provider:           h.cfg.ItineraryProvider,
		MissingCredentials: missing,
	}, "ok")
}
