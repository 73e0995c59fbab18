package places_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"roamio/internal/config"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

var Module = fx.Provide(providePlacesClient, services.NewPlaceService)

// providePlacesClient returns a nil client when no key is configured; the
// place service then answers with a warning instead of calling out.
func providePlacesClient(cfg config.Config, logger *zap.Logger) (utils.PlacesClientInterface, error) {
	if cfg.PlacesAPIKey == "" {
		logger.Warn("place lookup disabled", zap.String("missing", "GOOGLE_MAPS_API_KEY"))
		return nil, nil
	}

	client, err := utils.NewGooglePlacesClient(cfg.PlacesAPIKey, cfg.PlacesBaseURL, cfg.PlacesTimeout)
	if err != nil {
		return nil, err
	}
	return client, nil
}
