package trips_fx

import (
	"go.uber.org/fx"

	"roamio/internal/config"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(provideTripRepo, services.NewTripService)

func provideTripRepo(cfg config.Config) repositories.TripRepository {
	return repositories.NewTripRepository(cfg.TripsFile)
}
