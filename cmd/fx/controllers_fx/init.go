package controllers_fx

import (
	"go.uber.org/fx"

	"roamio/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewTripController))
