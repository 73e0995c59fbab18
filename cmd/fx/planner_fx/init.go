package planner_fx

import (
	"go.uber.org/fx"

	"roamio/internal/services"
)

var Module = fx.Provide(services.NewPlannerService)
