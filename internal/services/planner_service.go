package services

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

// TopPlacesPanelSize is how many attractions the planner shows next to an itinerary.
const TopPlacesPanelSize = 6

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.TripRequest) response_models.PlanResponse
}

type PlannerService struct {
	promptService    PromptServiceInterface
	itineraryService ItineraryServiceInterface
	placeService     PlaceServiceInterface
	logger           *zap.Logger
}

func NewPlannerService(
	promptService PromptServiceInterface,
	itineraryService ItineraryServiceInterface,
	placeService PlaceServiceInterface,
	logger *zap.Logger,
) PlannerServiceInterface {
	return &PlannerService{
		promptService:    promptService,
		itineraryService: itineraryService,
		placeService:     placeService,
		logger:           logger,
	}
}

// PlanTrip runs prompt → generation → extraction → place lookup. Every
// failure on the way degrades the response instead of aborting it.
func (p *PlannerService) PlanTrip(ctx context.Context, req request_models.TripRequest) response_models.PlanResponse {
	resp := response_models.PlanResponse{
		TopPlaces:       []response_models.Place{},
		SuggestedPlaces: []response_models.Place{},
	}

	prompt := p.promptService.BuildPrompt(req.Destination, req.Days, req.Budget, req.TravelerType, req.Interests)
	itinerary := p.itineraryService.Generate(ctx, prompt)

	top := p.placeService.SearchTopPlaces(ctx, req.Destination, DefaultPlaceCategory, TopPlacesPanelSize)
	resp.TopPlaces = top.Places
	resp.Warnings = appendWarning(resp.Warnings, top.Warning)

	if !itinerary.OK {
		resp.GenerationError = itinerary.Reason
		return resp
	}

	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}
	resp.Trip = &db_models.TripRecord{
		Origin:        req.Origin,
		Destination:   req.Destination,
		Days:          req.Days,
		Budget:        string(req.Budget),
		TravelerType:  string(req.TravelerType),
		Interests:     interests,
		GeneratedAt:   utils.NowEpochSeconds(),
		ItineraryText: itinerary.Text,
	}

	locations := p.promptService.ExtractLocations(itinerary.Text)
	var suggested []response_models.Place
	for _, location := range locations {
		lookup := p.placeService.SearchPlaceByName(ctx, location, req.Destination)
		resp.Warnings = appendWarning(resp.Warnings, lookup.Warning)
		if lookup.Place != nil {
			suggested = append(suggested, *lookup.Place)
		}
	}
	// Different extracted names often resolve to the same place.
	resp.SuggestedPlaces = lo.UniqBy(suggested, func(place response_models.Place) string {
		return place.Name
	})

	p.logger.Info("trip planned",
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
		zap.Int("locations", len(locations)),
		zap.Int("suggested_places", len(resp.SuggestedPlaces)),
		zap.Int("warnings", len(resp.Warnings)))

	return resp
}

// appendWarning adds w unless it is empty or already present, so one
// misconfigured backend yields one warning rather than one per lookup.
func appendWarning(warnings []string, w string) []string {
	if w == "" || lo.Contains(warnings, w) {
		return warnings
	}
	return append(warnings, w)
}
