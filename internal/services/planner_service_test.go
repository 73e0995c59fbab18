package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

func jammuRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Origin:       "Delhi",
		Destination:  "Jammu, India",
		Days:         3,
		Budget:       request_models.BudgetModerate,
		TravelerType: request_models.TravelerCouple,
		Interests:    []string{"Food", "Culture"},
	}
}

func newPlanner(gen utils.TextGeneratorInterface, client utils.PlacesClientInterface) services.PlannerServiceInterface {
	logger := zap.NewNop()
	return services.NewPlannerService(
		services.NewPromptService(),
		services.NewItineraryService(gen, "GOOGLE_API_KEY", 0, logger),
		services.NewPlaceService(client, logger),
		logger,
	)
}

func TestPlannerService_PlanTrip_endToEnd(t *testing.T) {
	var prompt string
	gen := &fakeGenerator{generate: func(_ context.Context, p string) (string, error) {
		prompt = p
		return "Day 1: Visit Bahu Fort.", nil
	}}
	var queries []string
	client := &fakePlacesClient{textSearch: func(_ context.Context, query string) ([]utils.PlaceCandidate, error) {
		queries = append(queries, query)
		if strings.HasPrefix(query, "top ") {
			return candidates(8), nil
		}
		return []utils.PlaceCandidate{{PlaceID: "bahu", Name: "Bahu Fort"}}, nil
	}}

	resp := newPlanner(gen, client).PlanTrip(context.Background(), jammuRequest())

	assert.Contains(t, prompt, "Create a 3-day travel itinerary for Couple traveling to Jammu, India.")
	assert.Contains(t, prompt, "Interests: Food, Culture.")

	require.NotNil(t, resp.Trip)
	assert.Empty(t, resp.GenerationError)
	assert.Equal(t, "Day 1: Visit Bahu Fort.", resp.Trip.ItineraryText)
	assert.Equal(t, "Delhi", resp.Trip.Origin)
	assert.Equal(t, "Moderate", resp.Trip.Budget)
	assert.Equal(t, "Couple", resp.Trip.TravelerType)

	assert.Len(t, resp.TopPlaces, services.TopPlacesPanelSize)
	require.Len(t, resp.SuggestedPlaces, 1)
	assert.Equal(t, "Bahu Fort", resp.SuggestedPlaces[0].Name)
	assert.Empty(t, resp.Warnings)

	assert.Contains(t, queries, "top tourist_attraction in Jammu, India")
	assert.Contains(t, queries, "Bahu Fort in Jammu, India")
}

func TestPlannerService_PlanTrip_generationFailure(t *testing.T) {
	lookups := 0
	client := &fakePlacesClient{textSearch: func(_ context.Context, query string) ([]utils.PlaceCandidate, error) {
		if !strings.HasPrefix(query, "top ") {
			lookups++
		}
		return candidates(2), nil
	}}

	resp := newPlanner(nil, client).PlanTrip(context.Background(), jammuRequest())

	assert.Nil(t, resp.Trip)
	assert.Equal(t, "ERROR: GOOGLE_API_KEY not set.", resp.GenerationError)
	assert.Len(t, resp.TopPlaces, 2, "top places are shown even without an itinerary")
	assert.Empty(t, resp.SuggestedPlaces)
	assert.Zero(t, lookups)
}

func TestPlannerService_PlanTrip_backendErrorText(t *testing.T) {
	gen := &fakeGenerator{generate: func(context.Context, string) (string, error) {
		return "", errors.New("quota exceeded")
	}}

	resp := newPlanner(gen, nil).PlanTrip(context.Background(), jammuRequest())

	assert.Nil(t, resp.Trip)
	assert.Contains(t, resp.GenerationError, "quota exceeded")
}

func TestPlannerService_PlanTrip_placesFailureKeepsItinerary(t *testing.T) {
	gen := &fakeGenerator{generate: func(context.Context, string) (string, error) {
		return "Day 1: Visit Bahu Fort.\nDay 2: Explore Raghunath Temple.", nil
	}}
	client := &fakePlacesClient{textSearch: func(context.Context, string) ([]utils.PlaceCandidate, error) {
		return nil, errors.New("REQUEST_DENIED")
	}}

	resp := newPlanner(gen, client).PlanTrip(context.Background(), jammuRequest())

	require.NotNil(t, resp.Trip)
	assert.Empty(t, resp.TopPlaces)
	assert.Empty(t, resp.SuggestedPlaces)
	require.Len(t, resp.Warnings, 1, "identical warnings collapse")
	assert.Contains(t, resp.Warnings[0], "REQUEST_DENIED")
}

func TestPlannerService_PlanTrip_placesNotConfigured(t *testing.T) {
	gen := &fakeGenerator{generate: func(context.Context, string) (string, error) {
		return "Day 1: Visit Bahu Fort.", nil
	}}

	resp := newPlanner(gen, nil).PlanTrip(context.Background(), jammuRequest())

	require.NotNil(t, resp.Trip)
	assert.Equal(t, []string{"Google Places error: GOOGLE_MAPS_API_KEY not set"}, resp.Warnings)
}

func TestPlannerService_PlanTrip_dedupesSuggestedPlaces(t *testing.T) {
	gen := &fakeGenerator{generate: func(context.Context, string) (string, error) {
		return "Visit Bahu Fort\nExplore Bahu Fort area\nStay at Hotel Asia", nil
	}}
	client := &fakePlacesClient{textSearch: func(_ context.Context, query string) ([]utils.PlaceCandidate, error) {
		switch {
		case strings.HasPrefix(query, "top "):
			return nil, nil
		case strings.HasPrefix(query, "Bahu Fort"):
			return []utils.PlaceCandidate{{PlaceID: "bahu", Name: "Bahu Fort"}}, nil
		default:
			return []utils.PlaceCandidate{{PlaceID: "asia", Name: "Hotel Asia Jammu"}}, nil
		}
	}}

	resp := newPlanner(gen, client).PlanTrip(context.Background(), jammuRequest())

	names := []string{}
	for _, place := range resp.SuggestedPlaces {
		names = append(names, place.Name)
	}
	assert.Equal(t, []string{"Bahu Fort", "Hotel Asia Jammu"}, names)
}

func TestPlannerService_PlanTrip_noLocationsInText(t *testing.T) {
	gen := &fakeGenerator{generate: func(context.Context, string) (string, error) {
		return "Relax and enjoy.", nil
	}}
	client := &fakePlacesClient{textSearch: func(context.Context, string) ([]utils.PlaceCandidate, error) {
		return nil, nil
	}}

	resp := newPlanner(gen, client).PlanTrip(context.Background(), jammuRequest())

	require.NotNil(t, resp.Trip)
	assert.NotNil(t, resp.SuggestedPlaces)
	assert.Empty(t, resp.SuggestedPlaces)
}
