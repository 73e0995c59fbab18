package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

const (
	DefaultPlaceCategory = "tourist_attraction"
	DefaultPlaceLimit    = 5
)

// PlaceSearchResult is a bulk search outcome. Warning is set when the
// backend could not be used; Places is then empty.
type PlaceSearchResult struct {
	Places  []response_models.Place
	Warning string
}

// PlaceLookupResult is a by-name lookup outcome. Place is nil when nothing
// matched or the backend failed; Warning says which.
type PlaceLookupResult struct {
	Place   *response_models.Place
	Warning string
}

type PlaceServiceInterface interface {
	SearchTopPlaces(ctx context.Context, destination, category string, limit int) PlaceSearchResult
	SearchPlaceByName(ctx context.Context, name, destination string) PlaceLookupResult
}

type PlaceService struct {
	client utils.PlacesClientInterface
	logger *zap.Logger
}

// NewPlaceService accepts a nil client; lookups then return empty results
// with a configuration warning.
func NewPlaceService(client utils.PlacesClientInterface, logger *zap.Logger) PlaceServiceInterface {
	return &PlaceService{
		client: client,
		logger: logger,
	}
}

const placesNotConfigured = "Google Places error: GOOGLE_MAPS_API_KEY not set"

func (s *PlaceService) SearchTopPlaces(ctx context.Context, destination, category string, limit int) PlaceSearchResult {
	if category == "" {
		category = DefaultPlaceCategory
	}
	if limit <= 0 {
		limit = DefaultPlaceLimit
	}

	if s.client == nil {
		return PlaceSearchResult{Places: []response_models.Place{}, Warning: placesNotConfigured}
	}

	query := fmt.Sprintf("top %s in %s", category, destination)
	candidates, err := s.client.TextSearch(ctx, query)
	if err != nil {
		s.logger.Warn("top places search failed", zap.String("query", query), zap.Error(err))
		return PlaceSearchResult{Places: []response_models.Place{}, Warning: fmt.Sprintf("Google Places error: %v", err)}
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	places := make([]response_models.Place, 0, len(candidates))
	for _, candidate := range candidates {
		places = append(places, s.toPlace(candidate))
	}

	return PlaceSearchResult{Places: places}
}

// SearchPlaceByName takes the backend's first match and does no
// disambiguation between places sharing a name.
func (s *PlaceService) SearchPlaceByName(ctx context.Context, name, destination string) PlaceLookupResult {
	if s.client == nil {
		return PlaceLookupResult{Warning: placesNotConfigured}
	}

	query := fmt.Sprintf("%s in %s", name, destination)
	candidates, err := s.client.TextSearch(ctx, query)
	if err != nil {
		s.logger.Warn("place lookup failed", zap.String("query", query), zap.Error(err))
		return PlaceLookupResult{Warning: fmt.Sprintf("Google Places error: %v", err)}
	}

	if len(candidates) == 0 {
		return PlaceLookupResult{}
	}

	place := s.toPlace(candidates[0])
	return PlaceLookupResult{Place: &place}
}

func (s *PlaceService) toPlace(c utils.PlaceCandidate) response_models.Place {
	place := response_models.Place{
		Name:      c.Name,
		Address:   c.FormattedAddress,
		Rating:    c.Rating,
		MapsURL:   MapsURL(c.Name, c.PlaceID),
		PriceTier: PriceTierFromPointer(c.PriceLevel),
	}

	if len(c.Photos) > 0 && c.Photos[0].PhotoReference != "" {
		photo := s.client.PhotoURL(c.Photos[0].PhotoReference)
		place.PhotoURL = &photo
	}
	if len(c.Types) > 0 {
		place.Categories = c.Types
	}

	return place
}

// MapsURL is a Google Maps search link for a place.
func MapsURL(name, placeID string) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s&query_place_id=%s",
		strings.ReplaceAll(name, " ", "+"), placeID)
}

var priceTiers = map[int]string{
	1: "Budget",
	2: "Moderate",
	3: "Expensive",
	4: "Luxury",
}

// PriceTier maps a Places price level to its label; unknown levels give "".
func PriceTier(level int) string {
	return priceTiers[level]
}

func PriceTierFromPointer(level *int) string {
	if level == nil {
		return ""
	}
	return PriceTier(*level)
}
