package response_models

import "roamio/internal/models/db_models"

// PlanResponse is everything one generation produces. Trip is nil when the
// itinerary could not be generated; GenerationError then says why.
type PlanResponse struct {
	Trip            *db_models.TripRecord `json:"trip,omitempty"`
	GenerationError string                `json:"generation_error,omitempty"`
	TopPlaces       []Place               `json:"top_places"`
	SuggestedPlaces []Place               `json:"suggested_places"`
	Warnings        []string              `json:"warnings,omitempty"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}

type TripResponse struct {
	db_models.TripRecord
	Title        string `json:"title"`
	GeneratedISO string `json:"generated_at_rfc3339,omitempty"`
	Failed       bool   `json:"itinerary_failed,omitempty"`
}
