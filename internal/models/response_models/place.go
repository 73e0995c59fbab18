package response_models

// Place is a point of interest normalised from the places backend.
// Optional fields are nil/empty when the backend did not provide them.
type Place struct {
	Name       string   `json:"name"`
	Address    *string  `json:"address,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	PhotoURL   *string  `json:"photo_url,omitempty"`
	MapsURL    string   `json:"maps_url"`
	PriceTier  string   `json:"price_tier,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

type PlaceSearchResponse struct {
	Places  []Place `json:"places"`
	Warning string  `json:"warning,omitempty"`
}

type PlaceLookupResponse struct {
	Place   *Place `json:"place"`
	Warning string `json:"warning,omitempty"`
}
