package db_models

import (
	"fmt"
	"strings"
)

// TripRecord is one saved trip. It is immutable once appended to the store.
type TripRecord struct {
	ID            string   `json:"id,omitempty"`
	Origin        string   `json:"from"`
	Destination   string   `json:"destination"`
	Days          int      `json:"days"`
	Budget        string   `json:"budget"`
	TravelerType  string   `json:"pax"`
	Interests     []string `json:"interests"`
	GeneratedAt   float64  `json:"generated_at"`
	ItineraryText string   `json:"itinerary_text"`
}

// Title is the list label of a saved trip. A record with no origin,
// destination or days is "Unnamed Trip", still followed by its interests.
func (t TripRecord) Title() string {
	interests := strings.Join(t.Interests, ", ")
	if t.Origin == "" && t.Destination == "" && t.Days == 0 {
		if interests == "" {
			return "Unnamed Trip"
		}
		return "Unnamed Trip | " + interests
	}

	origin, destination, days := t.Origin, t.Destination, ""
	if origin == "" {
		origin = "Unknown"
	}
	if destination == "" {
		destination = "Unknown"
	}
	if t.Days > 0 {
		days = fmt.Sprintf("%d", t.Days)
	}

	return fmt.Sprintf("%s → %s | %s days | %s", origin, destination, days, interests)
}
