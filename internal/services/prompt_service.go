package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"roamio/internal/models/request_models"
)

type PromptServiceInterface interface {
	BuildPrompt(destination string, days int, budget request_models.Budget, travelerType request_models.TravelerType, interests []string) string
	ExtractLocations(itineraryText string) []string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

const defaultInterests = "general sightseeing"

// BuildPrompt renders the itinerary instruction for the text generator.
// It is deterministic: the same arguments always give the same prompt.
func (p *PromptService) BuildPrompt(destination string, days int, budget request_models.Budget, travelerType request_models.TravelerType, interests []string) string {
	interestsTxt := defaultInterests
	if len(interests) > 0 {
		interestsTxt = strings.Join(interests, ", ")
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("Create a %d-day travel itinerary for %s traveling to %s. ", days, travelerType, destination))
	prompt.WriteString(fmt.Sprintf("Budget: %s. Interests: %s. ", budget, interestsTxt))
	prompt.WriteString("For each day: morning/afternoon/evening plan, costs, transport, and 3 restaurant suggestions. ")
	prompt.WriteString("Suggest stays with their location as Google Maps links. ")
	prompt.WriteString("Suggest restaurants with their location as Google Maps links. ")
	prompt.WriteString("Add a packing tip for the local climate. Keep it concise and friendly.")

	return prompt.String()
}

// A trigger phrase, any Unicode whitespace, then a run of letters, digits,
// spaces, commas, apostrophes and hyphens. Only the first match on each line
// counts. Go's \s is ASCII-only, so \p{Z} adds no-break and other spaces.
var locationPattern = regexp.MustCompile(`(Visit|Stay at|Hotel|Restaurant|Explore|Check-in at)[\s\p{Z}]+([A-Za-z0-9 ,'-]+)`)

// ExtractLocations pulls candidate place names out of generated itinerary
// text. It is a best-effort heuristic: misses and spurious matches are
// expected. Result has set semantics, ordered by first appearance.
func (p *PromptService) ExtractLocations(itineraryText string) []string {
	var locations []string

	for _, line := range strings.Split(itineraryText, "\n") {
		match := locationPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		location := strings.TrimSpace(match[2])
		if len(location) > 2 {
			locations = append(locations, location)
		}
	}

	return lo.Uniq(locations)
}
