package services_test

import (
	"context"

	"roamio/internal/models/db_models"
	"roamio/internal/repositories"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

// fakeGenerator is a hand-written test double for utils.TextGeneratorInterface.
type fakeGenerator struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.generate(ctx, prompt)
}
func (f *fakeGenerator) Provider() string { return "Fake" }

var _ utils.TextGeneratorInterface = (*fakeGenerator)(nil)

// fakePlacesClient answers TextSearch from a function; set only what the test needs.
type fakePlacesClient struct {
	textSearch func(ctx context.Context, query string) ([]utils.PlaceCandidate, error)
}

func (f *fakePlacesClient) TextSearch(ctx context.Context, query string) ([]utils.PlaceCandidate, error) {
	return f.textSearch(ctx, query)
}
func (f *fakePlacesClient) PhotoURL(reference string) string {
	return "https://photos.test/" + reference
}

var _ utils.PlacesClientInterface = (*fakePlacesClient)(nil)

type mockTripRepo struct {
	load   func(ctx context.Context) ([]db_models.TripRecord, error)
	append func(ctx context.Context, record db_models.TripRecord) error
}

func (m *mockTripRepo) Load(ctx context.Context) ([]db_models.TripRecord, error) {
	return m.load(ctx)
}
func (m *mockTripRepo) Append(ctx context.Context, record db_models.TripRecord) error {
	return m.append(ctx, record)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

type fakeItineraryService struct {
	result  services.ItineraryResult
	prompts []string
}

func (f *fakeItineraryService) Generate(_ context.Context, prompt string) services.ItineraryResult {
	f.prompts = append(f.prompts, prompt)
	return f.result
}

var _ services.ItineraryServiceInterface = (*fakeItineraryService)(nil)

func ptr[T any](v T) *T { return &v }
