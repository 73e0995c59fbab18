package utils

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"googlemaps.github.io/maps"
)

// PlaceCandidate is one Text Search result reduced to the fields the place
// service consumes. Pointer fields are nil when the backend left them out.
type PlaceCandidate struct {
	PlaceID          string
	Name             string
	FormattedAddress *string
	Rating           *float64
	PriceLevel       *int
	Types            []string
	Photos           []PlacePhoto
}

type PlacePhoto struct {
	PhotoReference string
}

type PlacesClientInterface interface {
	// TextSearch returns the ranked candidates for a free-text query.
	TextSearch(ctx context.Context, query string) ([]PlaceCandidate, error)
	PhotoURL(reference string) string
}

// -------------- Google Places Text Search client ---------------

const placesPhotoPath = "/maps/api/place/photo"

type GooglePlacesClient struct {
	client  *maps.Client
	apiKey  string
	baseURL string // e.g. https://maps.googleapis.com
}

func NewGooglePlacesClient(apiKey, baseURL string, timeout time.Duration) (*GooglePlacesClient, error) {
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: statusCheckTransport{base: http.DefaultTransport},
	}

	client, err := maps.NewClient(
		maps.WithAPIKey(apiKey),
		maps.WithBaseURL(baseURL),
		maps.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Places client: %w", err)
	}

	return &GooglePlacesClient{
		client:  client,
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

func (c *GooglePlacesClient) TextSearch(ctx context.Context, query string) ([]PlaceCandidate, error) {
	// maps reports REQUEST_DENIED, OVER_QUERY_LIMIT and friends as errors;
	// ZERO_RESULTS is an empty response.
	resp, err := c.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlacesBackend, err)
	}

	candidates := make([]PlaceCandidate, 0, len(resp.Results))
	for _, result := range resp.Results {
		candidates = append(candidates, toCandidate(result))
	}
	return candidates, nil
}

func (c *GooglePlacesClient) PhotoURL(reference string) string {
	return fmt.Sprintf("%s%s?maxwidth=400&photoreference=%s&key=%s",
		c.baseURL, placesPhotoPath, url.QueryEscape(reference), url.QueryEscape(c.apiKey))
}

// toCandidate maps zero values back to absent: Places never reports a
// rating or price level of 0 for a place that has one.
func toCandidate(r maps.PlacesSearchResult) PlaceCandidate {
	candidate := PlaceCandidate{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Types:   r.Types,
	}
	if r.FormattedAddress != "" {
		address := r.FormattedAddress
		candidate.FormattedAddress = &address
	}
	if r.Rating > 0 {
		// Widening float32 directly would turn 4.4 into 4.400000095367432.
		rating, _ := strconv.ParseFloat(strconv.FormatFloat(float64(r.Rating), 'f', -1, 32), 64)
		candidate.Rating = &rating
	}
	if r.PriceLevel > 0 {
		level := r.PriceLevel
		candidate.PriceLevel = &level
	}
	for _, photo := range r.Photos {
		candidate.Photos = append(candidate.Photos, PlacePhoto{PhotoReference: photo.PhotoReference})
	}
	return candidate
}

// statusCheckTransport fails non-2xx responses; maps decodes any body it
// gets and would otherwise report an HTML error page as a JSON syntax error.
type statusCheckTransport struct {
	base http.RoundTripper
}

func (t statusCheckTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return resp, nil
}
